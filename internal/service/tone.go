package service

import (
	"errors"
	"math/rand"
	"slices"

	"golang.org/x/text/unicode/norm"
)

var ErrNoTonalCharacters = errors.New("no tonal characters")

const (
	maxToneChanges   = 4
	maxPerturbPasses = 5
)

// toneClasses groups the four tone marks of each pinyin vowel.
var toneClasses = [][]rune{
	{'ā', 'á', 'ǎ', 'à'},
	{'ō', 'ó', 'ǒ', 'ò'},
	{'ē', 'é', 'ě', 'è'},
	{'ī', 'í', 'ǐ', 'ì'},
	{'ū', 'ú', 'ǔ', 'ù'},
	{'ǖ', 'ǘ', 'ǚ', 'ǜ'},
	{'Ā', 'Á', 'Ǎ', 'À'},
	{'Ō', 'Ó', 'Ǒ', 'Ò'},
	{'Ē', 'É', 'Ě', 'È'},
	{'Ī', 'Í', 'Ǐ', 'Ì'},
	{'Ū', 'Ú', 'Ǔ', 'Ù'},
	{'Ǖ', 'Ǘ', 'Ǚ', 'Ǜ'},
}

// toneSiblings maps a tone-marked vowel to the other tones of the same vowel.
var toneSiblings = buildToneSiblings(toneClasses)

func buildToneSiblings(classes [][]rune) map[rune][]rune {
	m := make(map[rune][]rune)
	for _, class := range classes {
		for _, r := range class {
			m[r] = slices.DeleteFunc(slices.Clone(class), func(o rune) bool { return o == r })
		}
	}
	return m
}

// HasTone reports whether s contains a tone-marked vowel.
func HasTone(s string) bool {
	for _, r := range norm.NFC.String(s) {
		if _, ok := toneSiblings[r]; ok {
			return true
		}
	}
	return false
}

// ToneVariationGenerator produces plausible wrong readings by swapping tone marks.
// It is not safe for concurrent use.
type ToneVariationGenerator struct {
	rng *rand.Rand
}

func NewToneVariationGenerator(rng *rand.Rand) *ToneVariationGenerator {
	return &ToneVariationGenerator{rng: rng}
}

// Perturb changes the tone of between one and four tone-marked vowels of phonetic.
// The result always differs from the NFC form of the input.
func (g *ToneVariationGenerator) Perturb(phonetic string) (string, error) {
	runes := []rune(norm.NFC.String(phonetic))

	var positions []int
	for i, r := range runes {
		if _, ok := toneSiblings[r]; ok {
			positions = append(positions, i)
		}
	}
	if len(positions) == 0 {
		return "", ErrNoTonalCharacters
	}

	original := string(runes)
	var out string
	for range maxPerturbPasses {
		candidate := slices.Clone(runes)

		k := 1 + g.rng.Intn(min(len(positions), maxToneChanges))
		for _, idx := range g.rng.Perm(len(positions))[:k] {
			pos := positions[idx]
			siblings := toneSiblings[candidate[pos]]
			candidate[pos] = siblings[g.rng.Intn(len(siblings))]
		}

		out = string(candidate)
		if out != original {
			break
		}
	}

	return out, nil
}
