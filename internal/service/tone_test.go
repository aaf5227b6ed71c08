package service

import (
	"errors"
	"math/rand"
	"testing"
	"unicode/utf8"
)

func TestToneSiblings(t *testing.T) {
	if got := len(toneSiblings); got != 48 {
		t.Fatalf("tone table has %d vowels, want 48", got)
	}
	for r, siblings := range toneSiblings {
		if len(siblings) != 3 {
			t.Errorf("%q has %d siblings, want 3", r, len(siblings))
		}
		for _, s := range siblings {
			if s == r {
				t.Errorf("%q lists itself as a sibling", r)
			}
		}
	}
}

func TestPerturbSingleTone(t *testing.T) {
	g := NewToneVariationGenerator(rand.New(rand.NewSource(1)))

	for i := range 200 {
		got, err := g.Perturb("mā")
		if err != nil {
			t.Fatalf("Perturb: %v", err)
		}
		if got == "mā" {
			t.Fatalf("iteration %d returned the input", i)
		}
		if utf8.RuneCountInString(got) != 2 {
			t.Fatalf("Perturb(%q) = %q, length changed", "mā", got)
		}

		runes := []rune(got)
		if runes[0] != 'm' {
			t.Fatalf("Perturb(%q) = %q, changed a toneless character", "mā", got)
		}
		if _, ok := toneSiblings[runes[1]]; !ok {
			t.Fatalf("Perturb(%q) = %q, replacement is not a tone vowel", "mā", got)
		}
	}
}

func TestPerturbMultipleTones(t *testing.T) {
	g := NewToneVariationGenerator(rand.New(rand.NewSource(7)))
	input := "Zhōngguó rén"

	for range 100 {
		got, err := g.Perturb(input)
		if err != nil {
			t.Fatalf("Perturb: %v", err)
		}
		if got == input {
			t.Fatalf("Perturb(%q) returned the input", input)
		}

		in, out := []rune(input), []rune(got)
		if len(in) != len(out) {
			t.Fatalf("Perturb(%q) = %q, length changed", input, got)
		}
		for i := range in {
			if in[i] == out[i] {
				continue
			}
			if _, ok := toneSiblings[in[i]]; !ok {
				t.Fatalf("Perturb(%q) = %q, changed %q at %d", input, got, in[i], i)
			}
		}
	}
}

func TestPerturbDecomposedInput(t *testing.T) {
	g := NewToneVariationGenerator(rand.New(rand.NewSource(3)))

	// "ma" followed by a combining macron.
	got, err := g.Perturb("ma\u0304")
	if err != nil {
		t.Fatalf("Perturb: %v", err)
	}
	if got == "mā" || utf8.RuneCountInString(got) != 2 {
		t.Errorf("Perturb(decomposed mā) = %q", got)
	}
}

func TestPerturbNoTones(t *testing.T) {
	g := NewToneVariationGenerator(rand.New(rand.NewSource(1)))

	for _, input := range []string{"ma", "", "cat"} {
		if _, err := g.Perturb(input); !errors.Is(err, ErrNoTonalCharacters) {
			t.Errorf("Perturb(%q) error = %v, want ErrNoTonalCharacters", input, err)
		}
	}
}

func TestHasTone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"māo", true},
		{"LǙ", true},
		{"lü", false},
		{"mao", false},
		{"ma\u0304", true},
	}

	for _, tt := range tests {
		if got := HasTone(tt.in); got != tt.want {
			t.Errorf("HasTone(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
