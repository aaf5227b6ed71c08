// Package entities contains the quiz domain types shared across the application.
package entities

// Term is the quizzed triple of a vocabulary entry.
type Term struct {
	Primary   string `json:"primary"`   // the quizzed word, e.g. 猫
	Secondary string `json:"secondary"` // phonetic reading, e.g. māo
	Tertiary  string `json:"tertiary"`  // meaning, e.g. cat
}

// Field returns the value quizzed at the given stage.
func (t Term) Field(s Stage) string {
	switch s {
	case StageOne:
		return t.Primary
	case StageTwo:
		return t.Secondary
	case StageThree:
		return t.Tertiary
	default:
		return ""
	}
}

// VocabularyEntry is a stored term together with the example contexts it was found in.
// Sources is never empty for a stored entry.
type VocabularyEntry struct {
	Term
	Sources []string `json:"sources"`
}

// NewVocabularyEntry creates an entry with the given contexts.
func NewVocabularyEntry(primary, secondary, tertiary string, sources []string) VocabularyEntry {
	return VocabularyEntry{
		Term: Term{
			Primary:   primary,
			Secondary: secondary,
			Tertiary:  tertiary,
		},
		Sources: sources,
	}
}
