// Package catalog implements the read-only index access layer over the
// bundled dictionary artifact: schema verification, prepared statements,
// and the plain data model that rows decode into.
package catalog

// Entry is the canonical dictionary headword record.
type Entry struct {
	ID              int64
	Headword        string
	ReadingHiragana string
	ReadingRomaji   string
	FrequencyRank   *int64
	PitchAccent     string
	CreatedAt       int64
	Senses          []Sense
}

// Sense is a single definition attached to an Entry.
type Sense struct {
	ID                           int64
	EntryID                      int64
	DefinitionEnglish            string
	DefinitionChineseSimplified  string
	DefinitionChineseTraditional string
	PartOfSpeech                 string
	UsageNotes                   string
	SenseOrder                   int
	Examples                     []Example
}

// Example is a single usage sentence attached to a Sense.
type Example struct {
	ID                 int64
	SenseID            int64
	JapaneseText       string
	EnglishTranslation string
	ChineseTranslation string
	ExampleOrder       int
}

// IsPureKatakana reports whether the headword consists only of katakana
// (and halfwidth katakana / prolonged-sound marks), the signal the
// ranking engine's katakana_demotion feature keys off of.
func (e Entry) IsPureKatakana() bool {
	if e.Headword == "" {
		return false
	}
	for _, r := range e.Headword {
		if !isKatakanaRune(r) {
			return false
		}
	}
	return true
}

func isKatakanaRune(r rune) bool {
	switch {
	case r >= 0x30A0 && r <= 0x30FF: // Katakana block
		return true
	case r >= 0xFF65 && r <= 0xFF9F: // Halfwidth katakana
		return true
	case r == 0x30FC: // prolonged sound mark (also in 30A0-30FF, kept for clarity)
		return true
	default:
		return false
	}
}
