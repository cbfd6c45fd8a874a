// Package script classifies a sanitized query string into the script
// family that drives the search service's forward/reverse routing
// decision.
package script

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"

	"github.com/japaniel/lexicore/pkg/normalize"
)

// Type is one of the six script classifications a query can carry.
type Type string

const (
	Hiragana     Type = "hiragana"
	Katakana     Type = "katakana"
	Kanji        Type = "kanji"
	Mixed        Type = "mixed"
	Romaji       Type = "romaji"
	LatinForeign Type = "latin-foreign"
)

// Detect classifies a non-empty, already-trimmed query. It is pure and
// deterministic and never mutates q; rules are applied in a fixed
// order, most specific first.
func Detect(q string) Type {
	// Halfwidth katakana is folded to fullwidth before classification so
	// rule 2 ("including halfwidth katakana") is a single canonicalization
	// step rather than a second range table.
	folded := width.Fold.String(q)

	var sawHiragana, sawKatakana, sawKanji, sawOther bool
	var letters, vowels, latinOK int
	anyNonSpace := false

	for _, r := range folded {
		if unicode.IsSpace(r) {
			continue
		}
		// Parenthetical hints (`base (hint)`) are structural, not script
		// content: a reverse-search query like "language (noun)" must
		// still classify by the letters outside the parens.
		if r == '(' || r == ')' {
			continue
		}
		anyNonSpace = true

		switch {
		case isHiragana(r):
			sawHiragana = true
		case isKatakana(r):
			sawKatakana = true
		case isKanji(r):
			sawKanji = true
		default:
			sawOther = true
		}

		letters++
		if isVowelLetter(r) {
			vowels++
		}
		if isASCIILetter(r) || r == '-' || r == '\'' {
			latinOK++
		}
	}

	if !anyNonSpace {
		return Mixed
	}

	if sawHiragana && !sawKatakana && !sawKanji && !sawOther {
		return Hiragana
	}
	if sawKatakana && !sawHiragana && !sawKanji && !sawOther {
		return Katakana
	}
	if sawKanji && (sawHiragana || sawKatakana) {
		return Mixed
	}
	if sawKanji && !sawHiragana && !sawKatakana && !sawOther {
		return Kanji
	}
	if !sawHiragana && !sawKatakana && !sawKanji && latinOK == letters && vowels > 0 {
		return Romaji
	}
	return Mixed
}

// IsLatinForeign reports whether q (already classified as romaji by
// Detect) looks like a foreign-language gloss rather than a Japanese
// word spelled in Latin script. Detect's rules alone can't tell "taberu"
// from "elephant", since both are plain ASCII letters, so this asks the
// normalizer's romaji->kana conversion to decide: genuine Hepburn romaji
// converts entirely into kana, while a foreign word leaves stray Latin
// letters behind (Japanese has no "l", and no consonant cluster like
// "ph", for the syllable table to match).
func IsLatinForeign(q string) bool {
	res, err := normalize.Normalize(q)
	if err != nil {
		return true
	}
	if res.Kana == "" {
		// Normalize leaves Kana empty when q already contains native
		// Japanese script (nothing to convert) or is empty/degenerate;
		// neither case is a Latin foreign gloss.
		return false
	}
	for _, r := range res.Kana {
		if isASCIILetter(r) {
			return true
		}
	}
	return false
}

func isHiragana(r rune) bool {
	return r >= 0x3040 && r <= 0x309F
}

func isKatakana(r rune) bool {
	switch {
	case r >= 0x30A0 && r <= 0x30FF:
		return true
	case r >= 0xFF65 && r <= 0xFF9F: // halfwidth katakana (pre-fold fallback)
		return true
	default:
		return false
	}
}

func isKanji(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || (r >= 0x3400 && r <= 0x4DBF)
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isVowelLetter(r rune) bool {
	return strings.ContainsRune("aeiouAEIOU", r)
}
