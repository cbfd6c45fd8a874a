// Package normalize implements the query normalizer: the
// length/character-set gate every query passes through before the
// search service routes it to forward or reverse search.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/japaniel/lexicore/pkg/lexerr"
)

const maxQueryCodepoints = 100

// ErrQueryTooLong and ErrInvalidCharacters are the two BadQuery reasons
// Normalize reports.
var (
	ErrQueryTooLong      = "query too long"
	ErrInvalidCharacters = "invalid characters"
)

// Result is the output of Normalize: the FTS5-safe, rewrite-applied
// form used for matching, plus the romaji->kana conversion used for
// forward search of the hiragana columns when the original query was
// romaji or latin-foreign.
type Result struct {
	// Normalized is the sanitized, FTS5-escaped, digraph-rewritten,
	// macron-collapsed form of the query, in its original script.
	Normalized string
	// Kana is the romaji→kana conversion of the digraph-rewritten query
	// before vowel collapse (so a doubled vowel keeps both kana),
	// populated only when the input contained no native Japanese script;
	// empty otherwise. Forward search tries this against reading_hiragana.
	Kana string
}

// Normalize sanitizes and rewrites q, which the caller has already
// trimmed. An empty q is not an error: it returns a zero Result with no
// error, signaling "no candidates" to the search service.
func Normalize(q string) (Result, error) {
	if q == "" {
		return Result{}, nil
	}

	if n := utf8.RuneCountInString(q); n > maxQueryCodepoints {
		return Result{}, lexerr.NewBadQuery(ErrQueryTooLong, nil)
	}

	stripped := stripDisallowed(q)
	if strings.TrimSpace(stripped) == "" {
		return Result{}, lexerr.NewBadQuery(ErrInvalidCharacters, nil)
	}

	escaped := escapeFTS5(stripped)

	if containsJapaneseScript(escaped) {
		return Result{Normalized: escaped}, nil
	}

	rewritten := applyDigraphRewrites(strings.ToLower(escaped))

	// Kana conversion runs on the pre-vowel-collapse form: each vowel
	// letter maps to its own kana, so a doubled vowel like "ou" or "aa"
	// naturally produces the correct two-kana long-vowel spelling
	// (お+う, あ+あ) without a separate macron->kana table. The macron
	// form is only the internal representation used for matching.
	kana := romajiToKana(rewritten)
	normalized := collapseDoubledVowels(rewritten)

	return Result{
		Normalized: normalized,
		Kana:       kana,
	}, nil
}

// permitted reports whether r may appear in a sanitized query: CJK
// ideographs, kana, ASCII letters/digits, parentheses, hyphen,
// apostrophe, or whitespace.
func permitted(r rune) bool {
	switch {
	case unicode.IsSpace(r):
		return true
	case r >= 0x3040 && r <= 0x30FF: // hiragana + katakana
		return true
	case r >= 0xFF65 && r <= 0xFF9F: // halfwidth katakana
		return true
	case (r >= 0x4E00 && r <= 0x9FFF) || (r >= 0x3400 && r <= 0x4DBF): // kanji
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '(' || r == ')' || r == '-' || r == '\'':
		return true
	case isMacronVowel(r):
		// the package's own internal macron representation must survive
		// a second pass unchanged, so Normalize stays idempotent.
		return true
	default:
		return false
	}
}

func isMacronVowel(r rune) bool {
	switch r {
	case 'ā', 'ī', 'ū', 'ē', 'ō', 'Ā', 'Ī', 'Ū', 'Ē', 'Ō':
		return true
	default:
		return false
	}
}

func stripDisallowed(q string) string {
	var b strings.Builder
	b.Grow(len(q))
	for _, r := range q {
		if permitted(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ftsMetaChars are the FTS5 query-syntax characters that must never
// reach the MATCH expression unescaped. They are removed
// rather than quoted: a token-boundary hyphen is itself one of the
// listed meta-characters, so stripping is simpler and strictly safer
// than attempting to re-escape SQLite's FTS5 query grammar.
var ftsMetaChars = []rune{'"', '*', ':'}

func escapeFTS5(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i, r := range runes {
		if r == '-' {
			atBoundary := i == 0 || i == len(runes)-1 ||
				unicode.IsSpace(runes[i-1]) || unicode.IsSpace(runes[i+1])
			if atBoundary {
				continue
			}
		}
		if isFTSMeta(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isFTSMeta(r rune) bool {
	for _, m := range ftsMetaChars {
		if r == m {
			return true
		}
	}
	return false
}

func containsJapaneseScript(s string) bool {
	for _, r := range s {
		if (r >= 0x3040 && r <= 0x30FF) ||
			(r >= 0xFF65 && r <= 0xFF9F) ||
			(r >= 0x4E00 && r <= 0x9FFF) || (r >= 0x3400 && r <= 0x4DBF) {
			return true
		}
	}
	return false
}

// applyDigraphRewrites rewrites Kunrei-shiki spellings to Hepburn using
// a fixed rewrite table. It is a single greedy left-to-right pass;
// rewrites never overlap because each one consumes its source
// positions, so a rewrite's output is never rewritten again.
func applyDigraphRewrites(s string) string {
	// Hepburn "shu"/"chu" are kept as-is so the "hu" rule does not fire
	// inside them.
	pairs := []string{"shu", "shu", "chu", "chu"}
	for _, d := range kunreiDigraphs {
		pairs = append(pairs, d.from, d.to)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// collapseDoubledVowels folds doubled vowels (and the "ou" spelling) to
// the package's single internal macron representation. Input is first
// passed through Unicode NFC normalization so a combining macron
// (U+0304) typed via an IME and a precomposed macron vowel (ā, U+0101)
// converge on the same canonical form before the rewrite table runs.
func collapseDoubledVowels(s string) string {
	s = norm.NFC.String(s)
	for _, v := range doubledVowels {
		s = strings.ReplaceAll(s, v.from, v.to)
	}
	return s
}

// romajiToKana converts a digraph-rewritten (but not yet vowel-collapsed)
// romaji string to hiragana using a greedy longest-match syllable table,
// handling consonant gemination (doubled consonant -> っ). Running
// before vowel collapse means a doubled vowel like "ou" or "aa" produces
// its natural two-kana long-vowel spelling (お+う, あ+あ) for free.
// Characters that do not match any syllable (spaces, parentheses,
// digits) pass through unchanged.
func romajiToKana(s string) string {
	var b strings.Builder
	runes := []rune(s)
	i := 0
	for i < len(runes) {
		if isGeminatingConsonant(runes, i) {
			b.WriteString("っ")
			i++
			continue
		}

		if matched, consumed := matchSyllable(runes[i:]); matched != "" {
			b.WriteString(matched)
			i += consumed
			continue
		}

		b.WriteRune(runes[i])
		i++
	}
	return b.String()
}

// isGeminatingConsonant reports whether runes[i] is a doubled consonant
// (e.g. "kk" in "gakkou") signaling a geminate っ, per Hepburn
// romanization convention.
func isGeminatingConsonant(runes []rune, i int) bool {
	if i+1 >= len(runes) {
		return false
	}
	r := runes[i]
	if r == 'n' || r == 'a' || r == 'i' || r == 'u' || r == 'e' || r == 'o' {
		return false
	}
	if !(r >= 'a' && r <= 'z') {
		return false
	}
	return runes[i] == runes[i+1]
}

func matchSyllable(runes []rune) (string, int) {
	for _, syl := range romajiSyllables {
		n := len(syl.romaji)
		if n > len(runes) {
			continue
		}
		if string(runes[:n]) == syl.romaji {
			return syl.kana, n
		}
	}
	return "", 0
}
