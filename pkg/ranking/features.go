package ranking

import (
	"math"
	"strings"
	"unicode"

	"github.com/japaniel/lexicore/pkg/catalog"
)

// ScoringContext carries everything about the query and route that a
// feature function needs beyond the candidate Entry itself.
type ScoringContext struct {
	// NormalizedQuery is the query as matched against headword/reading
	// columns (already normalized by pkg/normalize).
	NormalizedQuery string
	// IsEnglishReverse is true when this candidate came from the
	// reverse-search path (english/chinese gloss -> headword).
	IsEnglishReverse bool
	// Hint is the lowercased parenthetical disambiguator extracted by
	// pkg/canonical, or "" if the query had none.
	Hint string
	// CanonicalHeadwords is the canonical-mapping result for the query's
	// base form, or nil if the query has no canonical entry.
	CanonicalHeadwords []string
	// LemmaBaseForm and LemmaIsVerbAdj come from a kagome tokenization
	// of the query, used by exact_match's inflected-verb rule.
	LemmaBaseForm  string
	LemmaIsVerbAdj bool
}

func firstSense(e catalog.Entry) (catalog.Sense, bool) {
	if len(e.Senses) == 0 {
		return catalog.Sense{}, false
	}
	return e.Senses[0], true
}

// exactMatch: 100 for exact headword/reading equality, 50 for exact
// lemma-only equality.
func exactMatch(e catalog.Entry, ctx ScoringContext) float64 {
	q := ctx.NormalizedQuery
	if e.Headword == q || e.ReadingHiragana == q || e.ReadingRomaji == q {
		return 100
	}
	if ctx.LemmaIsVerbAdj && ctx.LemmaBaseForm != "" && ctx.LemmaBaseForm == e.Headword {
		return 50
	}
	return 0
}

// prefixMatch: 60 for a true prefix, linearly decayed for a partial
// (shared-prefix) match, 0 otherwise.
func prefixMatch(e catalog.Entry, ctx ScoringContext) float64 {
	q := ctx.NormalizedQuery
	if q == "" {
		return 0
	}
	if strings.HasPrefix(e.Headword, q) || strings.HasPrefix(e.ReadingHiragana, q) || strings.HasPrefix(e.ReadingRomaji, q) {
		return 60
	}

	best := 0
	for _, candidate := range []string{e.Headword, e.ReadingHiragana, e.ReadingRomaji} {
		if n := commonPrefixLen(candidate, q); n > best {
			best = n
		}
	}
	if best == 0 {
		return 0
	}
	qLen := len([]rune(q))
	if qLen == 0 {
		return 0
	}
	return 60 * float64(best) / float64(qLen)
}

func commonPrefixLen(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n := 0
	for n < len(ra) && n < len(rb) && ra[n] == rb[n] {
		n++
	}
	return n
}

// containsMatch: token-boundary contains (30, the top of the 0..30
// range) beats anywhere-contains (15).
func containsMatch(e catalog.Entry, ctx ScoringContext) float64 {
	q := ctx.NormalizedQuery
	if q == "" {
		return 0
	}
	for _, candidate := range []string{e.Headword, e.ReadingHiragana, e.ReadingRomaji} {
		if !strings.Contains(candidate, q) {
			continue
		}
		if containsAtWordBoundary(candidate, q) {
			return 30
		}
		return 15
	}
	return 0
}

func containsAtWordBoundary(haystack, needle string) bool {
	idx := strings.Index(haystack, needle)
	if idx < 0 {
		return false
	}
	runes := []rune(haystack)
	needleLen := len([]rune(needle))
	startRune := len([]rune(haystack[:idx]))
	before := startRune == 0 || !unicode.IsLetter(runes[startRune-1])
	after := startRune+needleLen >= len(runes) || !unicode.IsLetter(runes[startRune+needleLen])
	return before && after
}

// frequency: max(0, 40 - log2(max(rank, 1))); entries lacking
// frequency_rank contribute 0.
func frequency(e catalog.Entry, _ ScoringContext) float64 {
	if e.FrequencyRank == nil {
		return 0
	}
	rank := *e.FrequencyRank
	if rank < 1 {
		rank = 1
	}
	v := 40 - math.Log2(float64(rank))
	if v < 0 {
		return 0
	}
	return v
}

// posWeightFeature resolves the primary sense's part_of_speech tag and
// delegates to posWeight.
func posWeightFeature(e catalog.Entry, _ ScoringContext) float64 {
	s, ok := firstSense(e)
	if !ok {
		return -10
	}
	return posWeight(s.PartOfSpeech)
}

// katakanaDemotion: -30 when the headword is purely katakana and the
// context is an english-reverse search, 0 otherwise.
func katakanaDemotion(e catalog.Entry, ctx ScoringContext) float64 {
	if ctx.IsEnglishReverse && e.IsPureKatakana() {
		return -30
	}
	return 0
}

// canonicalNative: 80 when the headword is in the canonical headword
// set for this query, 0 otherwise.
func canonicalNative(e catalog.Entry, ctx ScoringContext) float64 {
	for _, hw := range ctx.CanonicalHeadwords {
		if hw == e.Headword {
			return 80
		}
	}
	return 0
}

// parentheticalHint: 40 when any of the entry's senses contains the
// hint as a standalone word.
func parentheticalHint(e catalog.Entry, ctx ScoringContext) float64 {
	if ctx.Hint == "" {
		return 0
	}
	for _, s := range e.Senses {
		if containsAtWordBoundary(strings.ToLower(s.DefinitionEnglish), ctx.Hint) {
			return 40
		}
	}
	return 0
}

type featureFunc func(catalog.Entry, ScoringContext) float64

var featureFuncs = map[FeatureName]featureFunc{
	FeatureExactMatch:        exactMatch,
	FeaturePrefixMatch:       prefixMatch,
	FeatureContainsMatch:     containsMatch,
	FeatureFrequency:         frequency,
	FeaturePOSWeight:         posWeightFeature,
	FeatureKatakanaDemotion:  katakanaDemotion,
	FeatureCanonicalNative:   canonicalNative,
	FeatureParentheticalHint: parentheticalHint,
}

// score sums every enabled feature's clamped, weighted contribution.
func score(e catalog.Entry, ctx ScoringContext, cfg Configuration) float64 {
	var total float64
	for _, f := range cfg.Features {
		if !f.Enabled {
			continue
		}
		fn, ok := featureFuncs[f.Name]
		if !ok {
			continue
		}
		raw := fn(e, ctx)
		clamped := clamp(raw, f.Range.Lo, f.Range.Hi)
		total += clamped * f.Weight
	}
	return total
}
