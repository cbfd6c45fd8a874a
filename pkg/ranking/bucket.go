package ranking

import (
	"strings"

	"github.com/japaniel/lexicore/pkg/catalog"
)

// Bucket is the coarse ranking tier; lower sorts first (A is the best
// match).
type Bucket int

const (
	BucketExactMatch       Bucket = iota // A
	BucketCommonPrefixMatch               // B
	BucketGeneralMatch                    // C
	BucketSpecializedTerm                 // D
)

func (b Bucket) String() string {
	switch b {
	case BucketExactMatch:
		return "exactMatch"
	case BucketCommonPrefixMatch:
		return "commonPrefixMatch"
	case BucketGeneralMatch:
		return "generalMatch"
	case BucketSpecializedTerm:
		return "specializedTerm"
	default:
		return "unknown"
	}
}

const commonPrefixFrequencyThreshold = 5000

// assignBucket evaluates the bucket rules in order: A, then B, then the
// low-frequency/proper-noun rule for D, then C; anything left is D. A
// prefix or contains match on a low-frequency or proper-noun entry
// therefore lands in D, not C.
func assignBucket(e catalog.Entry, ctx ScoringContext) Bucket {
	q := ctx.NormalizedQuery

	if e.Headword == q || e.ReadingHiragana == q || e.ReadingRomaji == q {
		return BucketExactMatch
	}
	if ctx.LemmaIsVerbAdj && ctx.LemmaBaseForm != "" && ctx.LemmaBaseForm == e.Headword {
		return BucketExactMatch
	}

	isPrefix := strings.HasPrefix(e.Headword, q) || strings.HasPrefix(e.ReadingHiragana, q) || strings.HasPrefix(e.ReadingRomaji, q)
	if isPrefix && e.FrequencyRank != nil && *e.FrequencyRank <= commonPrefixFrequencyThreshold {
		return BucketCommonPrefixMatch
	}

	if isLowFrequencyOrProper(e) {
		return BucketSpecializedTerm
	}

	if isPrefix || containsMatch(e, ctx) > 0 {
		return BucketGeneralMatch
	}

	return BucketSpecializedTerm
}

func isLowFrequencyOrProper(e catalog.Entry) bool {
	if e.FrequencyRank == nil {
		return true
	}
	if s, ok := firstSense(e); ok {
		tag := strings.ToLower(s.PartOfSpeech)
		if strings.Contains(tag, "proper") {
			return true
		}
	}
	return false
}
