package ranking

import "strings"

// POSCategory is the tagged-variant discriminant used in place of
// treating part_of_speech as an opaque, comma-separated string:
// {Verb(kind), Adjective(kind), Noun(kind), Other(raw)}.
type POSCategory int

const (
	POSOther POSCategory = iota
	POSVerb
	POSAdjective
	POSNoun
)

// POS is the parsed form of a sense's stored part_of_speech tag. Kind
// holds the specific subtype (e.g. "ichidan", "godan", "suru", "i",
// "common", "proper"); Raw retains the original string for
// presentation. All ranking logic consumes Category/Kind, never Raw.
type POS struct {
	Category POSCategory
	Kind     string
	Raw      string
}

// verbKindPrefixes is the exact tag-set rule: a part_of_speech string
// beginning with any of these is a verb for pos_weight and exact_match
// purposes.
var verbKindPrefixes = []string{"ichidan", "godan", "suru", "verb"}

// ParsePOS classifies a raw part_of_speech string into the tagged
// variant. Unrecognized or empty tags parse as Other(raw).
func ParsePOS(raw string) POS {
	tag := strings.ToLower(strings.TrimSpace(raw))

	for _, p := range verbKindPrefixes {
		if strings.HasPrefix(tag, p) {
			return POS{Category: POSVerb, Kind: p, Raw: raw}
		}
	}
	if strings.HasPrefix(tag, "adj-i") || strings.HasPrefix(tag, "i-adjective") {
		return POS{Category: POSAdjective, Kind: "i", Raw: raw}
	}
	if strings.Contains(tag, "adjective") {
		return POS{Category: POSAdjective, Kind: tag, Raw: raw}
	}
	if strings.HasPrefix(tag, "noun common") || strings.HasPrefix(tag, "noun (common)") {
		return POS{Category: POSNoun, Kind: "common", Raw: raw}
	}
	if strings.Contains(tag, "proper") {
		return POS{Category: POSNoun, Kind: "proper", Raw: raw}
	}
	if strings.Contains(tag, "noun") {
		return POS{Category: POSNoun, Kind: tag, Raw: raw}
	}
	return POS{Category: POSOther, Kind: tag, Raw: raw}
}

// IsVerbOrIAdjective reports whether p falls in the bucket pos_weight
// and exact_match treat as a verb/i-adjective.
func (p POS) IsVerbOrIAdjective() bool {
	return p.Category == POSVerb || (p.Category == POSAdjective && p.Kind == "i")
}

// weight implements the pos_weight feature (range −20..20): verbs and
// i-adjectives score +20, common nouns +5, proper/archaic/rare terms 0,
// anything else −10.
func (p POS) weight() float64 {
	switch {
	case p.IsVerbOrIAdjective():
		return 20
	case p.Category == POSNoun && p.Kind == "common":
		return 5
	case p.Category == POSNoun && p.Kind == "proper":
		return 0
	case strings.Contains(p.Kind, "archaic") || strings.Contains(p.Kind, "rare"):
		return 0
	default:
		return -10
	}
}

// posWeight and isVerbOrAdjectiveTag are raw-string entry points that
// simply parse then delegate; posWeight is used by the pos_weight
// feature, and isVerbOrAdjectiveTag currently has no caller.
func posWeight(partOfSpeech string) float64 {
	return ParsePOS(partOfSpeech).weight()
}

func isVerbOrAdjectiveTag(partOfSpeech string) bool {
	return ParsePOS(partOfSpeech).IsVerbOrIAdjective()
}
