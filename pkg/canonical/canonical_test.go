package canonical

import (
	"reflect"
	"testing"
)

func TestExtractBase(t *testing.T) {
	cases := map[string]string{
		"japanese (language)": "japanese",
		"star":                 "star",
		"  star  ":             "star",
		"go (verb, to move)":   "go",
	}
	for in, want := range cases {
		if got := ExtractBase(in); got != want {
			t.Errorf("ExtractBase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExtractHint(t *testing.T) {
	if got := ExtractHint("japanese (language)"); got != "language" {
		t.Errorf("ExtractHint = %q, want language", got)
	}
	if got := ExtractHint("star"); got != "" {
		t.Errorf("ExtractHint = %q, want empty", got)
	}
	if got := ExtractHint("Go (Verb, To Move)"); got != "verb, to move" {
		t.Errorf("ExtractHint = %q, want lowercased hint", got)
	}
}

func TestCanonicalHeadwords(t *testing.T) {
	if got := CanonicalHeadwords("star"); !reflect.DeepEqual(got, []string{"星"}) {
		t.Errorf("CanonicalHeadwords(star) = %v", got)
	}
	if got := CanonicalHeadwords("STAR"); !reflect.DeepEqual(got, []string{"星"}) {
		t.Errorf("CanonicalHeadwords(STAR) = %v, want case-insensitive match", got)
	}
	if got := CanonicalHeadwords("  japanese  "); !reflect.DeepEqual(got, []string{"日本語"}) {
		t.Errorf("CanonicalHeadwords trims whitespace, got %v", got)
	}
	if got := CanonicalHeadwords("nonexistent-gloss"); got != nil {
		t.Errorf("CanonicalHeadwords(unknown) = %v, want nil", got)
	}
	if got := CanonicalHeadwords("give"); len(got) != 2 {
		t.Errorf("CanonicalHeadwords(give) = %v, want two synonyms", got)
	}
}
