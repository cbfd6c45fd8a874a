package normalize

import (
	"strings"
	"testing"

	"github.com/japaniel/lexicore/pkg/lexerr"
)

func TestNormalizeEmptyIsNoCandidates(t *testing.T) {
	r, err := Normalize("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Normalized != "" {
		t.Fatalf("expected zero Result, got %+v", r)
	}
}

func TestNormalizeQueryTooLong(t *testing.T) {
	_, err := Normalize(strings.Repeat("a", 101))
	var lexErr *lexerr.Error
	if err == nil {
		t.Fatal("expected an error")
	}
	if !asLexerr(err, &lexErr) || lexErr.Reason != ErrQueryTooLong {
		t.Fatalf("expected QueryTooLong, got %v", err)
	}
}

func TestNormalizeInvalidCharacters(t *testing.T) {
	_, err := Normalize("@@@###")
	var lexErr *lexerr.Error
	if err == nil {
		t.Fatal("expected an error")
	}
	if !asLexerr(err, &lexErr) || lexErr.Reason != ErrInvalidCharacters {
		t.Fatalf("expected InvalidCharacters, got %v", err)
	}
}

func TestNormalizeRomajiToKana(t *testing.T) {
	r, err := Normalize("taberu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Kana != "たべる" {
		t.Fatalf("expected たべる, got %q", r.Kana)
	}
}

func TestNormalizeKunreiToHepburn(t *testing.T) {
	r, err := Normalize("tuki")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Normalized != "tsuki" {
		t.Fatalf("expected tsuki, got %q", r.Normalized)
	}
	if r.Kana != "つき" {
		t.Fatalf("expected つき, got %q", r.Kana)
	}
}

func TestNormalizeDoubledVowelCollapse(t *testing.T) {
	r, err := Normalize("okaasan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(r.Normalized, "ā") {
		t.Fatalf("expected macron-collapsed form, got %q", r.Normalized)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"taberu", "tuki", "okaasan", "食べる", "スター", "star (noun)"}
	for _, in := range inputs {
		once, err := Normalize(in)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", in, err)
		}
		twice, err := Normalize(once.Normalized)
		if err != nil {
			t.Fatalf("Normalize(Normalize(%q)): %v", in, err)
		}
		if once.Normalized != twice.Normalized {
			t.Errorf("not idempotent for %q: %q != %q", in, once.Normalized, twice.Normalized)
		}
	}
}

func TestNormalizeJapaneseScriptPassesThroughUnchanged(t *testing.T) {
	r, err := Normalize("たべる")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Normalized != "たべる" {
		t.Fatalf("expected たべる unchanged, got %q", r.Normalized)
	}
	if r.Kana != "" {
		t.Fatalf("expected no kana conversion for native script, got %q", r.Kana)
	}
}

func asLexerr(err error, target **lexerr.Error) bool {
	e, ok := err.(*lexerr.Error)
	if !ok {
		return false
	}
	*target = e
	return true
}
