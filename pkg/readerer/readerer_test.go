package readerer

import "testing"

func TestAnalyzeFindsBaseFormOfInflectedVerb(t *testing.T) {
	analyzer, err := NewAnalyzer()
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}

	tokens, err := analyzer.Analyze("食べました")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(tokens) == 0 {
		t.Fatal("expected at least one token")
	}

	found := false
	for _, tok := range tokens {
		if tok.BaseForm == "食べる" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a token with base form 食べる, got %+v", tokens)
	}
}

func TestAnalyzePrimaryPOSMatchesFirstFeature(t *testing.T) {
	analyzer, err := NewAnalyzer()
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}

	tokens, err := analyzer.Analyze("猫が好きです")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	found := false
	for _, tok := range tokens {
		if len(tok.PartsOfSpeech) > 0 && tok.PrimaryPOS == tok.PartsOfSpeech[0] && tok.PrimaryPOS != "" {
			found = true
		}
	}
	if !found {
		t.Error("expected at least one token with PrimaryPOS set and matching PartsOfSpeech[0]")
	}
}
