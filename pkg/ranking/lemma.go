package ranking

import "github.com/japaniel/lexicore/pkg/readerer"

// LemmaResolver extracts the dictionary base form and primary
// part-of-speech of a query, used by the exact_match feature's "lemma
// form of a verb whose inflected form equals the query" rule. It wraps
// pkg/readerer's kagome-backed Analyzer to resolve inflected
// verb/adjective forms in search queries.
type LemmaResolver struct {
	analyzer *readerer.Analyzer
}

// NewLemmaResolver constructs a resolver backed by the ipa.Dict() kagome
// tokenizer. Construction loads the dictionary, so callers should build
// one resolver per process and reuse it.
func NewLemmaResolver() (*LemmaResolver, error) {
	a, err := readerer.NewAnalyzer()
	if err != nil {
		return nil, err
	}
	return &LemmaResolver{analyzer: a}, nil
}

// Lemma returns the base form and primary POS of the dominant token in
// query, or ("", "", false) if query doesn't tokenize into exactly one
// content token (multi-word queries aren't eligible for the lemma-match
// bonus).
func (r *LemmaResolver) Lemma(query string) (baseForm, pos string, ok bool) {
	if r == nil || r.analyzer == nil {
		return "", "", false
	}
	tokens, err := r.analyzer.Analyze(query)
	if err != nil || len(tokens) == 0 {
		return "", "", false
	}

	// Inflected verbs/adjectives tokenize as a stem plus trailing
	// auxiliary tokens (e.g. 食べ + た), and the stem carries the
	// BaseForm we want to compare against headwords, so auxiliaries
	// (助動詞) and particles (助詞) are not counted as content tokens.
	var t readerer.Token
	content := 0
	for _, tok := range tokens {
		if tok.PrimaryPOS == "助動詞" || tok.PrimaryPOS == "助詞" {
			continue
		}
		t = tok
		content++
	}
	if content != 1 || t.BaseForm == "" {
		return "", "", false
	}
	return t.BaseForm, t.PrimaryPOS, true
}
