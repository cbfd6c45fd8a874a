// Package search implements the Search Service: the single public
// entry point that ties the script detector, normalizer, canonical map,
// index access layer, and ranking engine together into one
// deterministic `Search(query, maxResults)` operation.
package search

import (
	"context"
	"strings"

	"github.com/japaniel/lexicore/pkg/canonical"
	"github.com/japaniel/lexicore/pkg/catalog"
	"github.com/japaniel/lexicore/pkg/normalize"
	"github.com/japaniel/lexicore/pkg/ranking"
	"github.com/japaniel/lexicore/pkg/script"
)

const maxResults = 100

// SearchResult pairs an Entry with the routing and ranking metadata a
// presentation layer needs without recomputing it.
type SearchResult struct {
	Entry catalog.Entry
	// MatchType is the route this result came from: "forward" or
	// "reverse".
	MatchType string
	// RelevanceScore is the ranking engine's feature-weighted sum.
	RelevanceScore float64
	Bucket         ranking.Bucket
	// GroupType is a finer-grained label than MatchType for UI grouping:
	// "headword", "reading", "canonical", or "general", depending on
	// which signal drove the match.
	GroupType string
}

const (
	matchTypeForward = "forward"
	matchTypeReverse = "reverse"
)

// Service is the Search Service. It holds no mutable state of its own
// beyond the Monitor; Catalog and Configuration are process-lifetime
// values owned by the caller and passed in explicitly rather than held
// as package-level singletons.
type Service struct {
	catalog *catalog.Catalog
	config  ranking.Configuration
	lemma   *ranking.LemmaResolver
	monitor *script.Monitor
}

// NewService constructs a Service. lemma may be nil (lemma-based
// exact_match scoring is then skipped); monitor may be nil (script
// routing observations are then dropped rather than recorded).
func NewService(cat *catalog.Catalog, cfg ranking.Configuration, lemma *ranking.LemmaResolver, monitor *script.Monitor) *Service {
	return &Service{catalog: cat, config: cfg, lemma: lemma, monitor: monitor}
}

// Search detects the query's script, normalizes it, routes it to a
// forward or reverse catalog search, ranks the candidates, and returns
// the final ordered results.
func (s *Service) Search(ctx context.Context, query string, maxResultsRequested int) ([]SearchResult, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, nil
	}

	normResult, err := normalize.Normalize(trimmed)
	if err != nil {
		return nil, err
	}
	if normResult.Normalized == "" {
		return nil, nil
	}

	scriptType := script.Detect(trimmed)

	handle, err := s.catalog.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer handle.Release()

	limit := clampMaxResults(maxResultsRequested)

	var (
		candidates []catalog.Entry
		matchType  string
		sctx       ranking.ScoringContext
	)

	switch {
	case scriptType == script.Romaji:
		base := canonical.ExtractBase(trimmed)
		switch {
		case canonical.CanonicalHeadwords(base) != nil:
			// A known English/Chinese word with a curated native
			// equivalent: reverse search, preferring that headword.
			matchType = matchTypeReverse
			candidates, sctx, err = s.searchReverse(ctx, handle, trimmed, limit)
		case script.IsLatinForeign(trimmed):
			// Not in the canonical map, and it doesn't convert cleanly
			// to kana either: a foreign gloss outside the curated set,
			// not a Japanese word in Latin script. Route to reverse
			// search unconditionally rather than let it fall through to
			// a forward FTS lookup of romaji that was never Japanese.
			matchType = matchTypeReverse
			candidates, sctx, err = s.searchReverse(ctx, handle, trimmed, limit)
		default:
			matchType = matchTypeForward
			candidates, sctx, err = s.searchForward(ctx, handle, normResult)
		}
	default:
		matchType = matchTypeForward
		candidates, sctx, err = s.searchForward(ctx, handle, normResult)
	}
	if err != nil {
		return nil, err
	}

	s.record(scriptType, matchType, trimmed)

	ranked := ranking.Rank(candidates, sctx, s.config, limit)

	results := make([]SearchResult, len(ranked))
	for i, r := range ranked {
		results[i] = SearchResult{
			Entry:          r.Entry,
			MatchType:      matchType,
			RelevanceScore: r.Score,
			Bucket:         r.Bucket,
			GroupType:      groupType(matchType, r.Entry, sctx),
		}
	}
	return results, nil
}

func (s *Service) searchForward(ctx context.Context, h *catalog.Handle, normResult normalize.Result) ([]catalog.Entry, ranking.ScoringContext, error) {
	matchQuery := normResult.Normalized
	if normResult.Kana != "" {
		matchQuery = normResult.Kana
	}

	candidates, err := s.catalog.SearchForward(ctx, h, matchQuery, maxResults)
	if err != nil {
		return nil, ranking.ScoringContext{}, err
	}

	sctx := ranking.ScoringContext{NormalizedQuery: matchQuery}
	if s.lemma != nil {
		if base, pos, ok := s.lemma.Lemma(matchQuery); ok {
			sctx.LemmaBaseForm = base
			// pos is kagome's IPA label, not a dictionary tag: 動詞 is a
			// verb, 形容詞 an i-adjective.
			sctx.LemmaIsVerbAdj = pos == "動詞" || pos == "形容詞"
		}
	}
	return candidates, sctx, nil
}

func (s *Service) searchReverse(ctx context.Context, h *catalog.Handle, query string, limit int) ([]catalog.Entry, ranking.ScoringContext, error) {
	base := canonical.ExtractBase(query)
	hint := canonical.ExtractHint(query)
	canonicalHeadwords := canonical.CanonicalHeadwords(base)

	candidates, err := s.catalog.SearchReverse(ctx, h, base, maxResults, true, hint, canonicalHeadwords)
	if err != nil {
		return nil, ranking.ScoringContext{}, err
	}

	sctx := ranking.ScoringContext{
		NormalizedQuery:    base,
		IsEnglishReverse:   true,
		Hint:               hint,
		CanonicalHeadwords: canonicalHeadwords,
	}
	return candidates, sctx, nil
}

func (s *Service) record(scriptType script.Type, route, query string) {
	if s.monitor == nil {
		return
	}
	s.monitor.Record(scriptType, route, query)
}

func groupType(matchType string, e catalog.Entry, ctx ranking.ScoringContext) string {
	if matchType == matchTypeReverse {
		for _, hw := range ctx.CanonicalHeadwords {
			if hw == e.Headword {
				return "canonical"
			}
		}
		return "general"
	}
	if e.Headword == ctx.NormalizedQuery {
		return "headword"
	}
	return "reading"
}

func clampMaxResults(requested int) int {
	if requested <= 0 || requested > maxResults {
		return maxResults
	}
	return requested
}
