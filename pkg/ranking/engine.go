// Package ranking implements the two-stage ranking engine: coarse
// bucketization followed by fine-grained, pure feature scoring within a
// bucket, and the final deterministic total ordering.
package ranking

import (
	"sort"

	"github.com/japaniel/lexicore/pkg/catalog"
)

const maxResults = 100

// ScoredResult pairs a materialized Entry with the bucket and score the
// engine computed for it.
type ScoredResult struct {
	Entry  catalog.Entry
	Bucket Bucket
	Score  float64
}

// Rank scores every candidate, assigns its bucket, and returns them in
// final ordering-key order: (bucket asc, score desc, created_at asc, id
// asc), truncated to min(limit, 100). Candidates are expected to be the
// over-fetched pre-order pool search_forward/search_reverse already
// produced; Rank applies the authoritative ordering on top of it.
func Rank(candidates []catalog.Entry, ctx ScoringContext, cfg Configuration, limit int) []ScoredResult {
	results := make([]ScoredResult, len(candidates))
	for i, e := range candidates {
		results[i] = ScoredResult{
			Entry:  e,
			Bucket: assignBucket(e, ctx),
			Score:  score(e, ctx, cfg),
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Bucket != b.Bucket {
			return a.Bucket < b.Bucket
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Entry.CreatedAt != b.Entry.CreatedAt {
			return a.Entry.CreatedAt < b.Entry.CreatedAt
		}
		return a.Entry.ID < b.Entry.ID
	})

	n := clampResultLimit(limit)
	if len(results) > n {
		results = results[:n]
	}
	return results
}

func clampResultLimit(limit int) int {
	if limit <= 0 || limit > maxResults {
		return maxResults
	}
	return limit
}
