package script

import (
	"sync"
)

// RomajiOutlier records one occurrence of a romaji query that was routed
// to reverse search, surfaced through a QA diagnostics feed.
// Fields are declared in JSON key order so the encoded keys are sorted.
type RomajiOutlier struct {
	Occurrences int    `json:"occurrences"`
	Query       string `json:"query"`
	Route       string `json:"route"`
	Timestamp   int64  `json:"timestamp"`
}

// Snapshot is the diagnostics payload: per-(script,route) counters plus
// the romaji→reverse outliers that crossed the configured threshold. It
// serializes to canonical JSON with sorted keys — stdlib encoding/json
// already sorts map keys, so no canonical-JSON library is needed (see
// DESIGN.md).
type Snapshot struct {
	Counts         map[string]int  `json:"counts"`
	RomajiOutliers []RomajiOutlier `json:"romaji_outliers"`
}

// Monitor is the adjacent, process-wide mutable state: the only shared
// state in the core whose writes must be serialized. It is
// intentionally decoupled from Detect, which stays pure; callers record
// a (script, route) observation after routing.
type Monitor struct {
	mu                 sync.Mutex
	counts             map[string]int
	outlierThreshold   int
	romajiReverseCount map[string]*RomajiOutlier
	nowFunc            func() int64
}

// NewMonitor creates a Monitor. outlierThreshold is the minimum number
// of times a distinct romaji query must route to reverse search before
// it is surfaced as a QA outlier. nowFunc supplies the outlier
// timestamp (injected so tests are deterministic); callers typically
// pass time.Now().Unix.
func NewMonitor(outlierThreshold int, nowFunc func() int64) *Monitor {
	if outlierThreshold <= 0 {
		outlierThreshold = 1
	}
	return &Monitor{
		counts:             make(map[string]int),
		outlierThreshold:   outlierThreshold,
		romajiReverseCount: make(map[string]*RomajiOutlier),
		nowFunc:            nowFunc,
	}
}

// Record notes that a query classified as scriptType was routed via
// route. Monitor failures never propagate to the caller; Record never
// returns an error, it only absorbs the observation.
func (m *Monitor) Record(scriptType Type, route string, query string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := string(scriptType) + "->" + route
	m.counts[key]++

	if scriptType == Romaji && route == "reverse" {
		o, ok := m.romajiReverseCount[query]
		if !ok {
			o = &RomajiOutlier{Query: query, Route: route}
			m.romajiReverseCount[query] = o
		}
		o.Occurrences++
		if m.nowFunc != nil {
			o.Timestamp = m.nowFunc()
		}
	}
}

// Snapshot returns the current counters and the outliers that have
// crossed the configured threshold, both copied so the caller's use of
// the result cannot race with further Record calls.
func (m *Monitor) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := make(map[string]int, len(m.counts))
	for k, v := range m.counts {
		counts[k] = v
	}

	var outliers []RomajiOutlier
	for _, o := range m.romajiReverseCount {
		if o.Occurrences >= m.outlierThreshold {
			outliers = append(outliers, *o)
		}
	}

	return Snapshot{Counts: counts, RomajiOutliers: outliers}
}
