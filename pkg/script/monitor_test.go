package script

import "testing"

func TestMonitorRecordCountsByScriptAndRoute(t *testing.T) {
	m := NewMonitor(2, func() int64 { return 1000 })
	m.Record(Hiragana, "forward", "たべる")
	m.Record(Hiragana, "forward", "のむ")
	m.Record(Romaji, "reverse", "star")

	snap := m.Snapshot()
	if snap.Counts["hiragana->forward"] != 2 {
		t.Errorf("hiragana->forward = %d, want 2", snap.Counts["hiragana->forward"])
	}
	if snap.Counts["romaji->reverse"] != 1 {
		t.Errorf("romaji->reverse = %d, want 1", snap.Counts["romaji->reverse"])
	}
}

func TestMonitorFlagsRomajiReverseOutlierAboveThreshold(t *testing.T) {
	m := NewMonitor(2, func() int64 { return 42 })
	m.Record(Romaji, "reverse", "hon")
	if len(m.Snapshot().RomajiOutliers) != 0 {
		t.Fatal("expected no outliers below threshold")
	}
	m.Record(Romaji, "reverse", "hon")

	snap := m.Snapshot()
	if len(snap.RomajiOutliers) != 1 {
		t.Fatalf("expected one outlier at threshold, got %d", len(snap.RomajiOutliers))
	}
	if snap.RomajiOutliers[0].Query != "hon" || snap.RomajiOutliers[0].Occurrences != 2 {
		t.Errorf("unexpected outlier: %+v", snap.RomajiOutliers[0])
	}
	if snap.RomajiOutliers[0].Timestamp != 42 {
		t.Errorf("expected injected timestamp 42, got %d", snap.RomajiOutliers[0].Timestamp)
	}
}

func TestMonitorIgnoresNonRomajiReverseForOutliers(t *testing.T) {
	m := NewMonitor(1, func() int64 { return 1 })
	m.Record(Hiragana, "forward", "たべる")
	if len(m.Snapshot().RomajiOutliers) != 0 {
		t.Error("expected no outliers for non-romaji-reverse routes")
	}
}
