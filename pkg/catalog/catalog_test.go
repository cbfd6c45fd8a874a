package catalog

import (
	"context"
	"path/filepath"
	"testing"
)

func TestOpenMissingFileIsNotReady(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.db"))
	if err == nil {
		t.Fatal("expected an error")
	}
	lexErr, ok := err.(*Error)
	if !ok || lexErr.Kind != KindNotReady {
		t.Fatalf("expected NotReady, got %v", err)
	}
}

func TestSearchForwardMatchesByHeadwordAndReading(t *testing.T) {
	cat, _ := newFixture(t, []seedEntry{
		{id: 1, headword: "食べる", readingHiragana: "たべる", readingRomaji: "taberu", frequencyRank: freqPtr(100), createdAt: 1,
			senses: []seedSense{{definitionEnglish: "to eat", partOfSpeech: "verb ichidan"}}},
		{id: 2, headword: "食べ物", readingHiragana: "たべもの", readingRomaji: "tabemono", frequencyRank: freqPtr(300), createdAt: 2,
			senses: []seedSense{{definitionEnglish: "food", partOfSpeech: "noun common"}}},
	})

	ctx := context.Background()
	h, err := cat.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer h.Release()

	results, err := cat.SearchForward(ctx, h, "たべる", 20)
	if err != nil {
		t.Fatalf("SearchForward: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one match")
	}
	found := false
	for _, e := range results {
		if e.Headword == "食べる" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected 食べる among results, got %+v", results)
	}

	for _, e := range results {
		if e.Headword != "食べる" {
			continue
		}
		if len(e.Senses) != 1 {
			t.Fatalf("expected 食べる to carry its first sense, got %d senses", len(e.Senses))
		}
		if e.Senses[0].PartOfSpeech != "verb ichidan" {
			t.Errorf("expected part_of_speech %q, got %q", "verb ichidan", e.Senses[0].PartOfSpeech)
		}
	}
}

func TestSearchReverseFavorsCanonicalHeadword(t *testing.T) {
	cat, _ := newFixture(t, []seedEntry{
		{id: 1, headword: "星", readingHiragana: "ほし", readingRomaji: "hoshi", frequencyRank: freqPtr(800), createdAt: 1,
			senses: []seedSense{{definitionEnglish: "star", partOfSpeech: "noun common"}}},
		{id: 2, headword: "スター", readingHiragana: "すたー", readingRomaji: "sutaa", frequencyRank: freqPtr(1500), createdAt: 2,
			senses: []seedSense{{definitionEnglish: "star (celebrity)", partOfSpeech: "noun common"}}},
		{id: 3, headword: "えとわーる", readingHiragana: "えとわーる", readingRomaji: "etowaaru", createdAt: 3,
			senses: []seedSense{{definitionEnglish: "star (rare loanword)", partOfSpeech: "noun rare"}}},
	})

	ctx := context.Background()
	h, err := cat.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer h.Release()

	results, err := cat.SearchReverse(ctx, h, "star", 20, true, "", []string{"星"})
	if err != nil {
		t.Fatalf("SearchReverse: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected results")
	}
	if results[0].Headword != "星" {
		t.Errorf("expected 星 to sort first in the SQL pre-order, got %q", results[0].Headword)
	}
	if len(results[0].Senses) != 1 || results[0].Senses[0].DefinitionEnglish != "star" {
		t.Errorf("expected 星's matched sense to be populated, got %+v", results[0].Senses)
	}
}

func TestSearchReverseAttachesMatchedSenseAmongSeveral(t *testing.T) {
	cat, _ := newFixture(t, []seedEntry{
		{id: 1, headword: "引く", readingHiragana: "ひく", readingRomaji: "hiku", frequencyRank: freqPtr(200), createdAt: 1,
			senses: []seedSense{
				{definitionEnglish: "to pull", partOfSpeech: "verb godan"},
				{definitionEnglish: "to play (a stringed instrument)", partOfSpeech: "verb godan"},
			}},
	})

	ctx := context.Background()
	h, err := cat.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer h.Release()

	results, err := cat.SearchReverse(ctx, h, "pull", 20, true, "", nil)
	if err != nil {
		t.Fatalf("SearchReverse: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one match, got %d", len(results))
	}
	if len(results[0].Senses) != 1 {
		t.Fatalf("expected exactly one attached sense, got %d", len(results[0].Senses))
	}
	if results[0].Senses[0].DefinitionEnglish != "to pull" {
		t.Errorf("expected the matched sense (lowest sense_order), got %q", results[0].Senses[0].DefinitionEnglish)
	}
}

func TestFetchEntryIncludesSensesAndExamples(t *testing.T) {
	cat, db := newFixture(t, []seedEntry{
		{id: 1, headword: "行く", readingHiragana: "いく", readingRomaji: "iku", frequencyRank: freqPtr(100), createdAt: 1,
			senses: []seedSense{{definitionEnglish: "to go", partOfSpeech: "verb godan"}}},
	})
	if _, err := db.Exec(
		`INSERT INTO example_sentences(sense_id, japanese_text, english_translation, example_order) VALUES (1, '学校に行く', 'I go to school', 0)`,
	); err != nil {
		t.Fatalf("seed example: %v", err)
	}

	ctx := context.Background()
	h, err := cat.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer h.Release()

	entry, err := cat.FetchEntry(ctx, h, 1)
	if err != nil {
		t.Fatalf("FetchEntry: %v", err)
	}
	if entry == nil {
		t.Fatal("expected a non-nil entry")
	}
	if len(entry.Senses) != 1 {
		t.Fatalf("expected one sense, got %d", len(entry.Senses))
	}
	if len(entry.Senses[0].Examples) != 1 {
		t.Fatalf("expected one example, got %d", len(entry.Senses[0].Examples))
	}
	if entry.Senses[0].Examples[0].JapaneseText != "学校に行く" {
		t.Errorf("unexpected example text: %q", entry.Senses[0].Examples[0].JapaneseText)
	}
}

func TestFetchEntryMissingReturnsNil(t *testing.T) {
	cat, _ := newFixture(t, []seedEntry{
		{id: 1, headword: "行く", readingHiragana: "いく", readingRomaji: "iku", createdAt: 1},
	})

	ctx := context.Background()
	h, err := cat.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer h.Release()

	entry, err := cat.FetchEntry(ctx, h, 999)
	if err != nil {
		t.Fatalf("FetchEntry: %v", err)
	}
	if entry != nil {
		t.Errorf("expected nil for missing entry, got %+v", entry)
	}
}

func TestSearchReverseSQLInjectionGuard(t *testing.T) {
	cat, _ := newFixture(t, []seedEntry{
		{id: 1, headword: "本", readingHiragana: "ほん", readingRomaji: "hon", frequencyRank: freqPtr(50), createdAt: 1,
			senses: []seedSense{{definitionEnglish: "book", partOfSpeech: "noun common"}}},
	})

	ctx := context.Background()
	h, err := cat.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer h.Release()

	results, err := cat.SearchReverse(ctx, h, "'; DROP TABLE dictionary_entries; --", 20, true, "", nil)
	if err != nil {
		t.Fatalf("SearchReverse with hostile input returned an error instead of zero rows: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no matches for hostile input, got %+v", results)
	}

	// the table must still exist and be queryable afterward.
	again, err := cat.SearchReverse(ctx, h, "book", 20, true, "", nil)
	if err != nil {
		t.Fatalf("SearchReverse after hostile input: %v", err)
	}
	if len(again) != 1 {
		t.Errorf("expected dictionary_entries to survive the hostile query, got %d rows", len(again))
	}
}
