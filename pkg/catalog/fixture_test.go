package catalog

import (
	"database/sql"
	"path/filepath"
	"testing"
)

// seedEntry is the minimal shape fixture tests build dictionary rows
// from; id is assigned by the caller so fts rows can reference it.
type seedEntry struct {
	id              int64
	headword        string
	readingHiragana string
	readingRomaji   string
	frequencyRank   *int64
	createdAt       int64
	senses          []seedSense
}

type seedSense struct {
	definitionEnglish string
	definitionChinese string
	partOfSpeech      string
}

func freqPtr(v int64) *int64 { return &v }

// newFixture builds a writable SQLite file with the catalog schema at a
// temp path, seeds it with entries, and returns both the writable db (for
// assertions) and the read-only *Catalog the package under test exposes.
func newFixture(t *testing.T, entries []seedEntry) (*Catalog, *sql.DB) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.db")

	db, err := OpenFixture(path)
	if err != nil {
		t.Fatalf("OpenFixture: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	for _, e := range entries {
		if _, err := db.Exec(
			`INSERT INTO dictionary_entries(id, headword, reading_hiragana, reading_romaji, frequency_rank, created_at) VALUES (?,?,?,?,?,?)`,
			e.id, e.headword, e.readingHiragana, e.readingRomaji, e.frequencyRank, e.createdAt,
		); err != nil {
			t.Fatalf("seed entry %q: %v", e.headword, err)
		}
		if _, err := db.Exec(
			`INSERT INTO dictionary_fts(rowid, lemma, reading_kana, reading_romaji) VALUES (?,?,?,?)`,
			e.id, e.headword, e.readingHiragana, e.readingRomaji,
		); err != nil {
			t.Fatalf("seed fts %q: %v", e.headword, err)
		}
		for i, s := range e.senses {
			if _, err := db.Exec(
				`INSERT INTO word_senses(entry_id, definition_english, definition_chinese_simplified, part_of_speech, sense_order) VALUES (?,?,?,?,?)`,
				e.id, s.definitionEnglish, s.definitionChinese, s.partOfSpeech, i,
			); err != nil {
				t.Fatalf("seed sense for %q: %v", e.headword, err)
			}
		}
	}

	cat, err := Open(path)
	if err != nil {
		t.Fatalf("Open fixture: %v", err)
	}
	t.Cleanup(func() { cat.Close() })
	return cat, db
}
