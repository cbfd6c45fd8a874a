package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// candidatePoolMultiplier over-fetches past the caller's requested limit
// so the ranking engine (which applies the authoritative bucket/score
// ordering) has enough candidates to choose the true top-N from; SQL
// only needs to produce a reasonable, deterministic pre-order.
const candidatePoolMultiplier = 4

const maxResultCap = 100

const searchForwardSQL = `
SELECT e.id, e.headword, e.reading_hiragana, e.reading_romaji,
       e.frequency_rank, e.pitch_accent, e.created_at,
       s.id, s.definition_english, s.part_of_speech, s.sense_order
FROM dictionary_fts f
JOIN dictionary_entries e ON e.id = f.rowid
LEFT JOIN word_senses s ON s.entry_id = e.id
  AND s.sense_order = (SELECT MIN(sense_order) FROM word_senses WHERE entry_id = e.id)
WHERE dictionary_fts MATCH ?
ORDER BY
  COALESCE(e.frequency_rank, 999999),
  e.created_at,
  e.id
LIMIT ?
`

const fetchEntrySQL = `
SELECT id, headword, reading_hiragana, reading_romaji, frequency_rank, pitch_accent, created_at
FROM dictionary_entries WHERE id = ?
`

const fetchSensesSQL = `
SELECT id, entry_id, definition_english, definition_chinese_simplified, definition_chinese_traditional,
       part_of_speech, usage_notes, sense_order
FROM word_senses WHERE entry_id = ? ORDER BY sense_order ASC
`

const fetchExamplesSQL = `
SELECT id, sense_id, japanese_text, english_translation, chinese_translation, example_order
FROM example_sentences WHERE sense_id = ? ORDER BY example_order ASC
`

// clampLimit truncates a caller-requested limit to min(limit, 100).
func clampLimit(limit int) int {
	if limit <= 0 || limit > maxResultCap {
		return maxResultCap
	}
	return limit
}

// ftsMatchExpr builds an FTS5 MATCH expression with prefix expansion
// ("term"*) across the three indexed columns. The term is written as an
// FTS5 string, so characters the normalizer keeps (apostrophes,
// parentheses, hyphens) are never read as FTS5 query syntax; this
// function never interpolates raw user text into SQL — the expression is
// always passed as a bound parameter.
func ftsMatchExpr(normalizedQuery string) string {
	fields := []string{"lemma", "reading_kana", "reading_romaji"}
	quoted := strings.ReplaceAll(normalizedQuery, `"`, `""`)
	var clauses []string
	for _, f := range fields {
		clauses = append(clauses, fmt.Sprintf(`%s:"%s"*`, f, quoted))
	}
	return strings.Join(clauses, " OR ")
}

// SearchForward runs the FTS MATCH against {lemma, reading_kana,
// reading_romaji} with prefix expansion, applying a deterministic
// frequency-then-recency pre-order, and returns Entry values carrying
// their first sense (by sense_order) so the ranking engine can weigh
// part-of-speech and hint features; full senses/examples still require
// a separate FetchEntry call.
func (c *Catalog) SearchForward(ctx context.Context, h *Handle, normalizedQuery string, limit int) ([]Entry, error) {
	if h == nil {
		return nil, NewQueryFailed("search_forward", fmt.Errorf("nil handle"))
	}
	pool := clampLimit(limit) * candidatePoolMultiplier
	rows, err := c.searchForward.QueryContext(ctx, ftsMatchExpr(normalizedQuery), pool)
	if err != nil {
		return retryOrFail(ctx, err, func() (*sql.Rows, error) {
			return c.searchForward.QueryContext(ctx, ftsMatchExpr(normalizedQuery), pool)
		})
	}
	return scanEntriesWithSense(rows)
}

// SearchReverse joins word_senses.definition_english (or the Chinese
// columns, selected by isEnglish) against the query using a LIKE
// clause, favoring canonical headwords and common-frequency entries in
// its pre-order. Each returned Entry carries the sense whose definition
// text actually satisfied the LIKE match (lowest sense_order when more
// than one sense on the entry matches), so the ranking engine's
// part-of-speech and parenthetical-hint features see real data instead
// of an always-empty Senses slice.
func (c *Catalog) SearchReverse(ctx context.Context, h *Handle, query string, limit int, isEnglish bool, hint string, canonical []string) ([]Entry, error) {
	if h == nil {
		return nil, NewQueryFailed("search_reverse", fmt.Errorf("nil handle"))
	}

	definitionColumn := "s.definition_english"
	if !isEnglish {
		definitionColumn = "COALESCE(s.definition_chinese_simplified, s.definition_chinese_traditional)"
	}

	canonicalPlaceholders := "('\x00')" // never matches when canonical is empty
	var canonicalArgs []any
	if len(canonical) > 0 {
		ph := make([]string, len(canonical))
		for i, hw := range canonical {
			ph[i] = "?"
			canonicalArgs = append(canonicalArgs, hw)
		}
		canonicalPlaceholders = "(" + strings.Join(ph, ",") + ")"
	}

	// hint itself is not applied here; it is scored by the ranking
	// engine's parenthetical_hint feature once candidates are loaded.
	_ = hint

	// The SQL layer only needs to produce a reasonable, deterministic
	// *pre-order* over the candidate set: canonical headwords and
	// common-frequency entries first. The authoritative ordering
	// (parenthetical-hint weighting, POS weighting, katakana demotion)
	// is computed by the pure Go ranking engine over this candidate set.
	//
	// An entry can carry several senses that all match the LIKE clause;
	// ROW_NUMBER, partitioned per entry and ordered by sense_order, picks
	// a single deterministic matching sense (the earliest by sense_order)
	// to attach, rather than SQLite's GROUP BY leaving that choice
	// unspecified.
	sqlText := fmt.Sprintf(`
WITH matched AS (
  SELECT e.id AS entry_id, e.headword, e.reading_hiragana, e.reading_romaji,
         e.frequency_rank, e.pitch_accent, e.created_at,
         s.id AS sense_id, s.definition_english, s.part_of_speech, s.sense_order,
         ROW_NUMBER() OVER (PARTITION BY e.id ORDER BY s.sense_order) AS rn
  FROM dictionary_entries e
  JOIN word_senses s ON s.entry_id = e.id
  WHERE %s LIKE ?
)
SELECT entry_id, headword, reading_hiragana, reading_romaji,
       frequency_rank, pitch_accent, created_at,
       sense_id, definition_english, part_of_speech, sense_order
FROM matched
WHERE rn = 1
ORDER BY
  CASE WHEN headword IN %s THEN 0 ELSE 1 END,
  CASE WHEN frequency_rank IS NOT NULL AND frequency_rank <= 5000 THEN 0 ELSE 1 END,
  COALESCE(frequency_rank, 999999),
  created_at,
  entry_id
LIMIT ?
`, definitionColumn, canonicalPlaceholders)

	queryArg := "%" + query + "%"
	finalArgs := append([]any{queryArg}, canonicalArgs...)
	finalArgs = append(finalArgs, clampLimit(limit)*candidatePoolMultiplier)

	rows, err := c.db.QueryContext(ctx, sqlText, finalArgs...)
	if err != nil {
		return nil, NewQueryFailed("search_reverse", err)
	}
	return scanEntriesWithSense(rows)
}

// FetchEntry returns the entry with id, including all senses (sorted by
// sense_order) and all examples per sense (sorted by example_order), or
// nil if no such entry exists.
func (c *Catalog) FetchEntry(ctx context.Context, h *Handle, id int64) (*Entry, error) {
	if h == nil {
		return nil, NewQueryFailed("fetch_entry", fmt.Errorf("nil handle"))
	}
	row := c.fetchEntry.QueryRowContext(ctx, id)
	e, err := scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, NewQueryFailed("fetch_entry", err)
	}

	senseRows, err := c.db.QueryContext(ctx, fetchSensesSQL, e.ID)
	if err != nil {
		return nil, NewQueryFailed("fetch_entry senses", err)
	}
	defer senseRows.Close()

	for senseRows.Next() {
		var s Sense
		var defZh, defZhTrad, usage sql.NullString
		if err := senseRows.Scan(&s.ID, &s.EntryID, &s.DefinitionEnglish, &defZh, &defZhTrad, &s.PartOfSpeech, &usage, &s.SenseOrder); err != nil {
			return nil, NewQueryFailed("scan sense", err)
		}
		s.DefinitionChineseSimplified = defZh.String
		s.DefinitionChineseTraditional = defZhTrad.String
		s.UsageNotes = usage.String

		exRows, err := c.db.QueryContext(ctx, fetchExamplesSQL, s.ID)
		if err != nil {
			return nil, NewQueryFailed("fetch_entry examples", err)
		}
		for exRows.Next() {
			var ex Example
			var zh sql.NullString
			if err := exRows.Scan(&ex.ID, &ex.SenseID, &ex.JapaneseText, &ex.EnglishTranslation, &zh, &ex.ExampleOrder); err != nil {
				exRows.Close()
				return nil, NewQueryFailed("scan example", err)
			}
			ex.ChineseTranslation = zh.String
			s.Examples = append(s.Examples, ex)
		}
		exRows.Close()

		e.Senses = append(e.Senses, s)
	}
	if err := senseRows.Err(); err != nil {
		return nil, NewQueryFailed("fetch_entry senses", err)
	}

	return &e, nil
}

// rowScanner abstracts over *sql.Row and *sql.Rows, both of which
// implement Scan with the same signature.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (Entry, error) {
	return scanEntryRows(row)
}

func scanEntryRows(row rowScanner) (Entry, error) {
	var e Entry
	var freq sql.NullInt64
	var pitch sql.NullString
	if err := row.Scan(&e.ID, &e.Headword, &e.ReadingHiragana, &e.ReadingRomaji, &freq, &pitch, &e.CreatedAt); err != nil {
		return Entry{}, err
	}
	if freq.Valid {
		v := freq.Int64
		e.FrequencyRank = &v
	}
	e.PitchAccent = pitch.String
	return e, nil
}

// scanEntriesWithSense scans multi-row result sets whose entry columns
// (as read by scanEntryRows) are followed by one joined word_senses row per entry (sense id,
// definition_english, part_of_speech, sense_order), as produced by
// SearchForward and SearchReverse. The sense columns are nullable: a
// forward-search LEFT JOIN hit with no senses at all scans them as
// unset and leaves Entry.Senses nil.
func scanEntriesWithSense(rows *sql.Rows) ([]Entry, error) {
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		e, err := scanEntryWithSenseRow(rows)
		if err != nil {
			return nil, NewQueryFailed("scan entry", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, NewQueryFailed("scan entries", err)
	}
	return out, nil
}

func scanEntryWithSenseRow(row rowScanner) (Entry, error) {
	var e Entry
	var freq sql.NullInt64
	var pitch sql.NullString
	var senseID sql.NullInt64
	var defEnglish, pos sql.NullString
	var senseOrder sql.NullInt64
	if err := row.Scan(
		&e.ID, &e.Headword, &e.ReadingHiragana, &e.ReadingRomaji, &freq, &pitch, &e.CreatedAt,
		&senseID, &defEnglish, &pos, &senseOrder,
	); err != nil {
		return Entry{}, err
	}
	if freq.Valid {
		v := freq.Int64
		e.FrequencyRank = &v
	}
	e.PitchAccent = pitch.String
	if senseID.Valid {
		e.Senses = []Sense{{
			ID:                senseID.Int64,
			EntryID:           e.ID,
			DefinitionEnglish: defEnglish.String,
			PartOfSpeech:      pos.String,
			SenseOrder:        int(senseOrder.Int64),
		}}
	}
	return e, nil
}

// retryOrFail retries a failed query at most once on a transient SQLite
// busy condition, otherwise wraps it as QueryFailed immediately. It is
// only used by SearchForward's retry path.
func retryOrFail(ctx context.Context, firstErr error, retry func() (*sql.Rows, error)) ([]Entry, error) {
	if !isTransientBusy(firstErr) {
		return nil, NewQueryFailed("search_forward", firstErr)
	}
	rows, err := retry()
	if err != nil {
		return nil, NewQueryFailed("search_forward", err)
	}
	return scanEntriesWithSense(rows)
}

func isTransientBusy(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "database is locked") || strings.Contains(s, "busy")
}
