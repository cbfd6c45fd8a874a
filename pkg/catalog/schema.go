package catalog

// schemaSQL is the DDL for the bundled dictionary artifact. The artifact
// itself is built by a separate bundling pipeline; this definition exists
// so tests (and any tooling that wants to materialize a fixture) can
// create a schema-compatible SQLite file without depending on that
// pipeline. Execution of the full batch is delegated to SQLite rather
// than naive semicolon-splitting, since a statement can legitimately
// contain one (the FTS5 tokenize argument).
const schemaSQL = `
CREATE TABLE IF NOT EXISTS dictionary_entries(
  id INTEGER PRIMARY KEY,
  headword TEXT NOT NULL,
  reading_hiragana TEXT NOT NULL,
  reading_romaji TEXT NOT NULL,
  frequency_rank INTEGER,
  pitch_accent TEXT,
  created_at INTEGER NOT NULL DEFAULT (unixepoch())
);

CREATE TABLE IF NOT EXISTS word_senses(
  id INTEGER PRIMARY KEY,
  entry_id INTEGER NOT NULL REFERENCES dictionary_entries(id) ON DELETE CASCADE,
  definition_english TEXT NOT NULL,
  definition_chinese_simplified TEXT,
  definition_chinese_traditional TEXT,
  part_of_speech TEXT NOT NULL,
  usage_notes TEXT,
  sense_order INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS example_sentences(
  id INTEGER PRIMARY KEY,
  sense_id INTEGER NOT NULL REFERENCES word_senses(id) ON DELETE CASCADE,
  japanese_text TEXT NOT NULL,
  english_translation TEXT NOT NULL,
  chinese_translation TEXT,
  example_order INTEGER NOT NULL
);

CREATE VIRTUAL TABLE IF NOT EXISTS dictionary_fts USING fts5(
  lemma, reading_kana, reading_romaji,
  tokenize='unicode61 remove_diacritics 0',
  content=''
);

CREATE INDEX IF NOT EXISTS idx_frequency_rank ON dictionary_entries(frequency_rank);
CREATE INDEX IF NOT EXISTS idx_entry_id ON word_senses(entry_id, sense_order);
CREATE INDEX IF NOT EXISTS idx_sense_id ON example_sentences(sense_id, example_order);
`

const requiredTables = 4

// requiredTableNames lists the tables/virtual-tables whose presence is
// verified at open time.
var requiredTableNames = []string{
	"dictionary_entries",
	"dictionary_fts",
	"word_senses",
	"example_sentences",
}
