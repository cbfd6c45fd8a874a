// Package canonical implements the canonical mapping table: a fixed
// English/Chinese gloss -> Japanese headword table used by the
// reverse-search path to prefer the native term a fluent speaker would
// actually use. Coverage is intentionally held at roughly 70 entries —
// the everyday vocabulary reverse search most benefits from — rather
// than grown without bound (see DESIGN.md).
package canonical

import (
	"regexp"
	"strings"
)

// CanonicalMap is the compile-time gloss -> headword table. Keys are
// lowercase English (or romanized Chinese) glosses; values are the
// canonical Japanese headwords a search for that gloss should surface
// first, ordered most-canonical-first.
var CanonicalMap = map[string][]string{
	"star":     {"星"},
	"go":       {"行く"},
	"come":     {"来る"},
	"eat":      {"食べる"},
	"drink":    {"飲む"},
	"see":      {"見る"},
	"hear":     {"聞く"},
	"speak":    {"話す"},
	"read":     {"読む"},
	"write":    {"書く"},
	"buy":      {"買う"},
	"sell":     {"売る"},
	"make":     {"作る"},
	"do":       {"する"},
	"have":     {"持つ"},
	"give":     {"あげる", "くれる"},
	"receive":  {"もらう"},
	"know":     {"知る"},
	"think":    {"思う"},
	"wait":     {"待つ"},
	"meet":     {"会う"},
	"live":     {"住む"},
	"die":      {"死ぬ"},
	"play":     {"遊ぶ"},
	"study":    {"勉強する"},
	"work":     {"働く"},
	"walk":     {"歩く"},
	"run":      {"走る"},
	"sleep":    {"寝る"},
	"wake up":  {"起きる"},
	"sit":      {"座る"},
	"stand":    {"立つ"},
	"enter":    {"入る"},
	"leave":    {"出る"},
	"open":     {"開ける"},
	"close":    {"閉める"},
	"begin":    {"始める"},
	"finish":   {"終わる"},
	"use":      {"使う"},
	"help":     {"手伝う"},
	"teach":    {"教える"},
	"learn":    {"習う"},
	"language": {"言語"},
	"japanese": {"日本語"},
	"english":  {"英語"},
	"chinese":  {"中国語"},
	"water":    {"水"},
	"fire":     {"火"},
	"earth":    {"地球"},
	"wind":     {"風"},
	"sky":      {"空"},
	"moon":     {"月"},
	"sun":      {"太陽"},
	"rain":     {"雨"},
	"snow":     {"雪"},
	"cloud":    {"雲"},
	"tree":     {"木"},
	"flower":   {"花"},
	"mountain": {"山"},
	"river":    {"川"},
	"sea":      {"海"},
	"cat":      {"猫"},
	"dog":      {"犬"},
	"bird":     {"鳥"},
	"fish":     {"魚"},
	"school":   {"学校"},
	"company":  {"会社"},
	"house":    {"家"},
	"car":      {"車"},
	"book":     {"本"},
	"phone":    {"電話"},
	"money":    {"お金"},
	"time":     {"時間"},
	"today":    {"今日"},
	"tomorrow": {"明日"},
	"yesterday": {"昨日"},
}

// parenthetical matches a parenthesized hint anywhere in the query,
// e.g. "japanese (language)".
var parenthetical = regexp.MustCompile(`\s*\([^)]*\)\s*`)

// firstParenthetical captures the content of the first parenthesized
// group, used by ExtractHint.
var firstParenthetical = regexp.MustCompile(`\(([^)]*)\)`)

// ExtractBase returns q with every `\s*\([^)]*\)\s*` group removed and
// outer whitespace trimmed.
func ExtractBase(q string) string {
	return strings.TrimSpace(parenthetical.ReplaceAllString(q, ""))
}

// ExtractHint returns the first parenthetical content, lowercased and
// trimmed, or "" if q has none.
func ExtractHint(q string) string {
	m := firstParenthetical.FindStringSubmatch(q)
	if m == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(m[1]))
}

// CanonicalHeadwords performs the O(1) lookup for english, which it
// lowercases and trims itself, returning the set of canonical headwords
// or nil if english has no entry.
func CanonicalHeadwords(english string) []string {
	return CanonicalMap[strings.ToLower(strings.TrimSpace(english))]
}
