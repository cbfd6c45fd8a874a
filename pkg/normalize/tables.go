package normalize

// kunreiDigraphs is the deterministic Kunrei-shiki → Hepburn rewrite
// table applied to a romaji query before it is converted to kana or
// matched against the romaji column. Longer digraphs are listed first
// so the caller can match greedily.
var kunreiDigraphs = []struct {
	from, to string
}{
	{"sya", "sha"}, {"syu", "shu"}, {"syo", "sho"},
	{"tya", "cha"}, {"tyu", "chu"}, {"tyo", "cho"},
	{"jya", "ja"}, {"jyu", "ju"}, {"jyo", "jo"},
	{"si", "shi"}, {"ti", "chi"}, {"tu", "tsu"},
	{"hu", "fu"}, {"zi", "ji"}, {"di", "ji"},
}

// doubledVowels collapses a doubled vowel (or the "ou" macron-equivalent
// spelling) to the package's single internal macron representation. This
// is an internal canonical form, not a display string.
var doubledVowels = []struct {
	from, to string
}{
	{"aa", "ā"}, // ā
	{"ii", "ī"}, // ī
	{"uu", "ū"}, // ū
	{"ee", "ē"}, // ē
	{"oo", "ō"}, // ō
	{"ou", "ō"}, // ō
}

// romajiSyllables maps Hepburn romaji syllables to hiragana, longest
// syllables first so greedy matching in romajiToKana prefers "kya" over
// "ka" followed by a stray "y".
var romajiSyllables = []struct {
	romaji, kana string
}{
	// digraphs (palatalized), three-letter romaji first
	{"kya", "きゃ"}, {"kyu", "きゅ"}, {"kyo", "きょ"},
	{"sha", "しゃ"}, {"shu", "しゅ"}, {"sho", "しょ"},
	{"cha", "ちゃ"}, {"chu", "ちゅ"}, {"cho", "ちょ"},
	{"nya", "にゃ"}, {"nyu", "にゅ"}, {"nyo", "にょ"},
	{"hya", "ひゃ"}, {"hyu", "ひゅ"}, {"hyo", "ひょ"},
	{"mya", "みゃ"}, {"myu", "みゅ"}, {"myo", "みょ"},
	{"rya", "りゃ"}, {"ryu", "りゅ"}, {"ryo", "りょ"},
	{"gya", "ぎゃ"}, {"gyu", "ぎゅ"}, {"gyo", "ぎょ"},
	{"ja", "じゃ"}, {"ju", "じゅ"}, {"jo", "じょ"},
	{"bya", "びゃ"}, {"byu", "びゅ"}, {"byo", "びょ"},
	{"pya", "ぴゃ"}, {"pyu", "ぴゅ"}, {"pyo", "ぴょ"},

	// gemination: romaji doubled consonant -> っ + syllable, handled
	// separately in romajiToKana before this table is consulted.

	{"shi", "し"}, {"chi", "ち"}, {"tsu", "つ"},

	{"ka", "か"}, {"ki", "き"}, {"ku", "く"}, {"ke", "け"}, {"ko", "こ"},
	{"sa", "さ"}, {"su", "す"}, {"se", "せ"}, {"so", "そ"},
	{"ta", "た"}, {"te", "て"}, {"to", "と"},
	{"na", "な"}, {"ni", "に"}, {"nu", "ぬ"}, {"ne", "ね"}, {"no", "の"},
	{"ha", "は"}, {"hi", "ひ"}, {"fu", "ふ"}, {"he", "へ"}, {"ho", "ほ"},
	{"ma", "ま"}, {"mi", "み"}, {"mu", "む"}, {"me", "め"}, {"mo", "も"},
	{"ya", "や"}, {"yu", "ゆ"}, {"yo", "よ"},
	{"ra", "ら"}, {"ri", "り"}, {"ru", "る"}, {"re", "れ"}, {"ro", "ろ"},
	{"wa", "わ"}, {"wo", "を"},

	{"ga", "が"}, {"gi", "ぎ"}, {"gu", "ぐ"}, {"ge", "げ"}, {"go", "ご"},
	{"za", "ざ"}, {"ji", "じ"}, {"zu", "ず"}, {"ze", "ぜ"}, {"zo", "ぞ"},
	{"da", "だ"}, {"de", "で"}, {"do", "ど"},
	{"ba", "ば"}, {"bi", "び"}, {"bu", "ぶ"}, {"be", "べ"}, {"bo", "ぼ"},
	{"pa", "ぱ"}, {"pi", "ぴ"}, {"pu", "ぷ"}, {"pe", "ぺ"}, {"po", "ぽ"},

	{"a", "あ"}, {"i", "い"}, {"u", "う"}, {"e", "え"}, {"o", "お"},
	{"n", "ん"},
}
