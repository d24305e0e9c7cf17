package table

var defaultEntries = []Entry{
	{"あ", "--.--"}, {"い", ".-"}, {"う", "..-"}, {"え", "-.---"}, {"お", ".-..."},
	{"か", ".-.."}, {"き", "-.-.."}, {"く", "...-"}, {"け", "-.--"}, {"こ", "----"},
	{"さ", "-.-.-"}, {"し", "--.-."}, {"す", "---.-"}, {"せ", ".---."}, {"そ", "---."},
	{"た", "-."}, {"ち", "..-."}, {"つ", ".--."}, {"て", ".-.--"}, {"と", "..-.."},
	{"な", ".-."}, {"に", "-.-."}, {"ぬ", "...."}, {"ね", "--.-"}, {"の", "..--"},
	{"は", "-..."}, {"ひ", "--..-"}, {"ふ", "--.."}, {"へ", "."}, {"ほ", "-.."},
	{"ま", "-..-"}, {"み", "..-.-"}, {"む", "-"}, {"め", "-...-"}, {"も", "-..-."},
	{"や", ".--"}, {"ゆ", "-..--"}, {"よ", "--"},
	{"ら", "..."}, {"り", "--."}, {"る", "-.--."}, {"れ", "---"}, {"ろ", ".-.-"},
	{"わ", "-.-"}, {"を", ".---"}, {"ん", ".-.-."}, {"ゐ", ".-..-"}, {"ゑ", ".--.."},
	{"ー", ".--.-"}, {"、", ".-.-.-"}, {"。", ".-.-.."},
	{DakutenMark, ".."}, {HandakutenMark, "..--."},
}

var defaultDakuten = map[string]string{
	"か": "が", "き": "ぎ", "く": "ぐ", "け": "げ", "こ": "ご",
	"さ": "ざ", "し": "じ", "す": "ず", "せ": "ぜ", "そ": "ぞ",
	"た": "だ", "ち": "ぢ", "つ": "づ", "て": "で", "と": "ど",
	"は": "ば", "ひ": "び", "ふ": "ぶ", "へ": "べ", "ほ": "ぼ",
	"う": "ゔ",
}

var defaultHandakuten = map[string]string{
	"は": "ぱ", "ひ": "ぴ", "ふ": "ぷ", "へ": "ぺ", "ほ": "ぽ",
}

var defaultSmall = map[rune]rune{
	'ぁ': 'あ', 'ぃ': 'い', 'ぅ': 'う', 'ぇ': 'え', 'ぉ': 'お',
	'ゃ': 'や', 'ゅ': 'ゆ', 'ょ': 'よ', 'っ': 'つ', 'ゎ': 'わ',
}

// Default is the process-wide table. It is built once at package
// initialization and never mutated.
var Default = mustNew(defaultEntries, defaultDakuten, defaultHandakuten, defaultSmall)

func mustNew(entries []Entry, dakuten, handakuten map[string]string, small map[rune]rune) *Table {
	t, err := New(entries, dakuten, handakuten, small)
	if err != nil {
		panic("table: invalid built-in table: " + err.Error())
	}
	return t
}
