package codec

import (
	"strings"
	"unicode"

	"github.com/example/go-kana-signal/internal/table"
	textpkg "github.com/example/go-kana-signal/internal/text"
	"github.com/example/go-kana-signal/internal/tokenizer"
)

// Diacritic display forms accepted as signal-like, in spacing and combining
// form, plus the semi-voiced katakana that half-width renderings fold into.
var diacriticRunes = []rune{'゛', '゜', table.CombiningDakuten, table.CombiningHandakuten, 'ペ'}

func signalRunes(a tokenizer.Alphabet) map[rune]struct{} {
	set := make(map[rune]struct{})
	for _, tok := range []string{a.Short, a.Long} {
		for _, r := range textpkg.Compat(tok) {
			set[r] = struct{}{}
		}
	}
	for _, r := range diacriticRunes {
		set[r] = struct{}{}
	}
	for _, sep := range []string{Separator, WideSeparator} {
		for _, r := range sep {
			set[r] = struct{}{}
		}
	}
	return set
}

// GuessMode proposes ModeDecode when s consists only of display-token
// characters, diacritic forms, separators and whitespace, and ModeEncode
// otherwise. It reports false for blank input. The guess does not imply that
// decoding will succeed.
func (c *Codec) GuessMode(s string) (Mode, bool) {
	t := strings.TrimSpace(textpkg.Compat(textpkg.NormalizeSpaces(s)))
	if t == "" {
		return ModeDecode, false
	}
	for _, r := range t {
		if unicode.IsSpace(r) {
			continue
		}
		if _, ok := c.signalCh[r]; !ok {
			return ModeEncode, true
		}
	}
	return ModeDecode, true
}
