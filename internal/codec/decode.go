package codec

import (
	"strings"

	textpkg "github.com/example/go-kana-signal/internal/text"
)

// Decode converts whitespace-separated display-token groups to kana. A
// separator group becomes a space. Groups that do not parse, do not resolve
// to a kana, or carry a diacritic that cannot be applied set HasError and are
// skipped.
func (c *Codec) Decode(s string) DecodeResult {
	raw := strings.TrimSpace(textpkg.NormalizeSpaces(s))
	if raw == "" {
		return DecodeResult{}
	}

	var (
		res DecodeResult
		out outputBuffer
	)
	for _, group := range strings.Fields(raw) {
		if group == Separator || group == WideSeparator {
			out.push(" ")
			continue
		}

		sig, ok := c.alphabet.Parse(group)
		if !ok {
			res.HasError = true
			continue
		}

		switch sig {
		case c.table.DakutenSignal():
			if !c.applyMark(&out, dakuten) {
				res.HasError = true
			}
		case c.table.HandakutenSignal():
			if !c.applyMark(&out, handakuten) {
				res.HasError = true
			}
		default:
			kana, ok := c.table.Kana(sig)
			if !ok {
				res.HasError = true
				continue
			}
			out.push(kana)
		}
	}

	res.Kana = collapseSpaces(out.String())
	return res
}

func collapseSpaces(s string) string {
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return strings.TrimSpace(s)
}
