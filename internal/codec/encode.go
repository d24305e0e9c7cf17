package codec

import (
	"strings"
	"unicode"

	"github.com/example/go-kana-signal/internal/table"
	textpkg "github.com/example/go-kana-signal/internal/text"
)

// token is one unit of encoder output: a signal or a word separator.
type token struct {
	sep    bool
	signal string
}

var sepToken = token{sep: true}

// Encode converts kana text to signal notation. Voiced and semi-voiced kana
// become two tokens, the base kana followed by the diacritic signal.
// Characters without a signal set HasError and are skipped.
func (c *Codec) Encode(s string) EncodeResult {
	in := textpkg.Decompose(textpkg.FoldKana(s, c.table))

	var res EncodeResult
	tokens := make([]token, 0, len(in))
	for _, r := range in {
		switch {
		case r == '/' || unicode.IsSpace(r):
			tokens = append(tokens, sepToken)
		case r == table.CombiningDakuten:
			tokens = append(tokens, token{signal: c.table.DakutenSignal()})
		case r == table.CombiningHandakuten:
			tokens = append(tokens, token{signal: c.table.HandakutenSignal()})
		default:
			sig, ok := c.table.Signal(string(r))
			if !ok {
				res.HasError = true
				continue
			}
			tokens = append(tokens, token{signal: sig})
		}
	}

	res.Signal = c.join(compactSeparators(tokens))
	return res
}

// compactSeparators collapses runs of separators and drops separators at
// either end.
func compactSeparators(tokens []token) []token {
	out := tokens[:0]
	for _, t := range tokens {
		if t.sep && (len(out) == 0 || out[len(out)-1].sep) {
			continue
		}
		out = append(out, t)
	}
	if n := len(out); n > 0 && out[n-1].sep {
		out = out[:n-1]
	}
	return out
}

func (c *Codec) join(tokens []token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		if t.sep {
			parts[i] = Separator
			continue
		}
		parts[i] = c.alphabet.Render(t.signal)
	}
	return strings.Join(parts, " ")
}
