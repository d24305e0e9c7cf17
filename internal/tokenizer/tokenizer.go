// Package tokenizer converts signals between the dot/dash alphabet and their
// display tokens.
//
// The short display token is a strict prefix of the long one, so parsing
// matches the long token before the short token at every position.
package tokenizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Display tokens for a dot and a dash, in half-width katakana.
const (
	ShortToken = "ﾋﾞ"
	LongToken  = "ﾋﾞｰ"
)

const (
	dot  = '.'
	dash = '-'
)

// Alphabet is a pair of display tokens. Short renders a dot, Long renders a
// dash.
type Alphabet struct {
	Short string
	Long  string

	shortCompat string
	longCompat  string
}

// Default is the alphabet used by the codec.
var Default = NewAlphabet(ShortToken, LongToken)

// NewAlphabet returns an alphabet rendering dots as short and dashes as long.
// Parsing compares against the NFKC forms of both tokens.
func NewAlphabet(short, long string) Alphabet {
	return Alphabet{
		Short:       short,
		Long:        long,
		shortCompat: norm.NFKC.String(short),
		longCompat:  norm.NFKC.String(long),
	}
}

// Render translates a dot/dash signal into concatenated display tokens.
// Characters outside the alphabet are dropped.
func (a Alphabet) Render(signal string) string {
	var b strings.Builder
	b.Grow(len(signal) * len(a.Long))
	for _, r := range signal {
		switch r {
		case dot:
			b.WriteString(a.Short)
		case dash:
			b.WriteString(a.Long)
		}
	}
	return b.String()
}

// Parse translates a group of display tokens back into a dot/dash signal.
// The group is compared in NFKC form, so full-width and half-width renderings
// are both accepted. Literal '.' and '-' stand for themselves. It reports
// false when the group is empty or any part of it is not a token.
func (a Alphabet) Parse(group string) (string, bool) {
	g := norm.NFKC.String(group)
	if g == "" {
		return "", false
	}

	var b strings.Builder
	for i := 0; i < len(g); {
		switch {
		case a.longCompat != "" && strings.HasPrefix(g[i:], a.longCompat):
			b.WriteByte(dash)
			i += len(a.longCompat)
		case a.shortCompat != "" && strings.HasPrefix(g[i:], a.shortCompat):
			b.WriteByte(dot)
			i += len(a.shortCompat)
		case g[i] == dot || g[i] == dash:
			b.WriteByte(g[i])
			i++
		default:
			return "", false
		}
	}
	return b.String(), true
}

// Render translates a signal using the default alphabet.
func Render(signal string) string { return Default.Render(signal) }

// Parse translates a display-token group using the default alphabet.
func Parse(group string) (string, bool) { return Default.Parse(group) }
