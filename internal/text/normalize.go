// Package text implements the Unicode folding applied to input before table
// lookup.
package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	katakanaFirst = 'ァ' // U+30A1
	katakanaLast  = 'ヶ' // U+30F6

	// katakanaOffset is the distance between a katakana code point and its
	// hiragana counterpart.
	katakanaOffset = 0x60

	ideographicSpace = "　"
)

// SmallFolder maps small kana (youon, sokuon) to their base kana.
// It is satisfied by *table.Table.
type SmallFolder interface {
	FoldSmall(r rune) (rune, bool)
}

// FoldKana folds s into composed hiragana: compatibility normalization
// (NFKC), then katakana to hiragana, then small kana to
// base kana. Characters that are not kana are left untouched.
func FoldKana(s string, small SmallFolder) string {
	s = norm.NFKC.String(s)

	return strings.Map(func(r rune) rune {
		if r >= katakanaFirst && r <= katakanaLast {
			r -= katakanaOffset
		}
		if small != nil {
			if base, ok := small.FoldSmall(r); ok {
				return base
			}
		}
		return r
	}, s)
}

// Decompose returns the canonical decomposition (NFD) of s, splitting voiced
// and semi-voiced kana into a base kana and a trailing combining mark.
func Decompose(s string) string {
	return norm.NFD.String(s)
}

// Compat returns the compatibility composition (NFKC) of s.
func Compat(s string) string {
	return norm.NFKC.String(s)
}

// NormalizeSpaces replaces every ideographic space with an ASCII space.
func NormalizeSpaces(s string) string {
	return strings.ReplaceAll(s, ideographicSpace, " ")
}
