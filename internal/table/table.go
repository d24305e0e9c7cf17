// Package table holds the static kana/signal mappings used by the codec.
//
// A signal is a string over the two-symbol alphabet {'.', '-'}. The forward
// table maps each base hiragana character, the long vowel mark, the comma,
// the period and the two diacritic marks to a signal. The reverse table is
// derived from the forward table and excludes the diacritic marks, whose
// signals act as rewrite commands on decode.
package table

import (
	"errors"
	"fmt"
	"strings"
)

// Dot and Dash are the two symbols of the signal alphabet.
const (
	Dot  = '.'
	Dash = '-'
)

// Diacritic mark keys in the forward table. These are the spacing forms; the
// combining forms produced by canonical decomposition are CombiningDakuten and
// CombiningHandakuten.
const (
	DakutenMark    = "゛"
	HandakutenMark = "゜"

	CombiningDakuten    = '\u3099'
	CombiningHandakuten = '\u309a'
)

// ErrDuplicateSignal is returned by New when two forward entries share a signal.
var ErrDuplicateSignal = errors.New("duplicate signal")

// Entry pairs a kana (or mark) with its signal.
type Entry struct {
	Kana   string
	Signal string
}

// Table is an immutable bidirectional kana/signal mapping.
type Table struct {
	entries    []Entry
	forward    map[string]string
	reverse    map[string]string
	dakuten    map[string]string
	handakuten map[string]string
	small      map[rune]rune
}

// New builds a Table from forward entries and diacritic maps. It rejects empty
// signals, signals with characters outside the dot/dash alphabet, repeated
// kana and repeated signals. Both diacritic marks must be present.
func New(entries []Entry, dakuten, handakuten map[string]string, small map[rune]rune) (*Table, error) {
	t := &Table{
		entries:    make([]Entry, 0, len(entries)),
		forward:    make(map[string]string, len(entries)),
		reverse:    make(map[string]string, len(entries)),
		dakuten:    make(map[string]string, len(dakuten)),
		handakuten: make(map[string]string, len(handakuten)),
		small:      make(map[rune]rune, len(small)),
	}

	bySignal := make(map[string]string, len(entries))
	for _, e := range entries {
		if err := validSignal(e.Signal); err != nil {
			return nil, fmt.Errorf("entry %q: %w", e.Kana, err)
		}
		if _, dup := t.forward[e.Kana]; dup {
			return nil, fmt.Errorf("entry %q: duplicate kana", e.Kana)
		}
		if prev, dup := bySignal[e.Signal]; dup {
			return nil, fmt.Errorf("entries %q and %q share %q: %w", prev, e.Kana, e.Signal, ErrDuplicateSignal)
		}
		bySignal[e.Signal] = e.Kana
		t.forward[e.Kana] = e.Signal
		t.entries = append(t.entries, e)

		if e.Kana == DakutenMark || e.Kana == HandakutenMark {
			continue
		}
		t.reverse[e.Signal] = e.Kana
	}

	for _, mark := range []string{DakutenMark, HandakutenMark} {
		if _, ok := t.forward[mark]; !ok {
			return nil, fmt.Errorf("missing signal for diacritic mark %q", mark)
		}
	}

	for base, voiced := range dakuten {
		if _, ok := t.forward[base]; !ok {
			return nil, fmt.Errorf("dakuten base %q has no signal", base)
		}
		t.dakuten[base] = voiced
	}
	for base, semi := range handakuten {
		if _, ok := t.forward[base]; !ok {
			return nil, fmt.Errorf("handakuten base %q has no signal", base)
		}
		t.handakuten[base] = semi
	}
	for k, v := range small {
		t.small[k] = v
	}

	return t, nil
}

func validSignal(s string) error {
	if s == "" {
		return errors.New("empty signal")
	}
	if strings.Trim(s, string([]rune{Dot, Dash})) != "" {
		return fmt.Errorf("signal %q contains characters other than %q and %q", s, Dot, Dash)
	}
	return nil
}

// Signal returns the signal for a kana or diacritic mark.
func (t *Table) Signal(kana string) (string, bool) {
	s, ok := t.forward[kana]
	return s, ok
}

// Kana returns the kana for a signal. Diacritic signals are not resolved.
func (t *Table) Kana(signal string) (string, bool) {
	k, ok := t.reverse[signal]
	return k, ok
}

// DakutenSignal returns the reserved signal of the voicing mark.
func (t *Table) DakutenSignal() string { return t.forward[DakutenMark] }

// HandakutenSignal returns the reserved signal of the semi-voicing mark.
func (t *Table) HandakutenSignal() string { return t.forward[HandakutenMark] }

// Voiced returns the dakuten variant of base.
func (t *Table) Voiced(base string) (string, bool) {
	v, ok := t.dakuten[base]
	return v, ok
}

// SemiVoiced returns the handakuten variant of base.
func (t *Table) SemiVoiced(base string) (string, bool) {
	v, ok := t.handakuten[base]
	return v, ok
}

// FoldSmall maps a small kana to its base kana.
func (t *Table) FoldSmall(r rune) (rune, bool) {
	b, ok := t.small[r]
	return b, ok
}

// Entries returns a copy of the forward entries in table order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// VoicedPairs returns base/variant pairs of the dakuten map.
func (t *Table) VoicedPairs() map[string]string { return copyMap(t.dakuten) }

// SemiVoicedPairs returns base/variant pairs of the handakuten map.
func (t *Table) SemiVoicedPairs() map[string]string { return copyMap(t.handakuten) }

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
