package codec

type markKind int

const (
	dakuten markKind = iota
	handakuten
)

// outputBuffer accumulates decoded kana. Diacritic signals rewrite the last
// element instead of appending.
type outputBuffer struct {
	items []string
}

func (b *outputBuffer) push(s string) { b.items = append(b.items, s) }

func (b *outputBuffer) String() string {
	var n int
	for _, s := range b.items {
		n += len(s)
	}
	buf := make([]byte, 0, n)
	for _, s := range b.items {
		buf = append(buf, s...)
	}
	return string(buf)
}

// applyMark replaces the last element with its voiced (dakuten) or
// semi-voiced (handakuten) variant. It reports false and leaves the buffer
// untouched when the buffer is empty or the last element has no variant.
func (c *Codec) applyMark(b *outputBuffer, kind markKind) bool {
	if len(b.items) == 0 {
		return false
	}
	last := b.items[len(b.items)-1]

	var (
		variant string
		ok      bool
	)
	switch kind {
	case dakuten:
		variant, ok = c.table.Voiced(last)
	case handakuten:
		variant, ok = c.table.SemiVoiced(last)
	}
	if !ok {
		return false
	}
	b.items[len(b.items)-1] = variant
	return true
}
