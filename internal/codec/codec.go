// Package codec converts between hiragana text and dot/dash signal notation
// rendered in display tokens, and guesses which direction a piece of text
// represents.
//
// All operations are pure functions of their input and the immutable tables;
// a Codec may be shared by any number of goroutines.
package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/example/go-kana-signal/internal/table"
	"github.com/example/go-kana-signal/internal/tokenizer"
)

// ErrUnconvertible reports that a conversion skipped part of its input.
var ErrUnconvertible = errors.New("input contains characters that cannot be converted")

// Separator marks a word boundary in signal notation.
const (
	Separator     = "/"
	WideSeparator = "／"
)

// Mode selects the direction of a conversion.
type Mode int

const (
	// ModeDecode converts signal notation to kana. It is the zero value.
	ModeDecode Mode = iota
	// ModeEncode converts kana to signal notation.
	ModeEncode
)

func (m Mode) String() string {
	switch m {
	case ModeDecode:
		return "decode"
	case ModeEncode:
		return "encode"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Opposite returns the reverse direction.
func (m Mode) Opposite() Mode {
	if m == ModeEncode {
		return ModeDecode
	}
	return ModeEncode
}

// ParseMode parses "encode" or "decode", case-insensitively.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "decode":
		return ModeDecode, nil
	case "encode":
		return ModeEncode, nil
	default:
		return ModeDecode, fmt.Errorf("invalid mode %q (expected encode|decode)", raw)
	}
}

// EncodeResult is the outcome of Encode.
type EncodeResult struct {
	Signal   string
	HasError bool
}

// DecodeResult is the outcome of Decode.
type DecodeResult struct {
	Kana     string
	HasError bool
}

// Result is the mode-agnostic outcome of Convert.
type Result struct {
	Mode     Mode
	Text     string
	HasError bool
}

// Err returns ErrUnconvertible when the conversion skipped input.
func (r Result) Err() error {
	if r.HasError {
		return ErrUnconvertible
	}
	return nil
}

// Codec binds a table to a display alphabet.
type Codec struct {
	table    *table.Table
	alphabet tokenizer.Alphabet
	signalCh map[rune]struct{}
}

// New returns a Codec over t rendering signals with a.
func New(t *table.Table, a tokenizer.Alphabet) *Codec {
	return &Codec{
		table:    t,
		alphabet: a,
		signalCh: signalRunes(a),
	}
}

// Default uses table.Default and tokenizer.Default.
var Default = New(table.Default, tokenizer.Default)

// Convert runs Encode or Decode depending on mode.
func (c *Codec) Convert(mode Mode, s string) Result {
	if mode == ModeEncode {
		r := c.Encode(s)
		return Result{Mode: mode, Text: r.Signal, HasError: r.HasError}
	}
	r := c.Decode(s)
	return Result{Mode: ModeDecode, Text: r.Kana, HasError: r.HasError}
}

// Encode converts kana text with the default codec.
func Encode(s string) EncodeResult { return Default.Encode(s) }

// Decode converts signal notation with the default codec.
func Decode(s string) DecodeResult { return Default.Decode(s) }

// GuessMode guesses the direction of s with the default codec.
func GuessMode(s string) (Mode, bool) { return Default.GuessMode(s) }

// Convert runs the default codec in the given mode.
func Convert(mode Mode, s string) Result { return Default.Convert(mode, s) }
