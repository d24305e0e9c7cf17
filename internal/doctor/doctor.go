// Package doctor provides self-checks for the kana/signal tables and codec.
package doctor

import (
	"fmt"
	"io"

	"github.com/example/go-kana-signal/internal/codec"
	"github.com/example/go-kana-signal/internal/table"
)

// PassMark and FailMark are the prefix symbols printed for each check result.
const (
	PassMark = "✓"
	FailMark = "✗"
)

// EncodeFunc and DecodeFunc are the conversions under test.
type (
	EncodeFunc func(string) codec.EncodeResult
	DecodeFunc func(string) codec.DecodeResult
)

// ParseFunc translates a display-token group into a dot/dash signal.
type ParseFunc func(string) (string, bool)

// Config holds injectable dependencies for each doctor check.
type Config struct {
	// Entries are the forward table entries. Diacritic mark entries are
	// checked for uniqueness only.
	Entries []table.Entry
	// Variants are voiced and semi-voiced kana expected to round-trip.
	Variants []string
	Encode   EncodeFunc
	Decode   DecodeFunc
	// Parse, Short and Long check that the long display token is matched
	// before the short one. Skipped when Parse is nil.
	Parse ParseFunc
	Short string
	Long  string
}

// Result collects the outcome of all checks.
type Result struct {
	failures []string
}

// Failed returns true if any check failed.
func (r *Result) Failed() bool { return len(r.failures) > 0 }

// Failures returns the list of failure messages.
func (r *Result) Failures() []string { return append([]string(nil), r.failures...) }

// AddFailure appends an external failure message to the result.
func (r *Result) AddFailure(msg string) { r.failures = append(r.failures, msg) }

func (r *Result) fail(msg string) { r.failures = append(r.failures, msg) }

// Run executes all configured checks and writes human-readable output to w.
// Each check line is prefixed with PassMark or FailMark.
func Run(cfg Config, w io.Writer) Result {
	var res Result

	// ---- signal uniqueness ------------------------------------------------
	seen := make(map[string]string, len(cfg.Entries))
	dups := 0
	for _, e := range cfg.Entries {
		if prev, ok := seen[e.Signal]; ok {
			dups++
			res.fail(fmt.Sprintf("signal %q shared by %q and %q", e.Signal, prev, e.Kana))
			continue
		}
		seen[e.Signal] = e.Kana
	}
	if dups > 0 {
		fmt.Fprintf(w, "%s signal uniqueness: %d duplicate(s)\n", FailMark, dups)
	} else {
		fmt.Fprintf(w, "%s signal uniqueness: %d entries\n", PassMark, len(cfg.Entries))
	}

	// ---- token order ------------------------------------------------------
	if cfg.Parse == nil {
		fmt.Fprintf(w, "%s token order: skipped\n", PassMark)
	} else if err := checkTokenOrder(cfg.Parse, cfg.Short, cfg.Long); err != nil {
		res.fail(fmt.Sprintf("token order: %v", err))
		fmt.Fprintf(w, "%s token order: %v\n", FailMark, err)
	} else {
		fmt.Fprintf(w, "%s token order: long before short\n", PassMark)
	}

	if cfg.Encode == nil || cfg.Decode == nil {
		fmt.Fprintf(w, "%s round trip: skipped\n", PassMark)
		return res
	}

	// ---- base round trip --------------------------------------------------
	kana := make([]string, 0, len(cfg.Entries))
	for _, e := range cfg.Entries {
		if e.Kana == table.DakutenMark || e.Kana == table.HandakutenMark {
			continue
		}
		kana = append(kana, e.Kana)
	}
	roundTrip(&res, w, "base round trip", kana, cfg.Encode, cfg.Decode)

	// ---- diacritic round trip ---------------------------------------------
	roundTrip(&res, w, "diacritic round trip", cfg.Variants, cfg.Encode, cfg.Decode)

	return res
}

func roundTrip(res *Result, w io.Writer, name string, kana []string, enc EncodeFunc, dec DecodeFunc) {
	failed := 0
	for _, k := range kana {
		if err := checkRoundTrip(k, enc, dec); err != nil {
			failed++
			res.fail(fmt.Sprintf("%s: %v", name, err))
		}
	}
	if failed > 0 {
		fmt.Fprintf(w, "%s %s: %d of %d failed\n", FailMark, name, failed, len(kana))
		return
	}
	fmt.Fprintf(w, "%s %s: %d kana\n", PassMark, name, len(kana))
}

func checkRoundTrip(k string, enc EncodeFunc, dec DecodeFunc) error {
	e := enc(k)
	if e.HasError {
		return fmt.Errorf("encode %q reported unconvertible input", k)
	}
	d := dec(e.Signal)
	if d.HasError {
		return fmt.Errorf("decode %q (from %q) reported unconvertible input", e.Signal, k)
	}
	if d.Kana != k {
		return fmt.Errorf("%q decoded as %q", k, d.Kana)
	}
	return nil
}

func checkTokenOrder(parse ParseFunc, short, long string) error {
	cases := []struct {
		group string
		want  string
	}{
		{short + long, ".-"},
		{long + short, "-."},
	}
	for _, c := range cases {
		got, ok := parse(c.group)
		if !ok {
			return fmt.Errorf("%q did not parse", c.group)
		}
		if got != c.want {
			return fmt.Errorf("%q parsed as %q, want %q", c.group, got, c.want)
		}
	}
	return nil
}
