package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/example/go-kana-signal/internal/codec"
	"github.com/example/go-kana-signal/internal/doctor"
	"github.com/example/go-kana-signal/internal/table"
	"github.com/example/go-kana-signal/internal/tokenizer"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check table invariants and round trips",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			result := doctor.Run(doctor.Config{
				Entries:  table.Default.Entries(),
				Variants: diacriticVariants(table.Default),
				Encode:   codec.Encode,
				Decode:   codec.Decode,
				Parse:    tokenizer.Parse,
				Short:    tokenizer.ShortToken,
				Long:     tokenizer.LongToken,
			}, out)

			if result.Failed() {
				for _, f := range result.Failures() {
					fmt.Fprintf(cmd.ErrOrStderr(), "FAIL: %s\n", f)
				}

				return errors.New("doctor checks failed")
			}

			_, _ = fmt.Fprintln(out, "doctor checks passed")

			return nil
		},
	}
}

// diacriticVariants returns every voiced and semi-voiced kana, sorted.
func diacriticVariants(t *table.Table) []string {
	var out []string
	for _, v := range t.VoicedPairs() {
		out = append(out, v)
	}
	for _, v := range t.SemiVoicedPairs() {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
