package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/example/go-kana-signal/internal/table"
	"github.com/example/go-kana-signal/internal/tokenizer"
	"github.com/spf13/cobra"
)

const (
	orderTable  = "table"
	orderKana   = "kana"
	orderSignal = "signal"
)

func newTableCmd() *cobra.Command {
	var order string
	var variants bool

	cmd := &cobra.Command{
		Use:   "table",
		Short: "List the kana/signal table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := tableRows(table.Default, order, variants)
			if err != nil {
				return err
			}
			return writeTable(cmd.OutOrStdout(), rows)
		},
	}

	cmd.Flags().StringVar(&order, "order", orderTable, "Row order (table|kana|signal)")
	cmd.Flags().BoolVar(&variants, "variants", false, "Include voiced and semi-voiced kana")

	return cmd
}

type tableRow struct {
	Kana   string
	Signal string
}

// tableRows returns forward entries, optionally followed by diacritic
// variants spelled as base signal plus mark signal, in the requested order.
func tableRows(t *table.Table, order string, variants bool) ([]tableRow, error) {
	var rows []tableRow
	for _, e := range t.Entries() {
		rows = append(rows, tableRow{Kana: e.Kana, Signal: e.Signal})
	}
	if variants {
		rows = append(rows, variantRows(t, t.VoicedPairs(), t.DakutenSignal())...)
		rows = append(rows, variantRows(t, t.SemiVoicedPairs(), t.HandakutenSignal())...)
	}

	switch strings.ToLower(strings.TrimSpace(order)) {
	case "", orderTable:
		return rows, nil
	case orderKana:
		return sortRows(rows, func(r tableRow) string { return r.Kana }), nil
	case orderSignal:
		return sortRows(rows, func(r tableRow) string { return r.Signal + "\x00" + r.Kana }), nil
	default:
		return nil, fmt.Errorf("invalid order %q (expected %s|%s|%s)", order, orderTable, orderKana, orderSignal)
	}
}

func variantRows(t *table.Table, pairs map[string]string, mark string) []tableRow {
	m := treemap.NewWithStringComparator()
	for base, v := range pairs {
		sig, ok := t.Signal(base)
		if !ok {
			continue
		}
		m.Put(v, tableRow{Kana: v, Signal: sig + " " + mark})
	}

	rows := make([]tableRow, 0, m.Size())
	for _, v := range m.Values() {
		rows = append(rows, v.(tableRow))
	}
	return rows
}

func sortRows(rows []tableRow, key func(tableRow) string) []tableRow {
	m := treemap.NewWithStringComparator()
	for _, r := range rows {
		m.Put(key(r), r)
	}

	out := make([]tableRow, 0, m.Size())
	it := m.Iterator()
	for it.Next() {
		out = append(out, it.Value().(tableRow))
	}
	return out
}

func writeTable(w io.Writer, rows []tableRow) error {
	for _, r := range rows {
		display := make([]string, 0, 2)
		for _, part := range strings.Fields(r.Signal) {
			display = append(display, tokenizer.Render(part))
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", r.Kana, r.Signal, strings.Join(display, " ")); err != nil {
			return err
		}
	}
	return nil
}
