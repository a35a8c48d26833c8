package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/phyten/urlx/internal/engine"
	"github.com/phyten/urlx/internal/link"
	"github.com/phyten/urlx/internal/output"
	"github.com/phyten/urlx/internal/termcolor"
	"github.com/phyten/urlx/internal/textutil"
)

type tableStyle struct {
	Color     bool
	Hyperlink bool
	Truncate  int
}

func printTSV(w io.Writer, items []engine.Item, sel output.FieldSelection) {
	tw := tabwriter.NewWriter(w, 0, 8, 0, '\t', 0) // tabs only
	fmt.Fprintln(tw, strings.Join(output.Headers(sel.Fields), "\t"))
	for _, it := range items {
		fmt.Fprintln(tw, strings.Join(output.RowValues(it, sel.Fields), "\t"))
	}
	_ = tw.Flush()
}

func printTable(w io.Writer, items []engine.Item, sel output.FieldSelection, style tableStyle) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(output.Headers(sel.Fields), "\t"))
	for _, it := range items {
		row := output.RowValues(it, sel.Fields)
		for i, f := range sel.Fields {
			if f.Key != "url" {
				continue
			}
			cell := row[i]
			if style.Truncate > 0 {
				cell = textutil.TruncateByWidth(cell, style.Truncate, "…")
			}
			cell = termcolor.Cyan(style.Color, cell)
			if style.Hyperlink {
				cell = link.Hyperlink(link.Target(it.URL), cell)
			}
			row[i] = cell
		}
		line := strings.Join(row, "\t")
		if it.Excluded {
			line = termcolor.Dim(style.Color, line)
		}
		fmt.Fprintln(tw, line)
	}
	_ = tw.Flush()
}
