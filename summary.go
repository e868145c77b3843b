package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// PrintSummary renders the per-stage counts of the last run to w.
func (h *Harvester) PrintSummary(w io.Writer) {
	s := h.Stats
	rows := [][]string{
		{"files", humanize.Comma(int64(s.Files))},
		{"bytes", humanize.Bytes(s.Bytes)},
		{"raw matches", humanize.Comma(int64(s.Matches))},
	}
	for k := KindURL; k <= KindPhrase; k++ {
		if n := s.Kinds[k]; n > 0 {
			rows = append(rows, []string{"  " + k.String() + " matches", humanize.Comma(int64(n))})
		}
	}
	rows = append(rows, [][]string{
		{"corpus", humanize.Comma(int64(s.Corpus))},
		{"split", humanize.Comma(int64(s.Split))},
		{fmt.Sprintf("<= %d chars", MaxTokenLength), humanize.Comma(int64(s.InRange))},
		{"valid", humanize.Comma(int64(s.Valid))},
		{"cleaned", humanize.Comma(int64(s.Cleaned))},
		{"written", humanize.Comma(int64(s.Written))},
	}...)
	if s.Skipped > 0 {
		rows = append(rows, []string{"skipped", humanize.Comma(int64(s.Skipped))})
	}

	title := fmt.Sprintf("%s mode", h.Config.Mode)
	fmt.Fprintln(w, renderTable([]string{title, "count"}, rows, isTerminal(w)))
}

func renderTable(headers []string, rows [][]string, rounded bool) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	if rounded {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	// counts right-aligned
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: columns, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
