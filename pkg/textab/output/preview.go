package output

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ukaji3/textab/pkg/textab/models"
)

// WritePreview renders every table to w in input order, its name above a
// text rendering of its header and rows, for inspecting a parse without
// producing a workbook.
func WritePreview(w io.Writer, tables []*models.Table) error {
	for i, tbl := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, tbl.Name); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, renderTable(tbl)); err != nil {
			return err
		}
	}
	return nil
}

// renderTable draws a single table's header and rows.
func renderTable(tbl *models.Table) string {
	t := table.NewWriter()

	if tbl.Header != nil {
		header := make(table.Row, len(tbl.Header))
		for i, label := range tbl.Header {
			header[i] = label
		}
		t.AppendHeader(header)
	}
	for _, row := range tbl.Rows {
		cells := make(table.Row, len(row))
		for i, val := range row {
			cells[i] = val
		}
		t.AppendRow(cells)
	}

	t.SetStyle(table.StyleLight)
	t.Style().Format = table.FormatOptions{
		Footer: text.FormatDefault,
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	}
	t.Style().Options.DrawBorder = false
	return t.Render()
}
