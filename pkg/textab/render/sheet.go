// Package render lays parsed tables out into a single spreadsheet grid and
// applies the post-processing passes: numeric coercion, vertical merging
// of repeated values, title spans and header-driven column widths.
package render

import (
	"unicode/utf8"

	"github.com/ukaji3/textab/pkg/textab/models"
)

const (
	// DefaultSheetName is the worksheet name used when none is configured.
	DefaultSheetName = "Tables"
	// DefaultWidthThreshold is the header label length above which a
	// column is widened to fit the label.
	DefaultWidthThreshold = 10
)

// Options configures sheet layout.
type Options struct {
	// SheetName names the single worksheet. Empty means DefaultSheetName.
	SheetName string
	// WidthThreshold is the header label length above which a column is
	// widened. Zero or negative means DefaultWidthThreshold.
	WidthThreshold int
}

// BuildSheet derives the complete sheet from tables. The passes run in a
// fixed order: coercion before merging, so run equality compares the final
// cell values rather than their raw spellings.
func BuildSheet(tables []*models.Table, opts Options) *models.Sheet {
	if opts.SheetName == "" {
		opts.SheetName = DefaultSheetName
	}
	if opts.WidthThreshold <= 0 {
		opts.WidthThreshold = DefaultWidthThreshold
	}
	sheet := &models.Sheet{
		Name:      opts.SheetName,
		Cells:     flatten(tables),
		ColWidths: make(map[int]float64),
	}
	coerceCells(sheet)
	mergeRuns(sheet)
	mergeTitles(sheet, tables)
	applyColumnWidths(sheet, tables, opts.WidthThreshold)
	return sheet
}

// flatten lays every table out in order: title row, header row (empty when
// the table has none), data rows, separator row. The grid is padded on the
// right to one global width.
func flatten(tables []*models.Table) [][]interface{} {
	var rows [][]string
	for _, t := range tables {
		rows = append(rows, []string{t.Name})
		rows = append(rows, t.Header)
		rows = append(rows, t.Rows...)
		rows = append(rows, nil)
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	cells := make([][]interface{}, len(rows))
	for i, row := range rows {
		padded := make([]interface{}, width)
		for j := range padded {
			if j < len(row) {
				padded[j] = row[j]
			} else {
				padded[j] = ""
			}
		}
		cells[i] = padded
	}
	return cells
}

// coerceCells converts numeric-looking string cells in place. Non-string
// cells are left alone, which keeps the pass idempotent.
func coerceCells(sheet *models.Sheet) {
	for _, row := range sheet.Cells {
		for j, cell := range row {
			if s, ok := cell.(string); ok && s != "" {
				row[j] = coerceValue(s)
			}
		}
	}
}

// mergeRuns merges vertically adjacent equal cells per column. Equality is
// type sensitive on the coerced values, and empty cells never participate,
// so separator rows always end a run.
func mergeRuns(sheet *models.Sheet) {
	height := len(sheet.Cells)
	if height == 0 {
		return
	}
	width := len(sheet.Cells[0])
	for col := 0; col < width; col++ {
		start := 0
		for row := 1; row <= height; row++ {
			if row < height && sheet.Cells[row][col] == sheet.Cells[start][col] {
				continue
			}
			if row-start > 1 && sheet.Cells[start][col] != "" {
				sheet.Merges = append(sheet.Merges, models.Range{
					R1: start + 1, C1: col + 1,
					R2: row, C2: col + 1,
				})
			}
			start = row
		}
	}
}

// mergeTitles spans each table's title cell across that table's own width,
// which is independent of the global grid width. The walk replays the row
// layout from the table list, so it stays in lock step with flatten.
func mergeTitles(sheet *models.Sheet, tables []*models.Table) {
	row := 1
	for _, t := range tables {
		if w := t.Width(); w > 1 {
			sheet.Merges = append(sheet.Merges, models.Range{
				R1: row, C1: 1,
				R2: row, C2: w,
			})
		}
		row += t.Span()
	}
}

// applyColumnWidths widens columns whose header labels exceed the
// threshold. Tables are walked in order and address columns by position,
// so a later table's header overwrites an earlier one's width.
func applyColumnWidths(sheet *models.Sheet, tables []*models.Table, threshold int) {
	for _, t := range tables {
		for i, label := range t.Header {
			if n := utf8.RuneCountInString(label); n > threshold {
				sheet.ColWidths[i+1] = float64(n)
			}
		}
	}
}
