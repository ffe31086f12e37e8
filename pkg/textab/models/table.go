// Package models defines the table records produced by the parser and the
// sheet grid produced by the renderer.
package models

// Untitled is the name given to a table whose first data line arrives
// before any title line.
const Untitled = "untitled"

// Table represents one logical table reconstructed from the input text.
type Table struct {
	// Name is the table title, or Untitled when none was supplied.
	Name string
	// Header holds the column labels adopted from the table's first
	// delimited line. nil when the table never saw a delimited line.
	Header []string
	// Rows holds the data rows in input order.
	Rows [][]string
}

// Width reports the column span of the table: the widest of the header,
// the widest data row, and 1.
func (t Table) Width() int {
	w := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Span reports the number of sheet rows the table occupies when laid out:
// one title row, one header row, the data rows and one separator row.
func (t Table) Span() int {
	return len(t.Rows) + 3
}
