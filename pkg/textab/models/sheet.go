package models

// Range represents a rectangular cell region in 1-based inclusive
// coordinates, the corner convention merged cells use in xlsx.
type Range struct {
	// R1 is the start row.
	R1 int
	// C1 is the start column.
	C1 int
	// R2 is the end row.
	R2 int
	// C2 is the end column.
	C2 int
}

// Sheet is the fully laid-out grid derived from a list of tables.
type Sheet struct {
	// Name is the worksheet name.
	Name string
	// Cells is the rectangular grid. Values are string, int64 or float64,
	// and empty cells hold "".
	Cells [][]interface{}
	// Merges lists the merged regions: vertical value runs first, then
	// table title spans.
	Merges []Range
	// ColWidths maps 1-based column numbers to display widths in
	// characters. Columns without an entry keep the engine default.
	ColWidths map[int]float64
}

// Rows reports the number of grid rows.
func (s *Sheet) Rows() int {
	return len(s.Cells)
}

// Cols reports the column count shared by every grid row.
func (s *Sheet) Cols() int {
	if len(s.Cells) == 0 {
		return 0
	}
	return len(s.Cells[0])
}
