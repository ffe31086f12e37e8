package output

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/textab/pkg/textab/models"
)

func TestWriteXLSX(t *testing.T) {
	sheet := &models.Sheet{
		Name: "Tables",
		Cells: [][]interface{}{
			{"Sales", ""},
			{"Region", "Amount"},
			{"North", 10.5},
			{"North", int64(7)},
			{"", ""},
		},
		Merges: []models.Range{
			{R1: 3, C1: 1, R2: 4, C2: 1},
			{R1: 1, C1: 1, R2: 1, C2: 2},
		},
		ColWidths: map[int]float64{2: 18},
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "out.xlsx")
	if err := WriteXLSX(sheet, path); err != nil {
		t.Fatalf("WriteXLSX() returned error: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to list output directory: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if len(names) != 1 || names[0] != "out.xlsx" {
		t.Errorf("output directory holds %v, expected only out.xlsx", names)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); !reflect.DeepEqual(sheets, []string{"Tables"}) {
		t.Errorf("sheet list = %v, expected [Tables]", sheets)
	}

	values := []struct {
		cell     string
		expected string
	}{
		{"A1", "Sales"},
		{"A2", "Region"},
		{"B2", "Amount"},
		{"A3", "North"},
		{"B3", "10.50"}, // fractional values render with two decimals
		{"B4", "7"},     // integral values render without decimals
	}
	for _, v := range values {
		got, err := f.GetCellValue("Tables", v.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) returned error: %v", v.cell, err)
		}
		if got != v.expected {
			t.Errorf("cell %s = %q, expected %q", v.cell, got, v.expected)
		}
	}

	merges, err := f.GetMergeCells("Tables")
	if err != nil {
		t.Fatalf("GetMergeCells() returned error: %v", err)
	}
	got := make(map[string]bool, len(merges))
	for _, m := range merges {
		got[m.GetStartAxis()+":"+m.GetEndAxis()] = true
	}
	for _, expected := range []string{"A3:A4", "A1:B1"} {
		if !got[expected] {
			t.Errorf("merge %s missing, got %v", expected, got)
		}
	}
	if len(merges) != 2 {
		t.Errorf("found %d merges, expected 2", len(merges))
	}

	width, err := f.GetColWidth("Tables", "B")
	if err != nil {
		t.Fatalf("GetColWidth() returned error: %v", err)
	}
	if width != 18 {
		t.Errorf("column B width = %v, expected 18", width)
	}
}

func TestWriteXLSXEmptySheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := WriteXLSX(&models.Sheet{Name: "Tables"}, path); err != nil {
		t.Fatalf("WriteXLSX() returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Tables")
	if err != nil {
		t.Fatalf("GetRows() returned error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("empty sheet has %d rows, expected 0", len(rows))
	}
}

func TestWriteXLSXMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.xlsx")
	if err := WriteXLSX(&models.Sheet{Name: "Tables"}, path); err == nil {
		t.Fatal("WriteXLSX() into a missing directory succeeded, expected error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("output file present after failed save")
	}
}
