// Package output persists laid-out sheets: an xlsx writer and a terminal
// preview renderer.
package output

import (
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/textab/pkg/textab/models"
)

// Number formats applied to coerced cells. Integral values show no
// decimals, fractional ones always show two.
const (
	numFmtInt   = "0"
	numFmtFloat = "0.00"
)

// WriteXLSX persists the sheet as a single-worksheet workbook at path. The
// workbook is saved to a temporary file beside path and renamed into
// place, so a failed save never leaves a half-written workbook behind.
func WriteXLSX(sheet *models.Sheet, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
		return err
	}
	if err := writeCells(f, sheet); err != nil {
		return err
	}
	for _, m := range sheet.Merges {
		topLeft, err := excelize.CoordinatesToCellName(m.C1, m.R1)
		if err != nil {
			return err
		}
		bottomRight, err := excelize.CoordinatesToCellName(m.C2, m.R2)
		if err != nil {
			return err
		}
		if err := f.MergeCell(sheet.Name, topLeft, bottomRight); err != nil {
			return err
		}
	}
	for col, width := range sheet.ColWidths {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet.Name, name, name, width); err != nil {
			return err
		}
	}

	// SaveAs rejects non-workbook extensions, so the temp name keeps one.
	tmp := path + ".tmp.xlsx"
	if err := f.SaveAs(tmp); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// writeCells fills the grid and styles numeric cells by their coerced
// type.
func writeCells(f *excelize.File, sheet *models.Sheet) error {
	intFmt := numFmtInt
	intStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &intFmt})
	if err != nil {
		return err
	}
	floatFmt := numFmtFloat
	floatStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &floatFmt})
	if err != nil {
		return err
	}

	for r, row := range sheet.Cells {
		for c, cell := range row {
			addr, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet.Name, addr, cell); err != nil {
				return err
			}
			style := 0
			switch cell.(type) {
			case int64:
				style = intStyle
			case float64:
				style = floatStyle
			default:
				continue
			}
			if err := f.SetCellStyle(sheet.Name, addr, addr, style); err != nil {
				return err
			}
		}
	}
	return nil
}
