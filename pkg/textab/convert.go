package textab

import (
	"fmt"
	"io"
	"os"

	"github.com/ukaji3/textab/pkg/textab/models"
	"github.com/ukaji3/textab/pkg/textab/output"
	"github.com/ukaji3/textab/pkg/textab/parser"
	"github.com/ukaji3/textab/pkg/textab/render"
)

// Result summarizes a completed conversion.
type Result struct {
	// Tables is the number of table records reconstructed from the input.
	Tables int `json:"tables"`
	// Rows and Columns are the dimensions of the rectangular grid.
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
	// Output is the path of the written workbook.
	Output string `json:"output"`
}

// Convert parses the text export at inputPath and writes the laid-out
// workbook to outputPath.
func Convert(inputPath, outputPath string, opts Options) (*Result, error) {
	tables, err := Load(inputPath, opts)
	if err != nil {
		return nil, err
	}
	return write(tables, outputPath, opts)
}

// ConvertReader converts from an already-open line source, for callers
// feeding stdin or an in-memory export.
func ConvertReader(r io.Reader, outputPath string, opts Options) (*Result, error) {
	tables, err := parser.Parse(r, opts.parserOptions())
	if err != nil {
		return nil, NewPipelineError("parse", "", err)
	}
	return write(tables, outputPath, opts)
}

// Load parses the text export at inputPath without rendering it.
func Load(inputPath string, opts Options) ([]*models.Table, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}
		return nil, NewPipelineError("read", inputPath, err)
	}
	defer f.Close()

	tables, err := parser.Parse(f, opts.parserOptions())
	if err != nil {
		return nil, NewPipelineError("parse", inputPath, err)
	}
	return tables, nil
}

// write lays the tables out and persists the workbook.
func write(tables []*models.Table, outputPath string, opts Options) (*Result, error) {
	sheet := render.BuildSheet(tables, opts.renderOptions())
	if err := output.WriteXLSX(sheet, outputPath); err != nil {
		return nil, NewPipelineError("write", outputPath, err)
	}
	return &Result{
		Tables:  len(tables),
		Rows:    sheet.Rows(),
		Columns: sheet.Cols(),
		Output:  outputPath,
	}, nil
}
