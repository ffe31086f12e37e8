// Package textab converts delimited text exports of named tables into a
// single-sheet xlsx workbook.
package textab

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/textab/pkg/textab/parser"
	"github.com/ukaji3/textab/pkg/textab/render"
)

// Options configures a conversion.
type Options struct {
	// SheetName names the output worksheet.
	SheetName string `yaml:"sheet"`
	// WidthThreshold is the header label length above which a column is
	// widened to fit the label.
	WidthThreshold int `yaml:"width_threshold"`
	// LegacyDecimalNormalization restores the legacy exporter's
	// whole-line period-to-comma rewrite instead of restricting it to
	// data values.
	LegacyDecimalNormalization bool `yaml:"legacy_decimal"`
}

// DefaultOptions returns the options used when no profile or flags are
// given.
func DefaultOptions() Options {
	return Options{
		SheetName:      render.DefaultSheetName,
		WidthThreshold: render.DefaultWidthThreshold,
	}
}

// LoadOptions reads a YAML profile at path and overlays it on the
// defaults. Unknown keys are rejected so a typo cannot silently fall back
// to a default.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	f, err := os.Open(path)
	if err != nil {
		return opts, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		if errors.Is(err, io.EOF) {
			return opts, nil
		}
		return opts, fmt.Errorf("profile %s: %w", path, err)
	}
	return opts, nil
}

// parserOptions maps the conversion options onto the parser's.
func (o Options) parserOptions() parser.Options {
	return parser.Options{
		LegacyDecimalNormalization: o.LegacyDecimalNormalization,
	}
}

// renderOptions maps the conversion options onto the renderer's.
func (o Options) renderOptions() render.Options {
	return render.Options{
		SheetName:      o.SheetName,
		WidthThreshold: o.WidthThreshold,
	}
}
