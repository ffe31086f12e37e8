// Package parser converts the delimited text export format into table
// records.
//
// The grammar is line oriented. A blank line closes the current table. A
// line without the field separator is a title that opens a new table. Any
// other line is split at the first field separator into a header segment
// and a data segment, each holding delimiter-separated fields. The first
// delimited line of a table supplies its header, and every delimited line
// contributes a data row.
package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/ukaji3/textab/pkg/textab/models"
)

const (
	// FieldSeparator divides a line's header segment from its data segment.
	FieldSeparator = "#"
	// FieldDelimiter divides a segment into individual field values.
	FieldDelimiter = "&"
)

// Options controls optional parser behavior.
type Options struct {
	// LegacyDecimalNormalization rewrites decimal points to decimal
	// commas on the whole raw line, titles and header labels included,
	// matching the legacy exporter. The default rewrites data values
	// only.
	LegacyDecimalNormalization bool
}

// state carries the parse position between lines: every table seen so far
// and the table new data rows attach to. A blank line is the only event
// that clears current, and a title line replaces it.
type state struct {
	tables  []*models.Table
	current *models.Table
}

// Parse reads r line by line and returns the table records in input order.
// Lines may be arbitrarily long. Only reader failures produce an error,
// irregular input never does.
func Parse(r io.Reader, opts Options) ([]*models.Table, error) {
	reader := bufio.NewReader(r)
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if err == io.EOF {
			return ParseLines(lines, opts), nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// ParseLines parses pre-split lines. See Parse.
func ParseLines(lines []string, opts Options) []*models.Table {
	s := &state{}
	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}
		s.consume(line, opts)
	}
	return s.tables
}

// consume advances the parser by one line.
func (s *state) consume(raw string, opts Options) {
	line := raw
	if opts.LegacyDecimalNormalization {
		line = strings.ReplaceAll(line, ".", ",")
	}
	line = strings.TrimSpace(line)

	switch {
	case line == "":
		s.current = nil
	case !strings.Contains(line, FieldSeparator):
		t := &models.Table{Name: line}
		s.tables = append(s.tables, t)
		s.current = t
	default:
		headerPart, dataPart, _ := strings.Cut(line, FieldSeparator)
		cols := splitFields(headerPart)
		vals := splitFields(dataPart)
		if !opts.LegacyDecimalNormalization {
			normalizeDecimals(vals)
		}
		if s.current == nil {
			s.current = &models.Table{Name: models.Untitled, Header: cols}
			s.tables = append(s.tables, s.current)
		}
		if s.current.Header == nil {
			s.current.Header = cols
		}
		s.current.Rows = append(s.current.Rows, vals)
	}
}

// splitFields splits a segment on FieldDelimiter and trims each field.
func splitFields(segment string) []string {
	parts := strings.Split(segment, FieldDelimiter)
	fields := make([]string, len(parts))
	for i, p := range parts {
		fields[i] = strings.TrimSpace(p)
	}
	return fields
}

// normalizeDecimals rewrites decimal points to decimal commas in data
// values, leaving the comma as the only decimal separator downstream.
func normalizeDecimals(vals []string) {
	for i, v := range vals {
		vals[i] = strings.ReplaceAll(v, ".", ",")
	}
}
