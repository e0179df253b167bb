// internal/manifest/reader.go
package manifest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// InputError reports a manifest that could not be opened or read.
type InputError struct {
	Path     string
	NotFound bool
	Err      error
}

func (e *InputError) Error() string {
	if e.NotFound {
		return fmt.Sprintf("manifest %s not found", e.Path)
	}
	return fmt.Sprintf("read manifest %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// RowParseError reports a line that does not fit the manifest shape.
type RowParseError struct {
	Line   int
	Column string // empty when the whole record is malformed
	Reason string
}

func (e *RowParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("line %d: column %q: %s", e.Line, e.Column, e.Reason)
}

// LoadCSV opens path and reads every row.
func LoadCSV(path string) ([]SourceRow, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, NotFound: errors.Is(err, fs.ErrNotExist), Err: err}
	}
	defer fh.Close()

	rows, err := Read(fh)
	if err != nil {
		var rpe *RowParseError
		if errors.As(err, &rpe) {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, &InputError{Path: path, Err: err}
	}
	return rows, nil
}

// Read parses a header-addressed CSV manifest. Column order is free and
// unknown columns are ignored.
func Read(r io.Reader) ([]SourceRow, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &RowParseError{Line: 1, Reason: "empty manifest, header expected"}
	}
	if err != nil {
		return nil, asRowError(err, 1)
	}
	idx, err := indexHeader(header)
	if err != nil {
		return nil, err
	}

	var rows []SourceRow
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, asRowError(err, len(rows)+2)
		}
		line, _ := cr.FieldPos(0)
		row, err := parseRecord(rec, idx, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func indexHeader(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	for _, c := range Columns {
		if _, ok := idx[c]; !ok {
			return nil, &RowParseError{Line: 1, Column: c, Reason: "missing from header"}
		}
	}
	return idx, nil
}

func parseRecord(rec []string, idx map[string]int, line int) (SourceRow, error) {
	get := func(col string) string { return strings.TrimSpace(rec[idx[col]]) }

	column, err := strconv.Atoi(get(ColColumn))
	if err != nil {
		return SourceRow{}, &RowParseError{Line: line, Column: ColColumn, Reason: "not an integer: " + get(ColColumn)}
	}
	row, err := strconv.Atoi(get(ColRow))
	if err != nil {
		return SourceRow{}, &RowParseError{Line: line, Column: ColRow, Reason: "not an integer: " + get(ColRow)}
	}

	return SourceRow{
		Line:      line,
		Cell:      get(ColCell),
		FlowCell:  get(ColFlowCells),
		Column:    column,
		Row:       row,
		LibraryID: get(ColLibraryID),
		SampleID:  get(ColSampleID),
		IsControl: get(ColIsControl) == "TRUE",
		IndexI5:   get(ColIndexI5),
		IndexI7:   get(ColIndexI7),
		FilePath:  get(ColFilePaths),
	}, nil
}

// asRowError turns csv.ParseError (quoting, field count) into RowParseError.
func asRowError(err error, line int) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &RowParseError{Line: pe.Line, Reason: pe.Err.Error()}
	}
	return fmt.Errorf("line %d: %w", line, err)
}
