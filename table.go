package simplot

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"gonum.org/v1/gonum/mat"
)

// ErrRead indicates the input file is absent or unreadable.
var ErrRead = errors.New("cannot read table")

// ErrParse indicates the input is not well-formed delimited text.
var ErrParse = errors.New("malformed table")

// Table is the textual content of an input file: a header row naming the
// columns followed by the data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// Records returns the full row sequence including the header.
func (t *Table) Records() [][]string {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, t.Header)
	return append(records, t.Rows...)
}

// Matrix converts the data rows of t to a numeric matrix with one column
// per header field.
func (t *Table) Matrix() (*mat.Dense, error) {
	return ToMatrix(t.Rows, len(t.Header))
}

// ReadTable reads all rows of the file at path. Files with an .xlsx
// extension are read from their first sheet, everything else is parsed
// as comma separated values.
func ReadTable(path string) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readXLSX(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV reads all records from r. Leading space in fields is dropped
// and blank lines are skipped; rows of differing length are passed
// through unchanged.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return newTable(records)
}

func readXLSX(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s has no sheets", ErrParse, path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %w", ErrParse, sheets[0], err)
	}
	return newTable(rows)
}

func newTable(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrParse)
	}
	return &Table{
		Header: records[0],
		Rows:   records[1:],
	}, nil
}
