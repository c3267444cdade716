package simplot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ErrConvert indicates that the data rows cannot be turned into a
// rectangular numeric matrix.
var ErrConvert = errors.New("cannot convert table")

// ConversionError describes the first offending field of a failed
// conversion. Row and Col are zero based and count data rows only.
type ConversionError struct {
	Row, Col int
	Value    string
	Err      error
}

func (e *ConversionError) Error() string {
	if e.Col < 0 {
		return fmt.Sprintf("%s: row %d: %v", ErrConvert, e.Row, e.Err)
	}
	return fmt.Sprintf("%s: row %d, column %d (%q): %v", ErrConvert, e.Row, e.Col, e.Value, e.Err)
}

func (e *ConversionError) Unwrap() []error {
	return []error{ErrConvert, e.Err}
}

// ToMatrix parses every field of rows as a float64 and returns them as a
// len(rows) x width matrix. A non-numeric field or a row with other than
// width fields aborts the whole conversion.
func ToMatrix(rows [][]string, width int) (*mat.Dense, error) {
	if len(rows) == 0 || width == 0 {
		return nil, &ConversionError{Row: 0, Col: -1, Err: errors.New("no observations")}
	}

	data := make([]float64, 0, len(rows)*width)
	for r, row := range rows {
		if len(row) != width {
			return nil, &ConversionError{
				Row: r,
				Col: -1,
				Err: fmt.Errorf("got %d fields, want %d", len(row), width),
			}
		}
		for c, s := range row {
			x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, &ConversionError{Row: r, Col: c, Value: s, Err: err}
			}
			data = append(data, x)
		}
	}

	return mat.NewDense(len(rows), width, data), nil
}
