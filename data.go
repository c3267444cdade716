package simplot

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// DataFrame is a column oriented view of the numeric matrix. Column 0 is
// the time column, all other columns are measured quantities.
type DataFrame struct {
	// N is the number of observations, i.e. the length of each column.
	N int

	Columns []Field
}

// Field is one named column of a data frame.
type Field struct {
	// Name of the column as found in the header. Surrounding white space is
	// removed; an empty header field is named after its column index.
	Name string

	Data []float64
}

// NewDataFrame combines the header names with the columns of m.
// The header must have exactly one name per column of m.
func NewDataFrame(header []string, m mat.Matrix) (*DataFrame, error) {
	r, c := m.Dims()
	if len(header) != c {
		return nil, fmt.Errorf("header has %d fields but matrix has %d columns", len(header), c)
	}

	df := &DataFrame{
		N:       r,
		Columns: make([]Field, c),
	}
	for j := 0; j < c; j++ {
		name := strings.TrimSpace(header[j])
		if name == "" {
			name = strconv.Itoa(j)
		}
		df.Columns[j] = Field{
			Name: name,
			Data: mat.Col(nil, j, m),
		}
	}
	return df, nil
}

// FieldNames returns the column names in order.
func (df *DataFrame) FieldNames() []string {
	names := make([]string, len(df.Columns))
	for i, f := range df.Columns {
		names[i] = f.Name
	}
	return names
}

// Time returns the time column.
func (df *DataFrame) Time() Field {
	return df.Columns[0]
}

// Copy makes a deep copy of df.
func (df *DataFrame) Copy() *DataFrame {
	cp := &DataFrame{
		N:       df.N,
		Columns: make([]Field, len(df.Columns)),
	}
	for i, f := range df.Columns {
		cp.Columns[i] = f.Copy()
	}
	return cp
}

// Select returns a data frame with the time column followed by the named
// columns in the order they appear in df. All names must exist.
func (df *DataFrame) Select(names []string) (*DataFrame, error) {
	wanted := NewStringSetFrom(names)
	available := NewStringSetFrom(df.FieldNames()[1:])
	missing := NewStringSetFrom(names)
	missing.Remove(available)
	if len(missing) > 0 {
		return nil, fmt.Errorf("no such columns: %s", strings.Join(missing.Elements(), ", "))
	}

	sel := &DataFrame{
		N:       df.N,
		Columns: []Field{df.Columns[0]},
	}
	for _, f := range df.Columns[1:] {
		if wanted.Contains(f.Name) {
			sel.Columns = append(sel.Columns, f)
		}
	}
	return sel, nil
}

// Print dumps df as a simple table to w.
func (df *DataFrame) Print(w io.Writer) {
	fmt.Fprintln(w, strings.Join(df.FieldNames(), "\t"))
	for i := 0; i < df.N; i++ {
		vals := make([]string, len(df.Columns))
		for j, f := range df.Columns {
			vals[j] = strconv.FormatFloat(f.Data[i], 'g', -1, 64)
		}
		fmt.Fprintln(w, strings.Join(vals, "\t"))
	}
}

// Copy makes a deep copy of f.
func (f Field) Copy() Field {
	data := make([]float64, len(f.Data))
	copy(data, f.Data)
	return Field{Name: f.Name, Data: data}
}

// Apply replaces every value x of f by fn(x).
func (f Field) Apply(fn func(float64) float64) {
	for i, x := range f.Data {
		f.Data[i] = fn(x)
	}
}

// MinMax returns the minimum and maximum finite value in f together with
// their indices. The indices are -1 if f contains no finite value.
func (f Field) MinMax() (min, max float64, mini, maxi int) {
	min, max = math.Inf(+1), math.Inf(-1)
	mini, maxi = -1, -1
	for i, x := range f.Data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		if x < min {
			min, mini = x, i
		}
		if x > max {
			max, maxi = x, i
		}
	}
	return min, max, mini, maxi
}
