package simplot

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	return path
}

func TestReadTable(t *testing.T) {
	path := writeFile(t, "run.csv", "Time, Patient_1, Patient_2\n0, 120.5, 118\n5, 121, NaN\n")

	tbl, err := ReadTable(path)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if diff := cmp.Diff([]string{"Time", "Patient_1", "Patient_2"}, tbl.Header); diff != "" {
		t.Errorf("Header mismatch (-want +got):\n%s", diff)
	}
	want := [][]string{{"0", "120.5", "118"}, {"5", "121", "NaN"}}
	if diff := cmp.Diff(want, tbl.Rows); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}
	if got := len(tbl.Records()); got != 3 {
		t.Errorf("Got %d records, want 3", got)
	}
}

func TestReadTableMissingFile(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "CircadianVariability.csv"))
	if !errors.Is(err, ErrRead) {
		t.Fatalf("Got error %v, want ErrRead", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Got error %v, want fs.ErrNotExist", err)
	}
}

func TestReadCSVMalformed(t *testing.T) {
	tests := []struct {
		name, input string
	}{
		{"bare quote", "t,a\n0,1\"2\n"},
		{"unterminated quote", "t,a\n0,\"1\n"},
		{"empty", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tc.input))
			if !errors.Is(err, ErrParse) {
				t.Errorf("Got error %v, want ErrParse", err)
			}
		})
	}
}

func TestReadCSVRaggedRowsPassThrough(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("t,a,b\n0,1\n"))
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if len(tbl.Rows) != 1 || len(tbl.Rows[0]) != 2 {
		t.Errorf("Got rows %v", tbl.Rows)
	}
	if _, err := tbl.Matrix(); !errors.Is(err, ErrConvert) {
		t.Errorf("Got error %v, want ErrConvert", err)
	}
}

func TestReadTableXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.xlsx")
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Time", "Patient_1"},
		{0, 120.5},
		{60, 130},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("Unexpected error %s", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("Unexpected error %s", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	f.Close()

	tbl, err := ReadTable(path)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	want := [][]string{{"Time", "Patient_1"}, {"0", "120.5"}, {"60", "130"}}
	if diff := cmp.Diff(want, tbl.Records()); diff != "" {
		t.Errorf("Records mismatch (-want +got):\n%s", diff)
	}
}

func TestReadTableXLSXMissing(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "run.xlsx"))
	if !errors.Is(err, ErrRead) {
		t.Errorf("Got error %v, want ErrRead", err)
	}
}

func TestReadTableXLSXUnreadable(t *testing.T) {
	// A directory exists but cannot be read as a file.
	dir := filepath.Join(t.TempDir(), "run.xlsx")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	_, err := ReadTable(dir)
	if !errors.Is(err, ErrRead) {
		t.Errorf("Got error %v, want ErrRead", err)
	}
	if errors.Is(err, ErrParse) {
		t.Errorf("Unreadable file reported as ErrParse: %v", err)
	}
}

func TestReadTableXLSXMalformed(t *testing.T) {
	path := writeFile(t, "run.xlsx", "Time,Patient_1\n0,120\n")
	_, err := ReadTable(path)
	if !errors.Is(err, ErrParse) {
		t.Errorf("Got error %v, want ErrParse", err)
	}
}

func TestReadCSVSkipsBlankLines(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("t,a\n0,1\n\n60,3\n\n"))
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	want := [][]string{{"0", "1"}, {"60", "3"}}
	if diff := cmp.Diff(want, tbl.Rows); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}
}
