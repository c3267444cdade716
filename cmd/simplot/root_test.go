package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lt1/simplot"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stderr.String(), err
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "CircadianVariability.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunWritesFigure(t *testing.T) {
	in := writeCSV(t, "Time, Patient_1, Patient_2\n0, 120, 118\n60, 130, NaN\n120, 125, 119\n")
	out := filepath.Join(t.TempDir(), "out.svg")

	logs, err := execute(t, "--input", in, "--output", out, "--no-show", "--log-level", "debug")
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
	assert.Contains(t, logs, "series=2")
	assert.Contains(t, logs, "name=Patient_2")
}

func TestRunTraceDumpsFrame(t *testing.T) {
	in := writeCSV(t, "t,a\n0,1\n60,3\n")
	out := filepath.Join(t.TempDir(), "out.png")

	logs, err := execute(t, "--input", in, "--output", out, "--no-show", "--log-level", "trace")
	require.NoError(t, err)
	assert.Contains(t, logs, "level=TRACE")
	assert.Contains(t, logs, "msg=\"data frame\"")
}

func TestRunShowsFigure(t *testing.T) {
	in := writeCSV(t, "t,a,b\n0,1,2\n60,3,4\n")
	out := filepath.Join(t.TempDir(), "out.png")

	var shown string
	orig := showFigure
	showFigure = func(path string) error {
		shown = path
		return nil
	}
	t.Cleanup(func() { showFigure = orig })

	_, err := execute(t, "--input", in, "--output", out)
	require.NoError(t, err)
	assert.Equal(t, out, shown)
}

func TestRunColumns(t *testing.T) {
	in := writeCSV(t, "t,a,b\n0,1,2\n60,3,4\n")
	out := filepath.Join(t.TempDir(), "out.png")

	logs, err := execute(t, "--input", in, "--output", out, "--no-show", "--columns", "b")
	require.NoError(t, err)
	assert.Contains(t, logs, "series=1")

	_, err = execute(t, "--input", in, "--output", out, "--no-show", "--columns", "glucose")
	assert.Error(t, err)
}

func TestRunFailures(t *testing.T) {
	_, err := execute(t, "--input", filepath.Join(t.TempDir(), "missing.csv"), "--no-show")
	assert.True(t, errors.Is(err, simplot.ErrRead), "got %v", err)

	in := writeCSV(t, "t,a\n0,x\n")
	_, err = execute(t, "--input", in, "--no-show")
	assert.True(t, errors.Is(err, simplot.ErrConvert), "got %v", err)

	_, err = execute(t, "extra-argument")
	assert.Error(t, err)
}
