package daq

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func writeLVM(t *testing.T, rows [][]float64) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.lvm")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	for _, row := range rows {
		for i, v := range row {
			if i > 0 {
				f.WriteString("\t")
			}
			f.WriteString(formatFloat(v))
		}
		f.WriteString("\n")
	}
	return path
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func TestReadLVM(t *testing.T) {
	rows := [][]float64{{1, 2, 3}, {4, 5, 6}}
	path := writeLVM(t, rows)

	d, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	nrows, ncols := d.Dims()
	if nrows != 2 || ncols != 3 {
		t.Fatalf("dims = (%d, %d), want (2, 3)", nrows, ncols)
	}
	if d.At(1, 2) != 6 {
		t.Fatalf("At(1,2) = %v, want 6", d.At(1, 2))
	}
}

func TestReadUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.csv")
	os.WriteFile(path, []byte("1,2,3\n"), 0o644)
	if _, err := Read(path); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestReadRaggedRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.lvm")
	os.WriteFile(path, []byte("1\t2\t3\n4\t5\n"), 0o644)
	if _, err := Read(path); err == nil {
		t.Fatal("expected error for ragged rows")
	}
}
