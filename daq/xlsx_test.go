package daq

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/tealeg/xlsx"
)

func writeXLSX(t *testing.T, rows [][]float64) string {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Sheet1")
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range rows {
		r := sheet.AddRow()
		for _, v := range row {
			r.AddCell().SetFloat(v)
		}
	}
	path := filepath.Join(t.TempDir(), "sample.xlsx")
	if err := f.Save(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadXLSX(t *testing.T) {
	rows := [][]float64{{1.5, 2.25, 3}, {4, 5, 6.125}}
	path := writeXLSX(t, rows)

	d, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	nrows, ncols := d.Dims()
	if nrows != 2 || ncols != 3 {
		t.Fatalf("dims = (%d, %d), want (2, 3)", nrows, ncols)
	}
	if d.At(0, 1) != 2.25 || d.At(1, 2) != 6.125 {
		t.Fatalf("unexpected values: %v, %v", d.At(0, 1), d.At(1, 2))
	}
}

// TestLVMAndXLSXAgree reproduces spec §8's cross-extension property: the
// same data read via .lvm and .xlsx must be element-wise equal within
// 1e-12.
func TestLVMAndXLSXAgree(t *testing.T) {
	rows := [][]float64{{1, 2.5, -3.25}, {40.1, 5, 6}, {0, -0.001, 1000.0009}}

	lvmPath := writeLVM(t, rows)
	xlsxPath := writeXLSX(t, rows)

	lvm, err := Read(lvmPath)
	if err != nil {
		t.Fatalf("Read lvm: %v", err)
	}
	xl, err := Read(xlsxPath)
	if err != nil {
		t.Fatalf("Read xlsx: %v", err)
	}

	nrows, ncols := lvm.Dims()
	xrows, xcols := xl.Dims()
	if nrows != xrows || ncols != xcols {
		t.Fatalf("shape mismatch: lvm (%d,%d) vs xlsx (%d,%d)", nrows, ncols, xrows, xcols)
	}
	for r := 0; r < nrows; r++ {
		for c := 0; c < ncols; c++ {
			a, b := lvm.At(r, c), xl.At(r, c)
			if math.Abs(a-b) > 1e-12 {
				t.Errorf("(%d,%d): lvm=%v xlsx=%v differ by more than 1e-12", r, c, a, b)
			}
		}
	}
}
