package store

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/ausocean/tlc/config"
)

func TestSaveDataWritesAllThreeOutputs(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{Name: "run1", SaveRootDir: dir}
	nu := mat.NewDense(2, 2, []float64{1, 2, math.NaN(), 4})

	if err := SaveData(cfg, nu, 2.333, nil); err != nil {
		t.Fatalf("SaveData: %v", err)
	}

	for _, p := range []string{
		filepath.Join(dir, "nu_matrix", "run1.csv"),
		filepath.Join(dir, "nu_plot", "run1.png"),
		filepath.Join(dir, "config", "run1.toml"),
	} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected %s to exist: %v", p, err)
		}
	}

	f, err := os.Open(filepath.Join(dir, "nu_matrix", "run1.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := ReadNuCSV(f)
	if err != nil {
		t.Fatalf("ReadNuCSV: %v", err)
	}
	rows, cols := got.Dims()
	if rows != 2 || cols != 2 {
		t.Errorf("csv shape = (%d,%d), want (2,2)", rows, cols)
	}

	sf, err := os.Open(filepath.Join(dir, "config", "run1.toml"))
	if err != nil {
		t.Fatal(err)
	}
	defer sf.Close()
	snap, err := ReadSnapshot(sf)
	if err != nil {
		t.Fatalf("ReadSnapshot: %v", err)
	}
	if snap.NuNanMean != 2.333 {
		t.Errorf("snap.NuNanMean = %v, want 2.333", snap.NuNanMean)
	}
}
