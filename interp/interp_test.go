package interp

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ausocean/tlc/daq"
	"github.com/ausocean/tlc/region"
)

// TestHorizontalSymmetry reproduces spec §8's symmetry property: a query at
// exactly a thermocouple's x coordinate returns that thermocouple's
// temperature history unmodified.
func TestHorizontalSymmetry(t *testing.T) {
	// Columns 0 and 1 at x=10 and x=30, 3-frame window.
	d := daq.NewData(3, 2, []float64{
		20, 40,
		21, 41,
		22, 42,
	})
	tcs := []region.Thermocouple{
		{ColumnIndex: 0, X: 10, Y: 0},
		{ColumnIndex: 1, X: 30, Y: 0},
	}
	area := region.Area{TopY: 0, TopX: 10, H: 1, W: 21} // x in [10, 30]
	method := Method{Kind: Horizontal}

	it, err := New(0, 3, area, method, tcs, d)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Pixel 0 sits at video x = area.TopX+0 = 10, matching the first TC.
	got := it.InterpPoint(0)
	want := []float64{20, 21, 22}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("InterpPoint(0) mismatch (-want +got):\n%s", diff)
	}

	// Pixel 20 sits at video x = 30, matching the second TC.
	got = it.InterpPoint(20)
	want = []float64{40, 41, 42}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("InterpPoint(20) mismatch (-want +got):\n%s", diff)
	}

	// Midpoint pixel at x=20 should average the two columns.
	got = it.InterpPoint(10)
	want = []float64{30, 31, 32}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("InterpPoint(10) mismatch (-want +got):\n%s", diff)
	}
}

func TestHorizontalClampOutsideHull(t *testing.T) {
	d := daq.NewData(2, 2, []float64{10, 20, 11, 21})
	tcs := []region.Thermocouple{
		{ColumnIndex: 0, X: 5},
		{ColumnIndex: 1, X: 15},
	}
	area := region.Area{TopY: 0, TopX: 0, H: 1, W: 30}
	it, err := New(0, 2, area, Method{Kind: Horizontal}, tcs, d)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Pixel 0 (x=0) is left of the hull: clamps to the first series.
	got := it.InterpPoint(0)
	if diff := cmp.Diff([]float64{10, 11}, got); diff != "" {
		t.Errorf("clamp-left mismatch (-want +got):\n%s", diff)
	}
	// Pixel 29 (x=29) is right of the hull: clamps to the last series.
	got = it.InterpPoint(29)
	if diff := cmp.Diff([]float64{20, 21}, got); diff != "" {
		t.Errorf("clamp-right mismatch (-want +got):\n%s", diff)
	}
}

func TestHorizontalExtraExtrapolates(t *testing.T) {
	d := daq.NewData(1, 2, []float64{10, 20})
	tcs := []region.Thermocouple{
		{ColumnIndex: 0, X: 0},
		{ColumnIndex: 1, X: 10},
	}
	area := region.Area{TopY: 0, TopX: -10, H: 1, W: 1}
	it, err := New(0, 1, area, Method{Kind: HorizontalExtra}, tcs, d)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Pixel 0 sits at video x=-10, linearly extrapolated: 10 + (-1)*(20-10) = 0.
	got := it.InterpPoint(0)
	if diff := cmp.Diff([]float64{0}, got); diff != "" {
		t.Errorf("extrapolate mismatch (-want +got):\n%s", diff)
	}
}

func TestBilinearGridCorners(t *testing.T) {
	// 2x2 grid: (y=0,x=0)=1, (y=0,x=10)=2, (y=10,x=0)=3, (y=10,x=10)=4.
	d := daq.NewData(1, 4, []float64{1, 2, 3, 4})
	tcs := []region.Thermocouple{
		{ColumnIndex: 0, Y: 0, X: 0},
		{ColumnIndex: 1, Y: 0, X: 10},
		{ColumnIndex: 2, Y: 10, X: 0},
		{ColumnIndex: 3, Y: 10, X: 10},
	}
	area := region.Area{TopY: 0, TopX: 0, H: 11, W: 11}
	method := Method{Kind: Bilinear, Shape: [2]int{2, 2}}
	it, err := New(0, 1, area, method, tcs, d)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cases := []struct {
		y, x int
		want float64
	}{
		{0, 0, 1},
		{0, 10, 2},
		{10, 0, 3},
		{10, 10, 4},
		{5, 5, 2.5},
	}
	for _, c := range cases {
		got := it.InterpPoint(area.Index(c.y, c.x))[0]
		if got != c.want {
			t.Errorf("(%d,%d): got %v, want %v", c.y, c.x, got, c.want)
		}
	}
}

func TestNewRejectsTooFewThermocouples(t *testing.T) {
	d := daq.NewData(1, 1, []float64{1})
	tcs := []region.Thermocouple{{ColumnIndex: 0}}
	area := region.Area{H: 1, W: 1}
	if _, err := New(0, 1, area, Method{Kind: Horizontal}, tcs, d); err == nil {
		t.Error("expected error for insufficient thermocouples")
	}
}

func TestNewRejectsOutOfRangeWindow(t *testing.T) {
	d := daq.NewData(2, 2, []float64{1, 2, 3, 4})
	tcs := []region.Thermocouple{{ColumnIndex: 0}, {ColumnIndex: 1}}
	area := region.Area{H: 1, W: 1}
	if _, err := New(1, 5, area, Method{Kind: Horizontal}, tcs, d); err == nil {
		t.Error("expected error for out-of-range window")
	}
}
