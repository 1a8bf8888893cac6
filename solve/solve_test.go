package solve

import (
	"context"
	"math"
	"testing"

	"github.com/ausocean/tlc/progress"
)

type fakeTemps struct {
	hist []float64
}

func (f fakeTemps) InterpPoint(pixelIndex int) []float64 { return f.hist }

func refPhys() PhysicalParam {
	return PhysicalParam{
		GmaxTemperature: 35.48,
		SolidK:          0.19,
		SolidAlpha:      1.091e-7,
		CharLength:      0.015,
		AirK:            0.0276,
	}
}

func TestGmaxGate(t *testing.T) {
	hist := make([]float64, 50)
	for i := range hist {
		hist[i] = 20 + float64(i)*0.1
	}
	nu, err := Solve(context.Background(), new(progress.Bar), 1, 1, 100, []int{3}, fakeTemps{hist}, refPhys(), IterMethod{Kind: NewtonDown, H0: 50, MaxIter: 10})
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	v := nu.Nu2.At(0, 0)
	if !math.IsNaN(v) {
		t.Fatalf("expected NaN for gmax<=4, got %v", v)
	}
}

func TestEquationLanesMatchesScalar(t *testing.T) {
	hist := make([]float64, 40)
	for i := range hist {
		hist[i] = 20 + math.Sin(float64(i))
	}
	p := point{gmaxFrameIndex: 37, temperatures: hist}
	f1, df1 := equation(p, 120.0, 0.01, 0.19, 1.091e-7, 35.48)
	f2, df2 := equationLanes(p, 120.0, 0.01, 0.19, 1.091e-7, 35.48)
	if relErr(f1, f2) > 1e-6 {
		t.Errorf("f mismatch: scalar=%v lanes=%v", f1, f2)
	}
	if relErr(df1, df2) > 1e-6 {
		t.Errorf("df mismatch: scalar=%v lanes=%v", df1, df2)
	}
}

func relErr(a, b float64) float64 {
	if a == b {
		return 0
	}
	d := math.Abs(a - b)
	denom := math.Max(math.Abs(a), math.Abs(b))
	if denom == 0 {
		return d
	}
	return d / denom
}

func TestPhysicalParamValidate(t *testing.T) {
	p := refPhys()
	if err := p.Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
	p.SolidK = 0
	if err := p.Validate(); err == nil {
		t.Fatal("expected error for zero SolidK")
	}
}
