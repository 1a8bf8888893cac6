/*
NAME
  solve.go

AUTHORS
  Dan Kortschak <dan@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package solve inverts the one-dimensional semi-infinite-plate heat
// transfer equation at every pixel of a TLC field, converting the resulting
// heat transfer coefficient to a Nusselt number (spec §4.7).
package solve

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/ausocean/tlc/progress"
)

// firstFewToCalT0 is the number of leading samples averaged to estimate the
// surface's initial temperature.
const firstFewToCalT0 = 4

// gmaxFloor is the minimum peak-frame index required to attempt a solve; at
// or below it the result is defined to be NaN (spec §8 scenario 2).
const gmaxFloor = 4

// divergenceBound is the |h| threshold beyond which an iterate is considered
// to have diverged.
const divergenceBound = 10000.0

// stopDelta is the iterate step size below which Newton's method has
// converged.
const stopDelta = 1e-3

// PhysicalParam holds the physical constants needed to invert the heat
// equation. All fields must be finite and positive.
type PhysicalParam struct {
	GmaxTemperature float64
	SolidK          float64 // thermal conductivity
	SolidAlpha      float64 // thermal diffusivity
	CharLength      float64
	AirK            float64 // air thermal conductivity
}

// Validate reports whether every field is finite and positive.
func (p PhysicalParam) Validate() error {
	fields := map[string]float64{
		"GmaxTemperature": p.GmaxTemperature,
		"SolidK":          p.SolidK,
		"SolidAlpha":      p.SolidAlpha,
		"CharLength":      p.CharLength,
		"AirK":            p.AirK,
	}
	for name, v := range fields {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("solve: physical param %s must be finite and positive, got %v", name, v)
		}
	}
	return nil
}

// IterKind selects the Newton root-finding variant.
type IterKind int

const (
	NewtonTangent IterKind = iota
	NewtonDown
)

// IterMethod is a root-finding method and its parameters.
type IterMethod struct {
	Kind    IterKind
	H0      float64
	MaxIter int
}

// Validate reports whether the iteration method's parameters are sane.
func (m IterMethod) Validate() error {
	if m.H0 <= 0 {
		return fmt.Errorf("solve: h0 must be > 0, got %v", m.H0)
	}
	if m.MaxIter < 1 {
		return fmt.Errorf("solve: max_iter must be >= 1, got %v", m.MaxIter)
	}
	return nil
}

// NuData is the solver's output: the per-pixel Nusselt number field and the
// mean of its finite entries.
type NuData struct {
	Nu2       *mat.Dense // (h, w)
	NuNanMean float64
}

// PointSource supplies the temperature history at a given pixel index, as
// produced by an interp.Interpolator.
type PointSource interface {
	InterpPoint(pixelIndex int) []float64
}

// Solve computes the Nusselt number field for every pixel in an (h, w) grid.
// gmaxFrameIndexes has length h*w; temps supplies each pixel's temperature
// history of length calNum. frameRate is the video's frames per second.
func Solve(ctx context.Context, bar *progress.Bar, h, w, frameRate int, gmaxFrameIndexes []int, temps PointSource, phys PhysicalParam, iter IterMethod) (NuData, error) {
	if len(gmaxFrameIndexes) != h*w {
		return NuData{}, fmt.Errorf("solve: gmaxFrameIndexes length %d does not match h*w=%d", len(gmaxFrameIndexes), h*w)
	}
	if frameRate <= 0 {
		return NuData{}, fmt.Errorf("solve: frame rate must be > 0, got %d", frameRate)
	}
	dt := 1.0 / float64(frameRate)
	nu := make([]float64, h*w)

	bar.Start(int64(len(nu)))
	defer bar.Finish()

	solvePoint := newtonSolver(iter, phys, dt)

	g, gctx := errgroup.WithContext(ctx)
	nWorkers := numWorkers(len(nu))
	chunk := (len(nu) + nWorkers - 1) / nWorkers
	for start := 0; start < len(nu); start += chunk {
		start := start
		end := start + chunk
		if end > len(nu) {
			end = len(nu)
		}
		g.Go(func() error {
			for p := start; p < end; p++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				nu[p] = solveOnePoint(p, gmaxFrameIndexes[p], temps, solvePoint, phys)
				if _, err := bar.Add(1); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return NuData{}, err
	}

	nu2 := mat.NewDense(h, w, nu)
	mean, _ := nanMean(nu)
	return NuData{Nu2: nu2, NuNanMean: mean}, nil
}

// solveOnePoint finds the heat transfer coefficient h at pixelIndex and
// scales it into a Nusselt number, nu = h * char_length / air_k (spec §4.7
// step 5).
func solveOnePoint(pixelIndex, gmaxFrameIndex int, temps PointSource, solveFn func(point) float64, phys PhysicalParam) float64 {
	if gmaxFrameIndex <= gmaxFloor {
		return math.NaN()
	}
	t := temps.InterpPoint(pixelIndex)
	p := point{gmaxFrameIndex: gmaxFrameIndex, temperatures: t}
	h := solveFn(p)
	return h * phys.CharLength / phys.AirK
}

// point bundles one pixel's peak-frame index and temperature history for the
// root finder.
type point struct {
	gmaxFrameIndex int
	temperatures   []float64
}

// equation evaluates f(h) and f'(h), the residual and derivative of the
// semi-infinite-plate heat equation at candidate coefficient h (spec §4.7).
func equation(p point, h, dt, k, a, tw float64) (f, df float64) {
	t0 := 0.0
	for i := 0; i < firstFewToCalT0; i++ {
		t0 += p.temperatures[i]
	}
	t0 /= firstFewToCalT0

	var sum, dSum float64
	for i := 0; i < p.gmaxFrameIndex; i++ {
		deltaTemp := p.temperatures[i+1] - p.temperatures[i]
		at := a * dt * float64(p.gmaxFrameIndex-i-1)
		sqrtAt := math.Sqrt(at)
		expErfc := math.Exp(h*h/(k*k)*at) * math.Erfc(h/k*sqrtAt)

		sum += (1 - expErfc) * deltaTemp
		dSum += -deltaTemp * (2*sqrtAt/(k*math.Sqrt(math.Pi)) - (2*at*h*expErfc)/(k*k))
	}
	return tw - t0 - sum, dSum
}

// newtonSolver returns a per-point solver function for the given iteration
// method, closing over the physical constants and dt.
func newtonSolver(iter IterMethod, phys PhysicalParam, dt float64) func(point) float64 {
	k, a, tw := phys.SolidK, phys.SolidAlpha, phys.GmaxTemperature
	eq := func(p point, h float64) (float64, float64) { return equationLanes(p, h, dt, k, a, tw) }

	switch iter.Kind {
	case NewtonTangent:
		return func(p point) float64 { return newtonTangent(eq, p, iter.H0, iter.MaxIter) }
	case NewtonDown:
		return func(p point) float64 { return newtonDown(eq, p, iter.H0, iter.MaxIter) }
	default:
		panic("solve: unknown iteration kind")
	}
}

func newtonTangent(eq func(point, float64) (float64, float64), p point, h0 float64, maxIter int) float64 {
	h := h0
	for i := 0; i < maxIter; i++ {
		f, df := eq(p, h)
		next := h - f/df
		if math.Abs(next) > divergenceBound {
			return math.NaN()
		}
		if math.Abs(next-h) < stopDelta {
			return next
		}
		h = next
	}
	return h
}

func newtonDown(eq func(point, float64) (float64, float64), p point, h0 float64, maxIter int) float64 {
	h := h0
	f, df := eq(p, h)
	for i := 0; i < maxIter; i++ {
		lambda := 1.0
		for {
			next := h - lambda*f/df
			if math.Abs(next-h) < stopDelta {
				return next
			}
			nextF, nextDf := eq(p, next)
			if math.Abs(nextF) < math.Abs(f) {
				h, f, df = next, nextF, nextDf
				break
			}
			lambda /= 2
			if lambda < stopDelta {
				return math.NaN()
			}
		}
		if math.Abs(h) > divergenceBound {
			return math.NaN()
		}
	}
	return h
}

// nanMean reports the mean of xs's finite entries and how many there were,
// using gonum/stat.Mean over the filtered slice (stat.Mean itself has no
// NaN-skipping mode, so divergence-produced NaNs are filtered out first).
func nanMean(xs []float64) (float64, int) {
	finite := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			finite = append(finite, x)
		}
	}
	if len(finite) == 0 {
		return math.NaN(), 0
	}
	return stat.Mean(finite, nil), len(finite)
}

func numWorkers(n int) int {
	w := 8
	if n < w {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}
