package store

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ausocean/tlc/config"
	"github.com/ausocean/tlc/filter"
	"github.com/ausocean/tlc/interp"
	"github.com/ausocean/tlc/region"
	"github.com/ausocean/tlc/solve"
)

func TestSnapshotRoundTrip(t *testing.T) {
	cfg := config.Config{
		Name:        "run1",
		SaveRootDir: "/tmp/out",
		VideoPath:   "video.mp4",
		DaqPath:     "daq.lvm",
		StartFrame:  10,
		StartRow:    20,
		Area:        region.Area{TopY: 1, TopX: 2, H: 3, W: 4},
		FilterMethod: filter.Method{
			Kind:       filter.Median,
			WindowSize: 5,
		},
		Thermocouples: []region.Thermocouple{
			{ColumnIndex: 0, Y: 1, X: 2},
			{ColumnIndex: 1, Y: 3, X: 4},
		},
		InterpMethod: interp.Method{Kind: interp.Horizontal},
		IterMethod:   solve.IterMethod{Kind: solve.NewtonDown, H0: 50, MaxIter: 10},
		Physical: solve.PhysicalParam{
			GmaxTemperature: 35.48,
			SolidK:          0.19,
			SolidAlpha:      1.091e-7,
			CharLength:      0.015,
			AirK:            0.0276,
		},
	}
	snap := BuildSnapshot(cfg, 12.5)

	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, snap); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}

	got, err := ReadSnapshot(&buf)
	if err != nil {
		t.Fatalf("ReadSnapshot: %v", err)
	}
	if diff := cmp.Diff(snap, got); diff != "" {
		t.Errorf("snapshot round trip mismatch (-want +got):\n%s", diff)
	}
}
