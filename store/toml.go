/*
NAME
  toml.go

AUTHORS
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package store

import (
	"io"

	"github.com/BurntSushi/toml"

	"github.com/ausocean/tlc/config"
	"github.com/ausocean/tlc/filter"
	"github.com/ausocean/tlc/interp"
	"github.com/ausocean/tlc/region"
	"github.com/ausocean/tlc/solve"
)

// Snapshot is every engine input plus the run's headline result, written to
// and read from a TOML setting file (spec §6).
type Snapshot struct {
	Name        string `toml:"name"`
	SaveRootDir string `toml:"save_root_dir"`
	VideoPath   string `toml:"video_path"`
	DaqPath     string `toml:"daq_path"`

	StartFrame int `toml:"start_frame"`
	StartRow   int `toml:"start_row"`

	Area region.Area `toml:"area"`

	FilterMethod filter.Method `toml:"filter_method"`

	Thermocouples []region.Thermocouple `toml:"thermocouples"`
	InterpMethod  interp.Method         `toml:"interp_method"`

	IterMethod solve.IterMethod    `toml:"iter_method"`
	Physical   solve.PhysicalParam `toml:"physical"`

	NuNanMean float64 `toml:"nu_nan_mean"`
}

// BuildSnapshot captures cfg and the solved mean into a Snapshot.
func BuildSnapshot(cfg config.Config, nuNanMean float64) Snapshot {
	return Snapshot{
		Name:          cfg.Name,
		SaveRootDir:   cfg.SaveRootDir,
		VideoPath:     cfg.VideoPath,
		DaqPath:       cfg.DaqPath,
		StartFrame:    cfg.StartFrame,
		StartRow:      cfg.StartRow,
		Area:          cfg.Area,
		FilterMethod:  cfg.FilterMethod,
		Thermocouples: cfg.Thermocouples,
		InterpMethod:  cfg.InterpMethod,
		IterMethod:    cfg.IterMethod,
		Physical:      cfg.Physical,
		NuNanMean:     nuNanMean,
	}
}

// WriteSnapshot TOML-encodes snap to w.
func WriteSnapshot(w io.Writer, snap Snapshot) error {
	return toml.NewEncoder(w).Encode(snap)
}

// ReadSnapshot decodes a Snapshot previously written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	_, err := toml.NewDecoder(r).Decode(&snap)
	return snap, err
}
