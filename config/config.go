/*
NAME
  config.go

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package config holds the user-settable inputs of a TLC run: the video and
// DAQ paths, the synchronization indexes, the region of interest, and the
// physical/numerical parameters that drive the solver. It mirrors the shape
// of github.com/ausocean/av/revid/config.Config: a flat struct, a Validate
// method, and an Update method for reconfiguration from string-keyed input.
package config

import (
	"fmt"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/tlc/filter"
	"github.com/ausocean/tlc/interp"
	"github.com/ausocean/tlc/region"
	"github.com/ausocean/tlc/solve"
)

// Config holds every input the incremental engine tracks.
type Config struct {
	Logger logging.Logger

	Name        string
	SaveRootDir string

	VideoPath string
	DaqPath   string

	StartFrame int
	StartRow   int
	haveStart  bool // whether StartFrame/StartRow have been set at all

	Area region.Area

	FilterMethod filter.Method

	Thermocouples []region.Thermocouple
	InterpMethod  interp.Method

	IterMethod solve.IterMethod
	Physical   solve.PhysicalParam
}

// HaveStart reports whether StartFrame/StartRow have been initialized.
func (c *Config) HaveStart() bool { return c.haveStart }

// SetStart marks the start indexes as initialized; used by the engine after
// coupling computations so zero values are distinguishable from "unset".
func (c *Config) SetStart(sf, sr int) {
	c.StartFrame = sf
	c.StartRow = sr
	c.haveStart = true
}

// ClearStart resets the start indexes to the unset state, as happens when a
// new video is set (spec §4.8).
func (c *Config) ClearStart() {
	c.StartFrame = 0
	c.StartRow = 0
	c.haveStart = false
}

// Validate checks that the config is internally consistent enough to be used
// by the engine. It does not check cross-references into file data (that's
// the job of the derived queries), only the shape of the config itself.
func (c *Config) Validate() error {
	if c.Logger == nil {
		return fmt.Errorf("config: logger not set")
	}
	if c.Area.H <= 0 || c.Area.W <= 0 {
		return fmt.Errorf("config: area has non-positive dimensions (%d, %d)", c.Area.H, c.Area.W)
	}
	return nil
}

// LogInvalidField logs that a field held an invalid value and was replaced
// with a default, matching revid/config's LogInvalidField pattern.
func (c *Config) LogInvalidField(field string, def interface{}) {
	if c.Logger == nil {
		return
	}
	c.Logger.Warning("invalid config field replaced with default", "field", field, "default", def)
}

// Update applies string-keyed overrides, as a façade driven by user input
// (e.g. an HTTP form or RPC call) would. Unrecognised keys are ignored but
// logged, matching revid.Revid.Update's tolerant behaviour.
func (c *Config) Update(vars map[string]string) {
	for k, v := range vars {
		switch k {
		case "name":
			c.Name = v
		case "save_root_dir":
			c.SaveRootDir = v
		case "video_path":
			c.VideoPath = v
		case "daq_path":
			c.DaqPath = v
		default:
			if c.Logger != nil {
				c.Logger.Debug("unrecognised config var ignored", "key", k, "value", v)
			}
		}
	}
}
