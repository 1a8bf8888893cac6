/*
DESCRIPTION
  tlc-engine is a command-line façade over the TLC incremental engine: it
  wires a Config, drives one run end-to-end, and saves the solved Nu field.

AUTHORS
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main is a thin façade over package engine: no transport is
// specified by the underlying contract, so this binary simply drives one
// run from flags and exits, the same shape cmd/looper and cmd/rv take over
// their respective packages.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/tlc/engine"
	"github.com/ausocean/tlc/filter"
	"github.com/ausocean/tlc/interp"
	"github.com/ausocean/tlc/solve"
	"github.com/ausocean/tlc/store"
)

const (
	logPath      = "tlc-engine.log"
	logMaxSize   = 100 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
	logVerbosity = logging.Debug
	logSuppress  = true
)

func main() {
	var (
		videoPath   = flag.String("video", "", "path to the TLC capture video")
		daqPath     = flag.String("daq", "", "path to the DAQ .lvm or .xlsx file")
		startFrame  = flag.String("start-frame", "", "video frame index synchronized to start-row")
		startRow    = flag.String("start-row", "", "DAQ row index synchronized to start-frame")
		saveRootDir = flag.String("save-dir", ".", "directory to write nu_matrix/nu_plot/config outputs under")
		name        = flag.String("name", "run", "base name for output files")
	)
	flag.Parse()

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	l := logging.New(logVerbosity, io.MultiWriter(fileLog, os.Stderr), logSuppress)

	if err := run(l, runParams{
		videoPath:   *videoPath,
		daqPath:     *daqPath,
		startFrame:  *startFrame,
		startRow:    *startRow,
		saveRootDir: *saveRootDir,
		name:        *name,
	}); err != nil {
		l.Error("run failed", "error", err.Error())
		os.Exit(1)
	}
}

type runParams struct {
	videoPath, daqPath, startFrame, startRow, saveRootDir, name string
}

// run wires the engine's control surface the way an HTTP handler or RPC
// service would, then drives one pass to a saved result. It exists
// separately from main so the wiring is testable without flag.Parse.
func run(l logging.Logger, p runParams) error {
	if p.videoPath == "" || p.daqPath == "" {
		return fmt.Errorf("tlc-engine: -video and -daq are required")
	}

	e := engine.New(l)
	if err := e.SetVideoPath(p.videoPath); err != nil {
		return fmt.Errorf("set video path: %w", err)
	}
	e.SetDaqPath(p.daqPath)

	sf, sr, err := parseStart(p.startFrame, p.startRow)
	if err != nil {
		return err
	}
	if err := e.SynchronizeVideoAndDaq(sf, sr); err != nil {
		return fmt.Errorf("synchronize video and daq: %w", err)
	}

	e.SetFilterMethod(mustFilterMethod(filter.NewWavelet(0.8)))
	e.SetInterpMethod(interp.Method{Kind: interp.Horizontal})
	if err := e.SetIterMethod(solve.IterMethod{Kind: solve.NewtonDown, H0: 50, MaxIter: 10}); err != nil {
		return fmt.Errorf("set iter method: %w", err)
	}
	if err := e.SetPhysical(solve.PhysicalParam{
		GmaxTemperature: 35.48,
		SolidK:          0.19,
		SolidAlpha:      1.091e-7,
		CharLength:      0.015,
		AirK:            0.0276,
	}); err != nil {
		return fmt.Errorf("set physical params: %w", err)
	}

	ctx := context.Background()
	nu, err := e.GetNuData(ctx)
	if err != nil {
		return fmt.Errorf("get nu data: %w", err)
	}

	cfg := e.Config()
	cfg.Name = p.name
	cfg.SaveRootDir = p.saveRootDir
	if err := store.SaveData(cfg, nu.Nu2, nu.NuNanMean, nil); err != nil {
		return fmt.Errorf("save data: %w", err)
	}

	l.Info("run complete", "nu_nan_mean", nu.NuNanMean)
	return nil
}

func mustFilterMethod(m filter.Method, err error) filter.Method {
	if err != nil {
		panic(err)
	}
	return m
}

func parseStart(sf, sr string) (int, int, error) {
	var a, b int
	if _, err := fmt.Sscanf(sf, "%d", &a); err != nil {
		return 0, 0, fmt.Errorf("tlc-engine: invalid -start-frame %q: %w", sf, err)
	}
	if _, err := fmt.Sscanf(sr, "%d", &b); err != nil {
		return 0, 0, fmt.Errorf("tlc-engine: invalid -start-row %q: %w", sr, err)
	}
	return a, b, nil
}
