/*
NAME
  queries.go

AUTHORS
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package engine

import (
	"context"

	"github.com/ausocean/tlc/daq"
	"github.com/ausocean/tlc/filter"
	"github.com/ausocean/tlc/interp"
	"github.com/ausocean/tlc/region"
	"github.com/ausocean/tlc/solve"
	"github.com/ausocean/tlc/tlcerr"
	"github.com/ausocean/tlc/video"
)

// queryVideo is the read_video derived function (spec §4.2), keyed on
// video_path's version alone: changing any other input must not trigger a
// re-read.
func (e *Engine) queryVideo() (videoResult, error) {
	e.mu.Lock()
	path := e.cfg.VideoPath
	ver := e.snapshotVersions()
	e.mu.Unlock()

	if path == "" {
		return videoResult{}, tlcerr.New(tlcerr.ConfigUnset, "engine: video_path is not set")
	}

	key := keyOf(ver.video)
	return e.videoCache.query(key, func() (videoResult, error) {
		meta, codec, packets, err := video.OpenVideo(path)
		if err != nil {
			return videoResult{}, err
		}
		return videoResult{meta: meta, codec: codec, packets: packets}, nil
	})
}

// queryDaq is the read_daq derived function (spec §4.4), keyed on
// daq_path's version alone.
func (e *Engine) queryDaq() (*daq.Data, error) {
	e.mu.Lock()
	path := e.cfg.DaqPath
	ver := e.snapshotVersions()
	e.mu.Unlock()

	if path == "" {
		return nil, tlcerr.New(tlcerr.ConfigUnset, "engine: daq_path is not set")
	}

	key := keyOf(ver.daq)
	return e.daqCache.query(key, func() (*daq.Data, error) {
		return daq.Read(path)
	})
}

// queryCalNum is eval_cal_num (spec §4.1, §8): cal_num = min(nframes -
// start_frame, nrows - start_row). It depends on video, daq, and start.
func (e *Engine) queryCalNum() (int, error) {
	vres, err := e.queryVideo()
	if err != nil {
		return 0, err
	}
	dres, err := e.queryDaq()
	if err != nil {
		return 0, err
	}

	e.mu.Lock()
	if !e.cfg.HaveStart() {
		e.mu.Unlock()
		return 0, tlcerr.New(tlcerr.ConfigUnset, "engine: start_frame/start_row are not set")
	}
	sf, sr := e.cfg.StartFrame, e.cfg.StartRow
	ver := e.snapshotVersions()
	e.mu.Unlock()

	nrows, _ := dres.Dims()
	remainingFrames := vres.meta.NFrames - sf
	remainingRows := nrows - sr
	if remainingFrames < 0 || remainingRows < 0 {
		return 0, tlcerr.New(tlcerr.BoundsViolation, "engine: start indexes (%d, %d) exceed data bounds", sf, sr)
	}

	key := keyOf(ver.video, ver.daq, ver.start)
	return e.calNumCache.query(key, func() (int, error) {
		if remainingFrames < remainingRows {
			return remainingFrames, nil
		}
		return remainingRows, nil
	})
}

// queryGreen2 is decode_all (spec §4.3).
func (e *Engine) queryGreen2(ctx context.Context) (*video.Green2, error) {
	vres, err := e.queryVideo()
	if err != nil {
		return nil, err
	}
	calNum, err := e.queryCalNum()
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	sf := e.cfg.StartFrame
	area := e.cfg.Area
	pool := e.decoderPool
	ver := e.snapshotVersions()
	e.mu.Unlock()

	key := keyOf(ver.video, ver.daq, ver.start, ver.area)
	return e.green2Cache.query(key, func() (*video.Green2, error) {
		return video.BuildGreen2(ctx, pool, &e.progGreen2, vres.packets, sf, calNum, vres.meta, area)
	})
}

// queryPeaks is filter_detect_peak (spec §4.5).
func (e *Engine) queryPeaks(ctx context.Context) ([]int, error) {
	g, err := e.queryGreen2(ctx)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	method := e.cfg.FilterMethod
	ver := e.snapshotVersions()
	e.mu.Unlock()

	key := keyOf(ver.video, ver.daq, ver.start, ver.area, ver.filterM)
	return e.peakCache.query(key, func() ([]int, error) {
		return filter.DetectPeak(ctx, &e.progPeak, g, method)
	})
}

// queryInterpolator is make_interpolator (spec §4.6).
func (e *Engine) queryInterpolator() (*interp.Interpolator, error) {
	calNum, err := e.queryCalNum() // also ensures video/daq/start are resolvable
	if err != nil {
		return nil, err
	}
	dres, err := e.queryDaq()
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	sr := e.cfg.StartRow
	area := e.cfg.Area
	method := e.cfg.InterpMethod
	tcs := append([]region.Thermocouple(nil), e.cfg.Thermocouples...)
	ver := e.snapshotVersions()
	e.mu.Unlock()

	key := keyOf(ver.daq, ver.start, ver.area, ver.interpM, ver.thermo)
	return e.interpCache.query(key, func() (*interp.Interpolator, error) {
		return interp.New(sr, calNum, area, method, tcs, dres)
	})
}

// querySolve is solve_nu (spec §4.7).
func (e *Engine) querySolve(ctx context.Context) (solve.NuData, error) {
	peaks, err := e.queryPeaks(ctx)
	if err != nil {
		return solve.NuData{}, err
	}
	it, err := e.queryInterpolator()
	if err != nil {
		return solve.NuData{}, err
	}
	vres, err := e.queryVideo()
	if err != nil {
		return solve.NuData{}, err
	}

	e.mu.Lock()
	area := e.cfg.Area
	phys := e.cfg.Physical
	iter := e.cfg.IterMethod
	ver := e.snapshotVersions()
	e.mu.Unlock()

	key := keyOf(ver.video, ver.daq, ver.start, ver.area, ver.filterM, ver.interpM, ver.thermo, ver.physical, ver.iterM)
	return e.nuCache.query(key, func() (solve.NuData, error) {
		return solve.Solve(ctx, &e.progSolve, area.H, area.W, vres.meta.FrameRate, peaks, it, phys, iter)
	})
}
