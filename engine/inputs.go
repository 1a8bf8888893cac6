/*
NAME
  inputs.go

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
	"github.com/ausocean/tlc/filter"
	"github.com/ausocean/tlc/interp"
	"github.com/ausocean/tlc/region"
	"github.com/ausocean/tlc/solve"
	"github.com/ausocean/tlc/tlcerr"
	"github.com/ausocean/tlc/video"
)

// SetVideoPath opens the video at path and installs it as the engine's
// active video (spec §4.2, §4.8). Because computing the new default area
// requires the video's dimensions, the read happens synchronously here
// rather than being left fully lazy; the result is seeded directly into
// videoCache so a later query doesn't redo the decode.
//
// If a concurrent SetVideoPath call supersedes this one before the read
// completes, this call's result is discarded and Cancelled is returned
// (spec §8 scenario 4, §9).
func (e *Engine) SetVideoPath(path string) error {
	e.mu.Lock()
	e.cfg.VideoPath = path
	ver := e.vVideo.bump()
	e.mu.Unlock()

	meta, codec, packets, err := video.OpenVideo(path)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if uint64(e.vVideo) != ver {
		e.cfg.Logger.Debug("engine: video read superseded before it completed", "path", path)
		return tlcerr.New(tlcerr.Cancelled, "engine: video_path superseded during read")
	}

	shapeChanged := meta.Height != e.curH || meta.Width != e.curW
	e.curH, e.curW = meta.Height, meta.Width

	e.cfg.ClearStart()
	e.vStart.bump()
	e.cfg.Area = region.DefaultArea(meta.Height, meta.Width)
	e.vArea.bump()
	if shapeChanged {
		e.cfg.Thermocouples = nil
		e.vThermo.bump()
	}

	if e.decoderPool != nil {
		e.decoderPool.Close()
	}
	e.decoderPool = video.NewDecoderPool(codec)
	e.previewer = video.NewPreviewer(e.decoderPool, packets, meta)

	e.videoCache.seed(keyOf(ver), videoResult{meta: meta, codec: codec, packets: packets})
	return nil
}

// SetDaqPath installs path as the engine's DAQ source (spec §4.4). Unlike
// SetVideoPath, no coupling decision depends on the file's contents, so the
// read itself stays lazy and happens the next time a derived query needs it.
func (e *Engine) SetDaqPath(path string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.DaqPath = path
	e.vDaq.bump()
}

// SetArea installs a new region of interest.
func (e *Engine) SetArea(a region.Area) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.curH > 0 || e.curW > 0 {
		if err := a.Validate(e.curH, e.curW); err != nil {
			return err
		}
	}
	e.cfg.Area = a
	e.vArea.bump()
	return nil
}

// SetFilterMethod installs the per-pixel filtering method (spec §4.5).
func (e *Engine) SetFilterMethod(m filter.Method) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.FilterMethod = m
	e.vFilter.bump()
}

// SetThermocouples installs the thermocouple placements used by the
// interpolator (spec §4.6).
func (e *Engine) SetThermocouples(tcs []region.Thermocouple) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.Thermocouples = append([]region.Thermocouple(nil), tcs...)
	e.vThermo.bump()
}

// SetInterpMethod installs the interpolation method (spec §4.6).
func (e *Engine) SetInterpMethod(m interp.Method) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.InterpMethod = m
	e.vInterp.bump()
}

// SetIterMethod installs the solver's root-finding method (spec §4.7).
func (e *Engine) SetIterMethod(m solve.IterMethod) error {
	if err := m.Validate(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.IterMethod = m
	e.vIter.bump()
	return nil
}

// SetPhysical installs the plate's physical parameters (spec §4.7).
func (e *Engine) SetPhysical(p solve.PhysicalParam) error {
	if err := p.Validate(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.Physical = p
	e.vPhysical.bump()
	return nil
}

// SetStartFrame sets start_frame in isolation, preserving the synchronized
// gap to start_row (spec §4.8). It requires that start indexes already be
// established via SynchronizeVideoAndDaq.
func (e *Engine) SetStartFrame(sf int) error {
	vres, err := e.queryVideo()
	if err != nil {
		return err
	}
	dres, err := e.queryDaq()
	if err != nil {
		return err
	}
	nrows, _ := dres.Dims()

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.cfg.HaveStart() {
		return tlcerr.New(tlcerr.ConfigUnset, "engine: start indexes are unset; call SynchronizeVideoAndDaq first")
	}
	newSR, err := coupleStartFrame(e.cfg.StartFrame, e.cfg.StartRow, sf, vres.meta.NFrames, nrows)
	if err != nil {
		return err
	}
	e.cfg.SetStart(sf, newSR)
	e.vStart.bump()
	return nil
}

// SetStartRow is the symmetric counterpart of SetStartFrame (spec §4.8).
func (e *Engine) SetStartRow(sr int) error {
	vres, err := e.queryVideo()
	if err != nil {
		return err
	}
	dres, err := e.queryDaq()
	if err != nil {
		return err
	}
	nrows, _ := dres.Dims()

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.cfg.HaveStart() {
		return tlcerr.New(tlcerr.ConfigUnset, "engine: start indexes are unset; call SynchronizeVideoAndDaq first")
	}
	newSF, err := coupleStartRow(e.cfg.StartFrame, e.cfg.StartRow, sr, vres.meta.NFrames, nrows)
	if err != nil {
		return err
	}
	e.cfg.SetStart(newSF, sr)
	e.vStart.bump()
	return nil
}

// SynchronizeVideoAndDaq sets both start indexes at once, without the
// coupling constraint SetStartFrame/SetStartRow enforce (spec §4.8).
func (e *Engine) SynchronizeVideoAndDaq(sf, sr int) error {
	vres, err := e.queryVideo()
	if err != nil {
		return err
	}
	dres, err := e.queryDaq()
	if err != nil {
		return err
	}
	nrows, _ := dres.Dims()

	e.mu.Lock()
	defer e.mu.Unlock()
	if sf < 0 || sf >= vres.meta.NFrames {
		return tlcerr.New(tlcerr.BoundsViolation, "engine: start_frame %d exceeds nframes %d", sf, vres.meta.NFrames)
	}
	if sr < 0 || sr >= nrows {
		return tlcerr.New(tlcerr.BoundsViolation, "engine: start_row %d exceeds nrows %d", sr, nrows)
	}
	e.cfg.SetStart(sf, sr)
	e.vStart.bump()
	return nil
}
