/*
NAME
  control.go

AUTHORS
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// control.go implements the read side of the control surface (spec §6):
// get_X queries and the UI-facing operations that sit directly on top of
// the derived-function graph (filter_point, interp_frame,
// decode_frame_base64, get_nu_data).
package engine

import (
	"context"

	"github.com/ausocean/tlc/filter"
	"github.com/ausocean/tlc/solve"
	"github.com/ausocean/tlc/tlcerr"
	"github.com/ausocean/tlc/video"
)

// GetVideoMeta returns the active video's metadata.
func (e *Engine) GetVideoMeta() (video.Meta, error) {
	res, err := e.queryVideo()
	return res.meta, err
}

// GetDaqDims returns the active DAQ table's (nrows, ncols).
func (e *Engine) GetDaqDims() (int, int, error) {
	d, err := e.queryDaq()
	if err != nil {
		return 0, 0, err
	}
	nrows, ncols := d.Dims()
	return nrows, ncols, nil
}

// GetCalNum returns the current synchronized-window length.
func (e *Engine) GetCalNum() (int, error) { return e.queryCalNum() }

// FilterPoint returns the filtered temporal green signal at an
// area-relative (y, x), for visualization (spec §4.5, §6).
func (e *Engine) FilterPoint(ctx context.Context, y, x int) ([]byte, error) {
	g, err := e.queryGreen2(ctx)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	method := e.cfg.FilterMethod
	e.mu.Unlock()
	return filter.Point(g, method, y, x)
}

// InterpFrame materializes one frame of the interpolated temperature field
// (spec §4.6, §6).
func (e *Engine) InterpFrame(frameIndex int) ([]float64, error) {
	it, err := e.queryInterpolator()
	if err != nil {
		return nil, err
	}
	return it.InterpFrame(frameIndex)
}

// DecodeFrameBase64 decodes and JPEG-encodes one video frame for the UI
// preview path (spec §4.3, §6).
func (e *Engine) DecodeFrameBase64(ctx context.Context, frameIndex int) (string, error) {
	if _, err := e.queryVideo(); err != nil {
		return "", err
	}
	e.mu.Lock()
	p := e.previewer
	e.mu.Unlock()
	if p == nil {
		return "", tlcerr.New(tlcerr.ConfigUnset, "engine: no video loaded")
	}
	return p.DecodeFrameBase64(ctx, frameIndex)
}

// GetNuData runs the full pipeline to the solved Nu field (spec §4.7, §6).
func (e *Engine) GetNuData(ctx context.Context) (solve.NuData, error) {
	return e.querySolve(ctx)
}
