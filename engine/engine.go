/*
NAME
  engine.go

AUTHORS
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package engine is the incremental query engine that turns a Config into
// cached, versioned derived artifacts: the decoded video, the DAQ table,
// Green2, detected peaks, the interpolator, and the solved Nu field (spec
// §4.1). Inputs are mutated under a single coarse mutex; each derived
// function is memoized on the identity (version) of the inputs it reads, and
// golang.org/x/sync/singleflight coalesces concurrent queries that land on
// the same key.
package engine

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/tlc/config"
	"github.com/ausocean/tlc/daq"
	"github.com/ausocean/tlc/filter"
	"github.com/ausocean/tlc/interp"
	"github.com/ausocean/tlc/progress"
	"github.com/ausocean/tlc/region"
	"github.com/ausocean/tlc/solve"
	"github.com/ausocean/tlc/video"
)

// videoResult is the read_video derived artifact (spec §4.2).
type videoResult struct {
	meta    video.Meta
	codec   video.CodecParameters
	packets []video.Packet
}

// Engine owns one TLC run's configuration and every derived artifact
// computed from it. The zero value is not usable; construct with New.
type Engine struct {
	mu  sync.Mutex
	cfg config.Config

	curH, curW int // shape of the most recently read video, for §4.8's shape-change rule

	vVideo, vDaq, vStart, vArea, vFilter, vThermo, vInterp, vIter, vPhysical versionCounter

	videoCache  cache[videoResult]
	daqCache    cache[*daq.Data]
	calNumCache cache[int]
	green2Cache cache[*video.Green2]
	peakCache   cache[[]int]
	interpCache cache[*interp.Interpolator]
	nuCache     cache[solve.NuData]

	decoderPool *video.DecoderPool
	previewer   *video.Previewer

	progVideo, progGreen2, progPeak, progSolve progress.Bar
}

// New returns an Engine with no video or DAQ loaded yet.
func New(logger logging.Logger) *Engine {
	e := &Engine{}
	e.cfg.Logger = logger
	return e
}

// Config returns a copy of the engine's current configuration.
func (e *Engine) Config() config.Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// versionCounter is a plain uint64 guarded by Engine.mu; every mutation
// happens while the caller already holds the engine mutex (spec §5's
// single-writer model), so no atomics are needed here -- only query-side
// reads of a version snapshot, which also go through the mutex via
// Engine.snapshotVersions.
type versionCounter uint64

func (v *versionCounter) bump() uint64 { *v++; return uint64(*v) }

// versions is a point-in-time snapshot of every input's version, captured
// while holding Engine.mu. A derived query builds its cache key from the
// versions it depends on. The live counters are not checked again once the
// off-lock work finishes: a result computed from inputs that changed in the
// meantime is still stored, under its old key, which no later query built
// from the newer versions matches.
type versions struct {
	video, daq, start, area, filterM, thermo, interpM, iterM, physical uint64
}

func (e *Engine) snapshotVersions() versions {
	return versions{
		video:    uint64(e.vVideo),
		daq:      uint64(e.vDaq),
		start:    uint64(e.vStart),
		area:     uint64(e.vArea),
		filterM:  uint64(e.vFilter),
		thermo:   uint64(e.vThermo),
		interpM:  uint64(e.vInterp),
		iterM:    uint64(e.vIter),
		physical: uint64(e.vPhysical),
	}
}

// cache is a single memoized derived-function slot: one key, one cached
// (value, error) pair, with a singleflight.Group so concurrent queries on
// the same key share one computation instead of racing to recompute (spec
// §4.1 "queries on the same key coalesce to one computation").
type cache[T any] struct {
	group singleflight.Group

	mu  sync.Mutex
	key string
	val T
	err error
	has bool
}

// query returns the cached (val, err) for key if present, otherwise runs
// compute exactly once across all concurrent callers sharing key. A
// Cancelled result is never cached, matching §7's policy.
func (c *cache[T]) query(key string, compute func() (T, error)) (T, error) {
	c.mu.Lock()
	if c.has && c.key == key {
		v, e := c.val, c.err
		c.mu.Unlock()
		return v, e
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		c.mu.Lock()
		if c.has && c.key == key {
			v, e := c.val, c.err
			c.mu.Unlock()
			return v, e
		}
		c.mu.Unlock()

		res, cerr := compute()
		if !isCancelled(cerr) {
			c.mu.Lock()
			c.key, c.val, c.err, c.has = key, res, cerr, true
			c.mu.Unlock()
		}
		return res, cerr
	})
	return v.(T), err
}

// seed directly installs a (key, val) pair, used when a setter has already
// done the work a query would otherwise redo (e.g. SetVideoPath must read
// the new video to compute the default area, so that read seeds videoCache
// rather than being thrown away).
func (c *cache[T]) seed(key string, val T) {
	c.mu.Lock()
	c.key, c.val, c.err, c.has = key, val, nil, true
	c.mu.Unlock()
}

func keyOf(parts ...uint64) string {
	s := ""
	for _, p := range parts {
		s += fmt.Sprintf("%d:", p)
	}
	return s
}
