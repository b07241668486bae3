// Package engine holds the mutable scaling state shared between a UI binding
// and size queries: the active config, the last reported viewport, and the
// cached width scale factor. The binding pushes viewport updates in; size
// queries pull values out. Nothing here ever calls back into the UI layer.
package engine

import (
	"log/slog"
	"sync"

	"github.com/viewscale/viewscale/pkg/scale"
)

// Engine is the process-wide scaling state holder. Construct one with [New]
// and pass the reference to whatever layer needs it; there is no package
// global.
//
// A single mutex guards every read and write, so a viewport update and a
// subsequent query from the same goroutine always observe the update, and
// concurrent readers always see a consistent config+viewport pair. Updates
// are applied synchronously; last write wins.
//
// Every size query has a no-crash fallback for the window before setup
// completes: an unconfigured engine returns the caller's base size unchanged
// (clamped into bounds for the constrained variants), never an error.
type Engine struct {
	mu sync.Mutex

	cfg    scale.Config
	vp     scale.Viewport
	factor float64

	hasConfig   bool
	hasViewport bool
}

// New creates an unconfigured [Engine].
func New() *Engine {
	return &Engine{}
}

// Configure sets the active config, replacing any previous one.
func (e *Engine) Configure(cfg scale.Config) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cfg = cfg
	e.hasConfig = true
	e.recomputeFactor()
}

// UpdateViewport records the current viewport size, overwriting the previous
// value, and recomputes the cached width factor before returning.
func (e *Engine) UpdateViewport(width, height float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.vp = scale.Viewport{Width: width, Height: height}
	e.hasViewport = true
	e.recomputeFactor()

	slog.Debug("viewport updated",
		slog.Float64("width", width),
		slog.Float64("height", height),
		slog.Float64("factor", e.factor),
	)
}

// Clear resets the engine to fully uninitialized. Used for teardown and test
// isolation.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cfg = scale.Config{}
	e.vp = scale.Viewport{}
	e.factor = 0
	e.hasConfig = false
	e.hasViewport = false
}

// IsConfigured reports whether both a config and a viewport have been set
// since the last [Engine.Clear].
func (e *Engine) IsConfigured() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.hasConfig && e.hasViewport
}

// Config returns the active config, with ok false when none has been set.
func (e *Engine) Config() (scale.Config, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.cfg, e.hasConfig
}

// Viewport returns the current viewport, with ok false when none has been
// reported.
func (e *Engine) Viewport() (scale.Viewport, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.vp, e.hasViewport
}

// Factor returns the cached width scale factor, with ok false until the
// engine is configured.
func (e *Engine) Factor() (float64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.factor, e.hasConfig && e.hasViewport
}

// Tier returns the device tier for the current viewport, with ok false until
// the engine is configured.
func (e *Engine) Tier() (scale.Tier, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.hasConfig || !e.hasViewport {
		return 0, false
	}

	return scale.Classify(e.vp.Width, e.cfg), true
}

// Scaler returns a [scale.Scaler] bound to the current config and viewport,
// with ok false until the engine is configured.
func (e *Engine) Scaler() (scale.Scaler, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.hasConfig || !e.hasViewport {
		return scale.Scaler{}, false
	}

	return scale.NewScaler(e.cfg, e.vp), true
}

// Size scales base on the given axis. Unconfigured fallback: base unchanged.
func (e *Engine) Size(base float64, axis scale.Axis) float64 {
	s, ok := e.Scaler()
	if !ok {
		return base
	}

	return s.Size(base, axis)
}

// SizeClamped scales base on the given axis and clamps the result.
// Unconfigured fallback: base clamped into [minSize, maxSize], not scaled.
func (e *Engine) SizeClamped(base float64, axis scale.Axis, minSize, maxSize float64) float64 {
	s, ok := e.Scaler()
	if !ok {
		return scale.Clamp(base, minSize, maxSize)
	}

	return s.SizeClamped(base, axis, minSize, maxSize)
}

// SizeByTier resolves a size per device tier. Unconfigured fallback: the
// mobile base unchanged.
func (e *Engine) SizeByTier(mobileBase float64, tabletOverride, desktopOverride *float64) float64 {
	s, ok := e.Scaler()
	if !ok {
		return mobileBase
	}

	return s.SizeByTier(mobileBase, tabletOverride, desktopOverride)
}

// Token resolves a scaling token. Unconfigured fallback: the token's base.
func (e *Engine) Token(t scale.Token) float64 {
	s, ok := e.Scaler()
	if !ok {
		return t.Base
	}

	return s.Token(t)
}

// recomputeFactor caches the width factor. Callers must hold e.mu.
func (e *Engine) recomputeFactor() {
	if !e.hasConfig || !e.hasViewport {
		return
	}

	e.factor = scale.Factor(e.vp.Width, e.cfg)
}
