package scale

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidReferenceWidth indicates a non-positive reference width.
	ErrInvalidReferenceWidth = errors.New("reference width must be positive")

	// ErrInvalidBreakpoints indicates non-monotonic breakpoints.
	ErrInvalidBreakpoints = errors.New("breakpoints must satisfy 0 < mobile < tablet")
)

// Config holds the scaling parameters. It is a plain value object; copy it
// freely and treat instances as immutable. Two configs with identical field
// values are interchangeable.
//
// Construction does not validate the fields. Results for a config that fails
// [Config.Validate] are well-typed but undefined; the file-config loader is
// the only caller that rejects such configs up front.
type Config struct {
	// ReferenceWidth is the design-time viewport width that all scale
	// factors are computed relative to.
	ReferenceWidth float64

	// MobileBreakpoint is the width below which a viewport is mobile.
	MobileBreakpoint float64

	// TabletBreakpoint is the width below which a viewport is tablet, and
	// at or above which it is desktop.
	TabletBreakpoint float64

	// ScaleOnDesktop controls whether desktop viewports scale. When false,
	// desktop tiers return base sizes unchanged.
	ScaleOnDesktop bool
}

// Default values, relative to a common portrait phone design frame.
const (
	DefaultReferenceWidth   = 393.0
	DefaultMobileBreakpoint = 640.0
	DefaultTabletBreakpoint = 1024.0
)

// DefaultConfig returns a [Config] with the default reference width and
// breakpoints, and desktop scaling disabled.
func DefaultConfig() Config {
	return Config{
		ReferenceWidth:   DefaultReferenceWidth,
		MobileBreakpoint: DefaultMobileBreakpoint,
		TabletBreakpoint: DefaultTabletBreakpoint,
		ScaleOnDesktop:   false,
	}
}

// Validate checks the config invariants: a positive reference width and
// strictly increasing positive breakpoints.
func (c Config) Validate() error {
	if c.ReferenceWidth <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidReferenceWidth, c.ReferenceWidth)
	}
	if c.MobileBreakpoint <= 0 || c.MobileBreakpoint >= c.TabletBreakpoint {
		return fmt.Errorf("%w: got mobile=%v tablet=%v",
			ErrInvalidBreakpoints, c.MobileBreakpoint, c.TabletBreakpoint)
	}

	return nil
}

// Viewport is the current host viewport size. The engine keeps a single
// instance of this, overwritten on every layout change; no history is kept.
type Viewport struct {
	Width  float64
	Height float64
}
