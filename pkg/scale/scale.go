package scale

import (
	"errors"
	"fmt"
	"strings"
)

// heightReferenceRatio approximates a reference height as a multiple of the
// reference width. No reference height is modeled; 1.78 is a common portrait
// phone aspect ratio. Kept fixed for parity with designs authored against it.
const heightReferenceRatio = 1.78

// ErrUnknownAxis indicates an unrecognized axis name.
var ErrUnknownAxis = errors.New("unknown axis")

// Axis selects which scale factor applies to a size.
type Axis int

const (
	// AxisGeneral scales by the width factor. Use for sizes with no
	// dominant direction, e.g. padding or icon sizes.
	AxisGeneral Axis = iota

	// AxisWidth scales by the width factor.
	AxisWidth

	// AxisHeight scales by the height factor, which is derived from the
	// viewport height and the approximated reference height.
	AxisHeight

	// AxisFont scales by the width factor.
	AxisFont
)

// AllAxes contains the names of every [Axis], for flag completion.
var AllAxes = []string{"general", "width", "height", "font"}

func (a Axis) String() string {
	switch a {
	case AxisGeneral:
		return "general"
	case AxisWidth:
		return "width"
	case AxisHeight:
		return "height"
	case AxisFont:
		return "font"
	}

	return "unknown"
}

// ParseAxis converts an axis name to an [Axis].
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "general":
		return AxisGeneral, nil
	case "width":
		return AxisWidth, nil
	case "height":
		return AxisHeight, nil
	case "font":
		return AxisFont, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAxis, s)
}

// Factor returns the width scale factor: viewportWidth / ReferenceWidth.
// It is not floored or capped; values below 1 shrink and values above 1 grow.
func Factor(viewportWidth float64, c Config) float64 {
	return viewportWidth / c.ReferenceWidth
}

// HeightFactor returns the height scale factor. Height scaling approximates
// the reference height as ReferenceWidth * 1.78 rather than modeling a second
// reference dimension, so it is only aspect-correct for viewports near that
// ratio.
func HeightFactor(viewportHeight float64, c Config) float64 {
	return viewportHeight / (c.ReferenceWidth * heightReferenceRatio)
}

// factorFor returns the multiplier for the given axis.
func factorFor(axis Axis, c Config, vp Viewport) float64 {
	if axis == AxisHeight {
		return HeightFactor(vp.Height, c)
	}

	return Factor(vp.Width, c)
}

// Size scales base by the axis factor for the given config and viewport.
// On a desktop-tier viewport with ScaleOnDesktop disabled it returns base
// unchanged, regardless of axis.
func Size(base float64, axis Axis, c Config, vp Viewport) float64 {
	if Classify(vp.Width, c) == TierDesktop && !c.ScaleOnDesktop {
		return base
	}

	return base * factorFor(axis, c, vp)
}

// SizeClamped is [Size] with the scaled result clamped into [minSize, maxSize].
// The desktop short-circuit applies before clamping: a non-scaling desktop
// viewport returns base even when it lies outside the bounds. If
// minSize > maxSize the bounds are ignored and the unclamped value is
// returned.
func SizeClamped(base float64, axis Axis, c Config, vp Viewport, minSize, maxSize float64) float64 {
	if Classify(vp.Width, c) == TierDesktop && !c.ScaleOnDesktop {
		return base
	}

	return Clamp(base*factorFor(axis, c, vp), minSize, maxSize)
}

// Clamp restricts v to the closed interval [minV, maxV]. An inverted
// interval (minV > maxV) returns v unchanged.
func Clamp(v, minV, maxV float64) float64 {
	if minV > maxV {
		return v
	}
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}

	return v
}

// Tier multipliers used by [SizeByTier] when no override is given.
const (
	tabletDefaultMultiplier  = 1.5
	desktopDefaultMultiplier = 2.0

	// Mobile sizes are scaled but held within ±10% of the base.
	mobileClampRatio = 0.1
)

// SizeByTier resolves a size per device tier. On mobile, mobileBase is scaled
// on the general axis and clamped within ±10% of itself. On tablet and
// desktop the override is returned verbatim when non-nil; otherwise the
// literal values mobileBase*1.5 and mobileBase*2 are used, with no scaling
// applied.
func SizeByTier(mobileBase float64, tabletOverride, desktopOverride *float64, c Config, vp Viewport) float64 {
	switch Classify(vp.Width, c) {
	case TierTablet:
		if tabletOverride != nil {
			return *tabletOverride
		}

		return mobileBase * tabletDefaultMultiplier

	case TierDesktop:
		if desktopOverride != nil {
			return *desktopOverride
		}

		return mobileBase * desktopDefaultMultiplier

	default:
		return SizeClamped(mobileBase, AxisGeneral, c, vp,
			mobileBase*(1-mobileClampRatio), mobileBase*(1+mobileClampRatio))
	}
}
