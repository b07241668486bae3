package scale

// Tier is the device class derived from the current viewport width. It is
// never stored; callers derive it on demand with [Classify].
type Tier int

const (
	// TierMobile covers widths strictly below the mobile breakpoint.
	TierMobile Tier = iota

	// TierTablet covers widths from the mobile breakpoint up to, but not
	// including, the tablet breakpoint.
	TierTablet

	// TierDesktop covers widths at or above the tablet breakpoint.
	TierDesktop
)

func (t Tier) String() string {
	switch t {
	case TierMobile:
		return "mobile"
	case TierTablet:
		return "tablet"
	case TierDesktop:
		return "desktop"
	}

	return "unknown"
}

// Classify returns the [Tier] for the given viewport width. Breakpoints are
// inclusive lower bounds of the higher tier: a width exactly equal to a
// breakpoint belongs to the tier above it.
func Classify(width float64, c Config) Tier {
	switch {
	case width < c.MobileBreakpoint:
		return TierMobile
	case width < c.TabletBreakpoint:
		return TierTablet
	default:
		return TierDesktop
	}
}
