package scale

// Scaler binds a [Config] and a [Viewport] into a short-lived value so a run
// of computations can share one pair without repeating the arguments. Build
// one at the point of use from explicit values; it holds no hidden state.
type Scaler struct {
	Config   Config
	Viewport Viewport
}

// NewScaler creates a [Scaler] for the given config and viewport.
func NewScaler(c Config, vp Viewport) Scaler {
	return Scaler{Config: c, Viewport: vp}
}

// Tier returns the device tier for the bound viewport.
func (s Scaler) Tier() Tier {
	return Classify(s.Viewport.Width, s.Config)
}

// Factor returns the width scale factor for the bound viewport.
func (s Scaler) Factor() float64 {
	return Factor(s.Viewport.Width, s.Config)
}

// HeightFactor returns the height scale factor for the bound viewport.
func (s Scaler) HeightFactor() float64 {
	return HeightFactor(s.Viewport.Height, s.Config)
}

// Size scales base on the given axis.
func (s Scaler) Size(base float64, axis Axis) float64 {
	return Size(base, axis, s.Config, s.Viewport)
}

// SizeClamped scales base on the given axis and clamps the result.
func (s Scaler) SizeClamped(base float64, axis Axis, minSize, maxSize float64) float64 {
	return SizeClamped(base, axis, s.Config, s.Viewport, minSize, maxSize)
}

// SizeByTier resolves a size per device tier.
func (s Scaler) SizeByTier(mobileBase float64, tabletOverride, desktopOverride *float64) float64 {
	return SizeByTier(mobileBase, tabletOverride, desktopOverride, s.Config, s.Viewport)
}

// Token resolves a token for the bound config and viewport.
func (s Scaler) Token(t Token) float64 {
	return t.Resolve(s.Config, s.Viewport)
}
