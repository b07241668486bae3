package scale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewscale/viewscale/pkg/scale"
)

func ptr(v float64) *float64 { return &v }

func TestFactor(t *testing.T) {
	t.Parallel()

	cfg := scale.DefaultConfig()

	// Scaling at the reference width is the identity.
	assert.InEpsilon(t, 1.0, scale.Factor(cfg.ReferenceWidth, cfg), 1e-12)

	assert.InDelta(t, 375.0/393.0, scale.Factor(375, cfg), 1e-12)
	assert.InDelta(t, 0.9542, scale.Factor(375, cfg), 1e-4)
	assert.Greater(t, scale.Factor(768, cfg), 1.0)
}

func TestHeightFactor(t *testing.T) {
	t.Parallel()

	cfg := scale.DefaultConfig()

	assert.InDelta(t, 812.0/(393.0*1.78), scale.HeightFactor(812, cfg), 1e-12)
}

func TestSize(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		axis scale.Axis
		base float64
		vp   scale.Viewport
		cfg  scale.Config
		want float64
	}{
		"width axis on mobile": {
			cfg:  scale.DefaultConfig(),
			vp:   scale.Viewport{Width: 375, Height: 812},
			base: 100, axis: scale.AxisWidth,
			want: 100 * (375.0 / 393.0),
		},
		"font axis uses width factor": {
			cfg:  scale.DefaultConfig(),
			vp:   scale.Viewport{Width: 375, Height: 812},
			base: 16, axis: scale.AxisFont,
			want: 16 * (375.0 / 393.0),
		},
		"general axis uses width factor": {
			cfg:  scale.DefaultConfig(),
			vp:   scale.Viewport{Width: 375, Height: 812},
			base: 8, axis: scale.AxisGeneral,
			want: 8 * (375.0 / 393.0),
		},
		"height axis uses approximated reference height": {
			cfg:  scale.DefaultConfig(),
			vp:   scale.Viewport{Width: 375, Height: 812},
			base: 50, axis: scale.AxisHeight,
			want: 50 * (812.0 / (393.0 * 1.78)),
		},
		"desktop without desktop scaling returns base": {
			cfg:  scale.DefaultConfig(),
			vp:   scale.Viewport{Width: 1920, Height: 1080},
			base: 100, axis: scale.AxisWidth,
			want: 100,
		},
		"desktop height axis without desktop scaling returns base": {
			cfg:  scale.DefaultConfig(),
			vp:   scale.Viewport{Width: 1920, Height: 1080},
			base: 50, axis: scale.AxisHeight,
			want: 50,
		},
		"desktop with desktop scaling applies factor": {
			cfg: scale.Config{
				ReferenceWidth:   393,
				MobileBreakpoint: 640,
				TabletBreakpoint: 1024,
				ScaleOnDesktop:   true,
			},
			vp:   scale.Viewport{Width: 1920, Height: 1080},
			base: 100, axis: scale.AxisWidth,
			want: 100 * (1920.0 / 393.0),
		},
		"tablet scales": {
			cfg:  scale.DefaultConfig(),
			vp:   scale.Viewport{Width: 768, Height: 1024},
			base: 100, axis: scale.AxisWidth,
			want: 100 * (768.0 / 393.0),
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := scale.Size(tc.base, tc.axis, tc.cfg, tc.vp)

			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestSize_ConcreteScenario(t *testing.T) {
	t.Parallel()

	cfg := scale.DefaultConfig()
	vp := scale.Viewport{Width: 375, Height: 812}

	assert.Equal(t, scale.TierMobile, scale.Classify(vp.Width, cfg))
	assert.InDelta(t, 95.4, scale.Size(100, scale.AxisWidth, cfg, vp), 0.05)
}

func TestSizeClamped(t *testing.T) {
	t.Parallel()

	cfg := scale.DefaultConfig()

	tcs := map[string]struct {
		axis     scale.Axis
		base     float64
		minSize  float64
		maxSize  float64
		vp       scale.Viewport
		want     float64
		inBounds bool
	}{
		"within bounds passes through": {
			vp:   scale.Viewport{Width: 375, Height: 812},
			base: 100, axis: scale.AxisWidth, minSize: 90, maxSize: 110,
			want: 100 * (375.0 / 393.0), inBounds: true,
		},
		"clamped to min": {
			vp:   scale.Viewport{Width: 320, Height: 568},
			base: 100, axis: scale.AxisWidth, minSize: 90, maxSize: 110,
			want: 90, inBounds: true,
		},
		"clamped to max": {
			vp:   scale.Viewport{Width: 768, Height: 1024},
			base: 100, axis: scale.AxisWidth, minSize: 90, maxSize: 110,
			want: 110, inBounds: true,
		},
		"desktop short-circuits before clamp": {
			// Even with bounds that exclude the base, a non-scaling
			// desktop returns the base exactly.
			vp:   scale.Viewport{Width: 1920, Height: 1080},
			base: 100, axis: scale.AxisWidth, minSize: 90, maxSize: 95,
			want: 100,
		},
		"inverted bounds return the unclamped value": {
			vp:   scale.Viewport{Width: 768, Height: 1024},
			base: 100, axis: scale.AxisWidth, minSize: 110, maxSize: 90,
			want: 100 * (768.0 / 393.0),
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := scale.SizeClamped(tc.base, tc.axis, cfg, tc.vp, tc.minSize, tc.maxSize)

			assert.InDelta(t, tc.want, got, 1e-9)
			if tc.inBounds {
				assert.GreaterOrEqual(t, got, tc.minSize)
				assert.LessOrEqual(t, got, tc.maxSize)
			}
		})
	}
}

func TestSizeClamped_DesktopExact(t *testing.T) {
	t.Parallel()

	cfg := scale.DefaultConfig()
	vp := scale.Viewport{Width: 1920, Height: 1080}

	require.Equal(t, scale.TierDesktop, scale.Classify(vp.Width, cfg))
	assert.InDelta(t, 100.0, scale.Size(100, scale.AxisWidth, cfg, vp), 0)
	assert.InDelta(t, 100.0, scale.SizeClamped(100, scale.AxisWidth, cfg, vp, 90, 110), 0)
}

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 5.0, scale.Clamp(3, 5, 10), 0)
	assert.InDelta(t, 10.0, scale.Clamp(12, 5, 10), 0)
	assert.InDelta(t, 7.0, scale.Clamp(7, 5, 10), 0)
	assert.InDelta(t, 7.0, scale.Clamp(7, 10, 5), 0) // Inverted bounds are ignored.
}

func TestSizeByTier(t *testing.T) {
	t.Parallel()

	cfg := scale.DefaultConfig()

	tcs := map[string]struct {
		tablet  *float64
		desktop *float64
		mobile  float64
		vp      scale.Viewport
		want    float64
	}{
		"mobile scales within ten percent": {
			vp:     scale.Viewport{Width: 375, Height: 812},
			mobile: 100,
			want:   100 * (375.0 / 393.0),
		},
		"mobile clamps to ninety percent on small screens": {
			vp:     scale.Viewport{Width: 320, Height: 568},
			mobile: 100,
			want:   90,
		},
		"tablet default is one point five times": {
			vp:     scale.Viewport{Width: 768, Height: 1024},
			mobile: 100,
			want:   150,
		},
		"tablet override wins": {
			vp:     scale.Viewport{Width: 768, Height: 1024},
			mobile: 100, tablet: ptr(140),
			want: 140,
		},
		"desktop default is double": {
			vp:     scale.Viewport{Width: 1920, Height: 1080},
			mobile: 100,
			want:   200,
		},
		"desktop override wins": {
			vp:     scale.Viewport{Width: 1920, Height: 1080},
			mobile: 100, desktop: ptr(180),
			want: 180,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := scale.SizeByTier(tc.mobile, tc.tablet, tc.desktop, cfg, tc.vp)

			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestParseAxis(t *testing.T) {
	t.Parallel()

	for _, name := range scale.AllAxes {
		axis, err := scale.ParseAxis(name)
		require.NoError(t, err)
		assert.Equal(t, name, axis.String())
	}

	_, err := scale.ParseAxis("diagonal")
	require.ErrorIs(t, err, scale.ErrUnknownAxis)
}

func TestScaler(t *testing.T) {
	t.Parallel()

	cfg := scale.DefaultConfig()
	s := scale.NewScaler(cfg, scale.Viewport{Width: 375, Height: 812})

	assert.Equal(t, scale.TierMobile, s.Tier())
	assert.InDelta(t, 375.0/393.0, s.Factor(), 1e-12)
	assert.InDelta(t, 812.0/(393.0*1.78), s.HeightFactor(), 1e-12)
	assert.InDelta(t, 100*(375.0/393.0), s.Size(100, scale.AxisWidth), 1e-9)
	assert.InDelta(t, 100*(375.0/393.0), s.SizeClamped(100, scale.AxisWidth, 90, 110), 1e-9)
	assert.InDelta(t, 100*(375.0/393.0), s.SizeByTier(100, nil, nil), 1e-9)
	assert.InDelta(t, scale.Text.Base.Resolve(cfg, s.Viewport), s.Token(scale.Text.Base), 1e-12)
}
