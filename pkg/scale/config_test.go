package scale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewscale/viewscale/pkg/scale"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := scale.DefaultConfig()

	assert.InEpsilon(t, 393.0, cfg.ReferenceWidth, 1e-9)
	assert.InEpsilon(t, 640.0, cfg.MobileBreakpoint, 1e-9)
	assert.InEpsilon(t, 1024.0, cfg.TabletBreakpoint, 1e-9)
	assert.False(t, cfg.ScaleOnDesktop)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Equality(t *testing.T) {
	t.Parallel()

	a := scale.Config{ReferenceWidth: 400, MobileBreakpoint: 600, TabletBreakpoint: 900}
	b := scale.Config{ReferenceWidth: 400, MobileBreakpoint: 600, TabletBreakpoint: 900}

	// Configs are plain values; identical fields are interchangeable.
	assert.Equal(t, a, b)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err error
		cfg scale.Config
	}{
		"valid": {
			cfg: scale.Config{ReferenceWidth: 393, MobileBreakpoint: 640, TabletBreakpoint: 1024},
		},
		"zero reference width": {
			cfg: scale.Config{MobileBreakpoint: 640, TabletBreakpoint: 1024},
			err: scale.ErrInvalidReferenceWidth,
		},
		"negative reference width": {
			cfg: scale.Config{ReferenceWidth: -1, MobileBreakpoint: 640, TabletBreakpoint: 1024},
			err: scale.ErrInvalidReferenceWidth,
		},
		"zero mobile breakpoint": {
			cfg: scale.Config{ReferenceWidth: 393, TabletBreakpoint: 1024},
			err: scale.ErrInvalidBreakpoints,
		},
		"inverted breakpoints": {
			cfg: scale.Config{ReferenceWidth: 393, MobileBreakpoint: 1024, TabletBreakpoint: 640},
			err: scale.ErrInvalidBreakpoints,
		},
		"equal breakpoints": {
			cfg: scale.Config{ReferenceWidth: 393, MobileBreakpoint: 800, TabletBreakpoint: 800},
			err: scale.ErrInvalidBreakpoints,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := tc.cfg.Validate()

			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
