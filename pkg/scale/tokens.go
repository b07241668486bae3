package scale

// Token is a named (base, min, max) triple for a common UI size role.
// Resolving a token scales its base on the general axis and clamps the result
// into [Min, Max]; a non-scaling desktop viewport returns the literal base
// directly, without entering the clamp path.
type Token struct {
	Name string
	Base float64
	Min  float64
	Max  float64
}

// Resolve computes the token's value for the given config and viewport.
func (t Token) Resolve(c Config, vp Viewport) float64 {
	if Classify(vp.Width, c) == TierDesktop && !c.ScaleOnDesktop {
		return t.Base
	}

	return SizeClamped(t.Base, AxisGeneral, c, vp, t.Min, t.Max)
}

// Spacing tokens, smallest to largest.
var Spacing = struct {
	XS Token
	SM Token
	MD Token
	LG Token
	XL Token
}{
	XS: Token{Name: "spacing.xs", Base: 4, Min: 4, Max: 6},
	SM: Token{Name: "spacing.sm", Base: 8, Min: 8, Max: 12},
	MD: Token{Name: "spacing.md", Base: 16, Min: 14, Max: 20},
	LG: Token{Name: "spacing.lg", Base: 24, Min: 20, Max: 32},
	XL: Token{Name: "spacing.xl", Base: 32, Min: 28, Max: 48},
}

// Text size tokens, smallest to largest.
var Text = struct {
	XS   Token
	SM   Token
	Base Token
	LG   Token
	XL   Token
	H1   Token
}{
	XS:   Token{Name: "text.xs", Base: 12, Min: 11, Max: 13},
	SM:   Token{Name: "text.sm", Base: 14, Min: 13, Max: 15},
	Base: Token{Name: "text.base", Base: 16, Min: 15, Max: 17},
	LG:   Token{Name: "text.lg", Base: 18, Min: 17, Max: 20},
	XL:   Token{Name: "text.xl", Base: 20, Min: 19, Max: 24},
	H1:   Token{Name: "text.h1", Base: 28, Min: 24, Max: 32},
}

// AllTokens returns every predefined token in display order.
func AllTokens() []Token {
	return []Token{
		Spacing.XS, Spacing.SM, Spacing.MD, Spacing.LG, Spacing.XL,
		Text.XS, Text.SM, Text.Base, Text.LG, Text.XL, Text.H1,
	}
}

// TokenByName looks up a predefined token by its full name, e.g. "spacing.md"
// or "text.base".
func TokenByName(name string) (Token, bool) {
	for _, t := range AllTokens() {
		if t.Name == name {
			return t, true
		}
	}

	return Token{}, false
}
