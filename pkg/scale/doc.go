// Package scale implements device-aware linear scaling for UI dimension
// values. Base sizes are authored against a single reference viewport width;
// at render time the current viewport is classified into a device tier and a
// scale factor is applied, optionally clamped, to produce the final value.
//
// Everything in this package is a pure function over a [Config] and a
// [Viewport]. Process-wide state lives in the engine package.
package scale
