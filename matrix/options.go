// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the generic Matrix.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options only tune Equal and Set. The snap-to-integer window of Multiply
//     and the exact identity check of Inverse are fixed and not configurable.
//   - Options are captured at construction and carried by Clone.
package matrix

import (
	"math"

	"github.com/katalvlaran/lvmath/compute"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the per-entry tolerance used by Equal.
	DefaultEpsilon = compute.Epsilon

	// DefaultValidateNaNInf toggles finite-value validation in Set and the
	// flat-data constructors.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps            float32 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// Epsilon returns the configured equality tolerance.
func (o Options) Epsilon() float32 { return o.eps }

// ValidateNaNInf reports whether non-finite values are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithEpsilon sets the per-entry tolerance used by Equal.
// Implementation:
//   - Stage 1: validate eps is finite and >= 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - WithEpsilon(0) turns Equal into exact comparison.
func WithEpsilon(eps float32) Option {
	e := float64(eps)
	if math.IsNaN(e) || math.IsInf(e, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets Set and the constructors store NaN and ±Inf.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts on top of the defaults.
// Mostly useful to inspect the effective configuration.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user setters on top of defaults (last writer wins).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}
