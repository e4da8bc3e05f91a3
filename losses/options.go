// SPDX-License-Identifier: MIT

// Package losses: functional configuration for scores and losses.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, defaults are constants.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - One Option type serves every entry point. Operations that cannot honour
//     an option reject it with ErrUnsupportedOption instead of ignoring it:
//     a threshold on a loss, or class weights on BCEJaccardLoss.
//   - Class weights default to "scalar 1.0", represented by a nil slice.
package losses

import (
	"math"
	"slices"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSmooth is added to numerator and denominator of the IoU ratio
	// so two empty masks score 1 instead of 0/0.
	DefaultSmooth = 1.0

	// DefaultPerImage averages the score over images first (reduce over H, W),
	// instead of pooling the whole batch (reduce over B, H, W).
	DefaultPerImage = true

	// DefaultBCEWeight scales the cross-entropy term of BCEJaccardLoss.
	DefaultBCEWeight = 1.0

	// DefaultEpsilon clips predictions into [ε, 1-ε] before taking logs
	// in BinaryCrossEntropy. Matches the Keras backend epsilon.
	DefaultEpsilon = 1e-7
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSmoothInvalid      = "losses: WithSmooth: smooth must be finite, non-negative"
	panicThresholdInvalid   = "losses: WithThreshold: threshold must not be NaN"
	panicClassWeightInvalid = "losses: WithClassWeights: weights must be finite, non-negative"
	panicBCEWeightInvalid   = "losses: WithBCEWeight: weight must be finite"
	panicEpsilonInvalid     = "losses: WithEpsilon: eps must be in (0, 0.5)"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; read them through the accessor methods.
type Options struct {
	classWeights []float64 // nil ⇒ scalar 1.0 for every class
	smooth       float64   // DefaultSmooth
	perImage     bool      // DefaultPerImage
	threshold    float64   // meaningful only when hasThreshold
	hasThreshold bool      // binarize pr before scoring
	bceWeight    float64   // DefaultBCEWeight
	eps          float64   // DefaultEpsilon
}

// WithClassWeights sets one weight per channel; len(weights) must equal C at
// call time or the operation fails with tensor.ErrDimensionMismatch.
// Calling it with no arguments restores the scalar default 1.0.
// The slice is copied.
func WithClassWeights(weights ...float64) Option {
	for _, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			panic(panicClassWeightInvalid)
		}
	}
	var cw []float64
	if len(weights) > 0 {
		cw = slices.Clone(weights)
	}

	return func(o *Options) { o.classWeights = cw }
}

// WithSmooth sets the additive smoothing constant.
// smooth = 0 is accepted but two empty masks then yield NaN (0/0).
func WithSmooth(smooth float64) Option {
	if math.IsNaN(smooth) || math.IsInf(smooth, 0) || smooth < 0 {
		panic(panicSmoothInvalid)
	}

	return func(o *Options) { o.smooth = smooth }
}

// WithPerImage selects the aggregation mode: true reduces over (H, W) and
// averages over the batch; false reduces over (B, H, W) jointly.
func WithPerImage(perImage bool) Option {
	return func(o *Options) { o.perImage = perImage }
}

// WithThreshold binarizes predictions before scoring: pr > t ⇒ 1, else 0.
// Only IoUScore/JaccardScore accept it.
func WithThreshold(t float64) Option {
	if math.IsNaN(t) {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) {
		o.threshold = t
		o.hasThreshold = true
	}
}

// WithoutThreshold clears a previously set threshold.
func WithoutThreshold() Option {
	return func(o *Options) {
		o.threshold = 0
		o.hasThreshold = false
	}
}

// WithBCEWeight scales the cross-entropy term of BCEJaccardLoss.
func WithBCEWeight(w float64) Option {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		panic(panicBCEWeightInvalid)
	}

	return func(o *Options) { o.bceWeight = w }
}

// WithEpsilon sets the clip constant used by BinaryCrossEntropy.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || eps <= 0 || eps >= 0.5 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// ---------- Accessors ----------

// ClassWeights returns a copy of the per-class weights, or nil for scalar 1.0.
func (o Options) ClassWeights() []float64 { return slices.Clone(o.classWeights) }

// Smooth returns the smoothing constant.
func (o Options) Smooth() float64 { return o.smooth }

// PerImage reports the aggregation mode.
func (o Options) PerImage() bool { return o.perImage }

// Threshold returns the binarization threshold and whether one is set.
func (o Options) Threshold() (float64, bool) { return o.threshold, o.hasThreshold }

// BCEWeight returns the cross-entropy weight.
func (o Options) BCEWeight() float64 { return o.bceWeight }

// Epsilon returns the BCE clip constant.
func (o Options) Epsilon() float64 { return o.eps }

// --------------------------- Option Resolution ---------------------------

// NewOptions resolves option setters against the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		smooth:    DefaultSmooth,
		perImage:  DefaultPerImage,
		bceWeight: DefaultBCEWeight,
		eps:       DefaultEpsilon,
	}
}

// gatherOptions applies user-provided setters on top of defaults in order.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
