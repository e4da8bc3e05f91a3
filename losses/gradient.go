// SPDX-License-Identifier: MIT

// Package losses - analytic gradients with respect to the prediction.
//
// Every loss path is differentiable in pr; a training loop that owns its own
// backward pass can chain these gradients without re-deriving them.
//
// Derivation (one reduction group g, class c, element i in that group):
//
//	I = Σ gt·pr,  U = Σ(gt+pr) − I,  s = smooth
//	∂I/∂pr_i = gt_i,  ∂U/∂pr_i = 1 − gt_i
//	∂score_gc/∂pr_i = (gt_i·(U+s) − (I+s)·(1−gt_i)) / (U+s)²
//
// The scalar score averages groups (G = B per image, else 1) and classes, so
// each element picks up a factor w_c / (C·G).
package losses

import (
	"github.com/katalvlaran/segloss/tensor"
)

// iouScoreGrad is the resolved-options form of IoUScoreGrad.
func iouScoreGrad(gt, pr *tensor.Dense, o Options) (*tensor.Dense, error) {
	if o.hasThreshold {
		return nil, ErrUnsupportedOption
	}
	ov, err := computeOverlap(gt, pr, o)
	if err != nil {
		return nil, err
	}

	s := gt.Shape()
	groups := float64(len(ov.inter))
	scale := make([]float64, s.C) // w_c / (C·G)
	for c := range scale {
		w := 1.0
		if o.classWeights != nil {
			w = o.classWeights[c]
		}
		scale[c] = w / (float64(s.C) * groups)
	}

	y := gt.Values()
	grad := make([]float64, len(y))
	pix := s.H * s.W
	for i := range y {
		c := i % s.C
		g := 0
		if o.perImage {
			g = i / (pix * s.C)
		}
		in := ov.inter[g][c] + o.smooth
		un := ov.union[g][c] + o.smooth
		grad[i] = scale[c] * (y[i]*un - in*(1-y[i])) / (un * un)
	}

	return tensor.FromSlice(s, grad, tensor.WithNoValidateNaNInf())
}

// IoUScoreGrad returns ∂IoUScore/∂pr, a tensor shaped like pr.
// Honoured options: WithClassWeights, WithSmooth, WithPerImage.
// WithThreshold fails with ErrUnsupportedOption: the step function has a
// zero gradient almost everywhere.
func IoUScoreGrad(gt, pr *tensor.Dense, opts ...Option) (*tensor.Dense, error) {
	g, err := iouScoreGrad(gt, pr, gatherOptions(opts...))
	if err != nil {
		return nil, lossErrorf(opIoUScoreGrad, err)
	}

	return g, nil
}

// jaccardLossGrad negates the score gradient.
func jaccardLossGrad(gt, pr *tensor.Dense, o Options) (*tensor.Dense, error) {
	g, err := iouScoreGrad(gt, pr, o)
	if err != nil {
		return nil, err
	}

	return tensor.Scale(g, -1)
}

// JaccardLossGrad returns ∂JaccardLoss/∂pr = −∂IoUScore/∂pr.
func JaccardLossGrad(gt, pr *tensor.Dense, opts ...Option) (*tensor.Dense, error) {
	g, err := jaccardLossGrad(gt, pr, gatherOptions(opts...))
	if err != nil {
		return nil, lossErrorf(opJaccardGrad, err)
	}

	return g, nil
}

// binaryCrossEntropyGrad returns (p − y) / (p·(1−p)·N) inside the clip range
// and 0 where the clip is active.
func binaryCrossEntropyGrad(gt, pr *tensor.Dense, o Options) (*tensor.Dense, error) {
	if err := tensor.ValidateSameShape(gt, pr); err != nil {
		return nil, err
	}
	lower, upper := o.eps, 1-o.eps
	n := float64(gt.Len())
	y := gt.Values()
	p := pr.Values()
	grad := make([]float64, len(y))
	for i := range y {
		if p[i] < lower || p[i] > upper {
			continue // clipped: flat
		}
		grad[i] = (p[i] - y[i]) / (p[i] * (1 - p[i]) * n)
	}

	return tensor.FromSlice(gt.Shape(), grad, tensor.WithNoValidateNaNInf())
}

// BinaryCrossEntropyGrad returns ∂BinaryCrossEntropy/∂pr.
// Elements outside [ε, 1−ε] get a zero gradient, matching the clip.
func BinaryCrossEntropyGrad(gt, pr *tensor.Dense, opts ...Option) (*tensor.Dense, error) {
	g, err := binaryCrossEntropyGrad(gt, pr, gatherOptions(opts...))
	if err != nil {
		return nil, lossErrorf(opBCEGrad, err)
	}

	return g, nil
}

// bceJaccardLossGrad is the resolved-options form of BCEJaccardLossGrad.
func bceJaccardLossGrad(gt, pr *tensor.Dense, o Options) (*tensor.Dense, error) {
	if err := checkBCEJaccard(o); err != nil {
		return nil, err
	}
	gb, err := binaryCrossEntropyGrad(gt, pr, o)
	if err != nil {
		return nil, err
	}
	gj, err := jaccardLossGrad(gt, pr, o)
	if err != nil {
		return nil, err
	}
	gb, err = tensor.Scale(gb, o.bceWeight)
	if err != nil {
		return nil, err
	}

	return tensor.Add(gb, gj)
}

// BCEJaccardLossGrad returns bceWeight·∂BCE/∂pr + ∂JaccardLoss/∂pr.
// Option handling matches BCEJaccardLoss.
func BCEJaccardLossGrad(gt, pr *tensor.Dense, opts ...Option) (*tensor.Dense, error) {
	g, err := bceJaccardLossGrad(gt, pr, gatherOptions(opts...))
	if err != nil {
		return nil, lossErrorf(opBCEJaccardGrad, err)
	}

	return g, nil
}
