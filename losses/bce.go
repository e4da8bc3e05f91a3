// SPDX-License-Identifier: MIT

package losses

import (
	"math"

	"github.com/katalvlaran/segloss/tensor"
)

// binaryCrossEntropy is the resolved-options form of BinaryCrossEntropy.
//
// Implementation:
//   - Stage 1: validate shapes.
//   - Stage 2: p = clip(pr, ε, 1−ε) so both logs stay finite.
//   - Stage 3: mean over every element of −(y·log p + (1−y)·log(1−p)).
func binaryCrossEntropy(gt, pr *tensor.Dense, o Options) (float64, error) {
	if err := tensor.ValidateSameShape(gt, pr); err != nil {
		return 0, err
	}
	p, err := tensor.Clip(pr, o.eps, 1-o.eps)
	if err != nil {
		return 0, err
	}
	logP, err := tensor.Log(p)
	if err != nil {
		return 0, err
	}
	log1mP, err := tensor.Apply(p, func(v float64) float64 { return math.Log(1 - v) })
	if err != nil {
		return 0, err
	}

	// 1 − y
	notY, err := tensor.Apply(gt, func(v float64) float64 { return 1 - v })
	if err != nil {
		return 0, err
	}
	// y·log p
	pos, err := tensor.Mul(gt, logP)
	if err != nil {
		return 0, err
	}
	// (1−y)·log(1−p)
	neg, err := tensor.Mul(notY, log1mP)
	if err != nil {
		return 0, err
	}
	ll, err := tensor.Add(pos, neg)
	if err != nil {
		return 0, err
	}
	mean, err := tensor.Mean(ll)
	if err != nil {
		return 0, err
	}

	return -mean, nil
}

// BinaryCrossEntropy returns the element-wise binary cross-entropy between
// gt and pr averaged over all four axes:
//
//	bce = mean( −(gt·log p + (1−gt)·log(1−p)) ),  p = clip(pr, ε, 1−ε)
//
// The clip keeps the result finite when pr contains exact 0s or 1s.
// Honoured options: WithEpsilon.
//
// Errors: tensor.ErrNilTensor, tensor.ErrDimensionMismatch.
func BinaryCrossEntropy(gt, pr *tensor.Dense, opts ...Option) (float64, error) {
	bce, err := binaryCrossEntropy(gt, pr, gatherOptions(opts...))
	if err != nil {
		return 0, lossErrorf(opBCE, err)
	}

	return bce, nil
}

// checkBCEJaccard rejects options the combined loss cannot honour.
func checkBCEJaccard(o Options) error {
	if o.hasThreshold || o.classWeights != nil {
		return ErrUnsupportedOption
	}

	return nil
}

// bceJaccardLoss is the resolved-options form of BCEJaccardLoss.
func bceJaccardLoss(gt, pr *tensor.Dense, o Options) (float64, error) {
	if err := checkBCEJaccard(o); err != nil {
		return 0, err
	}
	bce, err := binaryCrossEntropy(gt, pr, o)
	if err != nil {
		return 0, err
	}
	jac, err := jaccardLoss(gt, pr, o)
	if err != nil {
		return 0, err
	}

	return o.bceWeight*bce + jac, nil
}

// BCEJaccardLoss combines pixel-wise classification error with region
// overlap error:
//
//	loss = bceWeight · BinaryCrossEntropy(gt, pr) + JaccardLoss(gt, pr)
//
// The Jaccard part always uses unit class weights. With WithBCEWeight(0) the
// result equals JaccardLoss exactly.
//
// Honoured options: WithBCEWeight, WithSmooth, WithPerImage, WithEpsilon.
// WithThreshold and WithClassWeights fail with ErrUnsupportedOption.
func BCEJaccardLoss(gt, pr *tensor.Dense, opts ...Option) (float64, error) {
	loss, err := bceJaccardLoss(gt, pr, gatherOptions(opts...))
	if err != nil {
		return 0, lossErrorf(opBCEJaccardLoss, err)
	}

	return loss, nil
}
