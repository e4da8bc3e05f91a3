// SPDX-License-Identifier: MIT

package losses

import (
	"fmt"

	"github.com/katalvlaran/segloss/tensor"
	"github.com/samber/lo"
)

// Operation name constants for unified error wrapping.
const (
	opIoUScore       = "IoUScore"
	opJaccardLoss    = "JaccardLoss"
	opBCE            = "BinaryCrossEntropy"
	opBCEJaccardLoss = "BCEJaccardLoss"
	opIoUScoreGrad   = "IoUScoreGrad"
	opJaccardGrad    = "JaccardLossGrad"
	opBCEGrad        = "BinaryCrossEntropyGrad"
	opBCEJaccardGrad = "BCEJaccardLossGrad"
)

// lossErrorf wraps an underlying error with the given operation tag.
func lossErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// overlap holds intersection and union per reduction group and class.
// Rows are images when scoring per image, otherwise a single pooled row.
type overlap struct {
	inter [][]float64 // [G][C] Σ gt⊙pr
	union [][]float64 // [G][C] Σ(gt+pr) - inter
}

// computeOverlap validates the operands and reduces gt⊙pr and gt+pr over the
// axes selected by o.perImage. Binarization is applied when o has a threshold.
//
// Implementation:
//   - Stage 1: gt, pr non-nil with equal shapes; class weights match C.
//   - Stage 2: optional pr > threshold mask.
//   - Stage 3: intersection = Σ gt⊙pr, union = Σ(gt+pr) − intersection.
//
// Complexity: O(n) time, O(n) scratch for the two element-wise products.
func computeOverlap(gt, pr *tensor.Dense, o Options) (overlap, error) {
	if err := tensor.ValidateSameShape(gt, pr); err != nil {
		return overlap{}, err
	}
	if o.classWeights != nil {
		if err := tensor.ValidateVecLen(o.classWeights, gt.Shape().C); err != nil {
			return overlap{}, err
		}
	}

	var err error
	if o.hasThreshold {
		if pr, err = tensor.Greater(pr, o.threshold); err != nil {
			return overlap{}, err
		}
	}

	prod, err := tensor.Mul(gt, pr)
	if err != nil {
		return overlap{}, err
	}
	total, err := tensor.Add(gt, pr)
	if err != nil {
		return overlap{}, err
	}

	inter, sums, err := reduceGroups(prod, total, o.perImage)
	if err != nil {
		return overlap{}, err
	}
	union := make([][]float64, len(inter))
	for g := range inter {
		union[g] = make([]float64, len(inter[g]))
		for c := range inter[g] {
			union[g][c] = sums[g][c] - inter[g][c]
		}
	}

	return overlap{inter: inter, union: union}, nil
}

// reduceGroups sums both tensors over (H, W) when perImage, else over (B, H, W),
// always returning [G][C] tables.
func reduceGroups(a, b *tensor.Dense, perImage bool) ([][]float64, [][]float64, error) {
	if perImage {
		ra, err := tensor.SumSpatial(a)
		if err != nil {
			return nil, nil, err
		}
		rb, err := tensor.SumSpatial(b)
		if err != nil {
			return nil, nil, err
		}
		return ra, rb, nil
	}
	ra, err := tensor.SumBatchSpatial(a)
	if err != nil {
		return nil, nil, err
	}
	rb, err := tensor.SumBatchSpatial(b)
	if err != nil {
		return nil, nil, err
	}

	return [][]float64{ra}, [][]float64{rb}, nil
}

// scores turns intersections and unions into smoothed ratios, [G][C].
func (ov overlap) scores(smooth float64) [][]float64 {
	return lo.Map(ov.inter, func(row []float64, g int) []float64 {
		return lo.Map(row, func(i float64, c int) float64 {
			return (i + smooth) / (ov.union[g][c] + smooth)
		})
	})
}

// classMeans averages a [G][C] table over its rows.
func classMeans(table [][]float64) []float64 {
	n := float64(len(table))
	out := make([]float64, len(table[0]))
	for c := range out {
		col := lo.Map(table, func(row []float64, _ int) float64 { return row[c] })
		out[c] = lo.Sum(col) / n
	}

	return out
}

// weightedClassMean multiplies per-class values by their weight (1.0 when
// weights is nil) and averages over classes.
func weightedClassMean(perClass, weights []float64) float64 {
	weighted := lo.Map(perClass, func(v float64, c int) float64 {
		if weights == nil {
			return v
		}
		return v * weights[c]
	})

	return lo.Sum(weighted) / float64(len(perClass))
}

// iouScore is the resolved-options form of IoUScore.
func iouScore(gt, pr *tensor.Dense, o Options) (float64, error) {
	ov, err := computeOverlap(gt, pr, o)
	if err != nil {
		return 0, err
	}

	return weightedClassMean(classMeans(ov.scores(o.smooth)), o.classWeights), nil
}

// IoUScore computes the (soft) Intersection over Union of gt and pr, both
// (B, H, W, C) tensors of identical shape with values conventionally in [0, 1].
//
//	score = mean_c( w_c · mean_b( (Σ gt·pr + s) / (Σ(gt+pr) − Σ gt·pr + s) ) )
//
// Per image (the default) the sums run over (H, W) and the ratio is averaged
// over the batch; WithPerImage(false) pools (B, H, W) instead. WithThreshold
// binarizes pr with a strict > first, which makes the score
// non-differentiable; continuous predictions give a soft IoU.
//
// Honoured options: WithClassWeights, WithSmooth, WithPerImage, WithThreshold.
//
// Errors:
//   - tensor.ErrNilTensor for a nil operand.
//   - tensor.ErrDimensionMismatch for mismatched shapes, or a class weight
//     count different from C.
func IoUScore(gt, pr *tensor.Dense, opts ...Option) (float64, error) {
	score, err := iouScore(gt, pr, gatherOptions(opts...))
	if err != nil {
		return 0, lossErrorf(opIoUScore, err)
	}

	return score, nil
}

// JaccardScore is IoUScore under its other common name.
var JaccardScore = IoUScore

// jaccardLoss is the resolved-options form of JaccardLoss.
func jaccardLoss(gt, pr *tensor.Dense, o Options) (float64, error) {
	if o.hasThreshold {
		return 0, ErrUnsupportedOption
	}
	score, err := iouScore(gt, pr, o)
	if err != nil {
		return 0, err
	}

	return 1 - score, nil
}

// JaccardLoss returns 1 − IoUScore(gt, pr) with the same class weights,
// smoothing and aggregation mode. It is 0 for a perfect overlap.
//
// The loss never binarizes predictions; passing WithThreshold fails with
// ErrUnsupportedOption.
func JaccardLoss(gt, pr *tensor.Dense, opts ...Option) (float64, error) {
	loss, err := jaccardLoss(gt, pr, gatherOptions(opts...))
	if err != nil {
		return 0, lossErrorf(opJaccardLoss, err)
	}

	return loss, nil
}
