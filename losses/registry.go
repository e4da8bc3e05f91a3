// SPDX-License-Identifier: MIT

package losses

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/segloss/tensor"
	"github.com/samber/lo"
)

// Registered names, matching the identifiers training configs use.
const (
	NameIoUScore           = "iou_score"
	NameJaccardScore       = "jaccard_score"
	NameJaccardLoss        = "jaccard_loss"
	NameBinaryCrossEntropy = "binary_crossentropy"
	NameBCEJaccardLoss     = "bce_jaccard_loss"
)

// Loss is a score or loss bound to a fixed option set.
type Loss interface {
	// Name returns the registered identifier.
	Name() string
	// Compute evaluates the scalar for a (gt, pr) pair.
	Compute(gt, pr *tensor.Dense) (float64, error)
	// Gradient returns the derivative of Compute with respect to pr.
	Gradient(gt, pr *tensor.Dense) (*tensor.Dense, error)
}

type computeFunc func(gt, pr *tensor.Dense, o Options) (float64, error)

type gradientFunc func(gt, pr *tensor.Dense, o Options) (*tensor.Dense, error)

type entry struct {
	compute  computeFunc
	gradient gradientFunc
	op       string // error tag for Compute
	gradOp   string // error tag for Gradient
}

// registry is read-only after package initialization.
var registry = map[string]entry{
	NameIoUScore:           {iouScore, iouScoreGrad, opIoUScore, opIoUScoreGrad},
	NameJaccardScore:       {iouScore, iouScoreGrad, opIoUScore, opIoUScoreGrad},
	NameJaccardLoss:        {jaccardLoss, jaccardLossGrad, opJaccardLoss, opJaccardGrad},
	NameBinaryCrossEntropy: {binaryCrossEntropy, binaryCrossEntropyGrad, opBCE, opBCEGrad},
	NameBCEJaccardLoss:     {bceJaccardLoss, bceJaccardLossGrad, opBCEJaccardLoss, opBCEJaccardGrad},
}

// boundLoss implements Loss for a registry entry and resolved options.
type boundLoss struct {
	name string
	e    entry
	o    Options
}

var _ Loss = (*boundLoss)(nil)

func (b *boundLoss) Name() string { return b.name }

func (b *boundLoss) Compute(gt, pr *tensor.Dense) (float64, error) {
	v, err := b.e.compute(gt, pr, b.o)
	if err != nil {
		return 0, lossErrorf(b.e.op, err)
	}

	return v, nil
}

func (b *boundLoss) Gradient(gt, pr *tensor.Dense) (*tensor.Dense, error) {
	g, err := b.e.gradient(gt, pr, b.o)
	if err != nil {
		return nil, lossErrorf(b.e.gradOp, err)
	}

	return g, nil
}

// New resolves a registered name and binds it to opts.
// Option compatibility is checked on each call, exactly as the plain
// functions do, so New("jaccard_loss", WithThreshold(0.5)) succeeds but every
// Compute fails with ErrUnsupportedOption.
//
// Errors: ErrUnknownLoss.
func New(name string, opts ...Option) (Loss, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("New(%q): %w", name, ErrUnknownLoss)
	}

	return &boundLoss{name: name, e: e, o: gatherOptions(opts...)}, nil
}

// Lookup resolves a registered name with default options.
func Lookup(name string) (Loss, error) {
	return New(name)
}

// Names lists every registered identifier in sorted order.
func Names() []string {
	names := lo.Keys(registry)
	slices.Sort(names)

	return names
}
