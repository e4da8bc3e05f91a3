// SPDX-License-Identifier: MIT

package losses_test

import (
	"testing"

	"github.com/katalvlaran/segloss/losses"
	"github.com/katalvlaran/segloss/tensor"
)

// benchmarkLoss evaluates the named loss on a random batch of shape s.
// Setup runs before the timer reset; errors stop the benchmark.
func benchmarkLoss(b *testing.B, name string, s tensor.Shape, grad bool, opts ...losses.Option) {
	gt, pr := RandomMaskPair(b, s, 1, 0.05, 0.95)
	l, err := losses.New(name, opts...)
	if err != nil {
		b.Fatalf("New(%q): %v", name, err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if grad {
			_, err = l.Gradient(gt, pr)
		} else {
			_, err = l.Compute(gt, pr)
		}
		if err != nil {
			b.Fatalf("%s failed: %v", name, err)
		}
	}
}

var (
	benchSmall = tensor.Shape{B: 4, H: 32, W: 32, C: 1}
	benchLarge = tensor.Shape{B: 8, H: 128, W: 128, C: 3}
)

func BenchmarkIoUScore_Small(b *testing.B) {
	benchmarkLoss(b, losses.NameIoUScore, benchSmall, false)
}

func BenchmarkIoUScore_Large(b *testing.B) {
	benchmarkLoss(b, losses.NameIoUScore, benchLarge, false)
}

// BenchmarkIoUScore_Threshold includes the binarization pass.
func BenchmarkIoUScore_Threshold(b *testing.B) {
	benchmarkLoss(b, losses.NameIoUScore, benchLarge, false, losses.WithThreshold(0.5))
}

func BenchmarkBCEJaccardLoss_Large(b *testing.B) {
	benchmarkLoss(b, losses.NameBCEJaccardLoss, benchLarge, false)
}

func BenchmarkBCEJaccardLossGrad_Large(b *testing.B) {
	benchmarkLoss(b, losses.NameBCEJaccardLoss, benchLarge, true)
}
