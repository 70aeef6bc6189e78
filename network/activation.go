// SPDX-License-Identifier: MIT

package network

import "math"

// Sigmoid is the logistic activation σ(x) = 1 / (1 + e^-x).
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// SigmoidDerivative returns s·(1−s) for an already-activated value s.
// The second argument is unused; the two-argument form lets it plug into
// matrix.CombineWithTransforms next to CostDerivative.
func SigmoidDerivative(s, _ float64) float64 {
	return s * (1 - s)
}

// Cost is the squared error (target − predicted)² of one output unit.
func Cost(predicted, target float64) float64 {
	d := target - predicted
	return d * d
}

// CostDerivative is 2·(target − predicted). Its sign already points toward
// lower cost, so Train adds gradients scaled by a positive learning rate.
func CostDerivative(predicted, target float64) float64 {
	return 2 * (target - predicted)
}
