// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/katalvlaran/lvnet/matrix"
)

const opTrain = "Train"

// Train runs one full-batch gradient descent step and returns the mean squared
// error of the network's predictions before the update.
//
// Algorithm:
//  1. Forward pass with the activation cache (InferForTraining).
//  2. loss = mean over all outputs of Cost(predicted, target).
//  3. For l = L-1 down to 1:
//     output layer: delta = CostDerivative(pred, target) · SigmoidDerivative(pred);
//     interior:     delta[e][j] = Σ_k prev[e][k] · W[l+1][j][k] · a[l][e][j](1 − a[l][e][j]);
//     gradient[l][i][j] = Σ_e delta[e][j] · a[l-1][e][i] / numExamples.
//  4. W[l] += gradient[l] · learningRate for every layer.
//
// Summation runs over ascending k and ascending e, so results are reproducible
// bit for bit. On a validation error weights and cache are left untouched.
//
// Errors: ErrInputShape, ErrTargetShape, matrix.ErrNilMatrix.
func (n *Network) Train(inputs, targets matrix.Matrix, learningRate float64) (float64, error) {
	if err := n.checkInputs(opTrain, inputs); err != nil {
		return 0, err
	}
	if err := matrix.ValidateNotNil(targets); err != nil {
		return 0, networkErrorf(opTrain, err)
	}
	if targets.Rows() != inputs.Rows() || targets.Cols() != n.NumOutputs() {
		return 0, fmt.Errorf("%s: targets %dx%d, want %dx%d: %w", opTrain,
			targets.Rows(), targets.Cols(), inputs.Rows(), n.NumOutputs(), ErrTargetShape)
	}

	predicted, err := n.InferForTraining(inputs)
	if err != nil {
		return 0, err
	}
	loss, err := matrix.AverageOfPairwiseFunction(predicted, targets, Cost)
	if err != nil {
		return 0, networkErrorf(opTrain, err)
	}

	gradients, err := n.backward(predicted, targets)
	if err != nil {
		return 0, err
	}
	for i, g := range gradients {
		cols := n.weights[i].Cols()
		n.weights[i].Apply(func(r, c int, v float64) float64 {
			return v + g[r*cols+c]*learningRate
		})
	}

	return loss, nil
}

// backward returns one flat row-major gradient per weight matrix, computed
// from the activation cache filled by the preceding forward pass.
func (n *Network) backward(predicted *matrix.Dense, targets matrix.Matrix) ([][]float64, error) {
	numExamples := predicted.Rows()
	gradients := make([][]float64, len(n.weights))

	var prev []float64 // delta of layer l+1, numExamples × nodes[l+1]
	for l := len(n.weights); l >= 1; l-- {
		act := n.activations[l].RawData()
		width := n.activations[l].Cols()

		var delta []float64
		if l == len(n.weights) {
			d, err := matrix.CombineWithTransforms(predicted, targets, CostDerivative, SigmoidDerivative)
			if err != nil {
				return nil, networkErrorf(opTrain, err)
			}
			delta = d.RawData()
		} else {
			delta = hiddenDelta(prev, n.weights[l].RawData(), act, numExamples, width, n.weights[l].Cols())
		}

		below := n.activations[l-1].RawData()
		gradients[l-1] = layerGradient(delta, below, numExamples, n.activations[l-1].Cols(), width)
		prev = delta
	}

	return gradients, nil
}

// hiddenDelta propagates next (numExamples × nextWidth) back through w
// (width × nextWidth), scaling each term by the sigmoid derivative of act.
func hiddenDelta(next, w, act []float64, numExamples, width, nextWidth int) []float64 {
	delta := make([]float64, numExamples*width)
	for e := 0; e < numExamples; e++ {
		for j := 0; j < width; j++ {
			a := act[e*width+j]
			deriv := a * (1 - a)
			sum := matrix.ZeroSum
			for k := 0; k < nextWidth; k++ {
				sum += next[e*nextWidth+k] * w[j*nextWidth+k] * deriv
			}
			delta[e*width+j] = sum
		}
	}

	return delta
}

// layerGradient averages the outer products of below[e] and delta[e] over all
// examples; the result has shape belowWidth × width.
func layerGradient(delta, below []float64, numExamples, belowWidth, width int) []float64 {
	grad := make([]float64, belowWidth*width)
	scale := float64(numExamples)
	for i := 0; i < belowWidth; i++ {
		for j := 0; j < width; j++ {
			sum := matrix.ZeroSum
			for e := 0; e < numExamples; e++ {
				sum += delta[e*width+j] * below[e*belowWidth+i]
			}
			grad[i*width+j] = sum / scale
		}
	}

	return grad
}
