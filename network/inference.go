// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/katalvlaran/lvnet/matrix"
)

const (
	opInfer            = "Infer"
	opInferValues      = "InferValues"
	opInferForTraining = "InferForTraining"
)

// checkInputs verifies that inputs is non-nil and has NumInputs() columns.
func (n *Network) checkInputs(op string, inputs matrix.Matrix) error {
	if err := matrix.ValidateNotNil(inputs); err != nil {
		return networkErrorf(op, err)
	}
	if inputs.Cols() != n.numInputs {
		return fmt.Errorf("%s: got %d columns, want %d: %w", op, inputs.Cols(), n.numInputs, ErrInputShape)
	}

	return nil
}

// Infer runs a forward pass, one example per row of inputs, and returns the
// output layer activations (inputs.Rows() × NumOutputs()). Neither inputs nor
// the activation cache are touched.
//
// Errors: ErrInputShape, matrix.ErrNilMatrix.
func (n *Network) Infer(inputs matrix.Matrix) (*matrix.Dense, error) {
	if err := n.checkInputs(opInfer, inputs); err != nil {
		return nil, err
	}

	return n.forward(opInfer, inputs, nil)
}

// InferValues runs a single example given as NumInputs() values.
func (n *Network) InferValues(values []float64) (*matrix.Dense, error) {
	if len(values) != n.numInputs {
		return nil, fmt.Errorf("%s: got %d values, want %d: %w", opInferValues, len(values), n.numInputs, ErrInputShape)
	}
	in, err := matrix.NewDenseFrom(1, n.numInputs, values)
	if err != nil {
		return nil, networkErrorf(opInferValues, err)
	}

	return n.forward(opInferValues, in, nil)
}

// InferForTraining is Infer that also records every layer's activations for
// the backward pass. The previous cache is discarded first and activation 0
// is a private copy of inputs.
func (n *Network) InferForTraining(inputs matrix.Matrix) (*matrix.Dense, error) {
	if err := n.checkInputs(opInferForTraining, inputs); err != nil {
		return nil, err
	}
	n.activations = nil

	in, err := matrix.CopyDense(inputs)
	if err != nil {
		return nil, networkErrorf(opInferForTraining, err)
	}
	cache := make([]*matrix.Dense, 1, n.NumLayers())
	cache[0] = in

	out, err := n.forward(opInferForTraining, in, &cache)
	if err != nil {
		return nil, err
	}
	n.activations = cache

	return out, nil
}

// forward computes activation[l] = Sigmoid(activation[l-1] · W[l]) for every
// layer. When cache is non-nil each activation is appended to it.
func (n *Network) forward(op string, inputs matrix.Matrix, cache *[]*matrix.Dense) (*matrix.Dense, error) {
	var (
		current matrix.Matrix = inputs
		out     *matrix.Dense
		err     error
	)
	for l, w := range n.weights {
		out, err = matrix.DotProductThenApply(current, w, Sigmoid)
		if err != nil {
			return nil, fmt.Errorf("%s: layer %d: %w", op, l+1, err)
		}
		if cache != nil {
			*cache = append(*cache, out)
		}
		current = out
	}

	return out, nil
}

// Activations returns copies of the cached activations, index 0 being the
// inputs. It returns nil before any training-mode pass.
func (n *Network) Activations() []*matrix.Dense {
	if n.activations == nil {
		return nil
	}
	out := make([]*matrix.Dense, len(n.activations))
	for i, a := range n.activations {
		out[i] = a.CloneDense()
	}

	return out
}

// ClearActivations drops the activation cache.
func (n *Network) ClearActivations() { n.activations = nil }
