// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/katalvlaran/lvnet/matrix"
)

// Network is a fully connected feedforward network without biases.
//
// Invariants:
//   - len(weights) == NumLayers()-1 ≥ 1; weights[l-1] belongs to layer l.
//   - weights[l-1] has shape NodeCount(l-1) × NodeCount(l).
//   - numInputs == weights[0].Rows().
//   - activations is nil or holds NumLayers() matrices from the last
//     training-mode forward pass (activations[0] is a private input copy).
type Network struct {
	numInputs   int
	weights     []*matrix.Dense
	activations []*matrix.Dense
}

// New allocates a network with zero-filled weights for the given node counts.
//
// Errors: ErrInvalidLayout when fewer than two layers are given or any node
// count is not positive.
func New(layout []int) (*Network, error) {
	if err := validateLayout(layout); err != nil {
		return nil, fmt.Errorf("%s(%v): %w", opNew, layout, err)
	}

	weights := make([]*matrix.Dense, len(layout)-1)
	for l := 1; l < len(layout); l++ {
		w, err := matrix.NewDense(layout[l-1], layout[l])
		if err != nil {
			return nil, networkErrorf(opNew, err)
		}
		weights[l-1] = w
	}

	return &Network{numInputs: layout[0], weights: weights}, nil
}

// NewFromLayout parses a descriptor like "2, 3, 1" and calls New.
func NewFromLayout(s string) (*Network, error) {
	layout, err := ParseLayout(s)
	if err != nil {
		return nil, err
	}

	return New(layout)
}

// FromWeights builds a network around copies of the given weight matrices.
// Matrix l-1 is layer l; consecutive matrices must chain, that is
// weights[l].Rows() == weights[l-1].Cols().
//
// Errors: ErrInvalidLayout on an empty slice, a nil matrix, or a broken chain.
func FromWeights(weights []*matrix.Dense) (*Network, error) {
	if len(weights) == 0 {
		return nil, networkErrorf(opFromWeights, ErrInvalidLayout)
	}

	owned := make([]*matrix.Dense, len(weights))
	for i, w := range weights {
		if w == nil {
			return nil, fmt.Errorf("%s: layer %d: nil weights: %w", opFromWeights, i+1, ErrInvalidLayout)
		}
		if i > 0 && w.Rows() != weights[i-1].Cols() {
			return nil, fmt.Errorf("%s: layer %d has %d rows, previous layer has %d nodes: %w",
				opFromWeights, i+1, w.Rows(), weights[i-1].Cols(), ErrInvalidLayout)
		}
		owned[i] = w.CloneDense()
	}

	return &Network{numInputs: owned[0].Rows(), weights: owned}, nil
}

// NumLayers returns L, the input layer included.
func (n *Network) NumLayers() int { return len(n.weights) + 1 }

// NumInputs returns the node count of layer 0.
func (n *Network) NumInputs() int { return n.numInputs }

// NumOutputs returns the node count of the last layer.
func (n *Network) NumOutputs() int { return n.weights[len(n.weights)-1].Cols() }

// Layout returns the node count of every layer.
func (n *Network) Layout() []int {
	layout := make([]int, 0, n.NumLayers())
	layout = append(layout, n.numInputs)
	for _, w := range n.weights {
		layout = append(layout, w.Cols())
	}

	return layout
}

// NodeCount returns the number of nodes in layer.
//
// Errors: ErrLayerIndex when layer is outside [0, NumLayers()-1].
func (n *Network) NodeCount(layer int) (int, error) {
	if layer < 0 || layer >= n.NumLayers() {
		return 0, fmt.Errorf("NodeCount(%d): %w", layer, ErrLayerIndex)
	}
	if layer == 0 {
		return n.numInputs, nil
	}

	return n.weights[layer-1].Cols(), nil
}

// weightIndex maps a public layer index in [1, L-1] to its slot in weights.
func (n *Network) weightIndex(op string, layer int) (int, error) {
	if layer < 1 || layer >= n.NumLayers() {
		return 0, fmt.Errorf("%s(%d): %w", op, layer, ErrLayerIndex)
	}

	return layer - 1, nil
}

// Weights returns a copy of the weight matrix owned by layer (1 ≤ layer < L).
func (n *Network) Weights(layer int) (*matrix.Dense, error) {
	idx, err := n.weightIndex("Weights", layer)
	if err != nil {
		return nil, err
	}

	return n.weights[idx].CloneDense(), nil
}

// SetWeights overwrites the weights of layer with values in row-major order.
//
// Errors: ErrLayerIndex, matrix.ErrValueCount.
func (n *Network) SetWeights(layer int, values []float64) error {
	idx, err := n.weightIndex("SetWeights", layer)
	if err != nil {
		return err
	}
	if err = n.weights[idx].Fill(values); err != nil {
		return fmt.Errorf("SetWeights(%d): %w", layer, err)
	}

	return nil
}

// Clone returns a deep copy of the weights. The activation cache is not copied.
func (n *Network) Clone() *Network {
	weights := make([]*matrix.Dense, len(n.weights))
	for i, w := range n.weights {
		weights[i] = w.CloneDense()
	}

	return &Network{numInputs: n.numInputs, weights: weights}
}

// String summarizes the layout, e.g. "Network(2, 3, 1)".
func (n *Network) String() string {
	return "Network(" + FormatLayout(n.Layout()) + ")"
}
