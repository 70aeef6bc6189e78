// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

const opRandomize = "RandomizeWeights"

// RandomizeWeights sets every weight to rng.Float64()*(max-min) + min, layer by
// layer in row-major order, so a fixed seed yields a fixed network.
//
// Errors: ErrNilRand, ErrInvalidRange (min > max or a non-finite bound).
func (n *Network) RandomizeWeights(rng *rand.Rand, min, max float64) error {
	if rng == nil {
		return networkErrorf(opRandomize, ErrNilRand)
	}
	if !isFinite(min) || !isFinite(max) || min > max {
		return fmt.Errorf("%s(%g, %g): %w", opRandomize, min, max, ErrInvalidRange)
	}

	span := max - min
	for _, w := range n.weights {
		w.Apply(func(_, _ int, _ float64) float64 {
			return rng.Float64()*span + min
		})
	}

	return nil
}

// RandomizeWeightsNow seeds a fresh source from the wall clock in whole
// seconds. Two calls within the same second produce identical weights; use
// RandomizeWeights with an explicit source when that matters.
func (n *Network) RandomizeWeightsNow(min, max float64) error {
	return n.RandomizeWeights(rand.New(rand.NewSource(time.Now().Unix())), min, max)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
