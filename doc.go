// Package lvnet is a small, dependency-light feedforward neural network
// toolkit: a dense float64 matrix engine, a sigmoid network trained by
// full-batch backpropagation, and a compact binary weights format.
//
// 🚀 What is in the box?
//
//	• matrix/    row-major Dense matrices, dot products with a fused
//	              activation, element-wise combinators and reductions,
//	              gonum interop
//	• network/   layouts like "2, 3, 1", seedable weight initialization,
//	              inference, one-call training epochs
//	• persist/   little-endian weights files with atomic writes and a
//	              ".lock" marker discipline
//	• cmd/xortrain  the classic XOR demo driver
//
// ✨ Guarantees:
//
//   - Deterministic: every sum runs in a fixed order, so a fixed seed and
//     batch reproduce results bit for bit.
//   - Explicit errors: sentinel values matched with errors.Is; no panics on
//     bad input.
//   - IEEE-754 all the way: NaN and ±Inf propagate instead of being policed.
//
// Quick start:
//
//	net, _ := network.NewFromLayout("2, 3, 1")
//	_ = net.RandomizeWeights(rand.New(rand.NewSource(1)), -3, 3)
//	for epoch := 0; epoch < 100000; epoch++ {
//	    loss, _ := net.Train(inputs, targets, 1.0)
//	    ...
//	}
//	_ = persist.Write("xor.weights", net)
//
// Concurrency: a Network is not safe for concurrent use.
package lvnet
