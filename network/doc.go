// SPDX-License-Identifier: MIT

// Package network implements a fully connected feedforward neural network
// with sigmoid activations, trained by full-batch gradient descent.
//
// 🚀 What is in a Network?
//
//	An ordered list of L ≥ 2 layers. Layer 0 is the input layer and only has
//	a node count; every later layer l owns a weight matrix of shape
//	nodes[l-1] × nodes[l], where entry (i,j) connects node i of the previous
//	layer to node j of layer l. There are no bias terms.
//
// ✨ Key features:
//   - layout descriptors such as "2, 3, 1" (ParseLayout / NewFromLayout)
//   - seedable weight randomization (RandomizeWeights)
//   - pure inference (Infer) and activation-caching inference (InferForTraining)
//   - one-call training epochs returning the mean squared error (Train)
//
// ⚙️ Usage:
//
//	net, err := network.NewFromLayout("2, 3, 1")
//	if err != nil { ... }
//	rng := rand.New(rand.NewSource(42))
//	_ = net.RandomizeWeights(rng, -3, 3)
//	for epoch := 0; epoch < 100000; epoch++ {
//	    loss, err := net.Train(inputs, targets, 1.0)
//	    ...
//	}
//	out, err := net.InferValues([]float64{1, 0})
//
// Concurrency:
//
//	A Network is not safe for concurrent use. Train and InferForTraining
//	replace the activation cache; Infer only reads weights.
package network
