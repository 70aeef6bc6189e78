// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private Kernels
//
// Purpose:
//   - Expose UNEXPORTED ew* micro-kernels to matrix_test ONLY.
//   - Enable white-box verification of fast-path (*Dense) vs generic fallback,
//     without widening the prod API.
//
// Build Policy:
//   - _test.go suffix: compiled only by `go test`, invisible in production builds.

var (
	// EwCombine_TestOnly exposes ewCombine.
	EwCombine_TestOnly = ewCombine
	// EwUpdate_TestOnly exposes ewUpdate.
	EwUpdate_TestOnly = ewUpdate
	// EwAveragePairwise_TestOnly exposes ewAveragePairwise.
	EwAveragePairwise_TestOnly = ewAveragePairwise
)
