// SPDX-License-Identifier: MIT

// Package persist stores network weights in a compact little-endian binary
// file and loads them back.
//
// File layout:
//
//	int32   numberOfLayers (L, input layer included)
//	L-1 times:
//	    int32   rows
//	    int32   columns
//	    float64 rows*columns weights, row-major
//
// The number of inputs of a loaded network is the row count of the first
// stored matrix. Activations are never stored.
//
// Lock discipline:
//
//	A marker file at path+".lock" means another party owns path. Write and
//	Read both refuse to touch path while the marker exists (ErrLockPresent).
//	Write goes through a temporary file in the same directory and renames it
//	over path, so readers never observe a half-written file.
package persist
