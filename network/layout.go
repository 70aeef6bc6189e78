// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	opParseLayout = "ParseLayout"
	opNew         = "New"
	opFromWeights = "FromWeights"

	layoutSeparator = ","
	minLayers       = 2
)

// ParseLayout parses a layout descriptor such as "2, 3, 1" into node counts,
// one per layer. Tokens are comma separated; surrounding whitespace is ignored.
//
// Errors: ErrInvalidLayout on empty tokens, non-integers, values ≤ 0, or
// fewer than two layers.
func ParseLayout(s string) ([]int, error) {
	tokens := strings.Split(s, layoutSeparator)
	if len(tokens) < minLayers {
		return nil, fmt.Errorf("%s(%q): %w", opParseLayout, s, ErrInvalidLayout)
	}

	layout := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%s(%q): token %q: %w", opParseLayout, s, tok, ErrInvalidLayout)
		}
		layout = append(layout, n)
	}

	return layout, nil
}

// FormatLayout renders node counts back into the "2, 3, 1" form.
func FormatLayout(layout []int) string {
	parts := make([]string, len(layout))
	for i, n := range layout {
		parts[i] = strconv.Itoa(n)
	}

	return strings.Join(parts, layoutSeparator+" ")
}

// validateLayout checks the layer count and that every node count is positive.
func validateLayout(layout []int) error {
	if len(layout) < minLayers {
		return ErrInvalidLayout
	}
	for _, n := range layout {
		if n <= 0 {
			return ErrInvalidLayout
		}
	}

	return nil
}
