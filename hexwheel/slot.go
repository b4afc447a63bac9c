// SPDX-License-Identifier: MIT
// Package: slitherlink/hexwheel
//
// slot.go — the bijection between (layer, wedge, offset) and vertex index.
//
// Layout:
//   - Layers are stored contiguously in increasing-radius order.
//   - Layer L starts at 6(L−1)², the hexagonal-number count of all inner layers.
//   - Inside a layer, wedge w starts at w(2L−1); offset j runs 0..2L−2 from the
//     wedge apex along the zigzag and around the corner.

package hexwheel

import (
	"fmt"
	"math"
)

// Slot addresses one vertex of the wheel.
type Slot struct {
	Layer  int // 1..k, innermost first
	Wedge  int // 0..5, clockwise from the +y axis
	Offset int // 0..2·Layer−2, apex first
}

// String renders the slot for logs and test failures.
func (s Slot) String() string {
	return fmt.Sprintf("L%d/w%d/%d", s.Layer, s.Wedge, s.Offset)
}

// WedgeSize returns the number of vertices in one wedge of layer L: 2L−1.
func WedgeSize(layer int) int { return 2*layer - 1 }

// LayerSize returns the number of vertices in layer L: 6(2L−1).
func LayerSize(layer int) int { return Wedges * WedgeSize(layer) }

// LayerStart returns the index of the first vertex of layer L: 6(L−1)².
func LayerStart(layer int) int { return Wedges * (layer - 1) * (layer - 1) }

// Layers returns k such that v = 6·k², computed in exact integer arithmetic.
// Fails with ErrInvalidTopology for v ≤ 0 or any v not of that form.
// Complexity: O(1).
func Layers(v int) (int, error) {
	if v <= 0 || v%Wedges != 0 {
		return 0, fmt.Errorf("%s: V=%d: %w", methodLayers, v, ErrInvalidTopology)
	}
	q := v / Wedges
	k := int(math.Sqrt(float64(q)))
	// Nudge the float estimate onto the exact integer root.
	for k*k > q {
		k--
	}
	for (k+1)*(k+1) <= q {
		k++
	}
	if k*k != q {
		return 0, fmt.Errorf("%s: V=%d is not 6·k² (V/6=%d): %w", methodLayers, v, q, ErrInvalidTopology)
	}

	return k, nil
}

// SlotIndex maps a slot to its vertex index in a wheel of k layers.
// Complexity: O(1).
func SlotIndex(k int, s Slot) (int, error) {
	if s.Layer < 1 || s.Layer > k || s.Wedge < 0 || s.Wedge >= Wedges ||
		s.Offset < 0 || s.Offset >= WedgeSize(s.Layer) {
		return 0, fmt.Errorf("%s: %v in %d layers: %w", methodSlotIndex, s, k, ErrSlotOutOfRange)
	}

	return LayerStart(s.Layer) + s.Wedge*WedgeSize(s.Layer) + s.Offset, nil
}

// SlotOf maps a vertex index of a wheel of k layers back to its slot.
// Complexity: O(1).
func SlotOf(k, index int) (Slot, error) {
	if k < 1 || index < 0 || index >= Wedges*k*k {
		return Slot{}, fmt.Errorf("%s: index %d in %d layers: %w", methodSlotOf, index, k, ErrSlotOutOfRange)
	}
	// Layer L is the largest L with 6(L−1)² ≤ index.
	layer := int(math.Sqrt(float64(index/Wedges))) + 1
	for LayerStart(layer) > index {
		layer--
	}
	for layer < k && LayerStart(layer+1) <= index {
		layer++
	}
	rest := index - LayerStart(layer)
	size := WedgeSize(layer)

	return Slot{Layer: layer, Wedge: rest / size, Offset: rest % size}, nil
}
