// SPDX-License-Identifier: MIT
// Package: slitherlink/hexwheel
//
// errors.go — sentinel errors. Call sites wrap them with the method name
// (fmt.Errorf("%s: ...: %w", methodX, ..., ErrX)); callers use errors.Is.

package hexwheel

import "errors"

// ErrInvalidTopology indicates a vertex count that is not 6·k² for any integer
// k ≥ 1, so the graph cannot be a complete hexagonal wheel.
var ErrInvalidTopology = errors.New("hexwheel: vertex count is not 6·k²")

// ErrSlotOutOfRange indicates a (layer, wedge, offset) triple or a flat index
// that does not address a vertex of the wheel.
var ErrSlotOutOfRange = errors.New("hexwheel: slot out of range")

// ErrBadOrder indicates that the slot→vertex mapping given via WithOrder is
// not a permutation of the puzzle's vertex ids.
var ErrBadOrder = errors.New("hexwheel: order is not a permutation of vertex ids")

// ErrNilPuzzle indicates Apply was called without a puzzle.
var ErrNilPuzzle = errors.New("hexwheel: nil puzzle")
