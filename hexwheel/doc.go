// Package hexwheel reconstructs planar coordinates for the vertices of a
// layered hexagonal Slitherlink graph from the vertex count alone.
//
// What:
//
//   - A wheel of k concentric layers has V = 6·k² vertices. Layer L (1-based)
//     holds 6 wedges of 2L−1 vertices each, i.e. 6(2L−1) vertices, and all
//     inner layers together hold 6(L−1)² vertices.
//   - Vertex ids follow the enumeration layer → wedge → offset, so the slot
//     (L, w, j) lives at index 6(L−1)² + w(2L−1) + j. Slot, SlotIndex and
//     SlotOf expose that bijection explicitly.
//
// How (per layer):
//
//  1. Seed one wedge: apex (0, L + ⌊(L−1)/2⌋), then L−1 unit steps of
//     (√3/2, ±½), the sign alternating with the parity of L+i.
//  2. Correct the corner: the last L−1 points are reflections of the zigzag
//     across the wedge bisector, so the wedge bends at the hexagon corner.
//  3. Replicate: six copies, each rotated a further 60° clockwise.
//
// The result is a unit hexagonal lattice: layer 1 is a regular hexagon of
// circumradius 1 centered at the origin, neighbouring vertices sit at distance
// 1, and outer layers strictly enclose inner ones.
//
// Contract with loaders:
//
//   - Apply writes generated positions into a puzzle.Puzzle. By default vertex
//     id i receives slot index i; a loader whose ids follow another order must
//     pass WithOrder with the slot→id permutation.
//   - Puzzles whose Params carry puzzle.CoordsPresent are left untouched unless
//     WithForce is given.
//
// Errors:
//
//	ErrInvalidTopology - vertex count is not 6·k² for an integer k ≥ 1.
//	ErrSlotOutOfRange  - slot or index outside the wheel.
//	ErrBadOrder        - WithOrder permutation is not a permutation of ids.
//	ErrNilPuzzle       - Apply called with a nil puzzle.
//
// Determinism: Generate is a pure function of V.
package hexwheel
