// Package puzzle defines the in-memory model of a hexagonal Slitherlink puzzle:
// vertices, edges and faces with dense integer identifiers, plus the parameter
// bitmask that describes which optional sections a puzzle description carries.
//
// What:
//
//   - Vertex: id, planar position (unset until placed), incident edge ids.
//   - Edge:   id, two endpoint vertex ids, two incident face ids (OuterFace for
//     the unbounded region) and the solution flag.
//   - Face:   id, clue (NoClue when absent) and bounding edge ids.
//   - Puzzle: Params + the three catalogs, indexed by id for O(1) lookup.
//
// Ownership:
//
//   - A Puzzle is a plain value owned by one caller at a time; it carries no
//     locks and no global state. Loaders build it, the coordinate generator
//     (package hexwheel) mutates vertex positions only, renderers read it.
//
// Errors:
//
//	ErrVertexNotFound    - vertex id out of range.
//	ErrEdgeNotFound      - edge id out of range.
//	ErrFaceNotFound      - face id out of range (OuterFace is never a stored face).
//	ErrDanglingReference - an incidence list names an id that does not exist.
//	ErrUnplaced          - a vertex position was requested before placement.
//	ErrPositionCount     - SetPositions got a slice of the wrong length.
//
// Topological consistency of the incidence lists (e.g. that an edge listed by a
// face names that face back) is deliberately not checked here.
package puzzle
