// Package render draws positioned Slitherlink puzzles as SVG or PNG.
//
// A Scene is the renderer-neutral form of a puzzle: scaled edge segments
// flagged with their solution state, vertex markers, text labels and the
// drawing bounds. WriteSVG and WritePNG turn a Scene into an image using
// the same Style:
//
//   - solution edges solid (green by default), other edges dotted (grey);
//   - vertices as small dots;
//   - with ShowIDs: vertex ids at the vertices, edge ids (blue) at edge
//     midpoints, face ids (red) at face centroids for faces with a clue;
//   - with ShowClues: clue numbers at face centroids.
//
// Scene coordinates keep +y up; both writers flip the axis for raster and
// SVG space.
//
// Errors:
//
//	ErrBadColor - a style color is not #rgb or #rrggbb.
//	ErrBadStyle - a style size is out of range.
//	puzzle.ErrUnplaced is returned by NewScene for puzzles without positions.
package render
