// Package puzzlefile reads and writes the line-oriented text format used to
// exchange Slitherlink puzzles.
//
// Layout (one record per line, numbers separated by blanks, '#' starts a
// comment that runs to the end of the line, blank lines are ignored):
//
//	<params bitmap>                  decimal digits, read right to left:
//	                                 a nonzero digit i sets puzzle.Params bit i
//	<V>
//	<E>
//	<F>
//	<id> <n> <e1> … <en>             × V   vertex and its edges
//	<id> <v1> <v2> <f1> <f2> [<s>]   × E   s present iff SolvedEdgePresent, 1 = in loop
//	<id> <clue> <n> <e1> … <en>      × F   clue -1 = none
//	<grid type>                            iff GridTypePresent
//	<id> <x> <y>                     × V   iff CoordsPresent, any order
//
// Face id -1 on an edge is the outer face. Every vertex, edge and face line
// must carry its own index as id.
//
// Errors (all carry the offending line number):
//
//	ErrSyntax        - unlexable input, non-numeric field or wrong arity.
//	ErrMissingParams - bitmap lacks one of the required sections.
//	ErrIDMismatch    - a record's id differs from its position, or a
//	                   coordinate id is repeated or out of range.
//	ErrTruncated     - the input ends before a declared section does, or
//	                   holds fewer records than the V, E and F counts need.
//
// Read also runs puzzle.CheckReferences, so dangling ids surface as
// puzzle.ErrDanglingReference.
package puzzlefile
