// SPDX-License-Identifier: MIT
// Package: slitherlink/puzzlefile
//
// errors.go — sentinel errors. Call sites wrap them with the line number.

package puzzlefile

import "errors"

// ErrSyntax indicates input that is not a sequence of numeric records of the
// expected arity.
var ErrSyntax = errors.New("puzzlefile: syntax error")

// ErrMissingParams indicates a params bitmap without every required section.
var ErrMissingParams = errors.New("puzzlefile: required sections missing")

// ErrIDMismatch indicates a record whose id does not match its position.
var ErrIDMismatch = errors.New("puzzlefile: id mismatch")

// ErrTruncated indicates input ending inside a declared section.
var ErrTruncated = errors.New("puzzlefile: unexpected end of input")
