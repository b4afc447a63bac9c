// SPDX-License-Identifier: MIT
// Package: slitherlink/render

package render

import "errors"

// ErrBadColor indicates a style color that is not a #rgb or #rrggbb hex string.
var ErrBadColor = errors.New("render: bad color")

// ErrBadStyle indicates a non-positive size or scale, or an image side above
// MaxSide, in a style.
var ErrBadStyle = errors.New("render: bad style")
