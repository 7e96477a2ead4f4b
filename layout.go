// Copyright (c) 2024, The svg-writer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/chewxy/math32"
	"goki.dev/mat32/v2"
)

// Origins are the four corners of the drawing area that can serve as
// the origin of the user coordinate space. BottomLeft and BottomRight
// flip the Y axis relative to SVG's native top-left, Y-down frame, so
// callers can work in a standard Cartesian frame transparently.
type Origins int32

const (
	TopLeft Origins = iota
	BottomLeft
	TopRight
	BottomRight
)

func (o Origins) String() string {
	switch o {
	case TopLeft:
		return "TopLeft"
	case BottomLeft:
		return "BottomLeft"
	case TopRight:
		return "TopRight"
	case BottomRight:
		return "BottomRight"
	}
	return "Origins(invalid)"
}

// Layout defines the affine map from user coordinates to SVG native
// coordinates: the document dimensions, the corner acting as the user
// origin, a scale factor, and an offset added to every user coordinate
// before scaling.
type Layout struct {

	// Size is the width and height of the document, in native units.
	Size mat32.Vec2

	// Origin is the corner of the document the user origin maps to.
	Origin Origins

	// Scale multiplies all user coordinates and dimensions.
	Scale float32

	// Offset is added to user coordinates before scaling.
	Offset mat32.Vec2
}

// NewLayout returns a layout with the given parameters, reporting a
// diagnostic for non-finite inputs (which still propagate: callers
// needing strict correctness must validate upstream).
func NewLayout(size mat32.Vec2, origin Origins, scale float32, offset mat32.Vec2) *Layout {
	if !validVec(size) || !validNum(scale) || !validVec(offset) {
		nfDiag(nil, "NewLayout")
	}
	return &Layout{Size: size, Origin: origin, Scale: scale, Offset: offset}
}

// DefaultLayout returns the layout used when none is given: 400x300,
// origin at the bottom left (Y up), scale 1, no offset.
func DefaultLayout() *Layout {
	return &Layout{Size: mat32.V2(400, 300), Origin: BottomLeft, Scale: 1}
}

// IdentityLayout returns a layout that applies no scaling, offset, or
// axis flip. Marker-local shapes are serialized against it, because
// marker coordinates are defined in the marker's own space,
// independent of the parent document's layout.
func IdentityLayout() *Layout {
	return &Layout{Origin: TopLeft, Scale: 1}
}

// TranslateX maps a user X coordinate to the native X coordinate.
func (ly *Layout) TranslateX(x float32) float32 {
	if ly.Origin == BottomRight || ly.Origin == TopRight {
		return ly.Size.X - (x+ly.Offset.X)*ly.Scale
	}
	return (ly.Offset.X + x) * ly.Scale
}

// TranslateY maps a user Y coordinate to the native Y coordinate.
func (ly *Layout) TranslateY(y float32) float32 {
	if ly.Origin == BottomLeft || ly.Origin == BottomRight {
		return ly.Size.Y - (y+ly.Offset.Y)*ly.Scale
	}
	return (ly.Offset.Y + y) * ly.Scale
}

// TranslateScale maps a scale-only quantity (radius, stroke width,
// font size): it is multiplied by the scale but never offset or
// flipped.
func (ly *Layout) TranslateScale(dim float32) float32 {
	return dim * ly.Scale
}

// validNum reports whether x is a usable coordinate: finite, not NaN.
func validNum(x float32) bool {
	return !math32.IsNaN(x) && !math32.IsInf(x, 0)
}

func validVec(v mat32.Vec2) bool {
	return validNum(v.X) && validNum(v.Y)
}

// nfDiag reports the shared non-finite-input diagnostic for the named
// function.
func nfDiag(ds *Diagnostics, fun string) {
	ds.Addf("svg: Infs or NaNs provided to %s", fun)
}
