// Copyright (c) 2024, The svg-writer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"strings"

	"goki.dev/mat32/v2"
)

// Rect is an SVG rect element.
type Rect struct {
	SurfaceBase

	// Pos is the upper-left corner, in user coordinates.
	Pos mat32.Vec2

	// Size is the width and height.
	Size mat32.Vec2

	// Radii are the optional rounded-corner radii, emitted only when
	// positive. They are in native units and not layout-scaled.
	Radii mat32.Vec2
}

// NewRect returns a rectangle with the given upper-left corner, width,
// and height.
func NewRect(pos mat32.Vec2, width, height float32, fill Fill, stroke Stroke) *Rect {
	if !validVec(pos) || !validNum(width) || !validNum(height) {
		nfDiag(nil, "NewRect")
	}
	g := &Rect{Pos: pos, Size: mat32.V2(width, height)}
	g.Fill = fill
	g.Stroke = stroke
	return g
}

func (g *Rect) SVGName() string { return "rect" }

func (g *Rect) XML(ly *Layout, ds *Diagnostics) string {
	var sb strings.Builder
	sb.WriteString(elemStart("rect"))
	sb.WriteString(g.idXML())
	sb.WriteString(xmlAttrF("x", ly.TranslateX(g.Pos.X)))
	sb.WriteString(xmlAttrF("y", ly.TranslateY(g.Pos.Y)))
	if g.Radii.X > 0 || g.Radii.Y > 0 {
		sb.WriteString(xmlAttrF("rx", g.Radii.X))
		sb.WriteString(xmlAttrF("ry", g.Radii.Y))
	}
	sb.WriteString(xmlAttrF("width", ly.TranslateScale(g.Size.X)))
	sb.WriteString(xmlAttrF("height", ly.TranslateScale(g.Size.Y)))
	sb.WriteString(g.surfaceXML(ly, ds))
	sb.WriteString(emptyElemEnd)
	return sb.String()
}

func (g *Rect) Offset(delta mat32.Vec2) {
	if !validVec(delta) {
		nfDiag(nil, "Rect.Offset")
	}
	g.Pos.SetAdd(delta)
}

// CenterAt returns a copy of the rectangle whose center is at pos.
func (g *Rect) CenterAt(pos mat32.Vec2) *Rect {
	if !validVec(pos) {
		nfDiag(nil, "Rect.CenterAt")
	}
	cp := g.Clone().(*Rect)
	cp.Pos = pos.Sub(g.Size.MulScalar(0.5))
	return cp
}

func (g *Rect) Clone() Node {
	cp := *g
	cp.cloneBase()
	return &cp
}
