// Copyright (c) 2024, The svg-writer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"strings"

	"goki.dev/mat32/v2"
)

// Circle is an SVG circle element.
type Circle struct {
	SurfaceBase

	// Pos is the center of the circle.
	Pos mat32.Vec2

	// Radius of the circle.
	Radius float32
}

// NewCircle returns a circle centered at pos with the given diameter.
func NewCircle(pos mat32.Vec2, diameter float32, fill Fill, stroke Stroke) *Circle {
	if !validVec(pos) || !validNum(diameter) {
		nfDiag(nil, "NewCircle")
	}
	g := &Circle{Pos: pos, Radius: diameter / 2}
	g.Fill = fill
	g.Stroke = stroke
	return g
}

func (g *Circle) SVGName() string { return "circle" }

func (g *Circle) XML(ly *Layout, ds *Diagnostics) string {
	var sb strings.Builder
	sb.WriteString(elemStart("circle"))
	sb.WriteString(g.idXML())
	sb.WriteString(xmlAttrF("cx", ly.TranslateX(g.Pos.X)))
	sb.WriteString(xmlAttrF("cy", ly.TranslateY(g.Pos.Y)))
	sb.WriteString(xmlAttrF("r", ly.TranslateScale(g.Radius)))
	sb.WriteString(g.surfaceXML(ly, ds))
	sb.WriteString(emptyElemEnd)
	return sb.String()
}

func (g *Circle) Offset(delta mat32.Vec2) {
	if !validVec(delta) {
		nfDiag(nil, "Circle.Offset")
	}
	g.Pos.SetAdd(delta)
}

func (g *Circle) Clone() Node {
	cp := *g
	cp.cloneBase()
	return &cp
}
