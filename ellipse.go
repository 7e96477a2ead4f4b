// Copyright (c) 2024, The svg-writer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"strings"

	"goki.dev/mat32/v2"
)

// Ellipse is an SVG ellipse element.
type Ellipse struct {
	SurfaceBase

	// Pos is the center of the ellipse.
	Pos mat32.Vec2

	// Radii are the x and y radii.
	Radii mat32.Vec2
}

// NewEllipse returns an ellipse centered at pos with the given total
// width and height.
func NewEllipse(pos mat32.Vec2, width, height float32, fill Fill, stroke Stroke) *Ellipse {
	if !validVec(pos) || !validNum(width) || !validNum(height) {
		nfDiag(nil, "NewEllipse")
	}
	g := &Ellipse{Pos: pos, Radii: mat32.V2(width/2, height/2)}
	g.Fill = fill
	g.Stroke = stroke
	return g
}

func (g *Ellipse) SVGName() string { return "ellipse" }

func (g *Ellipse) XML(ly *Layout, ds *Diagnostics) string {
	var sb strings.Builder
	sb.WriteString(elemStart("ellipse"))
	sb.WriteString(g.idXML())
	sb.WriteString(xmlAttrF("cx", ly.TranslateX(g.Pos.X)))
	sb.WriteString(xmlAttrF("cy", ly.TranslateY(g.Pos.Y)))
	sb.WriteString(xmlAttrF("rx", ly.TranslateScale(g.Radii.X)))
	sb.WriteString(xmlAttrF("ry", ly.TranslateScale(g.Radii.Y)))
	sb.WriteString(g.surfaceXML(ly, ds))
	sb.WriteString(emptyElemEnd)
	return sb.String()
}

func (g *Ellipse) Offset(delta mat32.Vec2) {
	if !validVec(delta) {
		nfDiag(nil, "Ellipse.Offset")
	}
	g.Pos.SetAdd(delta)
}

func (g *Ellipse) Clone() Node {
	cp := *g
	cp.cloneBase()
	return &cp
}
