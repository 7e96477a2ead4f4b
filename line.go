// Copyright (c) 2024, The svg-writer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"strings"

	"goki.dev/mat32/v2"
)

// Line is an SVG line element. It can carry start/mid/end marker
// references; for a line, only start and end ever render.
type Line struct {
	NodeBase
	MarkerBase

	// Start point of the line.
	Start mat32.Vec2

	// End point of the line.
	End mat32.Vec2
}

// NewLine returns a line between the two points.
func NewLine(start, end mat32.Vec2, stroke Stroke) *Line {
	if !validVec(start) || !validVec(end) {
		nfDiag(nil, "NewLine")
	}
	g := &Line{Start: start, End: end}
	g.Stroke = stroke
	return g
}

func (g *Line) SVGName() string { return "line" }

func (g *Line) XML(ly *Layout, ds *Diagnostics) string {
	var sb strings.Builder
	sb.WriteString(elemStart("line"))
	sb.WriteString(g.idXML())
	sb.WriteString(xmlAttrF("x1", ly.TranslateX(g.Start.X)))
	sb.WriteString(xmlAttrF("y1", ly.TranslateY(g.Start.Y)))
	sb.WriteString(xmlAttrF("x2", ly.TranslateX(g.End.X)))
	sb.WriteString(xmlAttrF("y2", ly.TranslateY(g.End.Y)))
	sb.WriteString(g.baseXML(ly, ds))
	sb.WriteString(g.markerXML())
	sb.WriteString(emptyElemEnd)
	return sb.String()
}

func (g *Line) Offset(delta mat32.Vec2) {
	if !validVec(delta) {
		nfDiag(nil, "Line.Offset")
	}
	g.Start.SetAdd(delta)
	g.End.SetAdd(delta)
}

func (g *Line) Clone() Node {
	cp := *g
	cp.cloneBase()
	return &cp
}
