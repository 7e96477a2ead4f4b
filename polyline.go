// Copyright (c) 2024, The svg-writer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"strings"

	"goki.dev/mat32/v2"
)

// Polyline is an SVG polyline element: an open point sequence, never
// filled. It can carry start/mid/end marker references.
type Polyline struct {
	NodeBase
	MarkerBase

	// Points are the vertices, in insertion order.
	Points []mat32.Vec2
}

// NewPolyline returns a polyline over the given vertices, which are
// copied.
func NewPolyline(points []mat32.Vec2, stroke Stroke) *Polyline {
	for _, p := range points {
		if !validVec(p) {
			nfDiag(nil, "NewPolyline")
			break
		}
	}
	g := &Polyline{Points: append([]mat32.Vec2(nil), points...)}
	g.Stroke = stroke
	return g
}

// AddPoint appends vertices, returning the polyline for chaining.
func (g *Polyline) AddPoint(points ...mat32.Vec2) *Polyline {
	for _, p := range points {
		if !validVec(p) {
			nfDiag(nil, "Polyline.AddPoint")
		}
		g.Points = append(g.Points, p)
	}
	return g
}

func (g *Polyline) SVGName() string { return "polyline" }

func (g *Polyline) XML(ly *Layout, ds *Diagnostics) string {
	var sb strings.Builder
	sb.WriteString(elemStart("polyline"))
	sb.WriteString(g.idXML())
	sb.WriteString(xmlAttr("fill", "none"))
	sb.WriteString(`points="`)
	for _, p := range g.Points {
		fmt.Fprintf(&sb, "%g,%g ", ly.TranslateX(p.X), ly.TranslateY(p.Y))
	}
	sb.WriteString(`" `)
	sb.WriteString(g.baseXML(ly, ds))
	sb.WriteString(g.markerXML())
	sb.WriteString(emptyElemEnd)
	return sb.String()
}

func (g *Polyline) Offset(delta mat32.Vec2) {
	if !validVec(delta) {
		nfDiag(nil, "Polyline.Offset")
	}
	for i := range g.Points {
		g.Points[i].SetAdd(delta)
	}
}

func (g *Polyline) Clone() Node {
	cp := *g
	cp.cloneBase()
	cp.Points = append([]mat32.Vec2(nil), g.Points...)
	return &cp
}
