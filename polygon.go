// Copyright (c) 2024, The svg-writer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"strings"

	"goki.dev/mat32/v2"
)

// Polygon is an SVG polygon element: a closed, fillable point
// sequence.
type Polygon struct {
	SurfaceBase

	// Points are the polygon vertices, in insertion order.
	Points []mat32.Vec2
}

// NewPolygon returns a polygon over the given vertices, which are
// copied.
func NewPolygon(points []mat32.Vec2, fill Fill, stroke Stroke) *Polygon {
	for _, p := range points {
		if !validVec(p) {
			nfDiag(nil, "NewPolygon")
			break
		}
	}
	g := &Polygon{Points: append([]mat32.Vec2(nil), points...)}
	g.Fill = fill
	g.Stroke = stroke
	return g
}

// AddPoint appends vertices, returning the polygon for chaining.
func (g *Polygon) AddPoint(points ...mat32.Vec2) *Polygon {
	for _, p := range points {
		if !validVec(p) {
			nfDiag(nil, "Polygon.AddPoint")
		}
		g.Points = append(g.Points, p)
	}
	return g
}

func (g *Polygon) SVGName() string { return "polygon" }

func (g *Polygon) XML(ly *Layout, ds *Diagnostics) string {
	var sb strings.Builder
	sb.WriteString(elemStart("polygon"))
	sb.WriteString(g.idXML())
	sb.WriteString(`points="`)
	for _, p := range g.Points {
		fmt.Fprintf(&sb, "%g,%g ", ly.TranslateX(p.X), ly.TranslateY(p.Y))
	}
	sb.WriteString(`" `)
	sb.WriteString(g.surfaceXML(ly, ds))
	sb.WriteString(emptyElemEnd)
	return sb.String()
}

func (g *Polygon) Offset(delta mat32.Vec2) {
	if !validVec(delta) {
		nfDiag(nil, "Polygon.Offset")
	}
	for i := range g.Points {
		g.Points[i].SetAdd(delta)
	}
}

func (g *Polygon) Clone() Node {
	cp := *g
	cp.cloneBase()
	cp.Points = append([]mat32.Vec2(nil), g.Points...)
	return &cp
}
