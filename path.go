// Copyright (c) 2024, The svg-writer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"strings"

	"goki.dev/mat32/v2"
)

// Path is an SVG path element holding one or more disjoint subpaths.
// Each non-empty subpath serializes as a closed contour (move to the
// first point, implicit lines to the rest, explicit close) under the
// even-odd fill rule, so a single path can represent shapes with
// holes.
type Path struct {
	SurfaceBase

	// Subpaths are the point sequences; points append to the last one.
	Subpaths [][]mat32.Vec2
}

// NewPath returns a path with one open subpath containing the given
// points (which may be empty, and are copied).
func NewPath(points []mat32.Vec2, fill Fill, stroke Stroke) *Path {
	for _, p := range points {
		if !validVec(p) {
			nfDiag(nil, "NewPath")
			break
		}
	}
	g := &Path{Subpaths: [][]mat32.Vec2{append([]mat32.Vec2(nil), points...)}}
	g.Fill = fill
	g.Stroke = stroke
	return g
}

// AddPoint appends points to the current subpath, returning the path
// for chaining.
func (g *Path) AddPoint(points ...mat32.Vec2) *Path {
	if len(g.Subpaths) == 0 {
		g.Subpaths = append(g.Subpaths, nil)
	}
	last := len(g.Subpaths) - 1
	for _, p := range points {
		if !validVec(p) {
			nfDiag(nil, "Path.AddPoint")
		}
		g.Subpaths[last] = append(g.Subpaths[last], p)
	}
	return g
}

// StartNewSubpath begins a new contour. It is a no-op while the
// current subpath is still empty.
func (g *Path) StartNewSubpath() *Path {
	if len(g.Subpaths) == 0 || len(g.Subpaths[len(g.Subpaths)-1]) > 0 {
		g.Subpaths = append(g.Subpaths, nil)
	}
	return g
}

func (g *Path) SVGName() string { return "path" }

func (g *Path) XML(ly *Layout, ds *Diagnostics) string {
	var sb strings.Builder
	sb.WriteString(elemStart("path"))
	sb.WriteString(g.idXML())
	sb.WriteString(`d="`)
	for _, sp := range g.Subpaths {
		if len(sp) == 0 {
			continue
		}
		sb.WriteString("M")
		for _, p := range sp {
			fmt.Fprintf(&sb, "%g,%g ", ly.TranslateX(p.X), ly.TranslateY(p.Y))
		}
		sb.WriteString("z ")
	}
	sb.WriteString(`" `)
	sb.WriteString(xmlAttr("fill-rule", "evenodd"))
	sb.WriteString(g.surfaceXML(ly, ds))
	sb.WriteString(emptyElemEnd)
	return sb.String()
}

func (g *Path) Offset(delta mat32.Vec2) {
	if !validVec(delta) {
		nfDiag(nil, "Path.Offset")
	}
	for _, sp := range g.Subpaths {
		for i := range sp {
			sp[i].SetAdd(delta)
		}
	}
}

func (g *Path) Clone() Node {
	cp := *g
	cp.cloneBase()
	cp.Subpaths = make([][]mat32.Vec2, len(g.Subpaths))
	for i, sp := range g.Subpaths {
		cp.Subpaths[i] = append([]mat32.Vec2(nil), sp...)
	}
	return &cp
}
