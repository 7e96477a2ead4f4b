// Copyright (c) 2024, The svg-writer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"goki.dev/mat32/v2"
)

func TestCircleXML(t *testing.T) {
	c := NewCircle(mat32.V2(10, 20), 8, NewFill(Red), NoStroke())
	out := c.XML(DefaultLayout(), nil)
	assert.Equal(t, "\t<circle cx=\"10\" cy=\"280\" r=\"4\" fill=\"rgb(255,0,0)\" />\n", out)
}

func TestCircleID(t *testing.T) {
	c := NewCircle(mat32.V2(0, 0), 2, DefaultFill(), NoStroke())
	c.Id = "dot"
	assert.Contains(t, c.XML(DefaultLayout(), nil), `id="dot" `)
}

func TestEllipseXML(t *testing.T) {
	e := NewEllipse(mat32.V2(10, 20), 8, 6, NewFill(Blue), NoStroke())
	out := e.XML(IdentityLayout(), nil)
	assert.Equal(t, "\t<ellipse cx=\"10\" cy=\"20\" rx=\"4\" ry=\"3\" fill=\"rgb(0,0,255)\" />\n", out)
}

func TestRectXML(t *testing.T) {
	r := NewRect(mat32.V2(1, 2), 30, 40, NewFill(Green), NoStroke())
	out := r.XML(IdentityLayout(), nil)
	assert.Equal(t, "\t<rect x=\"1\" y=\"2\" width=\"30\" height=\"40\" fill=\"rgb(0,128,0)\" />\n", out)
}

func TestRectRoundedCorners(t *testing.T) {
	r := NewRect(mat32.V2(0, 0), 10, 10, DefaultFill(), NoStroke())
	assert.NotContains(t, r.XML(IdentityLayout(), nil), "rx=")

	r.Radii = mat32.V2(2, 3)
	out := r.XML(IdentityLayout(), nil)
	assert.Contains(t, out, `rx="2" ry="3" `)

	// corner radii stay in native units even under scaling
	ly := NewLayout(mat32.V2(400, 300), TopLeft, 5, mat32.Vec2{})
	assert.Contains(t, r.XML(ly, nil), `rx="2" ry="3" `)
}

func TestRectCenterAt(t *testing.T) {
	r := NewRect(mat32.V2(0, 0), 10, 20, DefaultFill(), NoStroke())
	c := r.CenterAt(mat32.V2(50, 50))
	assert.Equal(t, mat32.V2(45, 40), c.Pos)
	assert.Equal(t, mat32.Vec2{}, r.Pos, "original must be untouched")
}

func TestLineXML(t *testing.T) {
	l := NewLine(mat32.V2(1, 2), mat32.V2(3, 4), NewStroke(1, Black))
	out := l.XML(IdentityLayout(), nil)
	assert.Equal(t, "\t<line x1=\"1\" y1=\"2\" x2=\"3\" y2=\"4\" stroke-width=\"1\" stroke=\"rgb(0,0,0)\" stroke-dashoffset=\"0\" />\n", out)
}

func TestPolygonXML(t *testing.T) {
	p := NewPolygon([]mat32.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 5}}, NewFill(Red), NoStroke())
	out := p.XML(IdentityLayout(), nil)
	assert.Equal(t, "\t<polygon points=\"0,0 10,0 5,5 \" fill=\"rgb(255,0,0)\" />\n", out)
}

func TestPolylineXML(t *testing.T) {
	p := NewPolyline([]mat32.Vec2{{X: 0, Y: 0}, {X: 10, Y: 10}}, NewStroke(1, Black))
	out := p.XML(IdentityLayout(), nil)
	assert.Contains(t, out, `fill="none" `)
	assert.Contains(t, out, `points="0,0 10,10 " `)
}

func TestPathSubpaths(t *testing.T) {
	p := NewPath([]mat32.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, NewFill(Red), NoStroke())
	p.StartNewSubpath()
	p.AddPoint(mat32.V2(2, 2), mat32.V2(4, 2), mat32.V2(4, 4))
	out := p.XML(IdentityLayout(), nil)
	assert.Contains(t, out, `d="M0,0 10,0 10,10 z M2,2 4,2 4,4 z " `)
	assert.Contains(t, out, `fill-rule="evenodd" `)
}

func TestPathEmptySubpathsSkipped(t *testing.T) {
	p := NewPath(nil, DefaultFill(), NoStroke())
	p.StartNewSubpath() // no-op, current subpath still empty
	p.StartNewSubpath()
	assert.Contains(t, p.XML(IdentityLayout(), nil), `d="" `)
	assert.Len(t, p.Subpaths, 1)
}

func TestTextXML(t *testing.T) {
	tx := NewText(mat32.V2(5, 5), "hello", NewFill(Black), NoStroke())
	out := tx.XML(IdentityLayout(), nil)
	assert.Equal(t, "\t<text text-anchor=\"middle\" dominant-baseline=\"middle\" x=\"5\" y=\"5\" fill=\"rgb(0,0,0)\" font-size=\"12\" font-family=\"Verdana\" >hello</text>\n", out)
}

func TestTextAlignment(t *testing.T) {
	tx := NewText(mat32.V2(0, 0), "x", DefaultFill(), NoStroke())
	tx.Anchor = AnchorEnd
	tx.Baseline = BaselineHanging
	out := tx.XML(IdentityLayout(), nil)
	assert.Contains(t, out, `text-anchor="end" `)
	assert.Contains(t, out, `dominant-baseline="hanging" `)

	tx.Anchor = AnchorNone
	tx.Baseline = BaselineNone
	out = tx.XML(IdentityLayout(), nil)
	assert.NotContains(t, out, "text-anchor")
	assert.NotContains(t, out, "dominant-baseline")
}

func TestTextEmptyContentDiagnostic(t *testing.T) {
	tx := NewText(mat32.V2(0, 0), "", DefaultFill(), NoStroke())
	var ds Diagnostics
	tx.XML(IdentityLayout(), &ds)
	assert.Len(t, ds, 1)
}

func TestOffsetSerializeCommutes(t *testing.T) {
	ly := DefaultLayout()
	delta := mat32.V2(3, -2)

	moved := NewCircle(mat32.V2(10+3, 20-2), 8, NewFill(Red), NoStroke())
	c := NewCircle(mat32.V2(10, 20), 8, NewFill(Red), NoStroke())
	c.Offset(delta)
	assert.Equal(t, moved.XML(ly, nil), c.XML(ly, nil))

	p := NewPolygon([]mat32.Vec2{{X: 1, Y: 1}, {X: 2, Y: 2}}, DefaultFill(), NoStroke())
	p.Offset(delta)
	assert.Equal(t, []mat32.Vec2{{X: 4, Y: -1}, {X: 5, Y: 0}}, p.Points)

	pa := NewPath([]mat32.Vec2{{X: 1, Y: 1}}, DefaultFill(), NoStroke())
	pa.StartNewSubpath()
	pa.AddPoint(mat32.V2(5, 5))
	pa.Offset(delta)
	assert.Equal(t, mat32.V2(4, -1), pa.Subpaths[0][0])
	assert.Equal(t, mat32.V2(8, 3), pa.Subpaths[1][0])
}

func TestCloneIndependence(t *testing.T) {
	st := NewStroke(1, Black)
	st.DashArray = []int{1, 2}

	p := NewPolyline([]mat32.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}, st)
	cp := p.Clone().(*Polyline)
	cp.Offset(mat32.V2(10, 10))
	cp.Stroke.DashArray[0] = 99
	assert.Equal(t, mat32.Vec2{}, p.Points[0], "clone offset must not leak back")
	assert.Equal(t, 1, p.Stroke.DashArray[0], "dash array must be deep-copied")

	pa := NewPath([]mat32.Vec2{{X: 1, Y: 1}}, DefaultFill(), st)
	cpa := pa.Clone().(*Path)
	cpa.Subpaths[0][0] = mat32.V2(9, 9)
	assert.Equal(t, mat32.V2(1, 1), pa.Subpaths[0][0])

	pg := NewPolygon([]mat32.Vec2{{X: 1, Y: 1}}, DefaultFill(), st)
	cpg := pg.Clone().(*Polygon)
	cpg.Points[0] = mat32.V2(9, 9)
	assert.Equal(t, mat32.V2(1, 1), pg.Points[0])
}

func TestCloneSharesMarkers(t *testing.T) {
	mk := NewMarker("arrow", mat32.V2(10, 10), mat32.V2(5, 5))
	l := NewLine(mat32.V2(0, 0), mat32.V2(1, 1), NewStroke(1, Black))
	l.EndMarker = mk
	cp := l.Clone().(*Line)
	assert.Same(t, mk, cp.EndMarker, "marker references are non-owning and shared")
}

func TestHiddenAndStyle(t *testing.T) {
	c := NewCircle(mat32.V2(0, 0), 2, DefaultFill(), NoStroke())
	c.Hidden = true
	c.Style = "cursor:pointer"
	out := c.XML(IdentityLayout(), nil)
	assert.Contains(t, out, `visibility="hidden" `)
	assert.Contains(t, out, `style="cursor:pointer" `)
}
