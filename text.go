// Copyright (c) 2024, The svg-writer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"strings"

	"goki.dev/mat32/v2"
)

// TextAnchor is the horizontal alignment of a text element relative
// to its anchor point.
type TextAnchor int32

const (
	AnchorMiddle TextAnchor = iota
	AnchorStart
	AnchorEnd

	// AnchorNone omits the text-anchor attribute entirely.
	AnchorNone
)

func (ta TextAnchor) String() string {
	switch ta {
	case AnchorMiddle:
		return "middle"
	case AnchorStart:
		return "start"
	case AnchorEnd:
		return "end"
	}
	return ""
}

// Baseline is the vertical alignment of a text element relative to
// its anchor point.
type Baseline int32

const (
	BaselineMiddle Baseline = iota
	BaselineTextBottom
	BaselineAlphabetic
	BaselineIdeographic
	BaselineCentral
	BaselineMathematical
	BaselineHanging
	BaselineTextTop

	// BaselineNone omits the dominant-baseline attribute entirely.
	BaselineNone
)

func (bl Baseline) String() string {
	switch bl {
	case BaselineMiddle:
		return "middle"
	case BaselineTextBottom:
		return "text-bottom"
	case BaselineAlphabetic:
		return "alphabetic"
	case BaselineIdeographic:
		return "ideographic"
	case BaselineCentral:
		return "central"
	case BaselineMathematical:
		return "mathematical"
	case BaselineHanging:
		return "hanging"
	case BaselineTextTop:
		return "text-top"
	}
	return ""
}

// Text is an SVG text element, anchored at Pos and aligned per
// Anchor and Baseline (both centered by default).
type Text struct {
	SurfaceBase

	// Pos is the anchor point.
	Pos mat32.Vec2

	// Content is the rendered character data.
	Content string

	// Anchor is the horizontal alignment.
	Anchor TextAnchor

	// Baseline is the vertical alignment.
	Baseline Baseline

	// Font is the typeface and size.
	Font Font
}

// NewText returns a centered text element with the default font.
func NewText(pos mat32.Vec2, content string, fill Fill, stroke Stroke) *Text {
	if !validVec(pos) {
		nfDiag(nil, "NewText")
	}
	g := &Text{Pos: pos, Content: content, Font: DefaultFont()}
	g.Fill = fill
	g.Stroke = stroke
	return g
}

func (g *Text) SVGName() string { return "text" }

func (g *Text) XML(ly *Layout, ds *Diagnostics) string {
	if g.Content == "" {
		ds.Addf("svg: text element without content")
	}
	var sb strings.Builder
	sb.WriteString(elemStart("text"))
	sb.WriteString(g.idXML())
	if g.Anchor != AnchorNone {
		sb.WriteString(xmlAttr("text-anchor", g.Anchor.String()))
	}
	if g.Baseline != BaselineNone {
		sb.WriteString(xmlAttr("dominant-baseline", g.Baseline.String()))
	}
	sb.WriteString(xmlAttrF("x", ly.TranslateX(g.Pos.X)))
	sb.WriteString(xmlAttrF("y", ly.TranslateY(g.Pos.Y)))
	sb.WriteString(g.surfaceXML(ly, ds))
	sb.WriteString(g.Font.XML(ly))
	sb.WriteString(">")
	sb.WriteString(g.Content)
	sb.WriteString(elemEnd("text"))
	return sb.String()
}

func (g *Text) Offset(delta mat32.Vec2) {
	if !validVec(delta) {
		nfDiag(nil, "Text.Offset")
	}
	g.Pos.SetAdd(delta)
}

func (g *Text) Clone() Node {
	cp := *g
	cp.cloneBase()
	return &cp
}
