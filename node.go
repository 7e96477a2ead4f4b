// Copyright (c) 2024, The svg-writer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"strings"

	"goki.dev/mat32/v2"
)

// Node is the interface for all renderable SVG elements.
type Node interface {

	// SVGName returns the SVG element name (e.g., "circle").
	SVGName() string

	// XML returns the serialized element for the given layout,
	// reporting any non-fatal problems to ds (which may be nil to
	// only log them).
	XML(ly *Layout, ds *Diagnostics) string

	// Offset translates all geometry of the node by delta, in user
	// coordinates, in place.
	Offset(delta mat32.Vec2)

	// Clone returns a deep copy of the node. Marker references are
	// shared, not copied: they are non-owning by contract.
	Clone() Node

	// AsNodeBase returns the [NodeBase], giving access to the common
	// shape state without interface methods.
	AsNodeBase() *NodeBase
}

// NodeBase is the state shared by every shape. It implements the
// non-geometric parts of [Node].
type NodeBase struct {

	// Id is the optional element identifier, unique within a document
	// by convention. Empty omits the id attribute entirely.
	Id string

	// Z is the paint order of the element within its document.
	// The default 0 preserves insertion order: a shape added after
	// another is drawn over it, per the SVG later-wins convention.
	// Any non-zero Z overrides insertion order by ascending stable
	// sort, so negative Z paints below all default shapes.
	Z int

	// Stroke is the outline style; the NoStroke default draws none.
	Stroke Stroke

	// Style is free-form CSS emitted as a style attribute when
	// non-empty.
	Style string

	// Hidden suppresses rendering via visibility="hidden" without
	// removing the element from the document.
	Hidden bool
}

func (g *NodeBase) AsNodeBase() *NodeBase { return g }

// cloneBase gives the base its own copies of slice-bearing state,
// after a shallow struct copy of the containing shape.
func (g *NodeBase) cloneBase() {
	if g.Stroke.DashArray != nil {
		g.Stroke.DashArray = append([]int(nil), g.Stroke.DashArray...)
	}
}

// idXML returns the id attribute, or nothing for an unidentified node.
func (g *NodeBase) idXML() string {
	if g.Id == "" {
		return ""
	}
	return xmlAttr("id", g.Id)
}

// baseXML returns the attribute fragment shared by all shapes:
// stroke, style, visibility, in that order.
func (g *NodeBase) baseXML(ly *Layout, ds *Diagnostics) string {
	var sb strings.Builder
	sb.WriteString(g.Stroke.XML(ly))
	if g.Style != "" {
		sb.WriteString(xmlAttr("style", g.Style))
	}
	if g.Hidden {
		sb.WriteString(xmlAttr("visibility", "hidden"))
	}
	return sb.String()
}

// SurfaceBase extends NodeBase with a fill, for the closed shapes
// (Circle, Ellipse, Rect, Polygon, Path, Text).
type SurfaceBase struct {
	NodeBase

	// Fill styles the shape interior; the default is fully
	// transparent.
	Fill Fill
}

// surfaceXML returns the shared fragment plus the fill attributes.
func (g *SurfaceBase) surfaceXML(ly *Layout, ds *Diagnostics) string {
	return g.baseXML(ly, ds) + g.Fill.XML(ly)
}
