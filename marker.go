// Copyright (c) 2024, The svg-writer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"sort"
	"strings"

	"goki.dev/mat32/v2"
	"goki.dev/ordmap"
)

// Marker is an SVG marker definition: a small drawing (arrow head,
// dot, tick) referenced by id from line and polyline vertices. Marker
// shapes are always serialized in their own local coordinate system,
// untouched by the referencing document's layout.
type Marker struct {

	// Id is the reference name. A marker with an empty Id cannot be
	// serialized or attached.
	Id string

	// Size is the marker viewport (markerWidth, markerHeight).
	Size mat32.Vec2

	// RefPos is the anchor point within the marker (refX, refY).
	RefPos mat32.Vec2

	// Orient is the orientation: "auto", "auto-start-reverse", or a
	// fixed angle in degrees.
	Orient string

	// Shapes are the drawing elements, owned by the marker.
	Shapes []Node
}

// NewMarker returns a marker with the given id, viewport size, and
// anchor point, oriented automatically along the referencing segment.
func NewMarker(id string, size, refPos mat32.Vec2) *Marker {
	if !validVec(size) || !validVec(refPos) {
		nfDiag(nil, "NewMarker")
	}
	return &Marker{Id: id, Size: size, RefPos: refPos, Orient: "auto"}
}

// Valid reports whether the marker can be referenced.
func (mk *Marker) Valid() bool {
	return mk != nil && mk.Id != ""
}

// AddShape adds clones of the given shapes to the marker drawing,
// returning the marker for chaining.
func (mk *Marker) AddShape(shapes ...Node) *Marker {
	for _, sh := range shapes {
		mk.Shapes = append(mk.Shapes, sh.Clone())
	}
	return mk
}

// SetOrientation sets a keyword orientation; only "auto" and
// "auto-start-reverse" are accepted. Use SetOrientationAngle for
// fixed angles.
func (mk *Marker) SetOrientation(orient string) error {
	if orient != "auto" && orient != "auto-start-reverse" {
		return fmt.Errorf("svg: invalid marker orientation %q", orient)
	}
	mk.Orient = orient
	return nil
}

// SetOrientationAngle sets a fixed orientation angle in degrees.
func (mk *Marker) SetOrientationAngle(degrees float32) {
	if !validNum(degrees) {
		nfDiag(nil, "Marker.SetOrientationAngle")
	}
	mk.Orient = fmt.Sprintf("%g", degrees)
}

// Clone returns a deep copy of the marker and its shapes.
func (mk *Marker) Clone() *Marker {
	cp := *mk
	cp.Shapes = make([]Node, len(mk.Shapes))
	for i, sh := range mk.Shapes {
		cp.Shapes[i] = sh.Clone()
	}
	return &cp
}

// XML serializes the marker definition. The layout argument is
// accepted for symmetry but marker contents are always written in
// local coordinates. Serializing a marker without an id is an error.
func (mk *Marker) XML(ly *Layout, ds *Diagnostics) (string, error) {
	if !mk.Valid() {
		return "", fmt.Errorf("svg: cannot serialize marker without an id")
	}
	local := IdentityLayout()
	var sb strings.Builder
	sb.WriteString("\t\t<marker ")
	sb.WriteString(xmlAttr("id", mk.Id))
	sb.WriteString(xmlAttrF("markerWidth", mk.Size.X))
	sb.WriteString(xmlAttrF("markerHeight", mk.Size.Y))
	sb.WriteString(xmlAttrF("refX", mk.RefPos.X))
	sb.WriteString(xmlAttrF("refY", mk.RefPos.Y))
	sb.WriteString(xmlAttr("orient", mk.Orient))
	sb.WriteString(">\n")
	for i, sh := range mk.Shapes {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("\t\t")
		sb.WriteString(sh.XML(local, ds))
	}
	sb.WriteString("\t\t</marker>\n")
	return sb.String(), nil
}

// ContentEquals reports whether two markers draw the same thing,
// ignoring their ids: same viewport and anchor (within a small
// tolerance) and the same shape set regardless of order.
func (mk *Marker) ContentEquals(other *Marker) bool {
	if mk == nil || other == nil {
		return mk == other
	}
	if len(mk.Shapes) != len(other.Shapes) {
		return false
	}
	const eps = 1e-6
	if mat32.Abs(mk.Size.X-other.Size.X) > eps ||
		mat32.Abs(mk.Size.Y-other.Size.Y) > eps ||
		mat32.Abs(mk.RefPos.X-other.RefPos.X) > eps ||
		mat32.Abs(mk.RefPos.Y-other.RefPos.Y) > eps {
		return false
	}
	ly := DefaultLayout()
	a := make([]string, len(mk.Shapes))
	b := make([]string, len(other.Shapes))
	for i := range mk.Shapes {
		a[i] = mk.Shapes[i].XML(ly, nil)
		b[i] = other.Shapes[i].XML(ly, nil)
	}
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// MarkerBase carries the marker references of a line-like shape.
// References are non-owning: cloning the shape shares the markers.
type MarkerBase struct {

	// StartMarker is rendered at the first vertex.
	StartMarker *Marker

	// MidMarker is rendered at every interior vertex.
	MidMarker *Marker

	// EndMarker is rendered at the last vertex.
	EndMarker *Marker
}

// Markerable is a shape that references markers.
type Markerable interface {

	// UsedMarkers returns the distinct valid markers the shape
	// references, deduplicated by id, first reference winning.
	UsedMarkers() []*Marker
}

// markerXML emits the marker-start/mid/end reference attributes for
// whichever markers are set and valid.
func (mb *MarkerBase) markerXML() string {
	var sb strings.Builder
	if mb.StartMarker.Valid() {
		sb.WriteString(xmlAttr("marker-start", "url(#"+mb.StartMarker.Id+")"))
	}
	if mb.MidMarker.Valid() {
		sb.WriteString(xmlAttr("marker-mid", "url(#"+mb.MidMarker.Id+")"))
	}
	if mb.EndMarker.Valid() {
		sb.WriteString(xmlAttr("marker-end", "url(#"+mb.EndMarker.Id+")"))
	}
	return sb.String()
}

func (mb *MarkerBase) UsedMarkers() []*Marker {
	om := ordmap.Map[string, *Marker]{}
	for _, mk := range []*Marker{mb.StartMarker, mb.MidMarker, mb.EndMarker} {
		if !mk.Valid() {
			continue
		}
		if _, has := om.IdxByKeyTry(mk.Id); !has {
			om.Add(mk.Id, mk)
		}
	}
	used := make([]*Marker, 0, om.Len())
	for _, kv := range om.Order {
		used = append(used, kv.Val)
	}
	return used
}
