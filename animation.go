// Copyright (c) 2024, The svg-writer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"strings"

	"goki.dev/mat32/v2"
)

// Animation is the interface for SMIL animation elements attached to
// a document. Animations reference their target shape by id via Href.
type Animation interface {

	// XML returns the serialized animation element.
	XML(ly *Layout, ds *Diagnostics) string

	// Clone returns a deep copy of the animation.
	Clone() Animation

	// AsAnimationBase returns the [AnimationBase], giving access to the
	// common animation state.
	AsAnimationBase() *AnimationBase
}

// AnimationBase is the state shared by every animation element.
type AnimationBase struct {

	// Id is the optional element identifier.
	Id string

	// Href is the id of the target shape, without the leading '#'.
	Href string

	// Begin is the start time expression (e.g. "1s", "click");
	// omitted when empty.
	Begin string

	// Fill is the SMIL fill mode ("freeze", "remove"); omitted when
	// empty.
	Fill string

	// Dur is the duration (e.g. "5s"); omitted when empty.
	Dur string
}

func (ab *AnimationBase) AsAnimationBase() *AnimationBase { return ab }

// baseXML returns the attribute fragment shared by all animations.
// A missing target reference is reported but still serialized, so the
// problem is visible in the output.
func (ab *AnimationBase) baseXML(ds *Diagnostics) string {
	if ab.Href == "" {
		ds.Addf("svg: animation without target href (id=%q)", ab.Id)
	}
	var sb strings.Builder
	if ab.Id != "" {
		sb.WriteString(xmlAttr("id", ab.Id))
	}
	sb.WriteString(xmlAttr("href", "#"+ab.Href))
	if ab.Begin != "" {
		sb.WriteString(xmlAttr("begin", ab.Begin))
	}
	if ab.Fill != "" {
		sb.WriteString(xmlAttr("fill", ab.Fill))
	}
	if ab.Dur != "" {
		sb.WriteString(xmlAttr("dur", ab.Dur))
	}
	return sb.String()
}

// SetAttribute is a SMIL set element: it sets one attribute of its
// target to a fixed value when triggered.
type SetAttribute struct {
	AnimationBase

	// To is the value assigned to the attribute.
	To string

	// AttributeName names the attribute to set.
	AttributeName string

	// AttributeType is the attribute namespace; defaults to "CSS".
	AttributeType string
}

// NewSetAttribute returns a set animation targeting the shape with
// the given id.
func NewSetAttribute(href, attributeName, to string) *SetAttribute {
	a := &SetAttribute{To: to, AttributeName: attributeName, AttributeType: "CSS"}
	a.Href = href
	return a
}

func (a *SetAttribute) XML(ly *Layout, ds *Diagnostics) string {
	if a.AttributeName == "" {
		ds.Addf("svg: set animation without attributeName (id=%q)", a.Id)
	}
	var sb strings.Builder
	sb.WriteString(elemStart("set"))
	sb.WriteString(a.baseXML(ds))
	sb.WriteString(xmlAttr("to", a.To))
	sb.WriteString(xmlAttr("attributeName", a.AttributeName))
	at := a.AttributeType
	if at == "" {
		at = "CSS"
	}
	sb.WriteString(xmlAttr("attributeType", at))
	sb.WriteString(emptyElemEnd)
	return sb.String()
}

func (a *SetAttribute) Clone() Animation {
	cp := *a
	return &cp
}

// AnimateMotion is a SMIL animateMotion element: it moves its target
// along a polygonal path. Path points are relative motion deltas and
// are written untransformed, not mapped through the document layout.
type AnimateMotion struct {
	AnimationBase

	// Points are the motion path waypoints.
	Points []mat32.Vec2
}

// NewAnimateMotion returns a motion animation targeting the shape
// with the given id, following the given waypoints (which are copied).
func NewAnimateMotion(href string, points []mat32.Vec2) *AnimateMotion {
	for _, p := range points {
		if !validVec(p) {
			nfDiag(nil, "NewAnimateMotion")
			break
		}
	}
	a := &AnimateMotion{Points: append([]mat32.Vec2(nil), points...)}
	a.Href = href
	return a
}

func (a *AnimateMotion) XML(ly *Layout, ds *Diagnostics) string {
	if len(a.Points) == 0 {
		ds.Addf("svg: animateMotion without path points (id=%q)", a.Id)
	}
	var sb strings.Builder
	sb.WriteString(elemStart("animateMotion"))
	sb.WriteString(a.baseXML(ds))
	sb.WriteString(`path="`)
	for i, p := range a.Points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&sb, "%s%g,%g", cmd, p.X, p.Y)
		if i < len(a.Points)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString(`" `)
	sb.WriteString(emptyElemEnd)
	return sb.String()
}

func (a *AnimateMotion) Clone() Animation {
	cp := *a
	cp.Points = append([]mat32.Vec2(nil), a.Points...)
	return &cp
}
