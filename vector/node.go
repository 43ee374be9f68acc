// Copyright 2026 The drawkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package vector

import (
	"strconv"

	"github.com/drawkit/drawkit"
)

// attr is a single presentation attribute. Attributes keep insertion
// order so serialized markup is deterministic.
type attr struct {
	key   string
	value string
}

// Node is a persistent shape node and the backend's drawkit.Shape handle.
// It is owned by the caller, who may restyle or remove it after creation.
type Node struct {
	name  string
	attrs []attr
	surf  *Surface
}

var _ drawkit.Shape = (*Node)(nil)

// Name returns the element name ("circle", "rect", ...).
func (n *Node) Name() string { return n.name }

// Attr returns the value of a presentation attribute.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.attrs {
		if a.key == key {
			return a.value, true
		}
	}
	return "", false
}

// setAttr sets or replaces an attribute, keeping insertion order.
func (n *Node) setAttr(key, value string) {
	for i, a := range n.attrs {
		if a.key == key {
			n.attrs[i].value = value
			return
		}
	}
	n.attrs = append(n.attrs, attr{key: key, value: value})
}

// removeAttr deletes an attribute if present.
func (n *Node) removeAttr(key string) {
	for i, a := range n.attrs {
		if a.key == key {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return
		}
	}
}

// Restyle replaces the node's style attributes, resolving the descriptor
// through the shared style path. Geometry attributes are untouched.
func (n *Node) Restyle(style drawkit.Style) error {
	rs, err := style.Resolve()
	if err != nil {
		return err
	}
	n.applyStyle(rs)
	return nil
}

// Remove detaches the node from its surface. Removing an already
// detached node is a no-op.
func (n *Node) Remove() {
	if n.surf == nil {
		return
	}
	n.surf.removeChild(n)
	n.surf = nil
}

// applyStyle writes the resolved style as presentation attributes.
//
// Width, join and cap are written unconditionally; the stroke color
// attribute is only present when there is a stroke paint. Fill defaults
// to the explicit "none".
func (n *Node) applyStyle(rs drawkit.Resolved) {
	if rs.HasFill {
		n.setAttr("fill", rs.Fill.String())
	} else {
		n.setAttr("fill", "none")
	}
	if rs.HasStroke {
		n.setAttr("stroke", rs.Stroke.String())
	} else {
		n.removeAttr("stroke")
	}
	n.setAttr("stroke-width", formatNum(rs.LineWidth))
	n.setAttr("stroke-linejoin", rs.LineJoin.String())
	n.setAttr("stroke-linecap", rs.LineCap.String())
}

// formatNum renders a coordinate or length with the shortest exact form.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
