package ecs

import (
	"github.com/TheBitDrifter/mask"
)

type Operation int

const (
	OpAnd Operation = iota
	OpOr
	OpNot
)

type compositeNode struct {
	op       Operation
	children []QueryNode
	types    []ComponentType
}

type query struct {
	root QueryNode
}

func newQuery() Query {
	return &query{}
}

func newCompositeNode(op Operation, types []ComponentType) *compositeNode {
	return &compositeNode{
		op:       op,
		children: make([]QueryNode, 0),
		types:    types,
	}
}

// nodeMask builds the mask for the node's component tokens at evaluation
// time. ok is false when a token's type has never been registered, in which
// case no entity can own it.
func nodeMask(reg *Registry, types []ComponentType) (m mask.Mask, ok bool) {
	ok = true
	for _, ct := range types {
		slot, registered := reg.slotFor(ct.t)
		if !registered {
			ok = false
			continue
		}
		m.Mark(slot.bit)
	}
	return m, ok
}

func (n *compositeNode) Evaluate(m mask.Mask, reg *Registry) bool {
	nm, allRegistered := nodeMask(reg, n.types)

	switch n.op {
	case OpAnd:
		// An unregistered type can be owned by nothing.
		if !allRegistered || !m.ContainsAll(nm) {
			return false
		}
		for _, child := range n.children {
			if !child.Evaluate(m, reg) {
				return false
			}
		}
		return true

	case OpOr:
		if m.ContainsAny(nm) {
			return true
		}
		for _, child := range n.children {
			if child.Evaluate(m, reg) {
				return true
			}
		}
		return false

	case OpNot:
		if len(n.children) == 0 {
			return m.ContainsNone(nm)
		}
		for _, child := range n.children {
			if child.Evaluate(m, reg) {
				return false
			}
		}
		return m.ContainsNone(nm)
	}
	return false
}

func (q *query) And(items ...interface{}) QueryNode {
	types, children := q.processItems(items...)
	node := newCompositeNode(OpAnd, types)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) Or(items ...interface{}) QueryNode {
	types, children := q.processItems(items...)
	node := newCompositeNode(OpOr, types)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) Not(items ...interface{}) QueryNode {
	types, children := q.processItems(items...)
	node := newCompositeNode(OpNot, types)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) processItems(items ...interface{}) ([]ComponentType, []QueryNode) {
	types := make([]ComponentType, 0)
	children := make([]QueryNode, 0)

	for _, item := range items {
		switch v := item.(type) {
		case ComponentType:
			types = append(types, v)
		case []ComponentType:
			types = append(types, v...)
		case QueryNode:
			children = append(children, v)
		}
	}

	return types, children
}

func (q *query) Evaluate(m mask.Mask, reg *Registry) bool {
	if q.root == nil {
		return false
	}
	return q.root.Evaluate(m, reg)
}
