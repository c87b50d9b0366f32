package depot

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
	op         Operation
	children   []QueryNode
	components []Component
}

type query struct {
	root QueryNode
}

func newQuery() Query {
	return &query{}
}

func newCompositeNode(op Operation, components []Component) *compositeNode {
	return &compositeNode{
		op:         op,
		children:   make([]QueryNode, 0),
		components: components,
	}
}

// nodeMask builds the bitset of the node's components. missing reports whether
// any component was never registered and so cannot be held by any archetype.
func (n *compositeNode) nodeMask(storage Storage) (nodeMask mask.Mask, missing bool) {
	registry := storage.Registry()
	for _, comp := range n.components {
		id, ok := comp.lookup(registry)
		if !ok {
			missing = true
			continue
		}
		nodeMask.Mark(uint32(id))
	}
	return nodeMask, missing
}

func (n *compositeNode) Evaluate(archetype Archetype, storage Storage) bool {
	nodeMask, missing := n.nodeMask(storage)
	archeMask := archetype.Mask()

	switch n.op {
	case OpAnd:
		if missing || !archeMask.ContainsAll(nodeMask) {
			return false
		}
		for _, child := range n.children {
			if !child.Evaluate(archetype, storage) {
				return false
			}
		}
		return true

	case OpOr:
		if archeMask.ContainsAny(nodeMask) {
			return true
		}
		for _, child := range n.children {
			if child.Evaluate(archetype, storage) {
				return true
			}
		}
		return false

	case OpNot:
		for _, child := range n.children {
			if child.Evaluate(archetype, storage) {
				return false
			}
		}
		return archeMask.ContainsNone(nodeMask)
	}
	return false
}

func (q *query) And(items ...interface{}) QueryNode {
	return q.node(OpAnd, items)
}

func (q *query) Or(items ...interface{}) QueryNode {
	return q.node(OpOr, items)
}

func (q *query) Not(items ...interface{}) QueryNode {
	return q.node(OpNot, items)
}

// node builds a node. The first node built becomes the query root.
func (q *query) node(op Operation, items []interface{}) QueryNode {
	components, children := q.processItems(items...)
	node := newCompositeNode(op, components)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) processItems(items ...interface{}) ([]Component, []QueryNode) {
	components := make([]Component, 0)
	children := make([]QueryNode, 0)

	for _, item := range items {
		switch v := item.(type) {
		case Component:
			components = append(components, v)
		case []Component:
			components = append(components, v...)
		case QueryNode:
			children = append(children, v)
		}
	}

	return components, children
}

func (q *query) Evaluate(archetype Archetype, storage Storage) bool {
	if q.root == nil {
		return false
	}
	return q.root.Evaluate(archetype, storage)
}
