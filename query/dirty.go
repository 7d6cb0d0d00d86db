package query

import (
	"weak"

	"github.com/leo-stone-dot/php_query_go/parsephp"
)

// OnDirty registers fn to be called once after every mutating operation
// invoked on n, after n and its ancestors were marked dirty. Mutations made
// through a child fire the child's hook, not this one. A nil fn removes the
// hook.
func (n *Node) OnDirty(fn func()) *Node {
	n.onDirty = fn
	return n
}

// touch finishes a mutation invoked on n.
func (n *Node) touch() {
	n.markDirty()
	n.notify()
}

// markDirty marks n and every ancestor dirty.
func (n *Node) markDirty() {
	for p := n; p != nil; p = p.Parent() {
		p.state = stateDirty
	}
}

func (n *Node) notify() {
	if n.onDirty != nil {
		n.onDirty()
	}
}

// child returns the node wrapping t stored under k, materializing it once.
// The child shares t with n.
func (n *Node) child(k parsephp.Key, t *parsephp.Tree) *Node {
	if c, ok := n.children[k]; ok {
		if c.tree == t {
			return c
		}
		c.detach()
	}
	c := &Node{
		tree:   t,
		state:  stateTree,
		opts:   n.opts,
		parent: weak.Make(n),
	}
	if n.children == nil {
		n.children = make(map[parsephp.Key]*Node)
	}
	n.children[k] = c
	return c
}

// forget detaches the child stored under k, if any.
func (n *Node) forget(k parsephp.Key) {
	if c, ok := n.children[k]; ok {
		c.detach()
		delete(n.children, k)
	}
}

// syncChildren re-keys children after entries moved, matching them by tree
// identity, and detaches the ones whose tree is gone.
func (n *Node) syncChildren() {
	if len(n.children) == 0 {
		return
	}
	byTree := make(map[*parsephp.Tree]*Node, len(n.children))
	for _, c := range n.children {
		byTree[c.tree] = c
	}
	n.children = make(map[parsephp.Key]*Node, len(byTree))
	for _, e := range n.tree.Entries() {
		if !e.Value.IsNested() {
			continue
		}
		if c, ok := byTree[e.Value.Tree()]; ok {
			n.children[e.Key] = c
			delete(byTree, e.Value.Tree())
		}
	}
	for _, c := range byTree {
		c.detach()
	}
}

// detach cuts the link to the parent so later changes stay local.
func (n *Node) detach() {
	n.parent = weak.Pointer[Node]{}
}

// walk calls fn on every materialized descendant of n and marks it dirty.
func (n *Node) walk(fn func(*Node)) {
	for _, c := range n.children {
		fn(c)
		c.state = stateDirty
		c.walk(fn)
	}
}
