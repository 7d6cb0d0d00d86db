package query

import "github.com/leo-stone-dot/php_query_go/parsephp"

// Item is the result of a lookup: nothing, a scalar, or a child node.
type Item struct {
	value parsephp.Value
	node  *Node
}

// Found reports whether the lookup hit an entry.
func (i Item) Found() bool {
	return i.node != nil || i.value.IsValid()
}

// IsNode reports whether the entry is nested.
func (i Item) IsNode() bool {
	return i.node != nil
}

// Node returns the child node, or nil for scalars and misses.
func (i Item) Node() *Node {
	return i.node
}

// Value returns the entry as a plain value. Nested entries are deep copies.
func (i Item) Value() parsephp.Value {
	if i.node != nil {
		return parsephp.Nested(i.node.tree.Clone())
	}
	return i.value
}

// String returns the scalar text with the default boolean rendering, or the
// query string of a child node. Misses yield "".
func (i Item) String() string {
	if i.node != nil {
		return i.node.Query()
	}
	return i.value.Str()
}
