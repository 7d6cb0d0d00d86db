package query

import "github.com/leo-stone-dot/php_query_go/parsephp"

// Get returns the entry stored under key. Nested entries come back as child
// nodes; asking twice for the same entry returns the same node. key may be a
// string, any integer type or a parsephp.Key.
func (n *Node) Get(key any) (Item, error) {
	k, err := n.lookup(key)
	if err != nil {
		return Item{}, err
	}
	return n.item(k), nil
}

func (n *Node) item(k parsephp.Key) Item {
	v, ok := n.tree.Get(k)
	if !ok {
		return Item{}
	}
	if v.IsNested() {
		return Item{node: n.child(k, v.Tree())}
	}
	return Item{value: v}
}

// Has reports whether key is present.
func (n *Node) Has(key any) (bool, error) {
	k, err := n.lookup(key)
	if err != nil {
		return false, err
	}
	return n.tree.Has(k), nil
}

// IsNested reports whether key holds a nested value. Missing keys are not
// nested.
func (n *Node) IsNested(key any) (bool, error) {
	k, err := n.lookup(key)
	if err != nil {
		return false, err
	}
	v, _ := n.tree.Get(k)
	return v.IsNested(), nil
}

// IsScalar reports whether key holds a scalar. Missing keys are not scalar.
func (n *Node) IsScalar(key any) (bool, error) {
	k, err := n.lookup(key)
	if err != nil {
		return false, err
	}
	v, _ := n.tree.Get(k)
	return v.IsScalar(), nil
}

// First returns the first entry in order, or a miss when n is empty.
func (n *Node) First() (Item, error) {
	if err := n.ensureTree(); err != nil {
		return Item{}, err
	}
	if n.tree.Len() == 0 {
		return Item{}, nil
	}
	return n.item(n.tree.At(0).Key), nil
}

// Last returns the last entry in order, or a miss when n is empty.
func (n *Node) Last() (Item, error) {
	if err := n.ensureTree(); err != nil {
		return Item{}, err
	}
	if n.tree.Len() == 0 {
		return Item{}, nil
	}
	return n.item(n.tree.At(n.tree.Len() - 1).Key), nil
}

// FirstOf returns the first element of the value under key. A scalar is its
// own first element; a missing key is a miss.
func (n *Node) FirstOf(key any) (Item, error) {
	it, err := n.Get(key)
	if err != nil || !it.IsNode() {
		return it, err
	}
	return it.node.First()
}

// LastOf returns the last element of the value under key, with the rules of
// FirstOf.
func (n *Node) LastOf(key any) (Item, error) {
	it, err := n.Get(key)
	if err != nil || !it.IsNode() {
		return it, err
	}
	return it.node.Last()
}
