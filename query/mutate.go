package query

import "github.com/leo-stone-dot/php_query_go/parsephp"

// Set stores v under key, replacing any previous value. A nested v is copied
// and becomes a child node right away. An invalid v removes key.
func (n *Node) Set(key any, v parsephp.Value) error {
	k, err := n.lookup(key)
	if err != nil {
		return err
	}
	n.forget(k)
	switch {
	case !v.IsValid():
		n.tree.Delete(k)
	case v.IsNested():
		c := v.Clone()
		n.tree.Set(k, c)
		n.child(k, c.Tree())
	default:
		n.tree.Set(k, v)
	}
	n.touch()
	return nil
}

// AppendTo adds v to the value under key.
//
// A missing key starts out as an empty array and a scalar is first wrapped
// into a one element array. A scalar v is then pushed under the next free
// index and the elements of a positional v are pushed one by one. For an
// associative v each entry is merged by key: new keys are added, an existing
// nested value gets the entry pushed and an existing scalar becomes a list
// of the old and new value.
func (n *Node) AppendTo(key any, v parsephp.Value) error {
	k, err := n.lookup(key)
	if err != nil {
		return err
	}
	if !v.IsValid() {
		return nil
	}
	var base *parsephp.Tree
	switch cur, ok := n.tree.Get(k); {
	case !ok:
		base = parsephp.NewTree()
	case cur.IsNested():
		base = cur.Tree().Clone()
	default:
		base = parsephp.List(cur)
	}
	appendValue(base, v)
	n.forget(k)
	n.tree.Set(k, parsephp.Nested(base))
	n.child(k, base)
	n.touch()
	return nil
}

func appendValue(t *parsephp.Tree, v parsephp.Value) {
	if v.IsScalar() {
		t.Push(v)
		return
	}
	in := v.Tree()
	if in.IsList() {
		for _, e := range in.Entries() {
			t.Push(e.Value.Clone())
		}
		return
	}
	for _, e := range in.Entries() {
		val := e.Value.Clone()
		cur, ok := t.Get(e.Key)
		switch {
		case !ok:
			t.Set(e.Key, val)
		case cur.IsNested():
			cur.Tree().Push(val)
		default:
			t.Set(e.Key, parsephp.Nested(parsephp.List(cur, val)))
		}
	}
}

// Remove deletes key. A missing key is a no-op and fires no hook.
func (n *Node) Remove(key any) error {
	k, err := n.lookup(key)
	if err != nil {
		return err
	}
	if !n.tree.Has(k) {
		return nil
	}
	n.forget(k)
	n.tree.Delete(k)
	n.touch()
	return nil
}

// RemoveValueFrom deletes every scalar element equal to v from the nested
// value under key. A positional array is renumbered afterwards. Nothing
// happens when key is missing, holds a scalar or contains no such element.
func (n *Node) RemoveValueFrom(key any, v parsephp.Value) error {
	it, err := n.Get(key)
	if err != nil || !it.IsNode() {
		return err
	}
	c := it.node
	wasList := c.tree.IsList()
	removed := false
	for _, e := range c.tree.Entries() {
		if e.Value.IsScalar() && e.Value.Equal(v) {
			c.tree.Delete(e.Key)
			removed = true
		}
	}
	if !removed {
		return nil
	}
	if wasList {
		c.tree.Reindex()
		c.syncChildren()
	}
	c.markDirty()
	n.notify()
	return nil
}

// Filter keeps the entries for which keep returns true. keep sees copies;
// kept entries stay untouched and keep their child nodes.
func (n *Node) Filter(keep func(parsephp.Value, parsephp.Key) bool) error {
	if err := n.ensureTree(); err != nil {
		return err
	}
	var kept []parsephp.Entry
	for _, e := range n.tree.Entries() {
		if keep(e.Value.Clone(), e.Key) {
			kept = append(kept, e)
		}
	}
	n.tree.Replace(kept)
	n.syncChildren()
	n.touch()
	return nil
}

// Map replaces every value with fn of a copy of it. Entries for which fn
// returns an invalid value are dropped. Existing child nodes are detached.
func (n *Node) Map(fn func(parsephp.Value) parsephp.Value) error {
	if err := n.ensureTree(); err != nil {
		return err
	}
	var out []parsephp.Entry
	for _, e := range n.tree.Entries() {
		v := fn(e.Value.Clone())
		if !v.IsValid() {
			continue
		}
		out = append(out, parsephp.Entry{Key: e.Key, Value: v.Clone()})
	}
	for k := range n.children {
		n.forget(k)
	}
	n.tree.Replace(out)
	n.touch()
	return nil
}
