package query

import (
	"iter"

	"github.com/leo-stone-dot/php_query_go/parsephp"
)

// Cursor walks the top-level entries of a node in order. Mutating the node
// while a cursor is open is allowed; the cursor then reads the new entries
// by position.
type Cursor struct {
	n   *Node
	pos int
}

// Cursor returns a cursor placed on the first entry.
func (n *Node) Cursor() (*Cursor, error) {
	if err := n.ensureTree(); err != nil {
		return nil, err
	}
	return &Cursor{n: n}, nil
}

// Rewind moves back to the first entry.
func (c *Cursor) Rewind() { c.pos = 0 }

// Valid reports whether the cursor is on an entry.
func (c *Cursor) Valid() bool { return c.pos < c.n.tree.Len() }

// Next advances to the following entry.
func (c *Cursor) Next() { c.pos++ }

// Key returns the key under the cursor. It panics when !Valid().
func (c *Cursor) Key() parsephp.Key {
	return c.n.tree.At(c.pos).Key
}

// Current returns a copy of the value under the cursor. It panics when
// !Valid().
func (c *Cursor) Current() parsephp.Value {
	return c.n.tree.At(c.pos).Value.Clone()
}

// All iterates from the current position to the end.
func (c *Cursor) All() iter.Seq2[parsephp.Key, parsephp.Value] {
	return func(yield func(parsephp.Key, parsephp.Value) bool) {
		for ; c.Valid(); c.Next() {
			if !yield(c.Key(), c.Current()) {
				return
			}
		}
	}
}
