// Package query provides a mutable, nested view over a query string.
//
// A Node holds a canonical query string, its decoded tree, or both, and keeps
// them in sync lazily: reading a representation that is missing or stale
// computes it once and caches it. Nested values are navigated as child nodes
// that share their tree with the parent, so changing a child shows up in the
// serialized form of every ancestor.
//
// A Node is not safe for concurrent use. Callers sharing one between
// goroutines must serialize access themselves.
package query

import (
	"fmt"
	"log/slog"
	"weak"

	"github.com/leo-stone-dot/php_query_go/internal/debug"
	"github.com/leo-stone-dot/php_query_go/parsephp"
)

// state tells which representations of a node are cached and current.
type state uint8

const (
	// stateString: only the canonical string is known.
	stateString state = iota
	// stateTree: only the tree is known.
	stateTree
	// stateSynced: both are known and agree.
	stateSynced
	// stateDirty: the tree was changed after the string was computed.
	stateDirty
)

func (s state) String() string {
	switch s {
	case stateString:
		return "string"
	case stateTree:
		return "tree"
	case stateSynced:
		return "synced"
	}
	return "dirty"
}

// Node is a query string or a nested part of one.
type Node struct {
	raw   string
	tree  *parsephp.Tree
	state state
	opts  parsephp.Options

	// parent is set only on materialized children and never owns the parent.
	parent   weak.Pointer[Node]
	children map[parsephp.Key]*Node
	onDirty  func()
}

// FromString returns a node for a caller supplied query string. The string
// is canonicalized with parsephp.Encode right away; decoding is deferred
// until the tree is needed.
func FromString(raw string, opts ...Option) *Node {
	n := newNode(opts)
	n.raw = parsephp.Encode(raw, n.opts.SpaceEncoding)
	n.state = stateString
	return n
}

// FromTree returns a node holding a deep copy of t. The query string is
// computed on first use.
func FromTree(t *parsephp.Tree, opts ...Option) *Node {
	n := newNode(opts)
	n.tree = t.Clone()
	n.state = stateTree
	return n
}

func newNode(opts []Option) *Node {
	n := &Node{opts: parsephp.DefaultOptions}
	n.opts.Logger = debug.Logger()
	for _, o := range opts {
		o(n)
	}
	return n
}

// Query returns the canonical, percent-encoded query string. It is computed
// from the tree only when missing or stale, then cached; this clears the
// dirty flag of n but not of its ancestors.
func (n *Node) Query() string {
	switch n.state {
	case stateTree, stateDirty:
		n.raw = parsephp.Serialize(n.tree, n.opts)
		n.state = stateSynced
		n.log().Debug("serialized query", "length", len(n.raw), "separator", n.opts.Separator)
	}
	return n.raw
}

// QueryUnencodedBrackets is Query with literal '[' and ']', for reading.
func (n *Node) QueryUnencodedBrackets() string {
	return parsephp.UnencodeBrackets(n.Query())
}

// String implements fmt.Stringer with the canonical query string.
func (n *Node) String() string {
	return n.Query()
}

// Tree returns a plain deep copy of the tree. Child nodes never leak out.
func (n *Node) Tree() (*parsephp.Tree, error) {
	if err := n.ensureTree(); err != nil {
		return nil, err
	}
	return n.tree.Clone(), nil
}

// Dirty reports whether the tree changed after the query string was last
// computed.
func (n *Node) Dirty() bool {
	return n.state == stateDirty
}

// Parent returns the node n was materialized from, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent.Value()
}

// Separator returns the configured pair separator.
func (n *Node) Separator() string { return n.opts.Separator }

// SpaceEncoding returns the configured space encoding.
func (n *Node) SpaceEncoding() parsephp.SpaceEncoding { return n.opts.SpaceEncoding }

// BoolRendering returns the configured boolean rendering.
func (n *Node) BoolRendering() parsephp.BoolRendering { return n.opts.BoolRendering }

// ensureTree decodes the cached string when no tree is known yet.
func (n *Node) ensureTree() error {
	if n.state != stateString {
		return nil
	}
	opts := n.opts
	if !debug.Decode() {
		opts.Logger = nil
	}
	t, err := parsephp.Decode(n.raw, opts)
	if err != nil {
		return fmt.Errorf("decode query: %w", err)
	}
	n.log().Debug("decoded query", "length", len(n.raw), "entries", t.Len())
	n.tree = t
	n.state = stateSynced
	return nil
}

// lookup converts key and makes sure the tree is available.
func (n *Node) lookup(key any) (parsephp.Key, error) {
	k, err := parsephp.KeyOf(key)
	if err != nil {
		return parsephp.Key{}, err
	}
	if err := n.ensureTree(); err != nil {
		return parsephp.Key{}, err
	}
	return k, nil
}

func (n *Node) log() *slog.Logger {
	if n.opts.Logger == nil {
		return debug.Logger()
	}
	return n.opts.Logger
}
