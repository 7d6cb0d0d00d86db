package query

import (
	"log/slog"

	"github.com/leo-stone-dot/php_query_go/parsephp"
)

// Option configures a root node at construction.
type Option func(*Node)

// WithSeparator sets the pair separator. Decoding only supports "&"; a node
// built from a string with another separator fails on first tree access.
func WithSeparator(sep string) Option {
	return func(n *Node) {
		if sep == "" {
			sep = "&"
		}
		n.opts.Separator = sep
	}
}

// WithSpaceEncoding sets how spaces are written.
func WithSpaceEncoding(enc parsephp.SpaceEncoding) Option {
	return func(n *Node) { n.opts.SpaceEncoding = enc }
}

// WithBoolRendering sets how booleans are serialized.
func WithBoolRendering(r parsephp.BoolRendering) Option {
	return func(n *Node) { n.opts.BoolRendering = r }
}

// WithLogger sets the logger; children inherit it.
func WithLogger(l *slog.Logger) Option {
	return func(n *Node) { n.opts.Logger = l }
}

// WithDirtyHook registers fn as the dirty hook, see Node.OnDirty.
func WithDirtyHook(fn func()) Option {
	return func(n *Node) { n.onDirty = fn }
}
