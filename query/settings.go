package query

import "github.com/leo-stone-dot/php_query_go/parsephp"

// SetSeparator changes the pair separator of n and of every child node
// materialized from it. The tree is decoded first, with the new separator;
// if that fails the old one is kept and the error wraps
// parsephp.ErrUnsupportedSeparator.
func (n *Node) SetSeparator(sep string) error {
	if sep == "" {
		sep = "&"
	}
	if sep == n.opts.Separator {
		return nil
	}
	old := n.opts.Separator
	n.opts.Separator = sep
	if err := n.ensureTree(); err != nil {
		n.opts.Separator = old
		return err
	}
	n.walk(func(c *Node) { c.opts.Separator = sep })
	n.log().Debug("separator changed", "from", old, "to", sep)
	n.touch()
	return nil
}

// SetSpaceEncoding changes how spaces are written by n and its child nodes.
func (n *Node) SetSpaceEncoding(enc parsephp.SpaceEncoding) error {
	if err := n.ensureTree(); err != nil {
		return err
	}
	if enc == n.opts.SpaceEncoding {
		return nil
	}
	n.opts.SpaceEncoding = enc
	n.walk(func(c *Node) { c.opts.SpaceEncoding = enc })
	n.log().Debug("space encoding changed", "to", enc)
	n.touch()
	return nil
}

// SetBoolRendering changes how booleans are serialized by n and its child
// nodes.
func (n *Node) SetBoolRendering(r parsephp.BoolRendering) error {
	if err := n.ensureTree(); err != nil {
		return err
	}
	if r == n.opts.BoolRendering {
		return nil
	}
	n.opts.BoolRendering = r
	n.walk(func(c *Node) { c.opts.BoolRendering = r })
	n.log().Debug("bool rendering changed", "to", r)
	n.touch()
	return nil
}
