package parsephp

import "strings"

// Serialize renders t as a query string with http_build_query semantics:
// entries in order, nested trees with bracket syntax (a%5Bb%5D%5B0%5D=x),
// pairs joined by opts.Separator. Keys and scalars are escaped strictly, so
// Decode(Serialize(t)) reproduces t for trees this package produces.
// Invalid values and empty nested trees produce no pair.
func Serialize(t *Tree, opts Options) string {
	var pairs []string
	for _, e := range t.Entries() {
		pairs = appendPairs(pairs, escapeComponent(e.Key.String(), opts.SpaceEncoding), e.Value, opts)
	}
	return strings.Join(pairs, opts.separator())
}

// appendPairs renders v under the already escaped prefix.
func appendPairs(pairs []string, prefix string, v Value, opts Options) []string {
	switch v.kind {
	case KindInvalid:
		return pairs
	case KindNested:
		for _, e := range v.tree.Entries() {
			sub := prefix + "%5B" + escapeComponent(e.Key.String(), opts.SpaceEncoding) + "%5D"
			pairs = appendPairs(pairs, sub, e.Value, opts)
		}
		return pairs
	}
	return append(pairs, prefix+"="+escapeComponent(v.Render(opts.BoolRendering), opts.SpaceEncoding))
}
