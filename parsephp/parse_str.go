package parsephp

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// Dots and spaces in top-level keys are swapped for these tokens before the
// structural pass, which would otherwise fold them into '_'. Neither token
// contains a character the key grammar rewrites.
const (
	dotSentinel   = "\x1fqs-dot\x1f"
	spaceSentinel = "\x1fqs-space\x1f"
)

// keyFixPattern finds a top-level key body holding a dot or a space in any
// of its encodings.
var keyFixPattern = regexp.MustCompile(`(?:^|&)[^=&\[]*(?:\.| |\+|%20|%2[Ee])`)

var (
	protectReplacer = strings.NewReplacer(
		".", dotSentinel,
		"%2E", dotSentinel,
		"%2e", dotSentinel,
		" ", spaceSentinel,
		"+", spaceSentinel,
		"%20", spaceSentinel,
	)
	restoreReplacer = strings.NewReplacer(dotSentinel, ".", spaceSentinel, " ")
	mangleReplacer  = strings.NewReplacer(" ", "_", ".", "_")
)

// ParseStr decodes a canonical query string using DefaultOptions.
func ParseStr(query string) (*Tree, error) {
	return Decode(query, DefaultOptions)
}

// Decode parses a canonical query string into an ordered tree with PHP
// parse_str semantics, fixing its defects:
//   - Keys and values are decoded with application/x-www-form-urlencoded
//     rules, leniently: malformed escapes are kept literally
//   - Bracket tokens build nested trees (key[], key[0], key[sub], nested)
//   - A top-level key repeated with at least one plain occurrence is promoted
//     to a positional array instead of last-wins
//   - Dots and spaces in top-level keys are kept instead of becoming '_'
//
// Only "&" is supported as separator; anything else fails with
// ErrUnsupportedSeparator and no tree.
func Decode(query string, opts Options) (*Tree, error) {
	if sep := opts.separator(); sep != "&" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSeparator, sep)
	}
	unbracketed := UnencodeBrackets(query)
	if !keyFixPattern.MatchString(unbracketed) {
		return parseStr(query), nil
	}
	opts.debug("protecting dots and spaces in keys", "length", len(query))
	t := parseStr(protectKeys(unbracketed))
	restoreKeys(t)
	return t, nil
}

// protectKeys replaces dots and spaces in the base name of every pair.
func protectKeys(query string) string {
	pairs := strings.Split(query, "&")
	for i, raw := range pairs {
		end := strings.IndexAny(raw, "=[")
		if end < 0 {
			end = len(raw)
		}
		pairs[i] = protectReplacer.Replace(raw[:end]) + raw[end:]
	}
	return strings.Join(pairs, "&")
}

// restoreKeys reverts protectKeys on the top-level keys of t, in place.
func restoreKeys(t *Tree) {
	for _, k := range t.Keys() {
		if k.isInt || !strings.Contains(k.str, "\x1f") {
			continue
		}
		t.Rename(k, StringKey(restoreReplacer.Replace(k.str)))
	}
}

// occurrence is one pair of the query after key tokenization.
type occurrence struct {
	tokens []string
	value  string
}

// group collects the occurrences of one top-level key.
type group struct {
	key  Key
	occs []occurrence
}

// promoted reports whether the key repeats with at least one plain
// occurrence.
func (g *group) promoted() bool {
	if len(g.occs) < 2 {
		return false
	}
	for _, o := range g.occs {
		if len(o.tokens) == 0 {
			return true
		}
	}
	return false
}

func parseStr(query string) *Tree {
	root := NewTree()
	if query == "" {
		return root
	}

	var groups []*group
	byKey := make(map[Key]*group)
	for _, raw := range strings.Split(query, "&") {
		if raw == "" {
			// ignore completely empty pairs (e.g., leading/trailing separators or double separators)
			continue
		}
		k, v := splitPair(raw)
		base, tokens, ok := tokenizeKey(decode(k))
		if !ok {
			continue
		}
		g := byKey[base]
		if g == nil {
			g = &group{key: base}
			byKey[base] = g
			groups = append(groups, g)
		}
		g.occs = append(g.occs, occurrence{tokens: tokens, value: decode(v)})
	}

	for _, g := range groups {
		if g.promoted() {
			root.Set(g.key, Nested(promote(g.occs)))
			continue
		}
		for _, o := range g.occs {
			assign(root, g.key, o.tokens, o.value)
		}
	}
	return root
}

// promote builds the positional array of a repeated key. Plain occurrences
// push their scalar; occurrences starting with [] or [n] apply to the array
// itself; occurrences starting with [name] fill an associative element that
// consecutive associative occurrences share.
func promote(occs []occurrence) *Tree {
	list := NewTree()
	var assoc *Tree
	for _, o := range occs {
		switch {
		case len(o.tokens) == 0:
			list.Push(String(o.value))
			assoc = nil
		case o.tokens[0] == "" || StringKey(o.tokens[0]).isInt:
			insert(list, o.tokens, o.value)
			assoc = nil
		default:
			if assoc == nil {
				assoc = NewTree()
				list.Push(Nested(assoc))
			}
			insert(assoc, o.tokens, o.value)
		}
	}
	return list
}

// splitPair splits a raw pair into key and value, only on the first '='.
// A pair without '=' has an empty value.
func splitPair(s string) (string, string) {
	if i := strings.IndexByte(s, '='); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

// decode applies application/x-www-form-urlencoded rules leniently: invalid
// percent sequences are left as literal characters.
func decode(s string) string {
	// Try fast path
	d, err := url.QueryUnescape(s)
	if err == nil {
		return d
	}
	return lenientDecode(s)
}

// lenientDecode performs application/x-www-form-urlencoded decoding without failing on malformed escapes.
// '+' -> space; valid %XX hex are decoded; invalid '%' sequences are kept literally.
func lenientDecode(s string) string {
	var out []byte
	b := []byte(s)
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch c {
		case '+':
			out = append(out, ' ')
		case '%':
			if i+2 < len(b) && isHex(b[i+1]) && isHex(b[i+2]) {
				v, _ := strconv.ParseUint(string(b[i+1:i+3]), 16, 8)
				out = append(out, byte(v))
				i += 2
			} else {
				// invalid percent; keep literal '%'
				out = append(out, '%')
			}
		default:
			out = append(out, c)
		}
	}
	return string(out)
}

// tokenizeKey splits a decoded key like "a[b][c]" into base "a" and tokens
// ["b", "c"], following PHP's variable registration:
//   - leading spaces are skipped
//   - in the base name, spaces and dots become '_'
//   - if the first '[' has no matching ']', it becomes '_' and the rest of
//     the key is taken literally: "p[q" -> "p_q"
//   - after a ']' parsing continues only at a '['; "a[b]x[c]" -> a, [b]
//   - an unmatched '[' at a deeper level drops the rest
//
// Empty brackets produce an empty token (append). ok is false for an empty
// base name.
func tokenizeKey(s string) (base Key, tokens []string, ok bool) {
	s = strings.TrimLeft(s, " ")
	open := strings.IndexByte(s, '[')
	if open < 0 {
		name := mangleReplacer.Replace(s)
		return StringKey(name), nil, name != ""
	}
	name := mangleReplacer.Replace(s[:open])
	if name == "" {
		return Key{}, nil, false
	}
	if strings.IndexByte(s[open+1:], ']') < 0 {
		return StringKey(name + "_" + s[open+1:]), nil, true
	}
	rest := s[open:]
	for len(rest) > 0 && rest[0] == '[' {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			break
		}
		tokens = append(tokens, rest[1:end])
		rest = rest[end+1:]
	}
	return StringKey(name), tokens, true
}

// assign stores value under key in parent following tokens. Without tokens
// it is a plain assignment, last wins.
func assign(parent *Tree, key Key, tokens []string, value string) {
	if len(tokens) == 0 {
		parent.Set(key, String(value))
		return
	}
	insert(ensureChild(parent, key), tokens, value)
}

// insert walks tokens below t, creating trees as needed:
//   - empty token => next free index
//   - canonical integer token => integer key
//   - anything else => string key
//
// Descending into a scalar replaces it with an empty tree; a leaf replaces
// whatever was there.
func insert(t *Tree, tokens []string, value string) {
	for {
		var k Key
		if tokens[0] == "" {
			k = IntKey(t.NextIndex())
		} else {
			k = StringKey(tokens[0])
		}
		if len(tokens) == 1 {
			t.Set(k, String(value))
			return
		}
		t = ensureChild(t, k)
		tokens = tokens[1:]
	}
}

// ensureChild returns the tree stored under k, replacing a scalar or
// installing a new tree when needed.
func ensureChild(t *Tree, k Key) *Tree {
	if v, ok := t.Get(k); ok && v.kind == KindNested {
		return v.tree
	}
	child := NewTree()
	t.Set(k, Nested(child))
	return child
}
