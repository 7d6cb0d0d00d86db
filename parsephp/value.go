package parsephp

import (
	"strconv"
	"strings"
)

// Kind tells which variant a Value holds.
type Kind uint8

const (
	// KindInvalid is the zero Value: a missing entry or a null.
	KindInvalid Kind = iota
	KindString
	KindBool
	KindNested
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNested:
		return "nested"
	}
	return "invalid"
}

// Value is a scalar (string or bool) or a nested Tree.
type Value struct {
	kind Kind
	str  string
	b    bool
	tree *Tree
}

// String returns a string scalar.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool returns a boolean scalar. Its serialized form depends on BoolRendering.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns a string scalar holding the decimal form of i.
func Int(i int) Value { return String(strconv.Itoa(i)) }

// Float returns a string scalar holding the shortest decimal form of f.
func Float(f float64) Value { return String(strconv.FormatFloat(f, 'f', -1, 64)) }

// Nested returns a value holding t. A nil t is an empty tree.
func Nested(t *Tree) Value {
	if t == nil {
		t = NewTree()
	}
	return Value{kind: KindNested, tree: t}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds anything.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// IsNested reports whether v holds a tree.
func (v Value) IsNested() bool { return v.kind == KindNested }

// IsScalar reports whether v holds a string or a bool.
func (v Value) IsScalar() bool { return v.kind == KindString || v.kind == KindBool }

// Tree returns the nested tree, or nil for scalars. The tree is not copied.
func (v Value) Tree() *Tree { return v.tree }

// Str returns the scalar rendered with BoolAsInt; nested and invalid values
// yield "".
func (v Value) Str() string { return v.Render(BoolAsInt) }

// Render returns the scalar text of v under the given boolean rendering.
func (v Value) Render(r BoolRendering) string {
	switch v.kind {
	case KindString:
		return v.str
	case KindBool:
		if r == BoolAsString {
			if v.b {
				return "true"
			}
			return "false"
		}
		if v.b {
			return "1"
		}
		return "0"
	}
	return ""
}

// AsBool converts v to a boolean. It is total: "1", "true", "on" and "yes"
// (any case) are true, as is Bool(true); everything else is false.
func (v Value) AsBool() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		switch strings.ToLower(v.str) {
		case "1", "true", "on", "yes":
			return true
		}
	case KindNested:
		return v.tree.Len() > 0
	}
	return false
}

// Equal reports strict equality: same kind and same content. Nested values
// compare deeply and in order.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindBool:
		return v.b == o.b
	case KindNested:
		return v.tree.Equal(o.tree)
	}
	return true
}

// Clone returns v with nested trees deep-copied.
func (v Value) Clone() Value {
	if v.kind == KindNested {
		return Value{kind: KindNested, tree: v.tree.Clone()}
	}
	return v
}
