package query

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/leo-stone-dot/php_query_go/parsephp"
)

// FilterExpr is Filter with the predicate written as an expr-lang boolean
// expression over the variables key and value, e.g. `int(value) > 10` or
// `key startsWith "utm_"`. Integer keys are ints, string keys strings.
// Scalars are strings or bools and nested values are lists or maps.
//
// The expression is compiled and evaluated on every entry before anything
// changes, so an error leaves n untouched.
func (n *Node) FilterExpr(src string) error {
	if err := n.ensureTree(); err != nil {
		return err
	}
	prg, err := expr.Compile(src, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return fmt.Errorf("compile filter %q: %w", src, err)
	}
	keep := make(map[parsephp.Key]bool, n.tree.Len())
	for _, e := range n.tree.Entries() {
		out, err := expr.Run(prg, exprEnv(e.Key, e.Value))
		if err != nil {
			return fmt.Errorf("run filter %q on key %q: %w", src, e.Key.String(), err)
		}
		keep[e.Key], _ = out.(bool)
	}
	return n.Filter(func(_ parsephp.Value, k parsephp.Key) bool { return keep[k] })
}

type filterEnv struct {
	Key   any `expr:"key"`
	Value any `expr:"value"`
}

func exprEnv(k parsephp.Key, v parsephp.Value) filterEnv {
	env := filterEnv{Key: k.String(), Value: plain(v)}
	if k.IsInt() {
		env.Key = k.Int()
	}
	return env
}

// plain converts v into the types expr works with natively.
func plain(v parsephp.Value) any {
	switch v.Kind() {
	case parsephp.KindString:
		return v.Str()
	case parsephp.KindBool:
		return v.AsBool()
	case parsephp.KindNested:
		t := v.Tree()
		if t.IsList() {
			out := make([]any, 0, t.Len())
			for _, e := range t.Entries() {
				out = append(out, plain(e.Value))
			}
			return out
		}
		out := make(map[string]any, t.Len())
		for _, e := range t.Entries() {
			out[e.Key.String()] = plain(e.Value)
		}
		return out
	}
	return nil
}
