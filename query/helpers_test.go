package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustGet(t *testing.T, n *Node, key any) Item {
	t.Helper()
	it, err := n.Get(key)
	if err != nil {
		t.Fatalf("Get(%v): %v", key, err)
	}
	return it
}

func mustNode(t *testing.T, n *Node, key any) *Node {
	t.Helper()
	it := mustGet(t, n, key)
	if !it.IsNode() {
		t.Fatalf("Get(%v) = %q, want a node", key, it.String())
	}
	return it.Node()
}

// checkQuery compares the bracket-readable rendering of n.
func checkQuery(t *testing.T, n *Node, want string) {
	t.Helper()
	if diff := cmp.Diff(want, n.QueryUnencodedBrackets()); diff != "" {
		t.Fatalf("query mismatch (-want +got):\n%s", diff)
	}
}

func ok(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// counter returns a dirty hook and a pointer to its call count.
func counter() (func(), *int) {
	n := 0
	return func() { n++ }, &n
}
