package parsephp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

// yamlTree reads an ordered tree from YAML source.
func yamlTree(t *testing.T, src string) *Tree {
	t.Helper()
	var out Tree
	if err := yaml.Unmarshal([]byte(src), &out); err != nil {
		t.Fatalf("bad yaml tree %q: %v", src, err)
	}
	return &out
}

func dump(t *testing.T, tr *Tree) string {
	t.Helper()
	d, err := yaml.Marshal(tr)
	if err != nil {
		t.Fatalf("yaml dump: %v", err)
	}
	return string(d)
}

func assertTree(t *testing.T, want, got *Tree) {
	t.Helper()
	if !cmp.Equal(want, got) {
		t.Fatalf("tree mismatch (-want +got):\n%s", cmp.Diff(dump(t, want), dump(t, got)))
	}
}

func checkParse(t *testing.T, query, want string) {
	t.Helper()
	got, err := ParseStr(query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertTree(t, yamlTree(t, want), got)
}
