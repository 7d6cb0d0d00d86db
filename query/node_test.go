package query

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/leo-stone-dot/php_query_go/parsephp"
)

func TestFromStringCanonicalizes(t *testing.T) {
	cases := []struct{ in, want string }{
		{"a=b&c[]=d", "a=b&c%5B%5D=d"},
		{"foo=bar baz", "foo=bar+baz"},
		{"x=100%", "x=100%25"},
		{"x=%41", "x=%41"},
		{"k=ä", "k=%C3%A4"},
	}
	for _, c := range cases {
		if got := FromString(c.in).Query(); got != c.want {
			t.Fatalf("FromString(%q).Query() = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFromStringPercent20(t *testing.T) {
	n := FromString("foo=bar baz", WithSpaceEncoding(parsephp.SpacePercent20))
	if got := n.Query(); got != "foo=bar%20baz" {
		t.Fatalf("got %q", got)
	}
}

func TestFromTreeCopiesInput(t *testing.T) {
	src := parsephp.NewTree(parsephp.Pair("a", parsephp.String("1")))
	n := FromTree(src)
	src.Set(parsephp.StringKey("b"), parsephp.String("2"))
	checkQuery(t, n, "a=1")
}

func TestQueryIsIdempotent(t *testing.T) {
	n := FromTree(parsephp.NewTree(
		parsephp.Pair("a", parsephp.String("x y")),
		parsephp.Pair("b", parsephp.Nested(parsephp.List(parsephp.String("1")))),
	))
	first := n.Query()
	if first != "a=x+y&b%5B0%5D=1" {
		t.Fatalf("got %q", first)
	}
	if second := n.Query(); second != first {
		t.Fatalf("second Query() = %q, want %q", second, first)
	}
	if n.String() != first {
		t.Fatalf("String() = %q", n.String())
	}
}

func TestTreeDoesNotLeak(t *testing.T) {
	n := FromString("a[b]=c")
	mustNode(t, n, "a")
	tr, err := n.Tree()
	ok(t, err)
	inner, _ := tr.Get(parsephp.StringKey("a"))
	inner.Tree().Set(parsephp.StringKey("b"), parsephp.String("changed"))
	tr.Set(parsephp.StringKey("z"), parsephp.String("1"))
	checkQuery(t, n, "a[b]=c")
	if n.Dirty() {
		t.Fatalf("node dirty after editing a copy")
	}
}

func TestDirtyCycle(t *testing.T) {
	n := FromString("a=1")
	if n.Dirty() {
		t.Fatalf("fresh node is dirty")
	}
	ok(t, n.Set("b", parsephp.String("2")))
	if !n.Dirty() {
		t.Fatalf("node not dirty after Set")
	}
	checkQuery(t, n, "a=1&b=2")
	if n.Dirty() {
		t.Fatalf("node still dirty after Query")
	}
}

func TestQuestionMarkIsPartOfKey(t *testing.T) {
	n := FromString("?a=1")
	has, err := n.Has("?a")
	ok(t, err)
	if !has {
		t.Fatalf(`"?a" not found`)
	}
}

func TestDotsAndSpacesInKeys(t *testing.T) {
	n := FromString("a.b=1&c d=2")
	if got := mustGet(t, n, "a.b").String(); got != "1" {
		t.Fatalf("a.b = %q", got)
	}
	if got := mustGet(t, n, "c d").String(); got != "2" {
		t.Fatalf("c d = %q", got)
	}
	ok(t, n.Set("x", parsephp.String("y")))
	if got := n.Query(); got != "a.b=1&c+d=2&x=y" {
		t.Fatalf("got %q", got)
	}
}

func TestUnsupportedSeparatorOption(t *testing.T) {
	n := FromString("a=b", WithSeparator(";"))
	if got := n.Query(); got != "a=b" {
		t.Fatalf("Query() = %q", got)
	}
	if _, err := n.Get("a"); !errors.Is(err, parsephp.ErrUnsupportedSeparator) {
		t.Fatalf("expected ErrUnsupportedSeparator, got %v", err)
	}
}

func TestInvalidKeyType(t *testing.T) {
	n := FromString("a=b")
	if _, err := n.Get(1.5); !errors.Is(err, parsephp.ErrInvalidKeyType) {
		t.Fatalf("expected ErrInvalidKeyType, got %v", err)
	}
	if err := n.Set(struct{}{}, parsephp.String("x")); !errors.Is(err, parsephp.ErrInvalidKeyType) {
		t.Fatalf("expected ErrInvalidKeyType, got %v", err)
	}
	checkQuery(t, n, "a=b")
}

func TestIntegerKeys(t *testing.T) {
	n := FromString("a[0]=x&a[1]=y")
	a := mustNode(t, n, "a")
	for _, k := range []any{1, int64(1), uint8(1), "1", parsephp.IntKey(1)} {
		if got := mustGet(t, a, k).String(); got != "y" {
			t.Fatalf("Get(%#v) = %q", k, got)
		}
	}
}

func TestLoggerReceivesDebugRecords(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	n := FromString("a=1", WithLogger(l))
	ok(t, n.Set("b", parsephp.String("2")))
	n.Query()
	out := buf.String()
	for _, msg := range []string{"decoded query", "serialized query"} {
		if !strings.Contains(out, msg) {
			t.Fatalf("log output %q lacks %q", out, msg)
		}
	}
}
