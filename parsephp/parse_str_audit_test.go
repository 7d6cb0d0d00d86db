package parsephp

import (
	"testing"
)

// 1) 分隔符与键值对
func TestAudit_Separators_EmptySegmentsAndTrailing(t *testing.T) {
	cases := []struct {
		in   string
		out  string
		name string
	}{
		{"a=1&&b=2", `{a: "1", b: "2"}`, "double_ampersand"},
		{"a=1&b=2&", `{a: "1", b: "2"}`, "trailing_ampersand"},
		{"&a=1&b=2", `{a: "1", b: "2"}`, "leading_ampersand"},
		{"a=1;b=2", `{a: "1;b=2"}`, "semicolon_is_literal"},
	}
	for _, c := range cases {
		got, err := ParseStr(c.in)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		want := yamlTree(t, c.out)
		if !want.Equal(got) {
			t.Fatalf("%s: got %s, want %s", c.name, got, want)
		}
	}
}

func TestAudit_Separators_LeadingQuestionIsPartOfKey(t *testing.T) {
	checkParse(t, "?x=1&y=2&", `{"?x": "1", y: "2"}`)
}

func TestAudit_PairWithoutEqual_ScalarAndBracket(t *testing.T) {
	checkParse(t, "flag", `flag: ""`)
	checkParse(t, "a[b]", `a: {b: ""}`)
}

// 2) 解码与鲁棒性
func TestAudit_Decoding_PlusPercent_Lenient(t *testing.T) {
	checkParse(t, "q=%2B+%2520", `q: "+ %20"`)
}

func TestAudit_Decoding_MalformedEscape_Lenient(t *testing.T) {
	checkParse(t, "bad=%ZZ&ok=%41", `{bad: "%ZZ", ok: A}`)
}

func TestAudit_Decoding_UnicodeKeysValues(t *testing.T) {
	checkParse(t, "城市=北京&k=%E4%B8%AD%E6%96%87", `{城市: 北京, k: 中文}`)
}

func TestAudit_Decoding_SpacesAroundKeysKept(t *testing.T) {
	checkParse(t, "+++k+++=+++v+++", `{"   k   ": "   v   "}`)
}

// 3) 括号语法要点
func TestAudit_Bracket_ArraysAppend(t *testing.T) {
	checkParse(t, "a[]=b&a[]=c", `a: [b, c]`)
}

func TestAudit_Bracket_NumericHoles(t *testing.T) {
	checkParse(t, "a[0]=b&a[2]=c", `a: {0: b, 2: c}`)
}

func TestAudit_Bracket_AssociativeNesting(t *testing.T) {
	checkParse(t, "a[b][c]=d&a[b][e]=f", `a: {b: {c: d, e: f}}`)
}

func TestAudit_Bracket_AppendContainerInference(t *testing.T) {
	checkParse(t, "a[][b]=c&a[][b]=d", `a: [{b: c}, {b: d}]`)
}

func TestAudit_Bracket_ScalarToArrayUpgrade(t *testing.T) {
	checkParse(t, "a=1&a[]=2&a[]=3", `a: ["1", "2", "3"]`)
}

func TestAudit_Bracket_NumericTokenUnderMapHybrid(t *testing.T) {
	checkParse(t, "a[b]=x&a[0]=y&a[]=z", `a: {b: x, 0: y, 1: z}`)
}

// 4) 混合 map/slice 语义（同一 base）
func TestAudit_Mixed_BaseMapThenAppend(t *testing.T) {
	checkParse(t, "a[b]=x&a[]=y&a[]=z", `a: {b: x, 0: y, 1: z}`)
}

func TestAudit_Mixed_BaseSliceThenIndexThenAssoc(t *testing.T) {
	checkParse(t, "a[]=x&a[2]=y&a[b]=z", `a: {0: x, 2: y, b: z}`)
}

// 5) 括号畸形细则
func TestAudit_Malformed_UnmatchedOpenBracketAtDeeperLevel(t *testing.T) {
	checkParse(t, "a[b][=1", `a: {b: "1"}`)
}

func TestAudit_Malformed_TextAfterClosingBracketDropped(t *testing.T) {
	checkParse(t, "a[b]][][c]=x&d[e]f[g]=y", `{a: {b: x}, d: {e: y}}`)
}

// 6) 重复与覆盖
func TestAudit_Repeat_ScalarPromoted(t *testing.T) {
	checkParse(t, "a=b&a=c", `a: [b, c]`)
}

func TestAudit_Repeat_AssociativeLeafLastWins(t *testing.T) {
	checkParse(t, "a[b]=x&a[b]=y", `a: {b: y}`)
}

func TestAudit_Repeat_ArrayEstablishedThenPlainScalar(t *testing.T) {
	checkParse(t, "a[]=x&a=Y", `a: [x, Y]`)
}

// 7) 极端索引与深度
func TestAudit_Extreme_LargeNumericIndex_NoPadding(t *testing.T) {
	got, err := ParseStr("a[1000]=x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, ok := got.Get(StringKey("a"))
	if !ok || !a.IsNested() {
		t.Fatalf("a=%v, want nested", a)
	}
	if a.Tree().Len() != 1 {
		t.Fatalf("len=%d, want=1", a.Tree().Len())
	}
	if v, _ := a.Tree().Get(IntKey(1000)); v.Str() != "x" {
		t.Fatalf("index 1000 value=%q, want 'x'", v.Str())
	}
	if next := a.Tree().NextIndex(); next != 1001 {
		t.Fatalf("next index=%d, want 1001", next)
	}
}

func TestAudit_Extreme_DeepNestingStability(t *testing.T) {
	checkParse(t, "a[b][c][d][e][f]=x", `a: {b: {c: {d: {e: {f: x}}}}}`)
}

// 8) 编码的括号在解码后即为结构
func TestAudit_EncodedBracketsAreStructural(t *testing.T) {
	checkParse(t, "a[%5D]=x", `a: [x]`)
	checkParse(t, "a[%5B]=y", `a: {"[": y}`)
}
