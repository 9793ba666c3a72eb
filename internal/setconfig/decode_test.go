package setconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_KeepsMapOrder(t *testing.T) {
	n, err := Decode([]byte(`
"(min-width: 1200px)": [800, 400]
"(min-width: 800px)": [200, 400]
"(min-width: 200px)": [200, 100]
zeta: 1
alpha: 2
`))
	require.NoError(t, err)
	require.True(t, n.IsMap())

	assert.Equal(t, []string{
		"(min-width: 1200px)",
		"(min-width: 800px)",
		"(min-width: 200px)",
		"zeta",
		"alpha",
	}, n.Keys())
}

func TestDecode_Scalars(t *testing.T) {
	n, err := Decode([]byte(`
int: 800
float: 1.5
bool: true
string: Fill
quoted: "800"
null_value: ~
empty:
`))
	require.NoError(t, err)

	tests := []struct {
		key  string
		kind Kind
		want interface{}
	}{
		{"int", ScalarKind, 800},
		{"float", ScalarKind, 1.5},
		{"bool", ScalarKind, true},
		{"string", ScalarKind, "Fill"},
		{"quoted", ScalarKind, "800"},
		{"null_value", NullKind, nil},
		{"empty", NullKind, nil},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v, ok := n.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.want, v.Value())
		})
	}

	assert.False(t, n.Has("null_value"), "null values do not count as present")
	assert.True(t, n.Has("int"))
}

func TestDecode_Lists(t *testing.T) {
	n, err := Decode([]byte(`[[800, 600], [400, 300], Fill]`))
	require.NoError(t, err)
	require.True(t, n.IsList())
	assert.Equal(t, 3, n.Len())
	assert.Equal(t, []string{"0", "1", "2"}, n.Keys())

	assert.Equal(t, []interface{}{
		[]interface{}{800, 600},
		[]interface{}{400, 300},
		"Fill",
	}, n.Interface())
}

func TestDecode_AliasAndMerge(t *testing.T) {
	n, err := Decode([]byte(`
base: &base
  method: Fill
  argument_sets: [[800, 600]]
override:
  sizes: 100vw
  method: Fit
  <<: *base
copy: *base
`))
	require.NoError(t, err)

	override, ok := n.Get("override")
	require.True(t, ok)
	assert.Equal(t, []string{"sizes", "method", "argument_sets"}, override.Keys(),
		"merged keys sit where the merge key appears")

	method, _ := mustGet(t, override, "method").String()
	assert.Equal(t, "Fit", method, "explicit keys win over merged ones")

	cp, ok := n.Get("copy")
	require.True(t, ok)
	assert.Equal(t, []string{"method", "argument_sets"}, cp.Keys())
}

func TestDecode_MergeList(t *testing.T) {
	n, err := Decode([]byte(`
a: &a
  method: Fill
  sizes: 100vw
b: &b
  method: Fit
  media: "(min-width: 800px)"
definition:
  <<: [*a, *b]
  argument_sets: [[800]]
`))
	require.NoError(t, err)

	def := mustGet(t, n, "definition")
	assert.Equal(t, []string{"method", "sizes", "media", "argument_sets"}, def.Keys())

	method, _ := mustGet(t, def, "method").String()
	assert.Equal(t, "Fill", method, "earlier merged maps win")
	media, _ := mustGet(t, def, "media").String()
	assert.Equal(t, "(min-width: 800px)", media)
}

func TestDecode_MergeKeepsQueryOrder(t *testing.T) {
	n, err := Decode([]byte(`
wide: &wide
  "(min-width: 800px)": [400, 200]
arguments:
  "(min-width: 1200px)": [800, 400]
  <<: *wide
  "(min-width: 200px)": [200, 100]
`))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"(min-width: 1200px)",
		"(min-width: 800px)",
		"(min-width: 200px)",
	}, mustGet(t, n, "arguments").Keys())
}

func TestDecode_KeyTags(t *testing.T) {
	n, err := Decode([]byte(`
"(min-width: 800px)": 1
plain: 2
~: 3
0x1F: 4
1.5: 5
"12": 6
true: 7
`))
	require.NoError(t, err)

	tests := []struct {
		key  string
		want string
	}{
		{"(min-width: 800px)", "!!str"},
		{"plain", "!!str"},
		{"~", "!!null"},
		{"0x1F", "!!int"},
		{"1.5", "!!float"},
		{"12", "!!str"},
		{"true", "!!bool"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, n.KeyTag(tt.key))
		})
	}

	assert.Empty(t, Map(KV("built", Scalar(1))).KeyTag("built"), "keys built in code carry no tag")
}

func TestDecode_Empty(t *testing.T) {
	for _, in := range []string{"", "   \n", "# only a comment\n"} {
		n, err := Decode([]byte(in))
		require.NoError(t, err)
		assert.True(t, n.IsNull())
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"malformed", "a: [1, 2"},
		{"complex key", "? [a, b]\n: c\n"},
		{"merge of a scalar", "a:\n  <<: 1\n"},
		{"merge list with a scalar", "m: &m {a: 1}\nb:\n  <<: [*m, 2]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.in))
			assert.Error(t, err)
		})
	}
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sets.yml")
	require.NoError(t, os.WriteFile(path, []byte("HeroSet:\n  definition: {argument_sets: [[800]]}\n"), 0o644))

	n, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"HeroSet"}, n.Keys())

	_, err = DecodeFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func mustGet(t *testing.T, n *Node, key string) *Node {
	t.Helper()
	v, ok := n.Get(key)
	require.True(t, ok, "missing key %q", key)
	return v
}
