package setconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_DuplicateKeysReplaceInPlace(t *testing.T) {
	n := Map(KV("a", Scalar(1)), KV("b", Scalar(2)), KV("a", Scalar(3)))

	assert.Equal(t, []string{"a", "b"}, n.Keys())
	assert.Equal(t, 3, mustGet(t, n, "a").Value())
}

func TestScalar_NormalisesNumbers(t *testing.T) {
	assert.Equal(t, 8, Scalar(int64(8)).Value())
	assert.Equal(t, 8, Scalar(uint16(8)).Value())
	assert.Equal(t, float64(1.5), Scalar(float32(1.5)).Value())
	assert.True(t, Scalar(nil).IsNull())
}

func TestNode_NilSafe(t *testing.T) {
	var n *Node
	assert.True(t, n.IsNull())
	assert.Equal(t, 0, n.Len())
	assert.Nil(t, n.Keys())
	assert.Nil(t, n.Items())
	_, ok := n.Get("x")
	assert.False(t, ok)
	assert.Nil(t, n.Interface())
}

func TestNewSets(t *testing.T) {
	root := Map(
		KV("HeroSet", Map(KV("css_classes", Scalar("hero")))),
		KV("ThumbSet", Map()),
	)

	sets, err := NewSets(root)
	require.NoError(t, err)
	assert.Equal(t, 2, sets.Len())
	assert.Equal(t, []string{"HeroSet", "ThumbSet"}, sets.Names())

	for _, name := range []string{"HeroSet", "heroset", "HEROSET"} {
		set, ok := sets.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, "HeroSet", set.Name)
	}

	_, ok := sets.Lookup("Missing")
	assert.False(t, ok)
}

func TestNewSets_Empty(t *testing.T) {
	sets, err := NewSets(Null())
	require.NoError(t, err)
	assert.Equal(t, 0, sets.Len())
	assert.Empty(t, sets.Names())
}

func TestNewSets_Errors(t *testing.T) {
	tests := []struct {
		name string
		root *Node
		want string
	}{
		{"root is a list", List(Map()), "must be a map"},
		{"config is a scalar", Map(KV("HeroSet", Scalar("x"))), `"HeroSet"`},
		{
			"names differ only in case",
			Map(KV("HeroSet", Map()), KV("heroset", Map())),
			"case-insensitive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSets(tt.root)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSet_StringField(t *testing.T) {
	set := &Set{Name: "HeroSet", Config: Map(
		KV("template", Scalar("Includes/Hero")),
		KV("css_classes", ListOf("a", "b")),
		KV("format", Null()),
	)}

	v, ok, err := set.StringField("template")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Includes/Hero", v)

	_, ok, err = set.StringField("format")
	require.NoError(t, err)
	assert.False(t, ok, "null is treated as absent")

	_, ok, err = set.StringField("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = set.StringField("css_classes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "css_classes")
}

func TestSets_NilSafe(t *testing.T) {
	var sets *Sets
	_, ok := sets.Lookup("x")
	assert.False(t, ok)
	assert.Nil(t, sets.Names())
	assert.Equal(t, 0, sets.Len())
}

func TestSets_LookupFoldsUnicode(t *testing.T) {
	sets, err := NewSets(Map(KV("Straße", Map())))
	require.NoError(t, err)

	for _, name := range []string{"straße", "STRASSE", "strasse"} {
		set, ok := sets.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, "Straße", set.Name)
	}
}
