package responsive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_Descriptors(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  string
	}{
		{"empty", nil, ""},
		{"single", []string{"33vw"}, "33vw"},
		{"multiple", []string{"(min-width: 1200px)", "(min-width: 600px)"}, "(min-width: 1200px), (min-width: 600px)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewSource(newFakeImage(), SourceDefinition{Method: "Fill", ArgumentSets: []Arguments{{800, 800}}})
			src.SetSizes(tt.input)
			src.SetMedia(tt.input)

			assert.Equal(t, tt.want, src.SizesDescriptor())
			assert.Equal(t, tt.want, src.MediaDescriptor())
		})
	}
}

func TestSource_Definition(t *testing.T) {
	def := SourceDefinition{
		Method:       "Fill",
		ArgumentSets: []Arguments{{800, 800}, {400, 400}},
		Sizes:        []string{"33vw"},
		Media:        []string{"(min-width: 1200px)"},
	}

	src := NewSource(newFakeImage(), def)

	assert.Equal(t, def, src.Definition())
	assert.Equal(t, "Fill", src.Method())
	assert.Equal(t, []string{"33vw"}, src.Sizes())
	assert.Equal(t, []string{"(min-width: 1200px)"}, src.Media())
}

func TestSource_Variants(t *testing.T) {
	base := newFakeImage()
	src := NewSource(base, SourceDefinition{
		Method:       "Fill",
		ArgumentSets: []Arguments{{900, 600}, {600, 400}},
	})

	variants, err := src.Variants()
	require.NoError(t, err)
	require.Len(t, variants, 2)
	assert.Equal(t, "Fill[900 600]", nameOf(t, variants[0]))
	assert.Equal(t, "Fill[600 400]", nameOf(t, variants[1]))
	assert.Same(t, base, src.Image())
}

func TestSource_Variants_UnsupportedMethod(t *testing.T) {
	src := NewSource(newFakeImage("Fill"), SourceDefinition{
		Method:       "Crop",
		ArgumentSets: []Arguments{{100, 100}},
	})

	_, err := src.Variants()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedMethod)
}
