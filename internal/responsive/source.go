package responsive

import "strings"

// ImageResource is a base or resampled image that can produce further
// variants of itself by running a named resample method.
type ImageResource interface {
	// HasCapability reports whether Invoke supports method.
	HasCapability(method string) bool
	// Invoke runs method with args and returns the resampled image. It fails
	// with an error matching ErrUnsupportedMethod when method is unknown.
	Invoke(method string, args Arguments) (ImageResource, error)
}

// SourceDefinition is the canonical form every configuration shape expands to.
type SourceDefinition struct {
	Method       string
	ArgumentSets []Arguments
	Sizes        []string
	Media        []string
}

// Source is one set of resampled variants of a base image, rendered as a
// srcset plus optional sizes and media attributes.
type Source struct {
	image        ImageResource
	method       string
	argumentSets []Arguments
	sizes        []string
	media        []string
}

// NewSource creates a source for image. The image is shared, not copied.
func NewSource(image ImageResource, def SourceDefinition) *Source {
	return &Source{
		image:        image,
		method:       def.Method,
		argumentSets: def.ArgumentSets,
		sizes:        def.Sizes,
		media:        def.Media,
	}
}

// SetSizes replaces the sizes hints.
func (s *Source) SetSizes(sizes []string) { s.sizes = sizes }

// SetMedia replaces the media queries.
func (s *Source) SetMedia(media []string) { s.media = media }

// Definition returns the source's canonical definition.
func (s *Source) Definition() SourceDefinition {
	return SourceDefinition{
		Method:       s.method,
		ArgumentSets: s.argumentSets,
		Sizes:        s.sizes,
		Media:        s.media,
	}
}

// Method returns the resample method used for every variant.
func (s *Source) Method() string { return s.method }

// ArgumentSets returns one argument list per variant.
func (s *Source) ArgumentSets() []Arguments { return s.argumentSets }

// Sizes returns the sizes hints.
func (s *Source) Sizes() []string { return s.sizes }

// Media returns the media queries.
func (s *Source) Media() []string { return s.media }

// Image returns the base image.
func (s *Source) Image() ImageResource { return s.image }

// Variants resamples the base image once per argument set, in order.
func (s *Source) Variants() ([]ImageResource, error) {
	out := make([]ImageResource, 0, len(s.argumentSets))
	for _, args := range s.argumentSets {
		v, err := s.image.Invoke(s.method, args)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// SizesDescriptor returns the sizes attribute value.
func (s *Source) SizesDescriptor() string {
	return strings.Join(s.sizes, ", ")
}

// MediaDescriptor returns the media attribute value.
func (s *Source) MediaDescriptor() string {
	return strings.Join(s.media, ", ")
}

// SourceSet is an ordered list of sources. Browsers use the first source
// whose media matches, so order is part of the meaning.
type SourceSet []*Source
