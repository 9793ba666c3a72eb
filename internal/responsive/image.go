package responsive

import "fmt"

// SourceKind discriminates the source held by a ResponsiveImage.
type SourceKind int

const (
	// NoSource means only the default image is rendered.
	NoSource SourceKind = iota
	// SingleSource holds one Source.
	SingleSource
	// MultipleSources holds a SourceSet.
	MultipleSources
)

func (k SourceKind) String() string {
	switch k {
	case SingleSource:
		return "single"
	case MultipleSources:
		return "multiple"
	default:
		return "none"
	}
}

// ResponsiveImage is the render-ready model of one named set applied to one
// image. It is built fresh for every resolution and not shared.
type ResponsiveImage struct {
	image  ImageResource
	format Format

	sourceKind SourceKind
	source     *Source
	sourceSet  SourceSet

	defaultImageDimensions Arguments
	defaultImageMethod     string
	cssClasses             *string
	template               string
}

// NewResponsiveImage creates an image model with no source.
func NewResponsiveImage(image ImageResource, format Format) *ResponsiveImage {
	return &ResponsiveImage{image: image, format: format}
}

// Format returns the markup format.
func (ri *ResponsiveImage) Format() Format { return ri.format }

// Image returns the base image.
func (ri *ResponsiveImage) Image() ImageResource { return ri.image }

// SetSource sets a single source.
func (ri *ResponsiveImage) SetSource(src *Source) {
	ri.sourceKind, ri.source, ri.sourceSet = SingleSource, src, nil
	if src == nil {
		ri.sourceKind = NoSource
	}
}

// SetSourceSet sets an ordered list of sources. More than one source needs
// the picture format.
func (ri *ResponsiveImage) SetSourceSet(set SourceSet) error {
	if len(set) > 1 && ri.format != FormatPicture {
		return fmt.Errorf("%w: %d sources require the %q format, got %q", ErrInvalidConfig, len(set), FormatPicture, ri.format)
	}
	ri.sourceKind, ri.source, ri.sourceSet = MultipleSources, nil, set
	return nil
}

// SourceKind reports which source variant the image holds.
func (ri *ResponsiveImage) SourceKind() SourceKind { return ri.sourceKind }

// Source returns the single source, if that is what the image holds.
func (ri *ResponsiveImage) Source() (*Source, bool) {
	return ri.source, ri.sourceKind == SingleSource
}

// SourceSet returns the source list, if that is what the image holds.
func (ri *ResponsiveImage) SourceSet() (SourceSet, bool) {
	return ri.sourceSet, ri.sourceKind == MultipleSources
}

// IsSourceIterable reports whether the image holds a SourceSet.
func (ri *ResponsiveImage) IsSourceIterable() bool {
	return ri.sourceKind == MultipleSources
}

// SetDefaultImageDimensions sets the default image arguments.
func (ri *ResponsiveImage) SetDefaultImageDimensions(dims Arguments) {
	ri.defaultImageDimensions = dims
}

// DefaultImageDimensions returns the default image arguments.
func (ri *ResponsiveImage) DefaultImageDimensions() Arguments { return ri.defaultImageDimensions }

// SetDefaultImageMethod sets the default image method.
func (ri *ResponsiveImage) SetDefaultImageMethod(method string) { ri.defaultImageMethod = method }

// DefaultImageMethod returns the default image method.
func (ri *ResponsiveImage) DefaultImageMethod() string { return ri.defaultImageMethod }

// SetCSSClasses sets the extra CSS classes.
func (ri *ResponsiveImage) SetCSSClasses(classes string) { ri.cssClasses = &classes }

// CSSClasses returns the extra CSS classes and whether any were set.
func (ri *ResponsiveImage) CSSClasses() (string, bool) {
	if ri.cssClasses == nil {
		return "", false
	}
	return *ri.cssClasses, true
}

// SetTemplate overrides the render template. An empty name clears it.
func (ri *ResponsiveImage) SetTemplate(template string) { ri.template = template }

// Template returns the template override, if any.
func (ri *ResponsiveImage) Template() (string, bool) {
	return ri.template, ri.template != ""
}

// DefaultImage resamples the fallback image rendered outside the sources.
func (ri *ResponsiveImage) DefaultImage() (ImageResource, error) {
	if !ri.image.HasCapability(ri.defaultImageMethod) {
		return nil, &UnsupportedMethodError{Method: ri.defaultImageMethod}
	}
	return ri.image.Invoke(ri.defaultImageMethod, ri.defaultImageDimensions)
}
