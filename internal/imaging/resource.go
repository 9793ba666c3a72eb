package imaging

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/ironsheep/responsive-images-mcp/internal/responsive"
)

// Resource is a decoded image that can resample itself with the methods in
// this package. It implements responsive.ImageResource.
//
// A Resource never modifies its pixels; every Invoke returns a new Resource.
type Resource struct {
	img  image.Image
	name string

	method string
	args   responsive.Arguments
}

var _ responsive.ImageResource = (*Resource)(nil)

// NewResource wraps a decoded image. name identifies the original, typically
// its file name, and prefixes the names of all variants.
func NewResource(img image.Image, name string) *Resource {
	return &Resource{img: img, name: name}
}

// Image returns the decoded pixels.
func (r *Resource) Image() image.Image { return r.img }

// Width returns the width in pixels.
func (r *Resource) Width() int { return r.img.Bounds().Dx() }

// Height returns the height in pixels.
func (r *Resource) Height() int { return r.img.Bounds().Dy() }

// Method returns the method that produced this variant, empty for an original.
func (r *Resource) Method() string { return r.method }

// Arguments returns the arguments that produced this variant.
func (r *Resource) Arguments() responsive.Arguments { return r.args }

// Name returns a stable file name for the resource. Variants are named after
// the original plus method and arguments, e.g. "hero-Fill-800x600.jpg".
func (r *Resource) Name() string { return r.name }

// HasCapability reports whether method is a known resample method.
func (r *Resource) HasCapability(method string) bool {
	_, ok := methods[method]
	return ok
}

// Invoke resamples the image with method and args.
func (r *Resource) Invoke(method string, args responsive.Arguments) (responsive.ImageResource, error) {
	fn, ok := methods[method]
	if !ok {
		return nil, &responsive.UnsupportedMethodError{Method: method}
	}
	out, err := fn(r.img, args)
	if err != nil {
		return nil, fmt.Errorf("%s%v: %w", method, []interface{}(args), err)
	}
	return &Resource{
		img:    out,
		name:   variantName(r.name, method, args),
		method: method,
		args:   args,
	}, nil
}

func variantName(base, method string, args responsive.Arguments) string {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = strings.TrimPrefix(fmt.Sprint(a), "#")
	}
	return fmt.Sprintf("%s-%s-%s%s", stem, method, strings.Join(parts, "x"), ext)
}
