package responsive

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Resolve builds the ResponsiveImage for setName on base.
//
// overrideArgs are the call-time arguments, see ParseOverride. Any
// configuration problem aborts the whole resolution; an unknown set is always
// an error rather than an empty image.
func (r *Resolver) Resolve(setName string, base ImageResource, overrideArgs ...interface{}) (*ResponsiveImage, error) {
	res, err := r.ResolveConfig(setName)
	if err != nil {
		return nil, err
	}
	set := res.Set

	image := newMemoImage(base)
	ri := NewResponsiveImage(image, res.Format)

	switch res.Shape {
	case ShapeSingle:
		src, err := BuildSource(res.Definitions[0], image, r.defaults.Method)
		if err != nil {
			return nil, fmt.Errorf("set %q: %w", set.Name, err)
		}
		ri.SetSource(src)
	case ShapeMultiple:
		srcs, err := BuildSourceSet(res.Definitions, image, r.defaults.Method)
		if err != nil {
			return nil, fmt.Errorf("set %q: %w", set.Name, err)
		}
		if err := ri.SetSourceSet(srcs); err != nil {
			return nil, fmt.Errorf("set %q: %w", set.Name, err)
		}
	}

	override := ParseOverride(overrideArgs)

	perSetMethod, err := setMethod(set)
	if err != nil {
		return nil, invalidConfig(set.Name, "%v", err)
	}
	perSetDims, err := setDimensions(set)
	if err != nil {
		return nil, err
	}
	perSetCSS, err := setCSSClasses(set)
	if err != nil {
		return nil, invalidConfig(set.Name, "%v", err)
	}
	template, _, err := set.StringField("template")
	if err != nil {
		return nil, invalidConfig(set.Name, "%v", err)
	}

	ri.SetDefaultImageMethod(ResolveMethod(override.Method, perSetMethod, r.defaults.Method))
	ri.SetDefaultImageDimensions(ResolveDimensions(override.Dimensions, perSetDims, r.defaults.Dimensions))
	ri.SetCSSClasses(ResolveCSSClasses(perSetCSS, r.defaults.CSSClasses))
	ri.SetTemplate(template)

	return ri, nil
}

// memoImage shares resample results between the sources and the default
// image of one resolution, so identical (method, arguments) pairs resample
// once. Distinct pairs may resample concurrently.
type memoImage struct {
	base ImageResource

	mu       sync.Mutex
	results  map[string]ImageResource
	inflight singleflight.Group
}

func newMemoImage(base ImageResource) *memoImage {
	return &memoImage{base: base, results: make(map[string]ImageResource)}
}

func (m *memoImage) HasCapability(method string) bool {
	return m.base.HasCapability(method)
}

func (m *memoImage) Invoke(method string, args Arguments) (ImageResource, error) {
	key := memoKey(method, args)

	m.mu.Lock()
	v, ok := m.results[key]
	m.mu.Unlock()
	if ok {
		return v, nil
	}

	out, err, _ := m.inflight.Do(key, func() (interface{}, error) {
		m.mu.Lock()
		cached, ok := m.results[key]
		m.mu.Unlock()
		if ok {
			return cached, nil
		}

		v, err := m.base.Invoke(method, args)
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.results[key] = v
		m.mu.Unlock()
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return out.(ImageResource), nil
}

func memoKey(method string, args Arguments) string {
	var b strings.Builder
	b.WriteString(method)
	for _, a := range args {
		fmt.Fprintf(&b, "\x00%T:%v", a, a)
	}
	return b.String()
}
