// Package responsive resolves named responsive image sets into render-ready
// models.
//
// A set's configuration comes in one of three shapes:
//
//   - a flat definition (method, argument_sets, sizes, media), rendered as a
//     single source in either the img or picture format
//   - an art direction list of set names and nested flat definitions, rendered
//     as a picture with one source per entry
//   - the legacy "arguments" map of media query to argument list, also
//     rendered as a picture with one source per query
//
// Resolution is a linear pipeline: ResolveConfig classifies and expands the
// configuration, BuildSource and BuildSourceSet create the sources, and
// Resolve fills in the default image, CSS classes and template from the call
// arguments, the set and the global Defaults, in that order of precedence.
//
//	r, err := responsive.NewResolver(sets, responsive.DefaultDefaults())
//	if err != nil {
//	    return err
//	}
//	img, err := r.Resolve("HeroSet", base, "Fill", 800, 600)
//
// # Errors
//
// Failures wrap ErrNotFound, ErrInvalidConfig or ErrUnsupportedMethod and
// name the offending set, media query or method.
//
// # Thread Safety
//
// A Resolver may be shared. Each ResponsiveImage belongs to the resolution
// that created it.
package responsive
