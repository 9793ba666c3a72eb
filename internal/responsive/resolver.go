package responsive

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ironsheep/responsive-images-mcp/internal/setconfig"
)

// Shape tells whether a resolution yields one source or an ordered list.
type Shape int

const (
	// ShapeSingle is one flat definition, rendered as a single Source.
	ShapeSingle Shape = iota
	// ShapeMultiple is a list of definitions, rendered as a SourceSet.
	ShapeMultiple
)

func (s Shape) String() string {
	if s == ShapeMultiple {
		return "multiple"
	}
	return "single"
}

// Resolution is a set's configuration expanded into canonical definitions.
type Resolution struct {
	// Set is the matched set, with its declared name.
	Set *setconfig.Set
	// Format is the resolved markup format.
	Format Format
	// Shape tells how Definitions should be built.
	Shape Shape
	// Definitions holds one flat definition for ShapeSingle, or the ordered
	// definitions for ShapeMultiple.
	Definitions []*setconfig.Node
}

// Resolver turns named sets into ResponsiveImage graphs.
//
// A Resolver only reads its sets and defaults, so one instance may serve
// concurrent resolutions.
type Resolver struct {
	sets     *setconfig.Sets
	defaults Defaults
}

// NewResolver creates a resolver over sets with the given global defaults.
func NewResolver(sets *setconfig.Sets, defaults Defaults) (*Resolver, error) {
	if err := defaults.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{sets: sets, defaults: defaults}, nil
}

// Sets returns the configured sets.
func (r *Resolver) Sets() *setconfig.Sets { return r.sets }

// Defaults returns the global defaults.
func (r *Resolver) Defaults() Defaults { return r.defaults }

// ResolveConfig looks up setName and expands its configuration.
//
// A set config holds exactly one of:
//   - definition: a flat definition, or a list of set names and nested flat
//     definitions (art direction)
//   - art_direction: the list form, under its own key
//   - arguments: the legacy map of media query to argument list
//
// Any list form forces the picture format.
func (r *Resolver) ResolveConfig(setName string) (*Resolution, error) {
	set, ok := r.sets.Lookup(setName)
	if !ok {
		return nil, notFound(setName)
	}

	var present []string
	for _, key := range []string{"definition", "art_direction", "arguments"} {
		if _, ok := set.Field(key); ok {
			present = append(present, key)
		}
	}
	switch len(present) {
	case 0:
		return nil, invalidConfig(set.Name, `no "definition", "art_direction" or "arguments" defined in its config`)
	case 1:
	default:
		return nil, invalidConfig(set.Name, "only one of %s may be defined", strings.Join(present, ", "))
	}

	res := &Resolution{Set: set}
	var expanded *setconfig.Node

	switch present[0] {
	case "definition":
		def, _ := set.Field("definition")
		if !def.IsMap() && !def.IsList() {
			return nil, invalidConfig(set.Name, "definition must be a map or a list, got %s", def.Kind())
		}
		if isFlatDefinition(def) {
			format, err := r.resolveFormat(set)
			if err != nil {
				return nil, err
			}
			res.Format = format
			expanded = def
			break
		}
		list, err := r.expandArtDirection(set.Name, def)
		if err != nil {
			return nil, err
		}
		res.Format = FormatPicture
		expanded = list

	case "art_direction":
		ad, _ := set.Field("art_direction")
		if !ad.IsList() {
			return nil, invalidConfig(set.Name, "art_direction must be a list, got %s", ad.Kind())
		}
		list, err := r.expandArtDirection(set.Name, ad)
		if err != nil {
			return nil, err
		}
		res.Format = FormatPicture
		expanded = list

	case "arguments":
		args, _ := set.Field("arguments")
		method, _, err := set.StringField("method")
		if err != nil {
			return nil, invalidConfig(set.Name, "%v", err)
		}
		list, err := expandLegacyArguments(set.Name, args, method)
		if err != nil {
			return nil, err
		}
		res.Format = FormatPicture
		expanded = list
	}

	if IsAssociative(expanded) {
		res.Shape = ShapeSingle
		res.Definitions = []*setconfig.Node{expanded}
	} else {
		res.Shape = ShapeMultiple
		res.Definitions = expanded.Items()
	}
	return res, nil
}

func (r *Resolver) resolveFormat(set *setconfig.Set) (Format, error) {
	raw, ok, err := set.StringField("format")
	if err != nil {
		return "", invalidConfig(set.Name, "%v", err)
	}
	if !ok {
		return r.defaults.Format, nil
	}
	format, err := ParseFormat(raw)
	if err != nil {
		return "", invalidConfig(set.Name, "invalid format %q", raw)
	}
	return format, nil
}

// expandArtDirection replaces set names in an art direction list with the
// flat definitions of those sets.
func (r *Resolver) expandArtDirection(setName string, entries *setconfig.Node) (*setconfig.Node, error) {
	out := make([]*setconfig.Node, 0, entries.Len())
	for _, entry := range entries.Items() {
		if entry.IsMap() {
			out = append(out, entry)
			continue
		}
		ref, isStr := entry.String()
		if !isStr {
			return nil, invalidConfig(setName, "art direction entries must be set names or definitions, got %s", entry.Kind())
		}

		refSet, ok := r.sets.Lookup(ref)
		if !ok {
			return nil, fmt.Errorf("set %q: %w", setName, notFound(ref))
		}
		def, ok := refSet.Field("definition")
		if !ok || !isFlatDefinition(def) {
			return nil, invalidConfig(refSet.Name, `referenced from %q but has no flat "definition" defined in its config`, setName)
		}
		out = append(out, def)
	}
	return setconfig.List(out...), nil
}

// expandLegacyArguments turns a map of media query to argument list into one
// definition per query, in declaration order.
func expandLegacyArguments(setName string, args *setconfig.Node, method string) (*setconfig.Node, error) {
	if !args.IsMap() && !args.IsList() {
		return nil, invalidConfig(setName, "arguments must be a map of media query to argument list")
	}

	if args.IsList() && args.Len() > 0 {
		return nil, invalidConfig(setName, "empty media query %q, please check your config format", "0")
	}

	out := make([]*setconfig.Node, 0, args.Len())
	for _, e := range args.Entries() {
		query, value := e.Key, e.Value
		if !isMediaQuery(query, e.Tag) {
			return nil, invalidConfig(setName, "empty media query %q, please check your config format", query)
		}
		if !value.IsList() || value.Len() == 0 {
			return nil, invalidConfig(setName, "no arguments provided for the query: %s", query)
		}

		entries := []setconfig.KeyValue{
			setconfig.KV("media", setconfig.ListOf(query)),
			setconfig.KV("argument_sets", setconfig.List(value)),
		}
		if method != "" {
			entries = append(entries, setconfig.KV("method", setconfig.Scalar(method)))
		}
		out = append(out, setconfig.Map(entries...))
	}
	return setconfig.List(out...), nil
}

// isMediaQuery rejects keys that are empty or numeric. Null, numeric and
// boolean YAML keys never name a query; string keys are rejected when they
// read as a decimal number.
func isMediaQuery(key, tag string) bool {
	switch tag {
	case "!!null", "!!int", "!!float", "!!bool":
		return false
	}
	return strings.TrimSpace(key) != "" && !decimalNumber.MatchString(key)
}

var decimalNumber = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?\s*$`)
