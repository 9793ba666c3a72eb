package responsive

import (
	"fmt"
	"strconv"

	"github.com/ironsheep/responsive-images-mcp/internal/setconfig"
)

// Keys whose presence marks a definition as flat rather than a list of
// sub-definitions. dimension_sets is the legacy spelling of argument_sets.
var reservedDefinitionKeys = []string{"method", "argument_sets", "dimension_sets", "media", "sizes"}

// IsAssociative reports whether a definition collection describes a single
// definition (true) rather than a list of definitions (false).
//
// Empty collections and lists are not associative. A map whose keys are
// exactly "0".."n-1" in order behaves as a list; any other key makes it
// associative.
func IsAssociative(n *setconfig.Node) bool {
	if !n.IsMap() || n.Len() == 0 {
		return false
	}
	for i, k := range n.Keys() {
		if k != strconv.Itoa(i) {
			return true
		}
	}
	return false
}

func isFlatDefinition(n *setconfig.Node) bool {
	if !n.IsMap() {
		return false
	}
	for _, k := range reservedDefinitionKeys {
		if _, ok := n.Get(k); ok {
			return true
		}
	}
	return false
}

// BuildSource turns one flat definition into a Source on base. The method
// falls back to defaultMethod when the definition names none.
func BuildSource(def *setconfig.Node, base ImageResource, defaultMethod string) (*Source, error) {
	canonical, err := canonicalize(def, defaultMethod)
	if err != nil {
		return nil, err
	}
	if !base.HasCapability(canonical.Method) {
		return nil, &UnsupportedMethodError{Method: canonical.Method}
	}
	return NewSource(base, canonical), nil
}

// BuildSourceSet builds one Source per definition, keeping their order.
func BuildSourceSet(defs []*setconfig.Node, base ImageResource, defaultMethod string) (SourceSet, error) {
	set := make(SourceSet, 0, len(defs))
	for i, def := range defs {
		src, err := BuildSource(def, base, defaultMethod)
		if err != nil {
			return nil, fmt.Errorf("definition %d: %w", i, err)
		}
		set = append(set, src)
	}
	return set, nil
}

func canonicalize(def *setconfig.Node, defaultMethod string) (SourceDefinition, error) {
	if !def.IsMap() {
		return SourceDefinition{}, fmt.Errorf("%w: definition must be a map, got %s", ErrInvalidConfig, def.Kind())
	}

	sets, ok := def.Get("argument_sets")
	if !ok || sets.IsNull() {
		sets, ok = def.Get("dimension_sets")
	}
	if !ok || !sets.IsList() || sets.Len() == 0 {
		return SourceDefinition{}, fmt.Errorf("%w: definition does not have any argument_sets defined", ErrInvalidConfig)
	}

	argumentSets := make([]Arguments, 0, sets.Len())
	for i, item := range sets.Items() {
		args, err := toArguments(item)
		if err != nil {
			return SourceDefinition{}, fmt.Errorf("%w: argument set %d: %v", ErrInvalidConfig, i, err)
		}
		argumentSets = append(argumentSets, args)
	}

	method := defaultMethod
	if m, ok := def.Get("method"); ok && !m.IsNull() {
		s, isStr := m.String()
		if !isStr || s == "" {
			return SourceDefinition{}, fmt.Errorf("%w: method must be a non-empty string", ErrInvalidConfig)
		}
		method = s
	}
	if method == "" {
		return SourceDefinition{}, fmt.Errorf("%w: no method configured", ErrInvalidConfig)
	}

	sizes, err := stringsField(def, "sizes")
	if err != nil {
		return SourceDefinition{}, err
	}
	media, err := stringsField(def, "media")
	if err != nil {
		return SourceDefinition{}, err
	}

	return SourceDefinition{
		Method:       method,
		ArgumentSets: argumentSets,
		Sizes:        sizes,
		Media:        media,
	}, nil
}

// stringsField reads a list of strings, accepting a bare string as a
// one-element list.
func stringsField(def *setconfig.Node, key string) ([]string, error) {
	v, ok := def.Get(key)
	if !ok || v.IsNull() {
		return nil, nil
	}
	if s, isStr := v.String(); isStr {
		return []string{s}, nil
	}
	if !v.IsList() {
		return nil, fmt.Errorf("%w: %s must be a string or a list of strings", ErrInvalidConfig, key)
	}
	out := make([]string, 0, v.Len())
	for _, item := range v.Items() {
		s, isStr := item.String()
		if !isStr {
			return nil, fmt.Errorf("%w: %s must only contain strings", ErrInvalidConfig, key)
		}
		out = append(out, s)
	}
	return out, nil
}

// toArguments converts a non-empty list of scalars.
func toArguments(n *setconfig.Node) (Arguments, error) {
	if !n.IsList() {
		return nil, fmt.Errorf("expected a list of arguments, got %s", n.Kind())
	}
	if n.Len() == 0 {
		return nil, fmt.Errorf("argument list is empty")
	}
	args := make(Arguments, 0, n.Len())
	for _, item := range n.Items() {
		if !item.IsScalar() {
			return nil, fmt.Errorf("arguments must be scalars, got %s", item.Kind())
		}
		args = append(args, item.Value())
	}
	return args, nil
}
