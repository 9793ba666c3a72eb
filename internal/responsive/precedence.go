package responsive

import "github.com/ironsheep/responsive-images-mcp/internal/setconfig"

// Override holds what a caller passed at render time, e.g.
// $Image.HeroSet('Fill', 800, 600).
type Override struct {
	Method     string
	HasMethod  bool
	Dimensions Arguments
}

// ParseOverride splits call-time arguments. A leading string is the method;
// whatever follows is the dimensions. Without a leading string the whole
// list is the dimensions.
func ParseOverride(args []interface{}) Override {
	var o Override
	if len(args) == 0 {
		return o
	}
	if method, ok := args[0].(string); ok {
		o.Method, o.HasMethod = method, true
		args = args[1:]
	}
	if len(args) > 0 {
		o.Dimensions = append(Arguments(nil), args...)
	}
	return o
}

// ResolveMethod returns the first non-empty of override, perSet and global.
func ResolveMethod(override, perSet, global string) string {
	if override != "" {
		return override
	}
	if perSet != "" {
		return perSet
	}
	return global
}

// ResolveDimensions returns the first non-empty of override, perSet and global.
func ResolveDimensions(override, perSet, global Arguments) Arguments {
	if len(override) > 0 {
		return override
	}
	if len(perSet) > 0 {
		return perSet
	}
	return global
}

// ResolveCSSClasses returns perSet when configured, global otherwise. Calls
// cannot override classes.
func ResolveCSSClasses(perSet *string, global string) string {
	if perSet != nil {
		return *perSet
	}
	return global
}

// setMethod reads the per-set default image method.
func setMethod(set *setconfig.Set) (string, error) {
	for _, key := range []string{"default_image_method", "method"} {
		m, ok, err := set.StringField(key)
		if err != nil {
			return "", err
		}
		if ok && m != "" {
			return m, nil
		}
	}
	return "", nil
}

// setDimensions reads the per-set default image arguments, accepting the
// legacy spellings.
func setDimensions(set *setconfig.Set) (Arguments, error) {
	for _, key := range []string{"default_image_dimensions", "default_image_arguments", "default_arguments"} {
		v, ok := set.Field(key)
		if !ok {
			continue
		}
		args, err := toArguments(v)
		if err != nil {
			return nil, invalidConfig(set.Name, "%s: %v", key, err)
		}
		return args, nil
	}
	return nil, nil
}

func setCSSClasses(set *setconfig.Set) (*string, error) {
	c, ok, err := set.StringField("css_classes")
	if err != nil || !ok {
		return nil, err
	}
	return &c, nil
}
