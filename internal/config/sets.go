package config

import (
	"fmt"

	"github.com/ironsheep/responsive-images-mcp/internal/responsive"
	"github.com/ironsheep/responsive-images-mcp/internal/setconfig"
)

// LoadSets reads c.SetsFile and returns its sets and the layered defaults.
func (c *Config) LoadSets() (*setconfig.Sets, responsive.Defaults, error) {
	root, err := setconfig.DecodeFile(c.SetsFile)
	if err != nil {
		return nil, responsive.Defaults{}, err
	}
	return c.parseSets(root)
}

func (c *Config) parseSets(root *setconfig.Node) (*setconfig.Sets, responsive.Defaults, error) {
	defaults := responsive.DefaultDefaults()

	if !root.IsNull() && !root.IsMap() {
		return nil, defaults, fmt.Errorf("config: sets file must be a map, got %s", root.Kind())
	}

	if node, ok := root.Get("defaults"); ok && !node.IsNull() {
		if err := applyFileDefaults(&defaults, node); err != nil {
			return nil, defaults, err
		}
	}
	c.applyEnvDefaults(&defaults)

	if err := defaults.Validate(); err != nil {
		return nil, defaults, fmt.Errorf("config: %w", err)
	}

	setsNode, _ := root.Get("sets")
	sets, err := setconfig.NewSets(setsNode)
	if err != nil {
		return nil, defaults, fmt.Errorf("config: %w", err)
	}
	return sets, defaults, nil
}

func applyFileDefaults(d *responsive.Defaults, node *setconfig.Node) error {
	if !node.IsMap() {
		return fmt.Errorf("config: defaults must be a map, got %s", node.Kind())
	}

	str := func(key string) (string, bool, error) {
		v, ok := node.Get(key)
		if !ok || v.IsNull() {
			return "", false, nil
		}
		s, isStr := v.String()
		if !isStr {
			return "", false, fmt.Errorf("config: defaults.%s must be a string", key)
		}
		return s, true, nil
	}

	if s, ok, err := str("default_format"); err != nil {
		return err
	} else if ok {
		d.Format = responsive.Format(s)
	}
	if s, ok, err := str("default_method"); err != nil {
		return err
	} else if ok {
		d.Method = s
	}
	if s, ok, err := str("default_css_classes"); err != nil {
		return err
	} else if ok {
		d.CSSClasses = s
	}

	for _, key := range []string{"default_image_dimensions", "default_image_arguments", "default_arguments"} {
		v, ok := node.Get(key)
		if !ok || v.IsNull() {
			continue
		}
		if !v.IsList() {
			return fmt.Errorf("config: defaults.%s must be a list", key)
		}
		dims := make(responsive.Arguments, 0, v.Len())
		for _, item := range v.Items() {
			if !item.IsScalar() {
				return fmt.Errorf("config: defaults.%s must only contain scalars", key)
			}
			dims = append(dims, item.Value())
		}
		d.Dimensions = dims
		break
	}
	return nil
}

func (c *Config) applyEnvDefaults(d *responsive.Defaults) {
	if c.DefaultFormat != "" {
		d.Format = responsive.Format(c.DefaultFormat)
	}
	if c.DefaultMethod != "" {
		d.Method = c.DefaultMethod
	}
	if len(c.DefaultDimensions) > 0 {
		dims := make(responsive.Arguments, len(c.DefaultDimensions))
		for i, n := range c.DefaultDimensions {
			dims[i] = n
		}
		d.Dimensions = dims
	}
	if c.DefaultCSSClasses != nil {
		d.CSSClasses = *c.DefaultCSSClasses
	}
}
