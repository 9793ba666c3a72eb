package setconfig

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Decode parses a YAML document into a Node tree, keeping mapping order.
// An empty document decodes to a null node.
func Decode(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return Null(), nil
	}
	return fromYAML(doc.Content[0])
}

// DecodeFile reads and decodes a YAML file.
func DecodeFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	n, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

func fromYAML(y *yaml.Node) (*Node, error) {
	switch y.Kind {
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return Null(), nil
		}
		return fromYAML(y.Content[0])
	case yaml.AliasNode:
		return fromYAML(y.Alias)
	case yaml.ScalarNode:
		return scalarFromYAML(y)
	case yaml.SequenceNode:
		items := make([]*Node, 0, len(y.Content))
		for _, c := range y.Content {
			item, err := fromYAML(c)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return List(items...), nil
	case yaml.MappingNode:
		return mapFromYAML(y)
	default:
		return nil, fmt.Errorf("line %d: unsupported yaml node kind %d", y.Line, y.Kind)
	}
}

// mapFromYAML keeps keys in document order. Merged keys are placed where the
// merge key appears; explicit keys win over merged ones and, for a list of
// merged maps, earlier maps win over later ones.
func mapFromYAML(y *yaml.Node) (*Node, error) {
	explicit := make(map[string]bool)
	for i := 0; i+1 < len(y.Content); i += 2 {
		if k := y.Content[i]; !isMergeKey(k) {
			explicit[k.Value] = true
		}
	}

	var entries []KeyValue
	seen := make(map[string]bool)
	for i := 0; i+1 < len(y.Content); i += 2 {
		k, v := y.Content[i], y.Content[i+1]
		if isMergeKey(k) {
			sources, err := mergeSources(k, v)
			if err != nil {
				return nil, err
			}
			for _, src := range sources {
				for _, e := range src.Entries() {
					if explicit[e.Key] || seen[e.Key] {
						continue
					}
					seen[e.Key] = true
					entries = append(entries, e)
				}
			}
			continue
		}
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
		}
		val, err := fromYAML(v)
		if err != nil {
			return nil, err
		}
		entries = append(entries, KeyValue{Key: k.Value, Tag: k.ShortTag(), Value: val})
	}
	return Map(entries...), nil
}

func isMergeKey(k *yaml.Node) bool {
	return k.Kind == yaml.ScalarNode && k.ShortTag() == "!!merge"
}

// mergeSources decodes the value of a merge key: a mapping or a list of
// mappings.
func mergeSources(k, v *yaml.Node) ([]*Node, error) {
	for v.Kind == yaml.AliasNode {
		v = v.Alias
	}
	values := []*yaml.Node{v}
	if v.Kind == yaml.SequenceNode {
		values = v.Content
	}

	out := make([]*Node, 0, len(values))
	for _, item := range values {
		m, err := fromYAML(item)
		if err != nil {
			return nil, err
		}
		if !m.IsMap() {
			return nil, fmt.Errorf("line %d: merge value must be a mapping or a list of mappings", k.Line)
		}
		out = append(out, m)
	}
	return out, nil
}

func scalarFromYAML(y *yaml.Node) (*Node, error) {
	switch y.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		b, err := strconv.ParseBool(y.Value)
		if err != nil {
			var v bool
			if err := y.Decode(&v); err != nil {
				return nil, fmt.Errorf("line %d: %w", y.Line, err)
			}
			return Scalar(v), nil
		}
		return Scalar(b), nil
	case "!!int":
		var v int
		if err := y.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", y.Line, err)
		}
		return Scalar(v), nil
	case "!!float":
		var v float64
		if err := y.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", y.Line, err)
		}
		return Scalar(v), nil
	default:
		return Scalar(y.Value), nil
	}
}
