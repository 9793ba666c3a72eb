package setconfig

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Set is the raw configuration of one named responsive image set.
type Set struct {
	// Name is the set name as declared in configuration.
	Name string
	// Config is the set's map node.
	Config *Node
}

// Field returns a field of the set's configuration. Null values count as
// absent.
func (s *Set) Field(key string) (*Node, bool) {
	v, ok := s.Config.Get(key)
	if !ok || v.IsNull() {
		return nil, false
	}
	return v, true
}

// StringField returns a string field. A present field of another type is
// reported as an error.
func (s *Set) StringField(key string) (string, bool, error) {
	v, ok := s.Field(key)
	if !ok {
		return "", false, nil
	}
	str, isStr := v.String()
	if !isStr {
		return "", false, fmt.Errorf("field %q of set %q must be a string, got %s", key, s.Name, v.Kind())
	}
	return str, true, nil
}

// Sets is a read-only collection of named sets. Lookup ignores case.
//
// Sets is safe for concurrent use; nothing mutates it after construction.
type Sets struct {
	names  []string
	byName map[string]*Set
}

// NewSets builds a collection from a map node of set name to set config.
// Names that differ only in case are rejected since lookups could not tell
// them apart.
func NewSets(root *Node) (*Sets, error) {
	s := &Sets{byName: make(map[string]*Set)}
	if root.IsNull() {
		return s, nil
	}
	if !root.IsMap() {
		return nil, fmt.Errorf("sets must be a map of set name to config, got %s", root.Kind())
	}

	items := root.Items()
	for i, name := range root.Keys() {
		cfg := items[i]
		if !cfg.IsMap() {
			return nil, fmt.Errorf("config for set %q must be a map, got %s", name, cfg.Kind())
		}
		key := foldName(name)
		if prev, dup := s.byName[key]; dup {
			return nil, fmt.Errorf("set %q conflicts with set %q (names are case-insensitive)", name, prev.Name)
		}
		s.byName[key] = &Set{Name: name, Config: cfg}
		s.names = append(s.names, name)
	}
	return s, nil
}

// Lookup finds a set by name, ignoring case.
func (s *Sets) Lookup(name string) (*Set, bool) {
	if s == nil {
		return nil, false
	}
	set, ok := s.byName[foldName(name)]
	return set, ok
}

// Names returns the set names in declaration order.
func (s *Sets) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of configured sets.
func (s *Sets) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// foldName normalises a set name for case-insensitive lookup.
func foldName(name string) string {
	return cases.Fold().String(name)
}
