package responsive

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironsheep/responsive-images-mcp/internal/setconfig"
)

// fakeImage records resample calls and produces named variants.
type fakeImage struct {
	name    string
	methods map[string]bool

	mu    sync.Mutex
	calls []string
}

func newFakeImage(methods ...string) *fakeImage {
	if len(methods) == 0 {
		methods = []string{"ScaleWidth", "Fill", "Fit", "Pad"}
	}
	m := make(map[string]bool, len(methods))
	for _, name := range methods {
		m[name] = true
	}
	return &fakeImage{name: "base", methods: m}
}

func (f *fakeImage) HasCapability(method string) bool {
	return f.methods[method]
}

func (f *fakeImage) Invoke(method string, args Arguments) (ImageResource, error) {
	if !f.methods[method] {
		return nil, &UnsupportedMethodError{Method: method}
	}
	name := fmt.Sprintf("%s%v", method, []interface{}(args))
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
	return &fakeImage{name: name, methods: f.methods}, nil
}

func (f *fakeImage) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func nameOf(t *testing.T, r ImageResource) string {
	t.Helper()
	f, ok := r.(*fakeImage)
	require.True(t, ok, "unexpected resource type %T", r)
	return f.name
}

func mustSets(t *testing.T, yml string) *setconfig.Sets {
	t.Helper()
	root, err := setconfig.Decode([]byte(yml))
	require.NoError(t, err)
	sets, err := setconfig.NewSets(root)
	require.NoError(t, err)
	return sets
}

func mustResolver(t *testing.T, yml string) *Resolver {
	t.Helper()
	r, err := NewResolver(mustSets(t, yml), DefaultDefaults())
	require.NoError(t, err)
	return r
}

func mustNode(t *testing.T, yml string) *setconfig.Node {
	t.Helper()
	n, err := setconfig.Decode([]byte(yml))
	require.NoError(t, err)
	return n
}

func mustGet(t *testing.T, n *setconfig.Node, key string) *setconfig.Node {
	t.Helper()
	v, ok := n.Get(key)
	require.True(t, ok, "missing key %q", key)
	return v
}
