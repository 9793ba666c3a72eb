package server

import (
	"encoding/json"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/responsive-images-mcp/internal/imaging"
	"github.com/ironsheep/responsive-images-mcp/internal/responsive"
	"github.com/ironsheep/responsive-images-mcp/internal/setconfig"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "responsive_image_resolve").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.debug {
			log.Printf("Tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "responsive_sets_list":
		return s.handleSetsList()
	case "responsive_image_resolve":
		return s.handleImageResolve(args)
	case "responsive_methods_list":
		return listMethods(), nil
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_cache_clear":
		return s.handleImageCacheClear(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Set Handlers ===

// SetSummary describes one configured set.
type SetSummary struct {
	Name  string `json:"name"`
	Shape string `json:"shape"`
}

// SetsListResult lists the configured sets in declaration order.
type SetsListResult struct {
	Sets []SetSummary `json:"sets"`
}

func (s *Server) handleSetsList() (interface{}, error) {
	return &SetsListResult{Sets: SummarizeSets(s.resolver.Sets())}, nil
}

// SummarizeSets reports each set's configuration shape: "definition",
// "art_direction", "arguments", or "invalid" when none is present.
func SummarizeSets(sets *setconfig.Sets) []SetSummary {
	out := make([]SetSummary, 0, sets.Len())
	for _, name := range sets.Names() {
		set, _ := sets.Lookup(name)
		shape := "invalid"
		for _, key := range []string{"definition", "art_direction", "arguments"} {
			if _, ok := set.Field(key); ok {
				shape = key
				break
			}
		}
		out = append(out, SetSummary{Name: set.Name, Shape: shape})
	}
	return out
}

type imageResolveArgs struct {
	Path string        `json:"path"`
	Set  string        `json:"set"`
	Args []interface{} `json:"args,omitempty"`
	// CSSClasses replaces the resolved classes when present, even if empty.
	CSSClasses *string `json:"css_classes,omitempty"`
}

func (s *Server) handleImageResolve(args json.RawMessage) (interface{}, error) {
	var a imageResolveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Set == "" {
		return nil, fmt.Errorf("set is required")
	}
	base, err := s.cache.Open(a.Path)
	if err != nil {
		return nil, err
	}

	ri, err := s.resolver.Resolve(a.Set, base, normalizeCallArgs(a.Args)...)
	if err != nil {
		return nil, err
	}
	if a.CSSClasses != nil {
		ri.SetCSSClasses(*a.CSSClasses)
	}
	return newImageView(ri)
}

// normalizeCallArgs turns whole JSON numbers into ints so they read the same
// as dimensions from YAML.
func normalizeCallArgs(args []interface{}) []interface{} {
	out := make([]interface{}, len(args))
	for i, a := range args {
		if f, ok := a.(float64); ok && f == float64(int(f)) {
			out[i] = int(f)
			continue
		}
		out[i] = a
	}
	return out
}

// === Image Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// CacheClearResult reports how many base images were dropped.
type CacheClearResult struct {
	Evicted   int `json:"evicted"`
	Remaining int `json:"remaining"`
}

func (s *Server) handleImageCacheClear(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if len(args) > 0 {
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, err
		}
	}

	before := s.cache.Len()
	if a.Path == "" {
		s.cache.Clear()
	} else {
		s.cache.Evict(a.Path)
	}
	after := s.cache.Len()
	return &CacheClearResult{Evicted: before - after, Remaining: after}, nil
}

// === Views ===

// maxParallelSources bounds concurrent resampling per resolve call.
const maxParallelSources = 4

// ImageView is the JSON form of a resolved responsive image.
type ImageView struct {
	Format         string        `json:"format"`
	Template       string        `json:"template,omitempty"`
	CSSClasses     string        `json:"css_classes"`
	SourceIterable bool          `json:"source_iterable"`
	Sources        []SourceView  `json:"sources"`
	DefaultImage   VariantView   `json:"default_image"`
	DefaultMethod  string        `json:"default_method"`
	DefaultArgs    []interface{} `json:"default_arguments"`
}

// SourceView is the JSON form of one source.
type SourceView struct {
	Method   string        `json:"method"`
	Media    string        `json:"media,omitempty"`
	Sizes    string        `json:"sizes,omitempty"`
	Variants []VariantView `json:"variants"`
}

// VariantView describes one resampled image.
type VariantView struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func newImageView(ri *responsive.ResponsiveImage) (*ImageView, error) {
	view := &ImageView{
		Format:         string(ri.Format()),
		SourceIterable: ri.IsSourceIterable(),
		DefaultMethod:  ri.DefaultImageMethod(),
		DefaultArgs:    ri.DefaultImageDimensions(),
	}
	view.Template, _ = ri.Template()
	view.CSSClasses, _ = ri.CSSClasses()

	var sources responsive.SourceSet
	if src, ok := ri.Source(); ok {
		sources = responsive.SourceSet{src}
	} else if set, ok := ri.SourceSet(); ok {
		sources = set
	}

	// Sources resample in parallel; the resolution's memo makes shared
	// argument sets run once.
	view.Sources = make([]SourceView, len(sources))
	var g errgroup.Group
	g.SetLimit(maxParallelSources)
	for i, src := range sources {
		g.Go(func() error {
			variants, err := src.Variants()
			if err != nil {
				return err
			}
			sv := SourceView{
				Method:   src.Method(),
				Media:    src.MediaDescriptor(),
				Sizes:    src.SizesDescriptor(),
				Variants: make([]VariantView, 0, len(variants)),
			}
			for _, v := range variants {
				sv.Variants = append(sv.Variants, newVariantView(v))
			}
			view.Sources[i] = sv
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	def, err := ri.DefaultImage()
	if err != nil {
		return nil, fmt.Errorf("default image: %w", err)
	}
	view.DefaultImage = newVariantView(def)
	return view, nil
}

func newVariantView(r responsive.ImageResource) VariantView {
	res, ok := r.(*imaging.Resource)
	if !ok {
		return VariantView{}
	}
	return VariantView{Name: res.Name(), Width: res.Width(), Height: res.Height()}
}
