package server

import "github.com/ironsheep/responsive-images-mcp/internal/imaging"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "responsive_sets_list",
			Description: "List the configured responsive image sets with the shape of their configuration (definition, art_direction or arguments).",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "responsive_image_resolve",
			Description: "Apply a named responsive image set to an image and return the render model: format, ordered sources with their resampled variants, sizes and media, and the default fallback image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the base image file",
					},
					"set": map[string]interface{}{
						"type":        "string",
						"description": "Name of the responsive image set (case-insensitive)",
					},
					"args": map[string]interface{}{
						"type":        "array",
						"description": "Optional call-time arguments for the default image, e.g. [800, 600] or [\"Fill\", 800, 600]",
						"items": map[string]interface{}{
							"type": []string{"string", "number"},
						},
					},
					"css_classes": map[string]interface{}{
						"type":        "string",
						"description": "Optional space-separated CSS classes that replace the set's and the global classes",
					},
				},
				"required": []string{"path", "set"},
			},
		},
		{
			Name:        "responsive_methods_list",
			Description: "List the resample methods set definitions may use.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_cache_clear",
			Description: "Drop decoded base images from the cache, either one path or all of them. Use after an image file changes on disk.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to evict; omit to clear the whole cache",
					},
				},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}

// methodsResult lists the resample methods.
type methodsResult struct {
	Methods []string `json:"methods"`
}

func listMethods() *methodsResult {
	return &methodsResult{Methods: imaging.Methods()}
}
