package server

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetToolDefinitions(t *testing.T) {
	var names []string
	for _, tool := range GetToolDefinitions() {
		names = append(names, tool.Name)
	}

	assert.ElementsMatch(t, []string{
		"responsive_sets_list",
		"responsive_image_resolve",
		"responsive_methods_list",
		"image_dimensions",
		"image_cache_clear",
	}, names)
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			assert.NotEmpty(t, tool.Description)
			assert.Equal(t, "object", tool.InputSchema["type"])
			assert.IsType(t, map[string]interface{}{}, tool.InputSchema["properties"])

			// Every definition must survive the trip to the client.
			_, err := json.Marshal(tool)
			assert.NoError(t, err)
		})
	}
}

func TestToolDefinitions_Required(t *testing.T) {
	tests := []struct {
		tool     string
		required []string
	}{
		{"responsive_image_resolve", []string{"path", "set"}},
		{"image_dimensions", []string{"path"}},
		{"responsive_sets_list", nil},
		{"responsive_methods_list", nil},
		{"image_cache_clear", nil},
	}

	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			tool, ok := toolMap[tt.tool]
			require.True(t, ok, "missing tool %s", tt.tool)

			got, _ := tool.InputSchema["required"].([]string)
			assert.Equal(t, len(tt.required), len(got), "required: got %v", got)

			props := tool.InputSchema["properties"].(map[string]interface{})
			for i, name := range tt.required {
				if assert.Less(t, i, len(got)) {
					assert.Equal(t, name, got[i])
				}
				assert.Contains(t, props, name, "required field missing from properties")
			}
		})
	}
}

func TestHandleToolsList(t *testing.T) {
	s := newTestServer(t)
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"})

	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(map[string]interface{})
	require.True(t, ok, "Result should be a map")
	toolsList, ok := result["tools"].([]Tool)
	require.True(t, ok, "tools should be a slice of Tool")
	assert.Len(t, toolsList, len(GetToolDefinitions()))
}
