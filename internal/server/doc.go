// Package server implements the MCP (Model Context Protocol) server for
// responsive image sets.
//
// This package provides a JSON-RPC 2.0 server that resolves configured
// responsive image sets against image files, so clients can inspect exactly
// which sources, variants and fallback image a set produces.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - responsive_sets_list: Configured sets and their config shape
//   - responsive_image_resolve: Apply a set to an image file
//   - responsive_methods_list: Resample methods definitions may use
//   - image_dimensions: Get width and height of an image file
//
// # Image Caching
//
// Base images are decoded once and cached by path for the lifetime of the
// server. Resampled variants are produced per call and not kept.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, naming the set, media query or method at fault
//
// Unknown sets are always errors.
package server
