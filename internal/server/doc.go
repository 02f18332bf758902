// Package server implements the MCP (Model Context Protocol) server for
// image selection tools.
//
// This package provides a JSON-RPC 2.0 server that exposes magic-wand style
// selection through the MCP protocol. A client loads an image, builds a
// selection with one or more selection calls, then inspects or exports it.
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
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_sample_color: Get color at pixel, including the comparison format
//
// Selection:
//   - image_select_contiguous: Grow a region from a seed pixel
//   - image_select_by_color: Select every pixel close to a color
//
// Selection Output:
//   - image_selection_extract: Cut the selection out as a transparent PNG
//   - image_selection_overlay: Tint the selection on a preview
//   - image_selection_invert: Invert the current selection
//   - image_selection_clear: Drop the current selection
//
// # Selection State
//
// Each image path has at most one current selection. The selection tools
// accept a mode (replace, add, subtract, intersect) that decides how the
// new region merges with it. Parameters left out of a call fall back to the
// server's config.Config.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(cfg, logger)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
