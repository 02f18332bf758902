package server

import (
	"github.com/ironsheep/image-select-mcp/internal/selection"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// selectionProperties returns the input properties shared by the selection
// tools, merged with the tool-specific ones.
func selectionProperties(extra map[string]interface{}) map[string]interface{} {
	props := map[string]interface{}{
		"path": pathProperty(),
		"threshold": map[string]interface{}{
			"type":        "number",
			"description": "Tolerance 0-255: how far a color may differ from the reference and still be selected. 0 selects exact matches only. Default from server config (15)",
			"minimum":     0,
			"maximum":     255,
		},
		"criterion": map[string]interface{}{
			"type":        "string",
			"enum":        selection.CriterionNames(),
			"description": "Which color component is compared: composite (max of R,G,B), a single channel, or HSV hue/saturation/value. Default composite",
		},
		"antialias": map[string]interface{}{
			"type":        "boolean",
			"description": "Soften the region edge with partial selection between threshold and 1.5x threshold. Default true",
		},
		"select_transparent": map[string]interface{}{
			"type":        "boolean",
			"description": "When the reference color is fully transparent, compare opacity instead of color. Default true",
		},
		"feather_radius": map[string]interface{}{
			"type":        "number",
			"description": "Gaussian feathering radius in pixels applied to the new selection (0 = none)",
			"minimum":     0,
		},
		"mode": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"replace", "add", "subtract", "intersect"},
			"description": "How the new selection combines with the image's current selection. Default replace",
			"default":     "replace",
		},
		"include_mask": map[string]interface{}{
			"type":        "boolean",
			"description": "Return the resulting mask as base64 PNG (255 = selected). Default true",
			"default":     true,
		},
	}
	for k, v := range extra {
		props[k] = v
	}
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file (PNG, JPEG, GIF, BMP, TIFF, WebP) and return its dimensions, format, bit depth and alpha presence.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate, including the #RRGGBBAA form accepted by image_select_by_color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Selection
		{
			Name:        "image_select_contiguous",
			Description: "Magic wand: select the connected region of similar color around a seed pixel (4-connected). Returns selection statistics, bounding box and optionally the mask.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": selectionProperties(map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Seed X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Seed Y coordinate (0-based, from top)",
					},
				}),
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_select_by_color",
			Description: "Select every pixel of the image similar to a color, regardless of connectivity.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": selectionProperties(map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Reference color as hex #RRGGBB or #RRGGBBAA. Use alpha 00 to select transparent areas",
					},
				}),
				"required": []string{"path", "color"},
			},
		},
		{
			Name:        "image_selection_extract",
			Description: "Cut the current selection out of the image as a PNG with transparency, cropped to the selection's bounding box.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_selection_overlay",
			Description: "Return the image with the current selection tinted, to check what a selection covers.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Tint color as hex with alpha (default from server config, #FF000080)",
					},
					"outline": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw the selection boundary in the opaque tint color. Default true",
						"default":     true,
					},
					"max_size": map[string]interface{}{
						"type":        "integer",
						"description": "Downscale the preview so neither side exceeds this many pixels (0 = full size)",
						"default":     0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_selection_invert",
			Description: "Invert the current selection of an image. Without a selection, the whole image becomes selected.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_selection_clear",
			Description: "Discard the current selection of an image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
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
