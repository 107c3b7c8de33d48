package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the shared schema fragment for the image path argument.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, color depth, alpha presence, and file size. Caches the decoded pixels for subsequent operations.",
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
			Name:        "image_preview",
			Description: "Return a downscaled preview of the image as base64 PNG, bounded by a maximum dimension.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"max_dimension": map[string]interface{}{
						"type":        "integer",
						"description": "Longest allowed side of the preview in pixels (default 512)",
						"default":     512,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_analyze",
			Description: "Compute per-channel and luminosity histograms plus average brightness and contrast for an image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Pixel Transforms
		{
			Name:        "image_grayscale",
			Description: "Convert an image to grayscale using perceptual luminosity weighting. Returns base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_smooth",
			Description: "Apply Gaussian smoothing to reduce noise before edge detection or segmentation. Returns base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"radius": map[string]interface{}{
						"type":        "number",
						"description": "Blur radius in pixels (default 2.0)",
						"default":     2.0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_quantize",
			Description: "Reduce each color channel to a number of discrete levels with rounding. Returns base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"levels": map[string]interface{}{
						"type":        "integer",
						"description": "Number of levels per channel (default 8)",
						"default":     8,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_posterize",
			Description: "Reduce each color channel to a number of discrete levels by truncation. Returns base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"levels": map[string]interface{}{
						"type":        "integer",
						"description": "Number of levels per channel (default 8)",
						"default":     8,
					},
				},
				"required": []string{"path"},
			},
		},

		// Color Operations
		{
			Name:        "image_extract_colors",
			Description: "Extract the dominant colors of an image via decimated-sample clustering (deterministic, fixed 3 passes).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to extract (default 8)",
						"default":     8,
					},
					"stride": map[string]interface{}{
						"type":        "integer",
						"description": "Sample one pixel per this many source pixels (default 10)",
						"default":     10,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "palette_list",
			Description: "List the curated builtin palettes, optionally filtered by category.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"category": map[string]interface{}{
						"type":        "string",
						"description": "Optional category filter (e.g. warm, cool, neutral, vivid)",
					},
				},
			},
		},
		{
			Name:        "palette_synthesize",
			Description: "Expand base hex colors into the full candidate set of tints, shades, and pairwise blends used for remapping.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colors": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Base colors as #RRGGBB strings",
					},
				},
				"required": []string{"colors"},
			},
		},
		{
			Name:        "image_remap_palette",
			Description: "Remap every pixel to its nearest synthesized palette entry. Accepts explicit base colors or a builtin palette name. Returns base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"colors": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Base colors as #RRGGBB strings. Overrides palette when both are given.",
					},
					"palette": map[string]interface{}{
						"type":        "string",
						"description": "Name of a builtin palette to use instead of explicit colors",
					},
				},
				"required": []string{"path"},
			},
		},

		// Structure Detection
		{
			Name:        "image_detect_edges",
			Description: "Produce a black-on-white Sobel edge field with detail-level driven threshold and line thickening. Returns base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"detail_level": map[string]interface{}{
						"type":        "integer",
						"description": "Detail level 1-10 selecting threshold and thickness (default 6)",
						"default":     6,
					},
					"threshold": map[string]interface{}{
						"type":        "number",
						"description": "Explicit gradient threshold; overrides the detail level when set",
					},
					"thickness": map[string]interface{}{
						"type":        "integer",
						"description": "Explicit line thickness; overrides the detail level when set",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_segment_regions",
			Description: "Partition the image into 4-connected regions of near-uniform color and summarize them.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"min_size": map[string]interface{}{
						"type":        "integer",
						"description": "Regions at or below this pixel count are discarded as noise (default 50)",
						"default":     50,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_trace_contours",
			Description: "Segment the image, trace each region's boundary, and return simplified contour polylines for vector export.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"min_size": map[string]interface{}{
						"type":        "integer",
						"description": "Regions at or below this pixel count are discarded (default 50)",
						"default":     50,
					},
					"epsilon": map[string]interface{}{
						"type":        "number",
						"description": "Simplification tolerance in pixels (default 2.5)",
						"default":     2.5,
					},
				},
				"required": []string{"path"},
			},
		},

		// Guide Rendering
		{
			Name:        "image_generate_guide",
			Description: "Render a paint-by-numbers style reference guide: 'lines' for outline art, 'blocks' for flat color blocks with borders. Returns base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"mode": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"lines", "blocks"},
						"description": "Guide rendering mode",
					},
					"detail_level": map[string]interface{}{
						"type":        "integer",
						"description": "Detail level 1-10 (default 6)",
						"default":     6,
					},
					"colors": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Optional base palette for blocks mode, as #RRGGBB strings",
					},
					"palette": map[string]interface{}{
						"type":        "string",
						"description": "Optional builtin palette name for blocks mode",
					},
				},
				"required": []string{"path", "mode"},
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
