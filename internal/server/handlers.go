package server

import (
	"encoding/json"
	"fmt"

	"github.com/darrenk196/image-analyzer/internal/detection"
	"github.com/darrenk196/image-analyzer/internal/guide"
	"github.com/darrenk196/image-analyzer/internal/imaging"
	"github.com/darrenk196/image-analyzer/internal/palette"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_quantize").
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

	s.debugf("tool call: %s", params.Name)
	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads pixel buffers from cache as needed
//  4. Calls the appropriate engine function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_preview":
		return s.handleImagePreview(args)
	case "image_analyze":
		return s.handleImageAnalyze(args)

	// Pixel Transforms
	case "image_grayscale":
		return s.handleImageGrayscale(args)
	case "image_smooth":
		return s.handleImageSmooth(args)
	case "image_quantize":
		return s.handleImageQuantize(args)
	case "image_posterize":
		return s.handleImagePosterize(args)

	// Color Operations
	case "image_extract_colors":
		return s.handleImageExtractColors(args)
	case "palette_list":
		return s.handlePaletteList(args)
	case "palette_synthesize":
		return s.handlePaletteSynthesize(args)
	case "image_remap_palette":
		return s.handleImageRemapPalette(args)

	// Structure Detection
	case "image_detect_edges":
		return s.handleImageDetectEdges(args)
	case "image_segment_regions":
		return s.handleImageSegmentRegions(args)
	case "image_trace_contours":
		return s.handleImageTraceContours(args)

	// Guide Rendering
	case "image_generate_guide":
		return s.handleImageGenerateGuide(args)

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

// resolvePalette picks explicit base colors when given, otherwise looks up a
// builtin palette by name.
func resolvePalette(colors []string, name string) ([]string, error) {
	if len(colors) > 0 {
		return colors, nil
	}
	if name == "" {
		return nil, nil
	}
	p, ok := palette.Find(name)
	if !ok {
		return nil, fmt.Errorf("unknown palette: %s", name)
	}
	return p.Colors, nil
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type imagePreviewArgs struct {
	Path         string `json:"path"`
	MaxDimension int    `json:"max_dimension"`
}

func (s *Server) handleImagePreview(args json.RawMessage) (interface{}, error) {
	var a imagePreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.MaxDimension == 0 {
		a.MaxDimension = 512
	}
	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Preview(buf, a.MaxDimension)
}

func (s *Server) handleImageAnalyze(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Analyze(buf)
}

// === Pixel Transform Handlers ===

func (s *Server) handleImageGrayscale(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	gray, err := imaging.Grayscale(buf)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(gray)
}

type imageSmoothArgs struct {
	Path   string  `json:"path"`
	Radius float64 `json:"radius"`
}

func (s *Server) handleImageSmooth(args json.RawMessage) (interface{}, error) {
	var a imageSmoothArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Radius == 0 {
		a.Radius = 2.0
	}
	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	smoothed, err := imaging.Smooth(buf, a.Radius)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(smoothed)
}

type imageLevelsArgs struct {
	Path   string `json:"path"`
	Levels int    `json:"levels"`
}

func (s *Server) handleImageQuantize(args json.RawMessage) (interface{}, error) {
	var a imageLevelsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Levels == 0 {
		a.Levels = 8
	}
	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	reduced, err := imaging.Quantize(buf, a.Levels)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(reduced)
}

func (s *Server) handleImagePosterize(args json.RawMessage) (interface{}, error) {
	var a imageLevelsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Levels == 0 {
		a.Levels = 8
	}
	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	reduced, err := imaging.Posterize(buf, a.Levels)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(reduced)
}

// === Color Operation Handlers ===

type imageExtractColorsArgs struct {
	Path   string `json:"path"`
	Count  int    `json:"count"`
	Stride int    `json:"stride"`
}

func (s *Server) handleImageExtractColors(args json.RawMessage) (interface{}, error) {
	var a imageExtractColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 8
	}
	if a.Stride == 0 {
		a.Stride = 10
	}
	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.ExtractDominantColors(buf, a.Count, a.Stride)
}

type paletteListArgs struct {
	Category string `json:"category"`
}

// PaletteListResult contains the curated palettes matching a filter.
type PaletteListResult struct {
	Palettes []palette.Palette `json:"palettes"`
	Count    int               `json:"count"`
}

func (s *Server) handlePaletteList(args json.RawMessage) (interface{}, error) {
	var a paletteListArgs
	if len(args) > 0 {
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, err
		}
	}
	palettes := palette.Builtin(a.Category)
	return &PaletteListResult{Palettes: palettes, Count: len(palettes)}, nil
}

type paletteSynthesizeArgs struct {
	Colors []string `json:"colors"`
}

// PaletteSynthesizeResult contains a synthesized candidate set.
type PaletteSynthesizeResult struct {
	Entries []palette.Entry `json:"entries"`
	Count   int             `json:"count"`
}

func (s *Server) handlePaletteSynthesize(args json.RawMessage) (interface{}, error) {
	var a paletteSynthesizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	entries := palette.Synthesize(a.Colors)
	return &PaletteSynthesizeResult{Entries: entries, Count: len(entries)}, nil
}

type imageRemapPaletteArgs struct {
	Path    string   `json:"path"`
	Colors  []string `json:"colors"`
	Palette string   `json:"palette"`
}

func (s *Server) handleImageRemapPalette(args json.RawMessage) (interface{}, error) {
	var a imageRemapPaletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	colors, err := resolvePalette(a.Colors, a.Palette)
	if err != nil {
		return nil, err
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("either colors or palette must be provided")
	}
	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	remapped, err := palette.Remap(buf, colors)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(remapped)
}

// === Structure Detection Handlers ===

type imageDetectEdgesArgs struct {
	Path        string   `json:"path"`
	DetailLevel int      `json:"detail_level"`
	Threshold   *float64 `json:"threshold,omitempty"`
	Thickness   *int     `json:"thickness,omitempty"`
}

func (s *Server) handleImageDetectEdges(args json.RawMessage) (interface{}, error) {
	var a imageDetectEdgesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.DetailLevel == 0 {
		a.DetailLevel = 6
	}
	params := detection.LevelParams(a.DetailLevel)
	if a.Threshold != nil {
		params.Threshold = *a.Threshold
	}
	if a.Thickness != nil {
		params.Thickness = *a.Thickness
	}

	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	edges, err := detection.DetectEdges(buf, params.Threshold)
	if err != nil {
		return nil, err
	}
	thickened, err := detection.ThickenLines(edges, params.Thickness)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(thickened)
}

type imageSegmentRegionsArgs struct {
	Path    string `json:"path"`
	MinSize *int   `json:"min_size,omitempty"`
}

// RegionSummary describes one segmented region.
type RegionSummary struct {
	ID   int             `json:"id"`   // Region identifier in discovery order
	Size int             `json:"size"` // Pixel count
	Seed detection.Point `json:"seed"` // First pixel in scan order
}

// SegmentRegionsResult summarizes a segmentation pass.
type SegmentRegionsResult struct {
	Regions []RegionSummary `json:"regions"`
	Count   int             `json:"count"`
}

func (s *Server) handleImageSegmentRegions(args json.RawMessage) (interface{}, error) {
	var a imageSegmentRegionsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	minSize := detection.DefaultMinRegionSize
	if a.MinSize != nil {
		minSize = *a.MinSize
	}
	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	regions, err := detection.SegmentRegions(buf, minSize)
	if err != nil {
		return nil, err
	}

	summaries := make([]RegionSummary, 0, len(regions))
	for id := 0; id < len(regions); id++ {
		points := regions[id]
		summaries = append(summaries, RegionSummary{
			ID:   id,
			Size: len(points),
			Seed: points[0],
		})
	}
	return &SegmentRegionsResult{Regions: summaries, Count: len(summaries)}, nil
}

type imageTraceContoursArgs struct {
	Path    string   `json:"path"`
	MinSize *int     `json:"min_size,omitempty"`
	Epsilon *float64 `json:"epsilon,omitempty"`
}

// Contour is one simplified region boundary.
type Contour struct {
	RegionID int               `json:"region_id"`
	Points   []detection.Point `json:"points"`
}

// TraceContoursResult contains the simplified boundary polylines of all
// traceable regions.
type TraceContoursResult struct {
	Contours []Contour `json:"contours"`
	Count    int       `json:"count"`
}

func (s *Server) handleImageTraceContours(args json.RawMessage) (interface{}, error) {
	var a imageTraceContoursArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	minSize := detection.DefaultMinRegionSize
	if a.MinSize != nil {
		minSize = *a.MinSize
	}
	epsilon := detection.DefaultEpsilon
	if a.Epsilon != nil {
		epsilon = *a.Epsilon
	}

	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	regions, err := detection.SegmentRegions(buf, minSize)
	if err != nil {
		return nil, err
	}

	contours := make([]Contour, 0, len(regions))
	for id := 0; id < len(regions); id++ {
		points := regions[id]
		// The first region pixel in scan order is topmost-leftmost and
		// therefore always a boundary pixel.
		traced := detection.TraceContour(points, buf.Width, buf.Height, points[0].X, points[0].Y)
		if traced == nil {
			continue
		}
		contours = append(contours, Contour{
			RegionID: id,
			Points:   detection.SimplifyContour(traced, epsilon),
		})
	}
	return &TraceContoursResult{Contours: contours, Count: len(contours)}, nil
}

// === Guide Rendering Handlers ===

type imageGenerateGuideArgs struct {
	Path        string   `json:"path"`
	Mode        string   `json:"mode"`
	DetailLevel int      `json:"detail_level"`
	Colors      []string `json:"colors"`
	Palette     string   `json:"palette"`
}

func (s *Server) handleImageGenerateGuide(args json.RawMessage) (interface{}, error) {
	var a imageGenerateGuideArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.DetailLevel == 0 {
		a.DetailLevel = 6
	}
	colors, err := resolvePalette(a.Colors, a.Palette)
	if err != nil {
		return nil, err
	}
	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	rendered, err := guide.Generate(buf, a.Mode, a.DetailLevel, colors)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(rendered)
}
