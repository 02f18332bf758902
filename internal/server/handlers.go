package server

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ironsheep/image-select-mcp/internal/imaging"
	"github.com/ironsheep/image-select-mcp/internal/selection"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_select_contiguous").
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

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Debug("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	s.logger.Debug("tool done", "tool", params.Name, "elapsed", time.Since(start))

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
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Selection
	case "image_select_contiguous":
		return s.handleSelectContiguous(args)
	case "image_select_by_color":
		return s.handleSelectByColor(args)
	case "image_selection_extract":
		return s.handleSelectionExtract(args)
	case "image_selection_overlay":
		return s.handleSelectionOverlay(args)
	case "image_selection_invert":
		return s.handleSelectionInvert(args)
	case "image_selection_clear":
		return s.handleSelectionClear(args)

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
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

// imageLoadResult adds the selection state to the image metadata.
type imageLoadResult struct {
	*imaging.ImageInfo
	HasSelection bool `json:"has_selection"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	info, err := imaging.LoadImageInfo(s.cache, a.Path)
	if err != nil {
		return nil, err
	}
	_, has := s.selections.Get(a.Path)
	return &imageLoadResult{ImageInfo: info, HasSelection: has}, nil
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

// === Selection Handlers ===

// selectionArgs holds the arguments shared by the selection tools. Pointer
// fields fall back to the server configuration when absent.
type selectionArgs struct {
	Path              string   `json:"path"`
	Threshold         *float64 `json:"threshold"`
	Criterion         *string  `json:"criterion"`
	Antialias         *bool    `json:"antialias"`
	SelectTransparent *bool    `json:"select_transparent"`
	FeatherRadius     *float64 `json:"feather_radius"`
	Mode              string   `json:"mode"`
	IncludeMask       *bool    `json:"include_mask"`
}

// selectionRequest is selectionArgs resolved against the configuration.
type selectionRequest struct {
	opts        selection.Options
	level       float64
	feather     float64
	op          selection.Operation
	includeMask bool
}

func (s *Server) resolveSelection(a *selectionArgs) (*selectionRequest, error) {
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	req := &selectionRequest{
		level:       s.cfg.Threshold,
		feather:     s.cfg.FeatherRadius,
		includeMask: true,
	}
	opts := s.cfg.Options()

	if a.Threshold != nil {
		if *a.Threshold < 0 || *a.Threshold > 255 {
			return nil, fmt.Errorf("threshold must be within 0-255, got %v", *a.Threshold)
		}
		req.level = *a.Threshold
		opts.Threshold = selection.ThresholdFromLevel(*a.Threshold)
	}
	if a.Criterion != nil {
		c, err := selection.ParseCriterion(*a.Criterion)
		if err != nil {
			return nil, err
		}
		opts.Criterion = c
	}
	if a.Antialias != nil {
		opts.Antialias = *a.Antialias
	}
	if a.SelectTransparent != nil {
		opts.SelectTransparent = *a.SelectTransparent
	}
	if a.FeatherRadius != nil {
		if *a.FeatherRadius < 0 {
			return nil, fmt.Errorf("feather_radius must not be negative")
		}
		req.feather = *a.FeatherRadius
	}
	if a.IncludeMask != nil {
		req.includeMask = *a.IncludeMask
	}

	op, err := selection.ParseOperation(a.Mode)
	if err != nil {
		return nil, err
	}
	req.op = op
	req.opts = opts
	return req, nil
}

// BoundsResult is a selection bounding box; (x2, y2) is exclusive.
type BoundsResult struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// SelectionResult describes the selection stored after a selection tool ran.
type SelectionResult struct {
	Mode      string               `json:"mode,omitempty"`
	Criterion string               `json:"criterion,omitempty"`
	Threshold float64              `json:"threshold"`
	Antialias bool                 `json:"antialias"`
	Stats     selection.Stats      `json:"stats"`
	Bounds    *BoundsResult        `json:"bounds,omitempty"`
	Mask      *imaging.ImageResult `json:"mask,omitempty"`
}

func newSelectionResult(mask *selection.Mask, includeMask bool) (*SelectionResult, error) {
	st := mask.Stats()
	res := &SelectionResult{Stats: st}
	if !st.Empty {
		res.Bounds = &BoundsResult{
			X1: st.Bounds.Min.X,
			Y1: st.Bounds.Min.Y,
			X2: st.Bounds.Max.X,
			Y2: st.Bounds.Max.Y,
		}
	}
	if includeMask {
		png, err := imaging.EncodeMask(mask)
		if err != nil {
			return nil, err
		}
		res.Mask = png
	}
	return res, nil
}

// storeSelection feathers a fresh mask, merges it into the image's stored
// selection and reports the result.
func (s *Server) storeSelection(path string, mask *selection.Mask, req *selectionRequest) (*SelectionResult, error) {
	if req.feather > 0 {
		mask = mask.Feather(req.feather)
	}

	combined, err := s.selections.Combine(path, mask, req.op)
	if err != nil {
		return nil, err
	}

	res, err := newSelectionResult(combined, req.includeMask)
	if err != nil {
		return nil, err
	}
	res.Mode = req.op.String()
	res.Criterion = req.opts.Criterion.String()
	res.Threshold = req.level
	res.Antialias = req.opts.Antialias
	return res, nil
}

type selectContiguousArgs struct {
	selectionArgs
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handleSelectContiguous(args json.RawMessage) (interface{}, error) {
	var a selectContiguousArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	req, err := s.resolveSelection(&a.selectionArgs)
	if err != nil {
		return nil, err
	}
	src, err := s.cache.Source(a.Path)
	if err != nil {
		return nil, err
	}

	mask, err := selection.SelectBySeed(src, a.X, a.Y, req.opts)
	if err != nil {
		return nil, err
	}
	return s.storeSelection(a.Path, mask, req)
}

type selectByColorArgs struct {
	selectionArgs
	Color string `json:"color"`
}

func (s *Server) handleSelectByColor(args json.RawMessage) (interface{}, error) {
	var a selectByColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	req, err := s.resolveSelection(&a.selectionArgs)
	if err != nil {
		return nil, err
	}
	ref, err := imaging.ParseColor(a.Color)
	if err != nil {
		return nil, err
	}
	src, err := s.cache.Source(a.Path)
	if err != nil {
		return nil, err
	}

	mask, err := selection.SelectByColor(src, selection.PixelFromColor(ref), req.opts)
	if err != nil {
		return nil, err
	}
	return s.storeSelection(a.Path, mask, req)
}

// storedSelection returns a copy of the selection stored for path.
func (s *Server) storedSelection(path string) (*selection.Mask, error) {
	mask, ok := s.selections.Get(path)
	if !ok {
		return nil, fmt.Errorf("no selection for %s", path)
	}
	return mask, nil
}

type selectionExtractArgs struct {
	Path  string  `json:"path"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleSelectionExtract(args json.RawMessage) (interface{}, error) {
	var a selectionExtractArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	mask, err := s.storedSelection(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.ExtractSelection(img, mask, a.Scale)
}

type selectionOverlayArgs struct {
	Path    string `json:"path"`
	Color   string `json:"color"`
	Outline *bool  `json:"outline"`
	MaxSize int    `json:"max_size"`
}

func (s *Server) handleSelectionOverlay(args json.RawMessage) (interface{}, error) {
	var a selectionOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Color == "" {
		a.Color = s.cfg.OverlayColor
	}
	outline := true
	if a.Outline != nil {
		outline = *a.Outline
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	mask, err := s.storedSelection(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SelectionOverlay(img, mask, a.Color, outline, a.MaxSize)
}

func (s *Server) handleSelectionInvert(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	mask, ok := s.selections.Get(a.Path)
	if !ok {
		dims, err := imaging.GetDimensions(s.cache, a.Path)
		if err != nil {
			return nil, err
		}
		mask = selection.NewMask(dims.Width, dims.Height)
	}
	mask.Invert()
	s.selections.Put(a.Path, mask)

	res, err := newSelectionResult(mask, false)
	if err != nil {
		return nil, err
	}
	res.Mode = "invert"
	return res, nil
}

func (s *Server) handleSelectionClear(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"path":    a.Path,
		"cleared": s.selections.Delete(a.Path),
	}, nil
}
