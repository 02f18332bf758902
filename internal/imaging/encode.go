package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/ironsheep/image-select-mcp/internal/selection"
)

// ImageResult contains an encoded image returned to MCP clients.
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// encodePNG encodes img as a base64 PNG result.
func encodePNG(img image.Image) (*ImageResult, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	b := img.Bounds()
	return &ImageResult{
		Width:       b.Dx(),
		Height:      b.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// EncodeMask renders a mask as a grayscale PNG (255 = fully selected).
func EncodeMask(mask *selection.Mask) (*ImageResult, error) {
	if mask == nil {
		return nil, fmt.Errorf("no selection")
	}
	return encodePNG(mask.Gray())
}
