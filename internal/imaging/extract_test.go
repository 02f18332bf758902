package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/ironsheep/image-select-mcp/internal/selection"
)

// decodeResult decodes the base64 PNG inside an ImageResult.
func decodeResult(t *testing.T, res *ImageResult) image.Image {
	t.Helper()
	if res.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", res.MimeType)
	}
	data, err := base64.StdEncoding.DecodeString(res.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode png: %v", err)
	}
	return img
}

// rectMask returns a mask of the given size with r set to v.
func rectMask(width, height int, r image.Rectangle, v float32) *selection.Mask {
	m := selection.NewMask(width, height)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.Set(x, y, v)
		}
	}
	return m
}

func TestEncodeMask(t *testing.T) {
	mask := rectMask(8, 6, image.Rect(2, 1, 5, 4), 1)
	mask.Set(0, 0, 0.5)

	res, err := EncodeMask(mask)
	if err != nil {
		t.Fatalf("EncodeMask failed: %v", err)
	}
	if res.Width != 8 || res.Height != 6 {
		t.Errorf("dimensions: got %dx%d, want 8x6", res.Width, res.Height)
	}

	img := decodeResult(t, res)
	gray, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("decoded mask is %T, want *image.Gray", img)
	}
	if got := gray.GrayAt(3, 2).Y; got != 255 {
		t.Errorf("selected cell: got %d, want 255", got)
	}
	if got := gray.GrayAt(6, 5).Y; got != 0 {
		t.Errorf("unselected cell: got %d, want 0", got)
	}
	if got := gray.GrayAt(0, 0).Y; got != 128 {
		t.Errorf("partial cell: got %d, want 128", got)
	}

	if _, err := EncodeMask(nil); err == nil {
		t.Error("EncodeMask(nil) should fail")
	}
}

func TestExtractSelection(t *testing.T) {
	img := createPatternImage(100, 100)
	mask := rectMask(100, 100, image.Rect(10, 20, 40, 45), 1)

	res, err := ExtractSelection(img, mask, 1.0)
	if err != nil {
		t.Fatalf("ExtractSelection failed: %v", err)
	}

	if res.Width != 30 || res.Height != 25 {
		t.Errorf("dimensions: got %dx%d, want 30x25", res.Width, res.Height)
	}
	if res.OffsetX != 10 || res.OffsetY != 20 {
		t.Errorf("offset: got (%d,%d), want (10,20)", res.OffsetX, res.OffsetY)
	}
	if res.Stats.SelectedPixels != 30*25 {
		t.Errorf("stats: got %d selected, want %d", res.Stats.SelectedPixels, 30*25)
	}

	out := decodeResult(t, &res.ImageResult)
	r, g, b, a := out.At(0, 0).RGBA()
	if r>>8 != 255 || g != 0 || b != 0 || a>>8 != 255 {
		t.Errorf("top-left pixel: got (%d,%d,%d,%d), want opaque red", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestExtractSelection_MaskBecomesAlpha(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{0, 0, 255, 255})
	mask := rectMask(10, 10, image.Rect(0, 0, 4, 1), 1)
	mask.Set(1, 0, 0.5)
	mask.Set(2, 0, 0)

	res, err := ExtractSelection(img, mask, 1.0)
	if err != nil {
		t.Fatalf("ExtractSelection failed: %v", err)
	}

	out := decodeResult(t, &res.ImageResult)
	wantAlpha := []uint8{255, 128, 0, 255}
	for x, want := range wantAlpha {
		got := color.NRGBAModel.Convert(out.At(x, 0)).(color.NRGBA).A
		if got != want {
			t.Errorf("pixel %d alpha: got %d, want %d", x, got, want)
		}
	}
}

func TestExtractSelection_Scale(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})
	mask := rectMask(100, 100, image.Rect(0, 0, 50, 40), 1)

	tests := []struct {
		scale         float64
		width, height int
	}{
		{2.0, 100, 80},
		{0.5, 25, 20},
		{0, 50, 40},
		{-1, 50, 40},
	}

	for _, tt := range tests {
		res, err := ExtractSelection(img, mask, tt.scale)
		if err != nil {
			t.Fatalf("scale %v: %v", tt.scale, err)
		}
		if res.Width != tt.width || res.Height != tt.height {
			t.Errorf("scale %v: got %dx%d, want %dx%d", tt.scale, res.Width, res.Height, tt.width, tt.height)
		}
	}
}

func TestExtractSelection_Errors(t *testing.T) {
	img := createInMemoryImage(10, 10, color.White)

	if _, err := ExtractSelection(img, selection.NewMask(10, 10), 1); err == nil {
		t.Error("empty selection should fail")
	}
	if _, err := ExtractSelection(img, nil, 1); err == nil {
		t.Error("nil mask should fail")
	}
	_, err := ExtractSelection(img, selection.NewMask(5, 10), 1)
	if !errors.Is(err, selection.ErrMaskSize) {
		t.Errorf("size mismatch: got %v, want ErrMaskSize", err)
	}
}
