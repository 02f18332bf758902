package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/image-select-mcp/internal/selection"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSampleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 128, 64, 255})

	result, err := SampleColor(img, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.HexAlpha != "#FF8040FF" {
		t.Errorf("HexAlpha: got %s, want #FF8040FF", result.HexAlpha)
	}
	if result.RGBA != (RGBAColor{255, 128, 64, 255}) {
		t.Errorf("RGBA: got %+v, want {255 128 64 255}", result.RGBA)
	}
	if result.Comparison[0] != 1 || result.Comparison[3] != 1 {
		t.Errorf("Comparison: got %v", result.Comparison)
	}
}

func TestSampleColor_HSV(t *testing.T) {
	tests := []struct {
		name  string
		color color.RGBA
		want  HSVColor
	}{
		{"pure red", color.RGBA{255, 0, 0, 255}, HSVColor{0, 100, 100}},
		{"pure green", color.RGBA{0, 255, 0, 255}, HSVColor{120, 100, 100}},
		{"pure blue", color.RGBA{0, 0, 255, 255}, HSVColor{240, 100, 100}},
		{"white", color.RGBA{255, 255, 255, 255}, HSVColor{0, 0, 100}},
		{"black", color.RGBA{0, 0, 0, 255}, HSVColor{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SampleColor(createInMemoryImage(4, 4, tt.color), 1, 1)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.HSV != tt.want {
				t.Errorf("HSV: got %+v, want %+v", result.HSV, tt.want)
			}
		})
	}
}

func TestSampleColor_StraightAlpha(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{128, 0, 0, 128}) // premultiplied half-transparent red

	result, err := SampleColor(img, 0, 0)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.RGBA.R != 255 || result.RGBA.A != 128 {
		t.Errorf("RGBA: got %+v, want R=255 A=128", result.RGBA)
	}
	if result.HexAlpha != "#FF000080" {
		t.Errorf("HexAlpha: got %s, want #FF000080", result.HexAlpha)
	}
}

func TestSampleColor_HexAlphaSelectsItself(t *testing.T) {
	nrgba := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	rgba := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			nrgba.SetNRGBA(x, y, color.NRGBA{uint8(x * 60), 10, uint8(y * 70), 128})
			rgba.SetRGBA(x, y, color.RGBA{uint8(x * 20), 7, uint8(y * 25), 100})
		}
	}

	for name, img := range map[string]image.Image{"straight": nrgba, "premultiplied": rgba} {
		t.Run(name, func(t *testing.T) {
			src := selection.NewImageSource(img)
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					sampled, err := SampleColor(img, x, y)
					if err != nil {
						t.Fatalf("SampleColor failed: %v", err)
					}
					ref, err := ParseColor(sampled.HexAlpha)
					if err != nil {
						t.Fatalf("ParseColor(%s) failed: %v", sampled.HexAlpha, err)
					}
					px := selection.PixelFromColor(ref)
					if px != sampled.Comparison || px != src.Sample(x, y) {
						t.Fatalf("(%d,%d) %s: parsed %v, comparison %v, source %v",
							x, y, sampled.HexAlpha, px, sampled.Comparison, src.Sample(x, y))
					}

					mask, err := selection.SelectByColor(src, px, selection.Options{})
					if err != nil {
						t.Fatalf("SelectByColor failed: %v", err)
					}
					if mask.At(x, y) != 1 {
						t.Errorf("(%d,%d) %s does not select itself at threshold 0", x, y, sampled.HexAlpha)
					}
				}
			}
		})
	}
}

func TestSampleColor_OffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 10, 20, 20))
	img.SetNRGBA(10, 10, color.NRGBA{0, 0, 255, 255})

	result, err := SampleColor(img, 0, 0)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.Hex != "#0000FF" {
		t.Errorf("Hex: got %s, want #0000FF", result.Hex)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
		{"both too large", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(img, tt.x, tt.y)
			if err == nil {
				t.Error("SampleColor should fail for out-of-bounds coordinates")
			}
		})
	}
}

func TestSampleColor_EdgeCoordinates(t *testing.T) {
	img := createPatternImage(100, 100)

	tests := []struct {
		name    string
		x, y    int
		wantHex string
	}{
		{"top-left", 0, 0, "#FF0000"},
		{"top-right", 99, 0, "#00FF00"},
		{"bottom-left", 0, 99, "#0000FF"},
		{"bottom-right", 99, 99, "#FFFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SampleColor(img, tt.x, tt.y)
			if err != nil {
				t.Fatalf("SampleColor failed for valid edge coordinate (%d,%d): %v", tt.x, tt.y, err)
			}
			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{"#FF0000", color.NRGBA{255, 0, 0, 255}, false},
		{"00ff00", color.NRGBA{0, 255, 0, 255}, false},
		{"#0000FF80", color.NRGBA{0, 0, 255, 128}, false},
		{"#FFF", color.NRGBA{255, 255, 255, 255}, false},
		{" #102030 ", color.NRGBA{16, 32, 48, 255}, false},
		{"", color.NRGBA{}, true},
		{"#", color.NRGBA{}, true},
		{"#FF00", color.NRGBA{}, true},
		{"#GGGGGG", color.NRGBA{}, true},
		{"#FF0000ZZ", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
