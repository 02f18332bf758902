// Command wand runs a single selection on an image file and writes the
// resulting mask as a grayscale PNG (255 = selected).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/ironsheep/image-select-mcp/internal/config"
	"github.com/ironsheep/image-select-mcp/internal/imaging"
	"github.com/ironsheep/image-select-mcp/internal/selection"
)

func main() {
	in := flag.String("in", "", "Input image (PNG, JPEG, GIF, BMP, TIFF or WebP)")
	out := flag.String("out", "mask.png", "Output mask PNG")
	x := flag.Int("x", -1, "Seed X for a contiguous selection")
	y := flag.Int("y", -1, "Seed Y for a contiguous selection")
	colorHex := flag.String("color", "", "Reference color (#RRGGBB or #RRGGBBAA) for a global selection")
	threshold := flag.Float64("threshold", 15, "Tolerance 0-255")
	criterion := flag.String("criterion", "composite", "composite, red, green, blue, hue, saturation or value")
	antialias := flag.Bool("antialias", true, "Antialias the selection edge")
	transparent := flag.Bool("transparent", true, "Select by opacity when the reference is fully transparent")
	feather := flag.Float64("feather", 0, "Feather radius in pixels")
	configPath := flag.String("config", "", "JSON config file with selection defaults")
	flag.Parse()

	seeded := *x >= 0 || *y >= 0
	if *in == "" || seeded == (*colorHex != "") {
		fmt.Println("Usage: wand -in <image> [-out mask.png] (-x <x> -y <y> | -color <hex>)")
		fmt.Println("            [-threshold 15] [-criterion composite] [-antialias] [-transparent]")
		fmt.Println("            [-feather 0] [-config <file>]")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flags given on the command line override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "threshold":
			cfg.Threshold = *threshold
		case "criterion":
			cfg.Criterion = *criterion
		case "antialias":
			cfg.Antialias = *antialias
		case "transparent":
			cfg.SelectTransparent = *transparent
		case "feather":
			cfg.FeatherRadius = *feather
		}
	})
	if _, err := selection.ParseCriterion(cfg.Criterion); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if cfg.Threshold < 0 || cfg.Threshold > 255 {
		fmt.Fprintf(os.Stderr, "threshold must be within 0-255, got %v\n", cfg.Threshold)
		os.Exit(1)
	}
	opts := cfg.Options()

	img, err := imgio.Open(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open image: %v\n", err)
		os.Exit(1)
	}
	src := selection.NewImageSource(img)
	fmt.Printf("Loaded %s: %dx%d pixels\n", *in, src.Width(), src.Height())

	var mask *selection.Mask
	if seeded {
		fmt.Printf("Selecting contiguous region from (%d,%d)\n", *x, *y)
		mask, err = selection.SelectBySeed(src, *x, *y, opts)
	} else {
		ref, perr := imaging.ParseColor(*colorHex)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "Invalid color: %v\n", perr)
			os.Exit(1)
		}
		fmt.Printf("Selecting pixels matching %s\n", *colorHex)
		mask, err = selection.SelectByColor(src, selection.PixelFromColor(ref), opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Selection failed: %v\n", err)
		os.Exit(1)
	}

	if cfg.FeatherRadius > 0 {
		mask = mask.Feather(cfg.FeatherRadius)
	}

	if err := imgio.Save(*out, mask.Gray(), imgio.PNGEncoder()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write mask: %v\n", err)
		os.Exit(1)
	}

	st := mask.Stats()
	fmt.Printf("Criterion: %s  threshold: %.0f  antialias: %v\n", opts.Criterion, cfg.Threshold, opts.Antialias)
	fmt.Printf("Selected %d of %d pixels (%d partial, %.2f%% coverage)\n",
		st.SelectedPixels, st.TotalPixels, st.PartialPixels, st.CoveragePercent)
	if !st.Empty {
		fmt.Printf("Bounds: (%d,%d)-(%d,%d)\n", st.Bounds.Min.X, st.Bounds.Min.Y, st.Bounds.Max.X, st.Bounds.Max.Y)
	}
	fmt.Printf("Wrote %s\n", *out)
}
