package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"splitfour/internal/models"
	"splitfour/pkg/config"
	"splitfour/pkg/editor"
	"splitfour/pkg/preview"

	// Decoders for the supported input formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

func main() {
	// Parse command line arguments
	inputPath := pflag.StringP("input", "i", "", "Path to the input image")
	outputDir := pflag.StringP("output", "o", "", "Directory to save the slice images")
	axisName := pflag.StringP("axis", "a", "", "Split direction: across or down")
	cutsArg := pflag.StringP("cuts", "c", "", "Comma-separated cut fractions, e.g. 0.25,0.5,0.75")
	configPath := pflag.String("config", "", "Path to a YAML configuration file")
	withPreview := pflag.Bool("preview", false, "Also write a contact-sheet preview image")
	withStats := pflag.Bool("stats", false, "Print per-slice intensity statistics")
	quiet := pflag.BoolP("quiet", "q", false, "Suppress progress output")
	pflag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Error: --input/-i flag is required")
		pflag.Usage()
		os.Exit(1)
	}

	// Load configuration; flags that were set explicitly win over the file.
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if pflag.CommandLine.Changed("output") {
		cfg.Output.Dir = *outputDir
	}
	if pflag.CommandLine.Changed("axis") {
		cfg.Split.Axis = *axisName
	}
	if pflag.CommandLine.Changed("preview") {
		cfg.Output.Preview = *withPreview
	}
	if pflag.CommandLine.Changed("stats") {
		cfg.Output.Stats = *withStats
	}
	if *quiet {
		cfg.Output.Verbose = false
	}

	axis, err := models.ParseAxis(cfg.Split.Axis)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	cuts := cfg.Split.Cuts
	if pflag.CommandLine.Changed("cuts") {
		cuts, err = parseCuts(*cutsArg)
		if err != nil {
			log.Fatalf("Invalid --cuts value: %v", err)
		}
	}
	if len(cuts) != 3 {
		log.Fatalf("Invalid configuration: expected 3 cut fractions, got %d", len(cuts))
	}

	if cfg.Output.Verbose {
		fmt.Println("splitfour: partition one image into four pieces")
		fmt.Printf("Input:  %s\n", *inputPath)
		fmt.Printf("Axis:   %s\n", axis)
		fmt.Printf("Cuts:   %v\n", cuts)
	}

	// Step 1: Decode the source image
	src, err := loadImage(*inputPath)
	if err != nil {
		log.Fatalf("Failed to load input image: %v", err)
	}
	if cfg.Output.Verbose {
		bounds := src.Bounds()
		fmt.Printf("Loaded %dx%d image\n", bounds.Dx(), bounds.Dy())
	}

	// Step 2: Build the editing session and apply the requested cuts.
	// Positions are clamped into the legal range, never rejected.
	session := editor.New(axis)
	// Two passes so each cut can settle once its neighbors have moved.
	for pass := 0; pass < 2; pass++ {
		for i, c := range cuts {
			session.Model().SetCut(i, c)
		}
	}
	session.SetSource(src)
	if err := session.Err(); err != nil {
		log.Fatalf("Unable to process image: %v", err)
	}

	// Step 3: Write the slice files
	paths, err := session.SaveResults(cfg.Output.Dir)
	if err != nil {
		log.Fatalf("Failed to save slices: %v", err)
	}
	if cfg.Output.Verbose {
		fmt.Printf("\nWrote %d slices to %s:\n", len(paths), cfg.Output.Dir)
		for _, p := range paths {
			fmt.Printf("  %s\n", filepath.Base(p))
		}
	}

	// Step 4: Optional contact-sheet preview
	if cfg.Output.Preview {
		previewPath := filepath.Join(cfg.Output.Dir, "preview.jpg")
		if err := preview.NewMontage().Save(session.Results(), axis, previewPath); err != nil {
			log.Printf("Warning: Failed to write preview: %v", err)
		} else if cfg.Output.Verbose {
			fmt.Printf("Preview written to %s\n", previewPath)
		}
	}

	// Step 5: Optional per-slice statistics
	if cfg.Output.Stats {
		fmt.Printf("\nPer-slice statistics:\n")
		fmt.Printf("=====================\n")
		for _, s := range session.Stats() {
			fmt.Printf("Slice %d: %dx%d px, mean intensity %.3f, std dev %.3f\n",
				s.Index+1, s.Width, s.Height, s.MeanIntensity, s.StdDev)
		}
	}
}

// parseCuts converts a comma-separated list of fractions into cut positions.
func parseCuts(arg string) ([]float64, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("expected 3 comma-separated fractions, got %d", len(parts))
	}

	cuts := make([]float64, 0, 3)
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid fraction %q: %w", part, err)
		}
		cuts = append(cuts, v)
	}
	return cuts, nil
}

// loadImage opens and decodes the input file. Non-image inputs fail here,
// before anything reaches the editing session.
func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}
