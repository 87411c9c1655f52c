package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nvr-ai/go-pad/padding"
)

// PadConfig holds the paths for a single run.
type PadConfig struct {
	InputPath  string
	OutputPath string
}

func main() {
	var (
		inputPath  string
		outputPath string
		debug      bool
	)
	flag.StringVar(&inputPath, "in", "", "Path to the source image")
	flag.StringVar(&outputPath, "out", "", "Path to write the padded image; the extension selects the format")
	flag.BoolVar(&debug, "debug", false, "Print decoding and layout details")
	flag.Parse()

	cfg, err := validateFlags(inputPath, outputPath)
	if err != nil {
		log.Fatal(err)
	}

	os.Exit(run(cfg, debug))
}

// run pads one image and prints the report. It returns the process exit code.
func run(cfg *PadConfig, debug bool) int {
	padder := padding.New()
	padder.SetDebugMode(debug)

	result, err := padder.Pad(cfg.InputPath, cfg.OutputPath)
	if err != nil {
		fmt.Printf("❌ Error processing image: %v\n", err)
		return 1
	}

	fmt.Printf("✅ Successfully created spaced image at %s\n", result.OutputPath)
	fmt.Println(result.String())
	return 0
}

// validateFlags checks that both paths were given.
func validateFlags(inputPath, outputPath string) (*PadConfig, error) {
	if inputPath == "" {
		return nil, fmt.Errorf("error: -in is required")
	}
	if outputPath == "" {
		return nil, fmt.Errorf("error: -out is required")
	}
	return &PadConfig{InputPath: inputPath, OutputPath: outputPath}, nil
}
