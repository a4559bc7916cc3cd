package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/book-expert/logger"
	"github.com/spf13/pflag"

	"github.com/gridpdf/gridpdf"
)

func main() {
	err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// flags represents the command-line arguments.
type flags struct {
	inputDir  string
	outputDir string
	logDir    string
	verbose   bool
}

// parseFlags defines and parses command-line flags.
func parseFlags() flags {
	var flagsVar flags
	pflag.StringVarP(&flagsVar.inputDir, "input", "i", ".",
		"Input directory containing image files.")
	pflag.StringVarP(&flagsVar.outputDir, "output", "o", "",
		"Output directory for the PDF (default: <input>/pdf_output).")
	pflag.StringVar(&flagsVar.logDir, "log-dir", "logs",
		"Directory for run logs.")
	pflag.BoolVarP(&flagsVar.verbose, "verbose", "v", false,
		"Print the output path after generation.")
	pflag.Parse()

	return flagsVar
}

func run() error {
	flgs := parseFlags()

	outputDir := flgs.outputDir
	if outputDir == "" {
		outputDir = filepath.Join(flgs.inputDir, "pdf_output")
	}

	timestamp := time.Now().Format("20060102_150405")
	outputPath := filepath.Join(outputDir, fmt.Sprintf("images_%s.pdf", timestamp))

	log, err := setupLogger(flgs.logDir, timestamp)
	if err != nil {
		return fmt.Errorf("could not set up logger: %w", err)
	}
	defer func() {
		if cerr := log.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "failed to close logger: %v\n", cerr)
		}
	}()

	generator := gridpdf.New().SetLogger(log)

	if err := generator.GenerateFromDir(flgs.inputDir, outputPath); err != nil {
		log.Error("Generation failed: %v", err)
		return err
	}

	if flgs.verbose {
		fmt.Printf("Created %s\n", outputPath)
	}
	return nil
}

// setupLogger initializes the run logger, creating the log directory if needed.
func setupLogger(logDir, timestamp string) (*logger.Logger, error) {
	logFileName := fmt.Sprintf("image_to_pdf_%s.log", timestamp)

	log, err := logger.New(logDir, logFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return log, nil
}
