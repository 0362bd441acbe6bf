// Command fotosaves extracts photo metadata from the Fotos_*.html species
// galleries in a folder and writes one image-listing workbook.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/alecearnshaw-coder/fotosaves-NT/internal/config"
	"github.com/alecearnshaw-coder/fotosaves-NT/internal/listing"
	"github.com/alecearnshaw-coder/fotosaves-NT/internal/logging"
)

func main() {
	cfg := config.LoadOrDefault()

	dir := flag.String("dir", ".", "Folder containing Fotos_*.html gallery pages")
	out := flag.String("out", cfg.Output, "Output workbook path (default: <folder>_Image_Listing.xlsx)")
	pattern := flag.String("pattern", cfg.Pattern, "Glob pattern for gallery pages")
	level := flag.String("log-level", cfg.Logging.Level, "Log level (debug, info, warn, error)")
	dev := flag.Bool("dev", cfg.Logging.Development, "Human-readable console logging")
	flag.Parse()

	cfg.Output = *out
	cfg.Pattern = *pattern
	cfg.Logging.Level = *level
	cfg.Logging.Development = *dev

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	runner := listing.NewRunner(cfg, logger)
	if _, _, err := runner.Run(*dir); err != nil {
		logger.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}
