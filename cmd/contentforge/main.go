package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ternarybob/arbor"

	"github.com/anilsoylu/contentforge/internal/app"
	"github.com/anilsoylu/contentforge/internal/common"
	"github.com/anilsoylu/contentforge/internal/config"
	"github.com/anilsoylu/contentforge/internal/output"
)

var (
	// Command-line flags
	configPath   = flag.String("config", "", "Content template path (default config.yaml)")
	configPathC  = flag.String("c", "", "Content template path (shorthand)")
	settingsPath = flag.String("settings", "contentforge.toml", "App settings file path")
	outputDir    = flag.String("out", "", "Output directory (overrides settings)")
	preview      = flag.Bool("preview", false, "Show structure without making API calls")
	previewP     = flag.Bool("p", false, "Preview mode (shorthand)")
	initConfig   = flag.Bool("init", false, "Create an example content template")
	exportPDF    = flag.Bool("pdf", false, "Also export the document as PDF")
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")

	logger arbor.ILogger
)

func main() {
	flag.Parse()

	if *showVersion || *showVersionV {
		fmt.Printf("ContentForge version %s\n", common.GetVersion())
		os.Exit(0)
	}

	// Startup sequence (REQUIRED ORDER):
	// 1. Load settings (defaults -> file -> env)
	// 2. Initialize logger
	// 3. Print banner
	// 4. Run the requested mode
	settings, err := common.LoadSettings(*settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		os.Exit(1)
	}
	if *outputDir != "" {
		settings.Output.Dir = *outputDir
	}

	logger = common.InitLogger(settings)
	common.PrintBanner(common.GetVersion())

	if err := run(settings); err != nil {
		logger.Error().Err(err).Msg("Generation failed")
		os.Exit(1)
	}
}

func run(settings *common.Settings) error {
	templatePath := *configPath
	if templatePath == "" {
		templatePath = *configPathC
	}

	if *initConfig {
		if err := config.SaveDefault(templatePath); err != nil {
			return err
		}
		logger.Info().Msg("Example content template created")
		return nil
	}

	cfg, err := config.Load(templatePath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			logger.Error().Err(err).Msg("To create an example template: contentforge -init")
		}
		return err
	}

	if *preview || *previewP {
		app.Preview(os.Stdout, cfg)
		return nil
	}

	apiKey, err := config.LoadAPIKey()
	if err != nil {
		return err
	}

	// Interrupt cancels the batch; nothing is written on failure
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	generator := app.NewGenerator(settings, logger)
	content, document, err := generator.Generate(ctx, cfg, apiKey)
	if err != nil {
		return err
	}

	writer := output.NewWriter(settings.Output, logger)
	path, err := writer.Save(document, cfg.Output)
	if err != nil {
		return err
	}

	if *exportPDF {
		pdfPath := strings.TrimSuffix(path, "."+cfg.Output) + ".pdf"
		exporter := output.NewPDFExporter(logger)
		if err := exporter.Export(pdfPath, cfg.Title, content, cfg.Headings()); err != nil {
			return err
		}
	}

	logger.Info().
		Str("file", path).
		Int("target_words", cfg.TotalWords()).
		Int("generated_words", len(strings.Fields(document))).
		Msg("Generation completed")

	return nil
}
