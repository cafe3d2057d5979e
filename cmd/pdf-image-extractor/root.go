package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pyhub-apps/pdf-image-extractor/internal/config"
	"github.com/pyhub-apps/pdf-image-extractor/internal/logging"
	"github.com/pyhub-apps/pdf-image-extractor/pkg/domain"
	"github.com/pyhub-apps/pdf-image-extractor/pkg/extract"
)

type cliFlags struct {
	configFile  string
	outputDir   string
	imgFormat   string
	imgQuality  int
	textBackend string
	logFormat   string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	f := &cliFlags{}

	cmd := &cobra.Command{
		Use:   "pdf-image-extractor <input_file>",
		Short: "Print PDF page text and extract its large images",
		Long: `Walks every page of a PDF in order, printing the page text and saving
each distinct raster image of at least 500x500 pixels, scaled to 70% of
its size, as <output_dir>/image_N.<img_format>.

Examples:
  pdf-image-extractor brochure.pdf
  pdf-image-extractor brochure.pdf --output_dir out --img_format png
  pdf-image-extractor brochure.pdf --img_quality 80 --verbose`,
		Version:       version,
		Args:          requireInputFile,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], f)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return domain.ValidationError("invalid flags", err)
	})

	flags := cmd.Flags()
	flags.StringVar(&f.outputDir, "output_dir", extract.DefaultOutputDir, "directory for extracted images")
	flags.StringVar(&f.imgFormat, "img_format", extract.DefaultFormat, "output image format (jpg, png, gif, tiff, bmp)")
	flags.IntVar(&f.imgQuality, "img_quality", extract.DefaultQuality, "output image quality, 1-100")
	flags.StringVarP(&f.configFile, "config", "c", "", "YAML config file")
	flags.StringVar(&f.textBackend, "text_backend", "auto", "text reader: auto, ledongthuc, dslipak or fitz")
	flags.StringVar(&f.logFormat, "log_format", logging.FormatConsole, "log format: console or json")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func requireInputFile(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return domain.ValidationError(fmt.Sprintf("expected exactly one input_file argument, got %d", len(args)), nil)
	}
	return nil
}

// resolveConfig layers explicitly set flags over config file and environment
func resolveConfig(cmd *cobra.Command, input string, f *cliFlags) (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, domain.ValidationError("invalid .env file", err)
	}

	cfg, err := config.Load(f.configFile)
	if err != nil {
		if domain.IsType(err, domain.ErrorTypeValidation) {
			return nil, err
		}
		return nil, domain.ValidationError("invalid configuration", err)
	}

	cfg.InputFile = input

	flags := cmd.Flags()
	if flags.Changed("output_dir") {
		cfg.OutputDir = f.outputDir
	}
	if flags.Changed("img_format") {
		cfg.ImageFormat = f.imgFormat
	}
	if flags.Changed("img_quality") {
		cfg.ImageQuality = f.imgQuality
	}
	if flags.Changed("text_backend") {
		cfg.TextBackend = f.textBackend
	}
	if flags.Changed("log_format") {
		cfg.LogFormat = f.logFormat
	}
	if f.verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, input string, f *cliFlags) error {
	cfg, err := resolveConfig(cmd, input, f)
	if err != nil {
		return err
	}

	// Past validation, failures are not usage problems
	cmd.SilenceUsage = true

	log := logging.New(logging.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
		RunID:  uuid.NewString(),
	}).With().Str("input", cfg.InputFile).Logger()

	log.Debug().
		Str("output_dir", cfg.OutputDir).
		Str("format", cfg.ImageFormat).
		Int("quality", cfg.ImageQuality).
		Str("text_backend", string(cfg.Backend())).
		Msg("starting extraction")

	start := time.Now()
	walker := extract.NewDocumentWalker(cfg.Options(), cmd.OutOrStdout(), log)
	state, err := walker.RunFile(cmd.Context(), cfg.InputFile, cfg.Backend())
	if err != nil {
		return err
	}

	log.Info().
		Int("pages", state.Stats.Pages).
		Int("images", state.Stats.Images).
		Int("saved", state.Stats.Saved).
		Int("duplicates", state.Stats.Duplicates).
		Int("undersized", state.Stats.Undersized).
		Dur("elapsed", time.Since(start)).
		Msg("extraction complete")
	return nil
}
