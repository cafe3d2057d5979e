package extract

import (
	"fmt"
	"strings"

	"github.com/pyhub-apps/pdf-image-extractor/pkg/domain"
	"github.com/pyhub-apps/pdf-image-extractor/pkg/imaging"
)

// Defaults used when no option overrides them
const (
	DefaultOutputDir = "extracted_images"
	DefaultFormat    = "jpg"
	DefaultQuality   = 95
	DefaultMinSide   = 500
)

// Options controls where and how images are written
type Options struct {
	OutputDir string
	Format    string // format token; also used as the file extension
	Quality   int
	MinWidth  int
	MinHeight int
}

// DefaultOptions returns the options the CLI starts from
func DefaultOptions() Options {
	return Options{
		OutputDir: DefaultOutputDir,
		Format:    DefaultFormat,
		Quality:   DefaultQuality,
		MinWidth:  DefaultMinSide,
		MinHeight: DefaultMinSide,
	}
}

// Validate checks the options before any page is processed
func (o Options) Validate() error {
	if strings.TrimSpace(o.OutputDir) == "" {
		return domain.ValidationError("output directory cannot be empty", nil)
	}
	if err := imaging.ValidateFormat(o.Format); err != nil {
		return err
	}
	if err := imaging.ValidateQuality(o.Quality); err != nil {
		return err
	}
	if o.MinWidth < 0 || o.MinHeight < 0 {
		return domain.ValidationError(
			fmt.Sprintf("minimum image size must not be negative, got %dx%d", o.MinWidth, o.MinHeight), nil)
	}
	return nil
}
