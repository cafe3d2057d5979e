// Package pdfimages extracts page text and large, distinct raster images
// from PDF files.
package pdfimages

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/pyhub-apps/pdf-image-extractor/pkg/domain"
	"github.com/pyhub-apps/pdf-image-extractor/pkg/extract"
	"github.com/pyhub-apps/pdf-image-extractor/pkg/pdf"
)

// Re-export types from the sub packages for the public API
type (
	Document             = pdf.Document
	Page                 = pdf.Page
	ImageSource          = pdf.ImageSource
	TextBackend          = pdf.TextBackend
	TextExtractionOption = pdf.TextExtractionOption
	RawImage             = domain.RawImage
	SavedImage           = domain.SavedImage
	Options              = extract.Options
	RunState             = extract.RunState
	Stats                = extract.Stats
	Error                = domain.DomainError
)

// Text backends
const (
	BackendAuto       = pdf.BackendAuto
	BackendLedongthuc = pdf.BackendLedongthuc
	BackendDslipak    = pdf.BackendDslipak
	BackendFitz       = pdf.BackendFitz
)

// Re-export option functions
var (
	WithXTolerance = pdf.WithXTolerance
	WithYTolerance = pdf.WithYTolerance
	DefaultOptions = extract.DefaultOptions
)

// Open opens a PDF file for text extraction
func Open(filepath string) (Document, error) {
	// ledongthuc first for its positioned text, dslipak as fallback
	return pdf.OpenText(filepath, pdf.BackendAuto)
}

// OpenWithBackend opens a PDF file with a specific text backend
func OpenWithBackend(filepath string, backend TextBackend) (Document, error) {
	return pdf.OpenText(filepath, backend)
}

// OpenImages opens a PDF file for image enumeration
func OpenImages(filepath string) (ImageSource, error) {
	return pdf.OpenImageSource(filepath)
}

// ExtractFile runs the whole pipeline over one file: page text is written
// to out and images to opts.OutputDir.
func ExtractFile(ctx context.Context, filepath string, opts Options, out io.Writer) (*RunState, error) {
	w := extract.NewDocumentWalker(opts, out, zerolog.Nop())
	return w.RunFile(ctx, filepath, pdf.BackendAuto)
}
