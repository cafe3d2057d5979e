package pdf

import (
	"github.com/pyhub-apps/pdf-image-extractor/pkg/domain"
)

// Document is an opened PDF used for page text
type Document interface {
	// PageCount returns the total number of pages
	PageCount() int

	// GetPage returns a specific page by index (0-based)
	GetPage(index int) (Page, error)

	// Close releases resources associated with the document
	Close() error
}

// Page is a single page of a Document
type Page interface {
	// GetPageNumber returns the page number (1-based)
	GetPageNumber() int

	// ExtractText extracts text from the page. A page without text
	// yields an empty string and no error.
	ExtractText(opts ...TextExtractionOption) (string, error)
}

// ImageSource enumerates the raster images referenced by each page
type ImageSource interface {
	// PageCount returns the total number of pages
	PageCount() int

	// PageImages returns the raw bytes of every image the page at index
	// (0-based) references, in enumeration order
	PageImages(index int) ([]domain.RawImage, error)

	// Close releases resources associated with the source
	Close() error
}
