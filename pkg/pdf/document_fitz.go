package pdf

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// FitzDocument implements the Document interface using MuPDF via go-fitz
type FitzDocument struct {
	doc      *fitz.Document
	filepath string
}

// OpenWithFitz opens a PDF file using go-fitz
func OpenWithFitz(filepath string) (Document, error) {
	doc, err := fitz.New(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with fitz: %w", err)
	}
	return &FitzDocument{doc: doc, filepath: filepath}, nil
}

// GetPage returns a specific page by index (0-based)
func (d *FitzDocument) GetPage(index int) (Page, error) {
	if index < 0 || index >= d.PageCount() {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, d.PageCount())
	}
	return &FitzPage{doc: d.doc, index: index}, nil
}

// PageCount returns the total number of pages
func (d *FitzDocument) PageCount() int {
	if d.doc == nil {
		return 0
	}
	return d.doc.NumPage()
}

// Close releases resources associated with the document
func (d *FitzDocument) Close() error {
	if d.doc == nil {
		return nil
	}
	err := d.doc.Close()
	d.doc = nil
	return err
}

// FitzPage implements the Page interface using go-fitz
type FitzPage struct {
	doc   *fitz.Document
	index int
}

// GetPageNumber returns the page number (1-based)
func (p *FitzPage) GetPageNumber() int {
	return p.index + 1
}

// ExtractText extracts text from the page. MuPDF does its own layout, so
// tolerance options are ignored.
func (p *FitzPage) ExtractText(_ ...TextExtractionOption) (string, error) {
	text, err := p.doc.Text(p.index)
	if err != nil {
		return "", fmt.Errorf("fitz text extraction failed on page %d: %w", p.index+1, err)
	}
	return text, nil
}
