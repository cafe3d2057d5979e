package pdf

import (
	"fmt"
	"io"

	lpdf "github.com/ledongthuc/pdf"
)

// LedongthucDocument implements the Document interface using ledongthuc/pdf library
type LedongthucDocument struct {
	file      io.Closer
	reader    *lpdf.Reader
	filepath  string
	pageCount int
}

// OpenWithLedongthuc opens a PDF file using the ledongthuc/pdf library
func OpenWithLedongthuc(filepath string) (doc Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("failed to open PDF with ledongthuc: %v", r)
		}
	}()

	f, r, err := lpdf.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with ledongthuc: %w", err)
	}

	return &LedongthucDocument{
		file:      f,
		reader:    r,
		filepath:  filepath,
		pageCount: r.NumPage(),
	}, nil
}

// GetPage returns a specific page by index (0-based)
func (d *LedongthucDocument) GetPage(index int) (Page, error) {
	if index < 0 || index >= d.pageCount {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, d.pageCount)
	}
	return &LedongthucPage{reader: d.reader, pageNumber: index + 1}, nil
}

// PageCount returns the total number of pages
func (d *LedongthucDocument) PageCount() int {
	return d.pageCount
}

// Close releases resources associated with the document
func (d *LedongthucDocument) Close() error {
	if d.file != nil {
		err := d.file.Close()
		d.file = nil
		return err
	}
	return nil
}

// LedongthucPage implements the Page interface using ledongthuc/pdf
type LedongthucPage struct {
	reader     *lpdf.Reader
	pageNumber int
}

// GetPageNumber returns the page number (1-based)
func (p *LedongthucPage) GetPageNumber() int {
	return p.pageNumber
}

// ExtractText extracts text from the page
func (p *LedongthucPage) ExtractText(opts ...TextExtractionOption) (text string, err error) {
	// ledongthuc panics on malformed content streams
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("malformed content on page %d: %v", p.pageNumber, r)
		}
	}()

	page := p.reader.Page(p.pageNumber)
	if page.V.IsNull() {
		return "", nil
	}

	content := page.Content()
	runs := make([]textRun, 0, len(content.Text))
	for _, item := range content.Text {
		runs = append(runs, textRun{X: item.X, Y: item.Y, W: item.W, S: item.S})
	}

	return assembleText(runs, defaultTextConfig(opts)), nil
}
