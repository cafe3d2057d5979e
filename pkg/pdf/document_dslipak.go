package pdf

import (
	"fmt"

	gopdf "github.com/dslipak/pdf"
)

// DsliPakDocument implements the Document interface using dslipak/pdf library
type DsliPakDocument struct {
	reader    *gopdf.Reader
	filepath  string
	pageCount int
}

// OpenWithDslipak opens a PDF file using the dslipak/pdf library
func OpenWithDslipak(filepath string) (doc Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("failed to open PDF with dslipak: %v", r)
		}
	}()

	r, err := gopdf.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with dslipak: %w", err)
	}

	return &DsliPakDocument{
		reader:    r,
		filepath:  filepath,
		pageCount: r.NumPage(),
	}, nil
}

// GetPage returns a specific page by index (0-based)
func (d *DsliPakDocument) GetPage(index int) (Page, error) {
	if index < 0 || index >= d.pageCount {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, d.pageCount)
	}
	return &DsliPakPage{reader: d.reader, pageNumber: index + 1}, nil
}

// PageCount returns the total number of pages
func (d *DsliPakDocument) PageCount() int {
	return d.pageCount
}

// Close releases resources associated with the document
func (d *DsliPakDocument) Close() error {
	d.reader = nil
	return nil
}

// DsliPakPage implements the Page interface using dslipak/pdf
type DsliPakPage struct {
	reader     *gopdf.Reader
	pageNumber int
}

// GetPageNumber returns the page number (1-based)
func (p *DsliPakPage) GetPageNumber() int {
	return p.pageNumber
}

// ExtractText extracts text from the page
func (p *DsliPakPage) ExtractText(opts ...TextExtractionOption) (text string, err error) {
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
