package extract

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pyhub-apps/pdf-image-extractor/pkg/domain"
	"github.com/pyhub-apps/pdf-image-extractor/pkg/pdf"
)

type fakePage struct {
	number int
	text   string
	err    error
}

func (p fakePage) GetPageNumber() int { return p.number }

func (p fakePage) ExtractText(_ ...pdf.TextExtractionOption) (string, error) {
	return p.text, p.err
}

type fakeDoc struct {
	pages  []fakePage
	closed bool
}

func newFakeDoc(texts ...string) *fakeDoc {
	d := &fakeDoc{}
	for i, text := range texts {
		d.pages = append(d.pages, fakePage{number: i + 1, text: text})
	}
	return d
}

func (d *fakeDoc) PageCount() int { return len(d.pages) }

func (d *fakeDoc) GetPage(index int) (pdf.Page, error) {
	if index < 0 || index >= len(d.pages) {
		return nil, fmt.Errorf("page index %d out of range", index)
	}
	return d.pages[index], nil
}

func (d *fakeDoc) Close() error {
	d.closed = true
	return nil
}

// fakeImages serves a fixed list of image payloads per page
type fakeImages struct {
	pages  [][][]byte
	failOn int
	calls  []int
	closed bool
}

func newFakeImages(pages ...[][]byte) *fakeImages {
	return &fakeImages{pages: pages, failOn: -1}
}

func (s *fakeImages) PageCount() int { return len(s.pages) }

func (s *fakeImages) PageImages(index int) ([]domain.RawImage, error) {
	s.calls = append(s.calls, index)
	if index == s.failOn {
		return nil, fmt.Errorf("broken xref")
	}
	var raws []domain.RawImage
	for i, data := range s.pages[index] {
		raws = append(raws, domain.RawImage{Page: index, Index: i, ObjectNr: 10*index + i + 1, Data: data})
	}
	return raws, nil
}

func (s *fakeImages) Close() error {
	s.closed = true
	return nil
}

// pngOf renders a w x h PNG; different seeds give different bytes
func pngOf(t *testing.T, w, h int, seed uint8) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x/4) + seed, G: uint8(y / 4), B: seed, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func rawsOf(page int, payloads ...[]byte) []domain.RawImage {
	raws := make([]domain.RawImage, len(payloads))
	for i, data := range payloads {
		raws[i] = domain.RawImage{Page: page, Index: i, Data: data}
	}
	return raws
}
