package pdf

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pyhub-apps/pdf-image-extractor/pkg/domain"
)

func init() {
	// Keep pdfcpu from creating a config directory under the user's home.
	api.DisableConfigDir()
}

// PDFCPUImageSource implements the ImageSource interface using pdfcpu
type PDFCPUImageSource struct {
	file     *os.File
	ctx      *model.Context
	filepath string
}

// OpenImageSource opens a PDF file for image enumeration
func OpenImageSource(filepath string) (ImageSource, error) {
	return OpenImageSourceWithPassword(filepath, "")
}

// OpenImageSourceWithPassword opens a password-protected PDF file for image enumeration
func OpenImageSourceWithPassword(filepath string, password string) (ImageSource, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if password != "" {
		conf.UserPW = password
		conf.OwnerPW = password
	}

	// Optimization builds the per-page image object index used below
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}

	return &PDFCPUImageSource{
		file:     f,
		ctx:      ctx,
		filepath: filepath,
	}, nil
}

// PageCount returns the total number of pages
func (s *PDFCPUImageSource) PageCount() int {
	if s.ctx == nil {
		return 0
	}
	return s.ctx.PageCount
}

// PageImages returns the images referenced by the page at index, ordered by
// ascending object number. Thumbnails are skipped. Images shared between
// pages resolve to the same object and therefore the same bytes.
func (s *PDFCPUImageSource) PageImages(index int) ([]domain.RawImage, error) {
	if s.ctx == nil {
		return nil, fmt.Errorf("image source is closed")
	}
	pageNr := index + 1
	if pageNr < 1 || pageNr > s.ctx.PageCount {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, s.ctx.PageCount)
	}

	images, err := pdfcpu.ExtractPageImages(s.ctx, pageNr, false)
	if err != nil {
		return nil, fmt.Errorf("failed to extract images from page %d: %w", pageNr, err)
	}

	objNrs := make([]int, 0, len(images))
	for objNr := range images {
		objNrs = append(objNrs, objNr)
	}
	sort.Ints(objNrs)

	raws := make([]domain.RawImage, 0, len(objNrs))
	for _, objNr := range objNrs {
		img := images[objNr]
		if img.Thumb || img.Reader == nil {
			continue
		}

		data, err := io.ReadAll(img.Reader)
		if err != nil {
			return nil, fmt.Errorf("failed to read image object %d on page %d: %w", objNr, pageNr, err)
		}

		raws = append(raws, domain.RawImage{
			Page:     index,
			Index:    len(raws),
			ObjectNr: objNr,
			Name:     img.Name,
			FileType: img.FileType,
			Data:     data,
		})
	}

	return raws, nil
}

// Close releases resources associated with the source
func (s *PDFCPUImageSource) Close() error {
	s.ctx = nil
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		return err
	}
	return nil
}
