package extract

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/pyhub-apps/pdf-image-extractor/pkg/domain"
	"github.com/pyhub-apps/pdf-image-extractor/pkg/imaging"
)

// PageImageExtractor runs a page's images through dedup, decode, size
// filter, resize and encode, writing the survivors to disk.
type PageImageExtractor struct {
	state *RunState
	opts  Options
	dedup *DedupFilter
	size  SizeFilter
	log   zerolog.Logger
}

// NewPageImageExtractor creates an extractor bound to one run's state
func NewPageImageExtractor(state *RunState, opts Options, out io.Writer, log zerolog.Logger) *PageImageExtractor {
	return &PageImageExtractor{
		state: state,
		opts:  opts,
		dedup: NewDedupFilter(state.Seen, out),
		size:  SizeFilter{MinWidth: opts.MinWidth, MinHeight: opts.MinHeight},
		log:   log,
	}
}

// ExtractPage processes raws in order and returns the images written, in
// the same order. page is the 0-based page index.
func (e *PageImageExtractor) ExtractPage(page int, raws []domain.RawImage) ([]domain.SavedImage, error) {
	var saved []domain.SavedImage

	for _, raw := range raws {
		e.state.Stats.Images++

		fp, ok := e.dedup.Accept(raw)
		if !ok {
			e.state.Stats.Duplicates++
			e.log.Debug().Int("page", page+1).Int("object", raw.ObjectNr).Str("md5", fp.String()).Msg("duplicate image skipped")
			continue
		}

		img, format, err := imaging.Decode(raw.Data)
		if err != nil {
			return saved, asDomainError(err).AtImage(page, raw.Index)
		}

		b := img.Bounds()
		if !e.size.Accept(img) {
			e.state.Stats.Undersized++
			e.log.Debug().Int("page", page+1).Int("object", raw.ObjectNr).
				Int("width", b.Dx()).Int("height", b.Dy()).Msg("image below size threshold")
			continue
		}

		e.state.Seen.Add(fp)

		resized := imaging.Resize(img)
		rb := resized.Bounds()
		e.log.Debug().Int("page", page+1).Int("object", raw.ObjectNr).Str("source_format", format).
			Int("width", b.Dx()).Int("height", b.Dy()).
			Int("new_width", rb.Dx()).Int("new_height", rb.Dy()).Msg("image resized")

		path, werr := e.write(resized)
		if werr != nil {
			return saved, werr.AtImage(page, raw.Index)
		}

		e.state.Counter++
		e.state.Stats.Saved++
		saved = append(saved, domain.SavedImage{
			Path:   path,
			Page:   page,
			Width:  rb.Dx(),
			Height: rb.Dy(),
		})
	}

	return saved, nil
}

// write encodes img and stores it under the current counter value
func (e *PageImageExtractor) write(img image.Image) (string, *domain.DomainError) {
	path := filepath.Join(e.opts.OutputDir, fmt.Sprintf("image_%d.%s", e.state.Counter, e.opts.Format))

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, e.opts.Format, e.opts.Quality); err != nil {
		return "", asDomainError(err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", domain.IOError(fmt.Sprintf("failed to write %s", path), err)
	}

	return path, nil
}

func asDomainError(err error) *domain.DomainError {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return de
	}
	return domain.NewError(domain.ErrorTypeIO, "unexpected failure", err)
}
