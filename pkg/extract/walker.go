package extract

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pyhub-apps/pdf-image-extractor/pkg/domain"
	"github.com/pyhub-apps/pdf-image-extractor/pkg/pdf"
)

const separatorWidth = 50

// DocumentWalker drives a run: page text to out, page images to disk
type DocumentWalker struct {
	opts     Options
	out      io.Writer
	log      zerolog.Logger
	textOpts []pdf.TextExtractionOption
}

// NewDocumentWalker creates a walker writing its console report to out
func NewDocumentWalker(opts Options, out io.Writer, log zerolog.Logger, textOpts ...pdf.TextExtractionOption) *DocumentWalker {
	return &DocumentWalker{
		opts:     opts,
		out:      out,
		log:      log,
		textOpts: textOpts,
	}
}

// Run processes every page of doc in order. doc and images must describe
// the same file; closing them is left to the caller. ctx is checked between
// pages only.
func (w *DocumentWalker) Run(ctx context.Context, state *RunState, doc pdf.Document, images pdf.ImageSource) error {
	if err := w.opts.Validate(); err != nil {
		return err
	}

	pageCount := doc.PageCount()
	if n := images.PageCount(); n != pageCount {
		return domain.InputError(fmt.Sprintf("text and image readers disagree on page count (%d vs %d)", pageCount, n), nil)
	}

	if err := os.MkdirAll(w.opts.OutputDir, 0o755); err != nil {
		return domain.IOError(fmt.Sprintf("failed to create output directory %s", w.opts.OutputDir), err)
	}

	extractor := NewPageImageExtractor(state, w.opts, w.out, w.log)

	for i := 0; i < pageCount; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		w.log.Debug().Int("page", i+1).Msg("processing page")

		if err := w.printText(doc, i); err != nil {
			return err
		}

		raws, err := images.PageImages(i)
		if err != nil {
			return domain.InputError("failed to enumerate images", err).AtPage(i)
		}
		w.log.Debug().Int("page", i+1).Int("images", len(raws)).Msg("images enumerated")

		saved, err := extractor.ExtractPage(i, raws)
		if err != nil {
			return err
		}

		for _, img := range saved {
			fmt.Fprintf(w.out, "Image Saved: %s\n", img.Path)
		}
		fmt.Fprintln(w.out, strings.Repeat("=", separatorWidth))

		state.Stats.Pages++
	}

	return nil
}

// printText writes the page header, trimmed text and separator
func (w *DocumentWalker) printText(doc pdf.Document, index int) error {
	page, err := doc.GetPage(index)
	if err != nil {
		return domain.InputError("failed to load page", err).AtPage(index)
	}

	text, err := page.ExtractText(w.textOpts...)
	if err != nil {
		return domain.InputError("failed to extract text", err).AtPage(index)
	}

	fmt.Fprintf(w.out, "Text on Page %d:\n", index+1)
	fmt.Fprintln(w.out, strings.TrimSpace(text))
	fmt.Fprintln(w.out, strings.Repeat("-", separatorWidth))
	return nil
}
