package extract

import (
	"context"
	"fmt"

	"github.com/pyhub-apps/pdf-image-extractor/pkg/domain"
	"github.com/pyhub-apps/pdf-image-extractor/pkg/pdf"
)

// RunFile validates the options, opens path with the text backend and
// pdfcpu, runs the walker over it with a fresh RunState and closes both
// readers on every exit path.
func (w *DocumentWalker) RunFile(ctx context.Context, path string, backend pdf.TextBackend) (*RunState, error) {
	if err := w.opts.Validate(); err != nil {
		return nil, err
	}
	if err := pdf.ValidatePath(path); err != nil {
		return nil, err
	}

	doc, err := pdf.OpenText(path, backend)
	if err != nil {
		return nil, domain.InputError(fmt.Sprintf("cannot read PDF text from %s", path), err)
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			w.log.Warn().Err(cerr).Msg("failed to close text document")
		}
	}()

	images, err := pdf.OpenImageSource(path)
	if err != nil {
		return nil, domain.InputError(fmt.Sprintf("cannot read PDF images from %s", path), err)
	}
	defer func() {
		if cerr := images.Close(); cerr != nil {
			w.log.Warn().Err(cerr).Msg("failed to close image source")
		}
	}()

	state := NewRunState()
	return state, w.Run(ctx, state, doc, images)
}
