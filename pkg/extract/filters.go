package extract

import (
	"fmt"
	"image"
	"io"

	"github.com/pyhub-apps/pdf-image-extractor/pkg/domain"
)

// DedupFilter rejects images whose bytes were already written in this run
type DedupFilter struct {
	seen SeenSet
	out  io.Writer
}

// NewDedupFilter creates a filter over seen that prints skip notices to out
func NewDedupFilter(seen SeenSet, out io.Writer) *DedupFilter {
	return &DedupFilter{seen: seen, out: out}
}

// Accept fingerprints raw and reports whether it is new. A duplicate is
// announced on out; the seen set is never modified here.
func (f *DedupFilter) Accept(raw domain.RawImage) (domain.Fingerprint, bool) {
	fp := domain.FingerprintOf(raw.Data)
	if f.seen.Contains(fp) {
		fmt.Fprintf(f.out, "Skipping duplicate image on page %d\n", raw.Page+1)
		return fp, false
	}
	return fp, true
}

// SizeFilter rejects images smaller than a minimum width or height
type SizeFilter struct {
	MinWidth  int
	MinHeight int
}

// Accept reports whether img is at least MinWidth x MinHeight pixels
func (f SizeFilter) Accept(img image.Image) bool {
	b := img.Bounds()
	return b.Dx() >= f.MinWidth && b.Dy() >= f.MinHeight
}
