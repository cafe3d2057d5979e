// Package extract walks a PDF page by page, prints its text and writes the
// unique, large-enough embedded images to an output directory.
package extract

import (
	"github.com/pyhub-apps/pdf-image-extractor/pkg/domain"
)

// SeenSet holds the fingerprints of images already written during a run
type SeenSet map[domain.Fingerprint]struct{}

// Contains reports whether fp has been recorded
func (s SeenSet) Contains(fp domain.Fingerprint) bool {
	_, ok := s[fp]
	return ok
}

// Add records fp
func (s SeenSet) Add(fp domain.Fingerprint) {
	s[fp] = struct{}{}
}

// Stats counts what happened to each enumerated image
type Stats struct {
	Pages      int
	Images     int
	Saved      int
	Duplicates int
	Undersized int
}

// RunState is the mutable state of one extraction run. It is owned by a
// single goroutine and must not be shared between concurrent runs.
type RunState struct {
	Seen SeenSet

	// Counter is the number used for the next output file. It starts at 1
	// and only ever grows by one per written image.
	Counter int

	Stats Stats
}

// NewRunState returns an empty state with the counter at 1
func NewRunState() *RunState {
	return &RunState{
		Seen:    make(SeenSet),
		Counter: 1,
	}
}
