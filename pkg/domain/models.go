// Package domain holds the types shared by the PDF collaborators and the
// extraction pipeline.
package domain

import (
	"crypto/md5"
	"encoding/hex"
)

// RawImage is an undecoded image buffer as pulled from a page's image object
type RawImage struct {
	Page     int    // 0-based page index
	Index    int    // position in the page's enumeration order
	ObjectNr int    // PDF object number of the image XObject
	Name     string // resource name, e.g. "Im0"
	FileType string // type reported by the enumerator, e.g. "jpg", "png"
	Data     []byte
}

// Fingerprint is a content digest of a RawImage
type Fingerprint [md5.Size]byte

// FingerprintOf digests raw image bytes
func FingerprintOf(data []byte) Fingerprint {
	return md5.Sum(data)
}

// String returns the hex form of the digest
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// SavedImage records one image written to disk
type SavedImage struct {
	Path   string
	Page   int
	Width  int
	Height int
}
