package imaging

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"sort"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/pyhub-apps/pdf-image-extractor/pkg/domain"
)

// Encoder identifiers accepted by Encode
const (
	FormatJPEG = "JPEG"
	FormatPNG  = "PNG"
	FormatGIF  = "GIF"
	FormatTIFF = "TIFF"
	FormatBMP  = "BMP"
)

// Quality bounds, inclusive
const (
	MinQuality = 1
	MaxQuality = 100
)

type encodeFunc func(w io.Writer, img image.Image, quality int) error

var encoders = map[string]encodeFunc{
	FormatJPEG: func(w io.Writer, img image.Image, quality int) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	},
	FormatPNG: func(w io.Writer, img image.Image, _ int) error {
		return png.Encode(w, img)
	},
	FormatGIF: func(w io.Writer, img image.Image, _ int) error {
		return gif.Encode(w, img, nil)
	},
	FormatTIFF: func(w io.Writer, img image.Image, _ int) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	},
	FormatBMP: func(w io.Writer, img image.Image, _ int) error {
		return bmp.Encode(w, img)
	},
}

// NormalizeFormat maps a user format token to an encoder identifier.
// "jpg" in any case becomes "JPEG"; everything else is upper-cased.
func NormalizeFormat(token string) string {
	if strings.EqualFold(token, "jpg") {
		return FormatJPEG
	}
	return strings.ToUpper(token)
}

// SupportedFormats lists the encoder identifiers in sorted order
func SupportedFormats() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateFormat checks that a format token resolves to a known encoder
func ValidateFormat(token string) error {
	if _, ok := encoders[NormalizeFormat(token)]; !ok {
		return domain.ValidationError(
			fmt.Sprintf("unsupported image format %q (supported: %s, jpg)", token, strings.Join(SupportedFormats(), ", ")), nil)
	}
	return nil
}

// ValidateQuality checks that quality is within [MinQuality, MaxQuality]
func ValidateQuality(quality int) error {
	if quality < MinQuality || quality > MaxQuality {
		return domain.ValidationError(
			fmt.Sprintf("quality must be between %d and %d, got %d", MinQuality, MaxQuality, quality), nil)
	}
	return nil
}
