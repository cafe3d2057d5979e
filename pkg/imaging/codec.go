// Package imaging decodes, downscales and re-encodes raster images pulled out
// of PDF pages.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"math"

	// Decoders for the formats pdfcpu hands back
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/pyhub-apps/pdf-image-extractor/pkg/domain"
)

// ScaleRatio is the fraction of an image's larger side kept by Resize
const ScaleRatio = 0.7

// Decode decodes raw image bytes. It returns the decoded image and the name
// of the format that recognised it.
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", domain.DecodeError("unsupported or corrupt image data", err)
	}
	return img, format, nil
}

// TargetSize computes the dimensions Resize would produce for a w x h image.
// The bool is false when the image is left unchanged.
func TargetSize(w, h int) (int, int, bool) {
	maxDim := int(math.Floor(float64(max(w, h)) * ScaleRatio))
	if w <= maxDim && h <= maxDim {
		return w, h, false
	}

	var nw, nh int
	if w > h {
		nw = maxDim
		nh = int(math.Round(float64(h) * float64(maxDim) / float64(w)))
	} else {
		nh = maxDim
		nw = int(math.Round(float64(w) * float64(maxDim) / float64(h)))
	}
	nw = max(nw, 1)
	nh = max(nh, 1)

	if nw == w && nh == h {
		return w, h, false
	}
	return nw, nh, true
}

// Resize shrinks the larger side of img to ScaleRatio of itself, keeping the
// aspect ratio, using Catmull-Rom (bicubic) resampling.
func Resize(img image.Image) image.Image {
	src := img.Bounds()
	nw, nh, ok := TargetSize(src.Dx(), src.Dy())
	if !ok {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	return dst
}

// Encode writes img to w using the encoder selected by the format token
func Encode(w io.Writer, img image.Image, format string, quality int) error {
	name := NormalizeFormat(format)
	enc, ok := encoders[name]
	if !ok {
		return domain.EncodeError(fmt.Sprintf("unsupported output format %q", format), nil)
	}
	if err := ValidateQuality(quality); err != nil {
		return domain.EncodeError("invalid quality", err)
	}
	if err := enc(w, img, quality); err != nil {
		return domain.EncodeError(fmt.Sprintf("failed to encode %s", name), err)
	}
	return nil
}
