// Package imaging re-encodes uploaded item photos into the JPEG variants the
// catalogue serves: the original, a medium preview and a thumbnail.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"

	// register the decoders for the formats uploads arrive in
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	JPEGQuality   = 85
	MediumMaxSize = 800
	ThumbMaxSize  = 200
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// Variant names double as object-key suffixes.
const (
	VariantOriginal = "original"
	VariantMedium   = "medium"
	VariantThumb    = "thumb"
)

var variantSpecs = map[string]int{
	VariantOriginal: 0,
	VariantMedium:   MediumMaxSize,
	VariantThumb:    ThumbMaxSize,
}

// Variants holds the encoded JPEG payloads keyed by variant name.
type Variants map[string][]byte

// VariantNames lists the supported variants.
func VariantNames() []string {
	return []string{VariantOriginal, VariantMedium, VariantThumb}
}

// ValidVariant reports whether name is a known variant.
func ValidVariant(name string) bool {
	_, ok := variantSpecs[name]
	return ok
}

// VariantObjectName builds the object key for one stored variant.
func VariantObjectName(storageKey, variant string) string {
	return fmt.Sprintf("%s_%s.jpg", storageKey, variant)
}

// GenerateVariants decodes the upload and produces all JPEG variants.
func GenerateVariants(data []byte) (Variants, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrUnsupportedFormat)
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrUnsupportedFormat
	}

	out := make(Variants, len(variantSpecs))
	for name, maxSize := range variantSpecs {
		img := src
		if maxSize > 0 {
			img = resize(src, maxSize)
		}
		encoded, err := encodeJPEG(img)
		if err != nil {
			return nil, fmt.Errorf("encode %s variant: %w", name, err)
		}
		out[name] = encoded
	}
	return out, nil
}

// resize scales the image down so its longer edge fits maxSize, keeping the
// aspect ratio. Images already small enough are re-encoded unscaled.
func resize(src image.Image, maxSize int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxSize && h <= maxSize {
		return src
	}

	var dw, dh int
	if w >= h {
		dw = maxSize
		dh = h * maxSize / w
	} else {
		dh = maxSize
		dw = w * maxSize / h
	}
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
