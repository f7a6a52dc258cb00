// Package images holds small image helpers shared by previews and exports.
package images

import (
	"bytes"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return
// an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// Fit scales the image down to fit within maxW x maxH preserving aspect
// ratio, for terminal-size previews and thumbnails. Images that already fit
// are returned as-is.
func Fit(src image.Image, maxW, maxH int) image.Image {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return src
	}
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	return imaging.Fit(src, maxW, maxH, imaging.Lanczos)
}

// Thumbnail returns a PNG-encoded preview bounded by maxW x maxH.
func Thumbnail(src image.Image, maxW, maxH int) []byte {
	return EncodePNG(Fit(src, maxW, maxH))
}
