package images

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestEncodePNG_RoundTrips(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	data := EncodePNG(img)
	if len(data) == 0 {
		t.Fatal("empty PNG bytes")
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Fatalf("expected 8x6, got %v", b)
	}
}

func TestEncodePNG_NilImage(t *testing.T) {
	if EncodePNG(nil) != nil {
		t.Fatal("expected nil bytes for nil image")
	}
}

func TestFit_PreservesAspectRatio(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 100))
	out := Fit(src, 50, 50)
	if b := out.Bounds(); b.Dx() != 50 || b.Dy() != 25 {
		t.Fatalf("expected 50x25, got %v", b)
	}
}

func TestFit_ReturnsOriginalWhenSmaller(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if Fit(src, 50, 50) != image.Image(src) {
		t.Fatal("expected original image back")
	}
}

func TestThumbnail_ProducesBoundedPNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 300, 300))
	data := Thumbnail(src, 64, 64)
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() > 64 || b.Dy() > 64 {
		t.Fatalf("thumbnail %v exceeds 64x64", b)
	}
}
