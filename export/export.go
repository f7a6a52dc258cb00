package export

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Format tags the on-disk image encoding.
type Format int

const (
	FormatPNG Format = iota
	FormatJPEG
	FormatBMP
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "PNG"
	case FormatJPEG:
		return "JPEG"
	case FormatBMP:
		return "BMP"
	default:
		return "unknown"
	}
}

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatJPEG:
		return "jpg"
	case FormatBMP:
		return "bmp"
	default:
		return "png"
	}
}

// Formats lists all supported formats.
func Formats() []Format { return []Format{FormatPNG, FormatJPEG, FormatBMP} }

// ParseFormat maps a user-supplied name ("png", "jpg", "jpeg", "bmp") to a
// Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "bmp":
		return FormatBMP, nil
	default:
		return FormatPNG, fmt.Errorf("export: unsupported format %q", name)
	}
}

// Options tune the encoders. The zero value means defaults (JPEG quality 90).
type Options struct {
	JPEGQuality int
}

// Encode writes img to w in the given format. The buffer is written as
// handed over; no pixel transformations happen here.
func Encode(w io.Writer, img image.Image, f Format, opts Options) error {
	switch f {
	case FormatJPEG:
		q := opts.JPEGQuality
		if q < 1 || q > 100 {
			q = 90
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	case FormatBMP:
		return bmp.Encode(w, img)
	default:
		return png.Encode(w, img)
	}
}

// WriteFile encodes img into path, creating parent directories. An empty
// extension on path gets the format's default extension appended.
func WriteFile(path string, img image.Image, f Format, opts Options) (string, error) {
	if filepath.Ext(path) == "" {
		path += "." + f.Extension()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("export: create dir: %w", err)
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: create file: %w", err)
	}
	defer out.Close()
	if err := Encode(out, img, f, opts); err != nil {
		return "", fmt.Errorf("export: encode %s: %w", f, err)
	}
	return path, nil
}
