package render

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterizer converts an SVG document into an image file.
type Rasterizer interface {
	// Rasterize renders the SVG into a width×height image and writes it to dst.
	Rasterize(svg []byte, width, height int, dst string) error
}

// PNG rasterizes SVG documents into PNG files.
type PNG struct{}

var _ Rasterizer = PNG{} // ensure interface implementation

// Rasterize implements the Rasterizer interface. Unsupported SVG features are skipped.
func (PNG) Rasterize(svg []byte, width, height int, dst string) error {
	if width <= 0 || height <= 0 {
		return errors.Errorf("wrong image size %dx%d", width, height)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg), oksvg.IgnoreErrorMode)
	if err != nil {
		return errors.Wrap(err, "failed to parse SVG")
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	var (
		img     = image.NewRGBA(image.Rect(0, 0, width, height))
		scanner = rasterx.NewScannerGV(width, height, img, img.Bounds())
	)

	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	return writePNG(dst, img)
}

// writePNG encodes the image into a temporary file next to dst and renames it, so dst never holds a partially
// written image.
func writePNG(dst string, img image.Image) error {
	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "failed to create PNG file")
	}

	var tmpName = tmp.Name()

	defer func() { _ = os.Remove(tmpName) }() // no-op after the rename

	if err = png.Encode(tmp, img); err != nil {
		_ = tmp.Close()

		return errors.Wrap(err, "failed to encode PNG")
	}

	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to close PNG file")
	}

	if err = os.Chmod(tmpName, 0o644); err != nil { //nolint:mnd
		return errors.Wrap(err, "failed to set PNG file permissions")
	}

	return errors.Wrap(os.Rename(tmpName, dst), "failed to move PNG file into place")
}
