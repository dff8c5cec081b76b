// Package transcode re-encodes photos for the web: proportional downscale to
// a maximum width, flattening to direct-color RGB, JPEG recompression, and
// carry-over of the original EXIF block.
package transcode

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	_ "image/png" // register the PNG decoder; inputs are not always JPEG
	"os"

	"github.com/nfnt/resize"

	"github.com/backmassage/photopress/internal/exifdata"
)

// Options holds the target constraints for one transcode.
type Options struct {
	MaxWidth int // Photos wider than this are downscaled; never upscaled.
	Quality  int // JPEG quality, 1-100.
}

// File reads the photo at srcPath, applies opts, and writes an optimized
// JPEG to dstPath. The source's EXIF APP1 segment, when readable, is carried
// over verbatim; an unreadable segment just means the output has no metadata.
// Any other failure is returned to the caller for per-file accounting.
func File(srcPath, dstPath string, opts Options) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", srcPath, err)
	}
	img, _, err := image.Decode(src)
	src.Close()
	if err != nil {
		return fmt.Errorf("decode %s: %w", srcPath, err)
	}

	if img.Bounds().Dx() > opts.MaxWidth {
		img = resize.Resize(uint(opts.MaxWidth), 0, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flatten(img), &jpeg.Options{Quality: opts.Quality}); err != nil {
		return fmt.Errorf("encode %s: %w", srcPath, err)
	}

	out := buf.Bytes()
	if app1, err := exifdata.RawAPP1(srcPath); err == nil {
		out = exifdata.SpliceAPP1(out, app1)
	}

	if err := os.WriteFile(dstPath, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dstPath, err)
	}
	return nil
}

// flatten draws img over an opaque white canvas, which removes transparency
// and palette indexing in one step. JPEG cannot carry alpha, so translucent
// regions composite onto white rather than going black.
func flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}
