// Package assets loads sprites and tile atlases and turns them into ebiten
// images. Image processing works on plain image.Image values so it can run
// without a graphics context.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// KeyColor is the background color of sprite files that is made transparent
var KeyColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// AssetLoadError reports a sprite that could not be read or decoded.
// Asset errors surface at startup and are fatal.
type AssetLoadError struct {
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("failed to load asset %s: %v", e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}

// LoadImage reads and decodes a PNG or BMP file from fsys
func LoadImage(fsys fs.FS, path string) (image.Image, error) {
	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, &AssetLoadError{Path: path, Err: err}
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, &AssetLoadError{Path: path, Err: err}
	}
	return img, nil
}

// toNRGBA copies img into a new NRGBA image with its origin at (0, 0)
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// FlipHorizontal returns a mirrored copy of img
func FlipHorizontal(img image.Image) *image.NRGBA {
	src := toNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewNRGBA(src.Rect)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetNRGBA(w-1-x, y, src.NRGBAAt(x, y))
		}
	}
	return dst
}

// ColorKey returns a copy of img with every pixel of the key color made
// fully transparent. Alpha of the key is ignored.
func ColorKey(img image.Image, key color.Color) *image.NRGBA {
	dst := toNRGBA(img)
	k := color.NRGBAModel.Convert(key).(color.NRGBA)
	for i := 0; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] == k.R && dst.Pix[i+1] == k.G && dst.Pix[i+2] == k.B {
			dst.Pix[i+3] = 0
		}
	}
	return dst
}

// Placeholder returns a w x h block of fill with a one pixel border
func Placeholder(w, h int, fill, border color.Color) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(border), image.Point{}, draw.Src)
	if w > 2 && h > 2 {
		draw.Draw(dst, image.Rect(1, 1, w-1, h-1), image.NewUniform(fill), image.Point{}, draw.Src)
	}
	return dst
}

