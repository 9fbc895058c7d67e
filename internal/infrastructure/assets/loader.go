package assets

import (
	"image"
	"image/color"
	"io/fs"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"

	"github.com/younwookim/blobclimb/internal/domain/entity"
	"github.com/younwookim/blobclimb/internal/infrastructure/config"
)

// Loader decodes sprites from an asset filesystem. A Loader without a
// filesystem draws placeholders instead, so the game runs from a bare
// binary.
type Loader struct {
	fsys         fs.FS
	tileW, tileH int
}

// NewLoader creates a loader reading from fsys. fsys may be nil.
func NewLoader(fsys fs.FS, tileW, tileH int) *Loader {
	return &Loader{fsys: fsys, tileW: tileW, tileH: tileH}
}

// Placeholders reports whether the loader generates its sprites
func (l *Loader) Placeholders() bool {
	return l.fsys == nil
}

// Atlas returns the tile images of a family
func (l *Loader) Atlas(family entity.Family) (Atlas, error) {
	if l.Placeholders() {
		return PlaceholderAtlas(family, l.tileW, l.tileH), nil
	}
	return LoadAtlas(l.fsys, family)
}

// Image returns the sprite a level reference points at
func (l *Loader) Image(ref string) (image.Image, error) {
	if l.Placeholders() {
		return Placeholder(l.tileW, l.tileH, colornames.Plum, colornames.Purple), nil
	}
	img, err := LoadImage(l.fsys, ref)
	if err != nil {
		return nil, err
	}
	return ColorKey(img, KeyColor), nil
}

// PlayerFrames returns the right-facing frames of every character clip
func (l *Loader) PlayerFrames(cfg config.AssetsConfig, w, h int) (map[entity.Clip][]image.Image, error) {
	if l.Placeholders() {
		walk := max(len(cfg.PlayerWalk), 1)
		frames := map[entity.Clip][]image.Image{
			entity.ClipJump: {placeholderBlob(w, h, colornames.Gold, 0)},
			entity.ClipFall: {placeholderBlob(w, h, colornames.Tomato, 0)},
		}
		for i := 0; i < walk; i++ {
			frames[entity.ClipWalk] = append(frames[entity.ClipWalk], placeholderBlob(w, h, colornames.Orange, i%2))
		}
		return frames, nil
	}

	frames := make(map[entity.Clip][]image.Image, 3)
	for _, name := range cfg.PlayerWalk {
		img, err := l.Image(name)
		if err != nil {
			return nil, err
		}
		frames[entity.ClipWalk] = append(frames[entity.ClipWalk], img)
	}
	for clip, name := range map[entity.Clip]string{entity.ClipJump: cfg.PlayerJump, entity.ClipFall: cfg.PlayerFall} {
		img, err := l.Image(name)
		if err != nil {
			return nil, err
		}
		frames[clip] = []image.Image{img}
	}
	return frames, nil
}

// placeholderBlob draws a w x h blob looking right. squash lowers its top
// by that many pixels, which makes the walk frames bob.
func placeholderBlob(w, h int, body color.Color, squash int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, image.Rect(0, squash, w, h), image.NewUniform(body), image.Point{}, draw.Src)

	eye := max(w/6, 1)
	ex, ey := w-2*eye, squash+h/4
	draw.Draw(img, image.Rect(ex, ey, ex+eye, ey+eye), image.NewUniform(colornames.Black), image.Point{}, draw.Src)
	return img
}
