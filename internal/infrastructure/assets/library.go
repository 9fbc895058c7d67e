package assets

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/younwookim/blobclimb/internal/domain/entity"
	"github.com/younwookim/blobclimb/internal/infrastructure/config"
)

// Placement is an image and the screen position of its top-left corner
type Placement struct {
	Image *ebiten.Image
	X, Y  float64
}

// Library caches the ebiten images of everything the game draws
type Library struct {
	loader     *Loader
	tiles      map[entity.Family]map[entity.Variant]*ebiten.Image
	images     map[string]*ebiten.Image
	player     map[entity.Clip][]*ebiten.Image
	mirrored   map[entity.Clip][]*ebiten.Image
	background color.RGBA
}

// NewLibrary loads the configured family and the player sprites
func NewLibrary(loader *Loader, cfg *config.GameConfig) (*Library, error) {
	bg, err := ParseBackground(cfg.Display.Background)
	if err != nil {
		return nil, err
	}

	lib := &Library{
		loader:     loader,
		tiles:      make(map[entity.Family]map[entity.Variant]*ebiten.Image),
		images:     make(map[string]*ebiten.Image),
		player:     make(map[entity.Clip][]*ebiten.Image),
		mirrored:   make(map[entity.Clip][]*ebiten.Image),
		background: bg,
	}

	if err := lib.AddFamily(entity.Family(cfg.Assets.Family)); err != nil {
		return nil, err
	}

	frames, err := loader.PlayerFrames(cfg.Assets, int(cfg.Player.Width), int(cfg.Player.Height))
	if err != nil {
		return nil, err
	}
	for clip, imgs := range frames {
		for _, img := range imgs {
			lib.player[clip] = append(lib.player[clip], ebiten.NewImageFromImage(img))
			lib.mirrored[clip] = append(lib.mirrored[clip], ebiten.NewImageFromImage(FlipHorizontal(img)))
		}
	}
	return lib, nil
}

// AddFamily loads the atlas of family unless it is cached already
func (lib *Library) AddFamily(family entity.Family) error {
	if _, ok := lib.tiles[family]; ok {
		return nil
	}
	atlas, err := lib.loader.Atlas(family)
	if err != nil {
		return err
	}
	images := make(map[entity.Variant]*ebiten.Image, len(atlas))
	for v, img := range atlas {
		images[v] = ebiten.NewImageFromImage(img)
	}
	lib.tiles[family] = images
	return nil
}

// AddImage loads the sprite a level reference points at
func (lib *Library) AddImage(ref string) error {
	if _, ok := lib.images[ref]; ok {
		return nil
	}
	img, err := lib.loader.Image(ref)
	if err != nil {
		return err
	}
	lib.images[ref] = ebiten.NewImageFromImage(img)
	return nil
}

// AddLevel loads every family and image a level references
func (lib *Library) AddLevel(level *config.LevelConfig) error {
	for _, ref := range level.References {
		family, ok := config.ReferenceFamily(ref)
		if ok {
			if err := lib.AddFamily(entity.Family(family)); err != nil {
				return err
			}
			continue
		}
		if err := lib.AddImage(ref); err != nil {
			return err
		}
	}
	return nil
}

// Background returns the clear color of the screen
func (lib *Library) Background() color.RGBA {
	return lib.background
}

// TileImage returns the sprite of t, or nil when nothing is drawn for it
func (lib *Library) TileImage(t entity.Tile) *ebiten.Image {
	if t.IsDynamic() {
		return lib.tiles[t.Family][t.Variant]
	}
	if t.Ref != "" {
		return lib.images[t.Ref]
	}
	return nil
}

// PlayerImage returns the current animation frame of a
func (lib *Library) PlayerImage(a entity.Animator) *ebiten.Image {
	frames := lib.player[a.Clip]
	if a.Facing.Mirrored() {
		frames = lib.mirrored[a.Clip]
	}
	if len(frames) == 0 {
		return nil
	}
	return frames[a.Frame%len(frames)]
}

// Placements lists what to draw this frame: visible tiles first, then the
// player on top
func (lib *Library) Placements(grid *entity.Grid, player *entity.Character) []Placement {
	var out []Placement
	grid.Each(func(_ entity.Coord, t entity.Tile) {
		if t.Hidden || grid.TileRect(t).Bottom() <= 0 {
			return
		}
		if img := lib.TileImage(t); img != nil {
			out = append(out, Placement{Image: img, X: t.X, Y: t.Y})
		}
	})
	if img := lib.PlayerImage(player.Anim); img != nil {
		out = append(out, Placement{Image: img, X: player.X, Y: player.Y})
	}
	return out
}

// Draw renders placements onto screen
func Draw(screen *ebiten.Image, placements []Placement) {
	for _, p := range placements {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(p.X, p.Y)
		screen.DrawImage(p.Image, op)
	}
}

// ParseBackground resolves an SVG color name. An empty name is sky blue.
func ParseBackground(name string) (color.RGBA, error) {
	if name == "" {
		return colornames.Skyblue, nil
	}
	c, ok := colornames.Map[name]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown background color %q", name)
	}
	return c, nil
}

