package asset

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

// ErrUnknownImage is returned when an image id has no backing file
var ErrUnknownImage = errors.New("unknown image")

// Transparent marks image positions the drawer skips
const Transparent = ' '

// Image is a rune grid; one rune covers one terminal cell
type Image struct {
	ID     string
	Width  int
	Height int
	Rows   [][]rune // Height rows of Width runes, short lines padded with Transparent
	Tint   int      // Stable palette slot derived from ID
}

// At returns the rune at x,y or Transparent outside the grid
func (img *Image) At(x, y int) rune {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return Transparent
	}
	return img.Rows[y][x]
}

// Bundle loads images on demand from <id>.txt and caches them
type Bundle struct {
	mu       sync.Mutex
	fsys     fs.FS
	images   map[string]*Image
	palettes int
	log      *zap.Logger
}

// NewBundle creates a bundle over fsys; palettes is the number of tint slots
func NewBundle(fsys fs.FS, palettes int, log *zap.Logger) *Bundle {
	if log == nil {
		log = zap.NewNop()
	}
	if palettes <= 0 {
		palettes = 1
	}
	return &Bundle{
		fsys:     fsys,
		images:   make(map[string]*Image),
		palettes: palettes,
		log:      log,
	}
}

// Image returns the image for id, reading it on first use
func (b *Bundle) Image(id string) (*Image, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if img, ok := b.images[id]; ok {
		return img, nil
	}

	f, err := b.fsys.Open(path.Clean(id) + ".txt")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownImage, id)
		}
		return nil, fmt.Errorf("open image %q: %w", id, err)
	}
	defer f.Close()

	var rows [][]rune
	width := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		row := []rune(sc.Text())
		if len(row) > width {
			width = len(row)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read image %q: %w", id, err)
	}

	for i, row := range rows {
		for len(row) < width {
			row = append(row, Transparent)
		}
		rows[i] = row
	}

	img := &Image{
		ID:     id,
		Width:  width,
		Height: len(rows),
		Rows:   rows,
		Tint:   TintSlot(id, b.palettes),
	}
	b.images[id] = img
	b.log.Debug("image loaded", zap.String("image", id), zap.Int("width", width), zap.Int("height", len(rows)))
	return img, nil
}

// Preload reads every listed image, failing on the first missing one
func (b *Bundle) Preload(ids ...string) error {
	for _, id := range ids {
		if _, err := b.Image(id); err != nil {
			return err
		}
	}
	return nil
}

// TintSlot maps an image id to a stable palette slot
func TintSlot(id string, slots int) int {
	if slots <= 1 {
		return 0
	}
	return int(xxhash.Sum64String(id) % uint64(slots))
}
