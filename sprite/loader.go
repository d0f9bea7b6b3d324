package sprite

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSheet is returned for malformed sheet documents
var ErrInvalidSheet = errors.New("invalid sheet")

// sheetFile is the on-disk YAML layout of a sprite sheet
type sheetFile struct {
	Name   string     `yaml:"name"`
	Image  string     `yaml:"image"`
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Cells  []cellFile `yaml:"cells"`
	Clips  []clipFile `yaml:"clips"`
}

type cellFile struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type clipFile struct {
	Name   string      `yaml:"name"`
	Frames []frameFile `yaml:"frames"`
}

type frameFile struct {
	Cell     int     `yaml:"cell"`
	Duration float64 `yaml:"duration"` // ms
}

// LoadSheet decodes a YAML sprite sheet
func LoadSheet(r io.Reader) (*SheetData, error) {
	var f sheetFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode sheet: %w", err)
	}
	return f.build()
}

// ParseSheet decodes a YAML sprite sheet from memory
func ParseSheet(data []byte) (*SheetData, error) {
	return LoadSheet(bytes.NewReader(data))
}

func (f *sheetFile) build() (*SheetData, error) {
	if f.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidSheet)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("%w: sheet %q has invalid size %dx%d", ErrInvalidSheet, f.Name, f.Width, f.Height)
	}

	image := f.Image
	if image == "" {
		image = f.Name
	}

	d := &SheetData{
		Name:    f.Name,
		ImageID: image,
		Width:   f.Width,
		Height:  f.Height,
		Cells:   make([]Cell, 0, len(f.Cells)),
		Clips:   NewClipStore(),
	}

	for i, c := range f.Cells {
		if c.W <= 0 || c.H <= 0 || c.X < 0 || c.Y < 0 || c.X+c.W > f.Width || c.Y+c.H > f.Height {
			return nil, fmt.Errorf("%w: sheet %q cell %d out of bounds", ErrInvalidSheet, f.Name, i)
		}
		d.Cells = append(d.Cells, Cell{X: c.X, Y: c.Y, W: c.W, H: c.H})
	}

	for _, c := range f.Clips {
		frames := make([]Frame, 0, len(c.Frames))
		for j, fr := range c.Frames {
			if fr.Cell != BlankCell && (fr.Cell < 0 || fr.Cell >= len(d.Cells)) {
				return nil, fmt.Errorf("%w: sheet %q clip %q frame %d references cell %d", ErrInvalidSheet, f.Name, c.Name, j, fr.Cell)
			}
			frames = append(frames, Frame{Cell: fr.Cell, Duration: fr.Duration})
		}
		if err := d.Clips.Define(c.Name, frames); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", f.Name, err)
		}
	}

	return d, nil
}
