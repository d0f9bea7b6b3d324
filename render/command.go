package render

import (
	"fmt"

	"github.com/lixenwraith/derby/core"
)

// CommandKind tags a render command for the drawing consumer
type CommandKind uint8

const (
	KindDrawTransformed CommandKind = iota
	KindDrawSpriteSheetCell
)

// Command is one drawing instruction emitted by the simulation
type Command interface {
	Kind() CommandKind
	String() string
}

// DrawTransformed draws a whole image with an affine transform
// Declared for completeness; no system emits it yet
type DrawTransformed struct {
	ImageID  string
	X, Y     float64
	Rotation float64 // radians
	ScaleX   float64
	ScaleY   float64
}

func (DrawTransformed) Kind() CommandKind { return KindDrawTransformed }

func (c DrawTransformed) String() string {
	return fmt.Sprintf("DrawTransformed{%s (%.1f,%.1f) rot=%.2f scale=%.2fx%.2f}",
		c.ImageID, c.X, c.Y, c.Rotation, c.ScaleX, c.ScaleY)
}

// DrawSpriteSheetCell draws one cell of a sprite sheet image
type DrawSpriteSheetCell struct {
	ImageID  string
	Cell     int
	Position core.Point
	Scale    float64
}

func (DrawSpriteSheetCell) Kind() CommandKind { return KindDrawSpriteSheetCell }

func (c DrawSpriteSheetCell) String() string {
	return fmt.Sprintf("DrawSpriteSheetCell{%s #%d (%.1f,%.1f) scale=%.2f}",
		c.ImageID, c.Cell, c.Position.X, c.Position.Y, c.Scale)
}
