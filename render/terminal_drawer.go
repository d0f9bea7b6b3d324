package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/derby/asset"
	"github.com/lixenwraith/derby/sprite"
)

// Palette tints images by their asset.Image.Tint slot
var Palette = []tcell.Color{
	tcell.ColorYellow,
	tcell.ColorAqua,
	tcell.ColorLime,
	tcell.ColorFuchsia,
	tcell.ColorOrange,
	tcell.ColorSilver,
}

// ImageSource resolves image ids for the drawer
type ImageSource interface {
	Image(id string) (*asset.Image, error)
}

// Viewport maps window pixels to terminal cells
type Viewport struct {
	Width, Height int // px
	CellWidthPx   int
	CellHeightPx  int
}

// Cols returns the play area width in cells
func (v Viewport) Cols() int { return v.Width / v.CellWidthPx }

// Rows returns the play area height in cells
func (v Viewport) Rows() int { return v.Height / v.CellHeightPx }

// ToCell converts a window position to a terminal cell
func (v Viewport) ToCell(x, y float64) (int, int) {
	return int(math.Floor(x / float64(v.CellWidthPx))), int(math.Floor(y / float64(v.CellHeightPx)))
}

// Status is the text shown under the play area
type Status struct {
	Phase  string
	Power  float64
	Frame  uint64
	Paused bool
	Muted  bool
}

// TerminalDrawer is the drawing consumer of the command queue
type TerminalDrawer struct {
	screen   tcell.Screen
	images   ImageSource
	sheets   map[string]*sprite.SheetData // by image id
	viewport Viewport
	style    tcell.Style
}

// NewTerminalDrawer creates a drawer; sheets provide the cell rectangles of their images
func NewTerminalDrawer(screen tcell.Screen, images ImageSource, viewport Viewport, sheets ...*sprite.SheetData) *TerminalDrawer {
	byImage := make(map[string]*sprite.SheetData, len(sheets))
	for _, s := range sheets {
		byImage[s.ImageID] = s
	}
	return &TerminalDrawer{
		screen:   screen,
		images:   images,
		sheets:   byImage,
		viewport: viewport,
		style:    tcell.StyleDefault,
	}
}

// Draw renders one frame from the drained commands
// Every command is attempted; the returned error joins the failures
func (d *TerminalDrawer) Draw(cmds []Command, status Status) error {
	d.screen.Clear()
	d.drawFrame()

	var errs []error
	for _, cmd := range cmds {
		var err error
		switch c := cmd.(type) {
		case DrawSpriteSheetCell:
			err = d.drawCell(c)
		case DrawTransformed:
			err = d.drawTransformed(c)
		default:
			err = fmt.Errorf("unsupported command %T", cmd)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}

	d.drawStatus(status)
	d.screen.Show()
	return errors.Join(errs...)
}

// drawFrame outlines the ground under the play area
func (d *TerminalDrawer) drawFrame() {
	row := d.viewport.Rows() - 1
	style := d.style.Foreground(tcell.ColorGreen)
	for x := 0; x < d.viewport.Cols(); x++ {
		d.screen.SetContent(x, row, '_', nil, style)
	}
}

func (d *TerminalDrawer) drawCell(c DrawSpriteSheetCell) error {
	img, err := d.images.Image(c.ImageID)
	if err != nil {
		return err
	}
	sheet, ok := d.sheets[c.ImageID]
	if !ok {
		return fmt.Errorf("no sheet for image %q", c.ImageID)
	}
	cell, ok := sheet.Cell(c.Cell)
	if !ok {
		return fmt.Errorf("image %q has no cell %d", c.ImageID, c.Cell)
	}

	scale := c.Scale
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Round(float64(cell.W) * scale))
	h := int(math.Round(float64(cell.H) * scale))
	col, row := d.viewport.ToCell(c.Position.X, c.Position.Y)
	style := d.tint(img)

	// Nearest-neighbour sampling of the cell rectangle
	for dy := 0; dy < h; dy++ {
		sy := cell.Y + int(float64(dy)/scale)
		for dx := 0; dx < w; dx++ {
			sx := cell.X + int(float64(dx)/scale)
			d.put(col+dx, row+dy, img.At(sx, sy), style)
		}
	}
	return nil
}

func (d *TerminalDrawer) drawTransformed(c DrawTransformed) error {
	img, err := d.images.Image(c.ImageID)
	if err != nil {
		return err
	}
	if c.ScaleX == 0 || c.ScaleY == 0 {
		return nil
	}

	col, row := d.viewport.ToCell(c.X, c.Y)
	style := d.tint(img)
	sin, cos := math.Sincos(c.Rotation)

	// Destination bounding radius covers any rotation of the scaled image
	rx := math.Abs(float64(img.Width)*c.ScaleX) + math.Abs(float64(img.Height)*c.ScaleY)
	reach := int(math.Ceil(rx))

	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			// Inverse transform back into image space
			fx, fy := float64(dx)+0.5, float64(dy)+0.5
			sx := (cos*fx + sin*fy) / c.ScaleX
			sy := (-sin*fx + cos*fy) / c.ScaleY
			ix, iy := int(math.Floor(sx)), int(math.Floor(sy))
			if ix < 0 || iy < 0 || ix >= img.Width || iy >= img.Height {
				continue
			}
			d.put(col+dx, row+dy, img.At(ix, iy), style)
		}
	}
	return nil
}

// put writes one rune, skipping transparency and anything outside the play area
func (d *TerminalDrawer) put(x, y int, r rune, style tcell.Style) {
	if r == asset.Transparent {
		return
	}
	if x < 0 || y < 0 || x >= d.viewport.Cols() || y >= d.viewport.Rows() {
		return
	}
	d.screen.SetContent(x, y, r, nil, style)
}

func (d *TerminalDrawer) tint(img *asset.Image) tcell.Style {
	return d.style.Foreground(Palette[img.Tint%len(Palette)])
}

func (d *TerminalDrawer) drawStatus(s Status) {
	text := fmt.Sprintf(" %-16s power %+.2f  frame %d", s.Phase, s.Power, s.Frame)
	if s.Paused {
		text += "  [paused]"
	}
	if s.Muted {
		text += "  [muted]"
	}
	row := d.viewport.Rows()
	style := d.style.Foreground(tcell.ColorWhite).Bold(true)
	for i, r := range text {
		d.screen.SetContent(i, row, r, nil, style)
	}
}
