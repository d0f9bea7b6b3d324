package sprite

// Cell is the pixel bounding box of one frame on the sheet image
type Cell struct {
	X, Y, W, H int
}

// UV is a cell box normalized to the image size
type UV struct {
	X, Y, W, H float64
}

// UV returns texture coordinates of the cell for an image of the given size
func (c Cell) UV(width, height int) UV {
	if width <= 0 || height <= 0 {
		return UV{}
	}
	w, h := float64(width), float64(height)
	return UV{
		X: float64(c.X) / w,
		Y: float64(c.Y) / h,
		W: float64(c.W) / w,
		H: float64(c.H) / h,
	}
}

// SheetData is a loaded sprite sheet: the atlas layout and its clip factory
type SheetData struct {
	Name    string
	ImageID string
	Width   int
	Height  int
	Cells   []Cell
	Clips   *ClipStore
}

// Cell returns the cell at index i
func (d *SheetData) Cell(i int) (Cell, bool) {
	if i < 0 || i >= len(d.Cells) {
		return Cell{}, false
	}
	return d.Cells[i], true
}
