package sprite

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSheet = `
name: meter
image: meter-art
width: 20
height: 4
cells:
  - {x: 0, y: 0, w: 10, h: 2}
  - {x: 10, y: 0, w: 10, h: 2}
  - {x: 0, y: 2, w: 1, h: 2}
clips:
  - name: No Bar
    frames:
      - {cell: -1, duration: 1000}
  - name: Bar
    frames:
      - {cell: 0, duration: 120}
      - {cell: 1, duration: 120}
  - name: Pointer
    frames:
      - {cell: 2, duration: 500}
`

func TestParseSheet(t *testing.T) {
	d, err := ParseSheet([]byte(testSheet))
	require.NoError(t, err)

	assert.Equal(t, "meter", d.Name)
	assert.Equal(t, "meter-art", d.ImageID)
	assert.Len(t, d.Cells, 3)
	assert.Equal(t, []string{"Bar", "No Bar", "Pointer"}, d.Clips.Names())

	c, ok := d.Cell(1)
	require.True(t, ok)
	assert.Equal(t, UV{X: 0.5, Y: 0, W: 0.5, H: 0.5}, c.UV(d.Width, d.Height))

	_, ok = d.Cell(3)
	assert.False(t, ok)

	bar := d.Clips.MustCreate("Bar", Loop)
	assert.Equal(t, 240.0, bar.Duration())
}

func TestParseSheetImageDefaultsToName(t *testing.T) {
	d, err := ParseSheet([]byte("name: bare\nwidth: 1\nheight: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, "bare", d.ImageID)
}

func TestParseSheetErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing name", "width: 4\nheight: 4\n"},
		{"bad size", "name: x\nwidth: 0\nheight: 4\n"},
		{"cell out of bounds", "name: x\nwidth: 4\nheight: 4\ncells:\n  - {x: 2, y: 0, w: 4, h: 1}\n"},
		{"frame references missing cell", "name: x\nwidth: 4\nheight: 4\ncells:\n  - {x: 0, y: 0, w: 1, h: 1}\nclips:\n  - name: A\n    frames:\n      - {cell: 5, duration: 10}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSheet([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidSheet)
		})
	}

	_, err := ParseSheet([]byte("name: x\nwidth: 1\nheight: 1\nbogus: true\n"))
	assert.Error(t, err, "unknown fields are rejected")
}

func TestLibraryLoadAndCache(t *testing.T) {
	fsys := fstest.MapFS{
		"meter.yaml": &fstest.MapFile{Data: []byte(testSheet)},
	}
	lib := NewLibrary(fsys, nil)

	a, err := lib.Load("meter")
	require.NoError(t, err)
	b, err := lib.Load("meter")
	require.NoError(t, err)
	assert.Same(t, a, b)

	_, err = lib.Load("pitcher")
	assert.ErrorIs(t, err, ErrUnknownSheet)
}

func TestLibraryRequire(t *testing.T) {
	fsys := fstest.MapFS{
		"meter.yaml": &fstest.MapFile{Data: []byte(testSheet)},
	}
	lib := NewLibrary(fsys, nil)

	_, err := lib.Require("meter", "Bar", "No Bar", "Pointer")
	assert.NoError(t, err)

	_, err = lib.Require("meter", "Bar", "Winding")
	assert.ErrorIs(t, err, ErrUnknownClip)
}
