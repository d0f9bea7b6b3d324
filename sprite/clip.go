package sprite

import "math"

// PlayMode controls what a clip does once its last frame elapses
type PlayMode uint8

const (
	OneShot PlayMode = iota // Plays through once then drains on the final frame
	Loop                    // Wraps around indefinitely
	Hold                    // Stops on the final frame, never drains
)

// String returns the mode name
func (m PlayMode) String() string {
	switch m {
	case OneShot:
		return "OneShot"
	case Loop:
		return "Loop"
	case Hold:
		return "Hold"
	default:
		return "Unknown"
	}
}

// BlankCell marks a frame that shows nothing
const BlankCell = -1

// Frame is one step of a clip: a sheet cell shown for a duration in milliseconds
type Frame struct {
	Cell     int
	Duration float64
}

// clipData is the immutable frame table shared by every clone of a clip
type clipData struct {
	name     string
	frames   []Frame
	duration float64
}

// AnimationClip is an independent playback cursor over shared frame data
// Copying the value clones the cursor; frame data is never copied
type AnimationClip struct {
	data    *clipData
	mode    PlayMode
	elapsed float64
	drained bool
}

// Name returns the clip name as defined in its sheet
func (c *AnimationClip) Name() string {
	if c == nil || c.data == nil {
		return ""
	}
	return c.data.name
}

// Mode returns the play mode the clip was created with
func (c *AnimationClip) Mode() PlayMode {
	return c.mode
}

// Duration returns the total length of one pass in milliseconds
func (c *AnimationClip) Duration() float64 {
	if c == nil || c.data == nil {
		return 0
	}
	return c.data.duration
}

// Elapsed returns the playback position in milliseconds
func (c *AnimationClip) Elapsed() float64 {
	return c.elapsed
}

// Drained reports whether a OneShot clip has played through
// Always false for Loop and Hold
func (c *AnimationClip) Drained() bool {
	return c != nil && c.drained
}

// Update advances the playback cursor by deltaMs
func (c *AnimationClip) Update(deltaMs float64) {
	if c == nil || c.data == nil || c.data.duration <= 0 || c.drained || deltaMs <= 0 {
		return
	}

	c.elapsed += deltaMs

	switch c.mode {
	case OneShot:
		if c.elapsed >= c.data.duration {
			c.elapsed = c.data.duration
			c.drained = true
		}
	case Loop:
		c.elapsed = math.Mod(c.elapsed, c.data.duration)
	case Hold:
		if c.elapsed > c.data.duration {
			c.elapsed = c.data.duration
		}
	}
}

// Reset rewinds the cursor to the first frame and clears drained
func (c *AnimationClip) Reset() {
	c.elapsed = 0
	c.drained = false
}

// FrameIndex returns the index into the clip's frame table for the current position
// Returns false when the clip has no frames
func (c *AnimationClip) FrameIndex() (int, bool) {
	if c == nil || c.data == nil || len(c.data.frames) == 0 {
		return 0, false
	}

	acc := 0.0
	for i, f := range c.data.frames {
		acc += f.Duration
		if c.elapsed < acc {
			return i, true
		}
	}
	// Cursor parked at the end (drained OneShot or Hold)
	return len(c.data.frames) - 1, true
}

// Cell returns the sheet cell index for the current frame
// Returns false when there is nothing to draw: no frames, or a blank frame
func (c *AnimationClip) Cell() (int, bool) {
	i, ok := c.FrameIndex()
	if !ok {
		return 0, false
	}
	cell := c.data.frames[i].Cell
	if cell < 0 {
		return 0, false
	}
	return cell, true
}
