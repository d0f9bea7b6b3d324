package sprite

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownClip is returned when a clip name is not defined in the sheet
	ErrUnknownClip = errors.New("unknown clip")

	// ErrInvalidClip is returned when a clip definition is malformed
	ErrInvalidClip = errors.New("invalid clip")
)

// ClipStore is the clip factory of a sprite sheet
// Definitions are immutable once added; Create hands out independent cursors
type ClipStore struct {
	clips map[string]*clipData
}

// NewClipStore creates an empty clip store
func NewClipStore() *ClipStore {
	return &ClipStore{clips: make(map[string]*clipData)}
}

// Define registers a named clip with its frame table
func (s *ClipStore) Define(name string, frames []Frame) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidClip)
	}
	if _, exists := s.clips[name]; exists {
		return fmt.Errorf("%w: duplicate clip %q", ErrInvalidClip, name)
	}
	if len(frames) == 0 {
		return fmt.Errorf("%w: clip %q has no frames", ErrInvalidClip, name)
	}

	total := 0.0
	for i, f := range frames {
		if f.Duration <= 0 {
			return fmt.Errorf("%w: clip %q frame %d has non-positive duration", ErrInvalidClip, name, i)
		}
		total += f.Duration
	}

	owned := make([]Frame, len(frames))
	copy(owned, frames)
	s.clips[name] = &clipData{name: name, frames: owned, duration: total}
	return nil
}

// Create returns a fresh playback cursor for the named clip
func (s *ClipStore) Create(name string, mode PlayMode) (AnimationClip, error) {
	data, ok := s.clips[name]
	if !ok {
		return AnimationClip{}, fmt.Errorf("%w: %q", ErrUnknownClip, name)
	}
	return AnimationClip{data: data, mode: mode}, nil
}

// MustCreate is Create for names already checked with Require
// A missing clip at this point is a programmer error
func (s *ClipStore) MustCreate(name string, mode PlayMode) AnimationClip {
	clip, err := s.Create(name, mode)
	if err != nil {
		panic(err)
	}
	return clip
}

// Has reports whether a clip name is defined
func (s *ClipStore) Has(name string) bool {
	_, ok := s.clips[name]
	return ok
}

// Require verifies that every listed clip is defined
func (s *ClipStore) Require(names ...string) error {
	var missing []error
	for _, name := range names {
		if !s.Has(name) {
			missing = append(missing, fmt.Errorf("%w: %q", ErrUnknownClip, name))
		}
	}
	return errors.Join(missing...)
}

// Names returns defined clip names in sorted order
func (s *ClipStore) Names() []string {
	names := make([]string, 0, len(s.clips))
	for name := range s.clips {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
