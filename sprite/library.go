package sprite

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"go.uber.org/zap"
)

// ErrUnknownSheet is returned when a named resource has no sheet document
var ErrUnknownSheet = errors.New("unknown sheet")

// Library resolves named resource identifiers to loaded sheets
// Sheets are read from <name>.yaml in the backing filesystem and cached
type Library struct {
	mu     sync.Mutex
	fsys   fs.FS
	sheets map[string]*SheetData
	log    *zap.Logger
}

// NewLibrary creates a library over fsys
func NewLibrary(fsys fs.FS, log *zap.Logger) *Library {
	if log == nil {
		log = zap.NewNop()
	}
	return &Library{
		fsys:   fsys,
		sheets: make(map[string]*SheetData),
		log:    log,
	}
}

// Load returns the sheet for name, reading it on first use
func (l *Library) Load(name string) (*SheetData, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if d, ok := l.sheets[name]; ok {
		return d, nil
	}

	file := path.Clean(name) + ".yaml"
	f, err := l.fsys.Open(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSheet, name)
		}
		return nil, fmt.Errorf("open sheet %q: %w", name, err)
	}
	defer f.Close()

	d, err := LoadSheet(f)
	if err != nil {
		return nil, fmt.Errorf("load sheet %q: %w", name, err)
	}

	l.sheets[name] = d
	l.log.Debug("sprite sheet loaded",
		zap.String("sheet", name),
		zap.String("image", d.ImageID),
		zap.Int("cells", len(d.Cells)),
		zap.Strings("clips", d.Clips.Names()),
	)
	return d, nil
}

// Require loads a sheet and verifies it defines every listed clip
func (l *Library) Require(name string, clips ...string) (*SheetData, error) {
	d, err := l.Load(name)
	if err != nil {
		return nil, err
	}
	if err := d.Clips.Require(clips...); err != nil {
		return nil, fmt.Errorf("sheet %q: %w", name, err)
	}
	return d, nil
}
