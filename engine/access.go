package engine

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Kind identifies a component table or shared resource a system touches
type Kind uint8

const (
	KindGameFlow Kind = iota
	KindPitcher
	KindBatter
	KindBat
	KindBall
	KindPowerMeter
	KindOuterSpace
	KindGround
	KindCommands // render command queue

	kindCount
)

var kindNames = [kindCount]string{
	KindGameFlow:   "GameFlow",
	KindPitcher:    "Pitcher",
	KindBatter:     "Batter",
	KindBat:        "Bat",
	KindBall:       "Ball",
	KindPowerMeter: "PowerMeter",
	KindOuterSpace: "OuterSpace",
	KindGround:     "Ground",
	KindCommands:   "Commands",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Unknown"
}

// KindSet is a bitmask of kinds
type KindSet uint16

// Kinds builds a set from a list of kinds
func Kinds(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s |= 1 << k
	}
	return s
}

func (s KindSet) Has(k Kind) bool { return s&(1<<k) != 0 }

func (s KindSet) String() string {
	var names []string
	for k := Kind(0); k < kindCount; k++ {
		if s.Has(k) {
			names = append(names, k.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Access declares which kinds a system reads and writes during a tick
// A kind in Writes is implicitly readable
type Access struct {
	Reads  KindSet
	Writes KindSet
}

// ConflictsWith reports whether two systems may not run concurrently
func (a Access) ConflictsWith(b Access) bool {
	return a.Writes&(b.Writes|b.Reads) != 0 || b.Writes&a.Reads != 0
}

// ErrBorrowConflict reports two systems claiming incompatible access to a kind
var ErrBorrowConflict = errors.New("borrow conflict")

// BorrowTable tracks live borrows per kind during a dispatch stage
// Enforces single writer or many readers per kind
type BorrowTable struct {
	mu      sync.Mutex
	readers [kindCount]int
	writer  [kindCount]string
}

// Acquire claims access for the named system or fails without claiming anything
func (b *BorrowTable) Acquire(name string, a Access) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for k := Kind(0); k < kindCount; k++ {
		if a.Writes.Has(k) {
			if b.writer[k] != "" {
				return fmt.Errorf("%s writes %s held by %s: %w", name, k, b.writer[k], ErrBorrowConflict)
			}
			if b.readers[k] > 0 {
				return fmt.Errorf("%s writes %s while read by %d systems: %w", name, k, b.readers[k], ErrBorrowConflict)
			}
		} else if a.Reads.Has(k) && b.writer[k] != "" {
			return fmt.Errorf("%s reads %s held by %s: %w", name, k, b.writer[k], ErrBorrowConflict)
		}
	}

	for k := Kind(0); k < kindCount; k++ {
		switch {
		case a.Writes.Has(k):
			b.writer[k] = name
		case a.Reads.Has(k):
			b.readers[k]++
		}
	}
	return nil
}

// Release returns a previously acquired access
func (b *BorrowTable) Release(a Access) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for k := Kind(0); k < kindCount; k++ {
		switch {
		case a.Writes.Has(k):
			b.writer[k] = ""
		case a.Reads.Has(k):
			if b.readers[k] > 0 {
				b.readers[k]--
			}
		}
	}
}
