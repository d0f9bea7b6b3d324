package engine

import (
	"github.com/lixenwraith/derby/core"
)

// AnyStore provides type-erased operations for lifecycle management
// This interface allows World to destroy entities without knowing concrete component types
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}
