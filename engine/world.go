package engine

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/derby/component"
	"github.com/lixenwraith/derby/core"
	"github.com/lixenwraith/derby/event"
	"github.com/lixenwraith/derby/render"
)

// World contains all entities, their components and the system schedule
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Components ComponentStore
	Resource   Resource

	allStores []AnyStore
	scheduler *Scheduler
	log       *zap.Logger

	updateMutex sync.Mutex
}

// NewWorld creates an empty world with all component stores and resources allocated
func NewWorld(log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	cs, all := newComponentStore()
	return &World{
		nextEntityID: 1,
		Components:   cs,
		Resource: Resource{
			Time:     &TimeResource{},
			Events:   event.NewQueue(),
			Commands: render.NewCommandQueue(),
		},
		allStores: all,
		scheduler: NewScheduler(log.Named("scheduler")),
		log:       log,
	}
}

// Logger returns the world's logger
func (w *World) Logger() *zap.Logger {
	return w.log
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// Alive reports whether an entity holds at least one component
func (w *World) Alive(e core.Entity) bool {
	for _, store := range w.allStores {
		if store.Has(e) {
			return true
		}
	}
	return false
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, store := range w.allStores {
		store.Clear()
	}
}

// AddSystem registers a system; dispatch order follows priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.scheduler.Add(system)
	w.log.Debug("system registered",
		zap.String("system", system.Name()),
		zap.Int("priority", system.Priority()),
		zap.Stringer("reads", system.Access().Reads),
		zap.Stringer("writes", system.Access().Writes))
}

// Systems returns the registered systems in dispatch order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.scheduler.Systems()
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Tick runs all systems once under the update lock
func (w *World) Tick(now time.Time, tick TickData) error {
	var err error
	w.RunSafe(func() {
		err = w.TickLocked(now, tick)
	})
	return err
}

// TickLocked runs all systems assuming the caller already holds the update lock
func (w *World) TickLocked(now time.Time, tick TickData) error {
	w.Resource.Time.Update(now, tick)

	w.mu.RLock()
	sched := w.scheduler
	w.mu.RUnlock()

	return sched.Run(w, tick)
}

// FrameNumber returns the frame of the tick currently or most recently run
func (w *World) FrameNumber() uint64 {
	return w.Resource.Time.Frame
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resource.Events.Emit(eventType, payload, w.Resource.Time.Frame)
}

// Flow returns the single GameFlow instance
func (w *World) Flow() (core.Entity, component.GameFlowComponent, bool) {
	return w.Components.GameFlow.First()
}
