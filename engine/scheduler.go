package engine

import (
	"fmt"
	"runtime/debug"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Scheduler dispatches systems in priority order
// Consecutive systems with disjoint access form a stage and may run in parallel;
// every stage joins before the next starts
type Scheduler struct {
	systems []System
	stages  [][]System
	borrows BorrowTable
	log     *zap.Logger
}

// NewScheduler creates an empty scheduler
func NewScheduler(log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{log: log}
}

// Add registers a system and rebuilds the stage plan
// Systems with equal priority keep registration order
func (s *Scheduler) Add(sys System) {
	s.systems = append(s.systems, sys)
	sort.SliceStable(s.systems, func(i, j int) bool {
		return s.systems[i].Priority() < s.systems[j].Priority()
	})
	s.stages = planStages(s.systems)
}

// Systems returns the registered systems in dispatch order
func (s *Scheduler) Systems() []System {
	out := make([]System, len(s.systems))
	copy(out, s.systems)
	return out
}

// Stages returns the number of dispatch stages
func (s *Scheduler) Stages() int {
	return len(s.stages)
}

// planStages groups maximal runs of mutually compatible consecutive systems
func planStages(systems []System) [][]System {
	var stages [][]System
	var current []System
	for _, sys := range systems {
		if conflictsWithAny(sys, current) {
			stages = append(stages, current)
			current = nil
		}
		current = append(current, sys)
	}
	if len(current) > 0 {
		stages = append(stages, current)
	}
	return stages
}

func conflictsWithAny(sys System, stage []System) bool {
	a := sys.Access()
	for _, other := range stage {
		if a.ConflictsWith(other.Access()) {
			return true
		}
	}
	return false
}

// Run executes one tick of every system
// Borrow conflicts and panics inside parallel stages are returned as errors
func (s *Scheduler) Run(w *World, tick TickData) error {
	for _, stage := range s.stages {
		if len(stage) == 1 {
			if err := s.runOne(w, tick, stage[0]); err != nil {
				return err
			}
			continue
		}

		var g errgroup.Group
		for _, sys := range stage {
			g.Go(func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						s.log.Error("system panic",
							zap.String("system", sys.Name()),
							zap.Any("panic", r),
							zap.ByteString("stack", debug.Stack()))
						err = fmt.Errorf("system %s panicked: %v", sys.Name(), r)
					}
				}()
				return s.runOne(w, tick, sys)
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scheduler) runOne(w *World, tick TickData, sys System) error {
	access := sys.Access()
	if err := s.borrows.Acquire(sys.Name(), access); err != nil {
		return err
	}
	defer s.borrows.Release(access)
	sys.Tick(w, tick)
	return nil
}
