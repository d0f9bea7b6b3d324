package render

import "sync"

// CommandQueue is the FIFO between the render system and the drawing consumer
// Single producer, single consumer, unbounded; the consumer drains once per frame
type CommandQueue struct {
	mu   sync.Mutex
	cmds []Command
}

// NewCommandQueue creates an empty queue
func NewCommandQueue() *CommandQueue {
	return &CommandQueue{cmds: make([]Command, 0, 8)}
}

// Push appends a command
func (q *CommandQueue) Push(cmd Command) {
	q.mu.Lock()
	q.cmds = append(q.cmds, cmd)
	q.mu.Unlock()
}

// Drain removes and returns every queued command in emission order
// Returns nil when empty, never blocks
func (q *CommandQueue) Drain() []Command {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.cmds) == 0 {
		return nil
	}
	out := q.cmds
	q.cmds = make([]Command, 0, cap(out))
	return out
}

// Len returns the number of queued commands
func (q *CommandQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.cmds)
}
