package loop

import "sync"

// Mailbox accepts commands from other goroutines (input readers, signal
// handlers) and hands them to the scheduler at the start of the next frame.
type Mailbox struct {
	mu      sync.Mutex
	pending []Command
}

// Submit queues cmd for the next frame. Safe for concurrent use.
func (m *Mailbox) Submit(cmd Command) {
	m.mu.Lock()
	m.pending = append(m.pending, cmd)
	m.mu.Unlock()
}

// Pending returns the number of commands waiting for the next frame.
func (m *Mailbox) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

func (m *Mailbox) drain(into *Commands) {
	m.mu.Lock()
	pending := m.pending
	m.pending = nil
	m.mu.Unlock()

	for _, cmd := range pending {
		into.Push(cmd)
	}
}
