package event

import "sync/atomic"

// Mailbox holds the newest routed event for a polling consumer
// Push never blocks; an event not yet taken is replaced by a newer one
// The renderer takes at most one event per frame, so only the latest banner matters
type Mailbox struct {
	latest   atomic.Pointer[GameEvent]
	replaced atomic.Int64
}

func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// Push stores ev as the newest event
func (m *Mailbox) Push(ev GameEvent) {
	if old := m.latest.Swap(&ev); old != nil {
		m.replaced.Add(1)
	}
}

// Take removes and returns the newest event
func (m *Mailbox) Take() (GameEvent, bool) {
	p := m.latest.Swap(nil)
	if p == nil {
		return GameEvent{}, false
	}
	return *p, true
}

// Pending reports whether an event is waiting
func (m *Mailbox) Pending() bool {
	return m.latest.Load() != nil
}

// Replaced counts events overwritten before they were taken
func (m *Mailbox) Replaced() int64 {
	return m.replaced.Load()
}

// MailboxHandler forwards routed events of Types into a mailbox
type MailboxHandler struct {
	Mailbox *Mailbox
	Types   []EventType
}

func (h *MailboxHandler) HandleEvent(ev GameEvent) {
	h.Mailbox.Push(ev)
}

func (h *MailboxHandler) EventTypes() []EventType {
	return h.Types
}
