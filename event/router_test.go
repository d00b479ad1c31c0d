package event

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/lixenwraith/botball/core"
)

func TestRouterDeliversByType(t *testing.T) {
	r := NewRouter()
	var goals, ends atomic.Int32

	r.Register(HandlerFunc{Types: []EventType{EventGoalScored}, Fn: func(GameEvent) { goals.Add(1) }})
	r.Register(HandlerFunc{Types: []EventType{EventGameEnded}, Fn: func(GameEvent) { ends.Add(1) }})

	r.Publish(GameEvent{Type: EventGoalScored, Payload: GoalPayload{Team: core.TeamBlue, Blue: 1}})
	r.Publish(GameEvent{Type: EventGoalScored})
	r.Publish(GameEvent{Type: EventTimeUpdated})

	if goals.Load() != 2 {
		t.Errorf("Expected 2 goal deliveries, got %d", goals.Load())
	}
	if ends.Load() != 0 {
		t.Errorf("Expected no end deliveries, got %d", ends.Load())
	}
}

func TestRouterUnregisterDuringPublish(t *testing.T) {
	r := NewRouter()
	var calls atomic.Int32
	var unregister func()

	unregister = r.Register(HandlerFunc{
		Types: []EventType{EventTimeUpdated},
		Fn: func(GameEvent) {
			calls.Add(1)
			unregister() // must not deadlock
		},
	})

	r.Publish(GameEvent{Type: EventTimeUpdated})
	r.Publish(GameEvent{Type: EventTimeUpdated})

	if calls.Load() != 1 {
		t.Errorf("Expected 1 call before removal, got %d", calls.Load())
	}
	if n := r.HandlerCount(EventTimeUpdated); n != 0 {
		t.Errorf("Expected 0 handlers, got %d", n)
	}
	unregister() // idempotent
}

func TestRouterConcurrentPublish(t *testing.T) {
	r := NewRouter()
	var count atomic.Int64
	r.Register(HandlerFunc{Types: AllTypes(), Fn: func(GameEvent) { count.Add(1) }})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Publish(GameEvent{Type: EventTimeUpdated})
			}
		}()
	}
	wg.Wait()

	if count.Load() != 800 {
		t.Errorf("Expected 800 deliveries, got %d", count.Load())
	}
}

func TestMailboxKeepsNewest(t *testing.T) {
	m := NewMailbox()
	if _, ok := m.Take(); ok {
		t.Fatal("Expected empty mailbox")
	}

	m.Push(GameEvent{Type: EventGoalScored, Tick: 4})
	m.Push(GameEvent{Type: EventGameEnded, Tick: 9})
	if !m.Pending() {
		t.Error("Expected a pending event")
	}

	ev, ok := m.Take()
	if !ok || ev.Type != EventGameEnded || ev.Tick != 9 {
		t.Errorf("Expected newest event GameEnded at tick 9, got %+v", ev)
	}
	if _, ok := m.Take(); ok {
		t.Error("Expected mailbox empty after take")
	}
	if n := m.Replaced(); n != 1 {
		t.Errorf("Expected 1 replaced event, got %d", n)
	}
}

func TestMailboxConcurrentPush(t *testing.T) {
	m := NewMailbox()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				m.Push(GameEvent{Type: EventGoalScored, Tick: uint64(i)})
			}
		}()
	}

	taken := 0
	for i := 0; i < 100; i++ {
		if _, ok := m.Take(); ok {
			taken++
		}
	}
	wg.Wait()

	_, ok := m.Take()
	total := int64(taken) + m.Replaced()
	if ok {
		total++
	}
	if total != 800 {
		t.Errorf("Expected every push taken or replaced, got %d of 800", total)
	}
}

func TestMailboxHandler(t *testing.T) {
	r := NewRouter()
	m := NewMailbox()
	r.Register(&MailboxHandler{Mailbox: m, Types: []EventType{EventGoalScored}})

	r.Publish(GameEvent{Type: EventGoalScored})
	r.Publish(GameEvent{Type: EventTimeUpdated})

	ev, ok := m.Take()
	if !ok || ev.Type != EventGoalScored {
		t.Errorf("Expected routed goal event, got %+v", ev)
	}
	if n := m.Replaced(); n != 0 {
		t.Errorf("Expected unrouted types ignored, got %d replaced", n)
	}
}
