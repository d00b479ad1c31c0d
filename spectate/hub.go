package spectate

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/parameter"
)

// watcherBuffer is how many messages a slow watcher may lag before messages are dropped
const watcherBuffer = 16

// watcher is one websocket client; only its writer goroutine writes to conn
type watcher struct {
	id   uint64
	conn *websocket.Conn
	send chan []byte
	once sync.Once
	done chan struct{}
}

func (w *watcher) close() {
	w.once.Do(func() {
		close(w.done)
		_ = w.conn.Close()
	})
}

// writeLoop drains send until the watcher closes or a write fails
func (w *watcher) writeLoop(onExit func()) {
	defer onExit()
	for {
		select {
		case <-w.done:
			return
		case msg := <-w.send:
			_ = w.conn.SetWriteDeadline(time.Now().Add(parameter.SpectateWriteTimeout))
			if err := w.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Printf("spectate: watcher %d write: %v", w.id, err)
				return
			}
		}
	}
}

// readLoop discards client messages; a read error means the client went away
func (w *watcher) readLoop(onExit func()) {
	defer onExit()
	for {
		if _, _, err := w.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// hub tracks connected watchers
type hub struct {
	mu       sync.RWMutex
	nextID   uint64
	watchers map[uint64]*watcher
	count    *atomic.Int64
}

func newHub(count *atomic.Int64) *hub {
	return &hub{
		watchers: make(map[uint64]*watcher),
		count:    count,
	}
}

// add registers conn and starts its reader and writer
func (h *hub) add(conn *websocket.Conn) *watcher {
	h.mu.Lock()
	h.nextID++
	w := &watcher{
		id:   h.nextID,
		conn: conn,
		send: make(chan []byte, watcherBuffer),
		done: make(chan struct{}),
	}
	h.watchers[w.id] = w
	h.count.Store(int64(len(h.watchers)))
	h.mu.Unlock()

	remove := func() { h.remove(w.id) }
	core.Go(func() { w.writeLoop(remove) })
	core.Go(func() { w.readLoop(remove) })
	return w
}

func (h *hub) remove(id uint64) {
	h.mu.Lock()
	w, ok := h.watchers[id]
	if ok {
		delete(h.watchers, id)
		h.count.Store(int64(len(h.watchers)))
	}
	h.mu.Unlock()
	if ok {
		w.close()
	}
}

// broadcast queues msg for every watcher without blocking
func (h *hub) broadcast(msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, w := range h.watchers {
		select {
		case w.send <- msg:
		default:
			// Slow client; it gets the next frame
		}
	}
}

func (h *hub) len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.watchers)
}

// closeAll disconnects every watcher
func (h *hub) closeAll() {
	h.mu.Lock()
	ws := h.watchers
	h.watchers = make(map[uint64]*watcher)
	h.count.Store(0)
	h.mu.Unlock()
	for _, w := range ws {
		_ = w.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutdown"),
			time.Now().Add(parameter.SpectateWriteTimeout))
		w.close()
	}
}
