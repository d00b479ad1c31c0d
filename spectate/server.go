// Package spectate serves a read-only view of a running match over HTTP and websocket
package spectate

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/engine"
	"github.com/lixenwraith/botball/event"
	"github.com/lixenwraith/botball/parameter"
	"github.com/lixenwraith/botball/status"
)

// Source is the match surface the server reads
type Source interface {
	Snapshot() engine.Snapshot
	History(n int) []string
}

// Server exposes snapshots, metrics, history and a live frame stream
type Server struct {
	src    Source
	reg    *status.Registry
	logger io.Writer
	hub    *hub

	upgrader websocket.Upgrader
	interval time.Duration
}

// NewServer creates a server; logger receives combined access logs and may be io.Discard
func NewServer(src Source, reg *status.Registry, logger io.Writer) *Server {
	if reg == nil {
		reg = status.NewRegistry()
	}
	if logger == nil {
		logger = io.Discard
	}
	return &Server{
		src:    src,
		reg:    reg,
		logger: logger,
		hub:    newHub(reg.Ints.Get(status.KeySpectators)),
		upgrader: websocket.Upgrader{
			// Spectators are read-only; any origin may watch
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		interval: parameter.SpectateBroadcastInterval,
	}
}

// Handler returns the routed HTTP handler
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Handle("/snapshot", handlers.CombinedLoggingHandler(s.logger,
		http.HandlerFunc(s.handleSnapshot),
	)).Methods("GET")
	router.Handle("/metrics", handlers.CombinedLoggingHandler(s.logger,
		http.HandlerFunc(s.handleMetrics),
	)).Methods("GET")
	router.Handle("/history", handlers.CombinedLoggingHandler(s.logger,
		http.HandlerFunc(s.handleHistory),
	)).Methods("GET")
	router.Handle("/ws", handlers.CombinedLoggingHandler(s.logger,
		http.HandlerFunc(s.handleWebsocket),
	)).Methods("GET")
	return router
}

// Watchers returns the number of connected websocket clients
func (s *Server) Watchers() int {
	return s.hub.len()
}

// Run broadcasts a frame every interval until ctx is done, then disconnects all watchers
func (s *Server) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer s.hub.closeAll()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.hub.len() == 0 {
				continue
			}
			msg, err := json.Marshal(FrameOf(s.src.Snapshot()))
			if err != nil {
				log.Printf("spectate: encode frame: %v", err)
				continue
			}
			s.hub.broadcast(msg)
		}
	}
}

// ListenAndServe serves on addr until ctx is done
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "spectate: listen %s", addr)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	core.Go(func() { s.Run(runCtx) })

	errc := make(chan error, 1)
	core.Go(func() { errc <- srv.Serve(ln) })
	log.Printf("spectate: listening on %s", ln.Addr())

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "spectate: serve")
	case <-ctx.Done():
	}

	shutdownCtx, done := context.WithTimeout(context.Background(), parameter.ShutdownTimeout)
	defer done()
	cancel()
	return srv.Shutdown(shutdownCtx)
}

// HandleEvent implements event.Handler; match events reach watchers ahead of the next frame
func (s *Server) HandleEvent(ev event.GameEvent) {
	if s.hub.len() == 0 {
		return
	}
	msg, err := json.Marshal(EventMessage{
		Type:  "event",
		Event: ev.Type.String(),
		Tick:  ev.Tick,
		Data:  eventData(ev.Payload),
	})
	if err != nil {
		log.Printf("spectate: encode event: %v", err)
		return
	}
	s.hub.broadcast(msg)
}

// EventTypes implements event.Handler
func (s *Server) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGoalScored,
		event.EventGameEnded,
		event.EventMatchStarted,
		event.EventMatchPaused,
		event.EventMatchReset,
	}
}

// eventData renders payload enums as names
func eventData(p any) any {
	switch p := p.(type) {
	case event.GoalPayload:
		return map[string]any{"team": p.Team.String(), "red": p.Red, "blue": p.Blue, "elapsed": p.Elapsed}
	case event.EndPayload:
		return map[string]any{"outcome": p.Outcome.String(), "red": p.Red, "blue": p.Blue}
	}
	return p
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("spectate: write response: %v", err)
	}
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, FrameOf(s.src.Snapshot()))
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.reg.Snapshot())
}

// handleHistory serves the newest n lines (?n=5); all lines without n
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	n := 0
	if q := r.URL.Query().Get("n"); q != "" {
		v, err := strconv.Atoi(q)
		if err != nil || v < 0 {
			http.Error(w, "n must be a non-negative integer", http.StatusBadRequest)
			return
		}
		n = v
	}
	writeJSON(w, map[string][]string{"history": s.src.History(n)})
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("spectate: upgrade: %v", err)
		return
	}
	s.hub.add(conn)
}
