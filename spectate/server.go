package spectate

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

const shutdownTimeout = 2 * time.Second

// NewServeMux routes /ws to the websocket stream and /snapshot to the latest
// snapshot as plain JSON
func NewServeMux(h *Hub) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	mux.HandleFunc("/snapshot", func(w http.ResponseWriter, r *http.Request) {
		data := h.Last()
		if data == nil {
			http.Error(w, "no session yet", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})
	return mux
}

// Server is the spectator HTTP listener
type Server struct {
	hub  *Hub
	srv  *http.Server
	ln   net.Listener
	done chan error
}

// Listen binds addr and starts serving hub in the background
func Listen(addr string, hub *Hub) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("spectator listen %s: %w", addr, err)
	}
	s := &Server{
		hub:  hub,
		srv:  &http.Server{Handler: NewServeMux(hub), ReadHeaderTimeout: 5 * time.Second},
		ln:   ln,
		done: make(chan error, 1),
	}
	go func() {
		err := s.srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		s.done <- err
	}()
	return s, nil
}

// Addr returns the bound address
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Shutdown disconnects observers and stops the listener
func (s *Server) Shutdown() error {
	s.hub.Close()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("spectator shutdown: %w", err)
	}
	return <-s.done
}
