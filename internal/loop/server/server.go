// Package server tracks the terminal sessions of one process: who is
// connected, their best results and shutdown notification. Every session
// plays its own game; nothing here touches a simulation.
package server

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/ufostrike/internal/loop/config"
)

// GameServer is the interface clients use to communicate with the session registry.
// Decouples the Client from the concrete Server implementation, enabling testing.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID int)
	ReportScore(clientID, score, level int)
	TopScores() []TopScoreEntry
	Sessions() int
}

// Server is the registry shared by all sessions of a process.
type Server struct {
	mu           sync.RWMutex
	clients      map[int]*ClientHandle
	nextClientID int
	top          []TopScoreEntry // Sorted best first, at most config.LeaderboardSize
	logger       *log.Logger
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// NewServer creates an empty registry.
func NewServer(logger *log.Logger) *Server {
	return &Server{
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
		logger:       logger,
	}
}

// Shutdown gracefully shuts down the server by notifying all connected clients
// and waiting for them to disconnect (up to the given timeout).
func (s *Server) Shutdown(timeout time.Duration) {
	s.mu.RLock()
	for _, handle := range s.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	n := len(s.clients)
	s.mu.RUnlock()
	s.logger.Info("Notified sessions of shutdown", "sessions", n)

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		if s.Sessions() == 0 {
			return
		}
		select {
		case <-deadline:
			s.logger.Warn("Shutdown timed out", "remaining", s.Sessions())
			return
		case <-ticker.C:
		}
	}
}

// RegisterClient registers a new client with the given username and returns its handle.
func (s *Server) RegisterClient(username string) *ClientHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle := &ClientHandle{
		ID:       s.nextClientID,
		Username: username,
		EventsCh: make(chan ClientEvent, 16),
	}
	s.nextClientID++
	s.clients[handle.ID] = handle
	s.logger.Debug("Session registered", "id", handle.ID, "user", username, "sessions", len(s.clients))
	return handle
}

// UnregisterClient removes a client and closes its event channel.
// Unknown IDs are ignored.
func (s *Server) UnregisterClient(clientID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle, ok := s.clients[clientID]
	if !ok {
		return
	}
	close(handle.EventsCh)
	delete(s.clients, clientID)
	s.logger.Debug("Session unregistered", "id", clientID, "sessions", len(s.clients))
}

// Sessions returns the number of connected clients.
func (s *Server) Sessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// TopScores returns a copy of the leaderboard, best first.
func (s *Server) TopScores() []TopScoreEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.top)
}

// ReportScore records a finished game. Each session keeps only its best
// result on the board.
func (s *Server) ReportScore(clientID, score, level int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	username := ""
	if handle, ok := s.clients[clientID]; ok {
		username = handle.Username
	}

	if i := slices.IndexFunc(s.top, func(e TopScoreEntry) bool { return e.clientID == clientID }); i >= 0 {
		if s.top[i].Score >= score {
			return
		}
		s.top = slices.Delete(s.top, i, i+1)
	}

	s.top = append(s.top, TopScoreEntry{
		Username: username,
		Score:    score,
		Level:    level,
		clientID: clientID,
	})
	slices.SortFunc(s.top, compareEntries)
	if len(s.top) > config.LeaderboardSize {
		s.top = s.top[:config.LeaderboardSize]
	}
}

func compareEntries(a, b TopScoreEntry) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	return cmp.Compare(a.clientID, b.clientID)
}
