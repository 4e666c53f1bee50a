// Package editor exposes the interactive editing surface: short-lived
// sessions, each owning one molecular graph, with every edit command
// funneled through a per-session mutex.  The graph itself stays lock-free;
// the single-writer discipline is enforced here at the boundary.
package editor

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/turtacn/MolCanvas/internal/domain/element"
	"github.com/turtacn/MolCanvas/internal/domain/graph"
)

// Session is one editing canvas.  All access goes through the owning
// Service, which takes mu around every graph operation.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	graph    *graph.Graph
	lastUsed time.Time
	revision uint64
}

// SessionInfo is the read-only snapshot handed to callers.
type SessionInfo struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	LastUsedAt time.Time `json:"last_used_at"`
	Revision   uint64    `json:"revision"`
	AtomCount  int       `json:"atom_count"`
	BondCount  int       `json:"bond_count"`
}

func newSession(registry *element.Registry) *Session {
	now := time.Now().UTC()
	s := &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		graph:     graph.New(registry),
		lastUsed:  now,
	}
	// Mutations fire inside the session mutex, so the bump is race-free.
	s.graph.Subscribe(func(graph.Event) { s.revision++ })
	return s
}

// info must be called with mu held.
func (s *Session) info() SessionInfo {
	return SessionInfo{
		ID:         s.ID,
		CreatedAt:  s.CreatedAt,
		LastUsedAt: s.lastUsed,
		Revision:   s.revision,
		AtomCount:  s.graph.AtomCount(),
		BondCount:  s.graph.BondCount(),
	}
}

// idleSince must be called with mu held.
func (s *Session) idleSince(now time.Time) time.Duration {
	return now.Sub(s.lastUsed)
}

//Personal.AI order the ending
