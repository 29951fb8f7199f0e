// Package conversation keeps the ordered transcript of a chat session.
//
// A Session is an append-only list of turns guarded by a mutex, plus a
// pending flag the UI uses to show a thinking indicator. Turns are never
// reordered or removed except by Clear.
package conversation

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Role identifies who produced a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single message in the transcript.
type Turn struct {
	ID        string
	Role      Role
	Content   string
	Timestamp time.Time
}

func newTurn(role Role, content string) Turn {
	return Turn{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// Session is a thread-safe conversation transcript.
type Session struct {
	mu      sync.Mutex
	welcome string
	turns   []Turn
	pending bool
}

// NewSession creates a session seeded with a single assistant welcome
// turn. An empty welcome leaves the transcript empty.
func NewSession(welcome string) *Session {
	s := &Session{welcome: welcome}
	s.seed()
	return s
}

func (s *Session) seed() {
	if s.welcome != "" {
		s.turns = append(s.turns, newTurn(RoleAssistant, s.welcome))
	}
}

// Append adds a turn to the end of the transcript and returns it.
func (s *Session) Append(role Role, content string) Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := newTurn(role, content)
	s.turns = append(s.turns, t)
	return t
}

// Turns returns a copy of the transcript in order.
func (s *Session) Turns() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len returns the number of turns.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}

// SetPending flags whether a reply is being produced.
func (s *Session) SetPending(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = v
}

// Pending reports whether a reply is being produced.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Clear resets the transcript to the welcome turn and clears pending.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
	s.pending = false
	s.seed()
}
