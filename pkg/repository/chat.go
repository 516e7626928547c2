package repository

import (
	"sync"
	"time"

	"github.com/vchernov/ollama-dashboard/pkg/domain"
)

type transcriptEntry struct {
	turns      []domain.Turn
	lastUpdate time.Time
}

// chatRepository holds the append-only transcript of every live session.
// Purely in-memory, process-lifetime only; a session's log disappears when
// the session goes idle or the whole log is cleared on model switch.
type chatRepository struct {
	mu       sync.RWMutex
	sessions map[string]*transcriptEntry
}

func NewChatRepository() *chatRepository {
	return &chatRepository{
		sessions: make(map[string]*transcriptEntry),
	}
}

// Append adds one turn at the end of the session transcript. Prior turns are
// never reordered or mutated.
func (c *chatRepository) Append(sessionID string, turn domain.Turn) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.sessions[sessionID]
	if !ok {
		entry = &transcriptEntry{}
		c.sessions[sessionID] = entry
	}
	entry.turns = append(entry.turns, turn)
	entry.lastUpdate = time.Now()
}

// Turns returns a copy of the session transcript in append order.
func (c *chatRepository) Turns(sessionID string) []domain.Turn {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.sessions[sessionID]
	if !ok {
		return nil
	}
	out := make([]domain.Turn, len(entry.turns))
	copy(out, entry.turns)
	return out
}

// SeedIfEmpty appends the turn only when the session transcript is empty and
// returns a copy of the resulting transcript. Check and append happen under
// one lock, so concurrent first requests of a session seed exactly one turn.
func (c *chatRepository) SeedIfEmpty(sessionID string, turn domain.Turn) []domain.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.sessions[sessionID]
	if !ok {
		entry = &transcriptEntry{}
		c.sessions[sessionID] = entry
	}
	if len(entry.turns) == 0 {
		entry.turns = append(entry.turns, turn)
		entry.lastUpdate = time.Now()
	}

	out := make([]domain.Turn, len(entry.turns))
	copy(out, entry.turns)
	return out
}

// Clear drops the whole transcript. Individual turns are never removed.
func (c *chatRepository) Clear(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.sessions, sessionID)
}

// DeleteIdle removes transcripts untouched for longer than ttl and reports
// how many sessions were swept.
func (c *chatRepository) DeleteIdle(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for id, entry := range c.sessions {
		if time.Since(entry.lastUpdate) > ttl {
			delete(c.sessions, id)
			removed++
		}
	}
	return removed
}
