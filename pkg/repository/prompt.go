package repository

import (
	"sync"
	"time"
)

type promptEntry struct {
	text       string
	lastUpdate time.Time
}

// promptRepository holds the per-session system-prompt override, loaded whole
// from a user-chosen file. Sessions without an override fall back to the
// configured default instruction.
type promptRepository struct {
	mu       sync.RWMutex
	sessions map[string]*promptEntry
}

func NewPromptRepository() *promptRepository {
	return &promptRepository{
		sessions: make(map[string]*promptEntry),
	}
}

func (p *promptRepository) Set(sessionID, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.sessions[sessionID] = &promptEntry{text: text, lastUpdate: time.Now()}
}

func (p *promptRepository) Get(sessionID string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	entry, ok := p.sessions[sessionID]
	if !ok {
		return "", false
	}
	return entry.text, true
}

func (p *promptRepository) Reset(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.sessions, sessionID)
}

func (p *promptRepository) DeleteIdle(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	removed := 0
	for id, entry := range p.sessions {
		if time.Since(entry.lastUpdate) > ttl {
			delete(p.sessions, id)
			removed++
		}
	}
	return removed
}
