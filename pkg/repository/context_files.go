package repository

import (
	"sync"
	"time"

	"github.com/vchernov/ollama-dashboard/pkg/domain"
)

type contextFilesEntry struct {
	files      []domain.ContextFile
	lastUpdate time.Time
}

// contextFilesRepository tracks, per session, the ordered set of uploaded
// context files. Display names are unique within a session; the slice order
// is insertion order, which is the traversal order the prompt assembler
// depends on.
type contextFilesRepository struct {
	mu       sync.RWMutex
	sessions map[string]*contextFilesEntry
}

func NewContextFilesRepository() *contextFilesRepository {
	return &contextFilesRepository{
		sessions: make(map[string]*contextFilesEntry),
	}
}

// Add registers a file reference. Re-adding an existing display name
// overwrites the prior reference in place, keeping its original position in
// the insertion order.
func (c *contextFilesRepository) Add(sessionID string, file domain.ContextFile) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.sessions[sessionID]
	if !ok {
		entry = &contextFilesEntry{}
		c.sessions[sessionID] = entry
	}
	entry.lastUpdate = time.Now()

	for i, f := range entry.files {
		if f.DisplayName == file.DisplayName {
			entry.files[i] = file
			return
		}
	}
	entry.files = append(entry.files, file)
}

// Remove drops the reference with the given display name and returns its
// source path so the caller can clean up the uploaded file on disk.
func (c *contextFilesRepository) Remove(sessionID, displayName string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.sessions[sessionID]
	if !ok {
		return "", false
	}
	entry.lastUpdate = time.Now()

	for i, f := range entry.files {
		if f.DisplayName == displayName {
			entry.files = append(entry.files[:i], entry.files[i+1:]...)
			return f.SourcePath, true
		}
	}
	return "", false
}

// List returns a copy of the session's files in insertion order.
func (c *contextFilesRepository) List(sessionID string) []domain.ContextFile {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.sessions[sessionID]
	if !ok {
		return nil
	}
	out := make([]domain.ContextFile, len(entry.files))
	copy(out, entry.files)
	return out
}

// DeleteIdle removes file sets of sessions untouched for longer than ttl and
// returns the source paths of every dropped reference.
func (c *contextFilesRepository) DeleteIdle(ttl time.Duration) []string {
	if ttl <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var paths []string
	for id, entry := range c.sessions {
		if time.Since(entry.lastUpdate) > ttl {
			for _, f := range entry.files {
				paths = append(paths, f.SourcePath)
			}
			delete(c.sessions, id)
		}
	}
	return paths
}
