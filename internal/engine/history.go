package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// defaultHistorySize bounds how many generated outputs are retained.
const defaultHistorySize = 32

// HistoryEntry is one retained scramble output.
type HistoryEntry struct {
	ID        string
	Text      string
	Seed      int64
	CreatedAt time.Time
}

// History is a bounded list of generated outputs, oldest evicted first.
// It belongs to collaborators (watch mode, regenerate loops), never to the
// scramble engine itself, which stays stateless between calls. Safe for
// concurrent use.
type History struct {
	mu      sync.Mutex
	max     int
	entries []HistoryEntry
}

// NewHistory creates a history bounded to max entries (<=0 uses the default).
func NewHistory(max int) *History {
	if max <= 0 {
		max = defaultHistorySize
	}
	return &History{max: max}
}

// Add records a generated output and returns its entry.
func (h *History) Add(text string, seed int64) HistoryEntry {
	e := HistoryEntry{
		ID:        uuid.New().String(),
		Text:      text,
		Seed:      seed,
		CreatedAt: time.Now(),
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, e)
	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
	return e
}

// Latest returns the most recent entry, if any.
func (h *History) Latest() (HistoryEntry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Len returns the number of retained entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Entries returns a copy of the retained entries, oldest first.
func (h *History) Entries() []HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}
