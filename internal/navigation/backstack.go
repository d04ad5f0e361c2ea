package navigation

import (
	"sync"

	"privacyprefs/internal/common"
)

// Entry is one screen pushed on the back stack
type Entry struct {
	ID     string `json:"id"`
	Screen string `json:"screen"`
}

// BackStack records the secondary screens opened from settings
type BackStack struct {
	mu      sync.Mutex
	entries []Entry
}

// NewBackStack creates an empty back stack
func NewBackStack() *BackStack {
	return &BackStack{}
}

// Push adds screen on top and returns the new entry
func (b *BackStack) Push(screen string) Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry := Entry{ID: common.GenerateUUID(), Screen: screen}
	b.entries = append(b.entries, entry)
	return entry
}

// Pop removes the top entry
func (b *BackStack) Pop() (Entry, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) == 0 {
		return Entry{}, false
	}
	top := b.entries[len(b.entries)-1]
	b.entries = b.entries[:len(b.entries)-1]
	return top, true
}
