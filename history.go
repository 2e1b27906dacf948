package main

import (
	"sync"
	"time"
)

// expireAfter bounds how long a receipt identifier is remembered for
// duplicate detection.
const expireAfter = 24 * time.Hour

type historyItem struct {
	Stat string    // last reported state
	Seen time.Time // record addition time
}

// History remembers which receipts were already processed. An SMSC
// repeats a deliver_sm until it is acknowledged, so the same receipt can
// arrive more than once.
type History struct {
	list map[string]historyItem
	mu   sync.Mutex
}

// Add records a receipt and reports whether this state of the message
// was seen for the first time. A later receipt for the same identifier
// with a new state is not a duplicate.
func (h *History) Add(id, stat string, now time.Time) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.list == nil {
		h.list = make(map[string]historyItem)
	}
	if item, ok := h.list[id]; ok && item.Stat == stat {
		return false
	}
	h.list[id] = historyItem{Stat: stat, Seen: now}
	return true
}

// Expire drops entries not refreshed within expireAfter and returns how
// many were dropped.
func (h *History) Expire(now time.Time) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	var n int
	for id, item := range h.list {
		if now.Sub(item.Seen) > expireAfter {
			delete(h.list, id)
			n++
		}
	}
	return n
}
