package noscam

import "sync"

// History keeps bounded per-author message windows, thread-safe.
// Each (guild, author) pair owns an insertion-ordered window of up to size
// messages; appending to a full window evicts the oldest entry, strict FIFO.
// Entries are cleared, never deleted, so the map grows with the number of
// distinct authors seen.
type History struct {
	size    int
	windows map[windowKey][]Message
	lock    sync.Mutex
}

type windowKey struct {
	guildID  uint64
	authorID uint64
}

// NewHistory creates a new history with the given per-author window size.
func NewHistory(size int) *History {
	// minimum size is 1
	if size < 1 {
		size = 1
	}
	return &History{size: size, windows: make(map[windowKey][]Message)}
}

// Add appends a message to the author's window, evicting the oldest entry if
// the window is full. Returns a copy of the updated window, oldest first.
func (h *History) Add(guildID, authorID uint64, msg Message) []Message {
	h.lock.Lock()
	defer h.lock.Unlock()

	k := windowKey{guildID: guildID, authorID: authorID}
	w := append(h.windows[k], msg)
	if len(w) > h.size {
		w = w[len(w)-h.size:]
	}
	h.windows[k] = w

	res := make([]Message, len(w))
	copy(res, w)
	return res
}

// Window returns a copy of the author's current window, oldest first.
// May be empty, never longer than the history size.
func (h *History) Window(guildID, authorID uint64) []Message {
	h.lock.Lock()
	defer h.lock.Unlock()

	w := h.windows[windowKey{guildID: guildID, authorID: authorID}]
	res := make([]Message, len(w))
	copy(res, w)
	return res
}

// Clear empties the author's window keeping the key in place.
func (h *History) Clear(guildID, authorID uint64) {
	h.lock.Lock()
	defer h.lock.Unlock()

	k := windowKey{guildID: guildID, authorID: authorID}
	if w, ok := h.windows[k]; ok {
		h.windows[k] = w[:0]
	}
}

// Size returns the per-author window size.
func (h *History) Size() int { return h.size }
