package log

import "sync"

const defaultRingCapacity = 100

// Ring is a thread-safe fixed-capacity log sink implementing [io.Writer].
// Each Write becomes one entry; once full, new entries overwrite the oldest.
// The TUI redirects slog output here so log lines don't fight the alternate
// screen for the terminal.
type Ring struct {
	entries [][]byte
	head    int
	size    int
	mu      sync.RWMutex
}

// NewRing creates a [Ring] holding up to capacity entries. Non-positive
// capacities fall back to a default of 100.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = defaultRingCapacity
	}

	return &Ring{entries: make([][]byte, capacity)}
}

// Write stores p as a new entry, overwriting the oldest when full. The data
// is copied, so callers may reuse p.
func (r *Ring) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry := make([]byte, len(p))
	copy(entry, p)

	r.entries[r.head] = entry
	r.head = (r.head + 1) % len(r.entries)

	if r.size < len(r.entries) {
		r.size++
	}

	return len(p), nil
}

// Entries returns copies of all entries in chronological order, oldest first.
func (r *Ring) Entries() [][]byte {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.size == 0 {
		return nil
	}

	capacity := len(r.entries)
	start := (r.head - r.size + capacity) % capacity

	result := make([][]byte, 0, r.size)
	for i := range r.size {
		src := r.entries[(start+i)%capacity]
		entry := make([]byte, len(src))
		copy(entry, src)

		result = append(result, entry)
	}

	return result
}

// Size returns the current number of entries.
func (r *Ring) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.size
}

// Capacity returns the maximum number of entries the ring can hold.
func (r *Ring) Capacity() int {
	return len(r.entries)
}

// Clear removes all entries.
func (r *Ring) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.head = 0
	r.size = 0
	for i := range r.entries {
		r.entries[i] = nil
	}
}
