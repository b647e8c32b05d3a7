package dedup

// DefaultCapacity is how many recent question texts a history keeps.
const DefaultCapacity = 10

// History is a bounded FIFO of recently served question texts. Not
// safe for concurrent use; callers serialize access.
type History struct {
	texts []string
	cap   int
}

// NewHistory returns a history that remembers the last capacity texts.
// A non-positive capacity falls back to DefaultCapacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{cap: capacity}
}

// Add records a served text, evicting the oldest when full.
func (h *History) Add(text string) {
	h.texts = append(h.texts, text)
	if len(h.texts) > h.cap {
		h.texts = h.texts[1:]
	}
}

// Texts returns the remembered texts, oldest first. The returned slice
// is a copy.
func (h *History) Texts() []string {
	out := make([]string, len(h.texts))
	copy(out, h.texts)
	return out
}

// Len returns how many texts are remembered.
func (h *History) Len() int { return len(h.texts) }

// Seen reports whether candidate is too similar to any remembered text.
func (h *History) Seen(candidate string) bool {
	return TooSimilar(candidate, h.texts)
}

// Reset forgets all remembered texts.
func (h *History) Reset() { h.texts = nil }
