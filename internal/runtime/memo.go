package runtime

// Key addresses a memo entry A^Δ(N, K).
type Key struct {
	N int
	K int
}

// Memo caches A^Δ(n, k) for a single top-level computation.
// It also counts writes per key and lookups that hit, so callers can verify
// that every subproblem is computed at most once.
type Memo struct {
	entries map[Key]float64
	writes  map[Key]int
	hits    int
}

// NewMemo creates an empty memo table.
func NewMemo() *Memo {
	return &Memo{
		entries: make(map[Key]float64),
		writes:  make(map[Key]int),
	}
}

// Lookup returns the cached value for key.
func (m *Memo) Lookup(key Key) (float64, bool) {
	v, ok := m.entries[key]
	if ok {
		m.hits++
	}
	return v, ok
}

// Store records the value for key.
func (m *Memo) Store(key Key, v float64) {
	m.entries[key] = v
	m.writes[key]++
}

// Len returns the number of distinct keys stored.
func (m *Memo) Len() int { return len(m.entries) }

// Hits returns how many lookups were served from the table.
func (m *Memo) Hits() int { return m.hits }

// Writes returns how many times key was stored.
func (m *Memo) Writes(key Key) int { return m.writes[key] }

// MaxWrites returns the largest write count over all keys.
func (m *Memo) MaxWrites() int {
	max := 0
	for _, w := range m.writes {
		if w > max {
			max = w
		}
	}
	return max
}
