package algebraic

import "sync"

// internKey identifies a canonical triple. RatString is the reduced p/q
// form, so mathematically equal rationals produce identical keys.
type internKey struct {
	add     string
	factor  string
	radical int64
}

func keyOf(v *Value) internKey {
	return internKey{
		add:     v.add.RatString(),
		factor:  v.factor.RatString(),
		radical: v.radical,
	}
}

type internEntry struct {
	value *Value
	refs  int
}

// Intern is an optional table that collapses equal Values into one shared
// instance. It exists purely for memory reuse: nothing in the package
// uses it implicitly, and correctness never depends on it.
//
// Eviction is explicit and reference-counted: each Canonical call must be
// matched by a Release on the returned instance; the entry is dropped
// when the count reaches zero. Safe for concurrent use.
type Intern struct {
	mu      sync.RWMutex
	entries map[internKey]*internEntry
}

// NewIntern returns an empty intern table.
func NewIntern() *Intern {
	return &Intern{entries: make(map[internKey]*internEntry)}
}

// Canonical returns the shared instance equal to v, storing v itself when
// the table has no entry yet, and bumps its reference count.
func (t *Intern) Canonical(v *Value) *Value {
	k := keyOf(v)

	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[k]
	if !ok {
		e = &internEntry{value: v}
		t.entries[k] = e
	}
	e.refs++

	return e.value
}

// Release drops one reference to the entry equal to v, evicting it when
// the last reference goes away. Releasing a value the table does not hold
// is a no-op.
func (t *Intern) Release(v *Value) {
	k := keyOf(v)

	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[k]
	if !ok {
		return
	}
	if e.refs--; e.refs <= 0 {
		delete(t.entries, k)
	}
}

// Len reports the number of distinct triples currently held.
func (t *Intern) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.entries)
}
