// Package tt implements the transposition table described in §3/§4.1:
// a fixed array of slots indexed by the low bits of the Zobrist-like
// key, always-replace, with the full key stored and verified on
// probe. Grounded on the teacher's pkg/transposition (sync.Map-backed)
// redesigned per §9's "typed cache entry ... index derived from the
// hash's low bits", and cross-checked against the indexing/flag shape
// in csgarlock-Ghobos/transposition.go and Bubblyworld-lichess-bot/tt.go.
package tt

import "zugzwang/pkg/position"

// Flag classifies how a stored value bounds the true score.
type Flag uint8

const (
	Exact Flag = iota
	Lower
	Upper
)

// Entry is one transposition table slot.
type Entry struct {
	Key      uint64
	BestMove position.Move
	Value    int32
	Depth    int
	Flag     Flag
	valid    bool
}

// Table is a fixed-size, always-replace transposition table.
type Table struct {
	slots []Entry
	mask  uint64
}

// New allocates a table of 2^bits slots. §3 specifies 2^20; tests use
// a smaller exponent so they don't need to allocate a megabyte-scale
// table per case.
func New(bits int) *Table {
	size := uint64(1) << uint(bits)
	return &Table{
		slots: make([]Entry, size),
		mask:  size - 1,
	}
}

func (t *Table) index(key uint64) uint64 { return key & t.mask }

// Probe looks up key. The returned bool is true only when the stored
// entry's full key matches; a probe never mutates the table.
func (t *Table) Probe(key uint64) (Entry, bool) {
	e := t.slots[t.index(key)]
	if !e.valid || e.Key != key {
		return Entry{}, false
	}
	return e, true
}

// Store unconditionally overwrites the slot key indexes into.
func (t *Table) Store(key uint64, move position.Move, value int32, depth int, flag Flag) {
	t.slots[t.index(key)] = Entry{
		Key:      key,
		BestMove: move,
		Value:    value,
		Depth:    depth,
		Flag:     flag,
		valid:    true,
	}
}

// Clear resets every slot. Per §5, the table must not be cleared
// between iterative-deepening iterations within one search, but it
// may be cleared between top-level Search calls. Engine never calls
// Clear: its Search keeps the table across calls, so Table.Clear is
// exposed only for other callers.
func (t *Table) Clear() {
	for i := range t.slots {
		t.slots[i] = Entry{}
	}
}
