package index

import (
	"sync/atomic"

	"csvgrip/internal/domain"
)

// Entry locates one data row in the source file.
type Entry struct {
	Offset uint64
	Len    uint32
}

// Index is an append-only catalogue of record locations, shared between the
// loader goroutine (sole writer) and the UI (readers). The entry slice is
// exposed through an atomically swapped slice header: readers always observe
// a consistent prefix and never a torn entry. A fresh Index value is created
// for every load pass; entries are never mutated or removed in place.
type Index struct {
	generation uint64
	header     []string

	entries  atomic.Pointer[[]Entry]
	progress atomic.Pointer[domain.Progress]
}

func newIndex(generation uint64, header []string) *Index {
	x := &Index{
		generation: generation,
		header:     header,
	}
	empty := []Entry{}
	x.entries.Store(&empty)
	x.progress.Store(&domain.Progress{Generation: generation, State: domain.LoadRunning})
	return x
}

// Generation identifies the load pass this index belongs to. Events carrying
// a different generation refer to a discarded index.
func (x *Index) Generation() uint64 {
	return x.generation
}

// Header returns the decoded header cells, or nil when the source has none.
func (x *Index) Header() []string {
	return x.header
}

// Len returns the number of rows published so far.
func (x *Index) Len() int {
	return len(*x.entries.Load())
}

// Entry returns the location of row i, which must come from a row number
// below a previously observed Len.
func (x *Index) Entry(i int) (Entry, bool) {
	s := *x.entries.Load()
	if i < 0 || i >= len(s) {
		return Entry{}, false
	}
	return s[i], true
}

// Snapshot returns a consistent prefix of the index. The slice must not be
// mutated.
func (x *Index) Snapshot() []Entry {
	return *x.entries.Load()
}

// Progress returns the current state of the load pass behind this index.
func (x *Index) Progress() domain.Progress {
	return *x.progress.Load()
}

// Loading reports whether the load pass is still appending rows.
func (x *Index) Loading() bool {
	return x.Progress().State == domain.LoadRunning
}

// publish makes the prefix entries[:len(entries)] visible to readers. The
// caller keeps appending to the same backing array beyond the published
// length, which readers never touch.
func (x *Index) publish(entries []Entry) {
	s := entries
	x.entries.Store(&s)
}

// finish records the terminal state of the load pass.
func (x *Index) finish(p domain.Progress) {
	p.Generation = x.generation
	p.Rows = x.Len()
	x.progress.Store(&p)
}
