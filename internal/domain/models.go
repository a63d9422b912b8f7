package domain

// LoadState describes the outcome of an indexing pass.
type LoadState int

const (
	LoadRunning LoadState = iota
	LoadDone
	LoadPartial
	LoadFailed
	LoadCancelled
)

func (s LoadState) String() string {
	switch s {
	case LoadRunning:
		return "running"
	case LoadDone:
		return "done"
	case LoadPartial:
		return "partial"
	case LoadFailed:
		return "failed"
	case LoadCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Progress is a point-in-time snapshot of an indexing pass.
type Progress struct {
	Generation uint64
	Rows       int
	State      LoadState
	BadOffset  int64 // byte offset of the malformed record when State is LoadPartial
	Err        error
}
