package index

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"sync"
	"sync/atomic"

	"csvgrip/internal/domain"
	"csvgrip/internal/eventbus"
)

// Rows are made visible to readers in batches to throttle pointer swaps and
// progress events.
const publishBatch = 512

// Loader indexes a CSV file in the background. Start cancels any pass still
// in flight and hands back a fresh snapshot handle, so a reload can never
// race an old scan into a new index.
type Loader struct {
	bus  eventbus.EventBus
	path string

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
	gen    atomic.Uint64
}

// NewLoader creates a loader for the given file path.
func NewLoader(bus eventbus.EventBus, path string) *Loader {
	return &Loader{bus: bus, path: path}
}

// Start begins a fresh indexing pass. The header record, when present, is
// read synchronously so callers immediately know the column names; data rows
// stream in behind the returned handle. The error return is only non-nil
// when the file cannot be opened.
func (l *Loader) Start(ctx context.Context, delim byte, hasHeader bool) (*Index, error) {
	l.Stop()

	f, err := os.Open(l.path)
	if err != nil {
		return nil, err
	}

	sc := NewScanner(f, delim)
	gen := l.gen.Add(1)

	var header []string
	var headerErr error
	if hasHeader {
		_, raw, err := sc.Next()
		switch {
		case err == nil:
			header = SplitRecord(raw, delim)
		case errors.Is(err, io.EOF):
			// empty file, no rows to index
		default:
			headerErr = err
		}
	}

	idx := newIndex(gen, header)
	if headerErr != nil {
		f.Close()
		l.finalize(idx, headerErr)
		return idx, nil
	}

	scanCtx, cancel := context.WithCancel(ctx)
	l.mu.Lock()
	l.cancel = cancel
	l.mu.Unlock()

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer f.Close()
		defer cancel()
		l.scan(scanCtx, sc, idx)
	}()

	return idx, nil
}

// Stop cancels the in-flight pass, if any, and waits for its writer to
// observe the cancellation.
func (l *Loader) Stop() {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.mu.Unlock()
	l.wg.Wait()
}

func (l *Loader) scan(ctx context.Context, sc *Scanner, idx *Index) {
	entries := make([]Entry, 0, 1024)
	published := 0

	flush := func() {
		idx.publish(entries)
		published = len(entries)
		l.bus.Publish(eventbus.IndexProgressEvent{
			Generation: idx.Generation(),
			Rows:       published,
		})
	}

	for {
		select {
		case <-ctx.Done():
			idx.finish(domain.Progress{State: domain.LoadCancelled})
			log.Printf("index: pass %d cancelled after %d rows", idx.Generation(), len(entries))
			return
		default:
		}

		rec, _, err := sc.Next()
		if err != nil {
			if len(entries) > published {
				flush()
			}
			if errors.Is(err, io.EOF) {
				err = nil
			}
			l.finalize(idx, err)
			return
		}

		entries = append(entries, Entry{Offset: uint64(rec.Offset), Len: uint32(rec.Len)})
		if len(entries)-published >= publishBatch {
			flush()
		}
	}
}

// finalize records the terminal state and announces it. A scan failure keeps
// every row indexed before the problem: readers go on using the truncated
// prefix.
func (l *Loader) finalize(idx *Index, err error) {
	p := domain.Progress{State: domain.LoadDone}

	var quoteErr *UnterminatedQuoteError
	switch {
	case err == nil:
	case errors.As(err, &quoteErr):
		p = domain.Progress{State: domain.LoadPartial, BadOffset: quoteErr.Offset, Err: err}
	default:
		p = domain.Progress{State: domain.LoadFailed, Err: err}
	}

	idx.finish(p)
	l.bus.Publish(eventbus.IndexCompletedEvent{Progress: idx.Progress()})

	switch p.State {
	case domain.LoadPartial:
		log.Printf("index: pass %d truncated at byte %d (%d rows kept)", idx.Generation(), p.BadOffset, idx.Len())
		l.bus.Publish(eventbus.ErrorEvent{Message: "file is partially malformed, showing rows before the damage", Err: err})
	case domain.LoadFailed:
		log.Printf("index: pass %d failed: %v", idx.Generation(), err)
		l.bus.Publish(eventbus.ErrorEvent{Message: "failed to read file", Err: err})
	default:
		log.Printf("index: pass %d complete, %d rows", idx.Generation(), idx.Len())
	}
}
