package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"csvgrip/internal/eventbus"
)

func TestWatchReportsWrites(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0644))

	bus := eventbus.New()
	defer bus.Close()

	changed := make(chan string, 4)
	bus.Subscribe(eventbus.EventFileChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.FileChangedEvent); ok {
			changed <- ev.Path
		}
	})

	s, err := New(bus, path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0644))

	select {
	case got := <-changed:
		require.Equal(t, path, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change event after writing the file")
	}
}

func TestWatchReportsReplace(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0644))

	bus := eventbus.New()
	defer bus.Close()

	changed := make(chan struct{}, 4)
	bus.Subscribe(eventbus.EventFileChanged, func(e eventbus.DomainEvent) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})

	s, err := New(bus, path)
	require.NoError(t, err)
	defer s.Close()

	// Editor-style save: write a temp file and rename it over the target.
	tmp := filepath.Join(dir, ".data.csv.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("a\n1\n"), 0644))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change event after replacing the file")
	}
}

func TestWatchIgnoresSiblings(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0644))

	bus := eventbus.New()
	defer bus.Close()

	changed := make(chan struct{}, 4)
	bus.Subscribe(eventbus.EventFileChanged, func(e eventbus.DomainEvent) {
		changed <- struct{}{}
	})

	s, err := New(bus, path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))

	select {
	case <-changed:
		t.Fatal("sibling file writes must not be reported")
	case <-time.After(300 * time.Millisecond):
	}
}
