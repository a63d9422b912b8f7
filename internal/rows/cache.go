// Package rows parses data rows on demand from their indexed byte ranges
// and retains a bounded recently-used set, so scrolling back and forth does
// not re-read and re-split the same records.
package rows

import (
	"fmt"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"

	"csvgrip/internal/index"
)

// Cache reads rows through a snapshot handle. It is bound to one Index: a
// reload builds a new Cache alongside the new Index, so entries from a
// discarded pass can never serve stale bytes. Reads go through ReadAt and
// are safe from concurrent callers; eviction only drops entries.
type Cache struct {
	f     *os.File
	delim byte
	idx   *index.Index
	lru   *lru.Cache[int, []string]
}

// NewCache opens the file for random access reads.
func NewCache(path string, delim byte, idx *index.Index, size int) (*Cache, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	c, err := lru.New[int, []string](size)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &Cache{f: f, delim: delim, idx: idx, lru: c}, nil
}

// Index returns the snapshot handle this cache reads through.
func (c *Cache) Index() *index.Index {
	return c.idx
}

// Fields returns the decoded cells of the given data row.
func (c *Cache) Fields(row int) ([]string, error) {
	if cells, ok := c.lru.Get(row); ok {
		return cells, nil
	}

	e, ok := c.idx.Entry(row)
	if !ok {
		return nil, fmt.Errorf("row %d is not indexed yet", row)
	}

	buf := make([]byte, e.Len)
	if _, err := c.f.ReadAt(buf, int64(e.Offset)); err != nil {
		return nil, fmt.Errorf("read row %d: %w", row, err)
	}

	cells := index.SplitRecord(buf, c.delim)
	c.lru.Add(row, cells)
	return cells, nil
}

// Close releases the file handle.
func (c *Cache) Close() error {
	return c.f.Close()
}
