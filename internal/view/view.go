// Package view maintains the ordered set of row numbers passing the active
// filter expression.
package view

import (
	"context"
	"log"

	"csvgrip/internal/filter"
	"csvgrip/internal/index"
)

// Fetcher provides decoded cells for a row of the current index.
type Fetcher interface {
	Fields(row int) ([]string, error)
}

// View composes the row index with a filter expression. An unfiltered view
// (nil expression) is a sentinel that passes every row without materializing
// anything. A filtered view grows append-only: each Advance evaluates only
// rows between the last snapshot and the current one, so a row is never
// evaluated twice or skipped while the loader appends concurrently.
//
// Row numbers stay in ascending order; the view is rebuilt, never patched,
// when the expression changes.
type View struct {
	expr    filter.Expr
	rows    []int
	scanned int
	errs    int
}

// New creates a view over the given expression; nil means unfiltered.
func New(expr filter.Expr) *View {
	return &View{expr: expr}
}

// Filtered reports whether an expression is active.
func (v *View) Filtered() bool {
	return v.expr != nil
}

// Expr returns the active expression, nil when unfiltered.
func (v *View) Expr() filter.Expr {
	return v.expr
}

// Advance evaluates rows indexed since the previous call, against a single
// length snapshot taken on entry. Rows that cannot be read count as
// non-matching.
func (v *View) Advance(idx *index.Index, f Fetcher) {
	if v.expr == nil {
		return
	}
	n := idx.Len() // one snapshot per incremental step
	for row := v.scanned; row < n; row++ {
		cells, err := f.Fields(row)
		if err != nil {
			if v.errs == 0 {
				log.Printf("view: skipping unreadable row %d: %v", row, err)
			}
			v.errs++
			continue
		}
		if filter.Eval(v.expr, cells) {
			v.rows = append(v.rows, row)
		}
	}
	v.scanned = n
}

// Len returns the number of visible rows under the current index length.
func (v *View) Len(idx *index.Index) int {
	if v.expr == nil {
		return idx.Len()
	}
	return len(v.rows)
}

// Row maps a view position to an underlying row number.
func (v *View) Row(idx *index.Index, i int) (int, bool) {
	if v.expr == nil {
		if i < 0 || i >= idx.Len() {
			return 0, false
		}
		return i, true
	}
	if i < 0 || i >= len(v.rows) {
		return 0, false
	}
	return v.rows[i], true
}

// Build constructs a fully advanced view off the UI goroutine. It honors
// cancellation so a newer filter can abandon a rebuild in progress.
func Build(ctx context.Context, expr filter.Expr, idx *index.Index, f Fetcher) (*View, error) {
	v := New(expr)
	if expr == nil {
		return v, nil
	}
	n := idx.Len()
	for row := 0; row < n; row++ {
		if row%1024 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}
		cells, err := f.Fields(row)
		if err != nil {
			v.errs++
			continue
		}
		if filter.Eval(expr, cells) {
			v.rows = append(v.rows, row)
		}
	}
	v.scanned = n
	return v, nil
}
