package filter

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// Expr is a node of a compiled filter expression. Trees are immutable once
// parsed and replaced wholesale when the filter text changes.
type Expr interface {
	isExpr()
}

// Slice extracts a byte range from a cell's text before any comparison.
// Bounds are clamped to the text length; an empty result is legal.
type Slice struct {
	Start, End         int
	HasStart, HasEnd   bool
	Inclusive, Single  bool
}

// Apply returns the selected range of text.
func (s *Slice) Apply(text string) string {
	start, end := 0, len(text)
	if s.HasStart {
		start = s.Start
	}
	switch {
	case s.Single:
		end = s.Start + 1
	case s.Inclusive:
		end = s.End + 1
	case s.HasEnd:
		end = s.End
	}
	start = min(start, len(text))
	end = min(end, len(text))
	if start >= end {
		return ""
	}
	return text[start:end]
}

// ColumnRef addresses a cell by 0-based source column index, optionally
// restricted to a slice of its text.
type ColumnRef struct {
	Col   int
	Slice *Slice
}

// Text returns the cell's (sliced) text. ok is false when the row has no
// such column.
func (c ColumnRef) Text(cells []string) (string, bool) {
	if c.Col < 0 || c.Col >= len(cells) {
		return "", false
	}
	text := cells[c.Col]
	if c.Slice != nil {
		text = c.Slice.Apply(text)
	}
	return text, true
}

// Literal is a comparison operand. IsNum marks bare operands that parse as
// exact decimals; quoted strings always compare as text.
type Literal struct {
	Text  string
	Num   decimal.Decimal
	IsNum bool
}

// Compare tests a cell against a literal with one of ==, !=, >, <, >=, <=.
type Compare struct {
	Col ColumnRef
	Op  CmpOp
	Lit Literal
}

// Match tests a cell against a regular expression.
type Match struct {
	Col     ColumnRef
	Pattern string
	Re      *regexp.Regexp
}

// Presence is a bare column reference: true iff the (sliced) cell text is
// non-empty.
type Presence struct {
	Col ColumnRef
}

// Not negates its operand.
type Not struct {
	X Expr
}

// And is a short-circuiting conjunction.
type And struct {
	L, R Expr
}

// Or is a short-circuiting disjunction.
type Or struct {
	L, R Expr
}

func (Compare) isExpr()  {}
func (Match) isExpr()    {}
func (Presence) isExpr() {}
func (Not) isExpr()      {}
func (And) isExpr()      {}
func (Or) isExpr()       {}
