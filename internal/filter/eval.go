package filter

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Eval reports whether a row's decoded cells satisfy the expression. A nil
// expression passes every row.
//
// Comparison typing is decided per row: when the literal is numeric AND the
// cell's (sliced) text parses as an exact decimal, the comparison is
// numeric; in every other case both sides compare as raw bytes. The fallback
// is deliberate — "5" == "5.0" holds numerically for a numeric cell while
// the same filter compares an alphabetic cell textually.
//
// A column index beyond the row's width makes the enclosing test false
// rather than an error, so malformed short rows degrade gracefully.
func Eval(e Expr, cells []string) bool {
	if e == nil {
		return true
	}
	switch n := e.(type) {
	case Compare:
		text, ok := n.Col.Text(cells)
		if !ok {
			return false
		}
		return compare(text, n.Op, n.Lit)

	case Match:
		text, ok := n.Col.Text(cells)
		if !ok {
			return false
		}
		return n.Re.MatchString(text)

	case Presence:
		text, ok := n.Col.Text(cells)
		return ok && text != ""

	case Not:
		return !Eval(n.X, cells)

	case And:
		return Eval(n.L, cells) && Eval(n.R, cells)

	case Or:
		return Eval(n.L, cells) || Eval(n.R, cells)
	}
	return false
}

func compare(text string, op CmpOp, lit Literal) bool {
	if lit.IsNum {
		if num, err := decimal.NewFromString(strings.TrimSpace(text)); err == nil {
			return ordered(num.Cmp(lit.Num), op)
		}
	}
	return ordered(strings.Compare(text, lit.Text), op)
}

func ordered(cmp int, op CmpOp) bool {
	switch op {
	case CmpEq:
		return cmp == 0
	case CmpNe:
		return cmp != 0
	case CmpGt:
		return cmp > 0
	case CmpLt:
		return cmp < 0
	case CmpGe:
		return cmp >= 0
	case CmpLe:
		return cmp <= 0
	}
	return false
}
