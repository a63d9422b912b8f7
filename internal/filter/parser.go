package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// SyntaxError reports where a filter expression stopped making sense, so the
// prompt can point at the offending span without discarding the user's text.
type SyntaxError struct {
	Pos int
	Len int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (at position %d)", e.Msg, e.Pos)
}

func errAt(t Token, msg string) *SyntaxError {
	n := len(t.Text)
	if n == 0 {
		n = 1
	}
	return &SyntaxError{Pos: t.Pos, Len: n, Msg: msg}
}

// Parse compiles filter source into an expression tree. Whitespace-only
// input yields a nil tree, meaning no filter. Errors are always of type
// *SyntaxError. Column validity is not checked here: an index beyond a row's
// width simply never matches at evaluation time.
func Parse(src string) (Expr, error) {
	if strings.TrimSpace(src) == "" {
		return nil, nil
	}
	p := &parser{lex: NewLexer(src)}
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if t := p.lex.Next(); t.Kind != TokEOF {
		return nil, errAt(t, "unexpected trailing input")
	}
	return expr, nil
}

type parser struct {
	lex *Lexer
}

// Precedence, low to high: or, and, not, comparison.

func (p *parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		if _, ok := p.lex.Take(TokOr); !ok {
			return left, nil
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Or{L: left, R: right}
	}
}

func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		if _, ok := p.lex.Take(TokAnd); !ok {
			return left, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = And{L: left, R: right}
	}
}

func (p *parser) parseUnary() (Expr, error) {
	if _, ok := p.lex.Take(TokNot); ok {
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not{X: x}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	if _, ok := p.lex.Take(TokLParen); ok {
		expr, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if _, ok := p.lex.Take(TokRParen); !ok {
			return nil, errAt(p.lex.Peek(), "expected )")
		}
		return expr, nil
	}
	return p.parseTest()
}

// parseTest handles comparison, regex match, and bare presence tests, all of
// which start with a column reference.
func (p *parser) parseTest() (Expr, error) {
	col, err := p.parseColumnRef()
	if err != nil {
		return nil, err
	}

	switch t := p.lex.Peek(); t.Kind {
	case TokCmp:
		p.lex.Next()
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		return Compare{Col: col, Op: t.Op, Lit: lit}, nil

	case TokMatches:
		p.lex.Next()
		return p.parseMatch(col)

	default:
		return Presence{Col: col}, nil
	}
}

func (p *parser) parseColumnRef() (ColumnRef, error) {
	t := p.lex.Next()
	if t.Kind != TokNumber {
		return ColumnRef{}, errAt(t, "expected a column index")
	}
	col, err := strconv.Atoi(t.Text)
	if err != nil {
		return ColumnRef{}, errAt(t, "column index must be an integer")
	}

	ref := ColumnRef{Col: col}
	if _, ok := p.lex.Take(TokLBracket); ok {
		s, err := p.parseSlice()
		if err != nil {
			return ColumnRef{}, err
		}
		ref.Slice = s
	}
	return ref, nil
}

// parseSlice is entered after '['. Forms: i, i:j, i:, :j, i-j.
func (p *parser) parseSlice() (*Slice, error) {
	s := &Slice{}

	if t, ok := p.lex.Take(TokNumber); ok {
		start, err := sliceBound(t)
		if err != nil {
			return nil, err
		}
		s.Start, s.HasStart = start, true

		switch {
		case p.take(TokColon):
			if t, ok := p.lex.Take(TokNumber); ok {
				end, err := sliceBound(t)
				if err != nil {
					return nil, err
				}
				if end < start {
					return nil, errAt(t, "slice end before start")
				}
				s.End, s.HasEnd = end, true
			}
		case p.take(TokDash):
			t := p.lex.Next()
			if t.Kind != TokNumber {
				return nil, errAt(t, "expected slice end")
			}
			end, err := sliceBound(t)
			if err != nil {
				return nil, err
			}
			if end < start {
				return nil, errAt(t, "slice end before start")
			}
			s.End, s.HasEnd = end, true
			s.Inclusive = true
		default:
			s.Single = true
		}
	} else if p.take(TokColon) {
		t := p.lex.Next()
		if t.Kind != TokNumber {
			return nil, errAt(t, "expected slice end")
		}
		end, err := sliceBound(t)
		if err != nil {
			return nil, err
		}
		s.End, s.HasEnd = end, true
	} else {
		return nil, errAt(p.lex.Peek(), "expected slice bounds")
	}

	if t := p.lex.Next(); t.Kind != TokRBracket {
		return nil, errAt(t, "expected ]")
	}
	return s, nil
}

func sliceBound(t Token) (int, error) {
	n, err := strconv.Atoi(t.Text)
	if err != nil {
		return 0, errAt(t, "slice bound must be an integer")
	}
	return n, nil
}

func (p *parser) parseLiteral() (Literal, error) {
	neg := false
	if _, ok := p.lex.Take(TokDash); ok {
		neg = true
	}

	t := p.lex.Next()
	switch t.Kind {
	case TokNumber:
		text := t.Text
		if neg {
			text = "-" + text
		}
		num, err := decimal.NewFromString(text)
		if err != nil {
			// bare word that only looked numeric; compare as text
			return Literal{Text: text}, nil
		}
		return Literal{Text: text, Num: num, IsNum: true}, nil

	case TokString:
		if neg {
			return Literal{}, errAt(t, "expected a number")
		}
		if !t.Terminated {
			return Literal{}, errAt(t, "unterminated string")
		}
		return Literal{Text: unquote(t.Text)}, nil

	case TokIdent:
		if neg {
			return Literal{}, errAt(t, "expected a number")
		}
		return Literal{Text: t.Text}, nil

	default:
		return Literal{}, errAt(t, "expected a value")
	}
}

func (p *parser) parseMatch(col ColumnRef) (Expr, error) {
	t := p.lex.Next()
	var pattern string
	switch t.Kind {
	case TokString:
		if !t.Terminated {
			return nil, errAt(t, "unterminated string")
		}
		pattern = unquote(t.Text)
	case TokIdent, TokNumber:
		pattern = t.Text
	default:
		return nil, errAt(t, "expected a regex pattern")
	}

	re, err := compileRegex(pattern)
	if err != nil {
		return nil, errAt(t, "invalid regex")
	}
	return Match{Col: col, Pattern: pattern, Re: re}, nil
}

func (p *parser) take(kind Kind) bool {
	_, ok := p.lex.Take(kind)
	return ok
}

func unquote(text string) string {
	text = strings.TrimPrefix(text, `"`)
	return strings.TrimSuffix(text, `"`)
}

// Patterns are compiled once per distinct string and shared across parses;
// re-typing a filter must not recompile its regexes.
var (
	reMu    sync.Mutex
	reCache = map[string]*regexp.Regexp{}
)

func compileRegex(pattern string) (*regexp.Regexp, error) {
	reMu.Lock()
	defer reMu.Unlock()
	if re, ok := reCache[pattern]; ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	reCache[pattern] = re
	return re, nil
}
