package filter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Kind classifies a token.
type Kind int

const (
	TokEOF Kind = iota
	TokNumber
	TokString // quoted
	TokIdent  // bare word
	TokCmp
	TokMatches
	TokNot
	TokAnd
	TokOr
	TokLParen
	TokRParen
	TokLBracket
	TokRBracket
	TokColon
	TokDash
	TokInvalid
)

// CmpOp is a comparison operator.
type CmpOp int

const (
	CmpEq CmpOp = iota
	CmpNe
	CmpGt
	CmpLt
	CmpGe
	CmpLe
)

func (op CmpOp) String() string {
	switch op {
	case CmpEq:
		return "=="
	case CmpNe:
		return "!="
	case CmpGt:
		return ">"
	case CmpLt:
		return "<"
	case CmpGe:
		return ">="
	case CmpLe:
		return "<="
	}
	return "?"
}

// Token is one lexical unit of a filter expression. Pos and Text index into
// the source so errors can point back at the offending span. For TokString,
// Text keeps the surrounding quotes and Terminated records whether the
// closing quote was found.
type Token struct {
	Kind       Kind
	Op         CmpOp
	Pos        int
	Text       string
	Terminated bool
}

var keywords = map[string]Token{
	"eq":      {Kind: TokCmp, Op: CmpEq},
	"nq":      {Kind: TokCmp, Op: CmpNe},
	"ne":      {Kind: TokCmp, Op: CmpNe},
	"gt":      {Kind: TokCmp, Op: CmpGt},
	"lt":      {Kind: TokCmp, Op: CmpLt},
	"ge":      {Kind: TokCmp, Op: CmpGe},
	"le":      {Kind: TokCmp, Op: CmpLe},
	"and":     {Kind: TokAnd},
	"or":      {Kind: TokOr},
	"not":     {Kind: TokNot},
	"matches": {Kind: TokMatches},
}

// Lexer is a pull lexer over a filter expression.
type Lexer struct {
	src    string
	off    int
	peeked *Token
}

// NewLexer initializes a lexer at the start of src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Next consumes and returns the next token.
func (l *Lexer) Next() Token {
	if t := l.peeked; t != nil {
		l.peeked = nil
		return *t
	}
	return l.lex()
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() Token {
	if l.peeked == nil {
		t := l.lex()
		l.peeked = &t
	}
	return *l.peeked
}

// Take consumes the next token when it has the given kind.
func (l *Lexer) Take(kind Kind) (Token, bool) {
	if l.Peek().Kind == kind {
		return l.Next(), true
	}
	return Token{}, false
}

func (l *Lexer) token(kind Kind, start int) Token {
	return Token{Kind: kind, Pos: start, Text: l.src[start:l.off]}
}

func (l *Lexer) lex() Token {
	// Skip whitespace
	for l.off < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.off:])
		if !unicode.IsSpace(r) {
			break
		}
		l.off += size
	}
	if l.off >= len(l.src) {
		return Token{Kind: TokEOF, Pos: len(l.src)}
	}

	start := l.off
	rest := l.src[l.off:]

	// Two character operators
	if len(rest) >= 2 {
		var op CmpOp
		matched := true
		switch rest[:2] {
		case "==":
			op = CmpEq
		case "!=":
			op = CmpNe
		case ">=":
			op = CmpGe
		case "<=":
			op = CmpLe
		case "&&":
			l.off += 2
			return l.token(TokAnd, start)
		case "||":
			l.off += 2
			return l.token(TokOr, start)
		default:
			matched = false
		}
		if matched {
			l.off += 2
			t := l.token(TokCmp, start)
			t.Op = op
			return t
		}
	}

	// Single character tokens
	switch rest[0] {
	case '>', '<':
		l.off++
		t := l.token(TokCmp, start)
		if rest[0] == '>' {
			t.Op = CmpGt
		} else {
			t.Op = CmpLt
		}
		return t
	case '~':
		l.off++
		return l.token(TokMatches, start)
	case '!':
		l.off++
		return l.token(TokNot, start)
	case '(':
		l.off++
		return l.token(TokLParen, start)
	case ')':
		l.off++
		return l.token(TokRParen, start)
	case '[':
		l.off++
		return l.token(TokLBracket, start)
	case ']':
		l.off++
		return l.token(TokRBracket, start)
	case ':':
		l.off++
		return l.token(TokColon, start)
	case '-':
		l.off++
		return l.token(TokDash, start)
	case '"':
		l.off++
		for l.off < len(l.src) {
			if l.src[l.off] == '"' {
				l.off++
				t := l.token(TokString, start)
				t.Terminated = true
				return t
			}
			l.off++
		}
		return l.token(TokString, start) // unterminated
	}

	if rest[0] >= '0' && rest[0] <= '9' {
		l.off++
		seenDot := false
		for l.off < len(l.src) {
			c := l.src[l.off]
			if c == '.' && !seenDot {
				seenDot = true
			} else if c < '0' || c > '9' {
				break
			}
			l.off++
		}
		return l.token(TokNumber, start)
	}

	if isWordRune(rune(rest[0])) {
		for l.off < len(l.src) {
			r, size := utf8.DecodeRuneInString(l.src[l.off:])
			if !isWordRune(r) {
				break
			}
			l.off += size
		}
		word := l.src[start:l.off]
		if kw, ok := keywords[strings.ToLower(word)]; ok {
			kw.Pos = start
			kw.Text = word
			return kw
		}
		t := l.token(TokIdent, start)
		if _, err := decimal.NewFromString(word); err == nil {
			t.Kind = TokNumber
		}
		return t
	}

	l.off++
	return l.token(TokInvalid, start)
}

func isWordRune(r rune) bool {
	return r == '_' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
