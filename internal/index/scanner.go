package index

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Quote handling follows RFC 4180 with the same leniencies as common CSV
// readers: a quote opens a quoted field only at field start, "" inside a
// quoted field is a literal quote, and stray bytes after a closing quote are
// folded into the field.

// UnterminatedQuoteError reports a quoted field still open at end of input.
// Offset is the byte position of the opening quote.
type UnterminatedQuoteError struct {
	Offset int64
}

func (e *UnterminatedQuoteError) Error() string {
	return fmt.Sprintf("unterminated quoted field starting at byte %d", e.Offset)
}

// Record locates one logical CSV record in the source. Len excludes the
// line terminator, so the bytes at [Offset, Offset+Len) are the record
// content itself.
type Record struct {
	Offset int64
	Len    int
}

const (
	stateFieldStart = iota
	stateUnquoted
	stateQuoted
	stateQuoteInQuoted
)

// Scanner walks a byte stream and yields the location of every logical
// record, treating embedded separators and newlines inside quoted fields as
// content rather than record breaks.
type Scanner struct {
	r     *bufio.Reader
	delim byte
	off   int64

	buf []byte // current record content, reused between calls
}

// NewScanner creates a scanner positioned at offset 0 of r.
func NewScanner(r io.Reader, delim byte) *Scanner {
	return &Scanner{
		r:     bufio.NewReaderSize(r, 64*1024),
		delim: delim,
	}
}

// Next returns the location and content of the next record. The returned
// bytes are only valid until the following call. io.EOF signals a clean end
// of input; *UnterminatedQuoteError signals a quoted field left open, with
// all complete prior records already reported.
func (s *Scanner) Next() (Record, []byte, error) {
	start := s.off
	state := stateFieldStart
	quoteStart := int64(-1)
	s.buf = s.buf[:0]

	for {
		b, err := s.r.ReadByte()
		if err == io.EOF {
			if state == stateQuoted {
				return Record{}, nil, &UnterminatedQuoteError{Offset: quoteStart}
			}
			if s.off == start {
				return Record{}, nil, io.EOF
			}
			// Final record without a trailing newline.
			return Record{Offset: start, Len: int(s.off - start)}, s.buf, nil
		}
		if err != nil {
			return Record{}, nil, err
		}
		s.off++

		if b == '\n' && state != stateQuoted {
			content := s.buf
			if n := len(content); n > 0 && content[n-1] == '\r' {
				content = content[:n-1]
			}
			return Record{Offset: start, Len: len(content)}, content, nil
		}

		s.buf = append(s.buf, b)

		switch state {
		case stateFieldStart:
			switch b {
			case '"':
				state = stateQuoted
				quoteStart = s.off - 1
			case s.delim:
				// empty field, stay at field start
			default:
				state = stateUnquoted
			}
		case stateUnquoted:
			if b == s.delim {
				state = stateFieldStart
			}
		case stateQuoted:
			if b == '"' {
				state = stateQuoteInQuoted
			}
		case stateQuoteInQuoted:
			switch b {
			case '"':
				state = stateQuoted // escaped quote
			case s.delim:
				state = stateFieldStart
			default:
				state = stateUnquoted
			}
		}
	}
}

// Offset returns the byte position of the next unread byte.
func (s *Scanner) Offset() int64 {
	return s.off
}

// SplitRecord splits one record's content bytes into decoded cell values:
// surrounding quotes removed, doubled quotes unescaped, and surrounding
// whitespace trimmed.
func SplitRecord(data []byte, delim byte) []string {
	fields := make([]string, 0, 8)
	var cell strings.Builder
	state := stateFieldStart

	flush := func() {
		fields = append(fields, strings.TrimSpace(cell.String()))
		cell.Reset()
	}

	for _, b := range data {
		switch state {
		case stateFieldStart:
			switch b {
			case '"':
				state = stateQuoted
			case delim:
				flush()
			default:
				cell.WriteByte(b)
				state = stateUnquoted
			}
		case stateUnquoted:
			if b == delim {
				flush()
				state = stateFieldStart
			} else {
				cell.WriteByte(b)
			}
		case stateQuoted:
			if b == '"' {
				state = stateQuoteInQuoted
			} else {
				cell.WriteByte(b)
			}
		case stateQuoteInQuoted:
			switch b {
			case '"':
				cell.WriteByte('"')
				state = stateQuoted
			case delim:
				flush()
				state = stateFieldStart
			default:
				cell.WriteByte(b)
				state = stateUnquoted
			}
		}
	}
	flush()
	return fields
}
