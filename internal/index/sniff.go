package index

import (
	"bufio"
	"io"
	"os"

	"github.com/shopspring/decimal"
)

var delimCandidates = []byte{',', ';', ':', '|', '\t'}

// SniffDelimiter guesses the delimiter by counting candidate separators over
// the first line. Ties and empty input fall back to a comma.
func SniffDelimiter(r io.Reader) (byte, error) {
	counts := make([]int, len(delimCandidates))
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err == io.EOF || b == '\n' {
			break
		}
		if err != nil {
			return 0, err
		}
		for i, d := range delimCandidates {
			if b == d {
				counts[i]++
			}
		}
	}

	best := 0
	for i, c := range counts {
		if c > counts[best] {
			best = i
		}
	}
	return delimCandidates[best], nil
}

// SniffHasHeader guesses whether the first record is a header by comparing
// the shapes of the first two records: a header row holds only non-empty,
// non-numeric cells while data rows commonly carry numbers.
func SniffHasHeader(r io.Reader, delim byte) (bool, error) {
	sc := NewScanner(r, delim)

	_, raw, err := sc.Next()
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, nil // malformed input is the loader's problem, not the sniffer's
	}
	for _, cell := range SplitRecord(raw, delim) {
		if cell == "" || isNumeric(cell) {
			return false, nil
		}
	}

	_, raw, err = sc.Next()
	if err != nil {
		// A single all-text record reads as a header.
		return true, nil
	}
	for _, cell := range SplitRecord(raw, delim) {
		if isNumeric(cell) {
			return true, nil
		}
	}
	// Two all-text rows are ambiguous; most such files carry headers.
	return true, nil
}

// Sniff opens the file and guesses delimiter and header presence.
func Sniff(path string) (delim byte, hasHeader bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, false, err
	}
	defer f.Close()

	delim, err = SniffDelimiter(f)
	if err != nil {
		return 0, false, err
	}
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		return 0, false, err
	}
	hasHeader, err = SniffHasHeader(f, delim)
	return delim, hasHeader, err
}

func isNumeric(s string) bool {
	_, err := decimal.NewFromString(s)
	return err == nil
}
