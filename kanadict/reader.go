package kanadict

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/kanaize"
)

// Reader streams dictionary entries from kanadict source files.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader creates a reader for dictionary entries. Header directives are
// skipped; use ReadHeader to get at them.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Line returns the number of the line read last.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next entry as (sequence, symbol, flags).
// It returns io.EOF when exhausted.
//
// Entries are lines of whitespace separated fields
//
//	kya  きゃ  double long
//
// holding a romaji sequence, its kana and optional flags "double" and
// "long". Comments start with '%' and extend to the end of the line.
func (r *Reader) Next() (string, string, kanaize.Flags, error) {
	for r.scanner.Scan() {
		r.line++
		fields := strings.Fields(stripComment(r.scanner.Text()))
		if len(fields) == 0 || strings.HasPrefix(fields[0], "\\") {
			continue
		}
		if len(fields) < 2 {
			return "", "", kanaize.NoFlags, fmt.Errorf("%w: line %d: entry %q has no symbol",
				kanaize.ErrConfiguration, r.line, fields[0])
		}
		flags, err := parseFlags(fields[2:])
		if err != nil {
			return "", "", kanaize.NoFlags, fmt.Errorf("%w: line %d: %v", kanaize.ErrConfiguration, r.line, err)
		}
		return fields[0], fields[1], flags, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", "", kanaize.NoFlags, err
	}
	return "", "", kanaize.NoFlags, io.EOF
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '%'); i >= 0 {
		return line[:i]
	}
	return line
}

func parseFlags(fields []string) (kanaize.Flags, error) {
	flags := kanaize.NoFlags
	for _, f := range fields {
		switch f {
		case FlagDouble:
			flags |= kanaize.DoubleConsonant
		case FlagLong:
			flags |= kanaize.LongVowel
		default:
			return flags, fmt.Errorf("unknown flag %q", f)
		}
	}
	return flags, nil
}

// Flag names as used in dictionary files.
const (
	FlagDouble = "double"
	FlagLong   = "long"
)
