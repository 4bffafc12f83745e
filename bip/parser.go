package bip

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// commentChar introduces a comment: it and everything after it on the
// same line is discarded.
const commentChar = '#'

// The loader is a line-oriented state machine. Each mode tells what
// kind of line is expected next; the first malformed line aborts the
// whole read.
type readMode byte

const (
	readCols = readMode(iota)
	readRows
	readCoef
)

// splitFields strips the comment part of a line, maps unprintable
// characters to spaces and splits the rest into whitespace-delimited
// fields.
func splitFields(line string) []string {
	if i := strings.IndexByte(line, commentChar); i >= 0 {
		line = line[:i]
	}
	line = strings.Map(func(r rune) rune {
		if !unicode.IsPrint(r) {
			return ' '
		}
		return r
	}, line)
	return strings.Fields(line)
}

// ParseBIP parses a BIP file and returns the corresponding Problem.
// The expected format is:
//
//	4          # cols (variables)
//	3          # rows (constraints)
//	2 3 5 4 <= 8
//	3 6 0 8 <= 10
//	0 0 1 1  = 1
//
// Comments ('#') and blank lines are ignored. The returned problem
// still needs to be preprocessed before it can be enumerated.
func ParseBIP(f io.Reader) (*Problem, error) {
	scanner := bufio.NewScanner(f)
	var (
		pb     *Problem
		mode   = readCols
		lineNo int
		rows   int // declared number of constraint rows
		read   int // constraint rows read so far
	)
	for scanner.Scan() {
		lineNo++
		fields := splitFields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch mode {
		case readCols:
			cols, err := parseDim(fields, MaxCols, lineNo, "cols")
			if err != nil {
				return nil, err
			}
			pb = newProblem(cols)
			mode = readRows
		case readRows:
			n, err := parseDim(fields, MaxRows, lineNo, "rows")
			if err != nil {
				return nil, err
			}
			rows = n
			mode = readCoef
		case readCoef:
			if read >= rows {
				return nil, fmt.Errorf("line %d: %w: expected %d constraint rows, got more", lineNo, ErrFormat, rows)
			}
			if err := pb.parseConstraint(fields, lineNo); err != nil {
				return nil, err
			}
			read++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read input: %w", err)
	}
	if pb == nil || rows == 0 || read < rows {
		return nil, fmt.Errorf("%w: read %d of %d constraint rows", ErrUnexpectedEOF, read, rows)
	}
	return pb, nil
}

// parseDim parses a dimension line (number of cols or rows): exactly
// one field holding a finite, integral value in 1..max.
func parseDim(fields []string, max, lineNo int, what string) (int, error) {
	if len(fields) != 1 {
		return 0, fmt.Errorf("line %d: %w: got %d fields, expected 1", lineNo, ErrFormat, len(fields))
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v || v < 1 || v > float64(max) {
		return 0, fmt.Errorf("line %d: %w: number of %s %q not integral or outside 1..%d", lineNo, ErrRange, what, fields[0], max)
	}
	return int(v), nil
}

// parseConstraint parses one constraint line: cols coefficients, one
// sense token, one right hand side.
func (pb *Problem) parseConstraint(fields []string, lineNo int) error {
	if len(fields) != pb.cols+2 {
		return fmt.Errorf("line %d: %w: got %d fields, expected %d", lineNo, ErrFormat, len(fields), pb.cols+2)
	}
	coefs := make([]float64, pb.cols)
	for c := 0; c < pb.cols; c++ {
		v, err := parseCoef(fields[c])
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		coefs[c] = v
	}
	sense, err := parseSense(fields[pb.cols])
	if err != nil {
		return fmt.Errorf("line %d: %w", lineNo, err)
	}
	rhs, err := parseCoef(fields[pb.cols+1])
	if err != nil {
		return fmt.Errorf("line %d: %w", lineNo, err)
	}
	pb.addRow(coefs, sense, rhs)
	return nil
}

func parseCoef(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < minCoef || v > maxCoef {
		return 0, fmt.Errorf("%w: number %q", ErrRange, tok)
	}
	return v, nil
}

func parseSense(tok string) (Sense, error) {
	switch tok {
	case "<=":
		return LE, nil
	case ">=":
		return GE, nil
	case "=", "==":
		return EQ, nil
	}
	return 0, fmt.Errorf("%w: expected <=, >=, = or ==, got %q", ErrFormat, tok)
}

// LoadBIP opens the file at path and parses it with ParseBIP. The file
// is closed on every exit path.
func LoadBIP(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return ParseBIP(f)
}
