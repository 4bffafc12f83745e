package bip

import (
	"fmt"
	"math"
	"strings"
)

// maxCoef bounds every coefficient and right hand side: 10^15 is the
// largest power of ten whose integers a float64 still represents with
// all decimal digits exact.
const (
	maxCoef = 1e15
	minCoef = -maxCoef
)

// A Problem is a binary program: a coefficient matrix, a right hand
// side and a sense per row, over 0/1 variables.
//
// The matrix is kept twice: row-major as loaded, and, once Preprocess
// was run, column-major with the rows reordered and normalized. The
// enumerator only reads the column-major view.
type Problem struct {
	rows, cols int
	coefs      [][]float64 // original coefficient matrix, row-major
	rhs        []float64   // original right hand sides
	senses     []Sense     // original sense per row

	equs   int         // number of equations, -1 = not preprocessed yet
	byCol  [][]float64 // reordered, normalized matrix, column-major
	rhsOrd []float64   // reordered right hand sides, aligned with byCol
}

// A Row describes one constraint when building a problem
// programmatically rather than from a file.
type Row struct {
	Coefs []float64
	Sense Sense
	RHS   float64
}

// New builds a problem with the given number of variables from a list
// of rows. It performs the same range validation as the file loader.
func New(cols int, rows []Row) (*Problem, error) {
	if cols < 1 || cols > MaxCols {
		return nil, fmt.Errorf("%w: %d cols, want 1..%d", ErrRange, cols, MaxCols)
	}
	if len(rows) < 1 || len(rows) > MaxRows {
		return nil, fmt.Errorf("%w: %d rows, want 1..%d", ErrRange, len(rows), MaxRows)
	}
	pb := newProblem(cols)
	for i, row := range rows {
		if len(row.Coefs) != cols {
			return nil, fmt.Errorf("%w: row %d has %d coefficients, expected %d", ErrFormat, i, len(row.Coefs), cols)
		}
		if row.Sense != LE && row.Sense != GE && row.Sense != EQ {
			return nil, fmt.Errorf("%w: unknown sense in row %d", ErrFormat, i)
		}
		for _, v := range row.Coefs {
			if err := checkCoef(v); err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
		}
		if err := checkCoef(row.RHS); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		pb.addRow(row.Coefs, row.Sense, row.RHS)
	}
	return pb, nil
}

func newProblem(cols int) *Problem {
	return &Problem{cols: cols, equs: -1}
}

// addRow copies one constraint into the row-major representation.
func (pb *Problem) addRow(coefs []float64, sense Sense, rhs float64) {
	row := make([]float64, pb.cols)
	copy(row, coefs)
	pb.coefs = append(pb.coefs, row)
	pb.rhs = append(pb.rhs, rhs)
	pb.senses = append(pb.senses, sense)
	pb.rows++
}

func checkCoef(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < minCoef || v > maxCoef {
		return fmt.Errorf("%w: number %g", ErrRange, v)
	}
	return nil
}

// Cols returns the number of variables.
func (pb *Problem) Cols() int { return pb.cols }

// Rows returns the number of constraints.
func (pb *Problem) Rows() int { return pb.rows }

// Coef returns the original coefficient of variable c in row r.
func (pb *Problem) Coef(r, c int) float64 { return pb.coefs[r][c] }

// RHS returns the original right hand side of row r.
func (pb *Problem) RHS(r int) float64 { return pb.rhs[r] }

// Sense returns the original sense of row r.
func (pb *Problem) Sense(r int) Sense { return pb.senses[r] }

// Preprocessed reports whether Preprocess was already run.
func (pb *Problem) Preprocessed() bool { return pb.equs >= 0 }

// Equalities returns the number of equality rows. It is only known
// after preprocessing; -1 is returned before that.
func (pb *Problem) Equalities() int { return pb.equs }

// String renders the original system, one constraint per line.
func (pb *Problem) String() string {
	var sb strings.Builder
	for r := 0; r < pb.rows; r++ {
		for c := 0; c < pb.cols; c++ {
			fmt.Fprintf(&sb, "%g ", pb.coefs[r][c])
		}
		fmt.Fprintf(&sb, "%v %g\n", pb.senses[r], pb.rhs[r])
	}
	return sb.String()
}

// isValid checks the internal consistency of the problem: dimension
// limits, coefficient bounds in both matrix views, and equal nonzero
// counts between the row-major and the column-major view. It is only
// referenced from tests.
func (pb *Problem) isValid() bool {
	if pb.rows < 0 || pb.rows > MaxRows || pb.cols < 0 || pb.cols > MaxCols {
		return false
	}
	if (pb.rows > 0) != (pb.cols > 0) {
		return false
	}
	if pb.equs > pb.rows {
		return false
	}
	nzRow, nzCol := 0, 0
	for r := 0; r < pb.rows; r++ {
		if pb.rhs[r] < minCoef || pb.rhs[r] > maxCoef {
			return false
		}
		for c := 0; c < pb.cols; c++ {
			if pb.coefs[r][c] < minCoef || pb.coefs[r][c] > maxCoef {
				return false
			}
			if pb.coefs[r][c] != 0 {
				nzRow++
			}
			if pb.byCol != nil && pb.byCol[c][r] != 0 {
				nzCol++
			}
		}
	}
	return pb.byCol == nil || nzRow == nzCol
}
