package bip

import (
	"fmt"
	"math"

	"github.com/crillab/bipenum/logger"
)

// Preprocess turns a loaded problem into the form the enumerator works
// on. It
//   - screens every row for potential numerical overflow,
//   - reorders the rows so that equations come first,
//   - folds ">=" rows into "<=" form by negating them,
//   - scales each row by a power of ten so that all its coefficients
//     become integer,
//   - fills the column-major view of the matrix.
//
// It must be called exactly once, after loading and before Enumerate;
// calling it twice panics. The original row-major matrix is left
// untouched.
func (pb *Problem) Preprocess() error {
	if pb.Preprocessed() {
		panic("problem already preprocessed")
	}
	if err := pb.screenOverflow(); err != nil {
		return err
	}
	pb.byCol = make([][]float64, pb.cols)
	for c := range pb.byCol {
		pb.byCol[c] = make([]float64, pb.rows)
	}
	pb.rhsOrd = make([]float64, pb.rows)
	pb.equs = 0

	// Equations first, keeping their original relative order.
	cnt := 0
	for r := 0; r < pb.rows; r++ {
		if pb.senses[r] == EQ {
			pb.rhsOrd[cnt] = pb.rhs[r]
			for c := 0; c < pb.cols; c++ {
				pb.byCol[c][cnt] = pb.coefs[r][c]
			}
			pb.equs++
			cnt++
		}
	}
	// Then the inequalities. ">=" rows are multiplied by -1, so after
	// this loop every non-equation is a "<=" row.
	for r := 0; r < pb.rows; r++ {
		switch pb.senses[r] {
		case LE:
			pb.rhsOrd[cnt] = pb.rhs[r]
			for c := 0; c < pb.cols; c++ {
				pb.byCol[c][cnt] = pb.coefs[r][c]
			}
			cnt++
		case GE:
			pb.rhsOrd[cnt] = -pb.rhs[r]
			for c := 0; c < pb.cols; c++ {
				pb.byCol[c][cnt] = -pb.coefs[r][c]
			}
			cnt++
		case EQ: // already copied
		}
	}
	pb.scaleRows()
	return nil
}

// screenOverflow rejects rows whose coefficients could overflow the
// representable range when accumulated during enumeration. The running
// sums of positive and of negative coefficients are checked
// separately, on the original matrix, before any scaling happens.
func (pb *Problem) screenOverflow() error {
	for r := 0; r < pb.rows; r++ {
		var rowMax, rowMin float64
		for c := 0; c < pb.cols; c++ {
			val := pb.coefs[r][c]
			switch {
			case val > 0:
				if rowMax >= maxCoef-val {
					return fmt.Errorf("%w: row %d", ErrOverflow, r)
				}
				rowMax += val
			case val < 0:
				if rowMin <= minCoef-val {
					return fmt.Errorf("%w: row %d (negative)", ErrOverflow, r)
				}
				rowMin += val
			}
		}
	}
	return nil
}

// scaleRows multiplies each reordered row, right hand side included,
// by the smallest power of ten that makes every coefficient of the row
// integer. Feasibility checks during enumeration then compare exact
// integer values instead of drifting fractions.
func (pb *Problem) scaleRows() {
	log := logger.Logger()
	for r := 0; r < pb.rows; r++ {
		scale := 0.0
		for c := 0; c < pb.cols; c++ {
			frac := math.Abs(pb.byCol[c][r]) - math.Floor(math.Abs(pb.byCol[c][r]))
			if frac > 0 {
				if k := math.Ceil(-math.Log10(frac)); k > scale {
					scale = k
				}
			}
		}
		if scale > 0 {
			scale = math.Pow(10, scale)
			for c := 0; c < pb.cols; c++ {
				pb.byCol[c][r] *= scale
			}
			pb.rhsOrd[r] *= scale
			log.Debug().Int("row", r).Float64("factor", scale).Msg("scaled reordered row")
		}
	}
}
