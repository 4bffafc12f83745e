package bip

// deBruijn32 is a De Bruijn sequence constant: multiplying a power of
// two by it and keeping the top five bits yields a perfect hash of the
// position of the set bit.
// See http://en.wikipedia.org/wiki/De_Bruijn_sequence
const deBruijn32 = 0x077CB531

// index32 maps the De Bruijn hash back to the bit position.
var index32 = [32]uint32{
	0, 1, 28, 2, 29, 14, 24, 3, 30, 22, 20, 15, 25, 17, 4, 8,
	31, 27, 13, 23, 21, 19, 16, 7, 26, 12, 18, 6, 11, 5, 10, 9,
}

// bitIndex returns the position of the single set bit of mask.
// mask must be a power of two.
func bitIndex(mask uint32) uint32 {
	return index32[mask*deBruijn32>>27]
}

// eqTol is the tolerance on equality rows. All coefficients were
// scaled to integer values, so any real violation is at least 1.
const eqTol = 1e-6

// A ReportFunc is called once per feasible solution found, with the
// solution as a bit vector: bit i holds the value of variable i, bit 0
// being the first variable. It must not mutate the problem.
type ReportFunc func(pb *Problem, x uint32)

// Enumerate visits all 2^cols candidate vectors and calls report for
// each feasible one, in Gray-code order. Consecutive vectors differ in
// exactly one bit, so each step updates the row residuals with a
// single column instead of recomputing a full dot product.
//
// The problem must have been preprocessed; Enumerate panics otherwise.
// If report is nil, solutions are only counted. Returns the number of
// feasible solutions.
func (pb *Problem) Enumerate(report ReportFunc) uint64 {
	if !pb.Preprocessed() {
		panic("enumerate called on a problem that was not preprocessed")
	}
	cols := pb.cols
	rows := pb.rows
	if cols == 0 {
		return 0
	}
	var (
		count uint64
		x     uint32     // current bit vector
		n     uint32 = 1 // node number
	)
	// Residuals: sum of active coefficients minus rhs, per reordered
	// row. Allocated once; the loop below never allocates.
	r := make([]float64, rows)
	for k := 0; k < rows; k++ {
		r[k] = -pb.rhsOrd[k]
	}
	// Check whether the all-zero vector is feasible.
	if pb.feasible(r) {
		count++
		if report != nil {
			report(pb, x)
		}
	}
	// Starting with x = 0000, n = 0001, negn = 1111, the loop visits
	// all remaining vectors with one bit flip per step:
	//   1. updatemask = n & negn (always exactly one bit set)
	//   2. recover the flipped column index from updatemask
	//   3. n++, negn--, x ^= updatemask
	//   4. add or subtract that column from the residuals and check
	//   5. as long as negn != 0, goto 1.
	// The x vectors are thereby scanned in the order
	//   0000, 0001, 0011, 0010, 0110, 0111, 0101, 0100,
	//   1100, 1101, 1111, 1110, 1010, 1011, 1001, 1000
	negn := uint32(1) << (cols - 1)
	negn += negn - 1

	for negn != 0 {
		updatemask := n & negn
		col := pb.byCol[bitIndex(updatemask)]
		n++
		negn--
		x ^= updatemask
		if x&updatemask != 0 { // bit flipped 0 -> 1
			for k := 0; k < rows; k++ {
				r[k] += col[k]
			}
		} else { // bit flipped 1 -> 0
			for k := 0; k < rows; k++ {
				r[k] -= col[k]
			}
		}
		if pb.feasible(r) {
			count++
			if report != nil {
				report(pb, x)
			}
		}
	}
	return count
}

// feasible checks a residual vector: the equations first (they were
// reordered to the front), then the "<=" rows. Short-circuits on the
// first violated row.
func (pb *Problem) feasible(r []float64) bool {
	k := 0
	for ; k < pb.equs; k++ {
		if r[k] < -eqTol || r[k] > eqTol {
			return false
		}
	}
	for ; k < pb.rows; k++ {
		if r[k] > 0 {
			return false
		}
	}
	return true
}
