/*
Package bip implements a brute-force feasibility enumerator for binary
programs, i.e problems of the form

	Ax (<=, >=, =) b,  x in {0,1}^n

with at most 32 variables and 128 constraints. Every one of the 2^n
candidate vectors is visited, and each feasible one is reported through
a callback.

Describing a problem

A problem can be described in two ways:

1. parse a BIP stream (io.Reader). If the io.Reader produces the following content:

	4          # cols (variables)
	3          # rows (constraints)
	2 3 5 4 <= 8
	3 6 0 8 <= 10
	0 0 1 1  = 1

the programmer can create the Problem by doing:

	pb, err := bip.ParseBIP(f)

Comments (everything from '#' to the end of the line) and blank lines
are ignored. Accepted senses are "<=", ">=", "=" and "==".

2. create the equivalent list of rows programmatically:

	rows := []bip.Row{
		{Coefs: []float64{2, 3, 5, 4}, Sense: bip.LE, RHS: 8},
		{Coefs: []float64{3, 6, 0, 8}, Sense: bip.LE, RHS: 10},
		{Coefs: []float64{0, 0, 1, 1}, Sense: bip.EQ, RHS: 1},
	}
	pb, err := bip.New(4, rows)

Enumerating the solutions

Before enumerating, the problem must be preprocessed exactly once.
Preprocessing reorders equations first, folds ">=" rows into "<=" form,
scales each row to integer coefficients and screens for numerical
overflow:

	if err := pb.Preprocess(); err != nil { ... }
	count := pb.Enumerate(func(pb *bip.Problem, x uint32) {
		// bit i of x is the value of variable i
	})

Enumerate visits the candidate vectors in Gray-code order, so two
consecutive vectors differ in exactly one bit and the constraint
activities can be updated incrementally. The callback may be nil, in
which case solutions are only counted.
*/
package bip
