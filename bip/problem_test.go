package bip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pb, err := New(2, []Row{
		{Coefs: []float64{1, 2}, Sense: LE, RHS: 3},
		{Coefs: []float64{0, 1}, Sense: EQ, RHS: 1},
	})
	require.NoError(t, err)
	require.Equal(t, 2, pb.Cols())
	require.Equal(t, 2, pb.Rows())
	require.Equal(t, 2.0, pb.Coef(0, 1))
	require.Equal(t, EQ, pb.Sense(1))
	require.True(t, pb.isValid())
}

func TestNewCopiesCoefs(t *testing.T) {
	coefs := []float64{1, 2}
	pb, err := New(2, []Row{{Coefs: coefs, Sense: LE, RHS: 3}})
	require.NoError(t, err)
	coefs[0] = 42
	require.Equal(t, 1.0, pb.Coef(0, 0))
}

func TestNewErrors(t *testing.T) {
	row := Row{Coefs: []float64{1}, Sense: LE, RHS: 1}
	tests := []struct {
		name string
		cols int
		rows []Row
		want error
	}{
		{"zero cols", 0, []Row{row}, ErrRange},
		{"too many cols", 33, nil, ErrRange},
		{"no rows", 1, nil, ErrRange},
		{"too many rows", 1, make([]Row, 129), ErrRange},
		{"coef count mismatch", 2, []Row{row}, ErrFormat},
		{"bad sense", 1, []Row{{Coefs: []float64{1}, Sense: Sense(7), RHS: 1}}, ErrFormat},
		{"coef out of range", 1, []Row{{Coefs: []float64{2e15}, Sense: LE, RHS: 1}}, ErrRange},
		{"rhs out of range", 1, []Row{{Coefs: []float64{1}, Sense: LE, RHS: -2e15}}, ErrRange},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := New(test.cols, test.rows)
			require.Error(t, err)
			require.ErrorIs(t, err, test.want)
		})
	}
}

func TestSenseString(t *testing.T) {
	require.Equal(t, "<=", LE.String())
	require.Equal(t, ">=", GE.String())
	require.Equal(t, "==", EQ.String())
	require.Panics(t, func() { _ = Sense(9).String() })
}

func TestProblemString(t *testing.T) {
	pb, err := New(2, []Row{
		{Coefs: []float64{2, 3}, Sense: LE, RHS: 8},
		{Coefs: []float64{1, 0}, Sense: GE, RHS: 1},
		{Coefs: []float64{0, 1}, Sense: EQ, RHS: 1},
	})
	require.NoError(t, err)
	want := "2 3 <= 8\n1 0 >= 1\n0 1 == 1\n"
	require.Equal(t, want, pb.String())
}
