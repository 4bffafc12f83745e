package bip

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBIP(t *testing.T) {
	input := `# a small instance
4          # cols
3          # rows

2 3 5 4 <= 8
3 6 0 8 <= 10
0 0 1 1  = 1
`
	pb, err := ParseBIP(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 4, pb.Cols())
	require.Equal(t, 3, pb.Rows())
	require.Equal(t, LE, pb.Sense(0))
	require.Equal(t, LE, pb.Sense(1))
	require.Equal(t, EQ, pb.Sense(2))
	require.Equal(t, 8.0, pb.RHS(0))
	require.Equal(t, 10.0, pb.RHS(1))
	require.Equal(t, 1.0, pb.RHS(2))
	require.Equal(t, 5.0, pb.Coef(0, 2))
	require.Equal(t, 6.0, pb.Coef(1, 1))
	require.False(t, pb.Preprocessed())
	require.Equal(t, -1, pb.Equalities())
	require.True(t, pb.isValid())
}

func TestParseBIPSenses(t *testing.T) {
	input := `3
4
1 1 1 <= 2
1 1 1 >= 1
1 0 1 =  1
0 1 1 == 1
`
	pb, err := ParseBIP(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []Sense{LE, GE, EQ, EQ}, pb.senses)
}

func TestParseBIPErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty input", "", ErrUnexpectedEOF},
		{"only comments", "# nothing here\n\n", ErrUnexpectedEOF},
		{"cols only", "4\n", ErrUnexpectedEOF},
		{"missing rows", "4\n3\n2 3 5 4 <= 8\n", ErrUnexpectedEOF},
		{"zero cols", "0\n1\n<= 1\n", ErrRange},
		{"too many cols", "33\n1\n1 <= 1\n", ErrRange},
		{"zero rows", "2\n0\n", ErrRange},
		{"too many rows", "2\n129\n1 1 <= 1\n", ErrRange},
		{"cols not a number", "abc\n", ErrRange},
		{"cols not integral", "2.5\n", ErrRange},
		{"cols trailing garbage", "4x\n", ErrRange},
		{"two fields in cols line", "4 4\n", ErrFormat},
		{"too few fields in row", "2\n1\n1 <= 2\n", ErrFormat},
		{"too many fields in row", "2\n1\n1 1 1 <= 2\n", ErrFormat},
		{"bad sense", "2\n1\n1 1 < 2\n", ErrFormat},
		{"bad coefficient", "2\n1\n1 x <= 2\n", ErrRange},
		{"nan coefficient", "2\n1\nNaN 1 <= 2\n", ErrRange},
		{"inf coefficient", "2\n1\n+Inf 1 <= 2\n", ErrRange},
		{"coefficient too big", "2\n1\n1e99 1 <= 2\n", ErrRange},
		{"rhs too small", "2\n1\n1 1 <= -1e99\n", ErrRange},
		{"extra constraint row", "2\n1\n1 1 <= 2\n1 0 <= 1\n", ErrFormat},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseBIP(strings.NewReader(test.input))
			require.Error(t, err)
			require.ErrorIs(t, err, test.want)
		})
	}
}

func TestParseBIPErrorHasLineNumber(t *testing.T) {
	input := "2\n1\n1 1 < 2\n"
	_, err := ParseBIP(strings.NewReader(input))
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 3")
}

func TestLoadBIP(t *testing.T) {
	pb, err := LoadBIP("testdata/example.dat")
	require.NoError(t, err)
	require.Equal(t, 4, pb.Cols())
	require.Equal(t, 3, pb.Rows())
}

func TestLoadBIPMissingFile(t *testing.T) {
	_, err := LoadBIP("testdata/no-such-file.dat")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrFormat))
}

func TestSplitFields(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"   \t ", nil},
		{"# full line comment", nil},
		{"1 2 3", []string{"1", "2", "3"}},
		{"  1\t2  3  # trailing comment", []string{"1", "2", "3"}},
		{"1 2\r", []string{"1", "2"}},
	}
	for _, test := range tests {
		got := splitFields(test.line)
		if len(got) != len(test.want) {
			t.Errorf("splitFields(%q) = %v, want %v", test.line, got, test.want)
			continue
		}
		for i := range got {
			if got[i] != test.want[i] {
				t.Errorf("splitFields(%q) = %v, want %v", test.line, got, test.want)
			}
		}
	}
}
