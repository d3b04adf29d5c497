package calc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	t.Parallel()

	cases := []struct {
		op   Operator
		a, b float64
		want float64
	}{
		{None, 3, 4, 4},
		{Add, 3, 4, 7},
		{Subtract, 3, 4, -1},
		{Multiply, 3, 4, 12},
		{Divide, 3, 4, 0.75},
	}
	for _, tc := range cases {
		got, err := Apply(tc.op, tc.a, tc.b)
		require.NoError(t, err, tc.op.String())
		require.Equal(t, tc.want, got, tc.op.String())
	}
}

func TestApplyDivisionByZero(t *testing.T) {
	t.Parallel()

	_, err := Apply(Divide, 5, 0)
	require.ErrorIs(t, err, ErrDivisionByZero)

	got, err := Apply(Divide, 0, 5)
	require.NoError(t, err)
	require.Zero(t, got)
}

func TestApplyUnknownOperator(t *testing.T) {
	t.Parallel()

	_, err := Apply(Operator(42), 1, 2)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrDivisionByZero)
}

func TestOperatorSymbols(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", None.Symbol())
	require.Equal(t, "+", Add.Symbol())
	require.Equal(t, "-", Subtract.Symbol())
	require.Equal(t, "×", Multiply.Symbol())
	require.Equal(t, "÷", Divide.Symbol())
}

func TestParseOperator(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Operator{
		"add": Add, "+": Add, " Plus ": Add,
		"-": Subtract, "minus": Subtract,
		"x": Multiply, "*": Multiply, "×": Multiply,
		"/": Divide, "÷": Divide, "div": Divide,
	} {
		got, err := ParseOperator(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseOperator("pow")
	require.Error(t, err)
}

func TestModeString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "entering", EnteringNumber.String())
	require.Equal(t, "operator", OperatorSelected.String())
	require.Equal(t, "result", ShowingResult.String())
	require.Equal(t, "mode(9)", Mode(9).String())
}
