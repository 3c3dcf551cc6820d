package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Davincible/gfpoly/pkg/config"
	"github.com/Davincible/gfpoly/pkg/gf256"
	"github.com/Davincible/gfpoly/pkg/polynomial"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	cmd := NewRootCommand(config.DefaultConfig(), "test")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestCalcCommand(t *testing.T) {
	t.Run("arguments", func(t *testing.T) {
		out, err := execute(t, "", "calc", "57", "83")
		require.NoError(t, err)
		assert.Contains(t, out, "0xD4")
		assert.Contains(t, out, "0xC1")
	})

	t.Run("stdin json", func(t *testing.T) {
		out, err := execute(t, "0x53 01\n", "calc", "--json")
		require.NoError(t, err)

		var result CalcResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, "0x53", result.A)
		assert.Equal(t, "0x52", result.Sum)
		assert.Equal(t, "0x53", result.Product)
		assert.Equal(t, "0xCA", result.Inverse)
		assert.Empty(t, result.Error)
	})

	t.Run("comma separated", func(t *testing.T) {
		out, err := execute(t, "", "--json", "calc", "57,83")
		require.NoError(t, err)

		var result CalcResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, "0xD4", result.Sum)
		assert.Equal(t, "0xC1", result.Product)
	})

	t.Run("zero has no inverse", func(t *testing.T) {
		out, err := execute(t, "", "calc", "00", "01")
		require.NoError(t, err)
		assert.Contains(t, out, "undefined")
	})

	invalid := []struct {
		name  string
		stdin string
		args  []string
	}{
		{"bad hex", "", []string{"calc", "zz", "01"}},
		{"too wide", "", []string{"calc", "100", "01"}},
		{"one token", "57\n", []string{"calc"}},
		{"three tokens", "57 83 01\n", []string{"calc"}},
		{"three args", "", []string{"calc", "57", "83", "01"}},
		{"one arg", "", []string{"calc", "57"}},
		{"empty line", "\n", []string{"calc"}},
	}

	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, tc.stdin, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, "Invalid Input\n", out)
		})
	}
}

func TestCalculate(t *testing.T) {
	for i := 1; i < gf256.Order; i += 17 {
		a := gf256.Element(i)
		result, ok := calculate(a.String() + " 02")
		require.True(t, ok)

		inv, err := a.Inverse()
		require.NoError(t, err)
		assert.Equal(t, inv.String(), result.Inverse)
		assert.Equal(t, gf256.Mul(a, 2).String(), result.Product)
	}
}

func TestFieldCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"add", []string{"field", "add", "57", "83"}, "0xD4\n"},
		{"mul", []string{"field", "mul", "0x57", "0x83"}, "0xC1\n"},
		{"div", []string{"field", "div", "c1", "83"}, "0x57\n"},
		{"inv", []string{"field", "inv", "53"}, "0xCA\n"},
		{"pow", []string{"field", "pow", "02", "8"}, "0x1B\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	t.Run("inverse of zero", func(t *testing.T) {
		_, err := execute(t, "", "field", "inv", "00")
		assert.ErrorIs(t, err, gf256.ErrZeroInverse)
	})

	t.Run("divide by zero", func(t *testing.T) {
		_, err := execute(t, "", "field", "div", "01", "00")
		assert.ErrorIs(t, err, gf256.ErrZeroInverse)
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, "", "-j", "field", "mul", "57", "83")
		require.NoError(t, err)

		var result FieldResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, FieldResult{Operation: "mul", Operands: []string{"0x57", "0x83"}, Result: "0xC1"}, result)
	})

	t.Run("bad operand", func(t *testing.T) {
		_, err := execute(t, "", "field", "add", "57", "xyz")
		assert.ErrorContains(t, err, "argument 2")
	})
}

func TestPolyCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"eval", []string{"poly", "eval", "03,05,07", "02"}, "0x15\n"},
		{"add", []string{"poly", "add", "03,05,07", "01,02"}, "0x02 + 0x07x^1 + 0x07x^2\n"},
		{"mul", []string{"poly", "mul", "03,05,07", "01,02"}, "0x03 + 0x03x^1 + 0x0Dx^2 + 0x0Ex^3\n"},
		{"scale", []string{"poly", "scale", "03 05 07", "02"}, "0x06 + 0x0Ax^1 + 0x0Ex^2\n"},
		{"cancel to zero", []string{"poly", "add", "01,02", "01,02"}, "0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	t.Run("json keeps trailing zeros", func(t *testing.T) {
		out, err := execute(t, "", "--json", "poly", "scale", "01,02,00", "03")
		require.NoError(t, err)

		var result PolynomialOutput
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, []string{"0x03", "0x06", "0x00"}, result.Coefficients)
		assert.Equal(t, 1, result.Degree)
	})

	t.Run("bad coefficients", func(t *testing.T) {
		_, err := execute(t, "", "poly", "eval", "03,,0g", "02")
		assert.ErrorContains(t, err, "invalid coefficients")
	})
}

func TestInterpolateCommand(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		out, err := execute(t, "", "--json", "interpolate", "--x", "01,02,03", "--y", "05,09,11", "--at", "02")
		require.NoError(t, err)

		var result InterpolateResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.True(t, result.Verified)
		assert.Len(t, result.Polynomial.Coefficients, 3)
		assert.Equal(t, "0x02", result.At)
		assert.Equal(t, "0x09", result.Value)
	})

	t.Run("text", func(t *testing.T) {
		out, err := execute(t, "", "interpolate", "--x", "01,02,03", "--y", "05,09,11")
		require.NoError(t, err)
		assert.Contains(t, out, "Lagrange Interpolation")
		assert.Contains(t, out, "reproduces every sample")
	})

	t.Run("repeated x", func(t *testing.T) {
		_, err := execute(t, "", "interpolate", "--x", "01,02,01", "--y", "05,09,11")
		assert.ErrorIs(t, err, polynomial.ErrDuplicatePoint)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := execute(t, "", "interpolate", "--x", "01,02,03", "--y", "05,09")
		assert.ErrorIs(t, err, polynomial.ErrLengthMismatch)
	})

	t.Run("missing flag", func(t *testing.T) {
		_, err := execute(t, "", "interpolate", "--x", "01")
		assert.Error(t, err)
	})
}

func TestExampleCommand(t *testing.T) {
	out, err := execute(t, "", "example")
	require.NoError(t, err)
	assert.Contains(t, out, "0x03 + 0x05x^1 + 0x07x^2")
	assert.Contains(t, out, "Interpolation verified")
}
