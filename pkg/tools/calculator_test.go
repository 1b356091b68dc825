package tools

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalExpression(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"2 + 3", 5},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"10 / 4", 2.5},
		{"10 % 3", 1},
		{"2^10", 1024},
		{"2^3^2", 512}, // right associative
		{"-2^2", -4},
		{"-(2 + 3)", -5},
		{"1.5e2 + 1", 151},
		{"sqrt(16)", 4},
		{"abs(-3.5)", 3.5},
		{"log10(1000)", 3},
		{"exp(0)", 1},
		{"round(2.6)", 3},
		{"floor(2.9)", 2},
		{"ceil(2.1)", 3},
		{"sqrt(4) + abs(-1) * 2", 4},
		{"pi", math.Pi},
		{"2 * pi", 2 * math.Pi},
		{"e", math.E},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := evalExpression(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEvalExpression_Errors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"empty", ""},
		{"division by zero", "1 / 0"},
		{"modulo by zero", "1 % 0"},
		{"unbalanced paren", "(1 + 2"},
		{"trailing garbage", "1 + 2 )"},
		{"unknown function", "cube(2)"},
		{"function without paren", "sqrt 4"},
		{"bare operator", "* 3"},
		{"log of zero is infinite", "log(0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := evalExpression(tt.expr)
			assert.Error(t, err)
		})
	}
}

func TestCalculatorTool_Execute(t *testing.T) {
	tool := NewCalculatorTool()
	assert.Equal(t, "calculator", tool.Name())

	result, err := tool.Execute(context.Background(), "mission-1", map[string]any{
		"expression": "sqrt(144) + 3",
	})
	require.NoError(t, err)

	out, ok := result.(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 15.0, out["result"].(float64), 1e-9)

	_, err = tool.Execute(context.Background(), "mission-1", map[string]any{})
	assert.ErrorIs(t, err, ErrInvalidArguments)

	_, err = tool.Execute(context.Background(), "mission-1", map[string]any{"expression": "1 +"})
	assert.Error(t, err)
}
