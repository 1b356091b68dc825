package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountTokens(t *testing.T) {
	assert.Equal(t, 0, countTokens(""))
	assert.Greater(t, countTokens("hello world"), 0)

	short := countTokens("one sentence.")
	long := countTokens(strings.Repeat("a longer passage of text. ", 50))
	assert.Greater(t, long, short)
}

func TestEstimateTokensFast(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"whitespace only", "   \n\t", 0},
		{"single char", "x", 1},
		{"word count wins for short words", "a b c d e f", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, estimateTokensFast(tt.input))
		})
	}

	// Long unbroken text falls back to the rune/4 estimate.
	assert.Equal(t, 25, estimateTokensFast(strings.Repeat("x", 100)))
}
