package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONWithRepair(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantOK       bool
		wantRepaired bool
		check        func(t *testing.T, v any)
	}{
		{
			name:         "clean object",
			input:        `{"a": 1, "b": "two"}`,
			wantOK:       true,
			wantRepaired: false,
			check: func(t *testing.T, v any) {
				obj := v.(map[string]any)
				assert.Equal(t, float64(1), obj["a"])
				assert.Equal(t, "two", obj["b"])
			},
		},
		{
			name:         "clean array",
			input:        `[1, 2, 3]`,
			wantOK:       true,
			wantRepaired: false,
			check: func(t *testing.T, v any) {
				assert.Len(t, v.([]any), 3)
			},
		},
		{
			name:         "object wrapped in prose",
			input:        `Sure! Here is the plan: {"title": "Intro", "sections": []} Let me know.`,
			wantOK:       true,
			wantRepaired: true,
			check: func(t *testing.T, v any) {
				assert.Equal(t, "Intro", v.(map[string]any)["title"])
			},
		},
		{
			name:         "fenced json block",
			input:        "```json\n{\"key\": \"value\"}\n```",
			wantOK:       true,
			wantRepaired: true,
			check: func(t *testing.T, v any) {
				assert.Equal(t, "value", v.(map[string]any)["key"])
			},
		},
		{
			name:         "fenced block without language tag",
			input:        "```\n[\"a\", \"b\"]\n```",
			wantOK:       true,
			wantRepaired: true,
			check: func(t *testing.T, v any) {
				assert.Equal(t, []any{"a", "b"}, v.([]any))
			},
		},
		{
			name:         "trailing comma repaired",
			input:        `{"items": [1, 2, 3,],}`,
			wantOK:       true,
			wantRepaired: true,
			check: func(t *testing.T, v any) {
				assert.Len(t, v.(map[string]any)["items"].([]any), 3)
			},
		},
		{
			name:         "single quotes repaired",
			input:        `{'name': 'value'}`,
			wantOK:       true,
			wantRepaired: true,
			check: func(t *testing.T, v any) {
				assert.Equal(t, "value", v.(map[string]any)["name"])
			},
		},
		{
			name:         "braces inside strings do not confuse extraction",
			input:        `prefix {"text": "a } inside", "n": 2} suffix`,
			wantOK:       true,
			wantRepaired: true,
			check: func(t *testing.T, v any) {
				obj := v.(map[string]any)
				assert.Equal(t, "a } inside", obj["text"])
				assert.Equal(t, float64(2), obj["n"])
			},
		},
		{
			name:         "nested stringified json expanded",
			input:        `{"outer": "{\"inner\": 42}"}`,
			wantOK:       true,
			wantRepaired: false,
			check: func(t *testing.T, v any) {
				inner := v.(map[string]any)["outer"].(map[string]any)
				assert.Equal(t, float64(42), inner["inner"])
			},
		},
		{
			name:         "lone string stays a string",
			input:        `"plain answer"`,
			wantOK:       true,
			wantRepaired: false,
			check: func(t *testing.T, v any) {
				assert.Equal(t, "plain answer", v)
			},
		},
		{
			name:   "pure prose fails",
			input:  "I could not produce a structured answer.",
			wantOK: false,
		},
		{
			name:   "empty input fails",
			input:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, repaired, ok := parseJSONWithRepair(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantRepaired, repaired)
			if tt.check != nil {
				tt.check(t, v)
			}
		})
	}
}

func TestExtractBalancedJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"object in prose", `before {"a":1} after`, `{"a":1}`},
		{"array in prose", `result: [1,2] done`, `[1,2]`},
		{"nested braces", `{"a":{"b":2}}`, `{"a":{"b":2}}`},
		{"escaped quote in string", `{"a":"x\"}y"}`, `{"a":"x\"}y"}`},
		{"unbalanced", `{"a":1`, ""},
		{"no json", "plain text", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractBalancedJSON(tt.input))
		})
	}
}

func TestCoerceToSchema(t *testing.T) {
	objSchema := map[string]any{
		"type":     "object",
		"required": []any{"content", "score"},
		"properties": map[string]any{
			"content": map[string]any{"type": "string"},
			"score":   map[string]any{"type": "number"},
		},
	}

	t.Run("string coerced into first required string property", func(t *testing.T) {
		got := coerceToSchema(objSchema, "raw text")
		assert.Equal(t, map[string]any{"content": "raw text"}, got)
	})

	t.Run("non-string passes through", func(t *testing.T) {
		v := map[string]any{"content": "x"}
		assert.Equal(t, v, coerceToSchema(objSchema, v))
	})

	t.Run("non-object schema passes through", func(t *testing.T) {
		arrSchema := map[string]any{"type": "array"}
		assert.Equal(t, "raw", coerceToSchema(arrSchema, "raw"))
	})

	t.Run("no required string property passes through", func(t *testing.T) {
		numSchema := map[string]any{
			"type":     "object",
			"required": []any{"count"},
			"properties": map[string]any{
				"count": map[string]any{"type": "number"},
			},
		}
		assert.Equal(t, "raw", coerceToSchema(numSchema, "raw"))
	})

	t.Run("nil schema passes through", func(t *testing.T) {
		assert.Equal(t, "raw", coerceToSchema(nil, "raw"))
	})
}
