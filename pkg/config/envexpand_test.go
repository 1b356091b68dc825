package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "simple substitution",
			input: "api_key: {{.TAVILY_API_KEY}}",
			env:   map[string]string{"TAVILY_API_KEY": "tvly-secret"},
			want:  "api_key: tvly-secret",
		},
		{
			name:  "multiple variables in one value",
			input: "dsn: {{.DB_USER}}@{{.DB_HOST}}:{{.DB_PORT}}",
			env: map[string]string{
				"DB_USER": "maestro",
				"DB_HOST": "localhost",
				"DB_PORT": "5432",
			},
			want: "dsn: maestro@localhost:5432",
		},
		{
			name:  "missing variable expands to empty",
			input: "endpoint: {{.NOT_SET_ANYWHERE}}",
			env:   map[string]string{},
			want:  "endpoint: ",
		},
		{
			name:  "literal ${VAR} is not expanded",
			input: `pattern: "user_${USER_ID}_.*"`,
			env:   map[string]string{"USER_ID": "123"},
			want:  `pattern: "user_${USER_ID}_.*"`,
		},
		{
			name:  "literal dollar in regex preserved",
			input: `pattern: "^secret.*$"`,
			env:   map[string]string{},
			want:  `pattern: "^secret.*$"`,
		},
		{
			name:  "special characters in expanded value",
			input: "password: {{.DB_PASSWORD}}",
			env:   map[string]string{"DB_PASSWORD": "p@ss$w0rd!#"},
			want:  "password: p@ss$w0rd!#",
		},
		{
			name: "nested YAML document",
			input: "llm_providers:\n" +
				"  default:\n" +
				"    base_url: {{.LLM_BASE_URL}}\n" +
				"    api_key_env: OPENAI_API_KEY\n",
			env: map[string]string{"LLM_BASE_URL": "https://api.example.com/v1"},
			want: "llm_providers:\n" +
				"  default:\n" +
				"    base_url: https://api.example.com/v1\n" +
				"    api_key_env: OPENAI_API_KEY\n",
		},
		{
			name:  "no template syntax passes through",
			input: "# comment\nstatic: value\n",
			env:   map[string]string{"UNUSED": "x"},
			want:  "# comment\nstatic: value\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, string(ExpandEnv([]byte(tt.input))))
		})
	}
}

func TestExpandEnvMalformedTemplatePassesThrough(t *testing.T) {
	// Malformed template syntax must not expand anything and must return the
	// input unchanged; the YAML parser downstream produces the real error.
	t.Setenv("TAVILY_API_KEY", "should-not-appear")

	inputs := []string{
		"api_key: {{.TAVILY_API_KEY",
		"api_key: {{",
		"api_key: }}.TAVILY_API_KEY{{",
		"api_key: {{.TAVILY_API_KEY | upper}}",
		"api_key: {{}}",
		"k1: {{.A\nk2: {{.B}",
	}
	for _, input := range inputs {
		result := ExpandEnv([]byte(input))
		assert.Equal(t, input, string(result))
		assert.NotContains(t, string(result), "should-not-appear")
	}
}

func TestExpandEnvMalformedTemplateStillParsesAsYAML(t *testing.T) {
	// A malformed template inside a quoted string stays a string literal and
	// the document remains valid YAML.
	t.Setenv("TAVILY_API_KEY", "x")

	input := "host: localhost\napi_key: \"{{.TAVILY_API_KEY\"\nport: 8080\n"
	expanded := ExpandEnv([]byte(input))

	var doc map[string]any
	assert.NoError(t, yaml.Unmarshal(expanded, &doc))
	assert.Equal(t, "{{.TAVILY_API_KEY", doc["api_key"])
}

func TestExpandEnvConcurrent(t *testing.T) {
	// Each call builds its own template and env snapshot, so concurrent
	// expansion of the same input must be race-free and deterministic.
	t.Setenv("DB_HOST", "localhost")
	input := []byte("host: {{.DB_HOST}}")

	const goroutines = 50
	results := make([]string, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = string(ExpandEnv(input))
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "host: localhost", r)
	}
}
