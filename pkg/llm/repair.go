package llm

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

var fencedBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// parseJSONWithRepair recovers a JSON value from raw model output.
//
// Pipeline, cheapest first:
//  1. strict parse of the whole text
//  2. first balanced JSON object/array embedded in the text (reasoning
//     models often wrap JSON in prose)
//  3. fenced code blocks
//  4. jsonrepair over the best candidate
//
// After any successful parse, nested stringified JSON is expanded in place.
// The boolean reports whether repair was needed (false for a clean strict
// parse).
func parseJSONWithRepair(text string) (any, bool, bool) {
	trimmed := strings.TrimSpace(text)

	var v any
	if err := json.Unmarshal([]byte(trimmed), &v); err == nil {
		return expandNestedJSON(v), false, true
	}

	candidates := make([]string, 0, 4)
	if c := extractBalancedJSON(trimmed); c != "" {
		candidates = append(candidates, c)
	}
	for _, m := range fencedBlockRe.FindAllStringSubmatch(trimmed, -1) {
		block := strings.TrimSpace(m[1])
		if block != "" {
			candidates = append(candidates, block)
		}
	}

	for _, c := range candidates {
		if err := json.Unmarshal([]byte(c), &v); err == nil {
			return expandNestedJSON(v), true, true
		}
	}

	// Last resort: jsonrepair on the extracted candidate, then on the raw text.
	for _, c := range append(candidates, trimmed) {
		repaired, err := jsonrepair.JSONRepair(c)
		if err != nil {
			continue
		}
		if err := json.Unmarshal([]byte(repaired), &v); err == nil {
			return expandNestedJSON(v), true, true
		}
	}

	return nil, false, false
}

// extractBalancedJSON returns the first balanced {...} or [...] span in the
// text, respecting strings and escapes. Empty when none is found.
func extractBalancedJSON(text string) string {
	start := -1
	var open, close byte
	for i := 0; i < len(text); i++ {
		if text[i] == '{' {
			start, open, close = i, '{', '}'
			break
		}
		if text[i] == '[' {
			start, open, close = i, '[', ']'
			break
		}
	}
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}

// expandNestedJSON walks the value and replaces string leaves that are
// themselves serialized JSON objects/arrays with their parsed form. Models
// under strict-output pressure often double-encode nested structures.
func expandNestedJSON(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = expandNestedJSON(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = expandNestedJSON(val)
		}
		return t
	case string:
		s := strings.TrimSpace(t)
		if len(s) < 2 {
			return t
		}
		if (s[0] == '{' && s[len(s)-1] == '}') || (s[0] == '[' && s[len(s)-1] == ']') {
			var nested any
			if err := json.Unmarshal([]byte(s), &nested); err == nil {
				return expandNestedJSON(nested)
			}
		}
		return t
	default:
		return v
	}
}

// coerceToSchema converts a lone string into the object shape the schema
// expects, when that conversion is unambiguous: the schema must describe an
// object and name at least one required string property; the string becomes
// the first required property's value. Returns the input unchanged otherwise.
func coerceToSchema(schema map[string]any, v any) any {
	s, ok := v.(string)
	if !ok || schema == nil {
		return v
	}
	if t, _ := schema["type"].(string); t != "object" {
		return v
	}
	required, _ := schema["required"].([]any)
	props, _ := schema["properties"].(map[string]any)
	for _, r := range required {
		name, ok := r.(string)
		if !ok {
			continue
		}
		prop, _ := props[name].(map[string]any)
		if pt, _ := prop["type"].(string); pt == "string" {
			return map[string]any{name: s}
		}
	}
	return v
}
