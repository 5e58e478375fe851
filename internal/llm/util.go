// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

// jsonObjectPattern greedily matches the leftmost '{' through the rightmost
// '}' of a newline-flattened response.
var jsonObjectPattern = regexp.MustCompile(`\{.*\}`)

// ExtractJSONObject pulls a JSON object out of a free-form LLM response.
//
// The fallback chain is deliberate and load-bearing: (1) flatten newlines to
// spaces, (2) greedily match the first brace-delimited block and try to parse
// it, (3) on failure try to parse the entire original text, (4) on any
// failure return an empty map. It never returns nil and never errors;
// callers treat missing keys via defaults.
func ExtractJSONObject(text string) map[string]any {
	flattened := strings.ReplaceAll(text, "\n", " ")
	if block := jsonObjectPattern.FindString(flattened); block != "" {
		var out map[string]any
		if err := json.Unmarshal([]byte(block), &out); err == nil && out != nil {
			return out
		}
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(text), &out); err == nil && out != nil {
		return out
	}

	return map[string]any{}
}

// CleanJSONBlock removes markdown code block wrappers from JSON responses.
// LLMs often wrap JSON in ```json ... ``` blocks even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// Handle generic ``` ... ``` blocks
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}
