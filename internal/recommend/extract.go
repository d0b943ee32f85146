package recommend

import "strings"

// ExtractJSON pulls the first balanced JSON object out of free-form
// model output. Models asked for JSON still wrap it in code fences or
// surrounding prose, so the extraction is deliberately tolerant: strip
// fences, then scan for the first `{...}` span with balanced braces
// (brace counting skips string literals). Returns ok=false when no
// balanced object is found.
func ExtractJSON(text string) (string, bool) {
	text = stripCodeFences(text)

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
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
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}

// stripCodeFences removes a leading/trailing markdown code fence pair,
// including a ```json language tag.
func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return text
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if nl := strings.IndexByte(trimmed, '\n'); nl >= 0 {
		// Drop the language tag line (e.g. "json").
		trimmed = trimmed[nl+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
