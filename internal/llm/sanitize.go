package llm

import "strings"

// ExtractJSON pulls a JSON document out of a model reply. Models wrap JSON in
// code fences or prefix it with prose often enough that we always scan for the
// outermost object instead of trusting the raw reply.
func ExtractJSON(content string) []byte {
	s := strings.TrimSpace(content)

	// Strip a markdown code fence, with or without a language tag.
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return []byte(s)
	}
	var end int
	if s[start] == '{' {
		end = strings.LastIndex(s, "}")
	} else {
		end = strings.LastIndex(s, "]")
	}
	if end <= start {
		return []byte(s)
	}
	return []byte(s[start : end+1])
}
