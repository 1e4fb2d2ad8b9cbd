package util

import (
	"strings"
)

// SplitCSV splits a comma separated query value, trimming blanks and dropping empty entries.
func SplitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}

// NormalizeTags trims tags and removes case-insensitive duplicates, keeping the
// first spelling and the original order.
func NormalizeTags(tags []string) []string {
	if tags == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}

		key := strings.ToLower(trimmed)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}

	return out
}

// LowerAll returns a lowercased copy of values.
func LowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}

	return out
}

// EscapeLike escapes the LIKE wildcards in s using backslash.
func EscapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
