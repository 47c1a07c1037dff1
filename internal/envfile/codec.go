package envfile

import (
	"strings"
)

// LineKind is the classification of a single line of an env file.
type LineKind int

const (
	LineEntry LineKind = iota
	LineBlank
	LineComment
	LineIndented
	LineNoSeparator
)

const (
	commentMarker = "#"
	separator     = "="
)

// Classify decides how a line is treated by Parse. Only LineEntry lines carry data.
func Classify(line string) LineKind {
	switch {
	case line == "":
		return LineBlank
	case strings.HasPrefix(line, commentMarker):
		return LineComment
	case strings.HasPrefix(line, " "), strings.HasPrefix(line, "\t"):
		return LineIndented
	case !strings.Contains(line, separator):
		return LineNoSeparator
	default:
		return LineEntry
	}
}

// SplitEntry splits an entry line at its first "=".
func SplitEntry(line string) (key, value string) {
	key, value, _ = strings.Cut(line, separator)
	return key, value
}

// Parse builds a mapping from env file content. Non-entry lines are skipped and
// a repeated key keeps its last value.
func Parse(text string) *Mapping {
	m := NewMapping()
	for _, line := range strings.Split(text, "\n") {
		if Classify(line) != LineEntry {
			continue
		}
		m.Set(SplitEntry(line))
	}
	return m
}

// Serialize renders the mapping as KEY=value lines joined by "\n".
func Serialize(m *Mapping) string {
	lines := make([]string, 0, m.Len())
	for _, key := range m.keys {
		lines = append(lines, key+separator+m.values[key])
	}
	return strings.Join(lines, "\n")
}
