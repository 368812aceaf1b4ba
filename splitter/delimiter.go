package splitter

import "strings"

// SplitTextWithDelimiter splits the given text on a literal delimiter.
// Unlike ChunkText this produces no overlap; it is a pre-split step for
// callers that want paragraph or section boundaries before windowing.
func SplitTextWithDelimiter(text string, delimiter string) []string {
	return strings.Split(text, delimiter)
}

// ExtractFirstNonEmptyLines extracts the first N non-empty lines from a text,
// joined by newlines. Used to build short previews of loaded documents.
func ExtractFirstNonEmptyLines(text string, n int) string {
	if text == "" || n <= 0 {
		return ""
	}

	lines := strings.Split(text, "\n")
	nonEmptyLines := make([]string, 0, n)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			nonEmptyLines = append(nonEmptyLines, trimmed)
			if len(nonEmptyLines) >= n {
				break
			}
		}
	}

	return strings.Join(nonEmptyLines, "\n")
}
