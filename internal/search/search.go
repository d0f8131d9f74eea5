package search

import "strings"

// Result is a single matching line together with its 1-based position in the
// searched text.
type Result struct {
	Line       string
	LineNumber int
}

// Search returns the lines of corpus that contain query as a substring, in
// original file order. With ignoreCase set, both the query and each line are
// lower-cased before matching. An empty query matches every line. A corpus
// with no matches yields an empty slice, never an error.
func Search(query, corpus string, ignoreCase bool) []Result {
	if ignoreCase {
		query = strings.ToLower(query)
	}

	results := make([]Result, 0)
	for i, line := range splitLines(corpus) {
		candidate := line
		if ignoreCase {
			candidate = strings.ToLower(candidate)
		}
		if strings.Contains(candidate, query) {
			results = append(results, Result{Line: line, LineNumber: i + 1})
		}
	}

	return results
}

// splitLines splits corpus on '\n' without emitting a phantom empty line
// after a trailing newline. A trailing '\r' is stripped from each line so
// CRLF files match the same as LF files.
func splitLines(corpus string) []string {
	if corpus == "" {
		return nil
	}

	lines := strings.Split(corpus, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	return lines
}
