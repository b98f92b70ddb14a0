package linegrep

// Searcher finds the lines of a document that contain a query string.
type Searcher interface {
	// Search returns every line of text containing query as a contiguous
	// substring, in source order, with duplicates preserved. An empty
	// query matches every line. Search is pure: it never errors and
	// identical inputs yield identical results.
	Search(query, text string, ignoreCase bool) []string
}
