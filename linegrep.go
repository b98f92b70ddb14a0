// Package linegrep provides a minimal line-oriented text search tool.
// Given a query string and a file path it reports every line of the file
// containing the query, with optional case-insensitive matching.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories (e.g.,
// search/, fs/, slog/).
package linegrep
