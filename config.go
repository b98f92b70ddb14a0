package linegrep

// Config holds the settings for a single search run. It is constructed
// once at startup and read-only thereafter.
type Config struct {
	// Substring to search for.
	Query string `json:"query"`

	// Path of the file to search.
	Path string `json:"path"`

	// IgnoreCase selects case-insensitive matching. Resolved from the
	// environment at construction time; nothing downstream consults the
	// environment directly.
	IgnoreCase bool `json:"ignoreCase"`
}

// Validate returns an error if the config contains invalid fields.
func (c Config) Validate() error {
	if c.Query == "" {
		return Errorf(EINVALID, "search query required")
	}
	if c.Path == "" {
		return Errorf(EINVALID, "file path required")
	}
	return nil
}
