package engine

// ============================================================================
// ENGINE OPTIONS — Functional options for BuildSnapshot / Keywords
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	KeywordLimit int             // top-N keywords to rank
	MinTokenLen  int             // tokens at or below this length are dropped
	StopWords    map[string]bool // tokens excluded from keyword analysis
}

// WithKeywordLimit overrides the number of ranked keywords (default 15).
func WithKeywordLimit(limit int) Option {
	return func(c *config) {
		if limit > 0 {
			c.KeywordLimit = limit
		}
	}
}

// WithStopWords replaces the built-in stop-word set.
func WithStopWords(words []string) Option {
	return func(c *config) {
		set := make(map[string]bool, len(words))
		for _, w := range words {
			set[w] = true
		}
		c.StopWords = set
	}
}

// WithMinTokenLength overrides the minimum token length (default: tokens
// of length <= 2 are dropped).
func WithMinTokenLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.MinTokenLen = n
		}
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		KeywordLimit: defaultKeywordLimit,
		MinTokenLen:  defaultMinTokenLen,
		StopWords:    defaultStopWords,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
