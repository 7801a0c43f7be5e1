package config

// Flag tokens recognised after the two positional arguments
const (
	FlagIgnoreCase      = "--ignore-case"
	FlagIgnoreCaseShort = "-i"
)

// Config holds the search options parsed from the command line.
// It is a value type; once built it is only read.
type Config struct {
	IgnoreCase bool // ASCII case-insensitive matching
}

// Default returns the configuration used when no flag tokens are given
func Default() Config {
	return Config{}
}

// FromArgs builds a Config from the tokens following the file path and
// search term. Unrecognised tokens are ignored.
func FromArgs(tokens []string) Config {
	cfg := Default()
	for _, tok := range tokens {
		switch tok {
		case FlagIgnoreCase, FlagIgnoreCaseShort:
			cfg.IgnoreCase = true
		}
	}
	return cfg
}

// WithIgnoreCase returns a copy of c with case-insensitive matching enabled
func (c Config) WithIgnoreCase() Config {
	c.IgnoreCase = true
	return c
}
