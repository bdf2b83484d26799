package script

// Config holds configuration for the scripting message API.
type Config struct {
	// PostRate is how many messages per second scripts may post. Zero or
	// less disables the limit.
	PostRate float64 `yaml:"post_rate"`
	// PostBurst is how many messages may be posted back to back.
	PostBurst int `yaml:"post_burst"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		PostRate:  4,
		PostBurst: 8,
	}
}
