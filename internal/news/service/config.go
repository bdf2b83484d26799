package service

// Config holds configuration for the news service.
type Config struct {
	// Sound enables the notification played when a message reaches the ticker.
	Sound bool `yaml:"sound"`
	// SoundPan is the horizontal screen position the notification plays at.
	SoundPan int32 `yaml:"sound_pan"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Sound:    true,
		SoundPan: 320,
	}
}
