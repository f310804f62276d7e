// Package tagpix views a folder of images one at a time and keeps freeform
// tags for each image in a sibling text file.
package tagpix

// DefaultMaxSize is the length of the longer preview side, in pixels.
var DefaultMaxSize = 800

// DefaultPresets are the tags offered as one-click buttons.
var DefaultPresets = []string{"1girl", "smile", "standing"}

// Config holds configuration for tagpix.
type Config struct {
	// MaxSize is the length of the longer side of a rendered preview.
	MaxSize int
	// Presets are literal tags offered as buttons. May be empty.
	Presets []string
}

// DefaultConfig returns a Config with the default preview size and presets.
func DefaultConfig() *Config {
	return &Config{
		MaxSize: DefaultMaxSize,
		Presets: append([]string{}, DefaultPresets...),
	}
}

// PreviewSize returns MaxSize, or DefaultMaxSize when unset.
func (c *Config) PreviewSize() int {
	if c == nil || c.MaxSize <= 0 {
		return DefaultMaxSize
	}
	return c.MaxSize
}
