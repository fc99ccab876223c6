package types

import "errors"

// Config holds settings for the catindex command.
type Config struct {
	TopK     int    `json:"top_k" yaml:"top_k"`
	Output   string `json:"output" yaml:"output"`
	LogLevel string `json:"log_level" yaml:"log_level"`
	Fixture  string `json:"fixture,omitempty" yaml:"fixture,omitempty"`
}

// Supported output modes.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Defaults applied when config.yaml omits a key.
const (
	DefaultTopK     = 3
	DefaultOutput   = OutputText
	DefaultLogLevel = "warn"
)

// Config validation errors.
var (
	ErrTopKInvalid     = errors.New("top_k must be positive")
	ErrOutputUnknown   = errors.New("unknown output mode")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

var knownOutputs = map[string]bool{
	OutputText: true,
	OutputJSON: true,
}

var knownLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() Config {
	return Config{
		TopK:     DefaultTopK,
		Output:   DefaultOutput,
		LogLevel: DefaultLogLevel,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.TopK <= 0 {
		return ErrTopKInvalid
	}
	if !knownOutputs[c.Output] {
		return ErrOutputUnknown
	}
	if !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	return nil
}
