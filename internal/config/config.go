package config

import "time"

// ConvertSettings holds the parameters of the response-to-SRT conversion.
type ConvertSettings struct {
	// ResponseMarker is the literal substring stripped from an input
	// filename when deriving the output path. Removal is case-sensitive
	// and applies to the first occurrence only.
	ResponseMarker string

	// OutputExtension replaces the input file extension on the output path.
	OutputExtension string
}

// Config holds the full application configuration.
type Config struct {
	ConvertSettings

	// Jobs is the number of files converted concurrently; 1 keeps the
	// strict glob ordering of the sequential batch loop.
	Jobs int

	// WatchSettleDelay is how long watch mode waits after a file appears
	// before reading it, so the writer can finish.
	WatchSettleDelay time.Duration
}

// Default returns a Config with the built-in defaults. There is no config
// file and no environment lookup; command-line flags are the only override.
func Default() *Config {
	return &Config{
		ConvertSettings: ConvertSettings{
			ResponseMarker:  "_response",
			OutputExtension: ".srt",
		},
		Jobs:             1,
		WatchSettleDelay: 500 * time.Millisecond,
	}
}
