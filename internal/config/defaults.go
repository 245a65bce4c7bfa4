package config

// GetDefaultConfig returns the built-in configuration: the file -> system ->
// input fallback chain, tolerant parsing and info-level logging.
func GetDefaultConfig() Config {
	return Config{
		Order:    []string{"file", "system", "input"},
		LogLevel: "info",
	}
}
