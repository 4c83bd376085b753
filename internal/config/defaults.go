package config

// DefaultConfig returns the configuration a loaderdemo run uses when no
// config file is present: a modest thread budget and one sample batch.
func DefaultConfig() *LoaderConfig {
	return &LoaderConfig{
		MaxThreads:      8,
		DefaultPriority: 0,
		Batches: map[string]BatchConfig{
			"demo": {
				Jobs:     []string{"load-schema", "load-tables", "load-indexes"},
				Priority: 0,
			},
		},
	}
}
