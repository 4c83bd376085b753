package config

// BatchConfig names a set of jobs that should be scheduled together at
// a given priority. The loaderdemo command reads these to let an
// operator describe a batch by name on the command line instead of
// listing job names every time.
type BatchConfig struct {
	Jobs     []string `json:"jobs"`
	Priority int      `json:"priority,omitempty"`
}

// LoaderConfig is the top-level configuration for a Loader instance
// and its demo harness.
type LoaderConfig struct {
	MaxThreads      int                    `json:"max_threads"`
	DefaultPriority int                    `json:"default_priority"`
	Batches         map[string]BatchConfig `json:"batches"`
}
