package watcher

import "time"

type Config struct {
	Enabled        bool          `json:"enabled"`
	DebounceWindow time.Duration `json:"debounce_window"`
	MaxBatchSize   int           `json:"max_batch_size"`
	IgnorePatterns []string      `json:"ignore_patterns"`
}

func DefaultConfig() Config {
	return Config{
		Enabled:        false,
		DebounceWindow: 300 * time.Millisecond,
		MaxBatchSize:   50,
		IgnorePatterns: []string{
			"**/.git/**",
			"**/.*",
			"**/*~",
			"**/*.swp",
			"**/*.tmp",
		},
	}
}
