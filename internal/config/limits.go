package config

const (
	// MaxNavigationDepth bounds NAV_MAX_DEPTH. The builder itself is
	// depth-unbounded; this only limits the optional truncation policy.
	MaxNavigationDepth = 32

	// MaxContentFiles caps how many markdown files one content load reads.
	MaxContentFiles = 10000

	// MaxRequestBodyBytes limits item arrays posted to the build/lint endpoints.
	MaxRequestBodyBytes = 10 << 20

	// DefaultLogMaxFiles is how many timestamped log files are kept.
	DefaultLogMaxFiles = 10
)
