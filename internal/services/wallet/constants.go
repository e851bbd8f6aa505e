package wallet

import "time"

// SystemActor is recorded on audit entries when no caller actor is set.
const SystemActor = "system"

// Default configuration values
const (
	DefaultCacheTTL = 5 * time.Minute
)

// Cache key prefix for balance reads.
const balanceCachePrefix = "balance"
