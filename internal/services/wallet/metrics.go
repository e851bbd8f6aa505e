package wallet

import (
	"time"

	"github.com/google/uuid"
)

// MetricsCollector defines the interface for collecting wallet metrics
type MetricsCollector interface {
	RecordOperationDuration(operation string, duration time.Duration)
	RecordBalanceChange(accountID uuid.UUID, oldBalance, newBalance int64)
	RecordError(operation, errType string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordOperationDuration(string, time.Duration) {}
func (n *NoopMetricsCollector) RecordBalanceChange(uuid.UUID, int64, int64)   {}
func (n *NoopMetricsCollector) RecordError(string, string)                    {}
