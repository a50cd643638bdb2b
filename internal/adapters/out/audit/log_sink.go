// Package audit records order state transitions to the structured log.
package audit

import (
	"context"
	"log/slog"

	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/core/domain/model/order"
)

// LogSink implements StateChangeSink by writing each transition to the
// structured log. Used as the default sink when no message broker is
// configured, and as the local audit trail alongside one.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a sink writing to the given logger.
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// StateChanged records one state transition.
func (s *LogSink) StateChanged(ctx context.Context, orderID kernel.UUID, change order.StateChange) {
	s.logger.InfoContext(ctx, "order state changed",
		"order_id", orderID.String(),
		"domain", string(change.Domain),
		"from", change.From,
		"to", change.To,
	)
}
