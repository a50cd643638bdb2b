// Package natsstan publishes order state change events to NATS Streaming.
package natsstan

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/core/domain/model/order"

	stan "github.com/nats-io/stan.go"
)

// stateChangeEvent is the wire format for a derived state transition.
type stateChangeEvent struct {
	OrderID    string    `json:"order_id"`
	Domain     string    `json:"domain"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher implements StateChangeSink over a NATS Streaming connection.
// Notifications are fire-and-forget: publish failures are logged and
// dropped, never surfaced into the recalculation transaction.
type Publisher struct {
	sc      stan.Conn
	subject string
	logger  *slog.Logger
}

// Connect dials the NATS Streaming cluster and returns a publisher bound to
// the given subject. The caller owns the connection and closes it via Close.
func Connect(clusterID, clientID, natsURL, subject string, logger *slog.Logger) (*Publisher, error) {
	sc, err := stan.Connect(clusterID, clientID, stan.NatsURL(natsURL))
	if err != nil {
		return nil, err
	}

	return &Publisher{
		sc:      sc,
		subject: subject,
		logger:  logger,
	}, nil
}

// StateChanged publishes one state transition event.
func (p *Publisher) StateChanged(_ context.Context, orderID kernel.UUID, change order.StateChange) {
	payload, err := json.Marshal(stateChangeEvent{
		OrderID:    orderID.String(),
		Domain:     string(change.Domain),
		From:       change.From,
		To:         change.To,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		p.logger.Error("failed to marshal state change event",
			"order_id", orderID.String(), "error", err)
		return
	}

	if err := p.sc.Publish(p.subject, payload); err != nil {
		p.logger.Error("failed to publish state change event",
			"order_id", orderID.String(), "subject", p.subject, "error", err)
	}
}

// Close shuts down the streaming connection.
func (p *Publisher) Close() error {
	return p.sc.Close()
}
