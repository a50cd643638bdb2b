package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"orderstate/internal/core/application/usecases/commands"
	"orderstate/internal/core/domain/model/kernel"
	"orderstate/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// OrderReconciliationJob periodically re-derives state for recently mutated
// orders. It repairs drift caused by out-of-band data changes that never
// went through a command handler, such as manual database fixes.
//
// Each run covers orders touched since the previous run's cutoff, with a
// small overlap so a row committed right at the boundary is never skipped.
// Recalculation is idempotent, so reprocessing an order is harmless.
type OrderReconciliationJob struct {
	touchedOrders TouchedOrdersSource
	handler       commands.RecalculateOrderCommandHandler
	cron          *cron.Cron
	logger        *slog.Logger

	mu    sync.Mutex
	since time.Time
}

// TouchedOrdersSource lists orders whose rows changed after an instant.
type TouchedOrdersSource interface {
	GetTouchedSince(ctx context.Context, since time.Time) ([]kernel.UUID, error)
}

// NewOrderReconciliationJob creates a reconciliation job running every minute.
func NewOrderReconciliationJob(
	touchedOrders TouchedOrdersSource,
	handler commands.RecalculateOrderCommandHandler,
	logger *slog.Logger,
) *OrderReconciliationJob {
	return &OrderReconciliationJob{
		touchedOrders: touchedOrders,
		handler:       handler,
		cron:          cron.New(),
		logger:        logger.With("component", "order_reconciliation_job"),
		since:         time.Now().UTC().Add(-time.Minute),
	}
}

// Start begins the reconciliation job to run every minute.
func (j *OrderReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		j.runOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *OrderReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order reconciliation job stopped")
}

func (j *OrderReconciliationJob) runOnce(ctx context.Context) {
	j.mu.Lock()
	cutoff := j.since
	// Overlap the previous window by a few seconds to cover rows committed
	// right at the boundary.
	j.since = time.Now().UTC().Add(-5 * time.Second)
	j.mu.Unlock()

	ids, err := j.touchedOrders.GetTouchedSince(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list touched orders", "error", err)
		return
	}

	for _, id := range ids {
		cmd, cmdErr := commands.NewRecalculateOrderCommand(id)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build recalculation command",
				"order_id", id.String(), "error", cmdErr)
			continue
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// An order deleted between listing and recalculation is not a failure.
			if errors.Is(handleErr, errs.ErrObjectNotFound) {
				continue
			}
			j.logger.ErrorContext(ctx, "Order reconciliation failed",
				"order_id", id.String(), "error", handleErr)
		}
	}

	if len(ids) > 0 {
		j.logger.InfoContext(ctx, "Order reconciliation pass finished", "orders", len(ids))
	}
}
