package services

import (
	"fmt"

	"orderstate/internal/core/domain/model/order"
)

// HookDispatcher invokes every hook registered on an order, in registration
// order, after totals are recomputed. Dispatch runs regardless of the order's
// completion state.
//
// Hook failures are not caught: the first failing hook aborts the remaining
// hooks and the error propagates to the caller, which means the subsequent
// persistence write never happens. There are no retries.
type HookDispatcher struct{}

// NewHookDispatcher creates a new HookDispatcher instance.
func NewHookDispatcher() HookDispatcher {
	return HookDispatcher{}
}

// Dispatch runs the order's hooks in registration order and returns the
// first failure, wrapped with the position of the failing hook.
func (HookDispatcher) Dispatch(o *order.Order) error {
	for i, hook := range o.Hooks() {
		if err := hook(o); err != nil {
			return fmt.Errorf("hook %d failed: %w", i, err)
		}
	}
	return nil
}
