package commands

import (
	"context"

	"msosihub/internal/core/ports"
)

// ExpirePendingPaymentsCommandHandler cancels orders stuck awaiting payment
// confirmation. Invoked periodically by the job scheduler.
type ExpirePendingPaymentsCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewExpirePendingPaymentsCommandHandler creates a handler for the expiry sweep.
func NewExpirePendingPaymentsCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) ExpirePendingPaymentsCommandHandler {
	return ExpirePendingPaymentsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the expiry command and returns how many orders were cancelled.
func (h *ExpirePendingPaymentsCommandHandler) Handle(ctx context.Context, cmd ExpirePendingPaymentsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stale, err := uow.OrderRepository().GetExpiredPending(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	events := make([]ports.StatusChangedEvent, 0, len(stale))
	for _, ord := range stale {
		oldStatus := ord.Status()
		if err = ord.ExpirePayment(); err != nil {
			return 0, err
		}

		if err = uow.OrderRepository().Update(ctx, ord); err != nil {
			return 0, err
		}

		events = append(events, ports.StatusChangedEvent{
			OrderID:    ord.ID(),
			CustomerID: ord.CustomerID(),
			OldStatus:  oldStatus.String(),
			NewStatus:  ord.Status().String(),
		})
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, event := range events {
		h.notifier.NotifyStatusChanged(ctx, event)
	}

	return len(events), nil
}
