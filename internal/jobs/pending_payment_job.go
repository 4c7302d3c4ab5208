package jobs

import (
	"context"
	"log/slog"
	"time"

	"msosihub/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PendingPaymentJob sweeps orders stuck in payment-pending and cancels them.
// Runs once a minute; orders older than maxAge are considered abandoned.
type PendingPaymentJob struct {
	handler commands.ExpirePendingPaymentsCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingPaymentJob creates a job that expires stale pending payments.
func NewPendingPaymentJob(
	handler commands.ExpirePendingPaymentsCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *PendingPaymentJob {
	return &PendingPaymentJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(),
		logger:  logger.With("component", "pending_payment_job"),
	}
}

// Start begins the expiry sweep on a one-minute schedule.
func (j *PendingPaymentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewExpirePendingPaymentsCommand(time.Now().Add(-j.maxAge))
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build expiry command", "error", err)
			return
		}

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending payment sweep failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale pending payments", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending payment job started (running every minute)")
	return nil
}

// Stop stops the expiry sweep.
func (j *PendingPaymentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending payment job stopped")
}
