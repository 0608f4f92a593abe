package jobs

import (
	"context"
	"log/slog"
	"time"

	"swapdispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueMovesJob periodically scans for moves still open past their
// scheduled date and logs a warning per move. The sweep does not mutate
// anything; chasing or cancelling an overdue move is a dispatcher call.
type OverdueMovesJob struct {
	handler queries.GetOverdueMovesQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueMovesJob creates a job that sweeps for overdue moves once a minute.
func NewOverdueMovesJob(handler queries.GetOverdueMovesQueryHandler, logger *slog.Logger) *OverdueMovesJob {
	return &OverdueMovesJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_moves_job"),
	}
}

// Start begins the overdue sweep to run at the top of every minute.
func (j *OverdueMovesJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, qErr := queries.NewGetOverdueMovesQuery(time.Now().UTC())
		if qErr != nil {
			j.logger.ErrorContext(ctx, "Overdue moves sweep failed to build query", "error", qErr)
			return
		}

		overdue, hErr := j.handler.Handle(ctx, query)
		if hErr != nil {
			j.logger.ErrorContext(ctx, "Overdue moves sweep failed", "error", hErr)
			return
		}

		for _, m := range overdue {
			j.logger.WarnContext(ctx, "Move is overdue",
				"move_id", m.ID.String(),
				"origin", m.Origin.Name(),
				"destination", m.Destination.Name(),
				"scheduled_date", m.ScheduledDate.Format(time.DateOnly),
				"status", m.Status,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue moves job started (running every minute)")
	return nil
}

// Stop stops the overdue sweep.
func (j *OverdueMovesJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue moves job stopped")
}
