package jobs

import (
	"context"
	"log/slog"
	"time"

	"parceltrack/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueWatchJob periodically scans for parcels that missed their delivery
// deadline. Runs every minute and reports findings through the logger; the
// scan itself has no side effects on parcel state.
type OverdueWatchJob struct {
	handler queries.OverdueParcelsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueWatchJob creates a new job for watching overdue parcels.
func NewOverdueWatchJob(handler queries.OverdueParcelsQueryHandler, logger *slog.Logger) *OverdueWatchJob {
	return &OverdueWatchJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_watch_job"),
	}
}

// Start begins the overdue watch job to run every minute.
func (j *OverdueWatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewOverdueParcelsQuery(time.Now().UTC())
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Overdue watch job failed to build query", "error", queryErr)
			return
		}

		overdue, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Overdue watch job failed", "error", handleErr)
			return
		}

		if len(overdue) > 0 {
			j.logger.WarnContext(ctx, "Overdue parcels detected", "count", len(overdue))
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue watch job started (running every minute)")
	return nil
}

// Stop stops the overdue watch job.
func (j *OverdueWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue watch job stopped")
}
