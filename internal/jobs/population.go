package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ysagp/attendance-analytics/internal/logger"
	"github.com/ysagp/attendance-analytics/internal/services"
)

// Daily at 02:00 UTC, matching the schedule the collaborator dashboards
// assume for snapshot freshness.
const populationSchedule = "0 2 * * *"

const runTimeout = 5 * time.Minute

// PopulationJob owns the cron runner for the daily population snapshot. The
// job carries no state between runs and needs no checkpointing: each run is
// one bounded scan and one merge-write.
type PopulationJob struct {
	log  *logger.Logger
	svc  services.PopulationService
	cron *cron.Cron
}

func NewPopulationJob(baseLog *logger.Logger, svc services.PopulationService) *PopulationJob {
	return &PopulationJob{
		log: baseLog.With("component", "PopulationJob"),
		svc: svc,
	}
}

func (pj *PopulationJob) Start(ctx context.Context) error {
	if pj.cron != nil {
		return nil
	}
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	_, err := c.AddFunc(populationSchedule, func() {
		runCtx, cancel := context.WithTimeout(ctx, runTimeout)
		defer cancel()
		if err := pj.svc.Run(runCtx); err != nil {
			// No local retry; the next daily run writes a fresh snapshot.
			pj.log.Error("Population stats run failed", "error", err)
			return
		}
	})
	if err != nil {
		return err
	}
	pj.cron = c
	c.Start()
	pj.log.Info("Population stats job scheduled", "schedule", populationSchedule, "tz", "UTC")
	return nil
}

func (pj *PopulationJob) Stop() {
	if pj.cron == nil {
		return
	}
	stopCtx := pj.cron.Stop()
	<-stopCtx.Done()
	pj.cron = nil
	pj.log.Info("Population stats job stopped")
}
