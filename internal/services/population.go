package services

import (
  "context"
  "time"

  "github.com/ysagp/attendance-analytics/internal/analytics"
  "github.com/ysagp/attendance-analytics/internal/logger"
  "github.com/ysagp/attendance-analytics/internal/repos"
  "github.com/ysagp/attendance-analytics/internal/store"
)

// PopulationService writes the once-daily population snapshot. The snapshot
// is attributed to whichever calendar month the run happens in; historical
// months are never recomputed.
type PopulationService interface {
  Run(ctx context.Context) error
}

type populationService struct {
  log        *logger.Logger
  memberRepo repos.MemberRepo
  store      store.Store
  now        func() time.Time
}

func NewPopulationService(baseLog *logger.Logger, memberRepo repos.MemberRepo, st store.Store) PopulationService {
  serviceLog := baseLog.With("service", "PopulationService")
  return &populationService{
    log:        serviceLog,
    memberRepo: memberRepo,
    store:      st,
    now:        time.Now,
  }
}

func (ps *populationService) Run(ctx context.Context) error {
  members, err := ps.memberRepo.ListYSA(ctx)
  if err != nil {
    return err
  }

  ysaTotal := 0
  ysaNonMembers := 0
  byuPathwayCount := 0
  for _, member := range members {
    ysaTotal++
    if !member.IsMember {
      ysaNonMembers++
    }
    if member.IsByuPathway {
      byuPathwayCount++
    }
  }

  monthKey := analytics.MonthKey(ps.now())
  data := map[string]any{
    "month": monthKey,
    "populationStats": map[string]any{
      "ysaTotal":        ysaTotal,
      "ysaNonMembers":   ysaNonMembers,
      "byuPathwayCount": byuPathwayCount,
    },
    "lastUpdated": store.ServerTimestamp,
  }

  if err := ps.store.Merge(ctx, analytics.MonthlyAggregatePath(monthKey), data); err != nil {
    ps.log.Error("Population snapshot merge failed", "month", monthKey, "error", err)
    return err
  }
  ps.log.Info("Populated monthly population stats",
    "month", monthKey,
    "ysa_total", ysaTotal,
    "ysa_non_members", ysaNonMembers,
    "byu_pathway_count", byuPathwayCount,
  )
  return nil
}
