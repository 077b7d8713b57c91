package services

import (
  "context"
  "sync"

  "golang.org/x/sync/errgroup"

  "github.com/ysagp/attendance-analytics/internal/analytics"
  "github.com/ysagp/attendance-analytics/internal/logger"
  "github.com/ysagp/attendance-analytics/internal/repos"
  "github.com/ysagp/attendance-analytics/internal/types"
)

const breakdownReadLimit = 8

// BreakdownService is the read-only fan-out behind the class-breakdown
// callable. It never computes derived values: it lists classes (or takes the
// one requested) and reads whatever synthesized breakdown documents exist.
// Classes without a breakdown document are simply absent from the result.
type BreakdownService interface {
  Generate(ctx context.Context, monthKey, classID string) (map[string]*types.ClassBreakdown, error)
}

type breakdownService struct {
  log           *logger.Logger
  classRepo     repos.ClassRepo
  breakdownRepo repos.BreakdownRepo
}

func NewBreakdownService(baseLog *logger.Logger, classRepo repos.ClassRepo, breakdownRepo repos.BreakdownRepo) BreakdownService {
  serviceLog := baseLog.With("service", "BreakdownService")
  return &breakdownService{
    log:           serviceLog,
    classRepo:     classRepo,
    breakdownRepo: breakdownRepo,
  }
}

func (bs *breakdownService) Generate(ctx context.Context, monthKey, classID string) (map[string]*types.ClassBreakdown, error) {
  if _, _, err := analytics.MonthRange(monthKey); err != nil {
    return nil, err
  }

  var classIDs []string
  if classID != "" {
    classIDs = []string{classID}
  } else {
    classes, err := bs.classRepo.ListAll(ctx)
    if err != nil {
      return nil, err
    }
    for _, class := range classes {
      classIDs = append(classIDs, class.ID)
    }
  }

  result := make(map[string]*types.ClassBreakdown, len(classIDs))
  var mu sync.Mutex

  g, gctx := errgroup.WithContext(ctx)
  g.SetLimit(breakdownReadLimit)
  for _, id := range classIDs {
    g.Go(func() error {
      breakdown, found, err := bs.breakdownRepo.GetByMonthClass(gctx, monthKey, id)
      if err != nil {
        return err
      }
      if !found {
        return nil
      }
      mu.Lock()
      result[id] = breakdown
      mu.Unlock()
      return nil
    })
  }
  if err := g.Wait(); err != nil {
    return nil, err
  }

  bs.log.Debug("Generated class breakdown",
    "month", monthKey,
    "requested", len(classIDs),
    "found", len(result),
  )
  return result, nil
}
