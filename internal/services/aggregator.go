package services

import (
  "context"
  "fmt"

  "github.com/ysagp/attendance-analytics/internal/analytics"
  "github.com/ysagp/attendance-analytics/internal/logger"
  "github.com/ysagp/attendance-analytics/internal/store"
)

// AggregatorService merges signed deltas into the monthly aggregate document.
// Correctness rests on two properties of the write it issues: every counter
// change is a server-side atomic increment (commutative, so concurrent
// invocations for the same month need no locking), and the write is a
// set-with-merge (so the first write for a month initializes the document
// without clobbering a concurrent incrementer). There is no cross-field
// transactionality: a failure after a partial apply leaves fields disagreeing
// until redelivery reapplies the whole delta.
type AggregatorService interface {
  Apply(ctx context.Context, monthKey string, delta analytics.Delta) error
}

type aggregatorService struct {
  store store.Store
  log   *logger.Logger
}

func NewAggregatorService(st store.Store, baseLog *logger.Logger) AggregatorService {
  serviceLog := baseLog.With("service", "AggregatorService")
  return &aggregatorService{store: st, log: serviceLog}
}

func (as *aggregatorService) Apply(ctx context.Context, monthKey string, delta analytics.Delta) error {
  if _, _, err := analytics.MonthRange(monthKey); err != nil {
    return err
  }
  for status := range delta.Statuses {
    if _, err := analytics.ParseStatus(string(status)); err != nil {
      return fmt.Errorf("refusing delta for %s: %w", monthKey, err)
    }
  }

  // Increment(0) on untouched fields initializes them on first write and is
  // a no-op afterwards, mirroring the zero-value base of the original
  // aggregate shape without resetting live counters.
  totals := make(map[string]any, len(analytics.AllStatuses))
  for _, status := range analytics.AllStatuses {
    totals[string(status)] = store.Increment(int64(delta.Statuses[status]))
  }
  data := map[string]any{
    "month":                 monthKey,
    "attendanceTotals":      totals,
    "totalRecordsProcessed": store.Increment(int64(delta.Records)),
    "lastUpdated":           store.ServerTimestamp,
  }

  if err := as.store.Merge(ctx, analytics.MonthlyAggregatePath(monthKey), data); err != nil {
    as.log.Error("Aggregate merge failed", "month", monthKey, "error", err)
    return err
  }
  as.log.Info("Applied aggregate delta", "month", monthKey, "records_delta", delta.Records)
  return nil
}
