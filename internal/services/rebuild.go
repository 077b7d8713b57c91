package services

import (
  "context"

  "github.com/ysagp/attendance-analytics/internal/analytics"
  "github.com/ysagp/attendance-analytics/internal/logger"
  "github.com/ysagp/attendance-analytics/internal/repos"
  "github.com/ysagp/attendance-analytics/internal/store"
  "github.com/ysagp/attendance-analytics/internal/types"
)

// SessionEventService rebuilds a month's distinct-class count whenever a
// session in that month is created or updated. Unlike the aggregator this is
// a full replace, not an increment: it re-reads every session in the month
// and overwrites totalClasses with the distinct classId count. Two known,
// accepted limitations follow from that shape:
//
//   - two session writes landing in the same month concurrently can each
//     compute the set from different reads; the later write wins.
//   - session deletes are skipped (no after state), so removing the last
//     session of a month never decrements totalClasses.
type SessionEventService interface {
  Handle(ctx context.Context, change types.SessionChange) error
}

type sessionEventService struct {
  log         *logger.Logger
  sessionRepo repos.SessionRepo
  store       store.Store
}

func NewSessionEventService(baseLog *logger.Logger, sessionRepo repos.SessionRepo, st store.Store) SessionEventService {
  serviceLog := baseLog.With("service", "SessionEventService")
  return &sessionEventService{
    log:         serviceLog,
    sessionRepo: sessionRepo,
    store:       st,
  }
}

func (ss *sessionEventService) Handle(ctx context.Context, change types.SessionChange) error {
  if change.After == nil {
    ss.log.Debug("Session deleted, skipping class count rebuild", "session_id", change.SessionID)
    return nil
  }

  date, err := analytics.ParseSessionDate(change.After.SessionDate)
  if err != nil {
    ss.log.Warn("Session event has unusable date, skipping rebuild",
      "session_id", change.SessionID,
      "error", err,
    )
    return nil
  }
  monthKey := analytics.MonthKey(date)

  sessions, err := ss.sessionRepo.ListByMonth(ctx, monthKey)
  if err != nil {
    return err
  }

  classIDs := make(map[string]struct{})
  for _, session := range sessions {
    if session.ClassID != "" {
      classIDs[session.ClassID] = struct{}{}
    }
  }

  totals := make(map[string]any, len(analytics.AllStatuses))
  for _, status := range analytics.AllStatuses {
    totals[string(status)] = store.Increment(0)
  }
  data := map[string]any{
    "month":            monthKey,
    "totalClasses":     len(classIDs),
    "attendanceTotals": totals,
    "lastUpdated":      store.ServerTimestamp,
  }

  if err := ss.store.Merge(ctx, analytics.MonthlyAggregatePath(monthKey), data); err != nil {
    ss.log.Error("Class count merge failed", "month", monthKey, "error", err)
    return err
  }
  ss.log.Info("Rebuilt class count", "month", monthKey, "total_classes", len(classIDs))
  return nil
}
