package services

import (
  "context"
  "errors"
  "fmt"

  "github.com/ysagp/attendance-analytics/internal/analytics"
  "github.com/ysagp/attendance-analytics/internal/logger"
  "github.com/ysagp/attendance-analytics/internal/repos"
  "github.com/ysagp/attendance-analytics/internal/types"
)

// RecordEventService routes attendance-record lifecycle events to the
// aggregator. Handled no-ops (missing parent session, unchanged status,
// unknown status) return nil so the push subscription does not redeliver
// them; only genuine store failures propagate.
type RecordEventService interface {
  Handle(ctx context.Context, change types.RecordChange) error
}

type recordEventService struct {
  log         *logger.Logger
  sessionRepo repos.SessionRepo
  aggregator  AggregatorService
}

func NewRecordEventService(baseLog *logger.Logger, sessionRepo repos.SessionRepo, aggregator AggregatorService) RecordEventService {
  serviceLog := baseLog.With("service", "RecordEventService")
  return &recordEventService{
    log:         serviceLog,
    sessionRepo: sessionRepo,
    aggregator:  aggregator,
  }
}

func (rs *recordEventService) Handle(ctx context.Context, change types.RecordChange) error {
  record, delta, ok, err := rs.resolveDelta(change)
  if err != nil {
    // Unknown status or malformed envelope: logged and dropped rather than
    // minting counter fields the aggregate schema does not have.
    rs.log.Warn("Dropping record event", "kind", change.Kind, "record_id", change.RecordID, "error", err)
    return nil
  }
  if !ok {
    rs.log.Debug("Record event is a no-op", "kind", change.Kind, "record_id", change.RecordID)
    return nil
  }

  session, err := rs.sessionRepo.GetByID(ctx, record.SessionID)
  if errors.Is(err, repos.ErrSessionNotFound) {
    // MissingParent: the aggregate is left stale on purpose; retrying
    // cannot resurrect the session.
    rs.log.Warn("Session not found for record event, skipping",
      "record_id", change.RecordID,
      "session_id", record.SessionID,
    )
    return nil
  }
  if err != nil {
    return err
  }

  date, err := analytics.ParseSessionDate(session.SessionDate)
  if err != nil {
    rs.log.Warn("Session has unusable date, skipping record event",
      "record_id", change.RecordID,
      "session_id", record.SessionID,
      "error", err,
    )
    return nil
  }

  return rs.aggregator.Apply(ctx, analytics.MonthKey(date), delta)
}

// resolveDelta turns a change into (record used for session lookup, delta).
// ok is false for no-op events. Pure except for validation errors.
func (rs *recordEventService) resolveDelta(change types.RecordChange) (*types.AttendanceRecord, analytics.Delta, bool, error) {
  switch change.Kind {
  case types.ChangeCreated:
    if change.After == nil {
      return nil, analytics.Delta{}, false, fmt.Errorf("create event missing after snapshot")
    }
    status, err := analytics.ParseStatus(change.After.Status)
    if err != nil {
      return nil, analytics.Delta{}, false, err
    }
    return change.After, analytics.CreateDelta(status), true, nil

  case types.ChangeUpdated:
    if change.Before == nil || change.After == nil {
      return nil, analytics.Delta{}, false, fmt.Errorf("update event missing before/after snapshot")
    }
    // Explicit status comparison: a write that did not change the status
    // must not generate any delta, even if other fields changed.
    if change.Before.Status == change.After.Status {
      return change.After, analytics.Delta{}, false, nil
    }
    before, err := analytics.ParseStatus(change.Before.Status)
    if err != nil {
      return nil, analytics.Delta{}, false, err
    }
    after, err := analytics.ParseStatus(change.After.Status)
    if err != nil {
      return nil, analytics.Delta{}, false, err
    }
    delta, changed := analytics.UpdateDelta(before, after)
    return change.After, delta, changed, nil

  case types.ChangeDeleted:
    if change.Before == nil {
      return nil, analytics.Delta{}, false, fmt.Errorf("delete event missing before snapshot")
    }
    status, err := analytics.ParseStatus(change.Before.Status)
    if err != nil {
      return nil, analytics.Delta{}, false, err
    }
    return change.Before, analytics.DeleteDelta(status), true, nil

  default:
    return nil, analytics.Delta{}, false, fmt.Errorf("unknown change kind %q", change.Kind)
  }
}
