package repos

import (
  "context"
  "errors"
  "fmt"

  "cloud.google.com/go/firestore"
  "google.golang.org/api/iterator"
  "google.golang.org/grpc/codes"
  "google.golang.org/grpc/status"

  "github.com/ysagp/attendance-analytics/internal/analytics"
  "github.com/ysagp/attendance-analytics/internal/logger"
  "github.com/ysagp/attendance-analytics/internal/types"
)

const sessionsCollection = "attendanceSessions"

// ErrSessionNotFound marks the MissingParent case: a record event whose
// owning session is gone. Callers skip the event instead of retrying.
var ErrSessionNotFound = errors.New("attendance session not found")

type SessionRepo interface {
  GetByID(ctx context.Context, sessionID string) (*types.AttendanceSession, error)
  ListByMonth(ctx context.Context, monthKey string) ([]*types.AttendanceSession, error)
}

type sessionRepo struct {
  client *firestore.Client
  log    *logger.Logger
}

func NewSessionRepo(client *firestore.Client, baseLog *logger.Logger) SessionRepo {
  repoLog := baseLog.With("repo", "SessionRepo")
  return &sessionRepo{client: client, log: repoLog}
}

func (sr *sessionRepo) GetByID(ctx context.Context, sessionID string) (*types.AttendanceSession, error) {
  if sessionID == "" {
    return nil, ErrSessionNotFound
  }
  snap, err := sr.client.Collection(sessionsCollection).Doc(sessionID).Get(ctx)
  if status.Code(err) == codes.NotFound {
    return nil, ErrSessionNotFound
  }
  if err != nil {
    return nil, fmt.Errorf("get session %s: %w", sessionID, err)
  }
  var session types.AttendanceSession
  if err := snap.DataTo(&session); err != nil {
    return nil, fmt.Errorf("decode session %s: %w", sessionID, err)
  }
  session.ID = snap.Ref.ID
  return &session, nil
}

func (sr *sessionRepo) ListByMonth(ctx context.Context, monthKey string) ([]*types.AttendanceSession, error) {
  start, end, err := analytics.MonthRange(monthKey)
  if err != nil {
    return nil, err
  }
  iter := sr.client.Collection(sessionsCollection).
    Where("sessionDate", ">=", start).
    Where("sessionDate", "<", end).
    Documents(ctx)
  defer iter.Stop()

  var results []*types.AttendanceSession
  for {
    snap, err := iter.Next()
    if err == iterator.Done {
      break
    }
    if err != nil {
      return nil, fmt.Errorf("list sessions for %s: %w", monthKey, err)
    }
    var session types.AttendanceSession
    if err := snap.DataTo(&session); err != nil {
      sr.log.Warn("Skipping undecodable session document", "doc_id", snap.Ref.ID, "error", err)
      continue
    }
    session.ID = snap.Ref.ID
    results = append(results, &session)
  }
  return results, nil
}
