package repos

import (
  "context"
  "fmt"

  "cloud.google.com/go/firestore"
  "google.golang.org/grpc/codes"
  "google.golang.org/grpc/status"

  "github.com/ysagp/attendance-analytics/internal/analytics"
  "github.com/ysagp/attendance-analytics/internal/logger"
  "github.com/ysagp/attendance-analytics/internal/store"
  "github.com/ysagp/attendance-analytics/internal/types"
)

type BreakdownRepo interface {
  // GetByMonthClass reads one synthesized breakdown document. The second
  // return is false when no document exists for that month/class pair,
  // which callers treat as normal partial coverage, not an error.
  GetByMonthClass(ctx context.Context, monthKey, classID string) (*types.ClassBreakdown, bool, error)
}

type breakdownRepo struct {
  client *firestore.Client
  log    *logger.Logger
}

func NewBreakdownRepo(client *firestore.Client, baseLog *logger.Logger) BreakdownRepo {
  repoLog := baseLog.With("repo", "BreakdownRepo")
  return &breakdownRepo{client: client, log: repoLog}
}

func (br *breakdownRepo) GetByMonthClass(ctx context.Context, monthKey, classID string) (*types.ClassBreakdown, bool, error) {
  path := analytics.ClassBreakdownPath(monthKey, classID)
  doc := br.client.Doc(store.DocPath(path))
  if doc == nil {
    return nil, false, fmt.Errorf("invalid breakdown path %q", path)
  }
  snap, err := doc.Get(ctx)
  if status.Code(err) == codes.NotFound {
    return nil, false, nil
  }
  if err != nil {
    return nil, false, fmt.Errorf("get breakdown %s: %w", path, err)
  }
  var breakdown types.ClassBreakdown
  if err := snap.DataTo(&breakdown); err != nil {
    return nil, false, fmt.Errorf("decode breakdown %s: %w", path, err)
  }
  return &breakdown, true, nil
}
