package repos

import (
  "context"
  "fmt"

  "cloud.google.com/go/firestore"
  "google.golang.org/api/iterator"

  "github.com/ysagp/attendance-analytics/internal/logger"
  "github.com/ysagp/attendance-analytics/internal/types"
)

const classesCollection = "classes"

type ClassRepo interface {
  ListAll(ctx context.Context) ([]*types.Class, error)
}

type classRepo struct {
  client *firestore.Client
  log    *logger.Logger
}

func NewClassRepo(client *firestore.Client, baseLog *logger.Logger) ClassRepo {
  repoLog := baseLog.With("repo", "ClassRepo")
  return &classRepo{client: client, log: repoLog}
}

func (cr *classRepo) ListAll(ctx context.Context) ([]*types.Class, error) {
  iter := cr.client.Collection(classesCollection).Documents(ctx)
  defer iter.Stop()

  var results []*types.Class
  for {
    snap, err := iter.Next()
    if err == iterator.Done {
      break
    }
    if err != nil {
      return nil, fmt.Errorf("list classes: %w", err)
    }
    var class types.Class
    if err := snap.DataTo(&class); err != nil {
      cr.log.Warn("Skipping undecodable class document", "doc_id", snap.Ref.ID, "error", err)
      continue
    }
    class.ID = snap.Ref.ID
    results = append(results, &class)
  }
  return results, nil
}
