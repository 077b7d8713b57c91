package repos

import (
  "context"
  "fmt"

  "cloud.google.com/go/firestore"
  "google.golang.org/api/iterator"

  "github.com/ysagp/attendance-analytics/internal/logger"
  "github.com/ysagp/attendance-analytics/internal/types"
)

const usersCollection = "users"

type MemberRepo interface {
  // ListYSA returns every user flagged with the YSA membership category.
  // This is the one bounded scan the population job performs.
  ListYSA(ctx context.Context) ([]*types.Member, error)
}

type memberRepo struct {
  client *firestore.Client
  log    *logger.Logger
}

func NewMemberRepo(client *firestore.Client, baseLog *logger.Logger) MemberRepo {
  repoLog := baseLog.With("repo", "MemberRepo")
  return &memberRepo{client: client, log: repoLog}
}

func (mr *memberRepo) ListYSA(ctx context.Context) ([]*types.Member, error) {
  iter := mr.client.Collection(usersCollection).
    Where("isYsa", "==", true).
    Documents(ctx)
  defer iter.Stop()

  var results []*types.Member
  for {
    snap, err := iter.Next()
    if err == iterator.Done {
      break
    }
    if err != nil {
      return nil, fmt.Errorf("list ysa members: %w", err)
    }
    var member types.Member
    if err := snap.DataTo(&member); err != nil {
      mr.log.Warn("Skipping undecodable user document", "doc_id", snap.Ref.ID, "error", err)
      continue
    }
    member.ID = snap.Ref.ID
    results = append(results, &member)
  }
  return results, nil
}
