package services

import (
  "context"
  "errors"
  "testing"
  "time"

  "github.com/ysagp/attendance-analytics/internal/types"
)

func TestPopulationRunCounts(t *testing.T) {
  fs := newFakeStore()
  members := &fakeMemberRepo{members: []*types.Member{
    {ID: "u1", IsYsa: true, IsMember: true},
    {ID: "u2", IsYsa: true, IsMember: false},
    {ID: "u3", IsYsa: true, IsMember: false, IsByuPathway: true},
    {ID: "u4", IsYsa: true, IsMember: true, IsByuPathway: true},
  }}
  svc := &populationService{
    log:        testLogger(t).With("service", "PopulationService"),
    memberRepo: members,
    store:      fs,
    now:        func() time.Time { return time.Date(2026, 2, 15, 2, 0, 0, 0, time.UTC) },
  }

  if err := svc.Run(context.Background()); err != nil {
    t.Fatalf("Run: %v", err)
  }

  // The snapshot lands in the execution month only, whatever months the
  // members' activity otherwise touches.
  if got := fs.field(febPath, "populationStats", "ysaTotal"); got != 4 {
    t.Fatalf("ysaTotal=%v, want 4", got)
  }
  if got := fs.field(febPath, "populationStats", "ysaNonMembers"); got != 2 {
    t.Fatalf("ysaNonMembers=%v, want 2", got)
  }
  if got := fs.field(febPath, "populationStats", "byuPathwayCount"); got != 2 {
    t.Fatalf("byuPathwayCount=%v, want 2", got)
  }
  if len(fs.docs) != 1 {
    t.Fatalf("snapshot touched %d documents, want 1", len(fs.docs))
  }
}

func TestPopulationRunOverwritesPriorSnapshot(t *testing.T) {
  fs := newFakeStore()
  members := &fakeMemberRepo{members: []*types.Member{
    {ID: "u1", IsYsa: true, IsMember: false},
  }}
  svc := &populationService{
    log:        testLogger(t).With("service", "PopulationService"),
    memberRepo: members,
    store:      fs,
    now:        func() time.Time { return time.Date(2026, 2, 15, 2, 0, 0, 0, time.UTC) },
  }
  ctx := context.Background()

  if err := svc.Run(ctx); err != nil {
    t.Fatalf("first run: %v", err)
  }
  members.members = append(members.members, &types.Member{ID: "u2", IsYsa: true, IsMember: true})
  if err := svc.Run(ctx); err != nil {
    t.Fatalf("second run: %v", err)
  }

  // populationStats is a plain snapshot, not an increment: the later run
  // replaces the earlier values.
  if got := fs.field(febPath, "populationStats", "ysaTotal"); got != 2 {
    t.Fatalf("ysaTotal=%v, want 2", got)
  }
  if got := fs.field(febPath, "populationStats", "ysaNonMembers"); got != 1 {
    t.Fatalf("ysaNonMembers=%v, want 1", got)
  }
}

func TestPopulationRunScanFailure(t *testing.T) {
  fs := newFakeStore()
  svc := &populationService{
    log:        testLogger(t).With("service", "PopulationService"),
    memberRepo: &fakeMemberRepo{err: errors.New("unavailable")},
    store:      fs,
    now:        time.Now,
  }
  if err := svc.Run(context.Background()); err == nil {
    t.Fatalf("scan failure must propagate")
  }
  if fs.mergeCount != 0 {
    t.Fatalf("failed run must not write, got %d merges", fs.mergeCount)
  }
}
