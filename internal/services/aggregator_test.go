package services

import (
  "context"
  "testing"

  "github.com/ysagp/attendance-analytics/internal/analytics"
)

const febPath = "analytics/monthly/2026-02"

func TestAggregatorApplyCreateSequence(t *testing.T) {
  fs := newFakeStore()
  agg := NewAggregatorService(fs, testLogger(t))
  ctx := context.Background()

  // Any sequence of create deltas within one month must leave each status
  // counter equal to the number of creates with that status.
  statuses := []analytics.Status{
    analytics.StatusPresent, analytics.StatusPresent, analytics.StatusPresent,
    analytics.StatusAbsent,
    analytics.StatusLate, analytics.StatusLate,
    analytics.StatusExcused,
  }
  for _, s := range statuses {
    if err := agg.Apply(ctx, "2026-02", analytics.CreateDelta(s)); err != nil {
      t.Fatalf("Apply: %v", err)
    }
  }

  wantByStatus := map[string]int64{"present": 3, "absent": 1, "late": 2, "excused": 1}
  for status, want := range wantByStatus {
    if got := fs.counter(febPath, "attendanceTotals", status); got != want {
      t.Fatalf("attendanceTotals.%s=%d, want %d", status, got, want)
    }
  }
  if got := fs.counter(febPath, "totalRecordsProcessed"); got != int64(len(statuses)) {
    t.Fatalf("totalRecordsProcessed=%d, want %d", got, len(statuses))
  }
  if got := fs.field(febPath, "month"); got != "2026-02" {
    t.Fatalf("month=%v, want 2026-02", got)
  }
}

func TestAggregatorInitializesAllStatusFields(t *testing.T) {
  fs := newFakeStore()
  agg := NewAggregatorService(fs, testLogger(t))

  if err := agg.Apply(context.Background(), "2026-02", analytics.CreateDelta(analytics.StatusPresent)); err != nil {
    t.Fatalf("Apply: %v", err)
  }

  // First write must leave the untouched counters present and zero, so
  // readers never hit missing fields.
  totals, ok := fs.field(febPath, "attendanceTotals").(map[string]any)
  if !ok {
    t.Fatalf("attendanceTotals missing")
  }
  for _, status := range analytics.AllStatuses {
    if _, ok := totals[string(status)]; !ok {
      t.Fatalf("status field %q not initialized", status)
    }
  }
  if got := fs.counter(febPath, "attendanceTotals", "absent"); got != 0 {
    t.Fatalf("absent=%d, want 0", got)
  }
}

func TestAggregatorDuplicateDeliveryDoubleCounts(t *testing.T) {
  fs := newFakeStore()
  agg := NewAggregatorService(fs, testLogger(t))
  ctx := context.Background()

  // At-least-once delivery with no dedup: replaying the same create delta
  // counts twice. This is the documented contract, not a bug to fix here.
  delta := analytics.CreateDelta(analytics.StatusPresent)
  if err := agg.Apply(ctx, "2026-02", delta); err != nil {
    t.Fatalf("Apply: %v", err)
  }
  if err := agg.Apply(ctx, "2026-02", delta); err != nil {
    t.Fatalf("Apply (redelivery): %v", err)
  }

  if got := fs.counter(febPath, "attendanceTotals", "present"); got != 2 {
    t.Fatalf("present=%d, want 2 after duplicate delivery", got)
  }
  if got := fs.counter(febPath, "totalRecordsProcessed"); got != 2 {
    t.Fatalf("totalRecordsProcessed=%d, want 2", got)
  }
}

func TestAggregatorStatusChangeLeavesRecordCount(t *testing.T) {
  fs := newFakeStore()
  agg := NewAggregatorService(fs, testLogger(t))
  ctx := context.Background()

  if err := agg.Apply(ctx, "2026-02", analytics.CreateDelta(analytics.StatusPresent)); err != nil {
    t.Fatalf("Apply create: %v", err)
  }
  delta, changed := analytics.UpdateDelta(analytics.StatusPresent, analytics.StatusLate)
  if !changed {
    t.Fatalf("expected change")
  }
  if err := agg.Apply(ctx, "2026-02", delta); err != nil {
    t.Fatalf("Apply update: %v", err)
  }

  if got := fs.counter(febPath, "attendanceTotals", "present"); got != 0 {
    t.Fatalf("present=%d, want 0", got)
  }
  if got := fs.counter(febPath, "attendanceTotals", "late"); got != 1 {
    t.Fatalf("late=%d, want 1", got)
  }
  if got := fs.counter(febPath, "totalRecordsProcessed"); got != 1 {
    t.Fatalf("totalRecordsProcessed=%d, want 1", got)
  }
}

func TestAggregatorRejectsBadInput(t *testing.T) {
  fs := newFakeStore()
  agg := NewAggregatorService(fs, testLogger(t))
  ctx := context.Background()

  if err := agg.Apply(ctx, "not-a-month", analytics.CreateDelta(analytics.StatusPresent)); err == nil {
    t.Fatalf("expected error for invalid month key")
  }
  bad := analytics.Delta{Statuses: map[analytics.Status]int{analytics.Status("tardy"): 1}}
  if err := agg.Apply(ctx, "2026-02", bad); err == nil {
    t.Fatalf("expected error for unknown status key")
  }
  if fs.mergeCount != 0 {
    t.Fatalf("rejected deltas must not write, got %d merges", fs.mergeCount)
  }
}
