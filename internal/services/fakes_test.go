package services

import (
  "context"
  "time"

  "github.com/ysagp/attendance-analytics/internal/logger"
  "github.com/ysagp/attendance-analytics/internal/repos"
  "github.com/ysagp/attendance-analytics/internal/store"
  "github.com/ysagp/attendance-analytics/internal/types"
)

func testLogger(t interface{ Fatalf(string, ...any) }) *logger.Logger {
  log, err := logger.New("development")
  if err != nil {
    t.Fatalf("init logger: %v", err)
  }
  return log
}

// fakeStore models the document store's merge semantics in memory: nested
// maps deep-merge, IncrementValue adds to the existing value (initializing
// missing fields), ServerTimestamp resolves to wall time. mergeCount tracks
// how many writes a scenario produced, which the no-op tests assert on.
type fakeStore struct {
  docs       map[string]map[string]any
  mergeCount int
  failNext   error
}

func newFakeStore() *fakeStore {
  return &fakeStore{docs: map[string]map[string]any{}}
}

func (fs *fakeStore) Merge(_ context.Context, path string, data map[string]any) error {
  if fs.failNext != nil {
    err := fs.failNext
    fs.failNext = nil
    return err
  }
  fs.mergeCount++
  doc, ok := fs.docs[path]
  if !ok {
    doc = map[string]any{}
    fs.docs[path] = doc
  }
  mergeInto(doc, data)
  return nil
}

func mergeInto(dst map[string]any, src map[string]any) {
  for k, v := range src {
    switch t := v.(type) {
    case store.IncrementValue:
      existing, _ := dst[k].(int64)
      dst[k] = existing + t.N
    case map[string]any:
      child, ok := dst[k].(map[string]any)
      if !ok {
        child = map[string]any{}
        dst[k] = child
      }
      mergeInto(child, t)
    default:
      if v == any(store.ServerTimestamp) {
        dst[k] = time.Now()
        continue
      }
      dst[k] = v
    }
  }
}

// counter digs an int64 counter out of a fake document, returning 0 for
// absent fields the way a reader of a merge-initialized doc would.
func (fs *fakeStore) counter(path string, fields ...string) int64 {
  doc, ok := fs.docs[path]
  if !ok {
    return 0
  }
  var cur any = doc
  for _, f := range fields {
    m, ok := cur.(map[string]any)
    if !ok {
      return 0
    }
    cur = m[f]
  }
  n, _ := cur.(int64)
  return n
}

func (fs *fakeStore) field(path string, fields ...string) any {
  doc, ok := fs.docs[path]
  if !ok {
    return nil
  }
  var cur any = doc
  for _, f := range fields {
    m, ok := cur.(map[string]any)
    if !ok {
      return nil
    }
    cur = m[f]
  }
  return cur
}

type fakeSessionRepo struct {
  byID      map[string]*types.AttendanceSession
  byMonth   map[string][]*types.AttendanceSession
  listErr   error
  listCalls int
}

func newFakeSessionRepo() *fakeSessionRepo {
  return &fakeSessionRepo{
    byID:    map[string]*types.AttendanceSession{},
    byMonth: map[string][]*types.AttendanceSession{},
  }
}

func (fr *fakeSessionRepo) GetByID(_ context.Context, sessionID string) (*types.AttendanceSession, error) {
  s, ok := fr.byID[sessionID]
  if !ok {
    return nil, repos.ErrSessionNotFound
  }
  return s, nil
}

func (fr *fakeSessionRepo) ListByMonth(_ context.Context, monthKey string) ([]*types.AttendanceSession, error) {
  fr.listCalls++
  if fr.listErr != nil {
    return nil, fr.listErr
  }
  return fr.byMonth[monthKey], nil
}

type fakeClassRepo struct {
  classes []*types.Class
  err     error
}

func (fr *fakeClassRepo) ListAll(_ context.Context) ([]*types.Class, error) {
  if fr.err != nil {
    return nil, fr.err
  }
  return fr.classes, nil
}

type fakeMemberRepo struct {
  members []*types.Member
  err     error
}

func (fr *fakeMemberRepo) ListYSA(_ context.Context) ([]*types.Member, error) {
  if fr.err != nil {
    return nil, fr.err
  }
  return fr.members, nil
}

type fakeBreakdownRepo struct {
  docs map[string]*types.ClassBreakdown // key: monthKey + "/" + classID
  err  error
}

func (fr *fakeBreakdownRepo) GetByMonthClass(_ context.Context, monthKey, classID string) (*types.ClassBreakdown, bool, error) {
  if fr.err != nil {
    return nil, false, fr.err
  }
  b, ok := fr.docs[monthKey+"/"+classID]
  if !ok {
    return nil, false, nil
  }
  return b, true, nil
}
