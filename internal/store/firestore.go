package store

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"

	"github.com/ysagp/attendance-analytics/internal/logger"
)

// FirestoreStore backs the Store contract with Cloud Firestore. Set with
// MergeAll gives the create-or-merge write, and firestore.Increment gives the
// commutative server-side increment, so no read-modify-write ever happens
// here.
type FirestoreStore struct {
	client *firestore.Client
	log    *logger.Logger
}

func NewFirestoreStore(client *firestore.Client, baseLog *logger.Logger) *FirestoreStore {
	return &FirestoreStore{
		client: client,
		log:    baseLog.With("component", "FirestoreStore"),
	}
}

func (fs *FirestoreStore) Merge(ctx context.Context, path string, data map[string]any) error {
	doc := fs.client.Doc(DocPath(path))
	if doc == nil {
		return fmt.Errorf("invalid document path %q", path)
	}
	if _, err := doc.Set(ctx, translateMap(data), firestore.MergeAll); err != nil {
		return fmt.Errorf("merge %s: %w", path, err)
	}
	fs.log.Debug("Merged document", "path", path)
	return nil
}

// DocPath maps a logical document path onto Firestore's alternating
// collection/document addressing. Logical paths under the analytics
// namespace have an odd segment count ("analytics/monthly/2026-02");
// Firestore requires an even count, so the leading namespace pair collapses
// into one root collection id ("analytics-monthly/2026-02"). Even-length
// paths pass through untouched.
func DocPath(path string) string {
	parts := strings.Split(path, "/")
	if len(parts) > 1 && len(parts)%2 == 1 {
		parts = append([]string{parts[0] + "-" + parts[1]}, parts[2:]...)
	}
	return strings.Join(parts, "/")
}

// translateMap rewrites sentinel values into their firestore counterparts,
// recursing into nested maps so increments on nested counter fields survive
// the MergeAll deep merge.
func translateMap(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = translateValue(v)
	}
	return out
}

func translateValue(v any) any {
	switch t := v.(type) {
	case IncrementValue:
		return firestore.Increment(t.N)
	case serverTimestamp:
		return firestore.ServerTimestamp
	case map[string]any:
		return translateMap(t)
	default:
		return v
	}
}
