package gcp

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"github.com/ysagp/attendance-analytics/internal/logger"
)

func NewFirestoreClient(ctx context.Context, projectID string, log *logger.Logger) (*firestore.Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("GCP_PROJECT_ID is required")
	}
	client, err := firestore.NewClient(ctx, projectID, ClientOptionsFromEnv()...)
	if err != nil {
		return nil, fmt.Errorf("init firestore client: %w", err)
	}
	if log != nil {
		log.Info("Firestore client initialized", "project_id", projectID)
	}
	return client, nil
}
