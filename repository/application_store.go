package repository

import (
	"context"

	"credit-agent/domain"
)

// ApplicationStore is the boundary to the external datastore holding
// credit_applications and credit_scores. From this service's perspective both
// tables are append-only: records are constructed, dispatched, and listed,
// never mutated afterward.
type ApplicationStore interface {
	CreateApplication(ctx context.Context, rec *domain.ApplicationRecord) (string, error)
	CreateScore(ctx context.Context, rec *domain.CreditScoreRecord) error
	ListApplications(ctx context.Context, userID string) ([]domain.ApplicationRecord, error)
	ListScores(ctx context.Context, userID string) ([]domain.CreditScoreRecord, error)
}
