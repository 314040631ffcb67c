package repository

import (
	"context"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
)

// MatchRepository defines match persistence operations.
type MatchRepository interface {
	CreateMatch(ctx context.Context, match *entity.Match) error
	FindMatchesByDemand(ctx context.Context, demandID uuid.UUID) ([]*entity.Match, error)
}
