package postgres

import (
	"context"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(db *gorm.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (repo *matchRepository) CreateMatch(ctx context.Context, match *entity.Match) error {
	matchM := &model.MatchModel{
		ID:           match.ID,
		ListingID:    match.ListingID,
		DemandID:     match.DemandID,
		DistanceKm:   match.DistanceKm,
		MatchedPrice: match.MatchedPrice,
		Status:       string(match.Status),
	}

	if err := repo.db.WithContext(ctx).Create(matchM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WithDetails("listing or demand no longer exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create match")
	}

	match.ID = matchM.ID
	match.CreatedAt = matchM.CreatedAt

	return nil
}

func (repo *matchRepository) FindMatchesByDemand(ctx context.Context, demandID uuid.UUID) ([]*entity.Match, error) {
	var matchModels []*model.MatchModel

	if err := repo.db.WithContext(ctx).
		Where("demand_id = ?", demandID).
		Order("distance_km ASC NULLS LAST, created_at ASC").
		Find(&matchModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find matches by demand")
	}

	matches := make([]*entity.Match, 0, len(matchModels))
	for _, m := range matchModels {
		matches = append(matches, &entity.Match{
			ID:           m.ID,
			ListingID:    m.ListingID,
			DemandID:     m.DemandID,
			DistanceKm:   m.DistanceKm,
			MatchedPrice: m.MatchedPrice,
			Status:       entity.MatchStatus(m.Status),
			CreatedAt:    m.CreatedAt,
		})
	}

	return matches, nil
}
