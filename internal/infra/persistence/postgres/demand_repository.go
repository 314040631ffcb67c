package postgres

import (
	"context"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/errors"
	"harvest/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// demandRepository implements the repository.DemandRepository interface.
type demandRepository struct {
	db *gorm.DB
}

// NewDemandRepository is the constructor for demandRepository.
func NewDemandRepository(db *gorm.DB) repository.DemandRepository {
	return &demandRepository{db: db}
}

func (repo *demandRepository) CreateDemand(ctx context.Context, demand *entity.Demand) error {
	demandM := fromDemandDomain(demand)

	if err := repo.db.WithContext(ctx).Create(demandM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create demand")
	}

	demand.ID = demandM.ID
	demand.CreatedAt = demandM.CreatedAt

	return nil
}

func (repo *demandRepository) FindDemandByID(ctx context.Context, id uuid.UUID) (*entity.Demand, error) {
	var demandM model.DemandModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&demandM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDemandNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find demand by ID")
	}

	return toDemandDomain(&demandM), nil
}

func (repo *demandRepository) FindDemandsByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Demand, error) {
	var demandModels []*model.DemandModel

	if err := repo.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&demandModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find demands by buyer")
	}

	return toDemandDomains(demandModels), nil
}

func (repo *demandRepository) FindOpenDemands(ctx context.Context, productName string, maxQuantity decimal.Decimal) ([]*entity.Demand, error) {
	var demandModels []*model.DemandModel

	if err := repo.db.WithContext(ctx).
		Where("product_name = ? AND status = ? AND desired_quantity <= ?",
			productName, string(entity.DemandStatusOpen), maxQuantity).
		Order("created_at ASC").
		Find(&demandModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find open demands")
	}

	return toDemandDomains(demandModels), nil
}

func (repo *demandRepository) DeleteDemand(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DemandModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete demand")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDemandNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDemandDomains(models []*model.DemandModel) []*entity.Demand {
	demands := make([]*entity.Demand, 0, len(models))
	for _, m := range models {
		demands = append(demands, toDemandDomain(m))
	}

	return demands
}

func toDemandDomain(data *model.DemandModel) *entity.Demand {
	if data == nil {
		return nil
	}

	return &entity.Demand{
		ID:              data.ID,
		BuyerID:         data.BuyerID,
		ProductName:     data.ProductName,
		DesiredQuantity: data.DesiredQuantity,
		Unit:            data.Unit,
		DesiredPrice:    data.DesiredPrice,
		Location:        model.JoinPoint(data.Latitude, data.Longitude),
		Status:          entity.DemandStatus(data.Status),
		CreatedAt:       data.CreatedAt,
	}
}

func fromDemandDomain(data *entity.Demand) *model.DemandModel {
	if data == nil {
		return nil
	}
	lat, lng := model.SplitPoint(data.Location)

	return &model.DemandModel{
		ID:              data.ID,
		BuyerID:         data.BuyerID,
		ProductName:     data.ProductName,
		DesiredQuantity: data.DesiredQuantity,
		Unit:            data.Unit,
		DesiredPrice:    data.DesiredPrice,
		Latitude:        lat,
		Longitude:       lng,
		Status:          string(data.Status),
		CreatedAt:       data.CreatedAt,
	}
}
