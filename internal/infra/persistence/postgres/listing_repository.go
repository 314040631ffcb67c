package postgres

import (
	"context"
	"time"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/errors"
	"harvest/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// listingRepository implements the repository.ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

func (repo *listingRepository) CreateListing(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WithDetails("listing violates stock constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

func (repo *listingRepository) FindListingByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// FindListingByIDForUpdate issues SELECT ... FOR UPDATE; it must run inside a transaction.
func (repo *listingRepository) FindListingByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	return repo.findByID(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *listingRepository) findByID(db *gorm.DB, id uuid.UUID) (*entity.Listing, error) {
	var listingM model.ListingModel

	if err := db.Where("id = ?", id).First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find listing by ID")
	}

	return toListingDomain(&listingM), nil
}

func (repo *listingRepository) FindMatchingListings(ctx context.Context, productName string, minAvailable decimal.Decimal) ([]*entity.Listing, error) {
	var listingModels []*model.ListingModel

	if err := repo.db.WithContext(ctx).
		Where("product_name = ? AND status = ? AND quantity_available >= ?",
			productName, string(entity.ListingStatusAvailable), minAvailable).
		Order("created_at ASC").
		Find(&listingModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find matching listings")
	}

	return toListingDomains(listingModels), nil
}

func (repo *listingRepository) ListListings(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, error) {
	var listingModels []*model.ListingModel

	query := repo.db.WithContext(ctx).Model(&model.ListingModel{})
	if filter.ProductName != "" {
		query = query.Where("product_name = ?", filter.ProductName)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.SellerID != nil {
		query = query.Where("seller_id = ?", *filter.SellerID)
	}

	if err := query.Order("created_at DESC").Find(&listingModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list listings")
	}

	return toListingDomains(listingModels), nil
}

func (repo *listingRepository) UpdateListing(ctx context.Context, listing *entity.Listing) error {
	lat, lng := model.SplitPoint(listing.Location)

	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ?", listing.ID).
		Updates(map[string]any{
			"product_name":       listing.ProductName,
			"grade":              listing.Grade,
			"description":        listing.Description,
			"quantity_total":     listing.QuantityTotal,
			"quantity_available": listing.QuantityAvailable,
			"price_per_unit":     listing.PricePerUnit,
			"pickup_date":        listing.PickupDate,
			"status":             string(listing.Status),
			"latitude":           lat,
			"longitude":          lng,
			"updated_at":         time.Now(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

func (repo *listingRepository) DeleteListing(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ListingModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WithDetails("listing has orders")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

func (repo *listingRepository) FindPricesSince(ctx context.Context, productName string, since time.Time) ([]decimal.Decimal, error) {
	var prices []decimal.Decimal

	if err := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("product_name = ? AND created_at >= ?", productName, since).
		Pluck("price_per_unit", &prices).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load recent prices")
	}

	return prices, nil
}

func (repo *listingRepository) DistinctAvailableProducts(ctx context.Context) ([]string, error) {
	var names []string

	if err := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("status = ?", string(entity.ListingStatusAvailable)).
		Distinct("product_name").
		Order("product_name ASC").
		Pluck("product_name", &names).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load product options")
	}

	return names, nil
}

// --- Mapper Functions ---

func toListingDomains(models []*model.ListingModel) []*entity.Listing {
	listings := make([]*entity.Listing, 0, len(models))
	for _, m := range models {
		listings = append(listings, toListingDomain(m))
	}

	return listings
}

func toListingDomain(data *model.ListingModel) *entity.Listing {
	if data == nil {
		return nil
	}

	return &entity.Listing{
		ID:                data.ID,
		SellerID:          data.SellerID,
		ProductName:       data.ProductName,
		Grade:             data.Grade,
		Description:       data.Description,
		QuantityTotal:     data.QuantityTotal,
		QuantityAvailable: data.QuantityAvailable,
		PricePerUnit:      data.PricePerUnit,
		PickupDate:        data.PickupDate,
		Status:            entity.ListingStatus(data.Status),
		Location:          model.JoinPoint(data.Latitude, data.Longitude),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromListingDomain(data *entity.Listing) *model.ListingModel {
	if data == nil {
		return nil
	}
	lat, lng := model.SplitPoint(data.Location)

	return &model.ListingModel{
		ID:                data.ID,
		SellerID:          data.SellerID,
		ProductName:       data.ProductName,
		Grade:             data.Grade,
		Description:       data.Description,
		QuantityTotal:     data.QuantityTotal,
		QuantityAvailable: data.QuantityAvailable,
		PricePerUnit:      data.PricePerUnit,
		PickupDate:        data.PickupDate,
		Status:            string(data.Status),
		Latitude:          lat,
		Longitude:         lng,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
