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
	"github.com/paulmach/orb"
	"gorm.io/gorm"
)

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// FindPrimaryAddressByOwner retrieves the primary address for a user.
func (repo *addressRepository) FindPrimaryAddressByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND is_primary = ?", ownerID, true).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find primary address")
	}

	return &entity.Address{
		ID:          addressM.ID,
		OwnerID:     addressM.OwnerID,
		Label:       addressM.Label,
		FullAddress: addressM.FullAddress,
		Location:    model.JoinPoint(addressM.Latitude, addressM.Longitude),
		IsPrimary:   addressM.IsPrimary,
		CreatedAt:   addressM.CreatedAt,
		UpdatedAt:   addressM.UpdatedAt,
	}, nil
}

// UpdateLocation stores a resolved coordinate on an address.
func (repo *addressRepository) UpdateLocation(ctx context.Context, id uuid.UUID, location orb.Point) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"latitude":   location.Lat(),
			"longitude":  location.Lon(),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update address location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}
