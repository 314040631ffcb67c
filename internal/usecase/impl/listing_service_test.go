package impl

import (
	"context"
	"testing"
	"time"

	"harvest/config"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	mockRepo "harvest/internal/mocks/repository"
	mockSvc "harvest/internal/mocks/service"
	mockUsecase "harvest/internal/mocks/usecase"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type listingFixtures struct {
	service     usecase.ListingUsecase
	store       *memStore
	listingRepo *mockRepo.MockListingRepository
	addressRepo *mockRepo.MockAddressRepository
	geocoder    *mockSvc.MockGeocoder
	matching    *mockUsecase.MockMatchingUsecase
}

func createTestListingService(t *testing.T) *listingFixtures {
	fx := &listingFixtures{
		store:       newMemStore(),
		listingRepo: mockRepo.NewMockListingRepository(t),
		addressRepo: mockRepo.NewMockAddressRepository(t),
		geocoder:    mockSvc.NewMockGeocoder(t),
		matching:    mockUsecase.NewMockMatchingUsecase(t),
	}

	cfg := &config.Config{}
	cfg.Market.PriceWindowDays = 7

	fx.service = NewListingService(ListingServiceParams{
		TxManager:   fx.store,
		ListingRepo: fx.listingRepo,
		AddressRepo: fx.addressRepo,
		Geocoder:    fx.geocoder,
		Matching:    fx.matching,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func floatPtr(v float64) *float64 { return &v }

func validListingInput() *usecase.CreateListingInput {
	return &usecase.CreateListingInput{
		ProductName:  "  Mangosteen ",
		Quantity:     decimal.NewFromInt(40),
		PricePerUnit: decimal.RequireFromString("35.5"),
		PickupDate:   time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestListingService_CreateListing(t *testing.T) {
	t.Run("explicit coordinates skip address lookup", func(t *testing.T) {
		fx := createTestListingService(t)
		sellerID := uuid.New()

		input := validListingInput()
		input.Latitude = floatPtr(12.61)
		input.Longitude = floatPtr(102.1)

		var stored *entity.Listing
		fx.listingRepo.EXPECT().
			CreateListing(mock.Anything, mock.AnythingOfType("*entity.Listing")).
			Run(func(_ context.Context, l *entity.Listing) { stored = l }).
			Return(nil).
			Once()
		fx.matching.EXPECT().
			OnNewListing(mock.Anything, mock.AnythingOfType("*entity.Listing")).
			Return(2, nil).
			Once()

		listing, err := fx.service.CreateListing(context.Background(), sellerID, input)
		require.NoError(t, err)

		assert.Same(t, stored, listing)
		assert.Equal(t, "Mangosteen", listing.ProductName)
		assert.Equal(t, entity.ListingStatusAvailable, listing.Status)
		assert.True(t, listing.QuantityAvailable.Equal(listing.QuantityTotal))
		require.NotNil(t, listing.Location)
		assert.InDelta(t, 12.61, listing.Location.Lat(), 1e-9)
		assert.InDelta(t, 102.1, listing.Location.Lon(), 1e-9)
	})

	t.Run("falls back to the seller's primary address", func(t *testing.T) {
		fx := createTestListingService(t)
		sellerID := uuid.New()
		farm := orb.Point{102.1, 12.61}

		fx.addressRepo.EXPECT().
			FindPrimaryAddressByOwner(mock.Anything, sellerID).
			Return(&entity.Address{ID: uuid.New(), OwnerID: sellerID, Location: &farm}, nil).
			Once()
		fx.listingRepo.EXPECT().
			CreateListing(mock.Anything, mock.AnythingOfType("*entity.Listing")).
			Return(nil).
			Once()
		fx.matching.EXPECT().
			OnNewListing(mock.Anything, mock.AnythingOfType("*entity.Listing")).
			Return(0, errors.New("demand query failed")).
			Once()

		listing, err := fx.service.CreateListing(context.Background(), sellerID, validListingInput())
		require.NoError(t, err, "matching failures must not fail the listing")
		assert.Equal(t, &farm, listing.Location)
	})

	t.Run("rejects invalid input before touching storage", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(in *usecase.CreateListingInput)
		}{
			{name: "blank product", mutate: func(in *usecase.CreateListingInput) { in.ProductName = " " }},
			{name: "zero quantity", mutate: func(in *usecase.CreateListingInput) { in.Quantity = decimal.Zero }},
			{name: "negative price", mutate: func(in *usecase.CreateListingInput) { in.PricePerUnit = decimal.NewFromInt(-1) }},
			{name: "no pickup date", mutate: func(in *usecase.CreateListingInput) { in.PickupDate = time.Time{} }},
			{name: "half a coordinate", mutate: func(in *usecase.CreateListingInput) { in.Latitude = floatPtr(13) }},
			{
				name: "latitude out of range",
				mutate: func(in *usecase.CreateListingInput) {
					in.Latitude, in.Longitude = floatPtr(91), floatPtr(100)
				},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				fx := createTestListingService(t)
				input := validListingInput()
				tt.mutate(input)

				listing, err := fx.service.CreateListing(context.Background(), uuid.New(), input)
				assert.Nil(t, listing)
				assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
			})
		}
	})
}

func TestListingService_UpdateListing_Restock(t *testing.T) {
	fx := createTestListingService(t)
	sellerID := uuid.New()

	listing := newAvailableListing(sellerID, 10, "20")
	listing.Reserve(decimal.NewFromInt(10))
	fx.store.putListing(listing)
	require.Equal(t, entity.ListingStatusSoldOut, fx.store.listing(listing.ID).Status)

	total := decimal.NewFromInt(15)
	price := decimal.NewFromInt(18)
	updated, err := fx.service.UpdateListing(context.Background(), sellerID, listing.ID, &usecase.UpdateListingInput{
		QuantityTotal: &total,
		PricePerUnit:  &price,
	})
	require.NoError(t, err)

	assert.True(t, updated.QuantityAvailable.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, entity.ListingStatusAvailable, updated.Status)

	stored := fx.store.listing(listing.ID)
	assert.True(t, stored.QuantityTotal.Equal(total))
	assert.True(t, stored.PricePerUnit.Equal(price))
	assert.Equal(t, entity.ListingStatusAvailable, stored.Status)
}

func TestListingService_UpdateListing_LockIsBounded(t *testing.T) {
	fx := createTestListingService(t)
	sellerID := uuid.New()
	listing := newAvailableListing(sellerID, 10, "20")
	fx.store.putListing(listing)

	grade := "B"
	_, err := fx.service.UpdateListing(context.Background(), sellerID, listing.ID, &usecase.UpdateListingInput{Grade: &grade})
	require.NoError(t, err)

	assert.Equal(t, []bool{true}, fx.store.transactionDeadlines())
}

func TestListingService_UpdateListing_Rejections(t *testing.T) {
	fx := createTestListingService(t)
	sellerID := uuid.New()
	listing := newAvailableListing(sellerID, 10, "20")
	fx.store.putListing(listing)

	grade := "A"
	_, err := fx.service.UpdateListing(context.Background(), uuid.New(), listing.ID, &usecase.UpdateListingInput{Grade: &grade})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.UpdateListing(context.Background(), sellerID, uuid.New(), &usecase.UpdateListingInput{Grade: &grade})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	zero := decimal.Zero
	_, err = fx.service.UpdateListing(context.Background(), sellerID, listing.ID, &usecase.UpdateListingInput{QuantityTotal: &zero})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	assert.Nil(t, fx.store.listing(listing.ID).Grade)
}

func TestListingService_DeleteListing(t *testing.T) {
	fx := createTestListingService(t)
	sellerID := uuid.New()
	listing := newAvailableListing(sellerID, 3, "9")

	fx.listingRepo.EXPECT().FindListingByID(mock.Anything, listing.ID).Return(listing, nil).Twice()
	fx.listingRepo.EXPECT().DeleteListing(mock.Anything, listing.ID).Return(nil).Once()

	assert.ErrorIs(t, fx.service.DeleteListing(context.Background(), uuid.New(), listing.ID), domainerrors.ErrForbidden)
	assert.NoError(t, fx.service.DeleteListing(context.Background(), sellerID, listing.ID))

	missing := uuid.New()
	fx.listingRepo.EXPECT().FindListingByID(mock.Anything, missing).Return(nil, repository.ErrListingNotFound).Once()
	assert.ErrorIs(t, fx.service.DeleteListing(context.Background(), sellerID, missing), domainerrors.ErrNotFound)
}

func TestListingService_ListSellerListings(t *testing.T) {
	fx := createTestListingService(t)
	sellerID := uuid.New()
	want := []*entity.Listing{newAvailableListing(sellerID, 1, "1")}

	fx.listingRepo.EXPECT().
		ListListings(mock.Anything, entity.ListingFilter{SellerID: &sellerID}).
		Return(want, nil).
		Once()

	got, err := fx.service.ListSellerListings(context.Background(), sellerID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListingService_SuggestPrice(t *testing.T) {
	t.Run("summarizes recent prices", func(t *testing.T) {
		fx := createTestListingService(t)

		fx.listingRepo.EXPECT().
			FindPricesSince(mock.Anything, "durian", mock.AnythingOfType("time.Time")).
			RunAndReturn(func(_ context.Context, _ string, since time.Time) ([]decimal.Decimal, error) {
				assert.WithinDuration(t, time.Now().AddDate(0, 0, -7), since, time.Minute)

				return []decimal.Decimal{
					decimal.NewFromInt(100),
					decimal.NewFromInt(80),
					decimal.RequireFromString("120.5"),
				}, nil
			}).
			Once()

		suggestion, err := fx.service.SuggestPrice(context.Background(), " durian ")
		require.NoError(t, err)

		assert.Equal(t, 3, suggestion.Count)
		assert.Equal(t, 7, suggestion.Days)
		assert.Equal(t, "100.17", suggestion.Average.String())
		assert.Equal(t, "80", suggestion.Low.String())
		assert.Equal(t, "120.5", suggestion.High.String())
	})

	t.Run("no history", func(t *testing.T) {
		fx := createTestListingService(t)
		fx.listingRepo.EXPECT().
			FindPricesSince(mock.Anything, "rambutan", mock.AnythingOfType("time.Time")).
			Return(nil, nil).
			Once()

		suggestion, err := fx.service.SuggestPrice(context.Background(), "rambutan")
		require.NoError(t, err)
		assert.Zero(t, suggestion.Count)
		assert.Nil(t, suggestion.Average)
	})

	t.Run("product required", func(t *testing.T) {
		fx := createTestListingService(t)
		_, err := fx.service.SuggestPrice(context.Background(), "")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})
}
