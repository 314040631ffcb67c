package impl

import (
	"context"
	"testing"

	"harvest/internal/domain/entity"
	"harvest/internal/domain/geo"
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

type matchingFixtures struct {
	service     usecase.MatchingUsecase
	store       *memStore
	listingRepo *mockRepo.MockListingRepository
	demandRepo  *mockRepo.MockDemandRepository
	addressRepo *mockRepo.MockAddressRepository
	geocoder    *mockSvc.MockGeocoder
	dispatcher  *mockUsecase.MockDispatcherUsecase
	metrics     *recordingMetrics
}

func createTestMatchingService(t *testing.T) matchingFixtures {
	fx := matchingFixtures{
		store:       newMemStore(),
		listingRepo: mockRepo.NewMockListingRepository(t),
		demandRepo:  mockRepo.NewMockDemandRepository(t),
		addressRepo: mockRepo.NewMockAddressRepository(t),
		geocoder:    mockSvc.NewMockGeocoder(t),
		dispatcher:  mockUsecase.NewMockDispatcherUsecase(t),
		metrics:     newRecordingMetrics(),
	}
	fx.service = NewMatchingService(MatchingServiceParams{
		TxManager:   fx.store,
		ListingRepo: fx.listingRepo,
		DemandRepo:  fx.demandRepo,
		AddressRepo: fx.addressRepo,
		Geocoder:    fx.geocoder,
		Dispatcher:  fx.dispatcher,
		Metrics:     fx.metrics,
		Logger:      newDiscardLogger(),
	})

	return fx
}

// recordDeliveries captures the recipients in dispatch order.
func (fx matchingFixtures) recordDeliveries() *[]uuid.UUID {
	var recipients []uuid.UUID
	fx.dispatcher.EXPECT().
		DeliverToUser(mock.Anything, mock.AnythingOfType("entity.Delivery")).
		RunAndReturn(func(_ context.Context, d entity.Delivery) entity.DeliveryOutcome {
			recipients = append(recipients, d.UserID)

			return entity.DeliveryUndelivered
		}).
		Maybe()

	return &recipients
}

func newDemand(lat, lng float64) *entity.Demand {
	return &entity.Demand{
		ID:              uuid.New(),
		BuyerID:         uuid.New(),
		ProductName:     "durian",
		DesiredQuantity: decimal.NewFromInt(10),
		Unit:            "kg",
		Location:        geo.Point(lat, lng),
		Status:          entity.DemandStatusOpen,
	}
}

func TestMatchingService_OnNewDemand_NearestSellerNotifiedFirst(t *testing.T) {
	fx := createTestMatchingService(t)
	recipients := fx.recordDeliveries()

	demand := newDemand(13.0, 100.0)

	// No coordinate and the seller has no stored address: unknown distance.
	unknown := newAvailableListing(uuid.New(), 20, "80")
	// About 2 km north of the demand.
	near := newAvailableListing(uuid.New(), 15, "85")
	near.Location = geo.Point(13.018, 100.0)

	fx.listingRepo.EXPECT().
		FindMatchingListings(mock.Anything, "durian", demand.DesiredQuantity).
		Return([]*entity.Listing{unknown, near}, nil)
	fx.addressRepo.EXPECT().
		FindPrimaryAddressByOwner(mock.Anything, unknown.SellerID).
		Return(nil, repository.ErrAddressNotFound)

	ranked, err := fx.service.OnNewDemand(context.Background(), demand)
	require.NoError(t, err)

	require.Len(t, ranked, 2)
	assert.Equal(t, near.ID, ranked[0].Listing.ID)
	require.NotNil(t, ranked[0].DistanceKm)
	assert.InDelta(t, 2.0, *ranked[0].DistanceKm, 0.01)
	assert.Equal(t, unknown.ID, ranked[1].Listing.ID)
	assert.Nil(t, ranked[1].DistanceKm)

	assert.Equal(t, []uuid.UUID{near.SellerID, unknown.SellerID}, *recipients)

	matches := fx.store.allMatches()
	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.Equal(t, entity.MatchStatusPending, m.Status)
		assert.Equal(t, demand.ID, m.DemandID)
	}
	notifications := fx.store.allNotifications()
	require.Len(t, notifications, 2)
	assert.Equal(t, near.SellerID, notifications[0].UserID)
	assert.Equal(t, entity.NotificationTypeMatch, notifications[0].Type)
	assert.Equal(t, 2, fx.metrics.matches)
}

func TestMatchingService_OnNewDemand_GeocodesEachSellerOncePerPass(t *testing.T) {
	fx := createTestMatchingService(t)
	fx.recordDeliveries()

	demand := newDemand(13.0, 100.0)
	sellerID := uuid.New()
	first := newAvailableListing(sellerID, 20, "80")
	second := newAvailableListing(sellerID, 30, "82")
	addressID := uuid.New()
	farm := orb.Point{100.0, 13.05}

	fx.listingRepo.EXPECT().
		FindMatchingListings(mock.Anything, "durian", demand.DesiredQuantity).
		Return([]*entity.Listing{first, second}, nil)
	fx.addressRepo.EXPECT().
		FindPrimaryAddressByOwner(mock.Anything, sellerID).
		Return(&entity.Address{ID: addressID, OwnerID: sellerID, FullAddress: "12 Farm Rd, Chanthaburi"}, nil).
		Once()
	fx.geocoder.EXPECT().
		Resolve(mock.Anything, "12 Farm Rd, Chanthaburi").
		Return(&farm, nil).
		Once()
	fx.addressRepo.EXPECT().
		UpdateLocation(mock.Anything, addressID, farm).
		Return(nil).
		Once()

	ranked, err := fx.service.OnNewDemand(context.Background(), demand)
	require.NoError(t, err)

	require.Len(t, ranked, 2)
	for _, r := range ranked {
		require.NotNil(t, r.DistanceKm)
		assert.InDelta(t, 5.56, *r.DistanceKm, 0.01)
	}
}

func TestMatchingService_OnNewDemand_GeocodeFailureIsUnknown(t *testing.T) {
	fx := createTestMatchingService(t)
	fx.recordDeliveries()

	demand := newDemand(13.0, 100.0)
	sellerID := uuid.New()
	first := newAvailableListing(sellerID, 20, "80")
	second := newAvailableListing(sellerID, 25, "80")

	fx.listingRepo.EXPECT().
		FindMatchingListings(mock.Anything, "durian", demand.DesiredQuantity).
		Return([]*entity.Listing{first, second}, nil)
	fx.addressRepo.EXPECT().
		FindPrimaryAddressByOwner(mock.Anything, sellerID).
		Return(&entity.Address{ID: uuid.New(), OwnerID: sellerID, FullAddress: "somewhere"}, nil).
		Once()
	fx.geocoder.EXPECT().
		Resolve(mock.Anything, "somewhere").
		Return(nil, errors.New("OVER_QUERY_LIMIT")).
		Once()

	ranked, err := fx.service.OnNewDemand(context.Background(), demand)
	require.NoError(t, err)

	require.Len(t, ranked, 2)
	assert.Nil(t, ranked[0].DistanceKm)
	assert.Nil(t, ranked[1].DistanceKm)
	assert.Len(t, fx.store.allMatches(), 2)
}

func TestMatchingService_OnNewDemand_RepeatedListingMatchedOnce(t *testing.T) {
	fx := createTestMatchingService(t)
	recipients := fx.recordDeliveries()

	demand := newDemand(13.0, 100.0)
	listing := newAvailableListing(uuid.New(), 20, "80")
	listing.Location = geo.Point(13.1, 100.1)

	fx.listingRepo.EXPECT().
		FindMatchingListings(mock.Anything, "durian", demand.DesiredQuantity).
		Return([]*entity.Listing{listing, listing}, nil)

	ranked, err := fx.service.OnNewDemand(context.Background(), demand)
	require.NoError(t, err)

	assert.Len(t, ranked, 1)
	assert.Len(t, fx.store.allMatches(), 1)
	assert.Len(t, *recipients, 1)
}

func TestMatchingService_OnNewDemand_TransactionsHaveDeadline(t *testing.T) {
	fx := createTestMatchingService(t)
	fx.recordDeliveries()

	demand := newDemand(13.0, 100.0)
	first := newAvailableListing(uuid.New(), 20, "80")
	first.Location = geo.Point(13.1, 100.1)
	second := newAvailableListing(uuid.New(), 20, "82")
	second.Location = geo.Point(13.2, 100.2)

	fx.listingRepo.EXPECT().
		FindMatchingListings(mock.Anything, "durian", demand.DesiredQuantity).
		Return([]*entity.Listing{first, second}, nil)

	// The caller's context has no deadline of its own.
	_, err := fx.service.OnNewDemand(context.Background(), demand)
	require.NoError(t, err)

	assert.Equal(t, []bool{true, true}, fx.store.transactionDeadlines())
}

func TestMatchingService_OnNewDemand_FailedCandidateDoesNotStopOthers(t *testing.T) {
	fx := createTestMatchingService(t)
	recipients := fx.recordDeliveries()

	demand := newDemand(13.0, 100.0)
	first := newAvailableListing(uuid.New(), 20, "80")
	first.Location = geo.Point(13.01, 100.0)
	second := newAvailableListing(uuid.New(), 20, "80")
	second.Location = geo.Point(13.02, 100.0)

	fx.listingRepo.EXPECT().
		FindMatchingListings(mock.Anything, "durian", demand.DesiredQuantity).
		Return([]*entity.Listing{first, second}, nil)

	fx.store.failCommits = 1

	ranked, err := fx.service.OnNewDemand(context.Background(), demand)
	require.NoError(t, err)

	assert.Len(t, ranked, 2)
	matches := fx.store.allMatches()
	require.Len(t, matches, 1)
	assert.Equal(t, second.ID, matches[0].ListingID)
	assert.Equal(t, []uuid.UUID{second.SellerID}, *recipients)
}

func TestMatchingService_OnNewDemand_QueryError(t *testing.T) {
	fx := createTestMatchingService(t)

	demand := newDemand(13.0, 100.0)
	fx.listingRepo.EXPECT().
		FindMatchingListings(mock.Anything, "durian", demand.DesiredQuantity).
		Return(nil, errors.New("database error"))

	ranked, err := fx.service.OnNewDemand(context.Background(), demand)
	assert.Nil(t, ranked)
	assert.ErrorContains(t, err, "failed to find matching listings")
}

func TestMatchingService_OnNewListing_NotifiesBuyers(t *testing.T) {
	fx := createTestMatchingService(t)
	recipients := fx.recordDeliveries()

	listing := newAvailableListing(uuid.New(), 40, "80")
	listing.Location = geo.Point(13.0, 100.0)
	located := newDemand(13.0, 100.0)
	anywhere := newDemand(0, 0)
	anywhere.Location = nil

	fx.demandRepo.EXPECT().
		FindOpenDemands(mock.Anything, "durian", listing.QuantityAvailable).
		Return([]*entity.Demand{located, anywhere}, nil)

	matched, err := fx.service.OnNewListing(context.Background(), listing)
	require.NoError(t, err)

	assert.Equal(t, 2, matched)
	assert.Equal(t, []uuid.UUID{located.BuyerID, anywhere.BuyerID}, *recipients)

	matches := fx.store.allMatches()
	require.Len(t, matches, 2)
	require.NotNil(t, matches[0].DistanceKm)
	assert.Zero(t, *matches[0].DistanceKm)
	assert.Nil(t, matches[1].DistanceKm)

	for _, n := range fx.store.allNotifications() {
		assert.Equal(t, entity.NotificationTypeMatch, n.Type)
		assert.Equal(t, listing.ID, *n.RelatedID)
	}
}
