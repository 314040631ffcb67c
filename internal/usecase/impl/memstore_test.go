package impl

import (
	"context"
	"maps"
	"slices"
	"sync"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory transactional store. A transaction holds the
// store lock from start to commit, which is at least as strict as the row
// locks the postgres repositories take.
type memStore struct {
	mu            sync.Mutex
	listings      map[uuid.UUID]entity.Listing
	orders        map[uuid.UUID]entity.Order
	matches       []entity.Match
	notifications []entity.Notification

	// failCommits makes the next n explicit transactions fail at commit.
	failCommits int
	commits     int

	// txHadDeadline records, per explicit transaction, whether its context
	// carried a deadline.
	txHadDeadline []bool
}

func newMemStore() *memStore {
	return &memStore{
		listings: make(map[uuid.UUID]entity.Listing),
		orders:   make(map[uuid.UUID]entity.Order),
	}
}

func (s *memStore) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	_, hasDeadline := ctx.Deadline()
	s.mu.Lock()
	s.txHadDeadline = append(s.txHadDeadline, hasDeadline)
	s.mu.Unlock()

	return s.run(ctx, fn, true)
}

func (s *memStore) transactionDeadlines() []bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.txHadDeadline)
}

func (s *memStore) run(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error, explicit bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &memTx{
		listings:      maps.Clone(s.listings),
		orders:        maps.Clone(s.orders),
		matches:       slices.Clone(s.matches),
		notifications: slices.Clone(s.notifications),
	}
	if err := fn(tx); err != nil {
		return err
	}

	if explicit && s.failCommits > 0 {
		s.failCommits--

		return domainerrors.NewDatabaseExecuteError(errors.New("connection reset by peer"), "failed to commit transaction")
	}

	s.listings = tx.listings
	s.orders = tx.orders
	s.matches = tx.matches
	s.notifications = tx.notifications
	if explicit {
		s.commits++
	}

	return nil
}

func (s *memStore) putListing(l *entity.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings[l.ID] = *l
}

func (s *memStore) putOrder(o *entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = *o
}

func (s *memStore) listing(id uuid.UUID) entity.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listings[id]
}

func (s *memStore) order(id uuid.UUID) entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.orders[id]
}

func (s *memStore) allOrders() []entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Collect(maps.Values(s.orders))
}

func (s *memStore) allMatches() []entity.Match {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.matches)
}

func (s *memStore) allNotifications() []entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.notifications)
}

// listingRepo and orderRepo give autocommit access for reads made outside
// a transaction.
func (s *memStore) listingRepo() repository.ListingRepository {
	return &autoListingRepo{store: s}
}

func (s *memStore) orderRepo() repository.OrderRepository {
	return &autoOrderRepo{store: s}
}

type memTx struct {
	listings      map[uuid.UUID]entity.Listing
	orders        map[uuid.UUID]entity.Order
	matches       []entity.Match
	notifications []entity.Notification
}

func (tx *memTx) NewListingRepository() repository.ListingRepository {
	return &memListingRepo{tx: tx}
}

func (tx *memTx) NewDemandRepository() repository.DemandRepository {
	panic("demands are not kept in memStore")
}

func (tx *memTx) NewMatchRepository() repository.MatchRepository {
	return &memMatchRepo{tx: tx}
}

func (tx *memTx) NewOrderRepository() repository.OrderRepository {
	return &memOrderRepo{tx: tx}
}

func (tx *memTx) NewNotificationRepository() repository.NotificationRepository {
	return &memNotificationRepo{tx: tx}
}

type memListingRepo struct {
	repository.ListingRepository
	tx *memTx
}

func (r *memListingRepo) CreateListing(_ context.Context, listing *entity.Listing) error {
	r.tx.listings[listing.ID] = *listing

	return nil
}

func (r *memListingRepo) FindListingByID(_ context.Context, id uuid.UUID) (*entity.Listing, error) {
	listing, ok := r.tx.listings[id]
	if !ok {
		return nil, repository.ErrListingNotFound
	}

	return &listing, nil
}

func (r *memListingRepo) FindListingByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	return r.FindListingByID(ctx, id)
}

func (r *memListingRepo) UpdateListing(_ context.Context, listing *entity.Listing) error {
	if _, ok := r.tx.listings[listing.ID]; !ok {
		return repository.ErrListingNotFound
	}
	r.tx.listings[listing.ID] = *listing

	return nil
}

type memOrderRepo struct {
	repository.OrderRepository
	tx *memTx
}

func (r *memOrderRepo) CreateOrder(_ context.Context, order *entity.Order) error {
	for _, existing := range r.tx.orders {
		if existing.ConfirmationCode == order.ConfirmationCode {
			return repository.ErrDuplicateConfirmationCode
		}
	}
	r.tx.orders[order.ID] = *order

	return nil
}

func (r *memOrderRepo) FindOrderByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	order, ok := r.tx.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}

	return &order, nil
}

func (r *memOrderRepo) FindOrderByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return r.FindOrderByID(ctx, id)
}

func (r *memOrderRepo) ConfirmationCodeExists(_ context.Context, code string) (bool, error) {
	for _, existing := range r.tx.orders {
		if existing.ConfirmationCode == code {
			return true, nil
		}
	}

	return false, nil
}

func (r *memOrderRepo) UpdateOrderStatus(_ context.Context, id uuid.UUID, status entity.OrderStatus) error {
	order, ok := r.tx.orders[id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	order.Status = status
	r.tx.orders[id] = order

	return nil
}

type memMatchRepo struct {
	repository.MatchRepository
	tx *memTx
}

func (r *memMatchRepo) CreateMatch(_ context.Context, match *entity.Match) error {
	r.tx.matches = append(r.tx.matches, *match)

	return nil
}

type memNotificationRepo struct {
	repository.NotificationRepository
	tx *memTx
}

func (r *memNotificationRepo) CreateNotification(_ context.Context, notification *entity.Notification) error {
	r.tx.notifications = append(r.tx.notifications, *notification)

	return nil
}

type autoListingRepo struct {
	repository.ListingRepository
	store *memStore
}

func (r *autoListingRepo) FindListingByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listing *entity.Listing
	err := r.store.run(ctx, func(f repository.RepositoryFactory) error {
		var err error
		listing, err = f.NewListingRepository().FindListingByID(ctx, id)

		return err
	}, false)

	return listing, err
}

type autoOrderRepo struct {
	repository.OrderRepository
	store *memStore
}

func (r *autoOrderRepo) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order *entity.Order
	err := r.store.run(ctx, func(f repository.RepositoryFactory) error {
		var err error
		order, err = f.NewOrderRepository().FindOrderByID(ctx, id)

		return err
	}, false)

	return order, err
}

func newAvailableListing(sellerID uuid.UUID, available int64, price string) *entity.Listing {
	return &entity.Listing{
		ID:                uuid.New(),
		SellerID:          sellerID,
		ProductName:       "durian",
		QuantityTotal:     decimal.NewFromInt(available),
		QuantityAvailable: decimal.NewFromInt(available),
		PricePerUnit:      decimal.RequireFromString(price),
		Status:            entity.ListingStatusAvailable,
	}
}
