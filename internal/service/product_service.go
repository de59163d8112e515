package service

import (
	"context"

	"inventory-service/internal/model"

	"go.uber.org/zap"
)

// ProductStore performs reads and mutations against the primary product
// records.
type ProductStore interface {
	Get(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context) ([]model.ProductSummary, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, id string, changes model.ChangeSet) (before, after *model.Product, err error)
	Delete(ctx context.Context, id string) (*model.Product, error)
}

// HistoryRecorder appends audit records to the history log and reads it
// back.
type HistoryRecorder interface {
	Record(ctx context.Context, kind, productID string, before, after *model.Product) error
	ListAll(ctx context.Context) ([]model.ProductHistory, error)
}

// ProductService orchestrates validated product mutations and their audit
// records. Every mutation is a fixed two-step sequence: the primary write,
// then a best-effort history append.
type ProductService struct {
	store    ProductStore
	recorder HistoryRecorder
	log      *zap.Logger
}

func NewProductService(store ProductStore, recorder HistoryRecorder, log *zap.Logger) *ProductService {
	return &ProductService{
		store:    store,
		recorder: recorder,
		log:      log,
	}
}

// Create validates the payload, persists a new product and records a CREATE
// history entry.
func (s *ProductService) Create(ctx context.Context, change model.ProductChange) (*model.Product, error) {
	product, err := validateCreate(change)
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, product); err != nil {
		return nil, err
	}
	s.record(ctx, model.ChangeKindCreate, product.ID, nil, product)

	s.log.Info("product created",
		zap.String("product_id", product.ID),
		zap.String("name", product.Name))
	return product, nil
}

// Get returns the product for an external identifier string.
func (s *ProductService) Get(ctx context.Context, rawID string) (*model.Product, error) {
	id, err := ParseProductID(rawID)
	if err != nil {
		return nil, err
	}
	return s.store.Get(ctx, id)
}

// List returns the summary projection of every product.
func (s *ProductService) List(ctx context.Context) ([]model.ProductSummary, error) {
	return s.store.List(ctx)
}

// History returns every audit record.
func (s *ProductService) History(ctx context.Context) ([]model.ProductHistory, error) {
	return s.recorder.ListAll(ctx)
}

// Update applies the present fields of the payload to an existing product
// and records an UPDATE history entry with before/after snapshots.
func (s *ProductService) Update(ctx context.Context, rawID string, change model.ProductChange) (*model.Product, error) {
	id, err := ParseProductID(rawID)
	if err != nil {
		return nil, err
	}
	changes := validateUpdate(change)
	before, after, err := s.store.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	s.record(ctx, model.ChangeKindUpdate, id, before, after)

	s.log.Info("product updated",
		zap.String("product_id", id),
		zap.Int("fields_changed", len(changes)))
	return after, nil
}

// Delete removes a product and records a DELETE history entry carrying the
// final snapshot.
func (s *ProductService) Delete(ctx context.Context, rawID string) error {
	id, err := ParseProductID(rawID)
	if err != nil {
		return err
	}
	before, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.record(ctx, model.ChangeKindDelete, id, before, nil)

	s.log.Info("product deleted", zap.String("product_id", id))
	return nil
}

// record appends one audit entry. Append failures are logged and swallowed:
// the primary mutation has already succeeded and is never rolled back, so the
// history row is simply missing.
func (s *ProductService) record(ctx context.Context, kind, productID string, before, after *model.Product) {
	if err := s.recorder.Record(ctx, kind, productID, before, after); err != nil {
		s.log.Warn("product history append failed",
			zap.String("change_kind", kind),
			zap.String("product_id", productID),
			zap.Error(err))
	}
}
