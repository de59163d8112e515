package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventory-service/internal/model"
	"inventory-service/prometheus"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductStore performs the per-row operations on the products table. Each
// operation is individually atomic at the database; the read-then-write pairs
// in Update and Delete are not wrapped in a transaction.
type ProductStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

// Get fetches a single product by id.
func (s *ProductStore) Get(ctx context.Context, id string) (*model.Product, error) {
	defer prometheus.TrackDBOperation("select")(time.Now())

	var product model.Product
	err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch product: %w", err)
	}
	return &product, nil
}

// List returns every product projected to the summary shape. Ordering is
// whatever the backend yields.
func (s *ProductStore) List(ctx context.Context) ([]model.ProductSummary, error) {
	defer prometheus.TrackDBOperation("select")(time.Now())

	summaries := []model.ProductSummary{}
	err := s.db.WithContext(ctx).
		Model(&model.Product{}).
		Select("id", "name", "price").
		Find(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return summaries, nil
}

// Create assigns a fresh identifier and persists the product with a single
// insert.
func (s *ProductStore) Create(ctx context.Context, product *model.Product) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	product.ID = uuid.NewString()
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	prometheus.RecordProductOperation("create")
	return nil
}

// Update reads the current row, writes only the change-set columns and
// returns both snapshots. A row that vanishes between the read and the write
// surfaces as ErrNotFound rather than a silent success.
func (s *ProductStore) Update(ctx context.Context, id string, changes model.ChangeSet) (*model.Product, *model.Product, error) {
	before, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if len(changes) == 0 {
		after := *before
		return before, &after, nil
	}

	defer prometheus.TrackDBOperation("update")(time.Now())

	result := s.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}(changes))
	if result.Error != nil {
		return nil, nil, fmt.Errorf("update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil, model.ErrNotFound
	}
	prometheus.RecordProductOperation("update")
	return before, applyChangeSet(*before, changes), nil
}

// Delete reads the current row for the audit trail, then removes it.
func (s *ProductStore) Delete(ctx context.Context, id string) (*model.Product, error) {
	before, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())

	result := s.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id)
	if result.Error != nil {
		return nil, fmt.Errorf("delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, model.ErrNotFound
	}
	prometheus.RecordProductOperation("delete")
	return before, nil
}

// applyChangeSet produces the post-update snapshot by applying the change-set
// to a copy of the pre-update row.
func applyChangeSet(product model.Product, changes model.ChangeSet) *model.Product {
	for column, value := range changes {
		switch column {
		case "name":
			product.Name = value.(string)
		case "description":
			product.Description = value.(string)
		case "price":
			product.Price = value.(uint)
		case "quantity":
			product.Quantity = value.(uint)
		case "status":
			product.Status = value.(string)
		}
	}
	return &product
}
