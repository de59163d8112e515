package store

import (
	"context"
	"fmt"
	"time"

	"inventory-service/internal/model"
	"inventory-service/prometheus"

	"gorm.io/gorm"
)

// HistoryRecorder appends audit records to the product_history table. Rows
// are insert-only; nothing here updates or deletes them.
type HistoryRecorder struct {
	db *gorm.DB
}

func NewHistoryRecorder(db *gorm.DB) *HistoryRecorder {
	return &HistoryRecorder{db: db}
}

// Record appends one audit row stamped with the current time. The caller
// decides whether a failure matters; the service layer treats it as
// best-effort.
func (r *HistoryRecorder) Record(ctx context.Context, kind, productID string, before, after *model.Product) error {
	entry := model.ProductHistory{
		ProductID:  productID,
		ChangedAt:  time.Now().UTC(),
		ChangeKind: kind,
		Before:     before,
		After:      after,
	}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		prometheus.RecordHistoryAppend("dropped")
		return fmt.Errorf("append product history: %w", err)
	}
	prometheus.RecordHistoryAppend("recorded")
	return nil
}

// ListAll returns every audit row.
func (r *HistoryRecorder) ListAll(ctx context.Context) ([]model.ProductHistory, error) {
	defer prometheus.TrackDBOperation("select")(time.Now())

	history := []model.ProductHistory{}
	if err := r.db.WithContext(ctx).Find(&history).Error; err != nil {
		return nil, fmt.Errorf("fetch product history: %w", err)
	}
	return history, nil
}
