package model

import "time"

// Change kinds recorded in the audit log.
const (
	ChangeKindCreate = "CREATE"
	ChangeKindUpdate = "UPDATE"
	ChangeKindDelete = "DELETE"
)

// ProductHistory is one append-only audit record. Before is nil for CREATE,
// After is nil for DELETE, both are set for UPDATE. Rows are never updated
// or deleted once written.
type ProductHistory struct {
	ID         uint      `json:"-" gorm:"primarykey"`
	ProductID  string    `json:"product_id" gorm:"type:uuid;index;not null"`
	ChangedAt  time.Time `json:"changed_at" gorm:"not null"`
	ChangeKind string    `json:"change_kind" gorm:"type:varchar(16);not null"`
	Before     *Product  `json:"before,omitempty" gorm:"serializer:json;type:jsonb"`
	After      *Product  `json:"after,omitempty" gorm:"serializer:json;type:jsonb"`
}

func (ProductHistory) TableName() string {
	return HistoryTableName
}
