package model

// Canonical product status values. The set is open (callers may supply other
// values), but these two are the ones the service assigns on its own.
const (
	StatusAvailable   = "Available"
	StatusUnavailable = "Unavailable"
)

// Fixed table names for the primary records and the audit log.
const (
	ProductTableName = "products"
	HistoryTableName = "product_history"
)

// Product represents the current state of an inventory item.
type Product struct {
	ID          string `json:"id" gorm:"type:uuid;primarykey"`
	Name        string `json:"name" gorm:"type:varchar(255);not null"`
	Description string `json:"description" gorm:"type:text"`
	Price       uint   `json:"price" gorm:"not null"`
	Quantity    uint   `json:"quantity" gorm:"not null"`
	Status      string `json:"status" gorm:"type:varchar(32);not null"`
}

func (Product) TableName() string {
	return ProductTableName
}

// ProductSummary is the projection returned by list views. It is not
// persisted separately; the store selects it straight off the products table.
type ProductSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price uint   `json:"price"`
}

// ProductChange is the create/update request payload. Every field is
// optional; on update only non-nil fields are applied.
type ProductChange struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *uint   `json:"price"`
	Quantity    *uint   `json:"quantity"`
	Status      *string `json:"status"`
}

// ChangeSet is the subset of product columns an update actually touches,
// keyed by column name.
type ChangeSet map[string]interface{}
