package service

import (
	"testing"

	"inventory-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func uintPtr(v uint) *uint    { return &v }

func TestValidateCreate_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		change model.ProductChange
		field  string
	}{
		{
			name:   "missing name",
			change: model.ProductChange{Price: uintPtr(500), Quantity: uintPtr(10)},
			field:  "name",
		},
		{
			name:   "missing price",
			change: model.ProductChange{Name: strPtr("Widget"), Quantity: uintPtr(10)},
			field:  "price",
		},
		{
			name:   "missing quantity",
			change: model.ProductChange{Name: strPtr("Widget"), Price: uintPtr(500)},
			field:  "quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateCreate(tt.change)
			require.Error(t, err)

			var missing *model.MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.field, missing.Field)
		})
	}
}

func TestValidateCreate_Defaults(t *testing.T) {
	product, err := validateCreate(model.ProductChange{
		Name:     strPtr("Widget"),
		Price:    uintPtr(500),
		Quantity: uintPtr(10),
	})
	require.NoError(t, err)

	assert.Equal(t, "Widget", product.Name)
	assert.Equal(t, uint(500), product.Price)
	assert.Equal(t, uint(10), product.Quantity)
	assert.Equal(t, "", product.Description)
	assert.Equal(t, model.StatusAvailable, product.Status)
}

func TestValidateCreate_SuppliedStatusAndDescription(t *testing.T) {
	product, err := validateCreate(model.ProductChange{
		Name:        strPtr("Widget"),
		Description: strPtr("a widget"),
		Price:       uintPtr(500),
		Quantity:    uintPtr(3),
		Status:      strPtr("Backordered"),
	})
	require.NoError(t, err)

	assert.Equal(t, "a widget", product.Description)
	assert.Equal(t, "Backordered", product.Status)
}

func TestValidateCreate_ZeroQuantityForcesUnavailable(t *testing.T) {
	// An explicit status must not survive a zero quantity.
	product, err := validateCreate(model.ProductChange{
		Name:     strPtr("Widget"),
		Price:    uintPtr(500),
		Quantity: uintPtr(0),
		Status:   strPtr(model.StatusAvailable),
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusUnavailable, product.Status)
}

func TestValidateUpdate_PassthroughOfPresentFields(t *testing.T) {
	changes := validateUpdate(model.ProductChange{Price: uintPtr(750)})

	assert.Equal(t, model.ChangeSet{"price": uint(750)}, changes)
}

func TestValidateUpdate_Empty(t *testing.T) {
	changes := validateUpdate(model.ProductChange{})

	assert.Empty(t, changes)
}

func TestValidateUpdate_AllFields(t *testing.T) {
	changes := validateUpdate(model.ProductChange{
		Name:        strPtr("Gadget"),
		Description: strPtr("a gadget"),
		Price:       uintPtr(900),
		Quantity:    uintPtr(4),
		Status:      strPtr("Backordered"),
	})

	assert.Equal(t, model.ChangeSet{
		"name":        "Gadget",
		"description": "a gadget",
		"price":       uint(900),
		"quantity":    uint(4),
		"status":      "Backordered",
	}, changes)
}

func TestValidateUpdate_ZeroQuantityBeatsSuppliedStatus(t *testing.T) {
	changes := validateUpdate(model.ProductChange{
		Quantity: uintPtr(0),
		Status:   strPtr(model.StatusAvailable),
	})

	assert.Equal(t, model.StatusUnavailable, changes["status"])
	assert.Equal(t, uint(0), changes["quantity"])
}
