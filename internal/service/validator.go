package service

import "inventory-service/internal/model"

// validateCreate checks a create payload for the mandatory fields and
// resolves the defaults. Description defaults to empty, status to
// "Available" unless quantity is zero, which forces "Unavailable" no matter
// what the caller supplied.
func validateCreate(change model.ProductChange) (*model.Product, error) {
	if change.Name == nil {
		return nil, &model.MissingFieldError{Field: "name"}
	}
	if change.Price == nil {
		return nil, &model.MissingFieldError{Field: "price"}
	}
	if change.Quantity == nil {
		return nil, &model.MissingFieldError{Field: "quantity"}
	}

	product := &model.Product{
		Name:     *change.Name,
		Price:    *change.Price,
		Quantity: *change.Quantity,
	}
	if change.Description != nil {
		product.Description = *change.Description
	}

	switch {
	case product.Quantity == 0:
		product.Status = model.StatusUnavailable
	case change.Status != nil:
		product.Status = *change.Status
	default:
		product.Status = model.StatusAvailable
	}

	return product, nil
}

// validateUpdate turns a partial payload into the change-set of columns to
// write. Only fields present in the payload are included. Setting quantity
// to zero injects a forced "Unavailable" status; the forced value wins even
// when the same request supplies an explicit status.
func validateUpdate(change model.ProductChange) model.ChangeSet {
	changes := model.ChangeSet{}
	if change.Name != nil {
		changes["name"] = *change.Name
	}
	if change.Description != nil {
		changes["description"] = *change.Description
	}
	if change.Price != nil {
		changes["price"] = *change.Price
	}
	if change.Status != nil {
		changes["status"] = *change.Status
	}
	if change.Quantity != nil {
		changes["quantity"] = *change.Quantity
		if *change.Quantity == 0 {
			changes["status"] = model.StatusUnavailable
		}
	}
	return changes
}
