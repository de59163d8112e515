package service

import (
	"inventory-service/internal/model"

	"github.com/google/uuid"
)

// ParseProductID parses an external identifier string into the canonical
// product id form. The store's identifier grammar is the UUID grammar.
func ParseProductID(text string) (string, error) {
	id, err := uuid.Parse(text)
	if err != nil {
		return "", model.ErrInvalidID
	}
	return id.String(), nil
}
