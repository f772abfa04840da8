package interfaces

import (
	"context"

	"trade_credit/internal/domain/entities"
)

// ICatalogService reads catalog items owned by the external catalog module.
// GetItem returns a zero value when the item does not exist.
type ICatalogService interface {
	GetItem(ctx context.Context, id string) (entities.CatalogItem, error)
}
