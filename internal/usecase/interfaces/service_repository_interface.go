package interfaces

import (
	"context"

	"paygo_market/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for Service.
//
// Repositories follow the convention of returning a zero-value entity
// (ID == "") when the item does not exist; use cases translate that into
// their not-found sentinel.

type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
}
