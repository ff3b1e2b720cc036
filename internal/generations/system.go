package generations

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/weekly/pkg/pagination"
)

// System defines the generation log operations.
type System interface {
	Handler() *Handler

	Record(ctx context.Context, cmd CreateCommand) (*Generation, error)
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Generation], error)
	Find(ctx context.Context, id uuid.UUID) (*Generation, error)
}
