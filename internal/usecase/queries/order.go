package queries

import (
	"context"

	"court-booking/internal/infra"

	"github.com/google/uuid"
)

type OrderReadStore interface {
	FindByCode(ctx context.Context, code int64) (*StagedOrderView, error)
}

type OrderQueries interface {
	GetByCode(ctx context.Context, actorID uuid.UUID, code int64) (*StagedOrderView, error)
}

type orderQueriesImpl struct {
	repo OrderReadStore
}

func NewOrderQueries(repo OrderReadStore) OrderQueries {
	return &orderQueriesImpl{repo: repo}
}

// GetByCode hides orders of other users behind not found.
func (q *orderQueriesImpl) GetByCode(ctx context.Context, actorID uuid.UUID, code int64) (*StagedOrderView, error) {
	v, err := q.repo.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if v.UserID != actorID {
		return nil, ErrOrderNotFound
	}
	return v, nil
}
