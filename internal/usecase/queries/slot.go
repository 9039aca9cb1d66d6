package queries

import (
	"context"
	"time"

	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
)

type SlotReadStore interface {
	FindCourtField(ctx context.Context, id int64) (*CourtFieldView, error)
	ListCourtFields(ctx context.Context) ([]*CourtFieldView, error)
	ListByFieldAndDay(ctx context.Context, field *CourtFieldView, day time.Time) ([]*SlotView, error)
}

type SlotQueries interface {
	ListCourtFields(ctx context.Context) ([]*CourtFieldView, error)
	ListSlots(ctx context.Context, courtFieldID int64, day time.Time) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	repo SlotReadStore
}

func NewSlotQueries(repo SlotReadStore) SlotQueries {
	return &slotQueriesImpl{repo: repo}
}

func (q *slotQueriesImpl) ListCourtFields(ctx context.Context) ([]*CourtFieldView, error) {
	return q.repo.ListCourtFields(ctx)
}

func (q *slotQueriesImpl) ListSlots(ctx context.Context, courtFieldID int64, day time.Time) ([]*SlotView, error) {
	if courtFieldID <= 0 || day.IsZero() {
		return nil, ErrInvalidQuery
	}

	field, err := q.repo.FindCourtField(ctx, courtFieldID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourtFieldNotFound
		}
		return nil, errs.Wrap(err, "find court field")
	}

	return q.repo.ListByFieldAndDay(ctx, field, day)
}
