package readstore

import (
	"context"
	"time"

	"court-booking/internal/domain/slot"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository/converter"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"
)

type SlotReadQueries interface {
	GetCourtField(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.CourtFields, error)
	ListCourtFields(ctx context.Context, db sqlc.DBTX) ([]sqlc.CourtFields, error)
	ListSlotsByFieldAndDay(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSlotsByFieldAndDayParams) ([]sqlc.Slots, error)
	GetSlotsByIDs(ctx context.Context, db sqlc.DBTX, ids []int64) ([]sqlc.Slots, error)
}

type SlotReadStore struct {
	queries SlotReadQueries
	db      sqlc.DBTX
}

func NewSlotReadStore(queries SlotReadQueries, db sqlc.DBTX) *SlotReadStore {
	return &SlotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SlotReadStore) FindCourtField(ctx context.Context, id int64) (*queries.CourtFieldView, error) {
	row, err := r.queries.GetCourtField(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("court field not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court field", err)
	}
	return toCourtFieldView(row), nil
}

func (r *SlotReadStore) ListCourtFields(ctx context.Context) ([]*queries.CourtFieldView, error) {
	rows, err := r.queries.ListCourtFields(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list court fields", err)
	}
	out := make([]*queries.CourtFieldView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toCourtFieldView(row))
	}
	return out, nil
}

func (r *SlotReadStore) ListByFieldAndDay(ctx context.Context, field *queries.CourtFieldView, day time.Time) ([]*queries.SlotView, error) {
	slots, err := r.FindByFieldAndDay(ctx, field.ID, day)
	if err != nil {
		return nil, err
	}

	pricing := slot.PeriodPricing{Morning: field.MorningPrice, Lunch: field.LunchPrice, Evening: field.EveningPrice}
	views := make([]*queries.SlotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, &queries.SlotView{
			ID:           s.ID(),
			CourtFieldID: s.CourtFieldID(),
			Day:          s.Day(),
			StartTime:    s.Start().String(),
			EndTime:      s.End().String(),
			TimeRange:    s.TimeRange(),
			Price:        s.EffectivePrice(pricing),
			State:        s.State().String(),
			LockedBy:     s.LockedBy(),
			LockedAt:     s.LockedAt(),
		})
	}
	return views, nil
}

// FindByFieldAndDay returns the stored slots, prices unresolved.
func (r *SlotReadStore) FindByFieldAndDay(ctx context.Context, courtFieldID int64, day time.Time) ([]*slot.Slot, error) {
	rows, err := r.queries.ListSlotsByFieldAndDay(ctx, r.db, sqlc.ListSlotsByFieldAndDayParams{
		CourtFieldID: courtFieldID,
		Day:          pgconv.DateToPgtype(day),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}

	slots, err := converter.SlotsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert slot rows", err)
	}
	return slots, nil
}

// CourtFieldSnapshot serves the write side through CommandReads.
func (r *SlotReadStore) CourtFieldSnapshot(ctx context.Context, id int64) (*shared.CourtFieldSnapshot, error) {
	row, err := r.queries.GetCourtField(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("court field not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court field", err)
	}
	return &shared.CourtFieldSnapshot{
		ID:      row.ID,
		CourtID: row.CourtID,
		Name:    row.Name,
		Pricing: converter.PricingFromCourtField(row),
	}, nil
}

func (r *SlotReadStore) FindByIDs(ctx context.Context, ids []int64) ([]*slot.Slot, error) {
	rows, err := r.queries.GetSlotsByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get slots", err)
	}
	slots, err := converter.SlotsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert slot rows", err)
	}
	return slots, nil
}

func toCourtFieldView(row sqlc.CourtFields) *queries.CourtFieldView {
	return &queries.CourtFieldView{
		ID:           row.ID,
		CourtID:      row.CourtID,
		Name:         row.Name,
		MorningPrice: row.MorningPrice,
		LunchPrice:   row.LunchPrice,
		EveningPrice: row.EveningPrice,
	}
}
