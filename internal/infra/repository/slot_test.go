//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"court-booking/internal/domain/slot"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
	"court-booking/tests/common/builder"
	repositorymock "court-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Lock Tests
// =============================================================================

func TestSlotRepository_Lock(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, 3, 13, 9, 30, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockSlotWriteQueries, sqlc.DBTX)
		expectedIDs   []int64
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: returns only the rows that were stamped",
			setupMock: func(mock *repositorymock.MockSlotWriteQueries, tx sqlc.DBTX) {
				row := builder.NewSlotBuilder().LockedByUser(userID, now).BuildInfra()
				mock.EXPECT().LockSlots(ctx, tx, sqlc.LockSlotsParams{
					UserID:   userID,
					LockedAt: pgconv.TimeToPgtype(now),
					Ids:      []int64{42, 43},
				}).Return([]sqlc.Slots{row}, nil)
			},
			expectedIDs: []int64{42},
		},
		{
			name: "error: serialization failure is a conflict",
			setupMock: func(mock *repositorymock.MockSlotWriteQueries, tx sqlc.DBTX) {
				pgErr := &pgconn.PgError{Code: "40001", Message: "could not serialize access"}
				mock.EXPECT().LockSlots(ctx, tx, gomock.Any()).Return(nil, pgErr)
			},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockSlotWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().LockSlots(ctx, tx, gomock.Any()).Return(nil, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: corrupt row state",
			setupMock: func(mock *repositorymock.MockSlotWriteQueries, tx sqlc.DBTX) {
				row := builder.NewSlotBuilder().BuildInfra()
				row.State = "reserved"
				mock.EXPECT().LockSlots(ctx, tx, gomock.Any()).Return([]sqlc.Slots{row}, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSlotRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			slots, actualError := repo.Lock(ctx, mockDB, userID, []int64{42, 43}, now)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, slots)
				return
			}
			require.NoError(t, actualError)
			ids := make([]int64, 0, len(slots))
			for _, s := range slots {
				ids = append(ids, s.ID())
				assert.Equal(t, slot.StatePending, s.State())
				assert.True(t, s.IsHeldBy(userID))
			}
			assert.Equal(t, tc.expectedIDs, ids)
		})
	}
}

// =============================================================================
// Book / Insert Tests
// =============================================================================

func TestSlotRepository_Book(t *testing.T) {
	ctx := context.Background()
	holder := uuid.New()

	t.Run("success: holder is passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSlotRepository(mockQueries, mockDB)

		mockQueries.EXPECT().BookSlots(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.BookSlotsParams) ([]sqlc.Slots, error) {
				assert.True(t, arg.Holder.Valid)
				assert.Equal(t, [16]byte(holder), arg.Holder.Bytes)
				return []sqlc.Slots{builder.NewSlotBuilder().Booked().BuildInfra()}, nil
			})

		slots, err := repo.Book(ctx, mockDB, []int64{42}, &holder)

		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, slot.StateBooked, slots[0].State())
	})

	t.Run("success: direct booking has no holder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSlotRepository(mockQueries, mockDB)

		mockQueries.EXPECT().BookSlots(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.BookSlotsParams) ([]sqlc.Slots, error) {
				assert.False(t, arg.Holder.Valid)
				return nil, nil
			})

		slots, err := repo.Book(ctx, mockDB, []int64{42}, nil)

		require.NoError(t, err)
		assert.Empty(t, slots)
	})
}

func TestSlotRepository_Insert(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		affected int64
		err      error
		want     bool
		kind     infra.RepositoryErrorKind
	}{
		{name: "success: new slot", affected: 1, want: true},
		{name: "success: existing slot is skipped", affected: 0, want: false},
		{name: "error: unknown court field", err: &pgconn.PgError{Code: "23503"}, kind: infra.KindForeignKeyViolated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSlotRepository(mockQueries, mockDB)

			s, err := builder.NewSlotBuilder().BuildDomain()
			require.NoError(t, err)
			mockQueries.EXPECT().InsertSlot(ctx, mockDB, gomock.Any()).Return(tc.affected, tc.err)

			created, actualError := repo.Insert(ctx, mockDB, s)

			if tc.err != nil {
				assert.True(t, infra.IsKind(actualError, tc.kind), "expected kind [%v] but got (%v)", tc.kind, actualError)
				return
			}
			require.NoError(t, actualError)
			assert.Equal(t, tc.want, created)
		})
	}
}

// =============================================================================
// Test Helper Functions
// =============================================================================

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
