//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"court-booking/internal/infra"
	"court-booking/internal/infra/repository"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/tests/common/builder"
	repositorymock "court-booking/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Staged Order Tests
// =============================================================================

func TestOrderRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockOrderWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: staged order created",
			setupMock: func(mock *repositorymock.MockOrderWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateStagedOrder(ctx, tx, gomock.Any()).Return(nil)
			},
		},
		{
			name: "error: duplicate order code",
			setupMock: func(mock *repositorymock.MockOrderWriteQueries, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateStagedOrder(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockOrderWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateStagedOrder(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewOrderRepository(mockQueries, mockDB)

			o, err := builder.NewStagedOrderBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.Create(ctx, mockDB, o)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Get / Delete Staged Order Tests
// =============================================================================

func TestOrderRepository_GetForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row converts back to the same order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries, mockDB)

		want, err := builder.NewStagedOrderBuilder().WithCoupon(5, 30000).BuildDomain()
		require.NoError(t, err)

		var stored sqlc.CreateStagedOrderParams
		mockQueries.EXPECT().CreateStagedOrder(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateStagedOrderParams) error {
				stored = arg
				return nil
			})
		require.NoError(t, repo.Create(ctx, mockDB, want))

		mockQueries.EXPECT().GetStagedOrderForUpdate(ctx, mockDB, want.Code().Int64()).Return(sqlc.StagedOrders(stored), nil)

		got, err := repo.GetForUpdate(ctx, mockDB, want.Code())

		require.NoError(t, err)
		assert.Equal(t, want.Code(), got.Code())
		assert.Equal(t, want.Amounts(), got.Amounts())
		assert.Equal(t, want.Contact(), got.Contact())
		assert.Equal(t, want.CouponID(), got.CouponID())
		assert.True(t, want.ExpiresAt().Equal(got.ExpiresAt()))
		if diff := cmp.Diff(want.SlotIDs(), got.SlotIDs()); diff != "" {
			t.Errorf("slot ids mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: missing order is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetStagedOrderForUpdate(ctx, mockDB, int64(7)).Return(sqlc.StagedOrders{}, pgx.ErrNoRows)

		_, err := repo.GetForUpdate(ctx, mockDB, 7)

		assert.True(t, infra.IsKind(err, infra.KindNotFound), err)
	})
}

func TestOrderRepository_Delete(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		affected int64
		err      error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success: order deleted", affected: 1},
		{name: "error: already gone", affected: 0, wantKind: infra.KindNotFound},
		{name: "error: database error occurs", err: errors.New("database connection error"), wantKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewOrderRepository(mockQueries, mockDB)

			mockQueries.EXPECT().DeleteStagedOrder(ctx, mockDB, int64(9)).Return(tc.affected, tc.err)

			err := repo.Delete(ctx, mockDB, 9)

			if tc.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.wantKind), "expected kind [%v] but got (%v)", tc.wantKind, err)
		})
	}
}
