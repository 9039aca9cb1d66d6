//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"court-booking/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DefaultCourtName = "Default Court"

// inserts a court field under the default court and returns its id
func CreateTestCourtField(t *testing.T, db DBLike, name string, pricing slot.PeriodPricing) int64 {
	t.Helper()

	var fieldID int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO court_fields (court_id, name, morning_price, lunch_price, evening_price) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		DefaultCourtID(t, db), name, pricing.Morning, pricing.Lunch, pricing.Evening).Scan(&fieldID)
	require.NoError(t, err)

	return fieldID
}

func DefaultCourtID(t *testing.T, db DBLike) int64 {
	t.Helper()

	var courtID int64
	err := db.QueryRow(context.Background(), "SELECT id FROM courts WHERE name = $1 LIMIT 1", DefaultCourtName).Scan(&courtID)
	require.NoError(t, err)
	return courtID
}

// inserts hourly available slots starting at startHour and returns their ids in order
func CreateTestSlots(t *testing.T, db DBLike, fieldID int64, day time.Time, startHour, count int, price int64) []int64 {
	t.Helper()

	ctx := context.Background()
	ids := make([]int64, 0, count)
	for i := range count {
		h := startHour + i
		var id int64
		err := db.QueryRow(ctx,
			"INSERT INTO slots (court_field_id, day, start_time, end_time, price) VALUES ($1, $2, make_time($3, 0, 0), make_time($4, 0, 0), $5) RETURNING id",
			fieldID, day, h, h+1, price).Scan(&id)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

// backdates the lock stamp of a pending slot
func AgeSlotLock(t *testing.T, db DBLike, slotID int64, lockedAt time.Time) {
	t.Helper()

	tag, err := db.Exec(context.Background(), "UPDATE slots SET locked_at = $2 WHERE id = $1 AND state = 'pending'", slotID, lockedAt)
	require.NoError(t, err)
	require.Equal(t, int64(1), tag.RowsAffected(), "slot %d is not pending", slotID)
}

func SlotState(t *testing.T, db DBLike, slotID int64) string {
	t.Helper()

	var state string
	err := db.QueryRow(context.Background(), "SELECT state FROM slots WHERE id = $1", slotID).Scan(&state)
	require.NoError(t, err)
	return state
}

func CreateTestCoupon(t *testing.T, db DBLike, code, discountType string, value int64, minOrder int64, expiresAt time.Time) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO coupons (code, name, discount_type, discount_value, min_order_amount, expires_at, court_id) VALUES ($1, $1, $2, $3, $4, $5, $6) RETURNING id",
		code, discountType, value, minOrder, expiresAt, DefaultCourtID(t, db)).Scan(&id)
	require.NoError(t, err)
	return id
}

func CouponUsage(t *testing.T, db DBLike, couponID int64) int32 {
	t.Helper()

	var usage int32
	err := db.QueryRow(context.Background(), "SELECT usage_count FROM coupons WHERE id = $1", couponID).Scan(&usage)
	require.NoError(t, err)
	return usage
}

func CountBookings(t *testing.T, db DBLike, userID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM bookings WHERE user_id = $1 AND status = 'SUCCESS'", userID).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO courts (name, address)
		SELECT $1, 'District 7, Ho Chi Minh City'
		WHERE NOT EXISTS (SELECT 1 FROM courts WHERE name = $1);
	`, DefaultCourtName)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
