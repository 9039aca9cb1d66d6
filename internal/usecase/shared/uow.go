package shared

import (
	"context"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/coupon"
	"court-booking/internal/domain/order"
	"court-booking/internal/domain/slot"
	sqlc "court-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Slots() SlotRepository
	Orders() OrderRepository
	Bookings() BookingRepository
	Coupons() CouponRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Payments() PaymentRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	CourtFieldByID(ctx context.Context, id int64) (*CourtFieldSnapshot, error)
	StagedOrderByCode(ctx context.Context, code order.Code) (*order.StagedOrder, error)
	SlotsByIDs(ctx context.Context, ids []int64) ([]*slot.Slot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

// SlotRepository methods that transition state return exactly the rows they changed.
type SlotRepository interface {
	Lock(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, ids []int64, now time.Time) ([]*slot.Slot, error)
	CountHeldBy(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, ids []int64) (int64, error)
	Unlock(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, ids []int64) ([]*slot.Slot, error)
	TouchLocks(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, courtFieldID int64, ids []int64, now time.Time) ([]*slot.Slot, error)
	ReleaseExpired(ctx context.Context, tx sqlc.DBTX, cutoff time.Time) ([]*slot.Slot, error)
	Book(ctx context.Context, tx sqlc.DBTX, ids []int64, holder *uuid.UUID) ([]*slot.Slot, error)
	Insert(ctx context.Context, tx sqlc.DBTX, s *slot.Slot) (bool, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *order.StagedOrder) error
	GetForUpdate(ctx context.Context, tx sqlc.DBTX, code order.Code) (*order.StagedOrder, error)
	Delete(ctx context.Context, tx sqlc.DBTX, code order.Code) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int64, error)
}

type CouponRepository interface {
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*coupon.Coupon, error)
	FindByCodeForUpdate(ctx context.Context, tx sqlc.DBTX, code coupon.Code) (*coupon.Coupon, error)
	IncrementUsage(ctx context.Context, tx sqlc.DBTX, id int64) error
}

type IdempotencyRepository interface {
	// TryInsert reports whether the caller now owns the key.
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt, now time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, orderCode order.Code) error
	Release(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, runAt time.Time, lastError *string) error
}

type PaymentRepository interface {
	Record(ctx context.Context, tx sqlc.DBTX, p PaymentConfirmation) error
}
