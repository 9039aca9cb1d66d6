package commands

import "court-booking/internal/pkg/errs"

var (
	ErrInvalidRequest          = errs.New("invalid request")
	ErrSlotConflict            = errs.New("slot conflict")
	ErrCourtFieldNotFound      = errs.New("court field not found")
	ErrOrderNotFound           = errs.New("staged order not found")
	ErrOrderExpired            = errs.New("staged order expired")
	ErrUpstreamUnverified      = errs.New("payment not verified")
	ErrCouponNotFound          = errs.New("coupon not found")
	ErrCouponRejected          = errs.New("coupon rejected")
	ErrIdempotencyInProgress   = errs.New("idempotency in progress")
	ErrIdempotencyKeyReused    = errs.New("idempotency key reused with different request")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)
