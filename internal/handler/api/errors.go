package api

import (
	"net/http"

	"court-booking/internal/handler/httperr"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errs.New("authenticated user missing from context")

type errorMapping struct {
	target  error
	status  int
	message string
}

// Ordered: the first match wins.
var useCaseErrors = []errorMapping{
	{commands.ErrInvalidRequest, http.StatusBadRequest, "Invalid request"},
	{queries.ErrInvalidQuery, http.StatusBadRequest, "Invalid query"},
	{commands.ErrSlotConflict, http.StatusConflict, "This slot was just taken, please pick another"},
	{commands.ErrOrderExpired, http.StatusConflict, "Your hold on these slots has expired, please pick them again"},
	{commands.ErrIdempotencyInProgress, http.StatusConflict, "This request is already being processed"},
	{commands.ErrIdempotencyKeyReused, http.StatusConflict, "Idempotency key was already used with a different request"},
	{commands.ErrCourtFieldNotFound, http.StatusNotFound, "Court field not found"},
	{queries.ErrCourtFieldNotFound, http.StatusNotFound, "Court field not found"},
	{commands.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
	{queries.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
	{commands.ErrUpstreamUnverified, http.StatusPaymentRequired, "Payment has not been confirmed yet"},
	{commands.ErrCouponNotFound, http.StatusUnprocessableEntity, "Coupon not found"},
}

func abortWithUseCaseError(c *gin.Context, err error) {
	if errs.Is(err, commands.ErrCouponRejected) {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Coupon cannot be applied", gin.H{"reason": err.Error()})
		return
	}
	for _, m := range useCaseErrors {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func abortUnauthenticated(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}
