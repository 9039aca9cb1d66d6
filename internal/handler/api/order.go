package api

import (
	"net/http"
	"strconv"

	"court-booking/internal/domain/order"
	reqdto "court-booking/internal/handler/dto/request"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerIdempotencyKey = "Idempotency-Key"
	headerReplayed       = "Idempotent-Replayed"
)

type OrderHandler struct {
	orders   commands.OrderCommands
	bookings commands.BookingCommands
	q        queries.OrderQueries
}

func NewOrderHandler(orders commands.OrderCommands, bookings commands.BookingCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{orders: orders, bookings: bookings, q: q}
}

// @Summary Stage order
// @Description Prices the caller's held slots, applies an optional coupon and stages an order for checkout
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Replays the same staged order for the same body"
// @Param request body reqdto.StageOrderRequest true "Order"
// @Success 201 {object} resdto.StagedOrderResponse
// @Success 200 {object} resdto.StagedOrderResponse "replayed"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/orders [post]
func (h *OrderHandler) Stage(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var idemKey *uuid.UUID
	if raw := c.GetHeader(headerIdempotencyKey); raw != "" {
		key, err := uuid.Parse(raw)
		if err != nil {
			abortBadRequest(c, err, "Idempotency-Key must be a UUID")
			return
		}
		idemKey = &key
	}

	var req reqdto.StageOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	result, err := h.orders.StageOrder(c.Request.Context(), req.ToCommand(), userID, idemKey)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
		c.Header(headerReplayed, "true")
	}
	c.JSON(status, resdto.FromStagedOrder(result.Order))
}

// @Summary Get staged order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param code path int true "Order code"
// @Success 200 {object} resdto.StagedOrderResponse
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{code} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	code, err := orderCodeParam(c)
	if err != nil {
		abortBadRequest(c, err, "Invalid order code")
		return
	}

	view, err := h.q.GetByCode(c.Request.Context(), userID, code.Int64())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromStagedOrderView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Cancel staged order
// @Description Deletes the staged order and releases its slots
// @Tags orders
// @Security BearerAuth
// @Param code path int true "Order code"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{code} [delete]
func (h *OrderHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	code, err := orderCodeParam(c)
	if err != nil {
		abortBadRequest(c, err, "Invalid order code")
		return
	}

	if err := h.orders.CancelStagedOrder(c.Request.Context(), userID, code); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Confirm order
// @Description Return from checkout: verifies payment and books the order's slots
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param code path int true "Order code"
// @Success 200 {object} resdto.FinalizeResponse
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/orders/{code}/confirm [post]
func (h *OrderHandler) Confirm(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	code, err := orderCodeParam(c)
	if err != nil {
		abortBadRequest(c, err, "Invalid order code")
		return
	}

	result, err := h.bookings.Finalize(c.Request.Context(), userID, code)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFinalizeResult(result))
}

func orderCodeParam(c *gin.Context) (order.Code, error) {
	raw, err := strconv.ParseInt(c.Param("code"), 10, 64)
	if err != nil {
		return 0, err
	}
	return order.ParseCode(raw)
}
