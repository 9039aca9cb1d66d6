//go:build unit

package api_test

import (
	"net/http"
	"strconv"
	"strings"
	"testing"

	"court-booking/internal/domain/coupon"
	"court-booking/internal/domain/order"
	"court-booking/internal/domain/user"
	"court-booking/internal/handler/api"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"
	"court-booking/tests/common/builder"
	"court-booking/tests/common/httptest"
	"court-booking/tests/common/testutil"
	commandsmock "court-booking/tests/mock/commands"
	queriesmock "court-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockOrders   *commandsmock.MockOrderCommands
	mockBookings *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockOrders = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockBookings = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockOrders, s.mockBookings, s.mockQueries)

	auth := fakeAuth(user.RoleCustomer)
	s.router.POST("/orders", auth, s.handler.Stage)
	s.router.GET("/orders/:code", auth, s.handler.Get)
	s.router.DELETE("/orders/:code", auth, s.handler.Cancel)
	s.router.POST("/orders/:code/confirm", auth, s.handler.Confirm)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

// ================================================================================
// TestStage
// ================================================================================

func (s *OrderHandlerTestSuite) TestStage() {
	url := "/orders"
	b := builder.NewStagedOrderBuilder().WithUser(testUserID)
	reqBody := b.BuildRequestDTO()
	staged, err := b.BuildDomain()
	s.Require().NoError(err)

	s.Run("success: 201 with the staged order", func() {
		s.mockOrders.EXPECT().StageOrder(gomock.Any(), reqBody.ToCommand(), testUserID, (*uuid.UUID)(nil)).
			Return(&commands.StageOrderResult{Order: staged}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.StagedOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.Code, body.OrderCode)
		s.Equal(int64(300000), body.FinalAmount)
		s.Equal([]int64{42, 43}, body.SlotIDs)
		s.Empty(rec.Header().Get("Idempotent-Replayed"))
	})

	s.Run("success: replay answers 200 and flags it", func() {
		key := uuid.New()
		s.mockOrders.EXPECT().StageOrder(gomock.Any(), gomock.Any(), testUserID, &key).
			Return(&commands.StageOrderResult{Order: staged, IsReplayed: true}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token",
			map[string]string{"Idempotency-Key": key.String()})

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 400 on malformed idempotency key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token",
			map[string]string{"Idempotency-Key": "not-a-uuid"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key")
	})

	s.Run("error: 400 on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing court_field_id", mutate: testutil.Field("court_field_id", nil)},
			{name: "missing slot_ids", mutate: testutil.Field("slot_ids", nil)},
			{name: "missing full_name", mutate: testutil.Field("full_name", nil)},
			{name: "missing phone", mutate: testutil.Field("phone", nil)},
			{name: "note too long", mutate: testutil.Field("note", strings.Repeat("x", 2001))},
			{name: "coupon code too short", mutate: testutil.Field("coupon_code", "ab")},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"locks lapsed", commands.ErrOrderExpired, http.StatusConflict, "expired"},
			{"key in flight", commands.ErrIdempotencyInProgress, http.StatusConflict, "already being processed"},
			{"key reused", commands.ErrIdempotencyKeyReused, http.StatusConflict, "different request"},
			{"unknown field", commands.ErrCourtFieldNotFound, http.StatusNotFound, "Court field not found"},
			{"unknown coupon", commands.ErrCouponNotFound, http.StatusUnprocessableEntity, "Coupon not found"},
			{"invalid input", commands.ErrInvalidRequest, http.StatusBadRequest, "Invalid request"},
			{"database down", commands.ErrDatabaseOperationFailed, http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockOrders.EXPECT().StageOrder(gomock.Any(), gomock.Any(), testUserID, gomock.Any()).
					Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 422 carries the coupon rejection reason", func() {
		rejected := errs.Mark(errs.Wrap(coupon.ErrMinOrderNotMet, "apply coupon"), commands.ErrCouponRejected)
		s.mockOrders.EXPECT().StageOrder(gomock.Any(), gomock.Any(), testUserID, gomock.Any()).
			Return(nil, rejected)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Coupon cannot be applied")
		s.Contains(rec.Body.String(), coupon.ErrMinOrderNotMet.Error())
	})
}

// ================================================================================
// TestGet / TestCancel / TestConfirm
// ================================================================================

func (s *OrderHandlerTestSuite) TestGet() {
	b := builder.NewStagedOrderBuilder().WithUser(testUserID).WithCoupon(5, 30000)
	url := "/orders/" + strconv.FormatInt(b.Code, 10)

	s.Run("success: returns the caller's order", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), testUserID, b.Code).Return(b.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.StagedOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		want := resdto.StagedOrderResponse{
			OrderCode:      b.Code,
			UserID:         testUserID,
			CourtFieldID:   7,
			SlotIDs:        []int64{42, 43},
			FullName:       "Nguyen Van A",
			Phone:          "0901234567",
			Note:           "two rackets please",
			OriginalAmount: 300000,
			DiscountAmount: 30000,
			FinalAmount:    270000,
			CouponID:       b.CouponID,
			ExpiresAt:      b.CreatedAt.Add(b.TTL),
			CreatedAt:      b.CreatedAt,
		}
		if diff := cmp.Diff(want, body); diff != "" {
			s.T().Errorf("order mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error: 404 for someone else's order", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), testUserID, b.Code).Return(nil, queries.ErrOrderNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})

	s.Run("error: 400 on malformed code", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/-3", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid order code")
	})
}

func (s *OrderHandlerTestSuite) TestCancel() {
	code := order.Code(builder.NewStagedOrderBuilder().Code)
	url := "/orders/" + strconv.FormatInt(code.Int64(), 10)

	s.Run("success: 204", func() {
		s.mockOrders.EXPECT().CancelStagedOrder(gomock.Any(), testUserID, code).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when already gone", func() {
		s.mockOrders.EXPECT().CancelStagedOrder(gomock.Any(), testUserID, code).Return(commands.ErrOrderNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}

func (s *OrderHandlerTestSuite) TestConfirm() {
	code := order.Code(builder.NewStagedOrderBuilder().Code)
	url := "/orders/" + strconv.FormatInt(code.Int64(), 10) + "/confirm"

	s.Run("success: returns created bookings", func() {
		s.mockBookings.EXPECT().Finalize(gomock.Any(), testUserID, code).
			Return(&commands.FinalizeResult{OrderCode: &code, BookingIDs: []int64{900, 901}, SlotIDs: []int64{42, 43}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.FinalizeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.OrderCode)
		s.Equal(code.Int64(), *body.OrderCode)
		s.Equal([]int64{900, 901}, body.BookingIDs)
	})

	s.Run("error: 402 until the payment is confirmed", func() {
		s.mockBookings.EXPECT().Finalize(gomock.Any(), testUserID, code).Return(nil, commands.ErrUpstreamUnverified)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusPaymentRequired, "not been confirmed")
	})

	s.Run("error: 409 when a slot was taken meanwhile", func() {
		s.mockBookings.EXPECT().Finalize(gomock.Any(), testUserID, code).Return(nil, commands.ErrSlotConflict)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "just taken")
	})
}
