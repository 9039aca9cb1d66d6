//go:build e2e

package reservation

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	"court-booking/internal/domain/slot"
	"court-booking/internal/domain/user"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/tests/common/authtest"
	"court-booking/tests/common/dbtest"
	"court-booking/tests/common/httptest"
	"court-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ReservationE2ETestSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestReservationE2ESuite(t *testing.T) {
	suite.Run(t, new(ReservationE2ETestSuite))
}

func (s *ReservationE2ETestSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

var fieldPricing = slot.PeriodPricing{Morning: 80000, Lunch: 120000, Evening: 200000}

type fixture struct {
	fieldID int64
	slotIDs []int64
	day     time.Time
}

// two adjacent slots tomorrow at 17:00 and 18:00
func (s *ReservationE2ETestSuite) createField(name string) fixture {
	t := s.T()
	day := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, 1)
	fieldID := dbtest.CreateTestCourtField(t, s.DB, name, fieldPricing)
	ids := dbtest.CreateTestSlots(t, s.DB, fieldID, day, 17, 2, 0)
	return fixture{fieldID: fieldID, slotIDs: ids, day: day}
}

func (s *ReservationE2ETestSuite) lock(token string, ids []int64) *resdto.LockResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/slots/lock-bulk", map[string]any{"slot_ids": ids}, token)
	var res resdto.LockResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	return &res
}

func (s *ReservationE2ETestSuite) stage(token string, f fixture, extra map[string]any) resdto.StagedOrderResponse {
	body := map[string]any{
		"court_field_id": f.fieldID,
		"slot_ids":       f.slotIDs,
		"full_name":      "Nguyen Van An",
		"phone":          "0901 234 567",
	}
	for k, v := range extra {
		body[k] = v
	}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", body, token)
	var res resdto.StagedOrderResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	return res
}

func (s *ReservationE2ETestSuite) recordPayment(code, amount int64, status string) {
	_, err := s.DB.Exec(context.Background(),
		"INSERT INTO payment_confirmations (order_code, provider_ref, amount, status) VALUES ($1, $2, $3, $4)",
		code, fmt.Sprintf("psp-%d", code), amount, status)
	require.NoError(s.T(), err)
}

func (s *ReservationE2ETestSuite) TestReservationFlow() {
	s.Run("lock, stage, confirm and list bookings", func() {
		t := s.T()
		userID := uuid.New()
		token := s.jwtHelper.GenerateToken(t, userID, user.RoleCustomer)
		f := s.createField("Field A")

		locked := s.lock(token, f.slotIDs)
		assert.ElementsMatch(t, f.slotIDs, locked.SlotIDs)
		for _, id := range f.slotIDs {
			assert.Equal(t, "pending", dbtest.SlotState(t, s.DB, id))
		}

		staged := s.stage(token, f, nil)
		assert.Equal(t, fieldPricing.Lunch+fieldPricing.Evening, staged.OriginalAmount)
		assert.Equal(t, staged.OriginalAmount, staged.FinalAmount)
		assert.Zero(t, staged.DiscountAmount)

		getPath := fmt.Sprintf("/api/orders/%d", staged.OrderCode)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, getPath, nil, token)
		var fetched resdto.StagedOrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
		assert.Equal(t, staged.OrderCode, fetched.OrderCode)

		s.recordPayment(staged.OrderCode, staged.FinalAmount, "paid")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, getPath+"/confirm", nil, token)
		var finalized resdto.FinalizeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &finalized)
		assert.Len(t, finalized.BookingIDs, 2)
		assert.ElementsMatch(t, f.slotIDs, finalized.SlotIDs)

		for _, id := range f.slotIDs {
			assert.Equal(t, "booked", dbtest.SlotState(t, s.DB, id))
		}
		assert.Equal(t, 2, dbtest.CountBookings(t, s.DB, userID))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/bookings?limit=1", nil, token)
		var page resdto.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Items, 1)
		require.NotNil(t, page.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/bookings?limit=1&cursor="+url.QueryEscape(*page.NextCursor), nil, token)
		var second resdto.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &second)
		require.Len(t, second.Items, 1)
		assert.NotEqual(t, page.Items[0].ID, second.Items[0].ID)

		// the staged order is gone once finalized
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, getPath, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Order not found")
	})

	s.Run("confirm without a payment is rejected", func() {
		t := s.T()
		token := s.jwtHelper.GenerateToken(t, uuid.New(), user.RoleCustomer)
		f := s.createField("Field B")
		s.lock(token, f.slotIDs)
		staged := s.stage(token, f, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/api/orders/%d/confirm", staged.OrderCode), nil, token)

		httptest.AssertErrorResponse(t, w, http.StatusPaymentRequired, "Payment has not been confirmed")
		assert.Equal(t, "pending", dbtest.SlotState(t, s.DB, f.slotIDs[0]))
	})

	s.Run("underpayment is rejected", func() {
		t := s.T()
		token := s.jwtHelper.GenerateToken(t, uuid.New(), user.RoleCustomer)
		f := s.createField("Field C")
		s.lock(token, f.slotIDs)
		staged := s.stage(token, f, nil)
		s.recordPayment(staged.OrderCode, staged.FinalAmount-1, "paid")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/api/orders/%d/confirm", staged.OrderCode), nil, token)

		httptest.AssertErrorResponse(t, w, http.StatusPaymentRequired, "")
	})

	s.Run("coupon discount is applied and counted on finalize", func() {
		t := s.T()
		userID := uuid.New()
		token := s.jwtHelper.GenerateToken(t, userID, user.RoleCustomer)
		f := s.createField("Field D")
		couponID := dbtest.CreateTestCoupon(t, s.DB, "SUMMER10", "percentage", 10, 0, time.Now().Add(24*time.Hour))

		s.lock(token, f.slotIDs)
		staged := s.stage(token, f, map[string]any{"coupon_code": "summer10"})
		require.NotNil(t, staged.CouponID)
		assert.Equal(t, couponID, *staged.CouponID)
		assert.Equal(t, staged.OriginalAmount/10, staged.DiscountAmount)
		assert.Equal(t, staged.OriginalAmount-staged.DiscountAmount, staged.FinalAmount)
		assert.Zero(t, dbtest.CouponUsage(t, s.DB, couponID))

		s.recordPayment(staged.OrderCode, staged.FinalAmount, "paid")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/api/orders/%d/confirm", staged.OrderCode), nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		assert.Equal(t, int32(1), dbtest.CouponUsage(t, s.DB, couponID))
	})

	s.Run("coupon with one use left finalizes only one order", func() {
		t := s.T()
		couponID := dbtest.CreateTestCoupon(t, s.DB, "LASTONE", "percentage", 10, 0, time.Now().Add(24*time.Hour))
		_, err := s.DB.Exec(context.Background(), "UPDATE coupons SET max_usage_count = 1 WHERE id = $1", couponID)
		require.NoError(t, err)

		first := s.jwtHelper.GenerateToken(t, uuid.New(), user.RoleCustomer)
		second := s.jwtHelper.GenerateToken(t, uuid.New(), user.RoleCustomer)
		fa := s.createField("Field F")
		fb := s.createField("Field G")

		s.lock(first, fa.slotIDs)
		s.lock(second, fb.slotIDs)
		a := s.stage(first, fa, map[string]any{"coupon_code": "LASTONE"})
		b := s.stage(second, fb, map[string]any{"coupon_code": "LASTONE"})
		s.recordPayment(a.OrderCode, a.FinalAmount, "paid")
		s.recordPayment(b.OrderCode, b.FinalAmount, "paid")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/api/orders/%d/confirm", a.OrderCode), nil, first)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/api/orders/%d/confirm", b.OrderCode), nil, second)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Coupon cannot be applied")

		assert.Equal(t, int32(1), dbtest.CouponUsage(t, s.DB, couponID))
		assert.Equal(t, "pending", dbtest.SlotState(t, s.DB, fb.slotIDs[0]))

		// stored usage above the limit still reads as exhausted, not a server error
		_, err = s.DB.Exec(context.Background(), "UPDATE coupons SET usage_count = 2 WHERE id = $1", couponID)
		require.NoError(t, err)
		third := s.jwtHelper.GenerateToken(t, uuid.New(), user.RoleCustomer)
		fc := s.createField("Field H")
		s.lock(third, fc.slotIDs)
		body := map[string]any{
			"court_field_id": fc.fieldID,
			"slot_ids":       fc.slotIDs,
			"full_name":      "Nguyen Van An",
			"phone":          "0901 234 567",
			"coupon_code":    "LASTONE",
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/orders", body, third)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Coupon cannot be applied")
	})

	s.Run("unknown coupon code", func() {
		t := s.T()
		token := s.jwtHelper.GenerateToken(t, uuid.New(), user.RoleCustomer)
		f := s.createField("Field E")
		s.lock(token, f.slotIDs)

		body := map[string]any{
			"court_field_id": f.fieldID,
			"slot_ids":       f.slotIDs,
			"full_name":      "Nguyen Van An",
			"phone":          "0901 234 567",
			"coupon_code":    "NOPE42",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/orders", body, token)

		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Coupon not found")
	})
}

func (s *ReservationE2ETestSuite) TestIdempotentStaging() {
	s.Run("same key and body replays the staged order", func() {
		t := s.T()
		token := s.jwtHelper.GenerateToken(t, uuid.New(), user.RoleCustomer)
		f := s.createField("Field A")
		s.lock(token, f.slotIDs)

		key := uuid.NewString()
		body := map[string]any{
			"court_field_id": f.fieldID,
			"slot_ids":       f.slotIDs,
			"full_name":      "Nguyen Van An",
			"phone":          "0901 234 567",
		}
		headers := map[string]string{"Idempotency-Key": key}

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, "/api/orders", body, token, headers)
		var first resdto.StagedOrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &first)

		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, "/api/orders", body, token, headers)
		var replay resdto.StagedOrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &replay)
		assert.Equal(t, first.OrderCode, replay.OrderCode)

		body["note"] = "bring rackets"
		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, "/api/orders", body, token, headers)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "different request")
	})
}

func (s *ReservationE2ETestSuite) TestSlotContention() {
	s.Run("second user cannot lock a held slot", func() {
		t := s.T()
		alice := s.jwtHelper.GenerateToken(t, uuid.New(), user.RoleCustomer)
		bob := s.jwtHelper.GenerateToken(t, uuid.New(), user.RoleCustomer)
		f := s.createField("Field A")

		s.lock(alice, f.slotIDs[:1])

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/slots/lock-bulk", map[string]any{"slot_ids": f.slotIDs}, bob)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "just taken")

		// the whole batch fails, including the free slot
		assert.Equal(t, "available", dbtest.SlotState(t, s.DB, f.slotIDs[1]))
	})

	s.Run("concurrent locks on one slot have a single winner", func() {
		t := s.T()
		f := s.createField("Field D")
		const n = 8

		users := make([]uuid.UUID, n)
		tokens := make([]string, n)
		for i := range n {
			users[i] = uuid.New()
			tokens[i] = s.jwtHelper.GenerateToken(t, users[i], user.RoleCustomer)
		}

		codes := make([]int, n)
		start := make(chan struct{})
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/slots/lock-bulk", map[string]any{"slot_ids": f.slotIDs[:1]}, tokens[i])
				codes[i] = w.Code
			}(i)
		}
		close(start)
		wg.Wait()

		winner, conflicts := -1, 0
		for i, code := range codes {
			switch code {
			case http.StatusOK:
				assert.Equal(t, -1, winner, "more than one lock succeeded")
				winner = i
			case http.StatusConflict:
				conflicts++
			default:
				t.Errorf("unexpected status %d", code)
			}
		}
		require.NotEqual(t, -1, winner, "no lock succeeded")
		assert.Equal(t, n-1, conflicts)

		var lockedBy string
		err := s.DB.QueryRow(context.Background(), "SELECT locked_by::text FROM slots WHERE id = $1", f.slotIDs[0]).Scan(&lockedBy)
		require.NoError(t, err)
		assert.Equal(t, users[winner].String(), lockedBy)
		assert.Equal(t, "pending", dbtest.SlotState(t, s.DB, f.slotIDs[0]))
	})

	s.Run("unlock releases only the caller's holds", func() {
		t := s.T()
		alice := s.jwtHelper.GenerateToken(t, uuid.New(), user.RoleCustomer)
		bob := s.jwtHelper.GenerateToken(t, uuid.New(), user.RoleCustomer)
		f := s.createField("Field B")
		s.lock(alice, f.slotIDs)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/slots/unlock-bulk", map[string]any{"slot_ids": f.slotIDs}, bob)
		var none resdto.UnlockResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &none)
		assert.Empty(t, none.Released)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/slots/unlock-bulk", map[string]any{"slot_ids": f.slotIDs}, alice)
		var released resdto.UnlockResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &released)
		assert.ElementsMatch(t, f.slotIDs, released.Released)
		assert.Equal(t, "available", dbtest.SlotState(t, s.DB, f.slotIDs[0]))
	})

	s.Run("cancelling a staged order frees its slots", func() {
		t := s.T()
		token := s.jwtHelper.GenerateToken(t, uuid.New(), user.RoleCustomer)
		f := s.createField("Field C")
		s.lock(token, f.slotIDs)
		staged := s.stage(token, f, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf("/api/orders/%d", staged.OrderCode), nil, token)

		assert.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		for _, id := range f.slotIDs {
			assert.Equal(t, "available", dbtest.SlotState(t, s.DB, id))
		}
	})

	s.Run("requests without a token are unauthorized", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/slots/lock-bulk", map[string]any{"slot_ids": []int64{1}}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *ReservationE2ETestSuite) TestExpiry() {
	s.Run("sweeper releases locks older than the ttl", func() {
		t := s.T()
		token := s.jwtHelper.GenerateToken(t, uuid.New(), user.RoleCustomer)
		f := s.createField("Field A")
		s.lock(token, f.slotIDs)

		stale := time.Now().Add(-s.Config.Reservation.LockTTL - 10*time.Minute)
		dbtest.AgeSlotLock(t, s.DB, f.slotIDs[0], stale)

		refs, err := s.Commands.Sweep.ReleaseExpiredLocks(context.Background())

		require.NoError(t, err)
		require.Len(t, refs, 1)
		assert.Equal(t, "available", dbtest.SlotState(t, s.DB, f.slotIDs[0]))
		assert.Equal(t, "pending", dbtest.SlotState(t, s.DB, f.slotIDs[1]))
	})
}

func (s *ReservationE2ETestSuite) TestDirectBooking() {
	s.Run("operator books available slots directly", func() {
		t := s.T()
		token := s.jwtHelper.GenerateToken(t, uuid.New(), user.RoleOperator)
		f := s.createField("Field A")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings/direct", map[string]any{"slot_ids": f.slotIDs}, token)
		var res resdto.FinalizeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)

		assert.Len(t, res.BookingIDs, 2)
		assert.Nil(t, res.OrderCode)
		assert.Equal(t, "booked", dbtest.SlotState(t, s.DB, f.slotIDs[0]))
	})

	s.Run("customers are forbidden", func() {
		t := s.T()
		token := s.jwtHelper.GenerateToken(t, uuid.New(), user.RoleCustomer)
		f := s.createField("Field B")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings/direct", map[string]any{"slot_ids": f.slotIDs}, token)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "available", dbtest.SlotState(t, s.DB, f.slotIDs[0]))
	})
}

func (s *ReservationE2ETestSuite) TestSlotGrid() {
	s.Run("grid lists the day's slots with their state", func() {
		t := s.T()
		token := s.jwtHelper.GenerateToken(t, uuid.New(), user.RoleCustomer)
		f := s.createField("Field A")
		s.lock(token, f.slotIDs[:1])

		path := fmt.Sprintf("/api/court-fields/%d/slots?date=%s", f.fieldID, f.day.Format(time.DateOnly))
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, "")
		var grid []resdto.SlotResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &grid)

		require.Len(t, grid, 2)
		states := map[int64]string{}
		for _, g := range grid {
			states[g.ID] = g.State
		}
		assert.Equal(t, "pending", states[f.slotIDs[0]])
		assert.Equal(t, "available", states[f.slotIDs[1]])
	})

	s.Run("unknown field is not found", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/court-fields/999999/slots?date=2030-01-01", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Court field not found")
	})
}
