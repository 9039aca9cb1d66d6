//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"court-booking/internal/handler/api"
	"court-booking/internal/infra/realtime"
	"court-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type replayBroker struct {
	room     string
	payloads [][]byte
	err      error
}

func (b *replayBroker) Publish(context.Context, string, []byte) error { return nil }

func (b *replayBroker) Subscribe(_ context.Context, room string) (realtime.Subscription, error) {
	if b.err != nil {
		return nil, b.err
	}
	b.room = room
	ch := make(chan []byte, len(b.payloads))
	for _, p := range b.payloads {
		ch <- p
	}
	close(ch)
	return closedSubscription(ch), nil
}

type closedSubscription chan []byte

func (s closedSubscription) C() <-chan []byte { return s }
func (s closedSubscription) Close() error     { return nil }

func encode(t *testing.T, e realtime.Event) []byte {
	t.Helper()
	b, err := realtime.Encode(e)
	require.NoError(t, err)
	return b
}

func TestEventHandler_Stream(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("relays room events until the subscription ends", func(t *testing.T) {
		holder := uuid.New()
		broker := &replayBroker{payloads: [][]byte{
			encode(t, realtime.Event{Type: realtime.EventSlotLocked, ScheduleID: 42, UserID: &holder}),
			[]byte("not json"),
			encode(t, realtime.Event{Type: realtime.EventSlotBooked, ScheduleID: 43}),
		}}
		router := gin.New()
		router.GET("/court-fields/:id/events", api.NewEventHandler(broker).Stream)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/court-fields/7/events", nil, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "courtField_7", broker.room)
		assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/event-stream"), rec.Header().Get("Content-Type"))

		body := rec.Body.String()
		ready := strings.Index(body, "event:ready")
		locked := strings.Index(body, "event:slot-locked")
		booked := strings.Index(body, "event:slot-booked")
		require.NotEqual(t, -1, ready, body)
		require.NotEqual(t, -1, locked, body)
		require.NotEqual(t, -1, booked, body)
		assert.Less(t, ready, locked)
		assert.Less(t, locked, booked)
		assert.Contains(t, body, `"scheduleId":42`)
		assert.Contains(t, body, holder.String())
		assert.NotContains(t, body, "not json")
	})

	t.Run("rejects a bad court field id", func(t *testing.T) {
		router := gin.New()
		router.GET("/court-fields/:id/events", api.NewEventHandler(&replayBroker{}).Stream)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/court-fields/x/events", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid court field id")
	})

	t.Run("503 when the relay cannot subscribe", func(t *testing.T) {
		router := gin.New()
		router.GET("/court-fields/:id/events", api.NewEventHandler(&replayBroker{err: errors.New("redis down")}).Stream)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/court-fields/7/events", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusServiceUnavailable, "Realtime relay unavailable")
	})
}
