package api

import (
	"log/slog"
	"net/http"
	"time"

	"court-booking/internal/handler/httperr"
	"court-booking/internal/infra/realtime"

	"github.com/gin-gonic/gin"
)

const defaultHeartbeat = 25 * time.Second

// EventHandler streams a court field room to the client as Server-Sent Events.
type EventHandler struct {
	broker    realtime.Broker
	heartbeat time.Duration
}

func NewEventHandler(broker realtime.Broker) *EventHandler {
	return &EventHandler{broker: broker, heartbeat: defaultHeartbeat}
}

// @Summary Follow slot events
// @Description Server-Sent Events for slot-locked, slot-unlocked and slot-booked in one court field
// @Tags slots
// @Produce text/event-stream
// @Param id path int true "Court field ID"
// @Router /api/court-fields/{id}/events [get]
func (h *EventHandler) Stream(c *gin.Context) {
	courtFieldID, err := positiveIDParam(c, "id")
	if err != nil {
		abortBadRequest(c, err, "Invalid court field id")
		return
	}

	ctx := c.Request.Context()
	room := realtime.Room(courtFieldID)
	sub, err := h.broker.Subscribe(ctx, room)
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Realtime relay unavailable", nil)
		return
	}
	defer func() { _ = sub.Close() }()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.SSEvent("ready", gin.H{"room": room})
	c.Writer.Flush()

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-sub.C():
			if !ok {
				return
			}
			e, err := realtime.Decode(payload)
			if err != nil {
				slog.Warn("Skipping undecodable realtime payload", "error", err, "room", room)
				continue
			}
			c.SSEvent(string(e.Type), e)
			c.Writer.Flush()
		case <-heartbeat.C:
			c.SSEvent("ping", gin.H{"at": time.Now().Unix()})
			c.Writer.Flush()
		}
	}
}
