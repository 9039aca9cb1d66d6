package realtime

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
)

type EventType string

const (
	EventSlotLocked   EventType = "slot-locked"
	EventSlotUnlocked EventType = "slot-unlocked"
	EventSlotBooked   EventType = "slot-booked"
)

// Event is the payload relayed to a court field room. ScheduleID is the slot id.
type Event struct {
	Type       EventType  `json:"type"`
	ScheduleID int64      `json:"scheduleId"`
	UserID     *uuid.UUID `json:"userId,omitempty"`
}

const roomPrefix = "courtField_"

func Room(courtFieldID int64) string {
	return roomPrefix + strconv.FormatInt(courtFieldID, 10)
}

func Encode(e Event) ([]byte, error) {
	return json.Marshal(e)
}

func Decode(payload []byte) (Event, error) {
	var e Event
	err := json.Unmarshal(payload, &e)
	return e, err
}
