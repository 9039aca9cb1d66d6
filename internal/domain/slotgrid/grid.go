// Package slotgrid is the client-side view of one court field's slots.
// Realtime events and optimistic lock/unlock requests update cells in place.
package slotgrid

import (
	"errors"
	"slices"
	"sync"

	"court-booking/internal/domain/slot"

	"github.com/google/uuid"
)

var (
	ErrUnknownSlot     = errors.New("slot is not part of this grid")
	ErrPendingRequest  = errors.New("slot already has a request in flight")
	ErrNothingInFlight = errors.New("slot has no request in flight")
)

// Phase tracks the optimistic request state of a cell.
type Phase string

const (
	PhaseIdle             Phase = "idle"
	PhaseOptimisticLock   Phase = "optimistic-lock"
	PhaseOptimisticUnlock Phase = "optimistic-unlock"
	PhaseConfirmed        Phase = "confirmed"
	PhaseRolledBack       Phase = "rolled-back"
)

type Cell struct {
	SlotID    int64
	TimeRange string
	State     slot.State
	LockedBy  *uuid.UUID
	Phase     Phase

	// state before the optimistic change, restored on rollback
	prevState    slot.State
	prevLockedBy *uuid.UUID
}

func (c Cell) IsMine(self uuid.UUID) bool {
	return c.State == slot.StatePending && c.LockedBy != nil && *c.LockedBy == self
}

type Grid struct {
	mu    sync.RWMutex
	self  uuid.UUID
	cells map[int64]*Cell
}

// New seeds the grid from an authoritative slot listing. Reconnecting
// clients call Reset with a fresh listing.
func New(self uuid.UUID, slots []*slot.Slot) *Grid {
	g := &Grid{self: self}
	g.Reset(slots)
	return g
}

func (g *Grid) Reset(slots []*slot.Slot) {
	cells := make(map[int64]*Cell, len(slots))
	for _, s := range slots {
		cells[s.ID()] = &Cell{
			SlotID:    s.ID(),
			TimeRange: s.TimeRange(),
			State:     s.State(),
			LockedBy:  s.LockedBy(),
			Phase:     PhaseIdle,
		}
	}
	g.mu.Lock()
	g.cells = cells
	g.mu.Unlock()
}

// BeginLock marks the cell as held by self before the server answers.
func (g *Grid) BeginLock(slotID int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	c, err := g.startRequest(slotID)
	if err != nil {
		return err
	}
	self := g.self
	c.State = slot.StatePending
	c.LockedBy = &self
	c.Phase = PhaseOptimisticLock
	return nil
}

func (g *Grid) BeginUnlock(slotID int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	c, err := g.startRequest(slotID)
	if err != nil {
		return err
	}
	c.State = slot.StateAvailable
	c.LockedBy = nil
	c.Phase = PhaseOptimisticUnlock
	return nil
}

// Confirm settles an optimistic change after the server accepted it.
func (g *Grid) Confirm(slotID int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	c, ok := g.cells[slotID]
	if !ok {
		return ErrUnknownSlot
	}
	if !c.inFlight() {
		return ErrNothingInFlight
	}
	c.Phase = PhaseConfirmed
	return nil
}

// Rollback restores the pre-request state after the server rejected it.
func (g *Grid) Rollback(slotID int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	c, ok := g.cells[slotID]
	if !ok {
		return ErrUnknownSlot
	}
	if !c.inFlight() {
		return ErrNothingInFlight
	}
	c.State = c.prevState
	c.LockedBy = c.prevLockedBy
	c.Phase = PhaseRolledBack
	return nil
}

// ApplyLocked applies a slot-locked event. Unknown slots are ignored.
func (g *Grid) ApplyLocked(slotID int64, by uuid.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	c, ok := g.cells[slotID]
	if !ok {
		return
	}
	c.State = slot.StatePending
	c.LockedBy = &by
	if c.Phase == PhaseOptimisticLock && by == g.self {
		c.Phase = PhaseConfirmed
	}
}

func (g *Grid) ApplyUnlocked(slotID int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	c, ok := g.cells[slotID]
	if !ok || c.State == slot.StateBooked {
		return
	}
	c.State = slot.StateAvailable
	c.LockedBy = nil
	if c.Phase == PhaseOptimisticUnlock {
		c.Phase = PhaseConfirmed
	}
}

func (g *Grid) ApplyBooked(slotID int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	c, ok := g.cells[slotID]
	if !ok {
		return
	}
	c.State = slot.StateBooked
	c.LockedBy = nil
	c.Phase = PhaseIdle
}

func (g *Grid) Cell(slotID int64) (Cell, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c, ok := g.cells[slotID]
	if !ok {
		return Cell{}, false
	}
	return *c, true
}

// Cells returns a copy of every cell ordered by slot id.
func (g *Grid) Cells() []Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Cell, 0, len(g.cells))
	for _, c := range g.cells {
		out = append(out, *c)
	}
	slices.SortFunc(out, func(a, b Cell) int {
		switch {
		case a.SlotID < b.SlotID:
			return -1
		case a.SlotID > b.SlotID:
			return 1
		}
		return 0
	})
	return out
}

// Mine lists the slots the grid believes self holds.
func (g *Grid) Mine() []int64 {
	var ids []int64
	for _, c := range g.Cells() {
		if c.IsMine(g.self) {
			ids = append(ids, c.SlotID)
		}
	}
	return ids
}

func (g *Grid) startRequest(slotID int64) (*Cell, error) {
	c, ok := g.cells[slotID]
	if !ok {
		return nil, ErrUnknownSlot
	}
	if c.inFlight() {
		return nil, ErrPendingRequest
	}
	c.prevState = c.State
	c.prevLockedBy = c.LockedBy
	return c, nil
}

func (c *Cell) inFlight() bool {
	return c.Phase == PhaseOptimisticLock || c.Phase == PhaseOptimisticUnlock
}
