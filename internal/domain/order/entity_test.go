//go:build unit

package order_test

import (
	"strings"
	"testing"
	"time"

	"court-booking/internal/domain/order"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now   = time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC)
	alice = uuid.MustParse("11111111-1111-1111-1111-111111111111")
)

func validContact(t *testing.T) order.Contact {
	t.Helper()
	c, err := order.NewContact("Nguyen Van A", "0901 234-567")
	require.NoError(t, err)
	return c
}

func TestNewStagedOrder(t *testing.T) {
	note, err := order.NewNote("  bring extra shuttlecocks ")
	require.NoError(t, err)
	couponID := int64(5)

	o, err := order.NewStagedOrder(order.NewCode(now), alice, 7, []int64{44, 42, 43}, validContact(t), note,
		order.Amounts{Original: 300000, Discount: 30000, Final: 270000}, &couponID, now, 15*time.Minute)
	require.NoError(t, err)

	if diff := cmp.Diff([]int64{42, 43, 44}, o.SlotIDs()); diff != "" {
		t.Errorf("slot ids mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, now.Add(15*time.Minute), o.ExpiresAt())
	assert.Equal(t, "bring extra shuttlecocks", o.Note().String())
	assert.Equal(t, "0901234567", o.Contact().Phone())
	assert.Equal(t, int64(270000), o.Amounts().Final)
	assert.True(t, o.IsOwnedBy(alice))
}

func TestNewStagedOrder_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		slotIDs []int64
		amounts order.Amounts
		ttl     time.Duration
		errIs   error
	}{
		{name: "no slots", amounts: order.Amounts{Original: 1, Final: 1}, ttl: time.Minute, errIs: order.ErrNoSlots},
		{name: "amounts do not add up", slotIDs: []int64{1}, amounts: order.Amounts{Original: 10, Discount: 3, Final: 8}, ttl: time.Minute, errIs: order.ErrInvalidAmounts},
		{name: "negative discount", slotIDs: []int64{1}, amounts: order.Amounts{Original: 10, Discount: -2, Final: 12}, ttl: time.Minute, errIs: order.ErrInvalidAmounts},
		{name: "zero ttl", slotIDs: []int64{1}, amounts: order.Amounts{Original: 10, Final: 10}, errIs: order.ErrInvalidExpiry},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := order.NewStagedOrder(order.NewCode(now), alice, 7, tc.slotIDs, validContact(t), order.Note{}, tc.amounts, nil, now, tc.ttl)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestStagedOrder_CheckFinalizable(t *testing.T) {
	o, err := order.NewStagedOrder(order.NewCode(now), alice, 7, []int64{1}, validContact(t), order.Note{},
		order.Amounts{Original: 10, Final: 10}, nil, now, 10*time.Minute)
	require.NoError(t, err)

	assert.NoError(t, o.CheckFinalizable(alice, now.Add(9*time.Minute)))
	assert.ErrorIs(t, o.CheckFinalizable(uuid.New(), now), order.ErrNotOwnedByUser)
	assert.ErrorIs(t, o.CheckFinalizable(alice, now.Add(10*time.Minute)), order.ErrOrderHasExpired)
	assert.True(t, o.IsExpired(now.Add(time.Hour)))
}

func TestContactAndNote(t *testing.T) {
	_, err := order.NewContact("   ", "0901234567")
	assert.ErrorIs(t, err, order.ErrInvalidFullName)

	_, err = order.NewContact("A", "12ab")
	assert.ErrorIs(t, err, order.ErrInvalidPhone)

	c, err := order.NewContact("B", "+84901234567")
	require.NoError(t, err)
	assert.Equal(t, "+84901234567", c.Phone())

	_, err = order.NewNote(strings.Repeat("x", 501))
	assert.ErrorIs(t, err, order.ErrNoteTooLong)

	n, err := order.NewNote(strings.Repeat("é", 500))
	require.NoError(t, err)
	assert.False(t, n.IsEmpty())
}

func TestCode(t *testing.T) {
	code := order.NewCode(now)
	assert.GreaterOrEqual(t, code.Int64(), now.UnixMilli()*1000)
	assert.Less(t, code.Int64(), now.UnixMilli()*1000+1000)

	_, err := order.ParseCode(0)
	assert.ErrorIs(t, err, order.ErrInvalidCode)
}
