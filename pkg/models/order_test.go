package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"pending_to_confirmed", StatusPending, StatusConfirmed, true},
		{"confirmed_to_preparing", StatusConfirmed, StatusPreparing, true},
		{"preparing_to_outfordelivery", StatusPreparing, StatusOutForDelivery, true},
		{"outfordelivery_to_delivered", StatusOutForDelivery, StatusDelivered, true},
		{"pending_to_cancelled", StatusPending, StatusCancelled, true},
		{"preparing_to_cancelled", StatusPreparing, StatusCancelled, true},
		{"pending_to_delivered_skips_states", StatusPending, StatusDelivered, false},
		{"confirmed_to_confirmed_duplicate", StatusConfirmed, StatusConfirmed, false},
		{"delivered_is_terminal", StatusDelivered, StatusCancelled, false},
		{"cancelled_is_terminal", StatusCancelled, StatusConfirmed, false},
		{"backwards_not_allowed", StatusPreparing, StatusConfirmed, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			order := &Order{Status: tc.from}
			err := order.Transition(tc.to)
			if tc.allowed {
				assert.NoError(t, err)
				assert.Equal(t, tc.to, order.Status)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				assert.Equal(t, tc.from, order.Status)
			}
		})
	}
}

func TestParseOrderStatus(t *testing.T) {
	status, ok := ParseOrderStatus("preparing")
	assert.True(t, ok)
	assert.Equal(t, StatusPreparing, status)

	_, ok = ParseOrderStatus("shipped")
	assert.False(t, ok)

	_, ok = ParseOrderStatus("")
	assert.False(t, ok)
}
