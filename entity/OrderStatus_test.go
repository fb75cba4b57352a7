package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusProgressionForwardOnly(t *testing.T) {
	s := StatusPlaced
	seen := []OrderStatus{s}
	for {
		next, ok := s.Next()
		if !ok {
			break
		}
		s = next
		seen = append(seen, s)
	}
	assert.Equal(t, []OrderStatus{
		StatusPlaced, StatusPreparing, StatusOutForDelivery, StatusArriving, StatusDelivered,
	}, seen)

	// terminal states do not advance
	_, ok := StatusDelivered.Next()
	assert.False(t, ok)
	_, ok = StatusCancelled.Next()
	assert.False(t, ok)
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPlaced.IsTerminal())
	assert.False(t, StatusArriving.IsTerminal())
}

func TestStatusProgress(t *testing.T) {
	assert.InDelta(t, 0.0, StatusPlaced.Progress(), 1e-9)
	assert.InDelta(t, 0.25, StatusPreparing.Progress(), 1e-9)
	assert.InDelta(t, 0.5, StatusOutForDelivery.Progress(), 1e-9)
	assert.InDelta(t, 0.75, StatusArriving.Progress(), 1e-9)
	assert.InDelta(t, 1.0, StatusDelivered.Progress(), 1e-9)
}

func TestStatusMessages(t *testing.T) {
	for _, s := range []OrderStatus{
		StatusPlaced, StatusPreparing, StatusOutForDelivery,
		StatusArriving, StatusDelivered, StatusCancelled,
	} {
		assert.NotEmpty(t, s.Message())
	}
}
