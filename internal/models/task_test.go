package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransition(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusOpen, StatusInProgress},
		{StatusOpen, StatusCompleted},
		{StatusInProgress, StatusPending},
		{StatusInProgress, StatusCompleted},
		{StatusInProgress, StatusResolved},
		{StatusPending, StatusInProgress},
		{StatusPending, StatusCompleted},
		{StatusResolved, StatusClosed},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}

	denied := []struct{ from, to Status }{
		{StatusOpen, StatusResolved},
		{StatusOpen, StatusClosed},
		{StatusOpen, StatusPending},
		{StatusPending, StatusResolved},
		{StatusCompleted, StatusInProgress},
		{StatusResolved, StatusInProgress},
		{StatusClosed, StatusInProgress},
		{StatusInProgress, StatusClosed},
	}
	for _, tc := range denied {
		assert.False(t, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestStatusTerminal(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusResolved, StatusClosed} {
		assert.True(t, s.Terminal(), s)
	}
	for _, s := range []Status{StatusOpen, StatusInProgress, StatusPending} {
		assert.False(t, s.Terminal(), s)
	}
}

func TestPriorityRank(t *testing.T) {
	assert.Less(t, PriorityLow.Rank(), PriorityMedium.Rank())
	assert.Less(t, PriorityMedium.Rank(), PriorityHigh.Rank())
	assert.Less(t, PriorityHigh.Rank(), PriorityUrgent.Rank())
	assert.Less(t, PriorityUrgent.Rank(), PriorityCritical.Rank())
	assert.Zero(t, Priority("bogus").Rank())
	assert.False(t, Priority("bogus").Valid())
	assert.True(t, PriorityMedium.Valid())
}
