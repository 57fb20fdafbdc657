package entities_test

import (
	"testing"

	"github.com/Yaseeru/glowgroove/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		from entities.Status
		to   entities.Status
		want bool
	}{
		{entities.StatusPending, entities.StatusConfirmed, true},
		{entities.StatusPending, entities.StatusProcessing, true},
		{entities.StatusPending, entities.StatusDelivered, false},
		{entities.StatusProcessing, entities.StatusShipped, true},
		{entities.StatusProcessing, entities.StatusCancelled, true},
		{entities.StatusShipped, entities.StatusDelivered, true},
		{entities.StatusShipped, entities.StatusPending, false},
		{entities.StatusDelivered, entities.StatusRefunded, true},
		{entities.StatusDelivered, entities.StatusShipped, false},
		{entities.StatusRefunded, entities.StatusPending, false},
		{entities.StatusCancelled, entities.StatusProcessing, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatus_Cancellable(t *testing.T) {
	assert.True(t, entities.StatusPending.Cancellable())
	assert.True(t, entities.StatusConfirmed.Cancellable())
	assert.True(t, entities.StatusProcessing.Cancellable())
	assert.False(t, entities.StatusShipped.Cancellable())
	assert.False(t, entities.StatusDelivered.Cancellable())
	assert.False(t, entities.StatusCancelled.Cancellable())
}

func TestPaymentStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, entities.PaymentPending.CanTransitionTo(entities.PaymentCompleted))
	assert.True(t, entities.PaymentPending.CanTransitionTo(entities.PaymentFailed))
	assert.True(t, entities.PaymentCompleted.CanTransitionTo(entities.PaymentRefunded))
	assert.False(t, entities.PaymentCompleted.CanTransitionTo(entities.PaymentPending))
	assert.False(t, entities.PaymentRefunded.CanTransitionTo(entities.PaymentCompleted))
	assert.True(t, entities.PaymentFailed.CanTransitionTo(entities.PaymentCompleted))
}

func TestStatus_NotifiesCustomer(t *testing.T) {
	assert.True(t, entities.StatusShipped.NotifiesCustomer())
	assert.True(t, entities.StatusDelivered.NotifiesCustomer())
	assert.True(t, entities.StatusRefunded.NotifiesCustomer())
	assert.False(t, entities.StatusPending.NotifiesCustomer())
	assert.False(t, entities.StatusCancelled.NotifiesCustomer())
}
