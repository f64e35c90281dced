package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/platemate/deliverycore/internal/core/domain"
)

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range []domain.OrderStatus{
		domain.OrderStatusYetToBeAccepted,
		domain.OrderStatusPreparing,
		domain.OrderStatusPrepared,
		domain.OrderStatusDispatched,
		domain.OrderStatusDelivered,
		domain.OrderStatusDeclined,
	} {
		assert.True(t, s.Valid(), string(s))
	}

	assert.False(t, domain.OrderStatus("cooked").Valid())
	assert.False(t, domain.OrderStatus("").Valid())
}

func TestOrderStatus_Transitions(t *testing.T) {
	type transitionTest struct {
		from    domain.OrderStatus
		to      domain.OrderStatus
		allowed bool
	}

	tests := []transitionTest{
		{domain.OrderStatusYetToBeAccepted, domain.OrderStatusPreparing, true},
		{domain.OrderStatusYetToBeAccepted, domain.OrderStatusDeclined, true},
		{domain.OrderStatusPreparing, domain.OrderStatusPrepared, true},
		{domain.OrderStatusPreparing, domain.OrderStatusDeclined, true},
		{domain.OrderStatusPrepared, domain.OrderStatusDispatched, true},
		{domain.OrderStatusDispatched, domain.OrderStatusDelivered, true},

		// skipping states is not allowed
		{domain.OrderStatusYetToBeAccepted, domain.OrderStatusDispatched, false},
		{domain.OrderStatusYetToBeAccepted, domain.OrderStatusDelivered, false},
		{domain.OrderStatusPreparing, domain.OrderStatusDelivered, false},
		{domain.OrderStatusPrepared, domain.OrderStatusDeclined, false},
		{domain.OrderStatusDispatched, domain.OrderStatusDeclined, false},

		// no going back
		{domain.OrderStatusPreparing, domain.OrderStatusYetToBeAccepted, false},
		{domain.OrderStatusDispatched, domain.OrderStatusPrepared, false},
	}

	for _, test := range tests {
		assert.Equal(t, test.allowed, test.from.CanTransitionTo(test.to),
			"%s -> %s", test.from, test.to)
	}
}

func TestOrderStatus_TerminalStatesRejectEverything(t *testing.T) {
	all := []domain.OrderStatus{
		domain.OrderStatusYetToBeAccepted,
		domain.OrderStatusPreparing,
		domain.OrderStatusPrepared,
		domain.OrderStatusDispatched,
		domain.OrderStatusDelivered,
		domain.OrderStatusDeclined,
	}

	for _, terminal := range []domain.OrderStatus{domain.OrderStatusDelivered, domain.OrderStatusDeclined} {
		assert.True(t, terminal.Terminal())
		for _, next := range all {
			assert.False(t, terminal.CanTransitionTo(next),
				"%s -> %s must be rejected", terminal, next)
		}
	}

	assert.False(t, domain.OrderStatusPreparing.Terminal())
}

func TestDeliveryPartner_HasOrder(t *testing.T) {
	p := domain.DeliveryPartner{Orders: []string{"o-1", "o-2"}}

	assert.True(t, p.HasOrder("o-1"))
	assert.False(t, p.HasOrder("o-3"))
}
