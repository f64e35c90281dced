package domain

import "time"

// DeliveryPartner id equals the identity provider subject for the partner.
type DeliveryPartner struct {
	ID         string
	Name       string
	PushToken  string
	IsActive   bool
	IsVerified bool
	IsOnline   bool
	// WalletBalance is the cached balance in minor currency units.
	// It always equals the balance_after of the most recent completed
	// ledger entry (zero when none exist).
	WalletBalance int64
	// Orders holds the ids of orders currently assigned to this partner.
	// Every id here points to an order whose AssignedPartnerID is this
	// partner.
	Orders         []string
	DriverPosition *GeoPoint
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Assignable reports whether the partner may be bound to an order.
func (p *DeliveryPartner) Assignable() bool {
	return p.IsActive
}

// HasOrder reports whether orderID is in the partner's assigned set.
func (p *DeliveryPartner) HasOrder(orderID string) bool {
	for _, id := range p.Orders {
		if id == orderID {
			return true
		}
	}
	return false
}
