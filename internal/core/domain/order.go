package domain

import "time"

type OrderStatus string

const (
	OrderStatusYetToBeAccepted OrderStatus = "yetToBeAccepted"
	OrderStatusPreparing       OrderStatus = "preparing"
	OrderStatusPrepared        OrderStatus = "prepared"
	OrderStatusDispatched      OrderStatus = "dispatched"
	OrderStatusDelivered       OrderStatus = "delivered"
	OrderStatusDeclined        OrderStatus = "declined"
)

// statusTransitions is the canonical order state machine.
// delivered and declined are terminal and have no outgoing edges.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusYetToBeAccepted: {OrderStatusPreparing, OrderStatusDeclined},
	OrderStatusPreparing:       {OrderStatusPrepared, OrderStatusDeclined},
	OrderStatusPrepared:        {OrderStatusDispatched},
	OrderStatusDispatched:      {OrderStatusDelivered},
	OrderStatusDelivered:       {},
	OrderStatusDeclined:        {},
}

func (s OrderStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

func (s OrderStatus) Terminal() bool {
	next, ok := statusTransitions[s]
	return ok && len(next) == 0
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, n := range statusTransitions[s] {
		if n == next {
			return true
		}
	}
	return false
}

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Order struct {
	ID                string
	Number            string
	Status            OrderStatus
	AssignedPartnerID *string
	// AssigningPartner is true only while an assignment is in flight.
	AssigningPartner bool
	Source           GeoPoint
	Destination      GeoPoint
	// DriverPosition is copied from the partner at assignment time and
	// refreshed by position reports afterwards.
	DriverPosition *GeoPoint
	OrderValue     int64
	DeliveryFee    int64
	PaymentStatus  string
	PaymentID      string
	AcceptedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OrderEvent is an audit record of a committed order mutation.
type OrderEvent struct {
	OrderID    string    `json:"order_id"`
	Number     string    `json:"number"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	PartnerID  string    `json:"partner_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
