package port

import "github.com/platemate/deliverycore/internal/core/domain"

type PushNotification struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

//go:generate mockgen -source=notifier.go -destination=mock/notifier.go -package=mock

// Notifier schedules best-effort push delivery. Implementations must never
// block the caller; delivery failures are logged, not returned.
type Notifier interface {
	Schedule(n PushNotification)
}

// AuditTrail records committed order mutations. Implementations must never
// block the caller.
type AuditTrail interface {
	Record(e domain.OrderEvent)
}
