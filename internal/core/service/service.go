package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platemate/deliverycore/internal/core/port"
)

type Service struct {
	repo     port.Repository
	notifier port.Notifier
	audit    port.AuditTrail
	logger   *zap.Logger
}

func NewService(repo port.Repository, notifier port.Notifier,
	audit port.AuditTrail, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		logger:   logger,
	}, nil
}

func newID() string {
	return uuid.NewString()
}

// newOrderNumber builds the human-readable order number, e.g.
// ORD-20260829-1A2B3C.
func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("ORD-%s-%s", now.UTC().Format("20060102"), suffix)
}
