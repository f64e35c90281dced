package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/platemate/deliverycore/internal/core/domain"
	"github.com/platemate/deliverycore/internal/core/port"
)

type PartnerHandler struct {
	Handler
	service port.Service
}

func NewPartnerHandler(service port.Service, logger *zap.Logger) (*PartnerHandler, error) {
	return &PartnerHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type PartnerResp struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	IsActive        bool             `json:"isActive"`
	IsVerified      bool             `json:"isVerified"`
	IsOnline        bool             `json:"isOnline"`
	WalletBalance   int64            `json:"walletBalance"`
	Orders          []string         `json:"orders"`
	DriverPositions *domain.GeoPoint `json:"driverPositions"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func newPartnerResp(p *domain.DeliveryPartner) PartnerResp {
	return PartnerResp{
		ID:              p.ID,
		Name:            p.Name,
		IsActive:        p.IsActive,
		IsVerified:      p.IsVerified,
		IsOnline:        p.IsOnline,
		WalletBalance:   p.WalletBalance,
		Orders:          p.Orders,
		DriverPositions: p.DriverPosition,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

type createPartnerRequest struct {
	ID         string `json:"id" binding:"required"`
	Name       string `json:"name"`
	PushToken  string `json:"pushToken"`
	IsActive   bool   `json:"isActive"`
	IsVerified bool   `json:"isVerified"`
	IsOnline   bool   `json:"isOnline"`
}

func (ph *PartnerHandler) CreatePartner(ctx *gin.Context) {
	req := createPartnerRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	partner := &domain.DeliveryPartner{
		ID:         req.ID,
		Name:       req.Name,
		PushToken:  req.PushToken,
		IsActive:   req.IsActive,
		IsVerified: req.IsVerified,
		IsOnline:   req.IsOnline,
	}

	newPartner, err := ph.service.RegisterPartner(ctx, partner)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, newPartnerResp(newPartner), http.StatusCreated)
}

func (ph *PartnerHandler) GetPartner(ctx *gin.Context) {
	partner, err := ph.service.GetPartner(ctx, ctx.Param("id"))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccess(ctx, newPartnerResp(partner))
}

// ReportPosition accepts a location report from the partner's own device
// or from an admin.
func (ph *PartnerHandler) ReportPosition(ctx *gin.Context) {
	partnerID := ctx.Param("id")

	payload := getAuthPayload(ctx)
	if payload.Role != RoleAdmin && payload.Subject != partnerID {
		ph.handleError(ctx, domain.ErrForbidden)
		return
	}

	pos := domain.GeoPoint{}
	if err := ctx.ShouldBindBodyWithJSON(&pos); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	if err := ph.service.ReportPosition(ctx, partnerID, pos); err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
