package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/platemate/deliverycore/internal/core/domain"
	"github.com/platemate/deliverycore/internal/core/port"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type OrderResp struct {
	ID                 string           `json:"id"`
	Number             string           `json:"number"`
	Status             string           `json:"status"`
	AssignedPartnerRef *string          `json:"assignedPartnerRef"`
	AssigningPartner   bool             `json:"assigningPartner"`
	Source             domain.GeoPoint  `json:"source"`
	Destination        domain.GeoPoint  `json:"destination"`
	DriverPositions    *domain.GeoPoint `json:"driverPositions"`
	OrderValue         int64            `json:"orderValue"`
	DeliveryFee        int64            `json:"deliveryFee"`
	PaymentStatus      string           `json:"paymentStatus,omitempty"`
	PaymentID          string           `json:"paymentId,omitempty"`
	AcceptedAt         *time.Time       `json:"acceptedAt,omitempty"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

func newOrderResp(o *domain.Order) OrderResp {
	return OrderResp{
		ID:                 o.ID,
		Number:             o.Number,
		Status:             string(o.Status),
		AssignedPartnerRef: o.AssignedPartnerID,
		AssigningPartner:   o.AssigningPartner,
		Source:             o.Source,
		Destination:        o.Destination,
		DriverPositions:    o.DriverPosition,
		OrderValue:         o.OrderValue,
		DeliveryFee:        o.DeliveryFee,
		PaymentStatus:      o.PaymentStatus,
		PaymentID:          o.PaymentID,
		AcceptedAt:         o.AcceptedAt,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

type createOrderRequest struct {
	Source        domain.GeoPoint `json:"source" binding:"required"`
	Destination   domain.GeoPoint `json:"destination" binding:"required"`
	OrderValue    int64           `json:"orderValue"`
	DeliveryFee   int64           `json:"deliveryFee"`
	PaymentStatus string          `json:"paymentStatus"`
	PaymentID     string          `json:"paymentId"`
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := createOrderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order := &domain.Order{
		Source:        req.Source,
		Destination:   req.Destination,
		OrderValue:    req.OrderValue,
		DeliveryFee:   req.DeliveryFee,
		PaymentStatus: req.PaymentStatus,
		PaymentID:     req.PaymentID,
	}

	newOrder, err := oh.service.CreateOrder(ctx, order)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResp(newOrder), http.StatusCreated)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	order, err := oh.service.GetOrder(ctx, ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, newOrderResp(order))
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	status := domain.OrderStatus(ctx.Query("status"))

	list, err := oh.service.ListOrdersByStatus(ctx, status)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]OrderResp, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResp(o))
	}

	oh.handleSuccess(ctx, result)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (oh *OrderHandler) UpdateStatus(ctx *gin.Context) {
	req := updateStatusRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.UpdateStatus(ctx, ctx.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}

type acceptOrderResp struct {
	Order            OrderResp `json:"order"`
	NotifiedPartners []string  `json:"notifiedPartners"`
}

func (oh *OrderHandler) AcceptOrder(ctx *gin.Context) {
	order, notified, err := oh.service.AcceptOrder(ctx, ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, acceptOrderResp{
		Order:            newOrderResp(order),
		NotifiedPartners: notified,
	})
}

type assignPartnerRequest struct {
	PartnerID string `json:"partnerId" binding:"required"`
}

func (oh *OrderHandler) AssignPartner(ctx *gin.Context) {
	req := assignPartnerRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.AssignPartner(ctx, ctx.Param("id"), req.PartnerID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}

func (oh *OrderHandler) DispatchOrder(ctx *gin.Context) {
	order, err := oh.service.DispatchOrder(ctx, ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}
