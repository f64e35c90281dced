package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/platemate/deliverycore/internal/core/domain"
	"github.com/platemate/deliverycore/internal/core/port"
)

type WalletHandler struct {
	Handler
	service port.Service
}

func NewWalletHandler(service port.Service, logger *zap.Logger) (*WalletHandler, error) {
	return &WalletHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type TransactionResp struct {
	TransactionID   string    `json:"transactionId"`
	PartnerID       string    `json:"partnerId"`
	TransactionType string    `json:"transactionType"`
	Amount          int64     `json:"amount"`
	Status          string    `json:"status"`
	BalanceBefore   int64     `json:"balanceBefore"`
	BalanceAfter    int64     `json:"balanceAfter"`
	OrderRef        *string   `json:"orderRef,omitempty"`
	Description     string    `json:"description,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func newTransactionResp(t *domain.WalletTransaction) TransactionResp {
	return TransactionResp{
		TransactionID:   t.TransactionID,
		PartnerID:       t.PartnerID,
		TransactionType: string(t.Type),
		Amount:          t.Amount,
		Status:          string(t.Status),
		BalanceBefore:   t.BalanceBefore,
		BalanceAfter:    t.BalanceAfter,
		OrderRef:        t.OrderID,
		Description:     t.Description,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func (wh *WalletHandler) ListTransactions(ctx *gin.Context) {
	filter := port.WalletFilter{
		Type:   domain.TransactionType(ctx.Query("type")),
		Status: domain.TransactionStatus(ctx.Query("status")),
	}
	if limit := ctx.Query("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			wh.handleValidationError(ctx, domain.ErrBadRequest)
			return
		}
		filter.Limit = n
	}

	list, err := wh.service.ListTransactions(ctx, ctx.Param("id"), filter)
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	result := make([]TransactionResp, 0, len(list))
	for _, t := range list {
		result = append(result, newTransactionResp(t))
	}

	wh.handleSuccess(ctx, result)
}

type appendTransactionRequest struct {
	TransactionType string  `json:"transactionType" binding:"required"`
	Amount          int64   `json:"amount"`
	Description     string  `json:"description"`
	OrderRef        *string `json:"orderRef"`
	Async           bool    `json:"async"`
}

func (wh *WalletHandler) AppendTransaction(ctx *gin.Context) {
	req := appendTransactionRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		wh.handleValidationError(ctx, err)
		return
	}

	entry, err := wh.service.AppendTransaction(ctx, ctx.Param("id"), port.WalletEntryRequest{
		Type:        domain.TransactionType(req.TransactionType),
		Amount:      req.Amount,
		Description: req.Description,
		OrderID:     req.OrderRef,
		Async:       req.Async,
	})
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	wh.handleSuccessWithStatus(ctx, newTransactionResp(entry), http.StatusCreated)
}

func (wh *WalletHandler) WalletSummary(ctx *gin.Context) {
	summary, err := wh.service.GetWalletSummary(ctx, ctx.Param("id"))
	if err != nil {
		wh.handleError(ctx, err)
		return
	}
	wh.handleSuccess(ctx, summary)
}

type updateTransactionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (wh *WalletHandler) UpdateTransactionStatus(ctx *gin.Context) {
	req := updateTransactionStatusRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		wh.handleValidationError(ctx, err)
		return
	}

	entry, err := wh.service.UpdateTransactionStatus(ctx,
		ctx.Param("id"), ctx.Param("txid"), domain.TransactionStatus(req.Status))
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	wh.handleSuccess(ctx, newTransactionResp(entry))
}
