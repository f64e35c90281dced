package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/platemate/deliverycore/internal/core/domain"
)

type errorClass struct {
	status int
	kind   string
}

var errorClassMap = map[error]errorClass{
	domain.ErrDataNotFound:    {http.StatusNotFound, "NotFound"},
	domain.ErrConflictingData: {http.StatusConflict, "Conflict"},
	domain.ErrConflict:        {http.StatusConflict, "Conflict"},

	domain.ErrBadRequest: {http.StatusBadRequest, "BadRequest"},

	domain.ErrEmptyAuthorizationHeader:   {http.StatusUnauthorized, "Unauthorized"},
	domain.ErrInvalidAuthorizationHeader: {http.StatusUnauthorized, "Unauthorized"},
	domain.ErrInvalidAuthorizationType:   {http.StatusUnauthorized, "Unauthorized"},
	domain.ErrInvalidToken:               {http.StatusUnauthorized, "Unauthorized"},
	domain.ErrExpiredToken:               {http.StatusUnauthorized, "Unauthorized"},
	domain.ErrRevokedToken:               {http.StatusUnauthorized, "Unauthorized"},
	domain.ErrForbidden:                  {http.StatusForbidden, "Forbidden"},

	domain.ErrInvalidStatus:           {http.StatusBadRequest, "InvalidStatus"},
	domain.ErrInvalidTransition:       {http.StatusBadRequest, "InvalidTransition"},
	domain.ErrPartnerInactive:         {http.StatusBadRequest, "PartnerInactive"},
	domain.ErrPreconditionFailed:      {http.StatusBadRequest, "PreconditionFailed"},
	domain.ErrInvalidAmount:           {http.StatusBadRequest, "InvalidAmount"},
	domain.ErrInsufficientBalance:     {http.StatusBadRequest, "InsufficientBalance"},
	domain.ErrTransactionImmutable:    {http.StatusBadRequest, "TransactionImmutable"},
	domain.ErrInvalidTransactionState: {http.StatusBadRequest, "InvalidStatus"},
}

type errorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for a request parsing error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, errorResponse{
		Kind:    "BadRequest",
		Message: domain.ErrBadRequest.Error(),
	})
}

// handleAbort sends an error response and aborts the request
func (h *Handler) handleAbort(ctx *gin.Context, err error) {
	class, ok := errorClassMap[err]
	if !ok {
		class = errorClass{http.StatusInternalServerError, "Internal"}
		h.logger.Error("aborting request", zap.Error(err))
		err = domain.ErrInternal
	}
	ctx.AbortWithStatusJSON(class.status, errorResponse{Kind: class.kind, Message: err.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	class, ok := errorClassMap[err]
	if !ok {
		class = errorClass{http.StatusInternalServerError, "Internal"}
		h.logger.Error("error processing request", zap.Error(err))
		err = domain.ErrInternal
	}
	ctx.JSON(class.status, errorResponse{Kind: class.kind, Message: err.Error()})
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
