package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/platemate/deliverycore/internal/core/domain"
	"github.com/platemate/deliverycore/internal/core/port"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"
const userPayloadKey = "user_payload"

const RoleAdmin = "admin"

func authCheck(tokenService port.TokenService, blacklist port.TokenBlacklist,
	logger *zap.Logger) gin.HandlerFunc {
	h := NewHandler(logger)
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) == 0 {
			h.handleAbort(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		words := strings.Split(header, " ")
		if len(words) != 2 {
			h.handleAbort(ctx, domain.ErrInvalidAuthorizationHeader)
			return
		}
		if words[0] != authType {
			h.handleAbort(ctx, domain.ErrInvalidAuthorizationType)
			return
		}
		token := words[1]
		payload, err := tokenService.VerifyToken(token)
		if err != nil {
			h.handleAbort(ctx, domain.ErrInvalidToken)
			return
		}

		revoked, err := blacklist.IsRevoked(ctx, token)
		if err != nil {
			// The blacklist store being down must not lock admins out;
			// log and let the verified token through.
			logger.Error("token blacklist lookup", zap.Error(err))
		} else if revoked {
			h.handleAbort(ctx, domain.ErrRevokedToken)
			return
		}

		ctx.Set(userPayloadKey, payload)

		ctx.Next()
	}
}

func requireRole(role string, logger *zap.Logger) gin.HandlerFunc {
	h := NewHandler(logger)
	return func(ctx *gin.Context) {
		if getAuthPayload(ctx).Role != role {
			h.handleAbort(ctx, domain.ErrForbidden)
			return
		}
		ctx.Next()
	}
}

func getAuthPayload(ctx *gin.Context) *port.TokenPayload {
	return ctx.MustGet(userPayloadKey).(*port.TokenPayload)
}
