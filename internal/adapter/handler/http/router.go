package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/platemate/deliverycore/internal/adapter/config"
	"github.com/platemate/deliverycore/internal/core/port"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	blacklist port.TokenBlacklist,
	logger *zap.Logger,
	orderHandler *OrderHandler,
	partnerHandler *PartnerHandler,
	walletHandler *WalletHandler) (*Router, error) {

	router := gin.New()

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.Use(authCheck(tokenService, blacklist, logger))
	{
		orders := api.Group("/orders")
		orders.Use(requireRole(RoleAdmin, logger))
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PATCH("/:id/status", orderHandler.UpdateStatus)
			orders.POST("/:id/accept", orderHandler.AcceptOrder)
			orders.PATCH("/:id/assign", orderHandler.AssignPartner)
			orders.PATCH("/:id/dispatch", orderHandler.DispatchOrder)
		}

		partners := api.Group("/partners")
		{
			partners.POST("", requireRole(RoleAdmin, logger), partnerHandler.CreatePartner)
			partners.GET("/:id", partnerHandler.GetPartner)
			partners.PATCH("/:id/position", partnerHandler.ReportPosition)

			wallet := partners.Group("/:id/wallet")
			{
				wallet.GET("/transactions", walletHandler.ListTransactions)
				wallet.POST("/transactions", requireRole(RoleAdmin, logger), walletHandler.AppendTransaction)
				wallet.PATCH("/transactions/:txid", requireRole(RoleAdmin, logger), walletHandler.UpdateTransactionStatus)
				wallet.GET("/summary", walletHandler.WalletSummary)
			}
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
