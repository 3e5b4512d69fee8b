package routes

import (
	"paygo_market/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices = "/services"
	PathSessions = "/sessions"
	PathWallets  = "/wallets"
)

func addMarketRoutes(
	rg *gin.RouterGroup,
	serviceHandler *handlers.ServiceHandler,
	sessionHandler *handlers.SessionHandler,
	walletHandler *handlers.WalletHandler,
) {
	services := rg.Group(PathServices)
	{
		services.POST("", serviceHandler.CreateService)
		services.GET("/:service_id", serviceHandler.GetService)
	}

	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", sessionHandler.StartSession)
		sessions.GET("/:session_id", sessionHandler.GetSession)
		sessions.PATCH("/:session_id/pause", sessionHandler.PauseSession)
		sessions.PATCH("/:session_id/resume", sessionHandler.ResumeSession)
		sessions.POST("/:session_id/metrics", sessionHandler.RecordMetrics)
		sessions.POST("/:session_id/stop", sessionHandler.StopSession)
	}

	wallets := rg.Group(PathWallets)
	{
		wallets.GET("/:user_id/balance", walletHandler.GetBalance)
		wallets.GET("/:user_id/transactions", walletHandler.ListTransactions)
		wallets.POST("/:user_id/deposits", walletHandler.CreateDeposit)
		wallets.POST("/:user_id/withdrawals", walletHandler.CreateWithdrawal)
	}
}
