package routes

import (
	"trade_credit/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathObligationRequests = "/obligation-requests"
	PathObligations        = "/obligations"
)

func addSettlementRoutes(rg *gin.RouterGroup, requestHandler *handlers.ObligationRequestHandler, settlementHandler *handlers.SettlementHandler) {
	requests := rg.Group(PathObligationRequests)
	{
		requests.POST("", requestHandler.CreateRequest)
		requests.GET("/:request_id", requestHandler.GetRequest)
		requests.POST("/:request_id/decision", requestHandler.DecideRequest)
		requests.GET("/:request_id/obligation", settlementHandler.GetObligationByRequest)
	}

	obligations := rg.Group(PathObligations)
	{
		obligations.GET("/:obligation_id", settlementHandler.GetObligation)
		obligations.POST("/:obligation_id/payments", settlementHandler.SubmitPayment)
		obligations.GET("/:obligation_id/balance", settlementHandler.GetBalance)
		obligations.GET("/:obligation_id/transactions", settlementHandler.ListTransactions)
		obligations.GET("/:obligation_id/cleared", settlementHandler.IsCleared)
	}
}
