package routes

import (
	"supplement_tracker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPayments = "/payments"

func addBillingRoutes(rg *gin.RouterGroup, paymentHandler *handlers.BillingPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:claim_id", paymentHandler.CreatePaymentByClaimID)
		payments.GET("/:claim_id", paymentHandler.GetPaymentByClaimID)
	}
}
