package routes

import (
	"esim_bridge/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWebhooks = "/webhooks"
	PathUsage    = "/usage"
)

func addFulfillmentRoutes(rg *gin.RouterGroup, webhookAuth gin.HandlerFunc, webhookHandler *handlers.OrderWebhookHandler, usageHandler *handlers.UsageScanHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		// Deliveries are HMAC-authenticated before any parsing.
		webhooks.POST("/orders/paid", webhookAuth, webhookHandler.HandleOrderPaid)
	}

	usage := rg.Group(PathUsage)
	{
		// Token auth happens inside the handler (cron callers may only be
		// able to pass a query parameter).
		usage.GET("/scan", usageHandler.ScanUsage)
	}
}
