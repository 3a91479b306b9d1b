package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"

	request "esim_bridge/internal/adapter/http/dto/request"
	response "esim_bridge/internal/adapter/http/dto/response"
	"esim_bridge/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	// HeaderWebhookTopic names the event that triggered the delivery.
	HeaderWebhookTopic = "X-Shopify-Topic"
	// HeaderShopDomain identifies the shop the delivery belongs to.
	HeaderShopDomain = "X-Shopify-Shop-Domain"

	topicOrdersPaid = "orders/paid"
)

// OrderWebhookHandler turns "order paid" webhook deliveries into fulfillment
// runs.
//
// Every business outcome answers 200: the platform retries non-2xx responses,
// and a redelivery of a malformed or failed order would never succeed anyway.
// Redelivery of a *processing* failure is wanted, but it arrives through the
// platform's own redelivery tooling, keyed on the idempotent order id.

type OrderWebhookHandler struct {
	usecase usecase.IFulfillmentUseCase
}

func NewOrderWebhookHandler(uc usecase.IFulfillmentUseCase) *OrderWebhookHandler {
	return &OrderWebhookHandler{usecase: uc}
}

// HandleOrderPaid godoc
// @Summary      Process an "order paid" webhook
// @Description  Provisions eSIMs / applies top-ups for a paid order. Idempotent per order id.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        payload  body      request.OrderWebhookRequest  true  "Order webhook payload"
// @Success      200      {object}  response.FulfillmentResponse
// @Failure      401      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /webhooks/orders/paid [post]
func (h *OrderWebhookHandler) HandleOrderPaid(c *gin.Context) {
	topic := c.GetHeader(HeaderWebhookTopic)
	if topic != "" && topic != topicOrdersPaid {
		log.Printf("[webhook][handler] ignoring topic=%s", topic)
		c.JSON(http.StatusOK, gin.H{"ignored": true, "reason": "unsupported_topic"})
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed err=%v", err)
		c.JSON(http.StatusOK, gin.H{"ignored": true, "reason": "unreadable_body"})
		return
	}

	var req request.OrderWebhookRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		log.Printf("[webhook][handler] payload parse failed err=%v", err)
		c.JSON(http.StatusOK, gin.H{"ignored": true, "reason": "invalid_payload"})
		return
	}

	shopDomain := strings.TrimSpace(c.GetHeader(HeaderShopDomain))
	if shopDomain == "" {
		shopDomain = strings.TrimSpace(os.Getenv("SHOP_DOMAIN"))
	}
	order := req.ToOrder(shopDomain, strings.TrimSpace(os.Getenv("DEFAULT_COUNTRY_CODE")))
	if order.ID == "" {
		log.Printf("[webhook][handler] payload without order id shop=%s", shopDomain)
		c.JSON(http.StatusOK, gin.H{"ignored": true, "reason": "missing_order_id"})
		return
	}
	log.Printf("[webhook][handler] order-paid start order_id=%s shop=%s items=%d", order.ID, shopDomain, len(order.LineItems))

	outcome, err := h.usecase.ProcessOrder(c.Request.Context(), order)
	if err != nil {
		// Processing faults were already escalated by the usecase. Answering
		// non-2xx here would loop the platform's redelivery forever.
		log.Printf("[webhook][handler] order-paid failed order_id=%s err=%v", order.ID, err)
		c.JSON(http.StatusOK, gin.H{"order_id": order.ID, "status": "error"})
		return
	}
	log.Printf("[webhook][handler] order-paid done order_id=%s processed=%t skipped=%t partial=%t",
		order.ID, outcome.Processed, outcome.Skipped, outcome.PartialFailure)

	c.JSON(http.StatusOK, response.FromFulfillmentOutcome(outcome))
}
