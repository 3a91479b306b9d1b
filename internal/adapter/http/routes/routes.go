package routes

import (
	_ "esim_bridge/docs" // This will be auto-generated
	"esim_bridge/internal/adapter/http/handlers"
	"esim_bridge/internal/adapter/http/middleware"
	repository2 "esim_bridge/internal/adapter/persistence/repository"
	"esim_bridge/internal/infrastructure/commerce"
	"esim_bridge/internal/infrastructure/notifications"
	"esim_bridge/internal/infrastructure/provisioning"
	"esim_bridge/internal/usecase"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	store, err := commerce.NewShopifyGraphQLClient(os.Getenv("SHOP_DOMAIN"), os.Getenv("SHOPIFY_ADMIN_TOKEN"))
	if err != nil {
		log.Fatalf("Commerce client not configured: %v", err)
	}

	stateRepo := repository2.NewFulfillmentStateRepository(store)
	catalogRepo := repository2.NewCatalogRepository(store)

	provider, err := provisioning.NewEsimAPIGateway(os.Getenv("ESIM_API_URL"), os.Getenv("ESIM_API_KEY"))
	if err != nil {
		log.Fatalf("Provisioning gateway not configured: %v", err)
	}

	notifier, err := notifications.NewEmailAPINotifier(os.Getenv("EMAIL_API_URL"), os.Getenv("EMAIL_API_KEY"), os.Getenv("EMAIL_FROM"))
	if err != nil {
		log.Fatalf("Email notifier not configured: %v", err)
	}

	lock := usecase.NewProcessingLock(stateRepo, lockTTL())
	customers := usecase.NewCustomerResolver(catalogRepo, provider)
	items := usecase.NewLineItemResolver(catalogRepo)

	fulfillmentUseCase := usecase.NewFulfillmentUseCase(stateRepo, provider, notifier, lock, customers, items, os.Getenv("OPS_ALERT_EMAIL"))
	usageAlertUseCase := usecase.NewUsageAlertUseCase(stateRepo, provider, notifier)

	orderWebhookHandler := handlers.NewOrderWebhookHandler(fulfillmentUseCase)
	usageScanHandler := handlers.NewUsageScanHandler(usageAlertUseCase)

	webhookAuth := middleware.VerifyWebhookSignature(func() string {
		return strings.TrimSpace(os.Getenv("SHOPIFY_WEBHOOK_SECRET"))
	})

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFulfillmentRoutes(v1, webhookAuth, orderWebhookHandler, usageScanHandler)
}

func lockTTL() time.Duration {
	raw := strings.TrimSpace(os.Getenv("LOCK_TTL_MINUTES"))
	if raw == "" {
		return usecase.DefaultLockTTL
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		log.Printf("[routes] invalid LOCK_TTL_MINUTES=%q, using default", raw)
		return usecase.DefaultLockTTL
	}
	return time.Duration(minutes) * time.Minute
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
