package handlers

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	response "esim_bridge/internal/adapter/http/dto/response"
	"esim_bridge/internal/usecase"
	"esim_bridge/pkg"

	"github.com/gin-gonic/gin"
)

const (
	defaultAlertThreshold = 80
	defaultLookbackDays   = 30
	hoursPerDay           = 24
)

// UsageScanHandler exposes the scheduler-triggered usage sweep. The caller is
// a cron service, authenticated with a static bearer token.

type UsageScanHandler struct {
	usecase usecase.IUsageAlertUseCase
}

func NewUsageScanHandler(uc usecase.IUsageAlertUseCase) *UsageScanHandler {
	return &UsageScanHandler{usecase: uc}
}

// ScanUsage godoc
// @Summary      Scan recent orders for high eSIM data usage
// @Description  Sends a one-time usage alert per eSIM that crossed the threshold. Safe to re-run.
// @Tags         usage
// @Produce      json
// @Param        threshold      query     int  false  "Usage percent threshold (1-100)"
// @Param        lookback_days  query     int  false  "How many days of orders to scan"
// @Security     Bearer
// @Success      200  {object}  response.UsageScanResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /usage/scan [get]
func (h *UsageScanHandler) ScanUsage(c *gin.Context) {
	expected := strings.TrimSpace(os.Getenv("USAGE_SCAN_TOKEN"))
	if expected == "" {
		log.Printf("[usage][handler] scan token not configured")
		appErr := pkg.NewDomainErrorSimple("SCAN_TOKEN_MISSING", "Usage scan is not configured", http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !tokenMatches(c, expected) {
		log.Printf("[usage][handler] scan token mismatch")
		appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid scan token", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	threshold, err := intQueryDefault(c, "threshold", intEnvDefault("USAGE_ALERT_THRESHOLD", defaultAlertThreshold))
	if err != nil {
		log.Printf("[usage][handler] invalid threshold err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid scan parameters", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	lookbackDays, err := intQueryDefault(c, "lookback_days", intEnvDefault("USAGE_SCAN_LOOKBACK_DAYS", defaultLookbackDays))
	if err != nil {
		log.Printf("[usage][handler] invalid lookback err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid scan parameters", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[usage][handler] scan start threshold=%d lookback_days=%d", threshold, lookbackDays)

	scanned, err := h.usecase.Run(c.Request.Context(), threshold, time.Duration(lookbackDays)*hoursPerDay*time.Hour)
	if err != nil {
		log.Printf("[usage][handler] scan failed err=%v", err)
		appErr := mapUsageScanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[usage][handler] scan done scanned=%d", scanned)

	c.JSON(http.StatusOK, response.UsageScanResponse{Scanned: scanned})
}

// tokenMatches accepts the token as "Authorization: Bearer <token>" or as a
// ?token= query parameter for cron services that cannot set headers.
func tokenMatches(c *gin.Context, expected string) bool {
	provided := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
	if provided == "" {
		provided = strings.TrimSpace(c.Query("token"))
	}
	if provided == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) == 1
}

func mapUsageScanError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidThreshold), errors.Is(err, usecase.ErrInvalidLookback):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid scan parameters", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// intQueryDefault reads an integer query parameter; an absent parameter falls
// back to def, an unparseable one is the caller's error.
func intQueryDefault(c *gin.Context, key string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query parameter %s=%q is not an integer", key, raw)
	}
	return v, nil
}

func intEnvDefault(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
