package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"log"
	"net/http"

	"esim_bridge/pkg"

	"github.com/gin-gonic/gin"
)

// HeaderWebhookSignature carries the base64 HMAC-SHA256 of the raw request
// body, computed by the commerce platform with the shared webhook secret.
const HeaderWebhookSignature = "X-Shopify-Hmac-Sha256"

// VerifyWebhookSignature authenticates webhook deliveries before any parsing
// happens. The raw body is restored on the request so handlers can bind it.
//
// secretFn is called per request so the secret can be rotated without a
// restart. An empty secret is a deployment fault, not an auth failure: the
// request is rejected with 500 instead of 401.
func VerifyWebhookSignature(secretFn func() string) gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := secretFn()
		if secret == "" {
			log.Printf("[webhook][auth] secret not configured")
			appErr := pkg.NewDomainErrorSimple("WEBHOOK_SECRET_MISSING", "Webhook verification is not configured", http.StatusInternalServerError)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			log.Printf("[webhook][auth] body read failed err=%v", err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		if !ValidSignature(body, c.GetHeader(HeaderWebhookSignature), secret) {
			log.Printf("[webhook][auth] signature mismatch path=%s", c.Request.URL.Path)
			appErr := pkg.NewDomainErrorSimple("WEBHOOK_SIGNATURE_INVALID", "Webhook signature verification failed", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Next()
	}
}

// ValidSignature checks the provided base64 digest against HMAC-SHA256 of the
// body using a constant-time comparison.
func ValidSignature(body []byte, provided, secret string) bool {
	if provided == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(provided))
}
