package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func buildRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/hook", VerifyWebhookSignature(func() string { return secret }), func(c *gin.Context) {
		raw, _ := c.GetRawData()
		c.String(http.StatusOK, string(raw))
	})
	return r
}

func TestVerifyWebhookSignature(t *testing.T) {
	body := []byte(`{"id":1}`)

	t.Run("valid signature passes and body survives", func(t *testing.T) {
		r := buildRouter("topsecret")
		req := httptest.NewRequest(http.MethodPost, "/hook", bytes.NewReader(body))
		req.Header.Set(HeaderWebhookSignature, sign(body, "topsecret"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != string(body) {
			t.Fatalf("handler did not see the raw body: %q", w.Body.String())
		}
	})

	t.Run("wrong signature rejected", func(t *testing.T) {
		r := buildRouter("topsecret")
		req := httptest.NewRequest(http.MethodPost, "/hook", bytes.NewReader(body))
		req.Header.Set(HeaderWebhookSignature, sign(body, "othersecret"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing signature rejected", func(t *testing.T) {
		r := buildRouter("topsecret")
		req := httptest.NewRequest(http.MethodPost, "/hook", bytes.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unconfigured secret is a server fault", func(t *testing.T) {
		r := buildRouter("")
		req := httptest.NewRequest(http.MethodPost, "/hook", bytes.NewReader(body))
		req.Header.Set(HeaderWebhookSignature, sign(body, ""))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestValidSignature_TamperedBody(t *testing.T) {
	sig := sign([]byte(`{"id":1}`), "topsecret")
	if ValidSignature([]byte(`{"id":2}`), sig, "topsecret") {
		t.Fatalf("tampered body must not validate")
	}
}
