package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"esim_bridge/internal/adapter/http/handlers/mocks"
	"esim_bridge/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestUsageScanHandler_ScanUsage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc *mocks.MockIUsageAlertUseCase) *gin.Engine {
		h := NewUsageScanHandler(uc)
		r := gin.New()
		r.GET("/v1/usage/scan", h.ScanUsage)
		return r
	}

	get := func(r *gin.Engine, path, bearer string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("unconfigured token is a server fault", func(t *testing.T) {
		t.Setenv("USAGE_SCAN_TOKEN", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUsageAlertUseCase(ctrl)
		r := build(uc)

		w := get(r, "/v1/usage/scan", "whatever")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("wrong token rejected", func(t *testing.T) {
		t.Setenv("USAGE_SCAN_TOKEN", "cron-token")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUsageAlertUseCase(ctrl)
		r := build(uc)

		w := get(r, "/v1/usage/scan", "wrong")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing token rejected", func(t *testing.T) {
		t.Setenv("USAGE_SCAN_TOKEN", "cron-token")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUsageAlertUseCase(ctrl)
		r := build(uc)

		w := get(r, "/v1/usage/scan", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		t.Setenv("USAGE_SCAN_TOKEN", "cron-token")
		t.Setenv("USAGE_ALERT_THRESHOLD", "")
		t.Setenv("USAGE_SCAN_LOOKBACK_DAYS", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUsageAlertUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().Run(gomock.Any(), 80, 30*24*time.Hour).Return(3, nil)

		w := get(r, "/v1/usage/scan", "cron-token")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["scanned"] != float64(3) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("query parameters override defaults", func(t *testing.T) {
		t.Setenv("USAGE_SCAN_TOKEN", "cron-token")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUsageAlertUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().Run(gomock.Any(), 70, 7*24*time.Hour).Return(0, nil)

		w := get(r, "/v1/usage/scan?threshold=70&lookback_days=7", "cron-token")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("query token accepted", func(t *testing.T) {
		t.Setenv("USAGE_SCAN_TOKEN", "cron-token")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUsageAlertUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(1, nil)

		w := get(r, "/v1/usage/scan?token=cron-token", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unparseable query values rejected", func(t *testing.T) {
		t.Setenv("USAGE_SCAN_TOKEN", "cron-token")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUsageAlertUseCase(ctrl)
		r := build(uc)

		// The scan never runs on a malformed request.
		if w := get(r, "/v1/usage/scan?threshold=abc", "cron-token"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for threshold=abc, got %d", w.Code)
		}
		if w := get(r, "/v1/usage/scan?lookback_days=xyz", "cron-token"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for lookback_days=xyz, got %d", w.Code)
		}
	})

	t.Run("invalid parameters map to 400", func(t *testing.T) {
		t.Setenv("USAGE_SCAN_TOKEN", "cron-token")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUsageAlertUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().Run(gomock.Any(), 150, gomock.Any()).Return(0, usecase.ErrInvalidThreshold)

		w := get(r, "/v1/usage/scan?threshold=150", "cron-token")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("scan failure maps to 500", func(t *testing.T) {
		t.Setenv("USAGE_SCAN_TOKEN", "cron-token")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUsageAlertUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, errors.New("search failed"))

		w := get(r, "/v1/usage/scan", "cron-token")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
