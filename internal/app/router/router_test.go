package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"pricecheck_backend/internal/feature/pricing/domain/entity"
	pricehandler "pricecheck_backend/internal/feature/pricing/transport/handler"
	"pricecheck_backend/internal/feature/pricing/usecase"
)

type stubSearchUsecase struct{}

func (stubSearchUsecase) Scan(context.Context, usecase.ScanRequest) entity.SearchOutcome {
	return entity.SearchOutcome{Status: entity.StatusRecognitionFailed}
}

func (stubSearchUsecase) Search(_ context.Context, itemName string) entity.SearchOutcome {
	return entity.SearchOutcome{Status: entity.StatusNoPricesFound, ItemName: itemName}
}

func newTestRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(Config{AllowedOrigins: origins}, pricehandler.NewPriceHandler(stubSearchUsecase{}))
}

func TestNewRouter_Routes(t *testing.T) {
	r := newTestRouter(nil)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{name: "health", method: http.MethodGet, path: "/health", expectedStatus: http.StatusOK, expectedBody: `{"status":"ok"}`},
		{name: "healthz", method: http.MethodGet, path: "/healthz", expectedStatus: http.StatusOK, expectedBody: `{"status":"ok"}`},
		{
			name:           "scan",
			method:         http.MethodPost,
			path:           "/api/scan",
			body:           `{"image":"AAAA"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"recognition_failed","message":"Could not automatically recognize item. Please enter the item name manually."}`,
		},
		{
			name:           "search",
			method:         http.MethodPost,
			path:           "/api/search",
			body:           `{"item_name":"mug"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"item_name":"mug","price_info":null,"status":"no_prices_found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	r := newTestRouter(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/scan", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewRouter_CORS(t *testing.T) {
	tests := []struct {
		name       string
		origins    []string
		origin     string
		wantHeader string
	}{
		{name: "all origins", origins: []string{"*"}, origin: "http://localhost:3000", wantHeader: "*"},
		{name: "allowed origin", origins: []string{"https://app.example.com"}, origin: "https://app.example.com", wantHeader: "https://app.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(tt.origins)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"item_name":"mug"}`))
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantHeader, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestNewRouter_CORSRejectsUnknownOrigin(t *testing.T) {
	r := newTestRouter([]string{"https://app.example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"item_name":"mug"}`))
	req.Header.Set("Origin", "https://evil.example.com")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
