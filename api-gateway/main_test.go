package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cafe-pos/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandler_ProxiesCartToPosSvc(t *testing.T) {
	var gotPath, gotBody string
	pos := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"line_count":1}`))
	}))
	defer pos.Close()

	h := newHandler(config.Gateway{PosSvcURL: pos.URL, FrontendDir: t.TempDir()}, pos.Client(), zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"product_id":"1","quantity":1}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "POST /api/cart/items", gotPath)
	assert.JSONEq(t, `{"product_id":"1","quantity":1}`, gotBody)
	assert.JSONEq(t, `{"line_count":1}`, rr.Body.String())
}

func TestHandler_HealthAndFrontend(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>POS</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "receipt.html"), []byte("<h1>Receipt</h1>"), 0o644))

	h := newHandler(config.Gateway{FrontendDir: dir}, http.DefaultClient, zap.NewNop())

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "api-gateway", body["service"])

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/receipt.html?order_id=abc&total=9.96", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Receipt")

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/checkout", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "POS")
}
