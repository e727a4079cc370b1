package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "cafe-pos/pos-svc/internal/api/http"
	"cafe-pos/pos-svc/internal/mocks"
	"cafe-pos/pos-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, store *mocks.SnapshotStore, qr service.QRGenerator) (*mux.Router, *service.Storefront) {
	t.Helper()
	s, _ := newTestStorefront(t, store, nil, qr)
	r := mux.NewRouter()
	httpapi.NewHandler(s, nil).RegisterRoutes(r)
	return r, s
}

func serve(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthCheckHandler(t *testing.T) {
	r, _ := newTestRouter(t, mocks.NewSnapshotStore(t), nil)

	w := serve(r, "GET", "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "pos-svc", body["service"])
}

func TestGetStorefrontHandler(t *testing.T) {
	r, _ := newTestRouter(t, mocks.NewSnapshotStore(t), nil)

	w := serve(r, "GET", "/api/storefront", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var view service.StorefrontView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	assert.Equal(t, "drinks", view.ActiveCategory)
	assert.Len(t, view.Products, service.ProductPageSize)
}

func TestSelectCategoryHandler(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "valid", body: `{"category_id":"food"}`, wantCode: http.StatusOK},
		{name: "unknown", body: `{"category_id":"nope"}`, wantCode: http.StatusNotFound},
		{name: "invalid JSON", body: `{invalid}`, wantCode: http.StatusBadRequest},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r, _ := newTestRouter(t, mocks.NewSnapshotStore(t), nil)

			w := serve(r, "PUT", "/api/storefront/category", testCase.body)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestSelectSubcategoryHandler(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "valid", body: `{"subcategory_id":"cold-drinks"}`, wantCode: http.StatusOK},
		{name: "other category", body: `{"subcategory_id":"main-dishes"}`, wantCode: http.StatusBadRequest},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r, _ := newTestRouter(t, mocks.NewSnapshotStore(t), nil)

			w := serve(r, "PUT", "/api/storefront/subcategory", testCase.body)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestTurnPageHandlers(t *testing.T) {
	r, _ := newTestRouter(t, mocks.NewSnapshotStore(t), nil)

	w := serve(r, "POST", "/api/storefront/products/next", "")
	require.Equal(t, http.StatusOK, w.Code)
	var view service.StorefrontView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	assert.Equal(t, 1, view.ProductPage.Page)

	w = serve(r, "POST", "/api/storefront/subcategories/prev", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, "POST", "/api/storefront/products/sideways", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddToCartHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.SnapshotStore)
		wantCode  int
	}{
		{
			name: "valid request",
			body: `{"product_id":"1","quantity":2,"customizations":{"size":"Medium","sugar":"Less Sugar"}}`,
			setupMock: func(m *mocks.SnapshotStore) {
				m.On("Save", mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "invalid JSON",
			body:      `{invalid}`,
			setupMock: func(m *mocks.SnapshotStore) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "unknown product",
			body:      `{"product_id":"999","quantity":1}`,
			setupMock: func(m *mocks.SnapshotStore) {},
			wantCode:  http.StatusNotFound,
		},
		{
			name:      "invalid customization",
			body:      `{"product_id":"1","quantity":1,"customizations":{"size":"Huge","sugar":"No Sugar"}}`,
			setupMock: func(m *mocks.SnapshotStore) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "store error",
			body: `{"product_id":"20","quantity":1}`,
			setupMock: func(m *mocks.SnapshotStore) {
				m.On("Save", mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewSnapshotStore(t)
			testCase.setupMock(store)
			r, _ := newTestRouter(t, store, nil)

			w := serve(r, "POST", "/api/cart/items", testCase.body)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestCartLineHandlers(t *testing.T) {
	store := mocks.NewSnapshotStore(t)
	store.On("Save", mock.Anything, mock.Anything).Return(nil).Times(4)
	r, _ := newTestRouter(t, store, nil)

	require.Equal(t, http.StatusCreated, serve(r, "POST", "/api/cart/items", `{"product_id":"1","quantity":1}`).Code)
	require.Equal(t, http.StatusCreated, serve(r, "POST", "/api/cart/items", `{"product_id":"20","quantity":1}`).Code)

	w := serve(r, "PUT", "/api/cart/items/0", `{"quantity":3}`)
	require.Equal(t, http.StatusOK, w.Code)
	var cart service.CartView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&cart))
	assert.Equal(t, 3, cart.Lines[0].Quantity)
	assert.Equal(t, 4, cart.ItemCount)

	assert.Equal(t, http.StatusBadRequest, serve(r, "PUT", "/api/cart/items/abc", `{"quantity":3}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, "PUT", "/api/cart/items/0", `{bad}`).Code)

	w = serve(r, "DELETE", "/api/cart/items/0", "")
	require.Equal(t, http.StatusOK, w.Code)
	cart = service.CartView{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&cart))
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "20", cart.Lines[0].ProductID)
	assert.Equal(t, "RM9.90", cart.Lines[0].UnitPrice.Display)

	w = serve(r, "GET", "/api/cart", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDiscountHandlers(t *testing.T) {
	r, _ := newTestRouter(t, mocks.NewSnapshotStore(t), nil)

	assert.Equal(t, http.StatusOK, serve(r, "PUT", "/api/cart/discount", `{"code":"welcome10"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, "PUT", "/api/cart/discount", `{"code":"nope"}`).Code)
	assert.Equal(t, http.StatusOK, serve(r, "DELETE", "/api/cart/discount", "").Code)
}

func TestOrderHandlers(t *testing.T) {
	store := mocks.NewSnapshotStore(t)
	qr := mocks.NewQRGenerator(t)
	r, _ := newTestRouter(t, store, qr)

	assert.Equal(t, http.StatusConflict, serve(r, "POST", "/api/order/advance", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, "GET", "/api/order/receipt", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, "GET", "/api/order/receipt/qrcode", "").Code)

	store.On("Save", mock.Anything, mock.Anything).Return(nil).Once()
	qr.On("Generate", mock.Anything).Return([]byte("\x89PNG"), nil).Once()
	require.Equal(t, http.StatusCreated, serve(r, "POST", "/api/cart/items", `{"product_id":"20","quantity":1}`).Code)

	var step service.StepView
	for i := 0; i < 3; i++ {
		w := serve(r, "POST", "/api/order/advance", "")
		require.Equal(t, http.StatusOK, w.Code)
		step = service.StepView{}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&step))
	}
	assert.Equal(t, "Items", step.Name)
	assert.NotEmpty(t, step.LastOrderID)

	w := serve(r, "GET", "/api/order/receipt", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), step.LastOrderID)

	w = serve(r, "GET", "/api/order/receipt/qrcode", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, []byte("\x89PNG"), w.Body.Bytes())
}

func TestCatalogHandlers(t *testing.T) {
	r, _ := newTestRouter(t, mocks.NewSnapshotStore(t), nil)

	w := serve(r, "GET", "/api/categories", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hot-drinks"`)

	w = serve(r, "GET", "/api/customizations", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Normal Sugar"`)
}

func TestNewRouterAllowsCORS(t *testing.T) {
	s, _ := newTestStorefront(t, mocks.NewSnapshotStore(t), nil, nil)
	router := httpapi.NewRouter(httpapi.NewHandler(s, nil))

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
