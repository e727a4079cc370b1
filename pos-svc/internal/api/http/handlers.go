package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"cafe-pos/pos-svc/internal/catalog"
	"cafe-pos/pos-svc/internal/domain"
	"cafe-pos/pos-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Storefront service.StorefrontInterface
	logger     *zap.Logger
}

func NewHandler(storefront service.StorefrontInterface, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Storefront: storefront, logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/storefront", h.getStorefront).Methods("GET")
	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/customizations", h.getCustomizations).Methods("GET")
	r.HandleFunc("/api/storefront/category", h.selectCategory).Methods("PUT")
	r.HandleFunc("/api/storefront/subcategory", h.selectSubcategory).Methods("PUT")
	r.HandleFunc("/api/storefront/products/{direction:next|prev}", h.turnProductPage).Methods("POST")
	r.HandleFunc("/api/storefront/subcategories/{direction:next|prev}", h.turnSubcategoryPage).Methods("POST")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addToCart).Methods("POST")
	r.HandleFunc("/api/cart/items/{index}", h.updateQuantity).Methods("PUT")
	r.HandleFunc("/api/cart/items/{index}", h.removeItem).Methods("DELETE")
	r.HandleFunc("/api/cart/discount", h.applyDiscount).Methods("PUT")
	r.HandleFunc("/api/cart/discount", h.clearDiscount).Methods("DELETE")

	r.HandleFunc("/api/order/advance", h.advanceStep).Methods("POST")
	r.HandleFunc("/api/order/receipt", h.getReceipt).Methods("GET")
	r.HandleFunc("/api/order/receipt/qrcode", h.getReceiptQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "pos-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getStorefront(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Storefront.View())
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Storefront.Categories())
}

func (h *Handler) getCustomizations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Storefront.Customizations())
}

func (h *Handler) selectCategory(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		CategoryID string `json:"category_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Storefront.SelectCategory(payload.CategoryID); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.Storefront.View())
}

func (h *Handler) selectSubcategory(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SubcategoryID string `json:"subcategory_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Storefront.SelectSubcategory(payload.SubcategoryID); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.Storefront.View())
}

func (h *Handler) turnProductPage(w http.ResponseWriter, r *http.Request) {
	if mux.Vars(r)["direction"] == "next" {
		h.Storefront.NextProductPage()
	} else {
		h.Storefront.PrevProductPage()
	}
	writeJSON(w, http.StatusOK, h.Storefront.View())
}

func (h *Handler) turnSubcategoryPage(w http.ResponseWriter, r *http.Request) {
	if mux.Vars(r)["direction"] == "next" {
		h.Storefront.NextSubcategoryPage()
	} else {
		h.Storefront.PrevSubcategoryPage()
	}
	writeJSON(w, http.StatusOK, h.Storefront.View())
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Storefront.Cart())
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ProductID      string                 `json:"product_id"`
		Quantity       int                    `json:"quantity"`
		Customizations *domain.Customizations `json:"customizations"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := h.Storefront.AddToCart(r.Context(), payload.ProductID, payload.Quantity, payload.Customizations)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cart)
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		http.Error(w, "Invalid line index", http.StatusBadRequest)
		return
	}
	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := h.Storefront.UpdateQuantity(r.Context(), index, payload.Quantity)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		http.Error(w, "Invalid line index", http.StatusBadRequest)
		return
	}

	cart, err := h.Storefront.RemoveItem(r.Context(), index)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Storefront.ClearCart(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) applyDiscount(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := h.Storefront.ApplyDiscount(payload.Code)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) clearDiscount(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Storefront.ClearDiscount())
}

func (h *Handler) advanceStep(w http.ResponseWriter, r *http.Request) {
	step, err := h.Storefront.AdvanceStep(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, step)
}

func (h *Handler) getReceipt(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.Storefront.Receipt()
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}

func (h *Handler) getReceiptQRCode(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.Storefront.Receipt()
	if err != nil {
		h.writeError(w, err)
		return
	}
	if len(receipt.QRCode) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(receipt.QRCode)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrUnknownCategory),
		errors.Is(err, catalog.ErrUnknownProduct),
		errors.Is(err, service.ErrNoReceipt):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidSelection),
		errors.Is(err, domain.ErrInvalidCustomization),
		errors.Is(err, service.ErrUnknownDiscount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrCartEmpty):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error("Request failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
