package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"puntos-store/internal/middleware"
	"puntos-store/internal/model"
	"puntos-store/internal/service"

	"github.com/rs/zerolog"
)

// PurchaseHandler handles the purchase flow for a single product.
type PurchaseHandler struct {
	purchases service.PurchaseService
	products  service.ProductService
	customers service.CustomerService
	logger    zerolog.Logger
}

// NewPurchaseHandler creates a new purchase handler.
func NewPurchaseHandler(
	purchases service.PurchaseService,
	products service.ProductService,
	customers service.CustomerService,
	logger zerolog.Logger,
) *PurchaseHandler {
	return &PurchaseHandler{
		purchases: purchases,
		products:  products,
		customers: customers,
		logger:    logger.With().Str("handler", "purchase").Logger(),
	}
}

// purchasePage is the GET payload: the product under purchase and the
// buying customer's current state.
type purchasePage struct {
	Product  *model.Product  `json:"product"`
	Customer *model.Customer `json:"customer"`
}

// Purchase handles GET and POST /purchase/{product_id} requests.
// RequireSession guards the route.
func (h *PurchaseHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "login required", h.logger)
		return
	}

	productID, err := parseProductID(r.URL.Path)
	if err != nil {
		redirectWithReason(w, r, "/", model.ErrProductNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.page(w, r, identity, productID)
	case http.MethodPost:
		h.buy(w, r, identity, productID)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

// page serves the purchase page data.
func (h *PurchaseHandler) page(w http.ResponseWriter, r *http.Request, identity string, productID int64) {
	product, err := h.products.GetByID(r.Context(), productID)
	if err != nil {
		if de, ok := domainError(err); ok {
			// Unknown product: back to the catalog.
			redirectWithReason(w, r, "/", de)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to retrieve product", h.logger)
		return
	}

	customer, err := h.customers.Profile(r.Context(), identity)
	if err != nil {
		if _, ok := domainError(err); ok {
			http.Redirect(w, r, "/login?error=UNAUTHORIZED", http.StatusSeeOther)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to retrieve customer", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, purchasePage{Product: product, Customer: customer})
}

// buy runs the purchase: redemption validation, pricing, balance write.
func (h *PurchaseHandler) buy(w http.ResponseWriter, r *http.Request, identity string, productID int64) {
	pointsRaw := r.FormValue("points_to_use")
	if pointsRaw == "" {
		pointsRaw = "0"
	}

	receipt, err := h.purchases.Purchase(r.Context(), identity, productID, pointsRaw)
	if err != nil {
		de, ok := domainError(err)
		if !ok {
			writeError(w, http.StatusInternalServerError, "failed to complete purchase", h.logger)
			return
		}

		switch de.Code {
		case model.ErrCodeCustomerNotFound:
			http.Redirect(w, r, "/login?error=UNAUTHORIZED", http.StatusSeeOther)
		case model.ErrCodeProductNotFound:
			redirectWithReason(w, r, "/", de)
		default:
			// Validation failure: back to the same purchase page with
			// the reason; nothing was mutated.
			redirectWithReason(w, r, fmt.Sprintf("/purchase/%d", productID), de)
		}
		return
	}

	writeJSON(w, http.StatusOK, receipt)
}

// parseProductID extracts the product ID from /purchase/{product_id}.
func parseProductID(path string) (int64, error) {
	raw := strings.TrimPrefix(path, "/purchase/")
	raw = strings.TrimSuffix(raw, "/")
	if raw == "" || strings.Contains(raw, "/") {
		return 0, fmt.Errorf("missing product ID")
	}
	return strconv.ParseInt(raw, 10, 64)
}
