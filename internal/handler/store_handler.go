package handler

import (
	"net/http"

	"puntos-store/internal/middleware"
	"puntos-store/internal/model"
	"puntos-store/internal/service"
	"puntos-store/internal/session"

	"github.com/rs/zerolog"
)

// StoreHandler handles the storefront pages: catalog and points balance.
type StoreHandler struct {
	products  service.ProductService
	customers service.CustomerService
	sessions  *session.Manager
	logger    zerolog.Logger
}

// NewStoreHandler creates a new store handler.
func NewStoreHandler(
	products service.ProductService,
	customers service.CustomerService,
	sessions *session.Manager,
	logger zerolog.Logger,
) *StoreHandler {
	return &StoreHandler{
		products:  products,
		customers: customers,
		sessions:  sessions,
		logger:    logger.With().Str("handler", "store").Logger(),
	}
}

// indexResponse is the storefront payload: the catalog plus the signed-in
// customer, when there is one.
type indexResponse struct {
	Products []model.Product `json:"products"`
	Customer *model.Customer `json:"customer,omitempty"`
}

// Index handles GET / requests.
func (h *StoreHandler) Index(w http.ResponseWriter, r *http.Request) {
	// "/" is the mux catch-all; anything else under it is a 404.
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	products, err := h.products.Catalog(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve catalog", h.logger)
		return
	}

	resp := indexResponse{Products: products}

	// A stale session cookie pointing at a missing customer is treated
	// the same as no session at all.
	if identity, ok := h.sessions.Identity(r); ok {
		if customer, err := h.customers.Profile(r.Context(), identity); err == nil {
			resp.Customer = customer
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// MyPoints handles GET /my_points requests. RequireSession guards the
// route, so the identity is always present in the context.
func (h *StoreHandler) MyPoints(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "login required", h.logger)
		return
	}

	customer, err := h.customers.Profile(r.Context(), identity)
	if err != nil {
		if _, ok := domainError(err); ok {
			http.Redirect(w, r, "/login?error=UNAUTHORIZED", http.StatusSeeOther)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to retrieve balance", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"identity": customer.Identity,
		"name":     customer.Name,
		"balance":  customer.Balance,
	})
}
