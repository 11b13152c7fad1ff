package handler

import (
	"net/http"

	"puntos-store/internal/model"
	"puntos-store/internal/service"
	"puntos-store/internal/session"

	"github.com/rs/zerolog"
)

// AuthHandler handles login, logout, and registration.
type AuthHandler struct {
	customers service.CustomerService
	sessions  *session.Manager
	logger    zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(customers service.CustomerService, sessions *session.Manager, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		customers: customers,
		sessions:  sessions,
		logger:    logger.With().Str("handler", "auth").Logger(),
	}
}

// Login handles GET and POST /login requests. A successful POST starts a
// session; an unknown identity is sent to registration.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"form":   map[string]string{"identity": "6-12 digit identity number"},
			"action": "POST /login",
		})

	case http.MethodPost:
		identity := r.FormValue("identity")

		customer, err := h.customers.Login(r.Context(), identity)
		if err != nil {
			if de, ok := domainError(err); ok {
				if de.Code == model.ErrCodeCustomerNotFound {
					// Unknown identity: invite the user to register.
					redirectWithReason(w, r, "/register_customer", de)
					return
				}
				redirectWithReason(w, r, "/login", de)
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to log in", h.logger)
			return
		}

		h.sessions.Issue(w, customer.Identity)
		http.Redirect(w, r, "/", http.StatusSeeOther)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

// Logout handles GET /logout requests.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	h.sessions.Clear(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Register handles GET and POST /register_customer requests. A successful
// POST creates the customer and logs them in.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"form": map[string]string{
				"name":     "3-50 letters and spaces",
				"identity": "6-12 digit identity number",
			},
			"action": "POST /register_customer",
		})

	case http.MethodPost:
		name := r.FormValue("name")
		identity := r.FormValue("identity")

		customer, err := h.customers.Register(r.Context(), name, identity)
		if err != nil {
			if de, ok := domainError(err); ok {
				redirectWithReason(w, r, "/register_customer", de)
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to register", h.logger)
			return
		}

		h.sessions.Issue(w, customer.Identity)
		http.Redirect(w, r, "/", http.StatusSeeOther)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}
