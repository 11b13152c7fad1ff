package router

import (
	"net/http"

	"puntos-store/internal/handler"
	"puntos-store/internal/middleware"
	"puntos-store/internal/session"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	storeHandler *handler.StoreHandler,
	authHandler *handler.AuthHandler,
	purchaseHandler *handler.PurchaseHandler,
	sessions *session.Manager,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Public storefront routes
	mux.HandleFunc("/", storeHandler.Index)
	mux.HandleFunc("/login", authHandler.Login)
	mux.HandleFunc("/logout", authHandler.Logout)
	mux.HandleFunc("/register_customer", authHandler.Register)

	// Routes behind an active session
	requireSession := middleware.RequireSession(sessions, logger)
	mux.Handle("/purchase/", requireSession(http.HandlerFunc(purchaseHandler.Purchase)))
	mux.Handle("/my_points", requireSession(http.HandlerFunc(storeHandler.MyPoints)))

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
