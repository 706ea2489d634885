package http

import (
	"net/http"

	"slot-availability/internal/delivery/http/handler"
	"slot-availability/internal/delivery/http/middleware"
	"slot-availability/pkg/jwt"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	availabilityHandler *handler.AvailabilityHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

func NewRouter(
	availabilityHandler *handler.AvailabilityHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		availabilityHandler: availabilityHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

// apiPrefix is the API version root.
const apiPrefix = "/api/v1"

func (r *Router) Setup() *mux.Router {
	// Routes sit on the root router with full paths: sibling subrouters sharing
	// a prefix make gorilla/mux answer a method mismatch with 404 instead of 405.

	// Health check
	r.router.HandleFunc(apiPrefix+"/health", r.healthCheck).Methods(http.MethodGet)

	// Availability (protected - requires availability read scope)
	r.router.Handle(apiPrefix+"/available_slots", chain(
		http.HandlerFunc(r.availabilityHandler.GetAvailableSlots),
		r.rateLimitMiddleware.Handle,
		r.authMiddleware.Authenticate,
		middleware.RequireScope(jwt.ScopeAvailableSlotsRead),
	)).Methods(http.MethodGet, http.MethodOptions)

	// Audit trail (protected - requires audit read scope)
	auditLogs := func(h http.HandlerFunc) http.Handler {
		return chain(h, r.authMiddleware.Authenticate, middleware.RequireScope(jwt.ScopeAuditLogsRead))
	}
	r.router.Handle(apiPrefix+"/audit_logs", auditLogs(r.auditLogHandler.GetAllAuditLogs)).
		Methods(http.MethodGet, http.MethodOptions)
	r.router.Handle(apiPrefix+"/audit_logs/{id}", auditLogs(r.auditLogHandler.GetAuditLog)).
		Methods(http.MethodGet, http.MethodOptions)

	// CORS answers preflight requests before the protected chains run
	r.router.Use(middleware.RequestID)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

// chain wraps h so that the first middleware runs outermost.
func chain(h http.Handler, middlewares ...mux.MiddlewareFunc) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
