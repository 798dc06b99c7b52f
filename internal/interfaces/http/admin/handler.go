package admin

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	adminapp "github.com/nova-cps/club-services/api/internal/admin/application"
	"github.com/nova-cps/club-services/api/internal/identity"
	"github.com/nova-cps/club-services/api/internal/interfaces/http/common"
)

// Handler wires the admin triage endpoints to the triage controller.
type Handler struct {
	logger     *log.Logger
	controller *adminapp.TriageController
	gate       *identity.Gate
}

// Config provides dependencies for Handler.
type Config struct {
	Logger     *log.Logger
	Controller *adminapp.TriageController
	Gate       *identity.Gate
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:     cfg.Logger,
		controller: cfg.Controller,
		gate:       cfg.Gate,
	}
}

// Register mounts admin routes onto router. Every route sits behind the
// allow-list gate; an unauthorized principal gets an access-denied response
// before any repository call happens.
func (h *Handler) Register(r chi.Router) {
	r.Use(h.requireAdmin)
	r.Get("/applications", h.applicationListHandler())
	r.Get("/applications/export", h.applicationExportHandler())
	r.Get("/applications/{id}", h.applicationDetailHandler())
	r.Patch("/applications/{id}/review", h.applicationReviewHandler())
	r.Delete("/applications/{id}", h.applicationDeleteHandler())
}

// requireAdmin enforces the strict allow-list policy on top of the JWT
// middleware that already verified the token.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}
		if !h.gate.IsAdmin(user.Email) {
			h.logger.Printf("admin access denied email=%s", user.Email)
			common.WriteError(h.logger, w, http.StatusForbidden, "access denied")
			return
		}
		next.ServeHTTP(w, r)
	})
}
