package public

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	adminapp "github.com/nova-cps/club-services/api/internal/admin/application"
	"github.com/nova-cps/club-services/api/internal/identity"
	publicapp "github.com/nova-cps/club-services/api/internal/public/application"
)

// Handler wires the applicant-facing endpoints to the submission workflow.
type Handler struct {
	logger            *log.Logger
	repo              adminapp.ApplicationRepository
	gate              *identity.Gate
	drafts            *publicapp.DraftStore
	draftCookieSecret []byte
	draftCookieSecure bool
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger            *log.Logger
	Repo              adminapp.ApplicationRepository
	Gate              *identity.Gate
	Drafts            *publicapp.DraftStore
	DraftCookieSecret []byte
	DraftCookieSecure bool
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:            cfg.Logger,
		repo:              cfg.Repo,
		gate:              cfg.Gate,
		drafts:            cfg.Drafts,
		draftCookieSecret: cfg.DraftCookieSecret,
		draftCookieSecure: cfg.DraftCookieSecure,
	}
}

// Register mounts all public routes onto the router. The options lookup is
// open; everything touching a draft or the principal requires a verified token.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Get("/apply/options", h.applyOptionsHandler())
	r.With(authMiddleware).Get("/auth/verify", h.authVerifyHandler())
	r.With(authMiddleware).Post("/apply/drafts", h.draftStartHandler())
	r.With(authMiddleware).Post("/apply/drafts/primary", h.draftPrimaryHandler())
	r.With(authMiddleware).Post("/apply/drafts/back", h.draftBackHandler())
	r.With(authMiddleware).Post("/apply/drafts/submit", h.draftSubmitHandler())
}
