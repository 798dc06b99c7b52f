package public

import (
	"net/http"

	"github.com/nova-cps/club-services/api/internal/interfaces/http/common"
)

// authVerifyHandler reports what the verified token is allowed to do. The
// client uses it after sign-in to route the account to the admin dashboard,
// the application form, or straight back out.
func (h *Handler) authVerifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, verifyResponse{
			Email:     user.Email,
			Admin:     h.gate.IsAdmin(user.Email),
			Applicant: h.gate.IsEligibleApplicant(user.Email),
		})
	}
}
