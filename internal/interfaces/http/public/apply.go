package public

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	admindomain "github.com/nova-cps/club-services/api/internal/admin/domain"
	"github.com/nova-cps/club-services/api/internal/identity"
	"github.com/nova-cps/club-services/api/internal/interfaces/http/common"
	publicapp "github.com/nova-cps/club-services/api/internal/public/application"
)

// applyOptionsHandler returns the department catalogue and, when dept= names
// one, its interest domains and form labels. Unknown departments fall back to
// the default labels with no domain options.
func (h *Handler) applyOptionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		departments := make([]string, 0)
		for _, dept := range admindomain.Departments() {
			departments = append(departments, dept.String())
		}

		resp := departmentOptionsResponse{Departments: departments}
		raw := r.URL.Query().Get("dept")
		spec := admindomain.SpecFor(admindomain.Department(raw))
		resp.Department = raw
		resp.DomainOptions = spec.DomainOptions
		resp.SkillLabel = spec.SkillLabel
		resp.SkillPlaceholder = spec.SkillPlaceholder
		resp.ReasonPlaceholder = spec.ReasonPlaceholder

		common.WriteJSON(h.logger, w, http.StatusOK, resp)
	}
}

// draftStartHandler opens (or resumes) the caller's draft. For an ineligible
// account the handler clears the draft cookie and tells the client to sign the
// user out; no draft is created.
func (h *Handler) draftStartHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idCtx, user, ok := h.applicant(w, r)
		if !ok {
			return
		}

		id, err := h.draftID(w, r)
		if err != nil {
			h.logger.Printf("draft id: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "draft session unavailable")
			return
		}

		wf := h.draftFor(id, idCtx, user)
		common.WriteJSON(h.logger, w, http.StatusOK, toDraftStateResponse(wf))
	}
}

// draftPrimaryHandler saves the first-step block and advances to the secondary
// preference. Validation failures keep the draft on the first step with
// everything entered so far retained.
func (h *Handler) draftPrimaryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, user, ok := h.applicant(w, r)
		if !ok {
			return
		}
		wf, ok := h.resumeDraft(w, r, user)
		if !ok {
			return
		}

		var req primaryStepRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}

		wf.UpdateApplicant(publicapp.ApplicantInput{
			FullName:   req.FullName,
			RollNumber: req.RollNumber,
			Phone:      req.Phone,
			Year:       req.Year,
			Department: req.Department,
		})
		if err := wf.SetPrimaryDept(req.PrimaryDept); err != nil {
			common.WriteError(h.logger, w, common.StatusForError(err), err.Error())
			return
		}
		if len(req.Domains) > 0 {
			if err := wf.SetPrimaryDomains(req.Domains); err != nil {
				common.WriteError(h.logger, w, common.StatusForError(err), err.Error())
				return
			}
		}
		wf.SetPrimaryDetails(req.Skills, req.Reason)

		if err := wf.NextFromPrimary(); err != nil {
			common.WriteError(h.logger, w, common.StatusForError(err), err.Error())
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, toDraftStateResponse(wf))
	}
}

// draftBackHandler steps back from the secondary block to the first step.
// Nothing entered in either block is lost.
func (h *Handler) draftBackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, user, ok := h.applicant(w, r)
		if !ok {
			return
		}
		wf, ok := h.resumeDraft(w, r, user)
		if !ok {
			return
		}

		if err := wf.Back(); err != nil {
			common.WriteError(h.logger, w, common.StatusForError(err), err.Error())
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, toDraftStateResponse(wf))
	}
}

// draftSubmitHandler takes the optional secondary block, validates the whole
// form and persists it. The stored email always comes from the verified
// token, never from the request body. On failure the draft survives so the
// applicant can retry.
func (h *Handler) draftSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		_, user, ok := h.applicant(w, r)
		if !ok {
			return
		}
		wf, ok := h.resumeDraft(w, r, user)
		if !ok {
			return
		}

		var req submitRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := wf.SetSecondaryDept(req.SecondaryDept); err != nil {
			common.WriteError(h.logger, w, common.StatusForError(err), err.Error())
			return
		}
		if req.SecondaryDept != "" && len(req.SecondaryDomains) > 0 {
			if err := wf.SetSecondaryDomains(req.SecondaryDomains); err != nil {
				common.WriteError(h.logger, w, common.StatusForError(err), err.Error())
				return
			}
		}
		wf.SetSecondaryDetails(req.SecondarySkills, req.SecondaryReason)

		app, err := wf.Submit(ctx)
		if err != nil {
			h.logger.Printf("submit failed email=%s: %v", user.Email, err)
			common.WriteError(h.logger, w, common.StatusForError(err), err.Error())
			return
		}

		if cookie, cookieErr := r.Cookie(draftCookieName); cookieErr == nil {
			if id, _, okCookie := h.parseDraftCookie(cookie.Value); okCookie {
				h.drafts.Delete(id)
			}
		}
		h.clearDraftCookie(w)

		common.WriteJSON(h.logger, w, http.StatusCreated, map[string]string{
			"id":     app.ID,
			"status": app.Status.String(),
		})
	}
}

// applicant enforces the institute-domain policy on the signed-in principal.
// An ineligible account is signed out on the spot: the teardown hook drops any
// draft and its cookie, and the body carries signedOut so the client tears the
// session down too.
func (h *Handler) applicant(w http.ResponseWriter, r *http.Request) (*identity.Context, common.AuthenticatedUser, bool) {
	user, ok := common.UserFromContext(r.Context())
	if !ok {
		common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
		return nil, common.AuthenticatedUser{}, false
	}

	idCtx, err := identity.ResolveApplicant(h.gate, identity.User{
		UID:         user.UID,
		Email:       user.Email,
		DisplayName: user.Name,
		PictureURL:  user.Picture,
	}, func() {
		if cookie, cookieErr := r.Cookie(draftCookieName); cookieErr == nil {
			if id, _, okCookie := h.parseDraftCookie(cookie.Value); okCookie {
				h.drafts.Delete(id)
			}
		}
		h.clearDraftCookie(w)
	})
	if err != nil {
		h.logger.Printf("applicant rejected email=%s", user.Email)
		common.WriteJSON(h.logger, w, http.StatusForbidden, map[string]any{
			"error":     "sign in with your institute email",
			"signedOut": true,
		})
		return nil, common.AuthenticatedUser{}, false
	}
	return idCtx, user, true
}

// draftFor returns the live draft for id, starting a fresh workflow when none
// exists or when the draft belongs to a different account.
func (h *Handler) draftFor(id string, idCtx *identity.Context, user common.AuthenticatedUser) *publicapp.Workflow {
	if wf, ok := h.drafts.Get(id); ok {
		if owner, hasOwner := wf.Applicant(); hasOwner && owner.Email == user.Email {
			return wf
		}
	}
	wf := publicapp.NewWorkflow(h.repo, idCtx)
	h.drafts.Put(id, wf)
	return wf
}

// resumeDraft requires an already-started draft; the step endpoints never
// create one implicitly.
func (h *Handler) resumeDraft(w http.ResponseWriter, r *http.Request, user common.AuthenticatedUser) (*publicapp.Workflow, bool) {
	cookie, err := r.Cookie(draftCookieName)
	if err != nil {
		common.WriteError(h.logger, w, http.StatusNotFound, "no draft in progress")
		return nil, false
	}
	id, _, ok := h.parseDraftCookie(cookie.Value)
	if !ok {
		common.WriteError(h.logger, w, http.StatusNotFound, "no draft in progress")
		return nil, false
	}
	wf, ok := h.drafts.Get(id)
	if !ok {
		common.WriteError(h.logger, w, http.StatusNotFound, "no draft in progress")
		return nil, false
	}
	if owner, hasOwner := wf.Applicant(); !hasOwner || owner.Email != user.Email {
		common.WriteError(h.logger, w, http.StatusNotFound, "no draft in progress")
		return nil, false
	}
	return wf, true
}
