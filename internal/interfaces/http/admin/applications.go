package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	admindomain "github.com/nova-cps/club-services/api/internal/admin/domain"
	"github.com/nova-cps/club-services/api/internal/export"
	"github.com/nova-cps/club-services/api/internal/interfaces/http/common"
)

// applicationListHandler refetches the full set from the store, then projects
// it through the optional search filter. The filter runs on the fresh cache,
// never against the store.
func (h *Handler) applicationListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context5s(r)
		defer cancel()

		if err := h.controller.Load(ctx); err != nil {
			h.logger.Printf("application list load failed: %v", err)
			common.WriteError(h.logger, w, common.StatusForError(err), "failed to fetch applications")
			return
		}

		search := r.URL.Query().Get("search")
		apps := h.controller.Filter(search)
		common.WriteJSON(h.logger, w, http.StatusOK, toApplicationListResponse(apps, search))
	}
}

// applicationDetailHandler serves the detail view straight from the cache.
// Selecting a record never triggers a fetch; a record absent from the cache is
// a 404 until the next list load picks it up.
func (h *Handler) applicationDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		app, err := h.controller.Select(id)
		if err != nil {
			common.WriteError(h.logger, w, common.StatusForError(err), "application not found")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, toApplicationResponse(app))
	}
}

// applicationReviewHandler patches status and/or rating. Any other field in
// the body is rejected; nothing but the review fields is writable after
// submission.
func (h *Handler) applicationReviewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context5s(r)
		defer cancel()

		id := chi.URLParam(r, "id")

		var req reviewPatchRequest
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, common.MaxRequestBody))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, admindomain.ErrInvalidField.Error())
			return
		}
		if req.Status == nil && req.Rating == nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, admindomain.ErrInvalidField.Error())
			return
		}

		if req.Rating != nil {
			if err := h.controller.SetRating(ctx, id, *req.Rating); err != nil {
				h.writeReviewError(w, id, err)
				return
			}
		}
		if req.Status != nil {
			if err := h.controller.SetStatus(ctx, id, *req.Status); err != nil {
				h.writeReviewError(w, id, err)
				return
			}
		}

		app, err := h.controller.Select(id)
		if err != nil {
			common.WriteError(h.logger, w, common.StatusForError(err), "application not found")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, toApplicationResponse(app))
	}
}

func (h *Handler) writeReviewError(w http.ResponseWriter, id string, err error) {
	h.logger.Printf("review patch failed id=%s: %v", id, err)
	common.WriteError(h.logger, w, common.StatusForError(err), err.Error())
}

// applicationDeleteHandler removes a record permanently. The caller must pass
// confirm=true; without it nothing is deleted.
func (h *Handler) applicationDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context5s(r)
		defer cancel()

		id := chi.URLParam(r, "id")
		confirmed := r.URL.Query().Get("confirm") == "true"

		if err := h.controller.Remove(ctx, id, confirmed); err != nil {
			h.logger.Printf("application delete failed id=%s: %v", id, err)
			common.WriteError(h.logger, w, common.StatusForError(err), err.Error())
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"deleted": id})
	}
}

// applicationExportHandler streams the full, unfiltered set as a spreadsheet.
// The export always refetches first so the file reflects store state, not a
// possibly stale cache.
func (h *Handler) applicationExportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context5s(r)
		defer cancel()

		if err := h.controller.Load(ctx); err != nil {
			h.logger.Printf("export load failed: %v", err)
			common.WriteError(h.logger, w, common.StatusForError(err), "failed to fetch applications")
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
		if err := export.Write(w, h.controller.Applications()); err != nil {
			// Headers are already out; all we can do is log.
			h.logger.Printf("export write failed: %v", err)
		}
	}
}

func context5s(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 5*time.Second)
}
