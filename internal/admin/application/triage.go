package application

import (
	"context"
	"strings"
	"sync"

	admindomain "github.com/nova-cps/club-services/api/internal/admin/domain"
)

// TriageController is the in-memory view over fetched applications that the
// admin surface works against. Between Load calls the cache is the single
// source of truth; reads never hit the store. Mutations are optimistic: the
// cache changes first, the store second, and a store failure is repaired by a
// full refetch rather than a point rollback — without a server-confirmed diff
// a targeted undo could mask a concurrent reviewer's edit.
//
// The cache has one logical writer; the mutex serializes the concurrent HTTP
// callers onto it.
type TriageController struct {
	repo ApplicationRepository

	mu         sync.Mutex
	apps       []admindomain.Application
	searchTerm string
	selectedID string
}

func NewTriageController(repo ApplicationRepository) *TriageController {
	return &TriageController{repo: repo}
}

// Load replaces the cache wholesale with the store's current state. On failure
// the cache is left untouched and the error is returned; there is no partial
// merge.
func (c *TriageController) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadLocked(ctx)
}

func (c *TriageController) loadLocked(ctx context.Context) error {
	apps, err := c.repo.FetchAll(ctx)
	if err != nil {
		return err
	}
	c.apps = apps
	if c.selectedID != "" && c.indexLocked(c.selectedID) < 0 {
		c.selectedID = ""
	}
	return nil
}

// Applications returns a copy of the full cached set, unfiltered.
func (c *TriageController) Applications() []admindomain.Application {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]admindomain.Application(nil), c.apps...)
}

// Filter projects the cache through a case-insensitive substring match on
// full name, roll number and email. An empty term returns the full set. The
// projection is pure and repeatable: it never mutates the cache.
func (c *TriageController) Filter(term string) []admindomain.Application {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.searchTerm = term
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return append([]admindomain.Application(nil), c.apps...)
	}

	matched := make([]admindomain.Application, 0, len(c.apps))
	for _, app := range c.apps {
		if strings.Contains(strings.ToLower(app.FullName), needle) ||
			strings.Contains(strings.ToLower(app.RollNumber), needle) ||
			strings.Contains(strings.ToLower(app.Email.String()), needle) {
			matched = append(matched, app)
		}
	}
	return matched
}

// SearchTerm returns the most recent filter term.
func (c *TriageController) SearchTerm() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searchTerm
}

// Select marks a record for detail view and returns it from the cache.
// Selection never triggers a fetch.
func (c *TriageController) Select(id string) (admindomain.Application, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexLocked(id)
	if idx < 0 {
		return admindomain.Application{}, admindomain.ErrNotFound
	}
	c.selectedID = id
	return c.apps[idx], nil
}

// Selected returns the currently selected record, if any.
func (c *TriageController) Selected() (admindomain.Application, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selectedID == "" {
		return admindomain.Application{}, false
	}
	idx := c.indexLocked(c.selectedID)
	if idx < 0 {
		return admindomain.Application{}, false
	}
	return c.apps[idx], true
}

// ClearSelection drops the detail-view selection.
func (c *TriageController) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectedID = ""
}

// SetStatus moves an application to the given status. The raw value is
// validated before anything — store included — sees it.
func (c *TriageController) SetStatus(ctx context.Context, id, status string) error {
	parsed, err := admindomain.NewStatus(status)
	if err != nil {
		return admindomain.NewValidationError("status", err.Error())
	}
	return c.mutate(ctx, id, ReviewPatch{Status: &parsed}, func(app *admindomain.Application) {
		app.Status = parsed
	})
}

// SetRating scores an application. Out-of-range ratings are rejected before
// reaching the repository.
func (c *TriageController) SetRating(ctx context.Context, id string, rating int) error {
	parsed, err := admindomain.NewRating(rating)
	if err != nil {
		return admindomain.NewValidationError("rating", err.Error())
	}
	return c.mutate(ctx, id, ReviewPatch{Rating: &parsed}, func(app *admindomain.Application) {
		app.Rating = parsed
	})
}

// mutate applies the speculative local change, then issues the remote patch.
// On remote failure it reconverges the whole cache to store state and still
// returns the original failure to the caller.
func (c *TriageController) mutate(ctx context.Context, id string, patch ReviewPatch, apply func(*admindomain.Application)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexLocked(id)
	if idx < 0 {
		return admindomain.ErrNotFound
	}

	apply(&c.apps[idx])

	if err := c.repo.UpdateReview(ctx, id, patch); err != nil {
		if reloadErr := c.loadLocked(ctx); reloadErr != nil {
			// Cache may be stale until the next successful Load; the
			// original failure still takes precedence.
			return err
		}
		return err
	}
	return nil
}

// Remove deletes an application. The destructive step demands an explicit
// confirmation from the caller. On store failure the cache keeps the row so
// the user can retry; on success the row disappears and a matching selection
// is cleared.
func (c *TriageController) Remove(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return admindomain.ErrConfirmationRequired
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexLocked(id)
	if idx < 0 {
		return admindomain.ErrNotFound
	}

	if err := c.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	c.apps = append(c.apps[:idx], c.apps[idx+1:]...)
	if c.selectedID == id {
		c.selectedID = ""
	}
	return nil
}

func (c *TriageController) indexLocked(id string) int {
	for i := range c.apps {
		if c.apps[i].ID == id {
			return i
		}
	}
	return -1
}
