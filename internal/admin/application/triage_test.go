package application

import (
	"context"
	"errors"
	"testing"
	"time"

	admindomain "github.com/nova-cps/club-services/api/internal/admin/domain"
)

// fakeRepo is a scriptable in-memory ApplicationRepository. Its FetchAll
// always returns the current "server" state, so reconciliation behaviour can
// be observed directly.
type fakeRepo struct {
	server []admindomain.Application

	fetchErr  error
	updateErr error
	deleteErr error

	updateCalls int
	deleteCalls int
}

func (r *fakeRepo) FetchAll(_ context.Context) ([]admindomain.Application, error) {
	if r.fetchErr != nil {
		return nil, r.fetchErr
	}
	return append([]admindomain.Application(nil), r.server...), nil
}

func (r *fakeRepo) Create(_ context.Context, candidate admindomain.Candidate) (*admindomain.Application, error) {
	app := admindomain.Application{
		ID:          "created",
		FullName:    candidate.FullName,
		Email:       candidate.Email,
		Status:      admindomain.StatusPending,
		SubmittedAt: time.Now(),
	}
	r.server = append([]admindomain.Application{app}, r.server...)
	return &app, nil
}

func (r *fakeRepo) UpdateReview(_ context.Context, id string, patch ReviewPatch) error {
	r.updateCalls++
	if r.updateErr != nil {
		return r.updateErr
	}
	for i := range r.server {
		if r.server[i].ID != id {
			continue
		}
		if patch.Status != nil {
			r.server[i].Status = *patch.Status
		}
		if patch.Rating != nil {
			r.server[i].Rating = *patch.Rating
		}
		return nil
	}
	return admindomain.ErrNotFound
}

func (r *fakeRepo) DeleteByID(_ context.Context, id string) error {
	r.deleteCalls++
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for i := range r.server {
		if r.server[i].ID == id {
			r.server = append(r.server[:i], r.server[i+1:]...)
			return nil
		}
	}
	return admindomain.ErrNotFound
}

func seededRepo() *fakeRepo {
	return &fakeRepo{server: []admindomain.Application{
		{ID: "1", FullName: "Asha Nair", RollNumber: "24BCE1042", Email: "asha@vitstudent.ac.in", Status: admindomain.StatusPending},
		{ID: "2", FullName: "Rahul Menon", RollNumber: "24BEE2010", Email: "rahul@vitstudent.ac.in", Status: admindomain.StatusPending},
		{ID: "3", FullName: "Sneha Iyer", RollNumber: "23BCE0881", Email: "sneha@vitstudent.ac.in", Status: admindomain.StatusPending},
	}}
}

func loadedController(t *testing.T, repo *fakeRepo) *TriageController {
	t.Helper()
	controller := NewTriageController(repo)
	if err := controller.Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	return controller
}

func TestLoadFailureLeavesCacheUnchanged(t *testing.T) {
	t.Parallel()

	repo := seededRepo()
	controller := loadedController(t, repo)

	repo.fetchErr = errors.New("mongo down")
	repo.server = nil
	if err := controller.Load(context.Background()); err == nil {
		t.Fatal("Load should propagate the fetch failure")
	}
	if got := len(controller.Applications()); got != 3 {
		t.Fatalf("cache changed on failed load: %d records", got)
	}
}

func TestFilterIsPureAndIdempotent(t *testing.T) {
	t.Parallel()

	controller := loadedController(t, seededRepo())

	full := controller.Filter("")
	again := controller.Filter("")
	if len(full) != 3 || len(again) != 3 {
		t.Fatalf("empty filter should return the full set, got %d and %d", len(full), len(again))
	}

	byName := controller.Filter("asha")
	if len(byName) != 1 || byName[0].ID != "1" {
		t.Fatalf("filter by name = %v", byName)
	}
	byRoll := controller.Filter("24bee")
	if len(byRoll) != 1 || byRoll[0].ID != "2" {
		t.Fatalf("filter by roll = %v", byRoll)
	}
	byEmail := controller.Filter("SNEHA@vitstudent")
	if len(byEmail) != 1 || byEmail[0].ID != "3" {
		t.Fatalf("filter by email = %v", byEmail)
	}

	// Mutating a returned slice must not leak into the cache.
	byName[0].FullName = "changed"
	if controller.Applications()[0].FullName != "Asha Nair" {
		t.Fatal("filter result aliases the cache")
	}
}

func TestSetStatusOptimisticWithReconciliation(t *testing.T) {
	t.Parallel()

	repo := seededRepo()
	controller := loadedController(t, repo)

	repo.updateErr = errors.New("write timeout")
	err := controller.SetStatus(context.Background(), "2", "selected")
	if err == nil {
		t.Fatal("SetStatus should surface the store failure")
	}

	// The cache must have converged back to ground truth via a full refetch.
	for _, app := range controller.Applications() {
		if app.ID == "2" && app.Status != admindomain.StatusPending {
			t.Fatalf("record 2 not reconciled, status=%s", app.Status)
		}
	}
}

func TestSetStatusAndRatingBothPersist(t *testing.T) {
	t.Parallel()

	repo := seededRepo()
	controller := loadedController(t, repo)

	if err := controller.SetRating(context.Background(), "1", 5); err != nil {
		t.Fatalf("SetRating error: %v", err)
	}
	if err := controller.SetStatus(context.Background(), "1", "selected"); err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}

	if err := controller.Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	app, err := controller.Select("1")
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if app.Rating.Int() != 5 || app.Status != admindomain.StatusSelected {
		t.Fatalf("fields clobbered: rating=%d status=%s", app.Rating.Int(), app.Status)
	}
}

func TestSetRatingBoundaryRejectedBeforeStore(t *testing.T) {
	t.Parallel()

	repo := seededRepo()
	controller := loadedController(t, repo)

	for _, rating := range []int{6, -1} {
		err := controller.SetRating(context.Background(), "1", rating)
		var vErr *admindomain.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("SetRating(%d) error = %v, want validation error", rating, err)
		}
	}
	if repo.updateCalls != 0 {
		t.Fatalf("out-of-range rating reached the repository %d times", repo.updateCalls)
	}

	if err := controller.SetStatus(context.Background(), "1", "approved"); err == nil {
		t.Fatal("unknown status accepted")
	}
	if repo.updateCalls != 0 {
		t.Fatal("invalid status reached the repository")
	}
}

func TestSetStatusUnknownID(t *testing.T) {
	t.Parallel()

	controller := loadedController(t, seededRepo())
	if err := controller.SetStatus(context.Background(), "99", "selected"); !errors.Is(err, admindomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveRequiresConfirmation(t *testing.T) {
	t.Parallel()

	repo := seededRepo()
	controller := loadedController(t, repo)

	err := controller.Remove(context.Background(), "1", false)
	if !errors.Is(err, admindomain.ErrConfirmationRequired) {
		t.Fatalf("expected ErrConfirmationRequired, got %v", err)
	}
	if repo.deleteCalls != 0 {
		t.Fatal("unconfirmed delete reached the repository")
	}
	if len(controller.Applications()) != 3 {
		t.Fatal("unconfirmed delete mutated the cache")
	}
}

func TestRemoveFailureKeepsRow(t *testing.T) {
	t.Parallel()

	repo := seededRepo()
	controller := loadedController(t, repo)
	if _, err := controller.Select("2"); err != nil {
		t.Fatalf("Select error: %v", err)
	}

	repo.deleteErr = errors.New("delete failed")
	if err := controller.Remove(context.Background(), "2", true); err == nil {
		t.Fatal("Remove should surface the store failure")
	}
	if len(controller.Applications()) != 3 {
		t.Fatal("failed delete removed the row from the cache")
	}
	if _, ok := controller.Selected(); !ok {
		t.Fatal("failed delete cleared the selection")
	}
}

func TestRemoveClearsSelection(t *testing.T) {
	t.Parallel()

	repo := seededRepo()
	controller := loadedController(t, repo)
	if _, err := controller.Select("2"); err != nil {
		t.Fatalf("Select error: %v", err)
	}

	if err := controller.Remove(context.Background(), "2", true); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if len(controller.Applications()) != 2 {
		t.Fatalf("cache size after delete = %d", len(controller.Applications()))
	}
	if _, ok := controller.Selected(); ok {
		t.Fatal("selection should be cleared when the selected record is deleted")
	}

	if err := controller.Remove(context.Background(), "2", true); !errors.Is(err, admindomain.ErrNotFound) {
		t.Fatalf("second delete should be ErrNotFound, got %v", err)
	}
}
