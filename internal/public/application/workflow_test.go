package application

import (
	"context"
	"errors"
	"testing"
	"time"

	adminapp "github.com/nova-cps/club-services/api/internal/admin/application"
	admindomain "github.com/nova-cps/club-services/api/internal/admin/domain"
	"github.com/nova-cps/club-services/api/internal/identity"
)

// createRecorder records Create calls and can be scripted to fail or to
// respond slowly.
type createRecorder struct {
	created     []admindomain.Candidate
	createErr   error
	createDelay time.Duration
}

func (r *createRecorder) FetchAll(context.Context) ([]admindomain.Application, error) {
	return nil, nil
}

func (r *createRecorder) Create(_ context.Context, candidate admindomain.Candidate) (*admindomain.Application, error) {
	if r.createDelay > 0 {
		time.Sleep(r.createDelay)
	}
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.created = append(r.created, candidate)
	return &admindomain.Application{
		ID:          "new-id",
		FullName:    candidate.FullName,
		Email:       candidate.Email,
		PrimaryDept: candidate.PrimaryDept,
		Domains:     candidate.Domains,
		Status:      admindomain.StatusPending,
		Rating:      0,
		SubmittedAt: time.Now(),
	}, nil
}

func (r *createRecorder) UpdateReview(context.Context, string, adminapp.ReviewPatch) error {
	return nil
}

func (r *createRecorder) DeleteByID(context.Context, string) error {
	return nil
}

func applicantContext() *identity.Context {
	return identity.NewContext(identity.User{
		Email:       "a@vitstudent.ac.in",
		DisplayName: "Asha Nair",
		UID:         "uid-1",
	}, nil)
}

func filledWorkflow(t *testing.T, repo adminapp.ApplicationRepository) *Workflow {
	t.Helper()
	wf := NewWorkflow(repo, applicantContext())
	wf.UpdateApplicant(ApplicantInput{
		FullName:   "Asha Nair",
		RollNumber: "24BCE1042",
		Phone:      "9876543210",
		Year:       "1st Year",
		Department: "CSE",
	})
	if err := wf.SetPrimaryDept("Technical"); err != nil {
		t.Fatalf("SetPrimaryDept error: %v", err)
	}
	if err := wf.SetPrimaryDomains([]string{"IoT & Embedded Systems"}); err != nil {
		t.Fatalf("SetPrimaryDomains error: %v", err)
	}
	wf.SetPrimaryDetails("Arduino, C++", "I want to build embedded projects.")
	return wf
}

func TestWorkflowPrefillsNameFromIdentity(t *testing.T) {
	t.Parallel()

	wf := NewWorkflow(&createRecorder{}, applicantContext())
	if wf.Form().FullName != "Asha Nair" {
		t.Fatalf("full name prefill = %q", wf.Form().FullName)
	}
	if wf.Step() != StepPrimary {
		t.Fatalf("fresh workflow step = %s", wf.Step())
	}
}

func TestNextFromPrimaryValidates(t *testing.T) {
	t.Parallel()

	wf := NewWorkflow(&createRecorder{}, applicantContext())
	if err := wf.NextFromPrimary(); err == nil {
		t.Fatal("empty step 1 advanced")
	}

	wf = filledWorkflow(t, &createRecorder{})
	if err := wf.NextFromPrimary(); err != nil {
		t.Fatalf("valid step 1 rejected: %v", err)
	}
	if wf.Step() != StepSecondary {
		t.Fatalf("step after advance = %s", wf.Step())
	}
}

func TestDeptChangeResetsDomains(t *testing.T) {
	t.Parallel()

	wf := filledWorkflow(t, &createRecorder{})
	if err := wf.SetPrimaryDept("Finance"); err != nil {
		t.Fatalf("SetPrimaryDept error: %v", err)
	}
	if got := wf.Form().Domains; len(got) != 0 {
		t.Fatalf("domains kept across a department change: %v", got)
	}

	// Re-selecting the same department keeps the selection.
	if err := wf.SetPrimaryDomains([]string{"Budgeting"}); err != nil {
		t.Fatalf("SetPrimaryDomains error: %v", err)
	}
	if err := wf.SetPrimaryDept("Finance"); err != nil {
		t.Fatalf("SetPrimaryDept error: %v", err)
	}
	if got := wf.Form().Domains; len(got) != 1 {
		t.Fatalf("domains lost without a department change: %v", got)
	}
}

func TestPrimaryDomainsMustMatchDept(t *testing.T) {
	t.Parallel()

	wf := filledWorkflow(t, &createRecorder{})
	if err := wf.SetPrimaryDomains([]string{"Budgeting"}); err == nil {
		t.Fatal("foreign domain accepted for the Technical department")
	}
}

func TestBackPreservesData(t *testing.T) {
	t.Parallel()

	wf := filledWorkflow(t, &createRecorder{})
	if err := wf.NextFromPrimary(); err != nil {
		t.Fatalf("NextFromPrimary error: %v", err)
	}
	if err := wf.SetSecondaryDept("Management"); err != nil {
		t.Fatalf("SetSecondaryDept error: %v", err)
	}
	if err := wf.SetSecondaryDomains([]string{"Logistics"}); err != nil {
		t.Fatalf("SetSecondaryDomains error: %v", err)
	}
	wf.SetSecondaryDetails("Trello", "Backup choice.")

	if err := wf.Back(); err != nil {
		t.Fatalf("Back error: %v", err)
	}
	form := wf.Form()
	if form.RollNumber != "24BCE1042" || len(form.Domains) != 1 {
		t.Fatalf("primary data lost on back-navigation: %+v", form)
	}
	if form.SecondaryDept != "Management" || len(form.SecondaryDomains) != 1 || form.SecondarySkills != "Trello" {
		t.Fatalf("secondary data lost on back-navigation: %+v", form)
	}

	if err := wf.NextFromPrimary(); err != nil {
		t.Fatalf("re-advance error: %v", err)
	}
	if wf.Form().SecondaryDept != "Management" {
		t.Fatal("secondary data lost on forward navigation")
	}
}

func TestSecondaryDeptMustDifferFromPrimary(t *testing.T) {
	t.Parallel()

	wf := filledWorkflow(t, &createRecorder{})
	if err := wf.NextFromPrimary(); err != nil {
		t.Fatalf("NextFromPrimary error: %v", err)
	}
	if err := wf.SetSecondaryDept("Technical"); err == nil {
		t.Fatal("secondary equal to primary accepted")
	}
}

func TestSubmitDefaultsAndEmailFromIdentity(t *testing.T) {
	t.Parallel()

	repo := &createRecorder{}
	wf := filledWorkflow(t, repo)
	if err := wf.NextFromPrimary(); err != nil {
		t.Fatalf("NextFromPrimary error: %v", err)
	}

	app, err := wf.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if wf.Step() != StepSubmitted {
		t.Fatalf("step after submit = %s", wf.Step())
	}
	if app.Status != admindomain.StatusPending || app.Rating.Int() != 0 {
		t.Fatalf("review defaults wrong: status=%s rating=%d", app.Status, app.Rating.Int())
	}
	if len(repo.created) != 1 {
		t.Fatalf("Create called %d times", len(repo.created))
	}
	if repo.created[0].Email.String() != "a@vitstudent.ac.in" {
		t.Fatalf("email not taken from the identity context: %q", repo.created[0].Email)
	}
}

func TestSubmitFailureKeepsStep(t *testing.T) {
	t.Parallel()

	repo := &createRecorder{createErr: admindomain.NewStoreError("create", errors.New("down"))}
	wf := filledWorkflow(t, repo)
	if err := wf.NextFromPrimary(); err != nil {
		t.Fatalf("NextFromPrimary error: %v", err)
	}

	if _, err := wf.Submit(context.Background()); err == nil {
		t.Fatal("store failure reported as success")
	}
	if wf.Step() != StepSecondary {
		t.Fatalf("step after failed submit = %s, want %s", wf.Step(), StepSecondary)
	}

	// Retry succeeds once the store recovers.
	repo.createErr = nil
	if _, err := wf.Submit(context.Background()); err != nil {
		t.Fatalf("retry error: %v", err)
	}
	if wf.Step() != StepSubmitted {
		t.Fatal("retry did not complete the workflow")
	}

	if _, err := wf.Submit(context.Background()); err == nil {
		t.Fatal("double submit accepted")
	}
}

func TestConcurrentSubmitCreatesOnce(t *testing.T) {
	t.Parallel()

	// Two requests with the same draft cookie double-submitting: the slow
	// store widens the window, but only one caller may reach Create; the
	// other must observe the completed step.
	repo := &createRecorder{createDelay: 50 * time.Millisecond}
	wf := filledWorkflow(t, repo)
	if err := wf.NextFromPrimary(); err != nil {
		t.Fatalf("NextFromPrimary error: %v", err)
	}

	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := wf.Submit(context.Background())
			errs <- err
		}()
	}

	var failures int
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			failures++
			var validationErr *admindomain.ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("duplicate submit error = %v, want validation error", err)
			}
		}
	}

	if failures != 1 {
		t.Fatalf("failed submits = %d, want exactly 1", failures)
	}
	if len(repo.created) != 1 {
		t.Fatalf("Create calls = %d, want 1", len(repo.created))
	}
	if wf.Step() != StepSubmitted {
		t.Fatalf("step = %s, want %s", wf.Step(), StepSubmitted)
	}
}

func TestSubmitRequiresLiveIdentity(t *testing.T) {
	t.Parallel()

	idCtx := applicantContext()
	wf := NewWorkflow(&createRecorder{}, idCtx)
	wf.UpdateApplicant(ApplicantInput{FullName: "Asha Nair", RollNumber: "24BCE1042", Phone: "9876543210", Year: "1st Year", Department: "CSE"})
	if err := wf.SetPrimaryDept("Technical"); err != nil {
		t.Fatalf("SetPrimaryDept error: %v", err)
	}
	if err := wf.SetPrimaryDomains([]string{"Cybersecurity"}); err != nil {
		t.Fatalf("SetPrimaryDomains error: %v", err)
	}
	wf.SetPrimaryDetails("", "Security projects.")
	if err := wf.NextFromPrimary(); err != nil {
		t.Fatalf("NextFromPrimary error: %v", err)
	}

	idCtx.SignOut()
	if _, err := wf.Submit(context.Background()); !errors.Is(err, admindomain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after sign-out, got %v", err)
	}
}

func TestDraftStoreExpiry(t *testing.T) {
	t.Parallel()

	store := NewDraftStore(30 * time.Minute)
	current := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	wf := NewWorkflow(&createRecorder{}, applicantContext())
	store.Put("draft-1", wf)

	if _, ok := store.Get("draft-1"); !ok {
		t.Fatal("fresh draft missing")
	}

	current = current.Add(29 * time.Minute)
	if _, ok := store.Get("draft-1"); !ok {
		t.Fatal("draft expired before its TTL (reads should refresh expiry)")
	}

	current = current.Add(31 * time.Minute)
	if _, ok := store.Get("draft-1"); ok {
		t.Fatal("expired draft still served")
	}

	store.Put("draft-2", wf)
	store.Delete("draft-2")
	if _, ok := store.Get("draft-2"); ok {
		t.Fatal("deleted draft still served")
	}
}
