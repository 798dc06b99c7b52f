// Package application implements the applicant-facing submission workflow: a
// two-step form state machine that produces a validated membership
// application and hands it to the repository.
package application

import (
	"context"
	"strings"
	"sync"

	adminapp "github.com/nova-cps/club-services/api/internal/admin/application"
	admindomain "github.com/nova-cps/club-services/api/internal/admin/domain"
	"github.com/nova-cps/club-services/api/internal/identity"
)

// Step is the workflow position. Forward transitions validate the step being
// left; the backward transition never loses data.
type Step string

const (
	StepPrimary   Step = "primary"
	StepSecondary Step = "secondary"
	StepSubmitted Step = "submitted"
)

// FormData is everything the applicant has entered so far. It survives
// back-navigation in both directions untouched, except for the domain resets
// triggered by a department change.
type FormData struct {
	FullName   string
	RollNumber string
	Phone      string
	Year       string
	Department string

	PrimaryDept string
	Domains     []string
	Skills      string
	Reason      string

	SecondaryDept    string
	SecondaryDomains []string
	SecondarySkills  string
	SecondaryReason  string
}

// ApplicantInput is the step-1 identity block of the form. The applicant's
// email never appears here; it is taken from the identity context at submit
// time.
type ApplicantInput struct {
	FullName   string
	RollNumber string
	Phone      string
	Year       string
	Department string
}

// Workflow drives one applicant's submission. Nothing is persisted until the
// final submit succeeds.
//
// One workflow is shared by every request carrying the same draft cookie; the
// mutex serializes those callers so the step transition and the final Create
// happen atomically — two overlapping submits cannot both pass the step check.
type Workflow struct {
	repo     adminapp.ApplicationRepository
	identity *identity.Context

	mu   sync.Mutex
	step Step
	form FormData
}

// NewWorkflow starts a fresh submission for the given principal. The full
// name is prefilled from the provider's display metadata and remains editable.
func NewWorkflow(repo adminapp.ApplicationRepository, idCtx *identity.Context) *Workflow {
	wf := &Workflow{repo: repo, identity: idCtx, step: StepPrimary}
	if user, ok := idCtx.User(); ok {
		wf.form.FullName = user.DisplayName
	}
	return wf
}

// Step returns the current workflow position.
func (w *Workflow) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Applicant returns the signed-in principal this workflow belongs to.
func (w *Workflow) Applicant() (identity.User, bool) {
	return w.identity.User()
}

// Form returns a copy of the entered data.
func (w *Workflow) Form() FormData {
	w.mu.Lock()
	defer w.mu.Unlock()
	form := w.form
	form.Domains = append([]string(nil), w.form.Domains...)
	form.SecondaryDomains = append([]string(nil), w.form.SecondaryDomains...)
	return form
}

// UpdateApplicant merges the applicant identity block.
func (w *Workflow) UpdateApplicant(input ApplicantInput) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form.FullName = strings.TrimSpace(input.FullName)
	w.form.RollNumber = strings.TrimSpace(input.RollNumber)
	w.form.Phone = strings.TrimSpace(input.Phone)
	w.form.Year = strings.TrimSpace(input.Year)
	w.form.Department = strings.TrimSpace(input.Department)
}

// SetPrimaryDept selects the primary department. Changing it discards any
// domains chosen under the previous department; stale selections are never
// retained.
func (w *Workflow) SetPrimaryDept(value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	dept, err := admindomain.NewDepartment(value)
	if err != nil {
		return admindomain.NewValidationError("primaryDept", err.Error())
	}
	if w.form.PrimaryDept != dept.String() {
		w.form.Domains = nil
	}
	w.form.PrimaryDept = dept.String()
	return nil
}

// SetPrimaryDomains replaces the domain selection. Every entry must belong to
// the currently selected primary department.
func (w *Workflow) SetPrimaryDomains(values []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.form.PrimaryDept == "" {
		return admindomain.NewValidationError("primaryDept", "select a department before choosing domains")
	}
	domains, err := admindomain.NewDomainList(admindomain.Department(w.form.PrimaryDept), values)
	if err != nil {
		return admindomain.NewValidationError("domains", err.Error())
	}
	w.form.Domains = domains.Strings()
	return nil
}

// SetPrimaryDetails records the free-text skill and reason fields.
func (w *Workflow) SetPrimaryDetails(skills, reason string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form.Skills = strings.TrimSpace(skills)
	w.form.Reason = strings.TrimSpace(reason)
}

// NextFromPrimary validates the first step and advances to the secondary
// preference. Validation is local; nothing reaches the store here.
func (w *Workflow) NextFromPrimary() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepPrimary {
		return admindomain.NewValidationError("step", "not collecting the primary preference")
	}
	required := []struct {
		field string
		value string
	}{
		{"fullName", w.form.FullName},
		{"rollNumber", w.form.RollNumber},
		{"phone", w.form.Phone},
		{"year", w.form.Year},
		{"department", w.form.Department},
		{"primaryDept", w.form.PrimaryDept},
		{"reason", w.form.Reason},
	}
	for _, item := range required {
		if item.value == "" {
			return admindomain.NewValidationError(item.field, "is required")
		}
	}
	if len(w.form.Domains) == 0 {
		return admindomain.NewValidationError("domains", "select at least one domain")
	}
	w.step = StepSecondary
	return nil
}

// Back returns to the primary step. All entered data, in both blocks, is
// preserved.
func (w *Workflow) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepSecondary {
		return admindomain.NewValidationError("step", "nothing to go back to")
	}
	w.step = StepPrimary
	return nil
}

// SetSecondaryDept selects the optional secondary department; an empty value
// clears the whole secondary block. A change discards previously chosen
// secondary domains.
func (w *Workflow) SetSecondaryDept(value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		w.form.SecondaryDept = ""
		w.form.SecondaryDomains = nil
		return nil
	}
	dept, err := admindomain.NewDepartment(trimmed)
	if err != nil {
		return admindomain.NewValidationError("secondaryDept", err.Error())
	}
	if dept.String() == w.form.PrimaryDept {
		return admindomain.NewValidationError("secondaryDept", "must differ from the primary choice")
	}
	if w.form.SecondaryDept != dept.String() {
		w.form.SecondaryDomains = nil
	}
	w.form.SecondaryDept = dept.String()
	return nil
}

// SetSecondaryDomains replaces the secondary domain selection.
func (w *Workflow) SetSecondaryDomains(values []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.form.SecondaryDept == "" {
		return admindomain.NewValidationError("secondaryDept", "select a department before choosing domains")
	}
	domains, err := admindomain.NewDomainList(admindomain.Department(w.form.SecondaryDept), values)
	if err != nil {
		return admindomain.NewValidationError("secondaryDomains", err.Error())
	}
	w.form.SecondaryDomains = domains.Strings()
	return nil
}

// SetSecondaryDetails records the secondary free-text fields.
func (w *Workflow) SetSecondaryDetails(skills, reason string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form.SecondarySkills = strings.TrimSpace(skills)
	w.form.SecondaryReason = strings.TrimSpace(reason)
}

// Submit validates the full form and creates the application. The email is
// read from the identity context, never from client input. On any failure the
// workflow stays on the secondary step so the applicant can retry; there is no
// partial commit and no silent success. The lock is held across the Create so
// a concurrent duplicate submit observes StepSubmitted, never a second insert.
func (w *Workflow) Submit(ctx context.Context) (*admindomain.Application, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step == StepSubmitted {
		return nil, admindomain.NewValidationError("step", "application already submitted")
	}
	if w.step != StepSecondary {
		return nil, admindomain.NewValidationError("step", "complete the primary preference first")
	}

	email, err := admindomain.NewEmail(w.identity.Email())
	if err != nil {
		return nil, admindomain.ErrUnauthorized
	}

	candidate, err := w.buildCandidate(email)
	if err != nil {
		return nil, err
	}

	app, err := w.repo.Create(ctx, candidate)
	if err != nil {
		return nil, err
	}
	w.step = StepSubmitted
	return app, nil
}

func (w *Workflow) buildCandidate(email admindomain.Email) (admindomain.Candidate, error) {
	primaryDept, err := admindomain.NewDepartment(w.form.PrimaryDept)
	if err != nil {
		return admindomain.Candidate{}, admindomain.NewValidationError("primaryDept", err.Error())
	}
	domains, err := admindomain.NewDomainList(primaryDept, w.form.Domains)
	if err != nil {
		return admindomain.Candidate{}, admindomain.NewValidationError("domains", err.Error())
	}

	candidate := admindomain.Candidate{
		FullName:    w.form.FullName,
		Email:       email,
		RollNumber:  w.form.RollNumber,
		Phone:       w.form.Phone,
		Year:        w.form.Year,
		Department:  w.form.Department,
		PrimaryDept: primaryDept,
		Domains:     domains,
		Skills:      w.form.Skills,
		Reason:      w.form.Reason,
	}

	if w.form.SecondaryDept != "" {
		secondaryDept, err := admindomain.NewDepartment(w.form.SecondaryDept)
		if err != nil {
			return admindomain.Candidate{}, admindomain.NewValidationError("secondaryDept", err.Error())
		}
		secondaryDomains, err := admindomain.NewDomainList(secondaryDept, w.form.SecondaryDomains)
		if err != nil {
			return admindomain.Candidate{}, admindomain.NewValidationError("secondaryDomains", err.Error())
		}
		candidate.SecondaryDept = secondaryDept
		candidate.SecondaryDomains = secondaryDomains
		candidate.SecondarySkills = w.form.SecondarySkills
		candidate.SecondaryReason = w.form.SecondaryReason
	}

	if err := candidate.Validate(); err != nil {
		return admindomain.Candidate{}, err
	}
	return candidate, nil
}
