package domain

import (
	"strings"
	"time"
)

// Application is one membership submission: the applicant's identity, their
// primary and optional secondary department preference, and the review fields
// admins mutate during triage.
type Application struct {
	ID         string
	FullName   string
	Email      Email
	RollNumber string
	Phone      string
	Year       string
	Department string

	PrimaryDept Department
	Domains     DomainList
	Skills      string
	Reason      string

	SecondaryDept    Department
	SecondaryDomains DomainList
	SecondarySkills  string
	SecondaryReason  string

	Status Status
	Rating Rating

	SubmittedAt time.Time
}

// HasSecondary reports whether the optional secondary preference block was filled.
func (a Application) HasSecondary() bool {
	return a.SecondaryDept != ""
}

// Candidate is an Application before the store has seen it: no ID, no review
// fields, no timestamp. Those are assigned at creation time.
type Candidate struct {
	FullName   string
	Email      Email
	RollNumber string
	Phone      string
	Year       string
	Department string

	PrimaryDept Department
	Domains     DomainList
	Skills      string
	Reason      string

	SecondaryDept    Department
	SecondaryDomains DomainList
	SecondarySkills  string
	SecondaryReason  string
}

// Validate checks the invariants a candidate must satisfy before it may reach
// the repository. Domain-subset checks are structural (DomainList construction
// already enforced them) but re-run here so a hand-built candidate cannot
// bypass them.
func (c Candidate) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"fullName", c.FullName},
		{"email", c.Email.String()},
		{"rollNumber", c.RollNumber},
		{"phone", c.Phone},
		{"year", c.Year},
		{"department", c.Department},
		{"reason", c.Reason},
	}
	for _, item := range required {
		if strings.TrimSpace(item.value) == "" {
			return NewValidationError(item.field, "is required")
		}
	}
	if c.PrimaryDept == "" {
		return NewValidationError("primaryDept", "is required")
	}
	if _, err := NewDepartment(c.PrimaryDept.String()); err != nil {
		return NewValidationError("primaryDept", err.Error())
	}
	if len(c.Domains) == 0 {
		return NewValidationError("domains", "select at least one domain")
	}
	if _, err := NewDomainList(c.PrimaryDept, c.Domains.Strings()); err != nil {
		return NewValidationError("domains", err.Error())
	}

	if c.SecondaryDept != "" {
		if _, err := NewDepartment(c.SecondaryDept.String()); err != nil {
			return NewValidationError("secondaryDept", err.Error())
		}
		if c.SecondaryDept == c.PrimaryDept {
			return NewValidationError("secondaryDept", "must differ from the primary choice")
		}
		if _, err := NewDomainList(c.SecondaryDept, c.SecondaryDomains.Strings()); err != nil {
			return NewValidationError("secondaryDomains", err.Error())
		}
	} else if len(c.SecondaryDomains) > 0 || strings.TrimSpace(c.SecondarySkills) != "" || strings.TrimSpace(c.SecondaryReason) != "" {
		return NewValidationError("secondaryDept", "is required when a secondary preference is given")
	}

	return nil
}
