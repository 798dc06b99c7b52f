package domain

import (
	"fmt"
	"net/mail"
	"strings"
)

// Department is the closed set of club departments an applicant can apply to.
type Department string

const (
	DeptTechnical     Department = "Technical"
	DeptManagement    Department = "Management"
	DeptDesignContent Department = "Design & Content"
	DeptBranding      Department = "Branding"
	DeptFinance       Department = "Finance"
	DeptOutreach      Department = "Outreach"
)

var allDepartments = []Department{
	DeptTechnical,
	DeptManagement,
	DeptDesignContent,
	DeptBranding,
	DeptFinance,
	DeptOutreach,
}

func NewDepartment(value string) (Department, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("department is required")
	}
	for _, dept := range allDepartments {
		if string(dept) == trimmed {
			return dept, nil
		}
	}
	return "", fmt.Errorf("invalid department: %s", trimmed)
}

// Departments returns the closed enum in its fixed display order.
func Departments() []Department {
	return append([]Department(nil), allDepartments...)
}

func (d Department) String() string {
	return string(d)
}

// Status is the review decision on an application. All four values are
// mutually reachable; re-review in any direction is allowed.
type Status string

const (
	StatusPending  Status = "pending"
	StatusSelected Status = "selected"
	StatusRejected Status = "rejected"
	StatusNeutral  Status = "neutral"
)

var allStatuses = []Status{StatusPending, StatusSelected, StatusRejected, StatusNeutral}

func NewStatus(value string) (Status, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("status is required")
	}
	for _, status := range allStatuses {
		if string(status) == trimmed {
			return status, nil
		}
	}
	return "", fmt.Errorf("invalid status: %s", trimmed)
}

func (s Status) String() string {
	return string(s)
}

// Rating is an admin score between 0 and 5 inclusive.
type Rating int

func NewRating(value int) (Rating, error) {
	if value < 0 || value > 5 {
		return 0, fmt.Errorf("rating must be between 0 and 5")
	}
	return Rating(value), nil
}

func (r Rating) Int() int {
	return int(r)
}

// DomainList is a set of interest domains selected for one department.
// Construction enforces membership in that department's option set.
type DomainList []string

func NewDomainList(dept Department, values []string) (DomainList, error) {
	if len(values) == 0 {
		return nil, nil
	}
	options := OptionsFor(dept)
	allowed := make(map[string]struct{}, len(options))
	for _, option := range options {
		allowed[option] = struct{}{}
	}
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{})
	for _, raw := range values {
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		if _, ok := allowed[value]; !ok {
			return nil, fmt.Errorf("domain %q is not offered by the %s department", value, dept)
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	return DomainList(result), nil
}

func (l DomainList) Strings() []string {
	return append([]string(nil), l...)
}

// Joined flattens the list for tabular export. The delimiter never appears in
// an option name, so the join is reversible.
func (l DomainList) Joined() string {
	return strings.Join(l, ", ")
}

type Email string

func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("email is required")
	}
	if len(trimmed) > 254 {
		return "", fmt.Errorf("email too long")
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", fmt.Errorf("invalid email: %w", err)
	}
	return Email(trimmed), nil
}

func (e Email) String() string {
	return string(e)
}
