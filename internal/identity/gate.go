// Package identity decides what a signed-in principal may do. Authentication
// itself is delegated to the external provider; this package only ever looks
// at the verified email.
package identity

import "strings"

// Gate evaluates the two independent access policies: a strict allow-list for
// admin triage and a weaker domain-suffix policy for applicant eligibility.
// The two must not be conflated; an eligible applicant is not an admin.
type Gate struct {
	admins   map[string]struct{}
	suffixes []string
}

// NewGate builds a gate from the configured admin emails and the approved
// institutional email suffixes. Entries are matched case-insensitively.
func NewGate(adminEmails, applicantSuffixes []string) *Gate {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" {
			continue
		}
		admins[email] = struct{}{}
	}
	suffixes := make([]string, 0, len(applicantSuffixes))
	for _, suffix := range applicantSuffixes {
		suffix = strings.ToLower(strings.TrimSpace(suffix))
		if suffix == "" {
			continue
		}
		if !strings.HasPrefix(suffix, "@") {
			suffix = "@" + suffix
		}
		suffixes = append(suffixes, suffix)
	}
	return &Gate{admins: admins, suffixes: suffixes}
}

// IsAdmin reports whether the email is on the administrator allow-list.
// An empty email is never authorized.
func (g *Gate) IsAdmin(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	_, ok := g.admins[email]
	return ok
}

// IsEligibleApplicant reports whether the email may submit an application:
// either an approved institutional address or an allow-listed admin.
func (g *Gate) IsEligibleApplicant(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	if _, ok := g.admins[email]; ok {
		return true
	}
	for _, suffix := range g.suffixes {
		if strings.HasSuffix(email, suffix) {
			return true
		}
	}
	return false
}
