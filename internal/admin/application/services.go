package application

import (
	"context"

	admindomain "github.com/nova-cps/club-services/api/internal/admin/domain"
)

// ApplicationRepository is the CRUD façade over the backing store. It never
// recovers errors silently; every failure propagates to the caller mapped into
// the domain error taxonomy.
type ApplicationRepository interface {
	// FetchAll returns every application, newest submission first.
	FetchAll(ctx context.Context) ([]admindomain.Application, error)
	// Create persists a candidate. The store assigns ID, SubmittedAt and the
	// review defaults (status=pending, rating=0).
	Create(ctx context.Context, candidate admindomain.Candidate) (*admindomain.Application, error)
	// UpdateReview patches exactly the review fields present in patch.
	// Nothing else is ever written to an existing application.
	UpdateReview(ctx context.Context, id string, patch ReviewPatch) error
	// DeleteByID removes one application. Deleting a nonexistent id fails
	// with ErrNotFound; the operation is not idempotent.
	DeleteByID(ctx context.Context, id string) error
}

// ReviewPatch is the only partial-update shape the store ever sees. The struct
// is closed: there is no way to route any other field through it.
type ReviewPatch struct {
	Status *admindomain.Status
	Rating *admindomain.Rating
}

// IsZero reports whether the patch carries no fields at all.
func (p ReviewPatch) IsZero() bool {
	return p.Status == nil && p.Rating == nil
}
