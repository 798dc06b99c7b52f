package mongo

import (
	"context"
	"strings"
	"time"

	adminapp "github.com/nova-cps/club-services/api/internal/admin/application"
	admindomain "github.com/nova-cps/club-services/api/internal/admin/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ApplicationRepository persists membership applications in a single MongoDB
// collection. It implements adminapp.ApplicationRepository.
//
// Per-applicant uniqueness is deliberately not enforced here; whether the
// store should reject a second submission from the same email is an open
// product decision.
type ApplicationRepository struct {
	applications *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database, collection string) *ApplicationRepository {
	return &ApplicationRepository{applications: db.Collection(collection)}
}

// FetchAll returns every application ordered by submission time, newest first.
func (r *ApplicationRepository) FetchAll(ctx context.Context) ([]admindomain.Application, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.applications.Find(ctx, bson.D{}, findOpts)
	if err != nil {
		return nil, admindomain.NewStoreError("fetch", err)
	}
	defer cursor.Close(ctx)

	apps := make([]admindomain.Application, 0)
	for cursor.Next(ctx) {
		var doc ApplicationDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, admindomain.NewStoreError("decode", err)
		}
		app, err := mapApplicationDocument(doc)
		if err != nil {
			return nil, admindomain.NewStoreError("decode", err)
		}
		apps = append(apps, app)
	}
	if err := cursor.Err(); err != nil {
		return nil, admindomain.NewStoreError("fetch", err)
	}
	return apps, nil
}

// Create validates the candidate, then inserts it with the store-assigned id,
// submission timestamp and review defaults.
func (r *ApplicationRepository) Create(ctx context.Context, candidate admindomain.Candidate) (*admindomain.Application, error) {
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	doc := ApplicationDocument{
		ID:               primitive.NewObjectID(),
		FullName:         strings.TrimSpace(candidate.FullName),
		Email:            candidate.Email.String(),
		RollNumber:       strings.TrimSpace(candidate.RollNumber),
		Phone:            strings.TrimSpace(candidate.Phone),
		Year:             strings.TrimSpace(candidate.Year),
		Department:       strings.TrimSpace(candidate.Department),
		PrimaryDept:      candidate.PrimaryDept.String(),
		Domains:          candidate.Domains.Strings(),
		Skills:           strings.TrimSpace(candidate.Skills),
		Reason:           strings.TrimSpace(candidate.Reason),
		SecondaryDept:    candidate.SecondaryDept.String(),
		SecondaryDomains: candidate.SecondaryDomains.Strings(),
		SecondarySkills:  strings.TrimSpace(candidate.SecondarySkills),
		SecondaryReason:  strings.TrimSpace(candidate.SecondaryReason),
		Status:           admindomain.StatusPending.String(),
		Rating:           0,
		CreatedAt:        time.Now().UTC(),
	}

	if _, err := r.applications.InsertOne(ctx, doc); err != nil {
		return nil, admindomain.NewStoreError("create", err)
	}

	app, err := mapApplicationDocument(doc)
	if err != nil {
		return nil, admindomain.NewStoreError("decode", err)
	}
	return &app, nil
}

// UpdateReview patches exactly the supplied review fields via $set. Nothing
// else is written; the patch type cannot carry any other field.
func (r *ApplicationRepository) UpdateReview(ctx context.Context, id string, patch adminapp.ReviewPatch) error {
	if patch.IsZero() {
		return admindomain.ErrInvalidField
	}
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return admindomain.ErrNotFound
	}

	update := bson.M{}
	if patch.Status != nil {
		update["status"] = patch.Status.String()
	}
	if patch.Rating != nil {
		update["rating"] = patch.Rating.Int()
	}

	result, err := r.applications.UpdateByID(ctx, objectID, bson.M{"$set": update})
	if err != nil {
		return admindomain.NewStoreError("update", err)
	}
	if result.MatchedCount == 0 {
		return admindomain.ErrNotFound
	}
	return nil
}

// DeleteByID removes one application. A nonexistent id is an error, not a
// no-op.
func (r *ApplicationRepository) DeleteByID(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return admindomain.ErrNotFound
	}

	result, err := r.applications.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return admindomain.NewStoreError("delete", err)
	}
	if result.DeletedCount == 0 {
		return admindomain.ErrNotFound
	}
	return nil
}

// mapApplicationDocument restores a stored document into the domain aggregate,
// revalidating the persisted enums on the way out.
func mapApplicationDocument(doc ApplicationDocument) (admindomain.Application, error) {
	email, err := admindomain.NewEmail(doc.Email)
	if err != nil {
		return admindomain.Application{}, err
	}
	primaryDept, err := admindomain.NewDepartment(doc.PrimaryDept)
	if err != nil {
		return admindomain.Application{}, err
	}
	domains, err := admindomain.NewDomainList(primaryDept, doc.Domains)
	if err != nil {
		return admindomain.Application{}, err
	}
	status, err := admindomain.NewStatus(doc.Status)
	if err != nil {
		return admindomain.Application{}, err
	}
	rating, err := admindomain.NewRating(doc.Rating)
	if err != nil {
		return admindomain.Application{}, err
	}

	var secondaryDept admindomain.Department
	var secondaryDomains admindomain.DomainList
	if strings.TrimSpace(doc.SecondaryDept) != "" {
		secondaryDept, err = admindomain.NewDepartment(doc.SecondaryDept)
		if err != nil {
			return admindomain.Application{}, err
		}
		secondaryDomains, err = admindomain.NewDomainList(secondaryDept, doc.SecondaryDomains)
		if err != nil {
			return admindomain.Application{}, err
		}
	}

	return admindomain.Application{
		ID:               doc.ID.Hex(),
		FullName:         doc.FullName,
		Email:            email,
		RollNumber:       doc.RollNumber,
		Phone:            doc.Phone,
		Year:             doc.Year,
		Department:       doc.Department,
		PrimaryDept:      primaryDept,
		Domains:          domains,
		Skills:           doc.Skills,
		Reason:           doc.Reason,
		SecondaryDept:    secondaryDept,
		SecondaryDomains: secondaryDomains,
		SecondarySkills:  doc.SecondarySkills,
		SecondaryReason:  doc.SecondaryReason,
		Status:           status,
		Rating:           rating,
		SubmittedAt:      doc.CreatedAt,
	}, nil
}
