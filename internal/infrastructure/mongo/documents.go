package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplicationDocument is the at-rest schema of the applications collection.
// Field names are camelCase; createdAt carries the submission timestamp.
type ApplicationDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	FullName   string             `bson:"fullName"`
	Email      string             `bson:"email"`
	RollNumber string             `bson:"rollNumber"`
	Phone      string             `bson:"phone"`
	Year       string             `bson:"year"`
	Department string             `bson:"department"`

	PrimaryDept string   `bson:"primaryDept"`
	Domains     []string `bson:"domains"`
	Skills      string   `bson:"skills,omitempty"`
	Reason      string   `bson:"reason"`

	SecondaryDept    string   `bson:"secondaryDept,omitempty"`
	SecondaryDomains []string `bson:"secondaryDomains,omitempty"`
	SecondarySkills  string   `bson:"secondarySkills,omitempty"`
	SecondaryReason  string   `bson:"secondaryReason,omitempty"`

	Status string `bson:"status"`
	Rating int    `bson:"rating"`

	CreatedAt time.Time `bson:"createdAt"`
}
