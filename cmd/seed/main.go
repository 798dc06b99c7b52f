// Command seed fills the applications collection with plausible sample data
// for local development. It is destructive only when -drop is passed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	admindomain "github.com/nova-cps/club-services/api/internal/admin/domain"
	mongodoc "github.com/nova-cps/club-services/api/internal/infrastructure/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seedOptions struct {
	count      int
	drop       bool
	randomSeed int64
	mongoURI   string
	database   string
	collection string
}

var firstNames = []string{
	"Aarav", "Asha", "Diya", "Ishaan", "Kavya", "Nikhil", "Priya", "Rahul",
	"Sneha", "Tanvi", "Varun", "Zara", "Arjun", "Meera", "Rohan", "Ananya",
}

var lastNames = []string{
	"Rao", "Menon", "Sharma", "Iyer", "Patel", "Reddy", "Nair", "Gupta",
	"Krishnan", "Banerjee", "Das", "Kulkarni",
}

var branches = []string{"BCE", "BEE", "BME", "BEC", "BIT", "BCB"}

var academicDepartments = []string{"CSE", "ECE", "EEE", "Mechanical", "Civil", "Biotech"}

var skillsByDept = map[admindomain.Department]string{
	admindomain.DeptTechnical:     "Python, C++, Arduino, PCB Design",
	admindomain.DeptManagement:    "Trello, Leadership, Communication",
	admindomain.DeptDesignContent: "Figma, Photoshop, Premiere Pro",
	admindomain.DeptBranding:      "Canva, Instagram Insights, Copywriting",
	admindomain.DeptFinance:       "Excel, Tally, Budget Management",
	admindomain.DeptOutreach:      "Public Speaking, Email Writing",
}

var reasonsByDept = map[admindomain.Department]string{
	admindomain.DeptTechnical:     "Built a line-following robot last semester and want to take on bigger projects.",
	admindomain.DeptManagement:    "Organized our hostel cultural night and enjoyed coordinating the teams.",
	admindomain.DeptDesignContent: "I maintain a design portfolio and want real club work to grow it.",
	admindomain.DeptBranding:      "I run a small Instagram page and want to apply that to a club brand.",
	admindomain.DeptFinance:       "Handled the budget for our class trip and liked the responsibility.",
	admindomain.DeptOutreach:      "I enjoy talking to new people and want to bring speakers to campus.",
}

func main() {
	opts := parseFlags()

	rng := rand.New(rand.NewSource(opts.randomSeed))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(opts.mongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("error disconnecting MongoDB: %v", err)
		}
	}()

	coll := client.Database(opts.database).Collection(opts.collection)

	if opts.drop {
		if err := coll.Drop(ctx); err != nil {
			log.Fatalf("failed to drop collection %s: %v", opts.collection, err)
		}
		log.Printf("dropped collection %s", opts.collection)
	}

	docs := make([]any, 0, opts.count)
	for i := 0; i < opts.count; i++ {
		docs = append(docs, sampleApplication(rng, i))
	}

	result, err := coll.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("failed to insert applications: %v", err)
	}
	log.Printf("inserted %d applications into %s.%s", len(result.InsertedIDs), opts.database, opts.collection)

	count, err := coll.CountDocuments(ctx, bson.D{})
	if err == nil {
		log.Printf("collection now holds %d documents", count)
	}
}

func parseFlags() seedOptions {
	opts := seedOptions{}
	flag.IntVar(&opts.count, "count", 40, "number of applications to insert")
	flag.BoolVar(&opts.drop, "drop", false, "drop the collection before seeding")
	flag.Int64Var(&opts.randomSeed, "seed", time.Now().UnixNano(), "random seed for reproducible data")
	flag.StringVar(&opts.mongoURI, "mongo-uri", envOrDefault("MONGO_URI", "mongodb://localhost:27017"), "MongoDB connection URI")
	flag.StringVar(&opts.database, "db", envOrDefault("MONGO_DB", "nova-cps"), "database name")
	flag.StringVar(&opts.collection, "collection", envOrDefault("APPLICATION_COLLECTION", "applications"), "applications collection name")
	flag.Parse()

	if opts.count <= 0 {
		log.Fatal("-count must be positive")
	}
	return opts
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func sampleApplication(rng *rand.Rand, index int) mongodoc.ApplicationDocument {
	first := firstNames[rng.Intn(len(firstNames))]
	last := lastNames[rng.Intn(len(lastNames))]
	year := 1 + rng.Intn(4)
	admissionYear := 26 - year
	roll := fmt.Sprintf("%d%s%04d", admissionYear, branches[rng.Intn(len(branches))], 1000+rng.Intn(9000))

	departments := admindomain.Departments()
	primary := departments[rng.Intn(len(departments))]
	primaryOptions := admindomain.OptionsFor(primary)

	doc := mongodoc.ApplicationDocument{
		ID:          primitive.NewObjectID(),
		FullName:    first + " " + last,
		Email:       fmt.Sprintf("%s.%s%d@vitstudent.ac.in", strings.ToLower(first), strings.ToLower(last), index),
		RollNumber:  roll,
		Phone:       fmt.Sprintf("9%09d", rng.Intn(1_000_000_000)),
		Year:        fmt.Sprintf("%d", year),
		Department:  academicDepartments[rng.Intn(len(academicDepartments))],
		PrimaryDept: primary.String(),
		Domains:     pickDomains(rng, primaryOptions),
		Skills:      skillsByDept[primary],
		Reason:      reasonsByDept[primary],
		Status:      sampleStatus(rng).String(),
		Rating:      0,
		CreatedAt:   time.Now().UTC().Add(-time.Duration(rng.Intn(30*24)) * time.Hour),
	}

	// Reviewed applications usually carry a score.
	if doc.Status != admindomain.StatusPending.String() && rng.Intn(4) > 0 {
		doc.Rating = 1 + rng.Intn(5)
	}

	// Roughly a third of applicants fill the secondary preference.
	if rng.Intn(3) == 0 {
		secondary := departments[rng.Intn(len(departments))]
		if secondary != primary {
			doc.SecondaryDept = secondary.String()
			doc.SecondaryDomains = pickDomains(rng, admindomain.OptionsFor(secondary))
			doc.SecondarySkills = skillsByDept[secondary]
			doc.SecondaryReason = reasonsByDept[secondary]
		}
	}

	return doc
}

func pickDomains(rng *rand.Rand, options []string) []string {
	if len(options) == 0 {
		return nil
	}
	count := 1 + rng.Intn(min(2, len(options)))
	picked := make([]string, 0, count)
	for _, idx := range rng.Perm(len(options))[:count] {
		picked = append(picked, options[idx])
	}
	return picked
}

func sampleStatus(rng *rand.Rand) admindomain.Status {
	switch rng.Intn(10) {
	case 0, 1:
		return admindomain.StatusSelected
	case 2:
		return admindomain.StatusRejected
	case 3:
		return admindomain.StatusNeutral
	default:
		return admindomain.StatusPending
	}
}
