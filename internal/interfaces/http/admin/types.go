package admin

import (
	"time"

	admindomain "github.com/nova-cps/club-services/api/internal/admin/domain"
)

type applicationResponse struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	RollNumber string `json:"rollNumber"`
	Phone      string `json:"phone"`
	Year       string `json:"year"`
	Department string `json:"department"`

	PrimaryDept string   `json:"primaryDept"`
	Domains     []string `json:"domains"`
	Skills      string   `json:"skills,omitempty"`
	Reason      string   `json:"reason"`

	SecondaryDept    string   `json:"secondaryDept,omitempty"`
	SecondaryDomains []string `json:"secondaryDomains,omitempty"`
	SecondarySkills  string   `json:"secondarySkills,omitempty"`
	SecondaryReason  string   `json:"secondaryReason,omitempty"`

	Status      string    `json:"status"`
	Rating      int       `json:"rating"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type applicationListResponse struct {
	Applications []applicationResponse `json:"applications"`
	Total        int                   `json:"total"`
	Search       string                `json:"search,omitempty"`
}

type reviewPatchRequest struct {
	Status *string `json:"status"`
	Rating *int    `json:"rating"`
}

func toApplicationResponse(app admindomain.Application) applicationResponse {
	resp := applicationResponse{
		ID:          app.ID,
		FullName:    app.FullName,
		Email:       app.Email.String(),
		RollNumber:  app.RollNumber,
		Phone:       app.Phone,
		Year:        app.Year,
		Department:  app.Department,
		PrimaryDept: app.PrimaryDept.String(),
		Domains:     app.Domains.Strings(),
		Skills:      app.Skills,
		Reason:      app.Reason,
		Status:      app.Status.String(),
		Rating:      app.Rating.Int(),
		SubmittedAt: app.SubmittedAt,
	}
	if app.HasSecondary() {
		resp.SecondaryDept = app.SecondaryDept.String()
		resp.SecondaryDomains = app.SecondaryDomains.Strings()
		resp.SecondarySkills = app.SecondarySkills
		resp.SecondaryReason = app.SecondaryReason
	}
	return resp
}

func toApplicationListResponse(apps []admindomain.Application, search string) applicationListResponse {
	items := make([]applicationResponse, 0, len(apps))
	for _, app := range apps {
		items = append(items, toApplicationResponse(app))
	}
	return applicationListResponse{Applications: items, Total: len(items), Search: search}
}
