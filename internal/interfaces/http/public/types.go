package public

import (
	publicapp "github.com/nova-cps/club-services/api/internal/public/application"
)

type primaryStepRequest struct {
	FullName    string   `json:"fullName"`
	RollNumber  string   `json:"rollNumber"`
	Phone       string   `json:"phone"`
	Year        string   `json:"year"`
	Department  string   `json:"department"`
	PrimaryDept string   `json:"primaryDept"`
	Domains     []string `json:"domains"`
	Skills      string   `json:"skills"`
	Reason      string   `json:"reason"`
}

type submitRequest struct {
	SecondaryDept    string   `json:"secondaryDept"`
	SecondaryDomains []string `json:"secondaryDomains"`
	SecondarySkills  string   `json:"secondarySkills"`
	SecondaryReason  string   `json:"secondaryReason"`
}

type formResponse struct {
	FullName   string `json:"fullName"`
	RollNumber string `json:"rollNumber"`
	Phone      string `json:"phone"`
	Year       string `json:"year"`
	Department string `json:"department"`

	PrimaryDept string   `json:"primaryDept"`
	Domains     []string `json:"domains"`
	Skills      string   `json:"skills"`
	Reason      string   `json:"reason"`

	SecondaryDept    string   `json:"secondaryDept,omitempty"`
	SecondaryDomains []string `json:"secondaryDomains,omitempty"`
	SecondarySkills  string   `json:"secondarySkills,omitempty"`
	SecondaryReason  string   `json:"secondaryReason,omitempty"`
}

type draftStateResponse struct {
	Step string       `json:"step"`
	Form formResponse `json:"form"`
}

type departmentOptionsResponse struct {
	Department        string   `json:"department,omitempty"`
	Departments       []string `json:"departments"`
	DomainOptions     []string `json:"domainOptions,omitempty"`
	SkillLabel        string   `json:"skillLabel"`
	SkillPlaceholder  string   `json:"skillPlaceholder"`
	ReasonPlaceholder string   `json:"reasonPlaceholder"`
}

type verifyResponse struct {
	Email     string `json:"email"`
	Admin     bool   `json:"admin"`
	Applicant bool   `json:"applicant"`
}

func toDraftStateResponse(wf *publicapp.Workflow) draftStateResponse {
	form := wf.Form()
	return draftStateResponse{
		Step: string(wf.Step()),
		Form: formResponse{
			FullName:         form.FullName,
			RollNumber:       form.RollNumber,
			Phone:            form.Phone,
			Year:             form.Year,
			Department:       form.Department,
			PrimaryDept:      form.PrimaryDept,
			Domains:          form.Domains,
			Skills:           form.Skills,
			Reason:           form.Reason,
			SecondaryDept:    form.SecondaryDept,
			SecondaryDomains: form.SecondaryDomains,
			SecondarySkills:  form.SecondarySkills,
			SecondaryReason:  form.SecondaryReason,
		},
	}
}
