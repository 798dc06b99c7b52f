package domain

// DepartmentSpec drives the department-dependent parts of the application
// form: which interest domains can be picked and how the free-text fields are
// labelled. The table is closed over the Department enum.
type DepartmentSpec struct {
	DomainOptions     []string
	SkillLabel        string
	SkillPlaceholder  string
	ReasonPlaceholder string
}

const (
	defaultSkillLabel        = "Relevant Skills"
	defaultSkillPlaceholder  = "List your relevant skills here..."
	defaultReasonPlaceholder = "Tell us about your motivation and what you hope to achieve..."
)

var departmentSpecs = map[Department]DepartmentSpec{
	DeptTechnical: {
		DomainOptions: []string{
			"IoT & Embedded Systems",
			"Robotics & Automation",
			"AI & Edge Computing",
			"Cybersecurity",
			"Web & App Development",
		},
		SkillLabel:        "Technical Skills",
		SkillPlaceholder:  "e.g. Python, C++, Arduino, React, PCB Design...",
		ReasonPlaceholder: "Tell us about your technical projects and what you want to build...",
	},
	DeptManagement: {
		DomainOptions: []string{
			"Event Management",
			"Team Coordination",
			"Logistics",
			"Public Relations",
		},
		SkillLabel:        defaultSkillLabel,
		SkillPlaceholder:  "e.g. Asana, Trello, Leadership, Communication...",
		ReasonPlaceholder: "Describe your experience in leading teams or organizing events...",
	},
	DeptDesignContent: {
		DomainOptions: []string{
			"Graphic Design (Canva/Figma)",
			"Video Editing",
			"Content Writing",
			"UI/UX Design",
		},
		SkillLabel:        "Design Tools & Software",
		SkillPlaceholder:  "e.g. Photoshop, Illustrator, Figma, Premiere Pro...",
		ReasonPlaceholder: "Share your design philosophy or portfolio links...",
	},
	DeptBranding: {
		DomainOptions: []string{
			"Brand Strategy",
			"Visual Identity",
			"Marketing Campaigns",
			"Social Media Management",
			"Content Scheduling",
			"Analytics",
		},
		SkillLabel:        "Branding & Social Tools",
		SkillPlaceholder:  "e.g. Brand Strategy, Canva, Instagram Insights, Copywriting...",
		ReasonPlaceholder: "How would you position NOVA CPS as a brand and grow our online presence?",
	},
	DeptFinance: {
		DomainOptions: []string{
			"Budgeting",
			"Sponsorship Management",
			"Accounting",
		},
		SkillLabel:        "Accounting/Management Tools",
		SkillPlaceholder:  "e.g. Excel, Tally, Budget Management...",
		ReasonPlaceholder: "Why do you want to manage finances for a student organization?",
	},
	DeptOutreach: {
		DomainOptions: []string{
			"Corporate Outreach",
			"Student Outreach",
			"Partnerships",
		},
		SkillLabel:        defaultSkillLabel,
		SkillPlaceholder:  "e.g. Public Speaking, Email Writing, Negotiation...",
		ReasonPlaceholder: "How would you help us connect with industry experts?",
	},
}

// SpecFor looks up the form spec for a department. An unknown (or empty)
// department yields the default labels with no domain options.
func SpecFor(dept Department) DepartmentSpec {
	spec, ok := departmentSpecs[dept]
	if !ok {
		return DepartmentSpec{
			SkillLabel:        defaultSkillLabel,
			SkillPlaceholder:  defaultSkillPlaceholder,
			ReasonPlaceholder: defaultReasonPlaceholder,
		}
	}
	return DepartmentSpec{
		DomainOptions:     append([]string(nil), spec.DomainOptions...),
		SkillLabel:        spec.SkillLabel,
		SkillPlaceholder:  spec.SkillPlaceholder,
		ReasonPlaceholder: spec.ReasonPlaceholder,
	}
}

// OptionsFor returns the valid interest domains for a department.
func OptionsFor(dept Department) []string {
	spec, ok := departmentSpecs[dept]
	if !ok {
		return nil
	}
	return append([]string(nil), spec.DomainOptions...)
}
