package repository

import (
	"errors"
	"sort"

	"lawwork/models"
)

// ErrCandidateNotFound 候选人ID不在静态目录中
var ErrCandidateNotFound = errors.New("candidate not found")

// =====================
// 候选人卡片（结果页）
// =====================

var candidateMatches = []models.CandidateMatch{
	{
		ID:                "1",
		Name:              "Sarah R.",
		Title:             "Paralegal - Executive Support",
		Experience:        "5 years Personal Injury experience",
		MatchScore:        94,
		Availability:      "Monday-Thursday, 9am-4pm Eastern",
		Location:          "Remote (Eastern Time)",
		SoftwareSkills:    []string{"Clio (Expert)", "QuickBooks (Advanced)"},
		PracticeAreaMatch: 95,
		SoftwareMatch:     92,
		AvailabilityMatch: 98,
		PersonalityMatch:  92,
		Strengths: []string{
			"Highly independent client communication",
			"Expert in case management systems",
			"Strong document preparation skills",
		},
	},
	{
		ID:                "2",
		Name:              "David L.",
		Title:             "Executive Assistant - Operations",
		Experience:        "7 years Corporate Law support",
		MatchScore:        88,
		Availability:      "Full-time availability (40 hrs/week)",
		Location:          "Remote (Central Time)",
		SoftwareSkills:    []string{"MyCase", "Salesforce", "Asana"},
		PracticeAreaMatch: 85,
		SoftwareMatch:     88,
		AvailabilityMatch: 90,
		PersonalityMatch:  89,
		Strengths: []string{
			"Process-oriented and detail-focused",
			"Excellent administrative coordination",
			"CRM and project management expertise",
		},
	},
	{
		ID:                "3",
		Name:              "Michael C.",
		Title:             "Paralegal - Research Specialist",
		Experience:        "4 years Immigration Law",
		MatchScore:        82,
		Availability:      "Part-time (20-30 hrs/week)",
		Location:          "Remote (Pacific Time)",
		SoftwareSkills:    []string{"Filevine", "LeanLaw", "Slack"},
		PracticeAreaMatch: 78,
		SoftwareMatch:     85,
		AvailabilityMatch: 80,
		PersonalityMatch:  86,
		Strengths: []string{
			"Strong legal research background",
			"Immigration documentation expert",
			"Tech-savvy and adaptable",
		},
	},
}

// =====================
// 候选人详情
// =====================

var candidateProfiles = map[string]models.CandidateProfile{
	"1": {
		ID:           "1",
		Name:         "Sarah R.",
		Title:        "Paralegal - Executive Support Specialist",
		Location:     "Remote (Eastern Time)",
		MatchScore:   94,
		Availability: "Monday-Thursday, 9am-4pm Eastern",
		HourlyRate:   "$45-55/hour",
		Experience:   "5 years in Personal Injury Law",
		Bio:          "Experienced paralegal with a strong background in personal injury litigation and client communication. Known for proactive problem-solving and excellent organizational skills. Specialized in case management systems and client intake processes.",
		Skills: []string{
			"Legal Research",
			"Document Drafting",
			"Client Communication",
			"Case Management",
			"Court Filing",
			"Discovery Support",
			"Medical Records Review",
			"Settlement Negotiations Support",
		},
		Certifications: []string{
			"Certified Paralegal (CP) - NALA",
			"E-Discovery Specialist",
			"Notary Public",
		},
		SoftwareExpertise: []models.SoftwareSkill{
			{Name: "Clio", Level: "Expert"},
			{Name: "QuickBooks", Level: "Advanced"},
			{Name: "Microsoft Office Suite", Level: "Expert"},
			{Name: "Adobe Acrobat Pro", Level: "Advanced"},
			{Name: "Zoom/Teams", Level: "Expert"},
		},
		WorkHistory: []models.WorkHistoryEntry{
			{
				Company:     "Johnson & Associates Law Firm",
				Role:        "Senior Paralegal",
				Duration:    "2020 - Present",
				Description: "Managed 30+ personal injury cases simultaneously. Coordinated client intake, medical records review, and settlement documentation. Improved case processing time by 25%.",
			},
			{
				Company:     "Thompson Legal Group",
				Role:        "Paralegal",
				Duration:    "2018 - 2020",
				Description: "Supported 3 attorneys with personal injury litigation. Drafted pleadings, managed discovery, and maintained case files. Implemented new filing system improving efficiency.",
			},
		},
		Education: []models.Education{
			{Degree: "Paralegal Studies Certificate", Institution: "Boston University", Year: "2018"},
			{Degree: "Bachelor of Arts in Political Science", Institution: "University of Massachusetts", Year: "2016"},
		},
		CommunicationPreferences: []string{"Email", "Video Calls", "Project Management Tools"},
		Languages:                []string{"English (Native)", "Spanish (Conversational)"},
		Timezone:                 "Eastern Time (ET)",
		PreferredWorkStyle:       "Independent with regular check-ins",
	},
	"2": {
		ID:           "2",
		Name:         "David L.",
		Title:        "Executive Assistant - Operations Coordinator",
		Location:     "Remote (Central Time)",
		MatchScore:   88,
		Availability: "Full-time (40 hrs/week)",
		HourlyRate:   "$40-50/hour",
		Experience:   "7 years in Corporate Law support",
		Bio:          "Detail-oriented executive assistant with extensive experience supporting legal teams in corporate environments. Expert in process optimization and administrative coordination. Strong background in CRM systems and project management.",
		Skills: []string{
			"Calendar Management",
			"Executive Support",
			"Meeting Coordination",
			"Travel Arrangements",
			"Expense Management",
			"Project Coordination",
			"Client Relations",
			"Process Documentation",
		},
		Certifications: []string{"Certified Administrative Professional (CAP)", "Project Management Basics"},
		SoftwareExpertise: []models.SoftwareSkill{
			{Name: "MyCase", Level: "Advanced"},
			{Name: "Salesforce", Level: "Expert"},
			{Name: "Asana", Level: "Advanced"},
			{Name: "Microsoft Office Suite", Level: "Expert"},
			{Name: "Google Workspace", Level: "Expert"},
		},
		WorkHistory: []models.WorkHistoryEntry{
			{
				Company:     "Corporate Legal Solutions",
				Role:        "Executive Assistant to Partners",
				Duration:    "2019 - Present",
				Description: "Supporting 5 partners with scheduling, client relations, and operational coordination. Implemented new CRM system increasing client satisfaction scores by 30%.",
			},
			{
				Company:     "Davis & Partners LLC",
				Role:        "Legal Administrative Assistant",
				Duration:    "2016 - 2019",
				Description: "Managed administrative operations for corporate law department. Coordinated meetings, travel, and client events. Maintained document management system.",
			},
		},
		Education: []models.Education{
			{Degree: "Bachelor of Business Administration", Institution: "University of Illinois", Year: "2015"},
		},
		CommunicationPreferences: []string{"Email", "Phone", "Instant Messaging"},
		Languages:                []string{"English (Native)"},
		Timezone:                 "Central Time (CT)",
		PreferredWorkStyle:       "Structured with clear processes",
	},
	"3": {
		ID:           "3",
		Name:         "Michael C.",
		Title:        "Paralegal - Research Specialist",
		Location:     "Remote (Pacific Time)",
		MatchScore:   82,
		Availability: "Part-time (20-30 hrs/week)",
		HourlyRate:   "$38-48/hour",
		Experience:   "4 years in Immigration Law",
		Bio:          "Research-focused paralegal specializing in immigration law and complex legal documentation. Strong analytical skills and attention to detail. Comfortable with technology and adapting to new systems quickly.",
		Skills: []string{
			"Legal Research",
			"Immigration Documentation",
			"Case Analysis",
			"Form Preparation",
			"Client Interviews",
			"File Management",
			"Compliance Review",
			"Multilingual Support",
		},
		Certifications: []string{"Immigration Law Specialist Certificate", "Legal Research Certification"},
		SoftwareExpertise: []models.SoftwareSkill{
			{Name: "Filevine", Level: "Advanced"},
			{Name: "LeanLaw", Level: "Intermediate"},
			{Name: "Slack", Level: "Expert"},
			{Name: "Westlaw", Level: "Advanced"},
			{Name: "LexisNexis", Level: "Advanced"},
		},
		WorkHistory: []models.WorkHistoryEntry{
			{
				Company:     "Global Immigration Services",
				Role:        "Immigration Paralegal",
				Duration:    "2020 - Present",
				Description: "Prepare visa applications, green card petitions, and citizenship documents. Conduct client consultations and maintain case tracking systems. 95% approval rate on applications.",
			},
		},
		Education: []models.Education{
			{Degree: "Paralegal Studies Certificate", Institution: "UCLA Extension", Year: "2019"},
			{Degree: "Bachelor of Arts in International Relations", Institution: "UC Berkeley", Year: "2017"},
		},
		CommunicationPreferences: []string{"Email", "Video Calls"},
		Languages:                []string{"English (Native)", "Mandarin (Fluent)", "Spanish (Intermediate)"},
		Timezone:                 "Pacific Time (PT)",
		PreferredWorkStyle:       "Flexible and collaborative",
	},
}

// ListCandidateMatches 返回按匹配分降序排列的候选人卡片（副本）
func ListCandidateMatches() []models.CandidateMatch {
	out := make([]models.CandidateMatch, len(candidateMatches))
	copy(out, candidateMatches)
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchScore > out[j].MatchScore })
	return out
}

// GetCandidateProfile 按ID查找候选人详情
func GetCandidateProfile(id string) (*models.CandidateProfile, error) {
	p, ok := candidateProfiles[id]
	if !ok {
		return nil, ErrCandidateNotFound
	}
	return &p, nil
}
