package models

// CandidateMatch 结果页上的候选人卡片，分数均为预先写好的常量
type CandidateMatch struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Title             string   `json:"title"`
	Experience        string   `json:"experience"`
	MatchScore        int      `json:"matchScore"`
	Availability      string   `json:"availability"`
	Location          string   `json:"location"`
	SoftwareSkills    []string `json:"softwareSkills"`
	PracticeAreaMatch int      `json:"practiceAreaMatch"`
	SoftwareMatch     int      `json:"softwareMatch"`
	AvailabilityMatch int      `json:"availabilityMatch"`
	PersonalityMatch  int      `json:"personalityMatch"`
	Strengths         []string `json:"strengths"`
}

type SoftwareSkill struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type WorkHistoryEntry struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// CandidateProfile 候选人详情页数据
type CandidateProfile struct {
	ID                       string             `json:"id"`
	Name                     string             `json:"name"`
	Title                    string             `json:"title"`
	Location                 string             `json:"location"`
	MatchScore               int                `json:"matchScore"`
	Availability             string             `json:"availability"`
	HourlyRate               string             `json:"hourlyRate"`
	Experience               string             `json:"experience"`
	Bio                      string             `json:"bio"`
	Skills                   []string           `json:"skills"`
	Certifications           []string           `json:"certifications"`
	SoftwareExpertise        []SoftwareSkill    `json:"softwareExpertise"`
	WorkHistory              []WorkHistoryEntry `json:"workHistory"`
	Education                []Education        `json:"education"`
	CommunicationPreferences []string           `json:"communicationPreferences"`
	Languages                []string           `json:"languages"`
	Timezone                 string             `json:"timezone"`
	PreferredWorkStyle       string             `json:"preferredWorkStyle"`
}
