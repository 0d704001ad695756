package models

// Option 复选框/单选框/下拉框的一个选项
type Option struct {
	Value string
	Label string
	Icon  string
}

// TaskOption 第二步中可评级的任务，PerYear 为年均出现次数提示
type TaskOption struct {
	Name    string
	PerYear int
}

// TaskColumn 第二步的一列
type TaskColumn struct {
	Category TaskCategory
	Title    string
	Tasks    []TaskOption
	Others   []string
}

// SoftwareGroup 第四步按类别分组的软件
type SoftwareGroup struct {
	Icon    string
	Title   string
	Options []Option
}

// StepInfo 评估步骤的标题与说明
type StepInfo struct {
	Number      int
	Title       string
	Description string
}

// Steps 评估的六个步骤
var Steps = []StepInfo{
	{1, "Section 1: Understanding Your Firm", "Tell us about your firm and role"},
	{2, "Section 2: Key Task Areas", "Select the most important tasks for your practice"},
	{3, "Section 3: Support Requirements", "Define the type of support you need most"},
	{4, "Section 4: Software & Tools", "Indicate the tools your team uses"},
	{5, "Section 5: Schedule & Availability", "Set availability expectations"},
	{6, "Section 6: Cultural Fit", "Choose personality traits you value"},
}

var RoleOptions = []Option{
	{"attorney", "Attorney / Partner", "⚖️"},
	{"paralegal", "Paralegal", "👩‍💼"},
	{"operations", "Operations Manager", "🧾"},
	{"marketing", "Marketing Lead", "📈"},
	{"finance", "Finance Admin", "💳"},
	{"solo", "Solo Practitioner", "👤"},
	{"consultant", "Consultant", "🌐"},
}

var PracticeAreaOptions = []Option{
	{"business", "Business", "⚖️"},
	{"civil", "Civil", "📋"},
	{"criminal", "Criminal", "🔒"},
	{"general", "General", "⚡"},
	{"immigration", "Immigration", "🌍"},
	{"personal-injury", "Personal Injury", "🏥"},
}

var TaskColumns = []TaskColumn{
	{
		Category: CategoryAdministrative,
		Title:    "ADMINISTRATIVE",
		Tasks: []TaskOption{
			{"Use CRM & CMS", 330},
			{"Organize & File Documents", 308},
			{"Manage Emails", 298},
			{"Manage Simple Projects", 256},
			{"Track & Update Cases", 243},
		},
		Others: []string{"Data Entry", "Meeting Coordination", "Travel Arrangements", "Expense Management", "Office Supply Management", "Records Management"},
	},
	{
		Category: CategoryLegal,
		Title:    "LEGAL",
		Tasks: []TaskOption{
			{"Draft Legal Documents", 197},
			{"File/E-File Court Cases", 127},
			{"Draft Cover Letters", 116},
			{"Draft Affidavits", 94},
			{"Draft Motions", 88},
		},
		Others: []string{"Legal Research", "Case Brief Preparation", "Discovery Assistance", "Trial Preparation", "Deposition Summaries", "Document Review"},
	},
	{
		Category: CategoryPeopleFacing,
		Title:    "PEOPLE-FACING",
		Tasks: []TaskOption{
			{"Reception: Answer Inquires", 318},
			{"Request Documentation", 309},
			{"Confirm Appointments With Clients", 246},
			{"Intake: Qualify & Obtain Retainer", 165},
			{"Intake: Qualify & Schedule Leads", 136},
		},
		Others: []string{"Client Follow-up", "Witness Coordination", "Court Appearance Support", "Translation Services", "Conflict Checks", "Customer Service"},
	},
	{
		Category: CategoryMarketing,
		Title:    "MARKETING",
		Tasks: []TaskOption{
			{"Manage Social Media", 71},
			{"Create Graphic Material", 51},
			{"Keep Website Up To Date", 43},
			{"Reply to Messages On Social Media", 43},
			{"Create & Edit Simple Videos", 37},
		},
		Others: []string{"Email Marketing", "SEO Optimization", "Content Writing", "Event Coordination", "Newsletter Management", "Brand Management"},
	},
}

var SupportOptions = []Option{
	{"client-intake", "Client intake and communication / People-Facing", ""},
	{"document-prep", "Document preparation and filing / Legal Research", ""},
	{"admin", "Calendar, emails, billing / Administrative", ""},
	{"marketing", "Social media and outreach / Marketing", ""},
	{"other", "Other (customized)", ""},
}

var WeeklyHoursOptions = []Option{
	{"part-time", "Part-time", ""},
	{"full-time", "Full-time", ""},
}

var SoftwareGroups = []SoftwareGroup{
	{"⚖️", "Case Management (e.g., Clio, MyCase, Filevine)", []Option{
		{"clio", "Clio", ""}, {"mycase", "MyCase", ""}, {"filevine", "Filevine", ""},
	}},
	{"👥", "CRM (Client Relationship Management) (e.g., Lawmatics, HubSpot, Salesforce)", []Option{
		{"lawmatics", "Lawmatics", ""}, {"hubspot", "HubSpot", ""}, {"salesforce", "Salesforce", ""},
	}},
	{"💬", "Communication & Collaboration (e.g., Outlook, Teams, Slack, Zoom)", []Option{
		{"outlook", "Outlook", ""}, {"teams", "Microsoft Teams", ""}, {"slack", "Slack", ""}, {"zoom", "Zoom", ""},
	}},
	{"💳", "Billing & Accounting (e.g., QuickBooks, TimeSolv, LeanLaw)", []Option{
		{"quickbooks", "QuickBooks", ""}, {"timesolv", "TimeSolv", ""}, {"leanlaw", "LeanLaw", ""},
	}},
	{"🗓️", "Project / Task Management (e.g., Asana, Trello, ClickUp, Notion)", []Option{
		{"asana", "Asana", ""}, {"trello", "Trello", ""}, {"clickup", "ClickUp", ""}, {"notion", "Notion", ""},
	}},
}

var TimeZoneOptions = []Option{
	{"ET", "Eastern Time (ET)", ""},
	{"CT", "Central Time (CT)", ""},
	{"MT", "Mountain Time (MT)", ""},
	{"PT", "Pacific Time (PT)", ""},
	{"AT", "Alaska Time (AT)", ""},
	{"HAT", "Hawaii-Aleutian Time (HAT)", ""},
}

var AvailabilityOptions = []Option{
	{"exact-overlap", "Exact overlap - Must work during my time zone hours", ""},
	{"partial-overlap", "Partial overlap - Some shared hours are fine", ""},
	{"flexible", "Flexible - Asynchronous work is acceptable", ""},
}

var PersonalityOptions = []Option{
	{"independent", "Independent / Proactive - Self-starter who takes initiative", ""},
	{"structured", "Structured / Process-Oriented - Follows established procedures closely", ""},
}
