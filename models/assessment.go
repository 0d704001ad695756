package models

// TaskCategory 任务栏目（评估第二步的四列）
type TaskCategory string

const (
	CategoryAdministrative TaskCategory = "administrative"
	CategoryLegal          TaskCategory = "legal"
	CategoryPeopleFacing   TaskCategory = "peopleFacing"
	CategoryMarketing      TaskCategory = "marketing"
)

// TaskCategories 按页面展示顺序排列
var TaskCategories = []TaskCategory{
	CategoryAdministrative,
	CategoryLegal,
	CategoryPeopleFacing,
	CategoryMarketing,
}

// 优先级取值：0 表示未指定，不会被保存
const (
	PriorityNotSpecified = 0
	PriorityLow          = 1
	PriorityMedium       = 2
	PriorityHigh         = 3
)

// PriorityLabels 下标即优先级
var PriorityLabels = []string{"Not Specified", "Low", "Medium", "High"}

// TaskSelection 各栏目下 任务名 -> 优先级(1-3)
type TaskSelection struct {
	Administrative map[string]int `json:"administrative"`
	Legal          map[string]int `json:"legal"`
	PeopleFacing   map[string]int `json:"peopleFacing"`
	Marketing      map[string]int `json:"marketing"`
}

// Tasks 返回指定栏目的map指针，未知栏目返回nil
func (t *TaskSelection) Tasks(category TaskCategory) *map[string]int {
	switch category {
	case CategoryAdministrative:
		return &t.Administrative
	case CategoryLegal:
		return &t.Legal
	case CategoryPeopleFacing:
		return &t.PeopleFacing
	case CategoryMarketing:
		return &t.Marketing
	}
	return nil
}

// OtherOptions 各栏目"Other"下拉框的选中值
type OtherOptions struct {
	Administrative string `json:"administrative"`
	Legal          string `json:"legal"`
	PeopleFacing   string `json:"peopleFacing"`
	Marketing      string `json:"marketing"`
}

// Field 返回指定栏目的字段指针，未知栏目返回nil
func (o *OtherOptions) Field(category TaskCategory) *string {
	switch category {
	case CategoryAdministrative:
		return &o.Administrative
	case CategoryLegal:
		return &o.Legal
	case CategoryPeopleFacing:
		return &o.PeopleFacing
	case CategoryMarketing:
		return &o.Marketing
	}
	return nil
}

// Assessment 律所填写的评估答案，原样序列化存入会话
type Assessment struct {
	FirmName      string        `json:"firmName"`
	Role          []string      `json:"role"`
	PracticeArea  []string      `json:"practiceArea"`
	TaskSelection TaskSelection `json:"taskSelection"`
	OtherOptions  OtherOptions  `json:"otherOptions"`
	SupportNeeded []string      `json:"supportNeeded"`
	WeeklyHours   string        `json:"weeklyHours"`
	Software      []string      `json:"software"`
	TimeZone      string        `json:"timeZone"`
	Availability  string        `json:"availability"`
	Personality   string        `json:"personality"`
}

// NewAssessment 返回空白评估，集合字段为空切片/空map而不是nil
func NewAssessment() Assessment {
	a := Assessment{}
	a.Normalize()
	return a
}

// Normalize 把nil集合补成空集合，保证序列化结果是 [] 和 {}
func (a *Assessment) Normalize() {
	for _, s := range []*[]string{&a.Role, &a.PracticeArea, &a.SupportNeeded, &a.Software} {
		if *s == nil {
			*s = []string{}
		}
	}
	for _, c := range TaskCategories {
		m := a.TaskSelection.Tasks(c)
		if *m == nil {
			*m = map[string]int{}
		}
	}
}

// Clone 深拷贝
func (a Assessment) Clone() Assessment {
	out := a
	out.Role = append([]string{}, a.Role...)
	out.PracticeArea = append([]string{}, a.PracticeArea...)
	out.SupportNeeded = append([]string{}, a.SupportNeeded...)
	out.Software = append([]string{}, a.Software...)
	for _, c := range TaskCategories {
		src := *a.TaskSelection.Tasks(c)
		dst := make(map[string]int, len(src))
		for k, v := range src {
			dst[k] = v
		}
		*out.TaskSelection.Tasks(c) = dst
	}
	return out
}

// AssessmentDraft 填写中的评估：当前步骤 + 答案
type AssessmentDraft struct {
	Step int        `json:"step"`
	Data Assessment `json:"data"`
}

// AssessmentSubmission 写入线索库的一条提交记录
type AssessmentSubmission struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`
	FirmName  string `json:"firm_name"`
	Payload   string `json:"payload"` // 评估JSON原文
}
