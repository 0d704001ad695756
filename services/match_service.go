package services

import (
	"context"
	"strconv"

	"lawwork/models"
	"lawwork/repository"
	"lawwork/utils"
)

// ErrCandidateNotFound 详情页ID不在候选人目录中
var ErrCandidateNotFound = repository.ErrCandidateNotFound

// 结果页标签
const (
	BadgeTopMatch = "Top Match"
	BadgeGreatFit = "Great Fit"
)

// WhyThisMatchWorks 详情页侧栏的固定说明
var WhyThisMatchWorks = []string{
	"Strong practice area alignment with your firm's focus",
	"Expert proficiency in your required software tools",
	"Availability matches your schedule requirements",
	"Work style aligns with your cultural preferences",
}

// Avatar 名字首字母头像
type Avatar struct {
	Initials string `json:"initials"`
	Color    string `json:"color"`
}

func avatarFor(name string) Avatar {
	return Avatar{Initials: utils.Initials(name), Color: utils.AvatarColor(name)}
}

// RankedCandidate 结果页的一张卡片
type RankedCandidate struct {
	models.CandidateMatch
	Rank   int    `json:"rank"`
	Badge  string `json:"badge"`
	Avatar Avatar `json:"avatar"`
}

// AssessmentSummary 结果页侧栏"Your Assessment Summary"
type AssessmentSummary struct {
	Firm          string   `json:"firm"`
	PracticeArea  string   `json:"practiceArea"`
	Role          string   `json:"role"`
	SupportNeeded []string `json:"supportNeeded"`
	WeeklyHours   string   `json:"weeklyHours"`
	TimeZone      string   `json:"timeZone"`
}

// HasSupport 没有选择时页面显示"None specified"
func (s AssessmentSummary) HasSupport() bool { return len(s.SupportNeeded) > 0 }

// Summarize 生成侧栏摘要，空值使用页面上的默认文字
func Summarize(a models.Assessment) AssessmentSummary {
	return AssessmentSummary{
		Firm:          utils.OrDefault(a.FirmName, "Not specified"),
		PracticeArea:  utils.JoinOrDefault(a.PracticeArea, "N/A"),
		Role:          utils.JoinOrDefault(a.Role, "N/A"),
		SupportNeeded: append([]string{}, a.SupportNeeded...),
		WeeklyHours:   utils.OrDefault(a.WeeklyHours, "Not specified"),
		TimeZone:      utils.OrDefault(a.TimeZone, "Not specified"),
	}
}

// Results 结果页数据
type Results struct {
	Assessment models.Assessment `json:"assessment"`
	Summary    AssessmentSummary `json:"summary"`
	Candidates []RankedCandidate `json:"candidates"`
}

// QuickInfo 详情页头部的统计栏
type QuickInfo struct {
	HourlyRate     string `json:"hourlyRate"`
	Experience     string `json:"experience"` // 工作经历条数，带"+"
	Certifications int    `json:"certifications"`
	SoftwareTools  string `json:"softwareTools"` // 软件数量，带"+"
}

// ProfileView 详情页数据
type ProfileView struct {
	models.CandidateProfile
	Avatar    Avatar    `json:"avatar"`
	QuickInfo QuickInfo `json:"quickInfo"`
	WhyMatch  []string  `json:"whyMatch"`
}

// MatchService 结果页和详情页。分数是静态目录里写好的，和答案内容无关
type MatchService struct {
	Assessments *AssessmentService
}

func NewMatchService(assessments *AssessmentService) *MatchService {
	return &MatchService{Assessments: assessments}
}

// Results 需要已提交的评估，否则返回 ErrNoAssessment
func (s *MatchService) Results(ctx context.Context, sid string) (*Results, error) {
	a, err := s.Assessments.LoadAssessment(ctx, sid)
	if err != nil {
		return nil, err
	}

	matches := repository.ListCandidateMatches()
	ranked := make([]RankedCandidate, 0, len(matches))
	for i, m := range matches {
		badge := BadgeGreatFit
		if i == 0 {
			badge = BadgeTopMatch
		}
		ranked = append(ranked, RankedCandidate{
			CandidateMatch: m,
			Rank:           i + 1,
			Badge:          badge,
			Avatar:         avatarFor(m.Name),
		})
	}

	return &Results{
		Assessment: *a,
		Summary:    Summarize(*a),
		Candidates: ranked,
	}, nil
}

// Profile 按ID查找，不要求已提交评估
func (s *MatchService) Profile(id string) (*ProfileView, error) {
	p, err := repository.GetCandidateProfile(id)
	if err != nil {
		return nil, err
	}
	return &ProfileView{
		CandidateProfile: *p,
		Avatar:           avatarFor(p.Name),
		QuickInfo: QuickInfo{
			HourlyRate:     p.HourlyRate,
			Experience:     itoaPlus(len(p.WorkHistory)),
			Certifications: len(p.Certifications),
			SoftwareTools:  itoaPlus(len(p.SoftwareExpertise)),
		},
		WhyMatch: WhyThisMatchWorks,
	}, nil
}

func itoaPlus(n int) string {
	return strconv.Itoa(n) + "+"
}
