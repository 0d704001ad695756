// Package views 服务端渲染的页面模板
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"lawwork/models"
	"lawwork/services"
	"lawwork/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

// 页面模板文件名
const (
	PageHome       = "home.html"
	PageAssessment = "assessment.html"
	PageResults    = "results.html"
	PageProfile    = "profile.html"
)

var pages = []string{PageHome, PageAssessment, PageResults, PageProfile}

var funcs = template.FuncMap{
	"taskField":    services.TaskFieldName,
	"otherField":   services.OtherFieldName,
	"taskPriority": taskPriority,
	"otherValue":   otherValue,
	"contains":     contains,
}

func taskPriority(a models.Assessment, category models.TaskCategory, task string) int {
	tasks := a.TaskSelection.Tasks(category)
	if tasks == nil {
		return 0
	}
	return (*tasks)[task]
}

func otherValue(a models.Assessment, category models.TaskCategory) string {
	if f := a.OtherOptions.Field(category); f != nil {
		return *f
	}
	return ""
}

func contains(values []string, v string) bool {
	return utils.IndexOf(values, v) >= 0
}

// Renderer 每个页面和布局一起预先解析
type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}
	return r, nil
}

// Render 先渲染到缓冲区，出错时不会写出半个页面
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data interface{}) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// HomePage 首页
type HomePage struct {
	Stats []Stat
}

type Stat struct {
	Value string
	Label string
}

// DefaultStats 首页数据条
var DefaultStats = []Stat{
	{"94%", "Match Success Rate"},
	{"500+", "Legal Professionals"},
	{"250+", "Law Firms Served"},
}

// AssessmentPage 评估的某一步
type AssessmentPage struct {
	Form       *services.AssessmentForm
	TotalSteps int
	Steps      []models.StepInfo
	Error      string

	Roles         []models.Option
	PracticeAreas []models.Option
	TaskColumns   []models.TaskColumn
	Priorities    []string
	Support       []models.Option
	WeeklyHours   []models.Option
	Software      []models.SoftwareGroup
	TimeZones     []models.Option
	Availability  []models.Option
	Personality   []models.Option
}

// NewAssessmentPage 填好选项目录
func NewAssessmentPage(f *services.AssessmentForm) AssessmentPage {
	return AssessmentPage{
		Form:          f,
		TotalSteps:    services.TotalSteps,
		Steps:         models.Steps,
		Roles:         models.RoleOptions,
		PracticeAreas: models.PracticeAreaOptions,
		TaskColumns:   models.TaskColumns,
		Priorities:    models.PriorityLabels,
		Support:       models.SupportOptions,
		WeeklyHours:   models.WeeklyHoursOptions,
		Software:      models.SoftwareGroups,
		TimeZones:     models.TimeZoneOptions,
		Availability:  models.AvailabilityOptions,
		Personality:   models.PersonalityOptions,
	}
}

// ResultsPage 结果页
type ResultsPage struct {
	*services.Results
}

// ProfilePage 详情页
type ProfilePage struct {
	*services.ProfileView
}
