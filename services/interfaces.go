package services

import (
	"context"
	"net/url"

	"lawwork/models"
)

// LeadRecorder 线索库，提交的评估会尽力写入一份
type LeadRecorder interface {
	SaveSubmission(ctx context.Context, sub models.AssessmentSubmission) error
}

// AssessmentFlow 评估流程服务接口（HTML和JSON处理器共用）
type AssessmentFlow interface {
	// 读取当前草稿，没有时返回第一步的空白表单
	LoadForm(ctx context.Context, sid string) (*AssessmentForm, error)

	// 对草稿做一次修改并保存
	Update(ctx context.Context, sid string, fn func(*AssessmentForm) error) (*AssessmentForm, error)

	// 写入当前步骤的表单值后前进；最后一步时提交并返回 complete=true
	Advance(ctx context.Context, sid string, values url.Values) (form *AssessmentForm, complete bool, err error)

	// 写入当前步骤的表单值后后退
	Retreat(ctx context.Context, sid string, values url.Values) (*AssessmentForm, error)

	// 直接提交一份完整评估（JSON接口）
	SubmitJSON(ctx context.Context, sid string, body []byte) (*models.Assessment, error)

	// 读取已提交的评估
	LoadAssessment(ctx context.Context, sid string) (*models.Assessment, error)

	// 以已提交的评估为起点重新填写
	Refine(ctx context.Context, sid string) (*AssessmentForm, error)
}

// Matcher 结果页和详情页的数据来源
type Matcher interface {
	Results(ctx context.Context, sid string) (*Results, error)
	Profile(id string) (*ProfileView, error)
}
