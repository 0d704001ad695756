package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"net/url"
	"sync"

	"github.com/google/uuid"

	"lawwork/logger"
	"lawwork/metrics"
	"lawwork/models"
	"lawwork/session"
)

// 会话中的固定键
const (
	KeyAssessmentData  = "assessmentData"
	KeyAssessmentDraft = "assessmentDraft"
)

// ErrNoAssessment 会话中没有已提交的评估（或内容无法解析）
var ErrNoAssessment = errors.New("no assessment in session")

// lockShards 会话锁分片数
const lockShards = 64

// AssessmentService 评估流程：草稿保存、步骤切换、提交
type AssessmentService struct {
	Store    session.Store
	Recorder LeadRecorder // 可为nil，表示不记录线索

	// 同一会话的读改写串行执行，只在本进程内有效
	locks [lockShards]sync.Mutex
}

func NewAssessmentService(store session.Store, recorder LeadRecorder) *AssessmentService {
	return &AssessmentService{Store: store, Recorder: recorder}
}

// lock 锁住sid所在分片，返回解锁函数
func (s *AssessmentService) lock(sid string) func() {
	h := fnv.New32a()
	h.Write([]byte(sid))
	mu := &s.locks[h.Sum32()%lockShards]
	mu.Lock()
	return mu.Unlock
}

// LoadForm 读取草稿；不存在或损坏时返回新表单
func (s *AssessmentService) LoadForm(ctx context.Context, sid string) (*AssessmentForm, error) {
	raw, err := s.Store.Get(ctx, sid, KeyAssessmentDraft)
	if errors.Is(err, session.ErrNotFound) {
		return NewForm(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}

	var draft models.AssessmentDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		logger.Warn("评估草稿无法解析，重新开始", "sid", sid, "error", err)
		return NewForm(), nil
	}
	return FormFromDraft(draft), nil
}

// SaveForm 保存草稿
func (s *AssessmentService) SaveForm(ctx context.Context, sid string, f *AssessmentForm) error {
	data, err := json.Marshal(f.Draft())
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	if err := s.Store.Set(ctx, sid, KeyAssessmentDraft, string(data)); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Update 读出草稿，执行fn后写回
func (s *AssessmentService) Update(ctx context.Context, sid string, fn func(*AssessmentForm) error) (*AssessmentForm, error) {
	defer s.lock(sid)()

	f, err := s.LoadForm(ctx, sid)
	if err != nil {
		return nil, err
	}
	if err := fn(f); err != nil {
		return nil, err
	}
	if err := s.SaveForm(ctx, sid, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Advance values为nil时只切换步骤（JSON接口逐字段修改后调用）
func (s *AssessmentService) Advance(ctx context.Context, sid string, values url.Values) (*AssessmentForm, bool, error) {
	defer s.lock(sid)()

	f, err := s.LoadForm(ctx, sid)
	if err != nil {
		return nil, false, err
	}
	if values != nil {
		if err := f.ApplyStep(values); err != nil {
			return nil, false, err
		}
	}

	if f.Next() {
		if err := s.submit(ctx, sid, f.Data); err != nil {
			return nil, false, err
		}
		return f, true, nil
	}

	metrics.AssessmentStepTransitions.WithLabelValues("next").Inc()
	if err := s.SaveForm(ctx, sid, f); err != nil {
		return nil, false, err
	}
	return f, false, nil
}

func (s *AssessmentService) Retreat(ctx context.Context, sid string, values url.Values) (*AssessmentForm, error) {
	defer s.lock(sid)()

	f, err := s.LoadForm(ctx, sid)
	if err != nil {
		return nil, err
	}
	if values != nil {
		if err := f.ApplyStep(values); err != nil {
			return nil, err
		}
	}
	if f.Back() {
		metrics.AssessmentStepTransitions.WithLabelValues("back").Inc()
	}
	if err := s.SaveForm(ctx, sid, f); err != nil {
		return nil, err
	}
	return f, nil
}

// SubmitJSON 校验后直接提交一份完整评估
func (s *AssessmentService) SubmitJSON(ctx context.Context, sid string, body []byte) (*models.Assessment, error) {
	if err := ValidateAssessmentJSON(body); err != nil {
		return nil, err
	}
	var a models.Assessment
	if err := json.Unmarshal(body, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssessment, err)
	}

	defer s.lock(sid)()
	if err := s.submit(ctx, sid, a); err != nil {
		return nil, err
	}
	return &a, nil
}

// submit 把完整评估写入会话固定键，清掉草稿，再尽力记录线索
func (s *AssessmentService) submit(ctx context.Context, sid string, a models.Assessment) error {
	a.Normalize()
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal assessment: %w", err)
	}
	if err := s.Store.Set(ctx, sid, KeyAssessmentData, string(payload)); err != nil {
		return fmt.Errorf("save assessment: %w", err)
	}
	if err := s.Store.Delete(ctx, sid, KeyAssessmentDraft); err != nil {
		logger.Warn("清除评估草稿失败", "sid", sid, "error", err)
	}

	metrics.AssessmentsSubmitted.Inc()
	logger.Info("评估已提交", "sid", sid, "firm", a.FirmName)
	s.recordLead(ctx, sid, a.FirmName, payload)
	return nil
}

func (s *AssessmentService) recordLead(ctx context.Context, sid, firm string, payload []byte) {
	if s.Recorder == nil {
		return
	}
	sub := models.AssessmentSubmission{
		ID:        uuid.NewString(),
		SessionID: sid,
		FirmName:  firm,
		Payload:   string(payload),
	}
	if err := s.Recorder.SaveSubmission(ctx, sub); err != nil {
		metrics.LeadRecordFailures.Inc()
		logger.Warn("线索记录失败", "sid", sid, "submission_id", sub.ID, "error", err)
	}
}

// LoadAssessment 读取已提交的评估
func (s *AssessmentService) LoadAssessment(ctx context.Context, sid string) (*models.Assessment, error) {
	raw, err := s.Store.Get(ctx, sid, KeyAssessmentData)
	if errors.Is(err, session.ErrNotFound) {
		return nil, ErrNoAssessment
	}
	if err != nil {
		return nil, fmt.Errorf("load assessment: %w", err)
	}

	var a models.Assessment
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		logger.Warn("已提交的评估无法解析，按未提交处理", "sid", sid, "error", err)
		return nil, ErrNoAssessment
	}
	a.Normalize()
	return &a, nil
}

// Refine 用已提交的答案预填一份新草稿，从第一步开始
func (s *AssessmentService) Refine(ctx context.Context, sid string) (*AssessmentForm, error) {
	defer s.lock(sid)()

	a, err := s.LoadAssessment(ctx, sid)
	if err != nil {
		return nil, err
	}
	f := &AssessmentForm{Step: 1, Data: a.Clone()}
	if err := s.SaveForm(ctx, sid, f); err != nil {
		return nil, err
	}
	return f, nil
}
