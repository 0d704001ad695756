package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lawwork/models"
	"lawwork/services"
	"lawwork/utils"
)

// apiSessionID 取会话ID，失败时写出错误响应
func apiSessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	sid, ok := sessionID(r)
	if !ok {
		utils.WriteErrorResponse(w, models.CodeSessionError, map[string]interface{}{})
	}
	return sid, ok
}

func draftResponse(f *services.AssessmentForm) models.DraftResponse {
	info := f.Info()
	return models.DraftResponse{
		Step:        f.Step,
		TotalSteps:  services.TotalSteps,
		Title:       info.Title,
		Description: info.Description,
		CanGoBack:   !f.IsFirst(),
		Data:        f.Data,
	}
}

// updateDraft 解析请求体后对草稿做一次修改
func (h *Handler) updateDraft(w http.ResponseWriter, r *http.Request, req interface{}, apply func(*services.AssessmentForm) error) {
	sid, ok := apiSessionID(w, r)
	if !ok {
		return
	}
	if !utils.DecodeJSONBody(w, r, req) {
		return
	}
	f, err := h.Assessments.Update(r.Context(), sid, apply)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, draftResponse(f))
}

// GetDraftHandler godoc
// @Summary 获取填写中的评估
// @Description 返回当前步骤、步骤标题和已填写的答案；没有草稿时从第一步开始
// @Tags 评估
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.DraftResponse} "成功"
// @Router /api/assessment/draft [get]
func (h *Handler) GetDraftHandler(w http.ResponseWriter, r *http.Request) {
	sid, ok := apiSessionID(w, r)
	if !ok {
		return
	}
	f, err := h.Assessments.LoadForm(r.Context(), sid)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, draftResponse(f))
}

// ToggleHandler godoc
// @Summary 切换多选项
// @Description 值不存在时加入，存在时移除。字段: role / practiceArea / supportNeeded / software
// @Tags 评估
// @Accept json
// @Produce json
// @Param body body models.ToggleRequest true "字段和值"
// @Success 200 {object} models.APIResponse{data=models.DraftResponse} "成功"
// @Failure 200 {object} models.APIResponse "1006: 未知字段"
// @Router /api/assessment/draft/toggle [post]
func (h *Handler) ToggleHandler(w http.ResponseWriter, r *http.Request) {
	var req models.ToggleRequest
	h.updateDraft(w, r, &req, func(f *services.AssessmentForm) error {
		return f.Toggle(req.Field, req.Value)
	})
}

// TaskPriorityHandler godoc
// @Summary 设置任务优先级
// @Description 优先级0-3，0表示移除该任务
// @Tags 评估
// @Accept json
// @Produce json
// @Param body body models.TaskPriorityRequest true "栏目、任务和优先级"
// @Success 200 {object} models.APIResponse{data=models.DraftResponse} "成功"
// @Failure 200 {object} models.APIResponse "1001: 缺少任务名; 1004: 未知栏目; 1005: 优先级超出范围"
// @Router /api/assessment/draft/task [post]
func (h *Handler) TaskPriorityHandler(w http.ResponseWriter, r *http.Request) {
	var req models.TaskPriorityRequest
	h.updateDraft(w, r, &req, func(f *services.AssessmentForm) error {
		return f.SetTaskPriority(models.TaskCategory(req.Category), req.Task, req.Priority)
	})
}

// OtherOptionHandler godoc
// @Summary 选择栏目中的Other任务
// @Description 非空值会以中等优先级(2)加入该栏目的任务
// @Tags 评估
// @Accept json
// @Produce json
// @Param body body models.OtherOptionRequest true "栏目和任务"
// @Success 200 {object} models.APIResponse{data=models.DraftResponse} "成功"
// @Failure 200 {object} models.APIResponse "1004: 未知栏目"
// @Router /api/assessment/draft/other [post]
func (h *Handler) OtherOptionHandler(w http.ResponseWriter, r *http.Request) {
	var req models.OtherOptionRequest
	h.updateDraft(w, r, &req, func(f *services.AssessmentForm) error {
		return f.SetOtherOption(models.TaskCategory(req.Category), req.Value)
	})
}

// FieldHandler godoc
// @Summary 设置单值字段
// @Description 字段: firmName / weeklyHours / timeZone / availability / personality
// @Tags 评估
// @Accept json
// @Produce json
// @Param body body models.FieldRequest true "字段和值"
// @Success 200 {object} models.APIResponse{data=models.DraftResponse} "成功"
// @Failure 200 {object} models.APIResponse "1006: 未知字段"
// @Router /api/assessment/draft/field [post]
func (h *Handler) FieldHandler(w http.ResponseWriter, r *http.Request) {
	var req models.FieldRequest
	h.updateDraft(w, r, &req, func(f *services.AssessmentForm) error {
		return f.SetField(req.Field, req.Value)
	})
}

// NextHandler godoc
// @Summary 前进一步
// @Description 最后一步时提交评估，返回 redirect=/results
// @Tags 评估
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.NavigationResponse} "成功"
// @Router /api/assessment/draft/next [post]
func (h *Handler) NextHandler(w http.ResponseWriter, r *http.Request) {
	sid, ok := apiSessionID(w, r)
	if !ok {
		return
	}
	f, complete, err := h.Assessments.Advance(r.Context(), sid, nil)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	resp := models.NavigationResponse{Step: f.Step}
	if complete {
		resp.Redirect = pathResults
	}
	utils.WriteSuccessResponse(w, resp)
}

// BackHandler godoc
// @Summary 后退一步
// @Description 第一步时不变
// @Tags 评估
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.NavigationResponse} "成功"
// @Router /api/assessment/draft/back [post]
func (h *Handler) BackHandler(w http.ResponseWriter, r *http.Request) {
	sid, ok := apiSessionID(w, r)
	if !ok {
		return
	}
	f, err := h.Assessments.Retreat(r.Context(), sid, nil)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, models.NavigationResponse{Step: f.Step})
}

// SubmitAssessmentHandler godoc
// @Summary 直接提交完整评估
// @Description 请求体按JSON schema校验后原样保存到会话
// @Tags 评估
// @Accept json
// @Produce json
// @Param body body models.Assessment true "评估答案"
// @Success 200 {object} models.APIResponse{data=models.NavigationResponse} "成功"
// @Failure 200 {object} models.APIResponse "1007: 校验失败"
// @Router /api/assessment [post]
func (h *Handler) SubmitAssessmentHandler(w http.ResponseWriter, r *http.Request) {
	sid, ok := apiSessionID(w, r)
	if !ok {
		return
	}
	body, ok := utils.ReadBody(w, r)
	if !ok {
		return
	}
	if _, err := h.Assessments.SubmitJSON(r.Context(), sid, body); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, models.NavigationResponse{Step: services.TotalSteps, Redirect: pathResults})
}

// GetAssessmentHandler godoc
// @Summary 获取已提交的评估
// @Tags 评估
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.Assessment} "成功"
// @Failure 200 {object} models.APIResponse "1002: 没有评估数据"
// @Router /api/assessment [get]
func (h *Handler) GetAssessmentHandler(w http.ResponseWriter, r *http.Request) {
	sid, ok := apiSessionID(w, r)
	if !ok {
		return
	}
	a, err := h.Assessments.LoadAssessment(r.Context(), sid)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, a)
}

// ListCandidatesHandler godoc
// @Summary 获取匹配的候选人
// @Description 需要先提交评估，按匹配分降序
// @Tags 候选人
// @Produce json
// @Success 200 {object} models.APIResponse{data=services.Results} "成功"
// @Failure 200 {object} models.APIResponse "1002: 没有评估数据"
// @Router /api/candidates [get]
func (h *Handler) ListCandidatesHandler(w http.ResponseWriter, r *http.Request) {
	sid, ok := apiSessionID(w, r)
	if !ok {
		return
	}
	res, err := h.Matches.Results(r.Context(), sid)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, res)
}

// GetCandidateHandler godoc
// @Summary 获取候选人详情
// @Tags 候选人
// @Produce json
// @Param id path string true "候选人ID"
// @Success 200 {object} models.APIResponse{data=services.ProfileView} "成功"
// @Failure 200 {object} models.APIResponse "1003: 候选人不存在"
// @Router /api/candidates/{id} [get]
func (h *Handler) GetCandidateHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !utils.RequireParam(w, "id", id) {
		return
	}
	p, err := h.Matches.Profile(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, p)
}
