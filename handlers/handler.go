package handlers

import (
	"errors"
	"net/http"

	"lawwork/logger"
	"lawwork/metrics"
	"lawwork/models"
	"lawwork/services"
	"lawwork/session"
	"lawwork/utils"
	"lawwork/views"
)

// 重定向目标
const (
	pathAssessment = "/assessment"
	pathResults    = "/results"
)

// Handler 页面和接口共用的依赖
type Handler struct {
	Assessments services.AssessmentFlow
	Matches     services.Matcher
	Views       *views.Renderer
}

func New(assessments services.AssessmentFlow, matches services.Matcher, renderer *views.Renderer) *Handler {
	return &Handler{Assessments: assessments, Matches: matches, Views: renderer}
}

func redirect(w http.ResponseWriter, r *http.Request, target, reason string) {
	metrics.Redirects.WithLabelValues(reason).Inc()
	http.Redirect(w, r, target, http.StatusFound)
}

// render 模板出错时只能返回500
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data interface{}) {
	if err := h.Views.Render(w, status, page, data); err != nil {
		logger.Error("页面渲染失败", "page", page, "path", r.URL.Path, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// sessionID 会话中间件保证存在；缺失说明路由没有挂中间件
func sessionID(r *http.Request) (string, bool) {
	sid, ok := session.IDFromContext(r.Context())
	if !ok {
		logger.Error("请求缺少会话ID", "path", r.URL.Path)
	}
	return sid, ok
}

// isClientError 表单输入导致的错误
func isClientError(err error) bool {
	return errors.Is(err, services.ErrInvalidCategory) ||
		errors.Is(err, services.ErrMissingTask) ||
		errors.Is(err, services.ErrInvalidPriority) ||
		errors.Is(err, services.ErrUnknownField) ||
		errors.Is(err, services.ErrInvalidSetField) ||
		errors.Is(err, services.ErrInvalidAssessment)
}

// writeServiceError 把服务层错误映射为响应码
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNoAssessment):
		utils.WriteErrorResponse(w, models.CodeNoAssessment, map[string]interface{}{
			"redirect": pathAssessment,
		})
	case errors.Is(err, services.ErrCandidateNotFound):
		utils.WriteErrorResponse(w, models.CodeCandidateNotFound, map[string]interface{}{
			"redirect": pathResults,
		})
	case errors.Is(err, services.ErrMissingTask):
		utils.WriteErrorResponse(w, models.CodeMissingParams, map[string]interface{}{
			"param": "task",
		})
	case errors.Is(err, services.ErrInvalidCategory):
		utils.WriteErrorResponse(w, models.CodeInvalidCategory, map[string]interface{}{})
	case errors.Is(err, services.ErrInvalidPriority):
		utils.WriteErrorResponse(w, models.CodeInvalidPriority, map[string]interface{}{})
	case errors.Is(err, services.ErrUnknownField), errors.Is(err, services.ErrInvalidSetField):
		utils.WriteCustomErrorResponse(w, models.CodeUnknownField, err.Error(), map[string]interface{}{})
	case errors.Is(err, services.ErrInvalidAssessment):
		utils.WriteCustomErrorResponse(w, models.CodeSchemaViolation, err.Error(), map[string]interface{}{})
	default:
		logger.Error("请求处理失败", "error", err)
		utils.WriteCustomErrorResponse(w, models.CodeServerError, err.Error(), map[string]interface{}{})
	}
}
