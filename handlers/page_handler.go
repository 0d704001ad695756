package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lawwork/logger"
	"lawwork/metrics"
	"lawwork/services"
	"lawwork/views"
)

func (h *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.PageHome, views.HomePage{Stats: views.DefaultStats})
}

// AssessmentPage 显示草稿当前所在的步骤
func (h *Handler) AssessmentPage(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	f, err := h.Assessments.LoadForm(r.Context(), sid)
	if err != nil {
		logger.Error("读取评估草稿失败", "sid", sid, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.render(w, r, http.StatusOK, views.PageAssessment, views.NewAssessmentPage(f))
}

// AssessmentSubmit 保存本步骤的输入，再按action前进或后退
func (h *Handler) AssessmentSubmit(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var (
		complete bool
		err      error
	)
	if r.PostForm.Get("action") == "back" {
		_, err = h.Assessments.Retreat(r.Context(), sid, r.PostForm)
	} else {
		_, complete, err = h.Assessments.Advance(r.Context(), sid, r.PostForm)
	}

	if err != nil {
		if !isClientError(err) {
			logger.Error("保存评估步骤失败", "sid", sid, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		f, loadErr := h.Assessments.LoadForm(r.Context(), sid)
		if loadErr != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		page := views.NewAssessmentPage(f)
		page.Error = "Some answers could not be saved. Please review this step and try again."
		h.render(w, r, http.StatusBadRequest, views.PageAssessment, page)
		return
	}

	if complete {
		http.Redirect(w, r, pathResults, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, pathAssessment, http.StatusSeeOther)
}

// RefineAssessment 以已提交的答案重新开始填写
func (h *Handler) RefineAssessment(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if _, err := h.Assessments.Refine(r.Context(), sid); err != nil && !errors.Is(err, services.ErrNoAssessment) {
		logger.Error("重新填写评估失败", "sid", sid, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, pathAssessment, http.StatusSeeOther)
}

// ResultsPage 没有已提交的评估时回到评估页
func (h *Handler) ResultsPage(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	res, err := h.Matches.Results(r.Context(), sid)
	if errors.Is(err, services.ErrNoAssessment) {
		redirect(w, r, pathAssessment, "no_assessment")
		return
	}
	if err != nil {
		logger.Error("读取结果失败", "sid", sid, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	metrics.ResultsViews.Inc()
	h.render(w, r, http.StatusOK, views.PageResults, views.ResultsPage{Results: res})
}

// ProfilePage 未知ID回到结果页
func (h *Handler) ProfilePage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.Matches.Profile(id)
	if errors.Is(err, services.ErrCandidateNotFound) {
		logger.Debug("候选人不存在", "id", id)
		redirect(w, r, pathResults, "unknown_candidate")
		return
	}
	if err != nil {
		logger.Error("读取候选人失败", "id", id, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	metrics.ProfileViews.WithLabelValues(p.ID).Inc()
	h.render(w, r, http.StatusOK, views.PageProfile, views.ProfilePage{ProfileView: p})
}
