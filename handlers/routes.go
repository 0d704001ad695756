package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "lawwork/docs" // 导入 swagger 文档
	"lawwork/session"
)

// HealthHandler godoc
// @Summary 存活检查
// @Tags 运维
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// RegisterRoutes 页面和接口需要会话，运维路由不需要
func RegisterRoutes(r chi.Router, h *Handler, sessions session.Manager) {
	// Swagger 文档
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // Swagger JSON 的 URL
	))
	r.Get("/healthz", HealthHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(sessions.Middleware)

		r.Get("/", h.HomePage)
		r.Get("/assessment", h.AssessmentPage)
		r.Post("/assessment", h.AssessmentSubmit)
		r.Post("/assessment/refine", h.RefineAssessment)
		r.Get("/results", h.ResultsPage)
		r.Get("/profile/{id}", h.ProfilePage)

		r.Route("/api", func(r chi.Router) {
			r.Get("/assessment/draft", h.GetDraftHandler)
			r.Post("/assessment/draft/toggle", h.ToggleHandler)
			r.Post("/assessment/draft/task", h.TaskPriorityHandler)
			r.Post("/assessment/draft/other", h.OtherOptionHandler)
			r.Post("/assessment/draft/field", h.FieldHandler)
			r.Post("/assessment/draft/next", h.NextHandler)
			r.Post("/assessment/draft/back", h.BackHandler)

			r.Get("/assessment", h.GetAssessmentHandler)
			r.Post("/assessment", h.SubmitAssessmentHandler)

			r.Get("/candidates", h.ListCandidatesHandler)
			r.Get("/candidates/{id}", h.GetCandidateHandler)
		})
	})
}
