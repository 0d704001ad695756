package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawwork/models"
	"lawwork/services"
	"lawwork/session"
	"lawwork/views"
)

// client 模拟浏览器，保存会话cookie
type client struct {
	t      *testing.T
	router http.Handler
	cookie *http.Cookie
}

func newTestClient(t *testing.T) *client {
	t.Helper()
	store := session.NewMemoryStore(time.Hour)
	assessments := services.NewAssessmentService(store, nil)
	renderer, err := views.New()
	require.NoError(t, err)

	r := chi.NewRouter()
	RegisterRoutes(r, New(assessments, services.NewMatchService(assessments), renderer), session.Manager{
		CookieName: "lawwork_session",
		TTL:        time.Hour,
	})
	return &client{t: t, router: r}
}

func (c *client) do(method, target string, body string, contentType string) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "lawwork_session" {
			c.cookie = ck
		}
	}
	return rec
}

func (c *client) get(target string) *httptest.ResponseRecorder {
	return c.do(http.MethodGet, target, "", "")
}

func (c *client) postForm(target string, values url.Values) *httptest.ResponseRecorder {
	return c.do(http.MethodPost, target, values.Encode(), "application/x-www-form-urlencoded")
}

func (c *client) postJSON(target string, body string) models.APIResponse {
	c.t.Helper()
	rec := c.do(http.MethodPost, target, body, "application/json")
	return decodeAPI(c.t, rec)
}

func decodeAPI(t *testing.T, rec *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHomePage(t *testing.T) {
	c := newTestClient(t)
	rec := c.get("/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Get Started")
	require.NotNil(t, c.cookie)
	assert.True(t, c.cookie.HttpOnly)
}

func TestResultsWithoutAssessmentRedirects(t *testing.T) {
	c := newTestClient(t)
	rec := c.get("/results")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/assessment", rec.Header().Get("Location"))
}

func TestUnknownProfileRedirects(t *testing.T) {
	c := newTestClient(t)
	rec := c.get("/profile/does-not-exist")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/results", rec.Header().Get("Location"))

	rec = c.get("/profile/3")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Michael C.")
}

func TestAssessmentFlowHTML(t *testing.T) {
	c := newTestClient(t)

	rec := c.get("/assessment")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Section 1: Understanding Your Firm")

	// 第一步后退不动
	rec = c.postForm("/assessment", url.Values{"action": {"back"}, "firmName": {"Lopez Law"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, c.get("/assessment").Body.String(), "Section 1: Understanding Your Firm")

	steps := []url.Values{
		{"firmName": {"Lopez Law"}, "role": {"attorney"}, "practiceArea": {"immigration"}},
		{services.TaskFieldName(models.CategoryLegal, "Draft Motions"): {"3"}},
		{"supportNeeded": {"admin"}, "weeklyHours": {"part-time"}},
		{"software": {"clio", "slack"}},
		{"timeZone": {"PT"}, "availability": {"flexible"}},
	}
	for i, v := range steps {
		v.Set("action", "next")
		rec = c.postForm("/assessment", v)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/assessment", rec.Header().Get("Location"))
		assert.Contains(t, c.get("/assessment").Body.String(), template.HTMLEscapeString(models.Steps[i+1].Title))
	}

	rec = c.postForm("/assessment", url.Values{"action": {"next"}, "personality": {"independent"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/results", rec.Header().Get("Location"))

	rec = c.get("/results")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Lopez Law")
	assert.Contains(t, body, "Top Match")
	assert.Less(t, strings.Index(body, "Sarah R."), strings.Index(body, "Michael C."))

	resp := decodeAPI(t, c.get("/api/assessment"))
	require.Equal(t, models.CodeSuccess, resp.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Lopez Law", data["firmName"])
	assert.Equal(t, "independent", data["personality"])
	assert.Equal(t, []interface{}{"clio", "slack"}, data["software"])

	// 重新填写从第一步开始并保留答案
	rec = c.postForm("/assessment/refine", url.Values{})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	page := c.get("/assessment").Body.String()
	assert.Contains(t, page, "Section 1: Understanding Your Firm")
	assert.Contains(t, page, `value="Lopez Law"`)
}

func TestAssessmentInvalidPriorityRerenders(t *testing.T) {
	c := newTestClient(t)
	c.postForm("/assessment", url.Values{"action": {"next"}})

	rec := c.postForm("/assessment", url.Values{
		"action": {"next"},
		services.TaskFieldName(models.CategoryLegal, "Draft Motions"): {"9"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Section 2: Key Task Areas")
}

func TestDraftAPI(t *testing.T) {
	c := newTestClient(t)

	resp := decodeAPI(t, c.get("/api/assessment/draft"))
	require.Equal(t, models.CodeSuccess, resp.Code)
	draft := resp.Data.(map[string]interface{})
	assert.EqualValues(t, 1, draft["step"])
	assert.EqualValues(t, 6, draft["totalSteps"])
	assert.Equal(t, false, draft["canGoBack"])

	resp = c.postJSON("/api/assessment/draft/toggle", `{"field":"software","value":"clio"}`)
	require.Equal(t, models.CodeSuccess, resp.Code)
	resp = c.postJSON("/api/assessment/draft/toggle", `{"field":"software","value":"clio"}`)
	data := resp.Data.(map[string]interface{})["data"].(map[string]interface{})
	assert.Empty(t, data["software"])

	resp = c.postJSON("/api/assessment/draft/task", `{"category":"legal","task":"Draft Motions","priority":5}`)
	assert.Equal(t, models.CodeInvalidPriority, resp.Code)
	resp = c.postJSON("/api/assessment/draft/task", `{"category":"finance","task":"Payroll","priority":1}`)
	assert.Equal(t, models.CodeInvalidCategory, resp.Code)
	resp = c.postJSON("/api/assessment/draft/task", `{"category":"legal","task":"","priority":1}`)
	assert.Equal(t, models.CodeMissingParams, resp.Code)
	resp = c.postJSON("/api/assessment/draft/field", `{"field":"nickname","value":"x"}`)
	assert.Equal(t, models.CodeUnknownField, resp.Code)
	resp = c.postJSON("/api/assessment/draft/field", `not json`)
	assert.Equal(t, models.CodeInvalidParams, resp.Code)

	resp = c.postJSON("/api/assessment/draft/other", `{"category":"marketing","value":"SEO Optimization"}`)
	require.Equal(t, models.CodeSuccess, resp.Code)
	tasks := resp.Data.(map[string]interface{})["data"].(map[string]interface{})["taskSelection"].(map[string]interface{})
	assert.EqualValues(t, 2, tasks["marketing"].(map[string]interface{})["SEO Optimization"])

	resp = c.postJSON("/api/assessment/draft/back", "")
	assert.EqualValues(t, 1, resp.Data.(map[string]interface{})["step"])

	for i := 2; i <= services.TotalSteps; i++ {
		resp = c.postJSON("/api/assessment/draft/next", "")
		nav := resp.Data.(map[string]interface{})
		assert.EqualValues(t, i, nav["step"])
		assert.Nil(t, nav["redirect"])
	}
	resp = c.postJSON("/api/assessment/draft/next", "")
	assert.Equal(t, "/results", resp.Data.(map[string]interface{})["redirect"])

	resp = decodeAPI(t, c.get("/api/candidates"))
	require.Equal(t, models.CodeSuccess, resp.Code)
	candidates := resp.Data.(map[string]interface{})["candidates"].([]interface{})
	require.Len(t, candidates, 3)
	assert.Equal(t, "Top Match", candidates[0].(map[string]interface{})["badge"])
}

func TestSubmitAssessmentAPI(t *testing.T) {
	c := newTestClient(t)

	resp := decodeAPI(t, c.get("/api/candidates"))
	assert.Equal(t, models.CodeNoAssessment, resp.Code)
	assert.Equal(t, "/assessment", resp.Data.(map[string]interface{})["redirect"])

	resp = c.postJSON("/api/assessment", `{"taskSelection":{"legal":{"Draft Motions":"high"}}}`)
	assert.Equal(t, models.CodeSchemaViolation, resp.Code)
	resp = c.postJSON("/api/assessment", `{"role":["attorney","attorney"],"taskSelection":{"legal":{"Draft Motions":0,"":3}}}`)
	assert.Equal(t, models.CodeSchemaViolation, resp.Code)

	resp = c.postJSON("/api/assessment", `{"firmName":"Park & Lee","timeZone":"ET"}`)
	require.Equal(t, models.CodeSuccess, resp.Code)
	assert.Equal(t, "/results", resp.Data.(map[string]interface{})["redirect"])

	rec := c.get("/results")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Park &amp; Lee")
}

func TestCandidateAPI(t *testing.T) {
	c := newTestClient(t)

	resp := decodeAPI(t, c.get("/api/candidates/1"))
	require.Equal(t, models.CodeSuccess, resp.Code)
	p := resp.Data.(map[string]interface{})
	assert.Equal(t, "Sarah R.", p["name"])
	assert.Equal(t, "SR", p["avatar"].(map[string]interface{})["initials"])

	resp = decodeAPI(t, c.get("/api/candidates/42"))
	assert.Equal(t, models.CodeCandidateNotFound, resp.Code)
	assert.Equal(t, "/results", resp.Data.(map[string]interface{})["redirect"])
}

func TestOpsRoutes(t *testing.T) {
	c := newTestClient(t)
	rec := c.get("/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.Nil(t, c.cookie, "运维路由不下发会话")

	rec = c.get("/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "lawwork_")
}
