package views

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawwork/models"
	"lawwork/services"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	return r
}

func TestRenderHome(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, newRenderer(t).Render(rec, http.StatusOK, PageHome, HomePage{Stats: DefaultStats}))

	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "Connect with Top Legal Talent. Simplified.")
	assert.Contains(t, body, "94%")
	assert.Contains(t, body, "Law Firms Served")
}

func TestRenderAssessmentSteps(t *testing.T) {
	r := newRenderer(t)
	f := services.NewForm()
	require.NoError(t, f.Toggle("role", "paralegal"))
	require.NoError(t, f.SetTaskPriority(models.CategoryLegal, "Draft Motions", 3))

	for step := 1; step <= services.TotalSteps; step++ {
		f.Step = step
		rec := httptest.NewRecorder()
		require.NoError(t, r.Render(rec, http.StatusOK, PageAssessment, NewAssessmentPage(f)))
		body := rec.Body.String()
		assert.Contains(t, body, template.HTMLEscapeString(models.Steps[step-1].Title))

		switch step {
		case 1:
			assert.Contains(t, body, `value="paralegal" checked`)
			assert.Contains(t, body, `value="back" disabled`)
		case 2:
			assert.Contains(t, body, `<option value="3" selected>3 - High</option>`)
			assert.Contains(t, body, "330/year")
		case 6:
			assert.Contains(t, body, "Find Matches")
		}
	}
}

func TestRenderResultsAndProfile(t *testing.T) {
	r := newRenderer(t)
	m := services.NewMatchService(nil)

	p, err := m.Profile("1")
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	require.NoError(t, r.Render(rec, http.StatusOK, PageProfile, ProfilePage{p}))
	body := rec.Body.String()
	assert.Contains(t, body, "Sarah R.")
	assert.Contains(t, body, "Why This Match Works")
	assert.Contains(t, body, ">SR<")

	res := &services.Results{
		Assessment: models.NewAssessment(),
		Summary:    services.Summarize(models.NewAssessment()),
		Candidates: []services.RankedCandidate{{
			CandidateMatch: models.CandidateMatch{ID: "9", Name: "Test C.", MatchScore: 70},
			Rank:           1,
			Badge:          services.BadgeTopMatch,
		}},
	}
	rec = httptest.NewRecorder()
	require.NoError(t, r.Render(rec, http.StatusOK, PageResults, ResultsPage{res}))
	body = rec.Body.String()
	assert.Contains(t, body, "Top Match")
	assert.Contains(t, body, "None specified")
	assert.Contains(t, body, `href="/profile/9"`)
}

func TestRenderUnknownPage(t *testing.T) {
	err := newRenderer(t).Render(httptest.NewRecorder(), http.StatusOK, "missing.html", nil)
	assert.Error(t, err)
}
