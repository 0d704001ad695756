package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawwork/models"
)

func TestResultsRequiresAssessment(t *testing.T) {
	svc, _ := newTestService(t, nil)
	_, err := NewMatchService(svc).Results(context.Background(), testSID)
	assert.ErrorIs(t, err, ErrNoAssessment)
}

func TestResultsRankedWithBadges(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()
	_, err := svc.SubmitJSON(ctx, testSID, []byte(`{"firmName":"Acme","supportNeeded":["admin"]}`))
	require.NoError(t, err)

	res, err := NewMatchService(svc).Results(ctx, testSID)
	require.NoError(t, err)
	require.Len(t, res.Candidates, 3)

	assert.Equal(t, BadgeTopMatch, res.Candidates[0].Badge)
	for i, c := range res.Candidates {
		assert.Equal(t, i+1, c.Rank)
		if i > 0 {
			assert.Equal(t, BadgeGreatFit, c.Badge)
			assert.GreaterOrEqual(t, res.Candidates[i-1].MatchScore, c.MatchScore)
		}
	}
	assert.Equal(t, "SR", res.Candidates[0].Avatar.Initials)

	assert.Equal(t, "Acme", res.Summary.Firm)
	assert.Equal(t, "N/A", res.Summary.PracticeArea)
	assert.True(t, res.Summary.HasSupport())
	assert.Equal(t, "Not specified", res.Summary.TimeZone)
}

func TestSummarizeDefaults(t *testing.T) {
	s := Summarize(models.NewAssessment())
	assert.Equal(t, "Not specified", s.Firm)
	assert.Equal(t, "N/A", s.Role)
	assert.False(t, s.HasSupport())
	assert.Equal(t, "Not specified", s.WeeklyHours)

	a := models.NewAssessment()
	a.PracticeArea = []string{"civil", "criminal"}
	assert.Equal(t, "civil, criminal", Summarize(a).PracticeArea)
}

func TestProfile(t *testing.T) {
	m := NewMatchService(nil)

	p, err := m.Profile("2")
	require.NoError(t, err)
	assert.Equal(t, "David L.", p.Name)
	assert.Equal(t, "DL", p.Avatar.Initials)
	assert.Equal(t, "2+", p.QuickInfo.Experience)
	assert.Equal(t, 2, p.QuickInfo.Certifications)
	assert.Equal(t, "5+", p.QuickInfo.SoftwareTools)
	assert.Len(t, p.WhyMatch, 4)

	_, err = m.Profile("99")
	assert.ErrorIs(t, err, ErrCandidateNotFound)
}
