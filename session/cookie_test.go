package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareIssuesAndReusesID(t *testing.T) {
	m := Manager{CookieName: "lawwork_session", TTL: time.Hour}

	var seen string
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid, ok := IDFromContext(r.Context())
		require.True(t, ok)
		seen = sid
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(seen)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, seen, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)

	first := seen
	req := httptest.NewRequest(http.MethodGet, "/results", nil)
	req.AddCookie(&http.Cookie{Name: "lawwork_session", Value: first})
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, first, seen)
}

func TestReadRejectsMalformedID(t *testing.T) {
	m := Manager{CookieName: "lawwork_session"}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "lawwork_session", Value: "../../etc"})
	_, ok := m.Read(req)
	assert.False(t, ok)
}
