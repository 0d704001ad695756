package session

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ctxKey struct{}

// Manager 负责会话cookie的读取与下发
type Manager struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// Read 返回cookie中合法的会话ID
func (m Manager) Read(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(m.CookieName)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if _, err := uuid.Parse(value); err != nil {
		return "", false
	}
	return value, true
}

// Write 下发会话cookie，每次请求都会顺延过期时间
func (m Manager) Write(w http.ResponseWriter, sid string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.CookieName,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(m.TTL.Seconds()),
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Middleware 保证每个请求都有会话ID，并放入context
func (m Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid, ok := m.Read(r)
		if !ok {
			sid = uuid.NewString()
		}
		m.Write(w, sid)
		next.ServeHTTP(w, r.WithContext(WithID(r.Context(), sid)))
	})
}

// WithID 把会话ID放入context
func WithID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, ctxKey{}, sid)
}

// IDFromContext 取出会话ID
func IDFromContext(ctx context.Context) (string, bool) {
	sid, ok := ctx.Value(ctxKey{}).(string)
	return sid, ok && sid != ""
}
