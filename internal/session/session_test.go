package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func requestWithCookies(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestIssueAndGet(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	rec := httptest.NewRecorder()

	err := m.Issue(rec, Session{Token: "backend-token", Username: "alice", Role: "admin"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	sess, err := m.Get(requestWithCookies(t, rec))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sess.Token != "backend-token" {
		t.Errorf("expected token 'backend-token', got %q", sess.Token)
	}
	if sess.Username != "alice" || sess.Role != "admin" {
		t.Errorf("unexpected session: %+v", sess)
	}
}

func TestGetWithoutCookie(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.Get(httptest.NewRequest("GET", "/", nil))
	if err != ErrNoSession {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
}

func TestGetRejectsWrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour)
	rec := httptest.NewRecorder()
	issuer.Issue(rec, Session{Token: "tok", Username: "alice", Role: "user"})

	verifier := NewManager("secret-b", time.Hour)
	if _, err := verifier.Get(requestWithCookies(t, rec)); err != ErrNoSession {
		t.Errorf("expected ErrNoSession for mismatched secret, got %v", err)
	}
}

func TestGetRejectsExpired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)
	rec := httptest.NewRecorder()
	m.Issue(rec, Session{Token: "tok", Username: "alice", Role: "user"})

	if _, err := m.Get(requestWithCookies(t, rec)); err != ErrNoSession {
		t.Errorf("expected ErrNoSession for expired session, got %v", err)
	}
}

func TestClear(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	rec := httptest.NewRecorder()
	m.Clear(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].Value != "" || cookies[0].MaxAge != -1 {
		t.Errorf("expected cleared cookie, got %+v", cookies[0])
	}
}
