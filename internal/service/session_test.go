package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willowworks/batrack/internal/model"
	"github.com/willowworks/batrack/internal/repository"
)

func newSessionService(t *testing.T, secret string) (*SessionService, repository.SessionRepository) {
	t.Helper()
	repo := repository.NewSessionRepository(setupDB(t))
	return NewSessionService(repo, secret, false, time.Hour), repo
}

// requestWithCookies copies the Set-Cookie headers of a previous response
// onto a fresh request, standing in for the browser.
func requestWithCookies(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	return req
}

func TestSession_IssueAndResolve(t *testing.T) {
	sessions, _ := newSessionService(t, "test-secret")

	rec := httptest.NewRecorder()
	issued, err := sessions.Issue(rec, nil)
	require.NoError(t, err)
	require.NotEmpty(t, issued.ID)

	got, err := sessions.FromRequest(requestWithCookies(rec))
	require.NoError(t, err)
	assert.Equal(t, issued.ID, got.ID)
	assert.False(t, got.IsAuthenticated())
}

func TestSession_NoCookie(t *testing.T) {
	sessions, _ := newSessionService(t, "test-secret")

	_, err := sessions.FromRequest(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSession_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	sessions, repo := newSessionService(t, "real-secret")
	forger := NewSessionService(repo, "other-secret", false, time.Hour)

	rec := httptest.NewRecorder()
	_, err := forger.Issue(rec, nil)
	require.NoError(t, err)

	// The row exists, but the cookie signature does not verify
	_, err = sessions.FromRequest(requestWithCookies(rec))
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSession_DeletedRowInvalidatesCookie(t *testing.T) {
	sessions, repo := newSessionService(t, "test-secret")

	rec := httptest.NewRecorder()
	issued, err := sessions.Issue(rec, nil)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(issued.ID))

	_, err = sessions.FromRequest(requestWithCookies(rec))
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSession_LoginDiscardsPreviousSession(t *testing.T) {
	sessions, repo := newSessionService(t, "test-secret")

	anonRec := httptest.NewRecorder()
	anon, err := sessions.Issue(anonRec, nil)
	require.NoError(t, err)

	loginRec := httptest.NewRecorder()
	loginReq := requestWithCookies(anonRec)
	authed, err := sessions.Login(loginRec, loginReq, "user-1")
	require.NoError(t, err)

	assert.NotEqual(t, anon.ID, authed.ID)
	require.NotNil(t, authed.UserID)
	assert.Equal(t, "user-1", *authed.UserID)

	_, err = repo.ByID(anon.ID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSession_LogoutDeletesRowAndIsIdempotent(t *testing.T) {
	sessions, repo := newSessionService(t, "test-secret")

	rec := httptest.NewRecorder()
	issued, err := sessions.Issue(rec, nil)
	require.NoError(t, err)

	logoutRec := httptest.NewRecorder()
	require.NoError(t, sessions.Logout(logoutRec, requestWithCookies(rec)))

	_, err = repo.ByID(issued.ID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	// No cookie at all is also fine
	require.NoError(t, sessions.Logout(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)))
}

func TestSession_FlashLifecycle(t *testing.T) {
	sessions, _ := newSessionService(t, "test-secret")

	// No session yet: AddFlash creates an anonymous one and sets the cookie
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	sessions.AddFlash(rec, req, model.FlashSuccess, "You are now registered and can log in")

	session, err := sessions.FromRequest(requestWithCookies(rec))
	require.NoError(t, err)

	flashes := sessions.PopFlashes(session)
	require.Len(t, flashes, 1)
	assert.Equal(t, model.FlashSuccess, flashes[0].Level)
	assert.Equal(t, "You are now registered and can log in", flashes[0].Message)

	// Popped once, gone after
	session, err = sessions.FromRequest(requestWithCookies(rec))
	require.NoError(t, err)
	assert.Empty(t, sessions.PopFlashes(session))
}

func TestSession_FlashesAccumulateInOrder(t *testing.T) {
	sessions, _ := newSessionService(t, "test-secret")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	sessions.AddFlash(rec, req, model.FlashError, "first")

	followup := requestWithCookies(rec)
	sessions.AddFlash(httptest.NewRecorder(), followup, model.FlashSuccess, "second")

	session, err := sessions.FromRequest(requestWithCookies(rec))
	require.NoError(t, err)

	flashes := sessions.PopFlashes(session)
	require.Len(t, flashes, 2)
	assert.Equal(t, "first", flashes[0].Message)
	assert.Equal(t, "second", flashes[1].Message)
}

func TestSession_CookieAttributes(t *testing.T) {
	sessions, _ := newSessionService(t, "test-secret")

	rec := httptest.NewRecorder()
	_, err := sessions.Issue(rec, nil)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, "session_token", cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure) // not production
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
}
