package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/willowworks/batrack/internal/model"
	"github.com/willowworks/batrack/internal/repository"
)

const sessionCookieName = "session_token"

// SessionService manages server-side sessions and the flash messages they
// carry. The client holds a signed cookie whose only claim is the session ID;
// the database row is authoritative, so deleting it invalidates the cookie
// regardless of its expiry.
type SessionService struct {
	sessionRepository repository.SessionRepository
	secret            string
	isProduction      bool
	expiry            time.Duration
}

func NewSessionService(sessionRepository repository.SessionRepository, secret string, isProduction bool, expiry time.Duration) *SessionService {
	return &SessionService{
		sessionRepository: sessionRepository,
		secret:            secret,
		isProduction:      isProduction,
		expiry:            expiry,
	}
}

// Issue creates a session row and hands the client a signed cookie for it.
// userID is nil for anonymous sessions.
func (s *SessionService) Issue(w http.ResponseWriter, userID *string) (*model.Session, error) {
	session := &model.Session{
		UserID:    userID,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(s.expiry),
	}

	err := s.sessionRepository.Create(session)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.signSessionID(session.ID, session.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session: %w", err)
	}

	s.setCookie(w, token, session.ExpiresAt)
	return session, nil
}

// FromRequest resolves the session referenced by the request cookie. A
// missing cookie, a bad signature or a deleted/expired row all yield
// ErrSessionNotFound.
func (s *SessionService) FromRequest(r *http.Request) (*model.Session, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil, repository.ErrSessionNotFound
	}

	sessionID, err := s.verifySessionToken(cookie.Value)
	if err != nil {
		return nil, repository.ErrSessionNotFound
	}

	return s.sessionRepository.ByID(sessionID)
}

// Login binds a fresh session to the principal. Any session the client
// already had is discarded, so a pre-login session ID never survives
// authentication.
func (s *SessionService) Login(w http.ResponseWriter, r *http.Request, userID string) (*model.Session, error) {
	existing, err := s.FromRequest(r)
	if err == nil {
		delErr := s.sessionRepository.Delete(existing.ID)
		if delErr != nil {
			slog.Warn("failed to delete pre-login session", "error", delErr, "session_id", existing.ID)
		}
	}

	return s.Issue(w, &userID)
}

// Logout invalidates the session and clears the cookie. Logging out without
// a session is fine; the operation is idempotent.
func (s *SessionService) Logout(w http.ResponseWriter, r *http.Request) error {
	session, err := s.FromRequest(r)
	if err == nil {
		err = s.sessionRepository.Delete(session.ID)
		if err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
	}

	s.clearCookie(w)
	return nil
}

// AddFlash queues a one-shot notification on the request's session, creating
// an anonymous session when the client has none yet.
func (s *SessionService) AddFlash(w http.ResponseWriter, r *http.Request, level, message string) {
	session, err := s.FromRequest(r)
	if err != nil {
		session, err = s.Issue(w, nil)
		if err != nil {
			slog.Error("failed to create session for flash", "error", err)
			return
		}
	}

	flashes, err := decodeFlashes(session.Flash)
	if err != nil {
		slog.Warn("corrupt flash payload, resetting", "error", err, "session_id", session.ID)
		flashes = nil
	}

	flashes = append(flashes, model.Flash{Level: level, Message: message})

	err = s.storeFlashes(session.ID, flashes)
	if err != nil {
		slog.Error("failed to store flash", "error", err, "session_id", session.ID)
	}
}

// PopFlashes returns the session's queued notifications and clears them.
func (s *SessionService) PopFlashes(session *model.Session) []model.Flash {
	flashes, err := decodeFlashes(session.Flash)
	if err != nil {
		slog.Warn("corrupt flash payload, dropping", "error", err, "session_id", session.ID)
		flashes = nil
	}

	if len(flashes) == 0 {
		return nil
	}

	err = s.storeFlashes(session.ID, nil)
	if err != nil {
		slog.Error("failed to clear flashes", "error", err, "session_id", session.ID)
	}

	return flashes
}

func (s *SessionService) storeFlashes(sessionID string, flashes []model.Flash) error {
	if flashes == nil {
		flashes = []model.Flash{}
	}

	encoded, err := json.Marshal(flashes)
	if err != nil {
		return err
	}

	return s.sessionRepository.UpdateFlash(sessionID, string(encoded))
}

func decodeFlashes(raw string) ([]model.Flash, error) {
	if raw == "" || raw == "[]" {
		return nil, nil
	}

	var flashes []model.Flash
	err := json.Unmarshal([]byte(raw), &flashes)
	if err != nil {
		return nil, err
	}

	return flashes, nil
}

func (s *SessionService) signSessionID(sessionID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func (s *SessionService) verifySessionToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return "", fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid session token")
	}

	sessionID, ok := claims["sid"].(string)
	if !ok || sessionID == "" {
		return "", errors.New("session token missing sid")
	}

	return sessionID, nil
}

func (s *SessionService) setCookie(w http.ResponseWriter, token string, expiry time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Expires:  expiry,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *SessionService) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}
