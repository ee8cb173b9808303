package auth

import (
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"

	"github.com/buffetops/buffet/internal/config"
)

// SessionCookieName is the cookie that carries the signed session payload.
const SessionCookieName = "buffet_session"

// SessionKeyUserID is the payload key holding the authenticated user's ID.
const SessionKeyUserID = "userId"

// DefaultSessionLifetime is used when no lifetime is configured (30 days).
const DefaultSessionLifetime = 30 * 24 * time.Hour

var ErrBadSessionSecret = errors.New("session secret must be hex-encoded")

// SessionCodec signs (and optionally encrypts) a small string map into an
// opaque cookie value and reverses the process on read. It holds no
// server-side state; expiry is embedded in the issued value itself.
type SessionCodec struct {
	sc       *securecookie.SecureCookie
	lifetime time.Duration
	secure   bool
}

// NewSessionCodec creates a codec from the configured secrets. The signing
// secret is required; the encryption key is optional (signed-only cookies
// when absent).
func NewSessionCodec(cfg config.Auth) (*SessionCodec, error) {
	hashKey, err := hex.DecodeString(cfg.SessionSecret)
	if err != nil || len(hashKey) == 0 {
		return nil, ErrBadSessionSecret
	}

	var blockKey []byte
	if cfg.SessionKey != "" {
		blockKey, err = hex.DecodeString(cfg.SessionKey)
		if err != nil {
			return nil, ErrBadSessionSecret
		}
	}

	lifetime := cfg.SessionLifetime
	if lifetime <= 0 {
		lifetime = DefaultSessionLifetime
	}

	sc := securecookie.New(hashKey, blockKey)
	sc.MaxAge(int(lifetime.Seconds()))

	return &SessionCodec{
		sc:       sc,
		lifetime: lifetime,
		secure:   cfg.SecureCookies,
	}, nil
}

// Issue serializes and signs the payload into a transport-safe cookie value.
func (c *SessionCodec) Issue(payload map[string]string) (string, error) {
	return c.sc.Encode(SessionCookieName, payload)
}

// Read verifies and decodes a cookie value. Tampered, expired or empty
// values all come back as an empty payload, never an error.
func (c *SessionCodec) Read(value string) map[string]string {
	payload := map[string]string{}
	if value == "" {
		return payload
	}
	if err := c.sc.Decode(SessionCookieName, value, &payload); err != nil {
		return map[string]string{}
	}
	return payload
}

// ReadRequest extracts and decodes the session cookie from a request.
// A missing cookie yields an empty payload.
func (c *SessionCodec) ReadRequest(r *http.Request) map[string]string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return map[string]string{}
	}
	return c.Read(cookie.Value)
}

// SetCookie writes the session cookie onto the response.
func (c *SessionCodec) SetCookie(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(c.lifetime.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie instructs the client to drop the session cookie immediately.
func (c *SessionCodec) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
