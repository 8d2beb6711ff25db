package session

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/aqala-site/aqala/internal/store"
)

// Key is the fixed key the active session record lives under.
const Key = "aqala-active-session"

type claims struct {
	UID string `json:"uid"`
	jwt.RegisteredClaims
}

// Manager tracks the single active session for this context. The record is an
// HS256-signed token stored in an ephemeral KV, so a tampered or expired
// record simply resolves to "no current user".
type Manager struct {
	kv     store.KV
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(kv store.KV, secret []byte) *Manager {
	return &Manager{
		kv:     kv,
		secret: secret,
		ttl:    30 * 24 * time.Hour,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Start records userID as the active session, replacing any existing one.
func (m *Manager) Start(userID string) {
	now := m.now()
	c := claims{
		UID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return
	}
	_ = m.kv.Set(Key, tok)
}

// End deletes the session record. Ending a nonexistent session is fine.
func (m *Manager) End() {
	_ = m.kv.Delete(Key)
}

// UserID returns the id referenced by the active session, if one exists and
// its record verifies.
func (m *Manager) UserID() (string, bool) {
	raw, ok := m.kv.Get(Key)
	if !ok {
		return "", false
	}
	c, err := m.parse(raw)
	if err != nil {
		return "", false
	}
	return c.UID, true
}

func (m *Manager) parse(tok string) (*claims, error) {
	t, err := jwt.ParseWithClaims(tok, &claims{}, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return m.now() }))
	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*claims); ok && t.Valid {
		return c, nil
	}
	return nil, errors.New("invalid session record")
}
