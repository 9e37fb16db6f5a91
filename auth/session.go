package auth

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/sessions"
)

const (
	SessionName        = "storefront"
	AdminSessionKey    = "adminSession"
	CustomerSessionKey = "customerSession"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// SessionKey is the session value name that holds the role's principal id.
func (r Role) SessionKey() string {
	if r == RoleAdmin {
		return AdminSessionKey
	}
	return CustomerSessionKey
}

// LoginPath is where unauthenticated callers of the role are sent.
func (r Role) LoginPath() string {
	if r == RoleAdmin {
		return "/Admin/Login"
	}
	return "/Customer/CustomerLogin"
}

// SessionStore keeps principal ids and flash messages in a signed cookie.
type SessionStore struct {
	store sessions.Store
}

func NewSessionStore(secret string, maxAge time.Duration, secure bool) *SessionStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(int(maxAge.Seconds()))
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = secure
	store.Options.SameSite = http.SameSiteLaxMode
	return &SessionStore{store: store}
}

// session never returns nil; a cookie that fails to decode yields a fresh
// session.
func (s *SessionStore) session(r *http.Request) *sessions.Session {
	sess, err := s.store.Get(r, SessionName)
	if err != nil || sess == nil {
		sess = sessions.NewSession(s.store, SessionName)
		sess.IsNew = true
	}
	return sess
}

// PrincipalID returns the id stored for role, or false when absent or not
// a positive integer.
func (s *SessionStore) PrincipalID(r *http.Request, role Role) (uint, bool) {
	raw, ok := s.session(r).Values[role.SessionKey()].(string)
	if !ok || raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// SignIn records id as the role's principal.
func (s *SessionStore) SignIn(w http.ResponseWriter, r *http.Request, role Role, id uint) error {
	sess := s.session(r)
	sess.Values[role.SessionKey()] = strconv.FormatUint(uint64(id), 10)
	return sess.Save(r, w)
}

// SignOut forgets the role's principal and leaves other roles signed in.
func (s *SessionStore) SignOut(w http.ResponseWriter, r *http.Request, role Role) error {
	sess := s.session(r)
	delete(sess.Values, role.SessionKey())
	return sess.Save(r, w)
}

// AddFlash queues a one-shot message under kind ("success" or "error").
func (s *SessionStore) AddFlash(w http.ResponseWriter, r *http.Request, kind, message string) error {
	sess := s.session(r)
	sess.AddFlash(message, kind)
	return sess.Save(r, w)
}

// Flashes pops every message queued under kind.
func (s *SessionStore) Flashes(w http.ResponseWriter, r *http.Request, kind string) []string {
	sess := s.session(r)
	raw := sess.Flashes(kind)
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save(r, w)

	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			out = append(out, msg)
		}
	}
	return out
}
