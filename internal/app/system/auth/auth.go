// internal/app/system/auth/auth.go

// Package auth manages the cookie session: the shared-password admin flag
// and the short-lived row-edit grant issued by pinguard.
//
// There is no per-user identity in this system. "Signed in" means only that
// the operator typed the shared admin password this session, and the only
// other session state is the current edit grant.
package auth

import (
	"fmt"
	"net/http"

	"github.com/dalemusser/agendahub/internal/app/system/pinguard"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	isAdminKey = "is_admin"
	grantKey   = "edit_grant"
)

// SessionManager wraps the cookie store and the grant codec.
type SessionManager struct {
	store *sessions.CookieStore
	codec *securecookie.SecureCookie
	name  string
	log   *zap.Logger
}

// NewSessionManager builds the session store. The `secure` flag controls
// whether cookies are marked Secure; enable it in production.
func NewSessionManager(sessionKey, name, domain string, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	// The edit grant is serialized and signed separately so it stays an
	// opaque token inside the session values.
	codec := securecookie.New([]byte(sessionKey), nil)
	codec.SetSerializer(securecookie.JSONEncoder{})

	logger.Info("session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &SessionManager{store: store, codec: codec, name: name, log: logger}, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Admin flag                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

// SignInAdmin marks this session as admin-authenticated.
func (m *SessionManager) SignInAdmin(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, m.name)
	sess.Values[isAdminKey] = true
	return sess.Save(r, w)
}

// SignOutAdmin drops the admin flag (and any pending grant with it).
func (m *SessionManager) SignOutAdmin(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, m.name)
	delete(sess.Values, isAdminKey)
	delete(sess.Values, grantKey)
	return sess.Save(r, w)
}

// IsAdmin reports whether this session passed the admin password check.
func (m *SessionManager) IsAdmin(r *http.Request) bool {
	sess, _ := m.store.Get(r, m.name)
	isAdmin, _ := sess.Values[isAdminKey].(bool)
	return isAdmin
}

// RequireAdmin redirects non-admin sessions to the admin password form.
func (m *SessionManager) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.IsAdmin(r) {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| Edit grant carriage                                                         |
*─────────────────────────────────────────────────────────────────────────────*/

// SaveGrant stores the grant in the session, replacing any previous one.
// A session carries at most one grant at a time.
func (m *SessionManager) SaveGrant(w http.ResponseWriter, r *http.Request, g pinguard.Grant) error {
	encoded, err := m.codec.Encode(grantKey, g)
	if err != nil {
		return err
	}
	sess, _ := m.store.Get(r, m.name)
	sess.Values[grantKey] = encoded
	return sess.Save(r, w)
}

// Grant returns the session's current edit grant, if one is present and its
// signature checks out. Expiry and row scoping are pinguard's concern.
func (m *SessionManager) Grant(r *http.Request) (pinguard.Grant, bool) {
	sess, _ := m.store.Get(r, m.name)
	encoded, ok := sess.Values[grantKey].(string)
	if !ok || encoded == "" {
		return pinguard.Grant{}, false
	}
	var g pinguard.Grant
	if err := m.codec.Decode(grantKey, encoded, &g); err != nil {
		m.log.Warn("edit grant failed to decode", zap.Error(err))
		return pinguard.Grant{}, false
	}
	return g, true
}

// ClearGrant removes the grant from the session. Called after every
// mutation (the grant is single-use) and on any authorization failure.
func (m *SessionManager) ClearGrant(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, m.name)
	delete(sess.Values, grantKey)
	return sess.Save(r, w)
}
