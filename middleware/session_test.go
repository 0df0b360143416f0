package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/core/cookie"
	"github.com/dmitrymomot/sessionkit/core/session"
	"github.com/dmitrymomot/sessionkit/core/sessionstore"
	"github.com/dmitrymomot/sessionkit/core/sessiontransport"
	"github.com/dmitrymomot/sessionkit/middleware"
)

const testSecret = "middleware-secret-32-chars-long!!!!"

func newTestTransport(t *testing.T, store session.Store) *sessiontransport.Cookie {
	t.Helper()

	if store == nil {
		store = sessionstore.NewMemory()
	}
	manager := session.NewManager(store, session.WithTTL(time.Hour))
	cookies, err := cookie.New([]string{testSecret})
	require.NoError(t, err)
	return sessiontransport.NewCookie(manager, cookies, "session")
}

func replayCookies(t *testing.T, rec *httptest.ResponseRecorder, r *http.Request) *http.Request {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.MaxAge >= 0 {
			r.AddCookie(c)
		}
	}
	return r
}

func TestSession_InjectsSessionIntoContext(t *testing.T) {
	t.Parallel()

	transport := newTestTransport(t, nil)

	var seen *session.Session
	handler := middleware.Session(transport)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		require.True(t, ok)
		seen = sess
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotNil(t, seen)
	assert.NotEmpty(t, seen.ID())
}

func TestSession_PersistsAcrossRequests(t *testing.T) {
	t.Parallel()

	transport := newTestTransport(t, nil)
	mw := middleware.Session(transport)

	var firstID string
	first := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := middleware.MustGetSession(r.Context())
		firstID = sess.ID()
		sess.Set("locale", "en_US")
	}))

	rec := httptest.NewRecorder()
	first.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	second := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := middleware.MustGetSession(r.Context())
		assert.Equal(t, firstID, sess.ID())
		assert.Equal(t, "en_US", sess.GetString("locale"))
	}))

	r := replayCookies(t, rec, httptest.NewRequest(http.MethodGet, "/", nil))
	second.ServeHTTP(httptest.NewRecorder(), r)
}

func TestSession_CookieRefreshedEveryRequest(t *testing.T) {
	t.Parallel()

	transport := newTestTransport(t, nil)
	handler := middleware.Session(transport)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	// First visit issues the cookie.
	rec1 := httptest.NewRecorder()
	handler.ServeHTTP(rec1, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, rec1.Result().Cookies())

	// A resumed session still gets a fresh cookie: sliding-window expiry.
	r := replayCookies(t, rec1, httptest.NewRequest(http.MethodGet, "/", nil))
	rec2 := httptest.NewRecorder()
	handler.ServeHTTP(rec2, r)

	cookies := rec2.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, 3600, cookies[0].MaxAge)
}

func TestSession_RecordsBookkeeping(t *testing.T) {
	t.Parallel()

	store := sessionstore.NewMemory()
	transport := newTestTransport(t, store)

	var sessionID string
	handler := middleware.Session(transport)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := middleware.MustGetSession(r.Context())
		sessionID = sess.ID()

		// Normalization ran before the handler.
		assert.Equal(t, "192.0.2.1", sess.IPAddress())
		assert.True(t, sess.Has("last_request_at"))
		assert.True(t, sess.Has("last_request_uri"))
	}))

	r := httptest.NewRequest(http.MethodGet, "/dashboard?tab=settings", nil)
	r.RemoteAddr = "192.0.2.1:4242"
	handler.ServeHTTP(httptest.NewRecorder(), r)

	// The completion hook recorded the request before saving.
	saved, err := transport.Manager().Get(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, "/dashboard?tab=settings", saved.LastRequestURI())
	_, ok := saved.LastRequestAt()
	assert.True(t, ok)
}

func TestSession_SkipsConfiguredPaths(t *testing.T) {
	t.Parallel()

	transport := newTestTransport(t, nil)
	handler := middleware.SessionWithConfig(middleware.SessionConfig{
		Transport: transport,
		Skip: func(r *http.Request) bool {
			return r.URL.Path == "/health"
		},
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := middleware.GetSession(r.Context())
		assert.False(t, ok)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, rec.Result().Cookies())
}

func TestSession_LoadOutageDegradesToEmptySession(t *testing.T) {
	t.Parallel()

	transport := newTestTransport(t, outageStore{})
	handler := middleware.Session(transport)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := middleware.MustGetSession(r.Context())
		assert.NotNil(t, sess)
		w.WriteHeader(http.StatusOK)
	}))

	// A cookie-bearing request whose backend is down still gets a 200.
	seed := httptest.NewRecorder()
	require.NoError(t, transport.SetCookie(seed, transport.Manager().New()))
	r := replayCookies(t, seed, httptest.NewRequest(http.MethodGet, "/", nil))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSession_SaveFailureDoesNotBreakResponse(t *testing.T) {
	t.Parallel()

	transport := newTestTransport(t, outageStore{})
	handler := middleware.Session(transport)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/items", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSession_DeletedSessionNotResaved(t *testing.T) {
	t.Parallel()

	store := sessionstore.NewMemory()
	transport := newTestTransport(t, store)

	handler := middleware.Session(transport)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := middleware.MustGetSession(r.Context())
		require.NoError(t, transport.Destroy(w, r, sess))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, 0, store.Len(), "logout must not be undone by the completion save")
}

func TestGetSession_MissingContext(t *testing.T) {
	t.Parallel()

	_, ok := middleware.GetSession(context.Background())
	assert.False(t, ok)

	assert.Panics(t, func() {
		middleware.MustGetSession(context.Background())
	})
}

func TestSessionWithConfig_RequiresTransport(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		middleware.SessionWithConfig(middleware.SessionConfig{})
	})
}

// outageStore fails every operation, simulating a dead backend.
type outageStore struct{}

func (outageStore) Load(context.Context, string) ([]byte, error) {
	return nil, errors.New("backend unreachable")
}

func (outageStore) Save(context.Context, string, []byte, time.Duration) error {
	return errors.New("backend unreachable")
}

func (outageStore) Delete(context.Context, string) error {
	return errors.New("backend unreachable")
}
