package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/core/cookie"
)

const testSecret = "test-secret-that-is-32-chars-long!!"

func newManager(t *testing.T, opts ...cookie.Option) *cookie.Manager {
	t.Helper()

	m, err := cookie.New([]string{testSecret}, opts...)
	require.NoError(t, err)
	return m
}

// requestWithCookies replays the cookies a recorder captured onto a new request.
func requestWithCookies(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := cookie.New(nil)
	assert.ErrorIs(t, err, cookie.ErrNoSecret)

	_, err = cookie.New([]string{""})
	assert.ErrorIs(t, err, cookie.ErrNoSecret)

	_, err = cookie.New([]string{"too-short"})
	assert.ErrorIs(t, err, cookie.ErrSecretTooShort)
}

func TestSetGet_RoundTrip(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	rec := httptest.NewRecorder()

	require.NoError(t, m.Set(rec, "lang", "en"))

	got, err := m.Get(requestWithCookies(t, rec), "lang")
	require.NoError(t, err)
	assert.Equal(t, "en", got)
}

func TestGet_Missing(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := m.Get(r, "missing")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestSigned_RoundTrip(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	rec := httptest.NewRecorder()

	require.NoError(t, m.SetSigned(rec, "session", "abc123"))

	// The raw value on the wire is not the plaintext.
	raw := rec.Result().Cookies()[0].Value
	assert.NotEqual(t, "abc123", raw)

	got, err := m.GetSigned(requestWithCookies(t, rec), "session")
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)
}

func TestSigned_TamperedValue(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	rec := httptest.NewRecorder()
	require.NoError(t, m.SetSigned(rec, "session", "abc123"))

	tampered := rec.Result().Cookies()[0]
	_, sig, _ := strings.Cut(tampered.Value, ".")

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "session", Value: "ZXZpbA." + sig})

	_, err := m.GetSigned(r, "session")
	assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
}

func TestSigned_MalformedValue(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "session", Value: "no-separator-here"})

	_, err := m.GetSigned(r, "session")
	assert.ErrorIs(t, err, cookie.ErrInvalidFormat)
}

func TestSigned_SecretRotation(t *testing.T) {
	t.Parallel()

	oldSecret := "old-secret-that-is-32-chars-long!!!"
	oldManager, err := cookie.New([]string{oldSecret})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, oldManager.SetSigned(rec, "session", "abc123"))

	// New deployment signs with a fresh secret but still verifies the old one.
	rotated, err := cookie.New([]string{testSecret, oldSecret})
	require.NoError(t, err)

	got, err := rotated.GetSigned(requestWithCookies(t, rec), "session")
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	rec := httptest.NewRecorder()

	m.Delete(rec, "session")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.Empty(t, cookies[0].Value)
}

func TestSet_Expiration(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	rec := httptest.NewRecorder()
	expires := time.Now().Add(time.Hour).Truncate(time.Second)

	require.NoError(t, m.Set(rec, "session", "v",
		cookie.WithMaxAge(3600),
		cookie.WithExpires(expires),
	))

	c := rec.Result().Cookies()[0]
	assert.Equal(t, 3600, c.MaxAge)
	assert.WithinDuration(t, expires, c.Expires, time.Second)
}

func TestSet_TooLarge(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	rec := httptest.NewRecorder()

	err := m.Set(rec, "big", strings.Repeat("x", cookie.MaxCookieSize))

	var tooLarge cookie.ErrCookieTooLarge
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, "big", tooLarge.Name)
}

func TestSet_SecureDefaults(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	rec := httptest.NewRecorder()
	require.NoError(t, m.Set(rec, "session", "v"))

	c := rec.Result().Cookies()[0]
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
}
