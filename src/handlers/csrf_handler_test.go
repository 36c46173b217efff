package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/casher/backend/src/config"
	"github.com/username/casher/backend/src/logger"
)

var testCSRFKey = []byte("test-csrf-auth-key-32-bytes-long!!!!")

func setupCSRFTest(t *testing.T) {
	t.Helper()
	logger.InitLogger("error")
	config.Cfg = &config.AppConfig{CSRFAuthKey: testCSRFKey}
}

func TestGetCSRFTokenIssuesMatchingCookieAndHeader(t *testing.T) {
	setupCSRFTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/csrf", nil)
	rec := httptest.NewRecorder()
	GetCSRFToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	headerToken := rec.Header().Get("X-CSRF-Token")
	require.NotEmpty(t, headerToken)

	var cookieToken string
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == csrfCookieName {
			cookieToken = cookie.Value
		}
	}
	assert.Equal(t, headerToken, cookieToken)
	assert.True(t, validSignedCSRFToken(testCSRFKey, headerToken))
}

func TestCSRFMiddlewareAllowsSafeMethods(t *testing.T) {
	setupCSRFTest(t)

	called := false
	handler := CSRFMiddleware(testCSRFKey)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCSRFMiddlewareRejectsPostWithoutToken(t *testing.T) {
	setupCSRFTest(t)

	handler := CSRFMiddleware(testCSRFKey)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCSRFMiddlewareAcceptsValidDoubleSubmit(t *testing.T) {
	setupCSRFTest(t)

	token, err := generateSignedCSRFToken(testCSRFKey)
	require.NoError(t, err)

	called := false
	handler := CSRFMiddleware(testCSRFKey)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	req.Header.Set("X-CSRF-Token", token)
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCSRFMiddlewareRejectsForgedToken(t *testing.T) {
	setupCSRFTest(t)

	// Header and cookie match, but the value was not signed by the server.
	forged := "Zm9yZ2Vk.Zm9yZ2Vk"
	handler := CSRFMiddleware(testCSRFKey)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	req.Header.Set("X-CSRF-Token", forged)
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: forged})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCSRFMiddlewareRejectsMismatchedTokens(t *testing.T) {
	setupCSRFTest(t)

	headerToken, err := generateSignedCSRFToken(testCSRFKey)
	require.NoError(t, err)
	cookieToken, err := generateSignedCSRFToken(testCSRFKey)
	require.NoError(t, err)

	handler := CSRFMiddleware(testCSRFKey)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	req.Header.Set("X-CSRF-Token", headerToken)
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: cookieToken})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
