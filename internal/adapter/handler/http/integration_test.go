package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sm8ta/webike_auth_microservice_nikita/internal/adapter/directory"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/adapter/hasher"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/ports"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/services"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/testutil"
)

// newAuthAgainst wires the auth router to a live users service.
func newAuthAgainst(t *testing.T, usersURL, serviceKey string, cache ports.CachePort) *Router {
	t.Helper()

	httpDir, err := directory.NewHTTPDirectory(directory.Config{
		BaseURL: usersURL,
		Timeout: 2 * time.Second,
		APIKey:  serviceKey,
	}, testutil.NopLogger{}, nil)
	require.NoError(t, err)
	dir := directory.NewCachedDirectory(httpDir, cache, time.Minute, testutil.NopLogger{})

	validator, err := services.NewCredentialValidator(dir, hasher.NewBcryptHasher(bcrypt.MinCost), testutil.NopLogger{})
	require.NoError(t, err)

	tokens := newTestTokens()
	metrics := newTestMetrics()
	handler := NewAuthHandler(services.NewAuthService(validator, tokens, testutil.NopLogger{}, metrics), testutil.NopLogger{}, metrics)

	router, err := NewAuthRouter(testHTTPConfig(), testutil.NopLogger{}, tokens, handler)
	require.NoError(t, err)
	return router
}

func TestLoginAgainstUsersService(t *testing.T) {
	users := newUsersRouterFixture(t)
	alice := users.register(t, "Alice", "a@x.com")

	srv := httptest.NewServer(users.router)
	defer srv.Close()

	auth := newAuthAgainst(t, srv.URL, testServiceKey, testutil.NewMemoryCache())

	w := doRequest(auth, http.MethodPost, "/auth/login", LoginRequest{Email: "a@x.com", Password: "password123"}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login LoginResponse
	decodeEnvelope(t, w, &login)

	// The token issued by the auth service is honoured by the users service.
	w = doRequest(users.router, http.MethodGet, "/users/"+alice.UserID, nil, bearerHeader(login.Token))
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(auth, http.MethodPost, "/auth/login", LoginRequest{Email: "a@x.com", Password: "wrong-password"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(auth, http.MethodPost, "/auth/login", LoginRequest{Email: "ghost@x.com", Password: "password123"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginWithWrongServiceKey(t *testing.T) {
	users := newUsersRouterFixture(t)
	users.register(t, "Alice", "a@x.com")

	srv := httptest.NewServer(users.router)
	defer srv.Close()

	auth := newAuthAgainst(t, srv.URL, "not-the-key", testutil.NewMemoryCache())

	w := doRequest(auth, http.MethodPost, "/auth/login", LoginRequest{Email: "a@x.com", Password: "password123"}, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestLoginWhenUsersServiceIsDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	auth := newAuthAgainst(t, url, "", testutil.NewMemoryCache())

	w := doRequest(auth, http.MethodPost, "/auth/login", LoginRequest{Email: "a@x.com", Password: "password123"}, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestPasswordChangeInvalidatesSharedLookupCache(t *testing.T) {
	users := newUsersRouterFixture(t)
	alice := users.register(t, "Alice", "a@x.com")

	srv := httptest.NewServer(users.router)
	defer srv.Close()

	auth := newAuthAgainst(t, srv.URL, testServiceKey, users.cache)
	w := doRequest(auth, http.MethodPost, "/auth/validate", LoginRequest{Email: "a@x.com", Password: "password123"}, nil)
	assert.JSONEq(t, `{"valid":true}`, w.Body.String())

	_, err := users.cache.Get(context.Background(), ports.UserEmailCacheKey("a@x.com"))
	require.NoError(t, err)

	w = doRequest(users.router, http.MethodPut, "/users/"+alice.UserID, map[string]string{"password": "brand-new-pass"},
		users.tokenFor(t, "a@x.com", domain.AppUser))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(auth, http.MethodPost, "/auth/validate", LoginRequest{Email: "a@x.com", Password: "brand-new-pass"}, nil)
	assert.JSONEq(t, `{"valid":true}`, w.Body.String())
	w = doRequest(auth, http.MethodPost, "/auth/validate", LoginRequest{Email: "a@x.com", Password: "password123"}, nil)
	assert.JSONEq(t, `{"valid":false}`, w.Body.String())
}

func TestLoginWithWrongDirectoryBasePath(t *testing.T) {
	users := newUsersRouterFixture(t)
	users.register(t, "Alice", "a@x.com")

	srv := httptest.NewServer(users.router)
	defer srv.Close()

	auth := newAuthAgainst(t, srv.URL+"/v2", testServiceKey, testutil.NewMemoryCache())

	w := doRequest(auth, http.MethodPost, "/auth/login", LoginRequest{Email: "a@x.com", Password: "password123"}, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = doRequest(auth, http.MethodPost, "/auth/login", LoginRequest{Email: "ghost@x.com", Password: "password123"}, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
