package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sm8ta/webike_auth_microservice_nikita/internal/adapter/directory"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/adapter/hasher"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/adapter/token"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/services"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/testutil"
)

const testServiceKey = "svc-key"

type usersRouterFixture struct {
	router  *Router
	service *services.UserService
	tokens  *token.JWTTokenService
	cache   *testutil.MemoryCache
	admin   *domain.User
}

func newUsersRouterFixture(t *testing.T) *usersRouterFixture {
	t.Helper()

	cache := testutil.NewMemoryCache()
	service := services.NewUserService(
		testutil.NewMemoryUserRepository(),
		hasher.NewBcryptHasher(bcrypt.MinCost),
		testutil.NopLogger{},
		validator.New(),
		cache,
	)
	tokens := newTestTokens()
	handler := NewUserHandler(service, testutil.NopLogger{}, newTestMetrics())

	router, err := NewUsersRouter(testHTTPConfig(), testutil.NopLogger{}, tokens, handler, testServiceKey)
	require.NoError(t, err)

	admin, err := service.Register(context.Background(), &domain.User{
		Name:  "Root",
		Email: "root@x.com",
		Roles: []domain.UserRole{domain.Admin},
	}, "admin-password")
	require.NoError(t, err)

	return &usersRouterFixture{router: router, service: service, tokens: tokens, cache: cache, admin: admin}
}

func (f *usersRouterFixture) register(t *testing.T, name, email string) UserDTO {
	t.Helper()
	w := doRequest(f.router, http.MethodPost, "/users", UserRequest{Name: name, Email: email, Password: "password123"}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var dto UserDTO
	decodeEnvelope(t, w, &dto)
	return dto
}

func (f *usersRouterFixture) tokenFor(t *testing.T, email string, roles ...domain.UserRole) map[string]string {
	return bearerHeader(issueToken(t, f.tokens, email, roles...))
}

func TestUserHandler_Register(t *testing.T) {
	f := newUsersRouterFixture(t)

	dto := f.register(t, "Alice", "a@x.com")
	assert.Equal(t, "a@x.com", dto.Email)
	assert.Equal(t, []domain.UserRole{domain.AppUser}, dto.Roles)
	assert.NotEmpty(t, dto.UserID)

	w := doRequest(f.router, http.MethodPost, "/users", UserRequest{Name: "Alice 2", Email: "a@x.com", Password: "password123"}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(f.router, http.MethodPost, "/users", UserRequest{Name: "Bob", Email: "b@x.com", Password: "short"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(f.router, http.MethodPost, "/users", `{"name":"Bob"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_GetByEmail(t *testing.T) {
	f := newUsersRouterFixture(t)
	f.register(t, "Alice", "a@x.com")
	key := map[string]string{serviceKeyHeader: testServiceKey}

	w := doRequest(f.router, http.MethodGet, "/users/by-email?email=a@x.com", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(f.router, http.MethodGet, "/users/by-email?email=a@x.com", nil, key)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var record domain.UserRecord
	require.NoError(t, jsonUnmarshalBody(w, &record))
	assert.Equal(t, "a@x.com", record.Email)
	assert.NotEmpty(t, record.PasswordHash)
	assert.NotEqual(t, "password123", record.PasswordHash)
	assert.Equal(t, []domain.UserRole{domain.AppUser}, record.Roles)

	w = doRequest(f.router, http.MethodGet, "/users/by-email?email=ghost@x.com", nil, key)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, directory.LookupResultNotFound, w.Header().Get(directory.LookupResultHeader))

	w = doRequest(f.router, http.MethodGet, "/v2/users/by-email?email=ghost@x.com", nil, key)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Header().Get(directory.LookupResultHeader))

	w = doRequest(f.router, http.MethodGet, "/users/by-email", nil, key)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_GetUserAccess(t *testing.T) {
	f := newUsersRouterFixture(t)
	alice := f.register(t, "Alice", "a@x.com")
	f.register(t, "Bob", "b@x.com")

	path := "/users/" + alice.UserID
	missing := "/users/00000000-0000-0000-0000-000000000001"

	tests := []struct {
		name    string
		path    string
		headers map[string]string
		status  int
	}{
		{"anonymous", path, nil, http.StatusUnauthorized},
		{"owner", path, f.tokenFor(t, "a@x.com", domain.AppUser), http.StatusOK},
		{"other user", path, f.tokenFor(t, "b@x.com", domain.AppUser), http.StatusForbidden},
		{"admin", path, f.tokenFor(t, "root@x.com", domain.Admin), http.StatusOK},
		{"missing as user", missing, f.tokenFor(t, "b@x.com", domain.AppUser), http.StatusForbidden},
		{"missing as admin", missing, f.tokenFor(t, "root@x.com", domain.Admin), http.StatusNotFound},
		{"bad id as admin", "/users/not-a-uuid", f.tokenFor(t, "root@x.com", domain.Admin), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(f.router, http.MethodGet, tt.path, nil, tt.headers)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestUserHandler_UpdateUser(t *testing.T) {
	f := newUsersRouterFixture(t)
	alice := f.register(t, "Alice", "a@x.com")
	path := "/users/" + alice.UserID
	owner := f.tokenFor(t, "a@x.com", domain.AppUser)

	w := doRequest(f.router, http.MethodPut, path, map[string]string{"name": "Alice B"}, owner)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var dto UserDTO
	decodeEnvelope(t, w, &dto)
	assert.Equal(t, "Alice B", dto.Name)

	w = doRequest(f.router, http.MethodPut, path, map[string]interface{}{"roles": []string{"admin"}}, owner)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(f.router, http.MethodPut, path, map[string]interface{}{"roles": []string{"user", "admin"}},
		f.tokenFor(t, "root@x.com", domain.Admin))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decodeEnvelope(t, w, &dto)
	assert.ElementsMatch(t, []domain.UserRole{domain.AppUser, domain.Admin}, dto.Roles)

	w = doRequest(f.router, http.MethodPut, path, map[string]string{"email": "root@x.com"}, owner)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(f.router, http.MethodPut, path, map[string]string{"password": "tiny"}, owner)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(f.router, http.MethodPut, path, map[string]string{"name": "Mallory"}, f.tokenFor(t, "b@x.com", domain.AppUser))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUserHandler_DeleteUser(t *testing.T) {
	f := newUsersRouterFixture(t)
	alice := f.register(t, "Alice", "a@x.com")
	path := "/users/" + alice.UserID

	w := doRequest(f.router, http.MethodDelete, path, nil, f.tokenFor(t, "b@x.com", domain.AppUser))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(f.router, http.MethodDelete, path, nil, f.tokenFor(t, "a@x.com", domain.AppUser))
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(f.router, http.MethodGet, path, nil, f.tokenFor(t, "root@x.com", domain.Admin))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_ListUsers(t *testing.T) {
	f := newUsersRouterFixture(t)
	f.register(t, "Alice", "a@x.com")
	f.register(t, "Bob", "b@x.com")

	w := doRequest(f.router, http.MethodGet, "/users", nil, f.tokenFor(t, "a@x.com", domain.AppUser))
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := f.tokenFor(t, "root@x.com", domain.Admin)
	w = doRequest(f.router, http.MethodGet, "/users", nil, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var users []UserDTO
	decodeEnvelope(t, w, &users)
	assert.Len(t, users, 3)

	w = doRequest(f.router, http.MethodGet, "/users?limit=1&offset=1", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)
	decodeEnvelope(t, w, &users)
	require.Len(t, users, 1)
	assert.Equal(t, "b@x.com", users[0].Email)

	w = doRequest(f.router, http.MethodGet, "/users?limit=abc", nil, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doRequest(f.router, http.MethodGet, "/users?offset=-1", nil, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
