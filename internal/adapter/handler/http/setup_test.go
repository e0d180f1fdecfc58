package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/sm8ta/webike_auth_microservice_nikita/internal/adapter/prometheus"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/adapter/token"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/config"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/ports"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/testutil"
)

const testSecret = "handler-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestTokens(opts ...token.Option) *token.JWTTokenService {
	return token.NewJWTTokenService(testSecret, time.Hour, testutil.NopLogger{}, opts...)
}

func newTestMetrics() ports.MetricsPort {
	return prometheus.NewPrometheusAdapter(prom.NewRegistry(), "handler_test")
}

func testHTTPConfig() *config.HTTP {
	return &config.HTTP{Env: "test", AllowedOrigins: []string{"*"}}
}

func issueToken(t *testing.T, tokens ports.TokenService, subject string, roles ...domain.UserRole) string {
	t.Helper()
	tok, _, err := tokens.CreateToken(subject, roles)
	require.NoError(t, err)
	return tok
}

func doRequest(h http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, _ := json.Marshal(b)
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func bearerHeader(tok string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + tok}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data), string(env.Data))
	}
	return env
}

func jsonUnmarshalBody(w *httptest.ResponseRecorder, v interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), v)
}
