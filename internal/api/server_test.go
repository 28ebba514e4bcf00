package api_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/mindwell/internal/api"
	errorvalues "github.com/limbo/mindwell/internal/error_values"
	"github.com/limbo/mindwell/internal/service/mocks"
	"github.com/limbo/mindwell/pkg/entity"
	jwtservice "github.com/limbo/mindwell/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routedServer struct {
	handler     http.Handler
	serv        *api.Server
	users       *mocks.MockUserServiceI
	challenges  *mocks.MockChallengesServiceI
	completions *mocks.MockCompletionServiceI
	progress    *mocks.MockProgressServiceI
	token       string
}

func newRoutedServer(t *testing.T, opts api.Options) *routedServer {
	t.Helper()
	ctrl := gomock.NewController(t)
	rs := &routedServer{
		users:       mocks.NewMockUserServiceI(ctrl),
		challenges:  mocks.NewMockChallengesServiceI(ctrl),
		completions: mocks.NewMockCompletionServiceI(ctrl),
		progress:    mocks.NewMockProgressServiceI(ctrl),
	}
	jwtSrv := jwtservice.NewWithTTL("secret", time.Hour)
	rs.serv = api.New(&api.ServicesList{
		UserService:       rs.users,
		ChallengesService: rs.challenges,
		CompletionService: rs.completions,
		ProgressService:   rs.progress,
		JwtService:        jwtSrv,
	}, opts)
	rs.handler = rs.serv.Handler()
	token, err := jwtSrv.GenerateToken(&entity.User{ID: userID, Name: username})
	require.NoError(t, err)
	rs.token = token
	return rs
}

func (rs *routedServer) do(method, path, body string, authorized bool) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	if authorized {
		r.Header.Set("Authorization", "Bearer "+rs.token)
	}
	rs.handler.ServeHTTP(rr, r)
	return rr
}

func TestAuthMiddleware(t *testing.T) {
	rs := newRoutedServer(t, api.Options{RateLimitRPS: 1000, RateLimitBurst: 1000})

	t.Run("no token", func(t *testing.T) {
		rr := rs.do(http.MethodGet, "/api/v1/challenges/progress", "", false)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("malformed header", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/challenges/progress", nil)
		r.Header.Set("Authorization", "Token "+rs.token)
		rs.handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("forged token", func(t *testing.T) {
		forged, err := jwtservice.New("other-secret").GenerateToken(&entity.User{ID: userID, Name: username})
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/challenges/progress", nil)
		r.Header.Set("Authorization", "Bearer "+forged)
		rs.handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("deleted user", func(t *testing.T) {
		rs.users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errorvalues.ErrUserNotFound)
		rr := rs.do(http.MethodGet, "/api/v1/challenges/progress", "", true)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("user lookup failure", func(t *testing.T) {
		rs.users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, assert.AnError)
		rr := rs.do(http.MethodGet, "/api/v1/challenges/progress", "", true)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
	t.Run("authorized", func(t *testing.T) {
		rs.users.EXPECT().GetByID(gomock.Any(), userID).Return(&entity.User{ID: userID, Name: username}, nil)
		rs.progress.EXPECT().GetProgress(gomock.Any(), userID).Return(&entity.UserProgress{UserID: userID}, nil)
		rr := rs.do(http.MethodGet, "/api/v1/challenges/progress", "", true)
		assert.Equal(t, http.StatusOK, rr.Code)
		_, err := uuid.Parse(rr.Header().Get("X-Request-ID"))
		assert.NoError(t, err)
	})
}

func TestRoutes(t *testing.T) {
	rs := newRoutedServer(t, api.Options{RateLimitRPS: 1000, RateLimitBurst: 1000})
	challengeID := uuid.New()
	elementID := uuid.New()
	authorize := func() {
		rs.users.EXPECT().GetByID(gomock.Any(), userID).Return(&entity.User{ID: userID, Name: username}, nil)
	}

	t.Run("progress is not treated as challenge id", func(t *testing.T) {
		authorize()
		rs.progress.EXPECT().GetProgress(gomock.Any(), userID).Return(&entity.UserProgress{UserID: userID}, nil)
		rr := rs.do(http.MethodGet, "/api/v1/challenges/progress", "", true)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("completion toggled", func(t *testing.T) {
		authorize()
		rs.completions.EXPECT().RecordCompletion(gomock.Any(), userID, challengeID, elementID, true).Return(&entity.CompletionResult{
			ElementID:      elementID,
			Completed:      true,
			ChallengeStats: entity.ChallengeStats{Total: 1, Completed: 1, Percentage: 100, IsCompleted: true},
		}, nil)
		rr := rs.do(http.MethodPatch, "/api/v1/challenges/"+challengeID.String()+"/completed",
			`{"elementId":"`+elementID.String()+`","completed":true}`, true)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"isCompleted":true`)
	})
	t.Run("challenge fetched by path id", func(t *testing.T) {
		authorize()
		rs.challenges.EXPECT().GetChallenge(gomock.Any(), challengeID, userID).Return(&entity.Challenge{ID: challengeID}, nil)
		rr := rs.do(http.MethodGet, "/api/v1/challenges/"+challengeID.String(), "", true)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("account deleted", func(t *testing.T) {
		authorize()
		rs.users.EXPECT().DeleteAccount(gomock.Any(), userID, password).Return(nil)
		rr := rs.do(http.MethodDelete, "/api/v1/auth/account", `{"password":"`+password+`"}`, true)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
	t.Run("account deletion requires token", func(t *testing.T) {
		rr := rs.do(http.MethodDelete, "/api/v1/auth/account", `{"password":"`+password+`"}`, false)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("unknown route", func(t *testing.T) {
		rr := rs.do(http.MethodGet, "/api/v1/nothing", "", false)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
	t.Run("swagger ui", func(t *testing.T) {
		rr := rs.do(http.MethodGet, "/swagger/index.html", "", false)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("cors preflight", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodOptions, "/api/v1/challenges/progress", nil)
		r.Header.Set("Origin", "https://app.mindwell.local")
		r.Header.Set("Access-Control-Request-Method", http.MethodPatch)
		rs.handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRateLimit(t *testing.T) {
	rs := newRoutedServer(t, api.Options{RateLimitRPS: 0.001, RateLimitBurst: 2})
	for range 2 {
		rr := rs.do(http.MethodGet, "/api/v1/challenges/progress", "", false)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	}
	rr := rs.do(http.MethodGet, "/api/v1/challenges/progress", "", false)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)

	t.Run("rotating forwarded header does not reset the bucket", func(t *testing.T) {
		for _, fwd := range []string{"203.0.113.7", "203.0.113.8", "198.51.100.1, 10.0.0.1"} {
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/challenges/progress", nil)
			r.Header.Set("X-Forwarded-For", fwd)
			rs.handler.ServeHTTP(rr, r)
			assert.Equal(t, http.StatusTooManyRequests, rr.Code, fwd)
		}
	})
	t.Run("another peer has its own bucket", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/challenges/progress", nil)
		r.RemoteAddr = "198.51.100.20:4321"
		rs.handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("health is not limited", func(t *testing.T) {
		rr := rs.do(http.MethodGet, "/health", "", false)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestRateLimitBehindTrustedProxy(t *testing.T) {
	trusted, err := api.ParseTrustedProxies([]string{"192.0.2.0/24", "10.0.0.1"})
	require.NoError(t, err)
	rl := api.NewRateLimiter(0.001, 1, trusted...)
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	send := func(remote, fwd string) int {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = remote
		if fwd != "" {
			r.Header.Set("X-Forwarded-For", fwd)
		}
		h.ServeHTTP(rr, r)
		return rr.Code
	}

	tests := []struct {
		Desc         string
		RemoteAddr   string
		Forwarded    string
		ExpectedCode int
	}{
		{
			Desc:         "first client through proxy",
			RemoteAddr:   "192.0.2.1:1234",
			Forwarded:    "203.0.113.7",
			ExpectedCode: http.StatusOK,
		},
		{
			Desc:         "same client through proxy chain",
			RemoteAddr:   "192.0.2.1:1234",
			Forwarded:    "203.0.113.7, 10.0.0.1",
			ExpectedCode: http.StatusTooManyRequests,
		},
		{
			Desc:         "spoofed left-most hop is ignored",
			RemoteAddr:   "192.0.2.1:1234",
			Forwarded:    "198.51.100.99, 203.0.113.7",
			ExpectedCode: http.StatusTooManyRequests,
		},
		{
			Desc:         "second client through proxy",
			RemoteAddr:   "192.0.2.1:1234",
			Forwarded:    "203.0.113.8",
			ExpectedCode: http.StatusOK,
		},
		{
			Desc:         "untrusted peer cannot borrow a client address",
			RemoteAddr:   "198.51.100.5:1234",
			Forwarded:    "203.0.113.9",
			ExpectedCode: http.StatusOK,
		},
		{
			Desc:         "untrusted peer keyed on its own address",
			RemoteAddr:   "198.51.100.5:1234",
			Forwarded:    "203.0.113.10",
			ExpectedCode: http.StatusTooManyRequests,
		},
		{
			Desc:         "forwarded client was never charged by untrusted peer",
			RemoteAddr:   "192.0.2.1:1234",
			Forwarded:    "203.0.113.9",
			ExpectedCode: http.StatusOK,
		},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.ExpectedCode, send(tc.RemoteAddr, tc.Forwarded), tc.Desc)
	}
}

func TestParseTrustedProxies(t *testing.T) {
	prefixes, err := api.ParseTrustedProxies([]string{"10.0.0.0/8", "192.0.2.1", "2001:db8::/32"})
	require.NoError(t, err)
	assert.Len(t, prefixes, 3)
	assert.Equal(t, 32, prefixes[1].Bits())

	_, err = api.ParseTrustedProxies([]string{"not-an-ip"})
	assert.Error(t, err)
	_, err = api.ParseTrustedProxies([]string{"10.0.0.0/99"})
	assert.Error(t, err)
}

func TestRateLimiterSweep(t *testing.T) {
	rl := api.NewRateLimiter(1, 1)
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	for _, addr := range []string{"10.0.0.1:1000", "10.0.0.2:1000", "10.0.0.1:2000"} {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = addr
		h.ServeHTTP(httptest.NewRecorder(), r)
	}
	assert.Equal(t, 0, rl.Sweep(time.Hour))
	assert.Equal(t, 2, rl.Sweep(-time.Second))
}

func TestMetricsEndpoint(t *testing.T) {
	rs := newRoutedServer(t, api.Options{
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
		MetricsUser:    "metrics",
		MetricsPass:    "secret",
	})
	challengeID := uuid.New()
	elementID := uuid.New()
	rs.users.EXPECT().GetByID(gomock.Any(), userID).Return(&entity.User{ID: userID}, nil)
	rs.completions.EXPECT().RecordCompletion(gomock.Any(), userID, challengeID, elementID, false).
		Return(&entity.CompletionResult{ElementID: elementID}, nil)
	rr := rs.do(http.MethodPatch, "/api/v1/challenges/"+challengeID.String()+"/completed",
		`{"elementId":"`+elementID.String()+`","completed":false}`, true)
	require.Equal(t, http.StatusOK, rr.Code)

	t.Run("unauthorized scrape", func(t *testing.T) {
		rr := rs.do(http.MethodGet, "/metrics", "", false)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("scraped", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		r.SetBasicAuth("metrics", "secret")
		rs.handler.ServeHTTP(rr, r)
		require.Equal(t, http.StatusOK, rr.Code)
		body, err := io.ReadAll(rr.Body)
		require.NoError(t, err)
		text := string(body)
		assert.True(t, strings.Contains(text, `route="/api/v1/challenges/{id}/completed"`), text)
		assert.Contains(t, text, `challenge_completions_total{completed="false"} 1`)
		assert.NotContains(t, text, challengeID.String())
	})
}
