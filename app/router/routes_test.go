package router_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amirphl/copydesk/app/handlers"
	"github.com/amirphl/copydesk/app/middleware"
	"github.com/amirphl/copydesk/app/router"
	"github.com/amirphl/copydesk/app/services"
	businessflow "github.com/amirphl/copydesk/business_flow"
	"github.com/amirphl/copydesk/config"
	"github.com/amirphl/copydesk/repository"
	testingutil "github.com/amirphl/copydesk/testing"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const testSecret = "router-test-secret-key-with-32-plus-chars"

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string          `json:"code"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

type testServer struct {
	t      *testing.T
	router *router.FiberRouter
	tokens services.TokenService
	health error
}

func testConfig() *config.ProductionConfig {
	return &config.ProductionConfig{
		Server: config.ServerConfig{
			Environment:    "test",
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   5 * time.Second,
			IdleTimeout:    5 * time.Second,
			RequestTimeout: 5 * time.Second,
			BodyLimit:      1024 * 1024,
		},
		Security: config.SecurityConfig{
			AllowedOrigins:  []string{"http://localhost:3000"},
			AllowedMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:  []string{"Content-Type", "Authorization"},
			AuthRateLimit:   1000,
			GlobalRateLimit: 1000,
			RateLimitWindow: time.Minute,
			XFrameOptions:   "DENY",
			CSPPolicy:       "default-src 'self';",
			ReferrerPolicy:  "no-referrer",
		},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	testDB, err := testingutil.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = testDB.TeardownTestDB() })

	tokens, err := services.NewTokenService(time.Hour, 2*time.Hour, "copydesk", "copydesk-api", false, "", "", testSecret, nil)
	require.NoError(t, err)

	campaignRepo := repository.NewCampaignRepository(testDB.DB)
	adCopyRepo := repository.NewAdCopyRepository(testDB.DB)
	performanceRepo := repository.NewPerformanceRecordRepository(testDB.DB)

	h := router.Handlers{
		Auth:        handlers.NewAuthHandler(tokens, time.Second, nil),
		Campaign:    handlers.NewCampaignHandler(businessflow.NewCampaignFlow(campaignRepo, nil), time.Second, nil),
		AdCopy:      handlers.NewAdCopyHandler(businessflow.NewAdCopyFlow(campaignRepo, adCopyRepo, nil), time.Second, nil),
		Performance: handlers.NewPerformanceHandler(businessflow.NewPerformanceFlow(campaignRepo, adCopyRepo, performanceRepo, nil), time.Second, nil),
	}

	ts := &testServer{t: t, tokens: tokens}
	health := func(ctx context.Context) error { return ts.health }

	ts.router = router.NewFiberRouter(testConfig(), h, middleware.NewAuthMiddleware(tokens, nil), health, nil, io.Discard)
	ts.router.SetupRoutes()
	return ts
}

func (ts *testServer) login(userID string) (string, string) {
	ts.t.Helper()
	access, refresh, err := ts.tokens.GenerateTokens(userID)
	require.NoError(ts.t, err)
	return access, refresh
}

func (ts *testServer) do(method, path, token string, body any) (*http.Response, envelope) {
	ts.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(ts.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.router.GetApp().Test(req)
	require.NoError(ts.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(ts.t, err)

	var env envelope
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(ts.t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

type campaignData struct {
	Campaign struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Objective *string   `json:"objective"`
		Notes     *string   `json:"notes"`
		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	} `json:"campaign"`
}

type listData struct {
	Items []map[string]any `json:"items"`
	Total int              `json:"total"`
}

func TestMissingTokenReturnsUnauthorizedEnvelope(t *testing.T) {
	ts := newTestServer(t)

	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/v1/campaigns"},
		{http.MethodPost, "/api/v1/campaigns"},
		{http.MethodGet, "/api/v1/campaigns/6f1c1b7e-1f1a-4d1e-9a55-0c1f8e3b2a10/ad-copies"},
		{http.MethodGet, "/api/v1/ad-copies/6f1c1b7e-1f1a-4d1e-9a55-0c1f8e3b2a10/performance"},
	}
	for _, p := range paths {
		resp, env := ts.do(p.method, p.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, p.path)
		assert.False(t, env.Success)
		assert.Equal(t, "MISSING_AUTHORIZATION_HEADER", env.Error.Code)
	}

	resp, env := ts.do(http.MethodGet, "/api/v1/campaigns", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "TOKEN_INVALID", env.Error.Code)

	_, refresh := ts.login("user-1")
	resp, env = ts.do(http.MethodGet, "/api/v1/campaigns", refresh, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "TOKEN_TYPE_INVALID", env.Error.Code)
}

func TestCampaignLifecycle(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.login("user-1")
	otherToken, _ := ts.login("user-2")

	resp, env := ts.do(http.MethodPost, "/api/v1/campaigns", token, map[string]any{
		"name":      "Spring Sale",
		"objective": "awareness",
		"notes":     "draft",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, env.Success)
	created := decodeData[campaignData](t, env).Campaign
	assert.Equal(t, "Spring Sale", created.Name)
	assert.True(t, created.CreatedAt.Equal(created.UpdatedAt))

	t.Run("CreateWithoutName", func(t *testing.T) {
		resp, env := ts.do(http.MethodPost, "/api/v1/campaigns", token, map[string]any{"objective": "x"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := ts.router.GetApp().Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("UpdateWithoutFields", func(t *testing.T) {
		resp, env := ts.do(http.MethodPatch, "/api/v1/campaigns/"+created.ID, token, map[string]any{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		assert.Equal(t, "At least one field must be provided to update", env.Message)
	})

	t.Run("UpdateClearsWithNull", func(t *testing.T) {
		resp, env := ts.do(http.MethodPatch, "/api/v1/campaigns/"+created.ID, token, map[string]any{
			"objective": "conversions",
			"notes":     nil,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		updated := decodeData[campaignData](t, env).Campaign
		assert.Equal(t, "Spring Sale", updated.Name)
		assert.Equal(t, "conversions", *updated.Objective)
		assert.Nil(t, updated.Notes)
		assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	})

	t.Run("OtherUserSeesNotFound", func(t *testing.T) {
		resp, env := ts.do(http.MethodPatch, "/api/v1/campaigns/"+created.ID, otherToken, map[string]any{"name": "Mine"})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)

		resp, _ = ts.do(http.MethodGet, "/api/v1/campaigns/"+created.ID, otherToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("InvalidID", func(t *testing.T) {
		resp, env := ts.do(http.MethodGet, "/api/v1/campaigns/abc", token, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("ListIsPerUser", func(t *testing.T) {
		resp, env := ts.do(http.MethodGet, "/api/v1/campaigns", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		list := decodeData[listData](t, env)
		assert.Equal(t, 1, list.Total)
		assert.Len(t, list.Items, 1)

		resp, env = ts.do(http.MethodGet, "/api/v1/campaigns", otherToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		list = decodeData[listData](t, env)
		assert.Equal(t, 0, list.Total)
		assert.NotNil(t, list.Items)
	})
}

func TestAdCopyAndPerformanceRoutes(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.login("user-1")
	otherToken, _ := ts.login("user-2")

	_, env := ts.do(http.MethodPost, "/api/v1/campaigns", token, map[string]any{"name": "Spring Sale"})
	campaignID := decodeData[campaignData](t, env).Campaign.ID
	base := "/api/v1/campaigns/" + campaignID + "/ad-copies"

	resp, _ := ts.do(http.MethodPost, base, otherToken, map[string]any{"primaryText": "Not yours"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, env = ts.do(http.MethodPost, base, token, map[string]any{"primaryText": "Spring into savings", "url": "not a url"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

	resp, env = ts.do(http.MethodPost, base, token, map[string]any{"primaryText": "Spring into savings"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	adCopy := decodeData[struct {
		AdCopy struct {
			ID         string `json:"id"`
			CampaignID string `json:"campaignId"`
		} `json:"adCopy"`
	}](t, env).AdCopy
	assert.Equal(t, campaignID, adCopy.CampaignID)

	resp, env = ts.do(http.MethodPatch, base+"/"+adCopy.ID, token, map[string]any{"tone": "playful"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)

	perf := "/api/v1/ad-copies/" + adCopy.ID + "/performance"

	resp, env = ts.do(http.MethodPost, perf, token, map[string]any{"impressions": -1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

	resp, _ = ts.do(http.MethodPost, perf, otherToken, map[string]any{"impressions": 5})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = ts.do(http.MethodPost, perf, token, map[string]any{"impressions": 100})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = ts.do(http.MethodPost, perf, token, map[string]any{
		"date": "2024-03-01", "impressions": 300, "clicks": 12, "spend": "4.80", "currency": "EUR",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env = ts.do(http.MethodGet, perf, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeData[listData](t, env)
	require.Equal(t, 2, list.Total)
	assert.EqualValues(t, 100, list.Items[0]["impressions"])
	assert.NotContains(t, list.Items[0], "clicks")
	assert.NotContains(t, list.Items[0], "date")

	resp, env = ts.do(http.MethodGet, perf+"/summary", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decodeData[map[string]any](t, env)
	assert.EqualValues(t, 2, summary["records"])
	assert.EqualValues(t, 400, summary["impressions"])
	assert.InDelta(t, 0.03, summary["clickThroughRate"], 1e-9)

	req := httptest.NewRequest(http.MethodGet, perf+"/export", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	exportResp, err := ts.router.GetApp().Test(req)
	require.NoError(t, err)
	defer exportResp.Body.Close()
	require.Equal(t, http.StatusOK, exportResp.StatusCode)
	assert.Contains(t, exportResp.Header.Get("Content-Disposition"), "_performance.xlsx")
	content, err := io.ReadAll(exportResp.Body)
	require.NoError(t, err)
	xl, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	rows, err := xl.GetRows("performance")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	_ = xl.Close()

	resp, _ = ts.do(http.MethodDelete, base+"/"+adCopy.ID, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, env = ts.do(http.MethodDelete, base+"/"+adCopy.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success":true}`, string(env.Data))

	resp, env = ts.do(http.MethodGet, base, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, decodeData[listData](t, env).Total)

	resp, _ = ts.do(http.MethodDelete, base+"/"+adCopy.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLogoutRevokesToken(t *testing.T) {
	ts := newTestServer(t)
	token, refresh := ts.login("user-1")

	resp, _ := ts.do(http.MethodGet, "/api/v1/campaigns", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env := ts.do(http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)

	resp, env = ts.do(http.MethodGet, "/api/v1/campaigns", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "TOKEN_REVOKED", env.Error.Code)

	resp, env = ts.do(http.MethodPost, "/api/v1/auth/refresh", "", map[string]any{"refreshToken": refresh})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pair := decodeData[struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
		TokenType    string `json:"tokenType"`
	}](t, env)
	assert.Equal(t, "Bearer", pair.TokenType)

	resp, _ = ts.do(http.MethodGet, "/api/v1/campaigns", pair.AccessToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = ts.do(http.MethodPost, "/api/v1/auth/refresh", "", map[string]any{"refreshToken": refresh})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "TOKEN_REVOKED", env.Error.Code)

	resp, env = ts.do(http.MethodPost, "/api/v1/auth/refresh", "", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	ts := newTestServer(t)
	token, refresh := ts.login("user-1")
	_, otherRefresh := ts.login("user-2")

	resp, env := ts.do(http.MethodPost, "/api/v1/auth/logout", token, map[string]any{"refreshToken": otherRefresh})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "TOKEN_INVALID", env.Error.Code)

	resp, env = ts.do(http.MethodPost, "/api/v1/auth/logout", token, map[string]any{"refreshToken": refresh})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)

	resp, env = ts.do(http.MethodPost, "/api/v1/auth/refresh", "", map[string]any{"refreshToken": refresh})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "TOKEN_REVOKED", env.Error.Code)

	resp, env = ts.do(http.MethodPost, "/api/v1/auth/refresh", "", map[string]any{"refreshToken": otherRefresh})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)
}

func TestInfrastructureRoutes(t *testing.T) {
	ts := newTestServer(t)

	t.Run("Health", func(t *testing.T) {
		resp, env := ts.do(http.MethodGet, "/api/v1/health", "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, env.Success)
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

		ts.health = errors.New("connection refused")
		resp, env = ts.do(http.MethodGet, "/api/v1/health", "", nil)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.False(t, env.Success)
		ts.health = nil
	})

	t.Run("NotFound", func(t *testing.T) {
		resp, env := ts.do(http.MethodGet, "/api/v1/nowhere", "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})

	t.Run("SwaggerOutsideProduction", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/swagger.json", nil)
		resp, err := ts.router.GetApp().Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "/campaigns")
	})

	t.Run("Metrics", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		resp, err := ts.router.GetApp().Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "copydesk_http_requests_total")
	})
}
