package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/legionhq/legion-tracker/internal/auth"
	"github.com/legionhq/legion-tracker/internal/domain"
	"github.com/legionhq/legion-tracker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdmin = "KURAMA"

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	return NewRouter(RouterDeps{
		Store:      repository.NewMemoryStore(),
		JWTMgr:     auth.NewJWTManager("test-secret-key", time.Hour),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Ping:       nil,
		AdminName:  testAdmin,
		CORSOrigin: "*",
	})
}

func doJSON(t *testing.T, router chi.Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(dst))
}

// registerAndLogin creates a member over HTTP and returns its bearer token.
func registerAndLogin(t *testing.T, router chi.Router, name string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/members", "", domain.MemberInput{
		Name: name, Password: "hunter2", Level: 50, Class: domain.ClassWarrior, Power: 1000,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/login", "", map[string]string{
		"name": name, "password": "hunter2",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result struct {
		Token string `json:"token"`
	}
	decodeBody(t, rec, &result)
	require.NotEmpty(t, result.Token)
	return result.Token
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestBossRoutesRequireLeader(t *testing.T) {
	router := newTestRouter(t)
	input := domain.BossInput{Name: "QUIMERA", Level: 38, Location: "MAPA 6", RespawnTimeHours: 2}

	rec := doJSON(t, router, http.MethodPost, "/api/bosses", "", input)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	memberToken := registerAndLogin(t, router, "Alice")
	rec = doJSON(t, router, http.MethodPost, "/api/bosses", memberToken, input)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := registerAndLogin(t, router, testAdmin)
	rec = doJSON(t, router, http.MethodPost, "/api/bosses", adminToken, input)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestBossLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, testAdmin)

	rec := doJSON(t, router, http.MethodPost, "/api/bosses", token, domain.BossInput{
		Name: "THRANDIR", Level: 43, Location: "MAPA 12", RespawnTimeHours: 2,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var boss domain.Boss
	decodeBody(t, rec, &boss)
	assert.True(t, boss.IsAlive)
	assert.Equal(t, domain.DefaultIconType, boss.IconType)

	rec = doJSON(t, router, http.MethodPost, "/api/bosses/"+boss.ID.String()+"/kill", token, map[string]string{
		"killedBy": "Alice",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var killed domain.Boss
	decodeBody(t, rec, &killed)
	assert.False(t, killed.IsAlive)
	require.NotNil(t, killed.LastKilledBy)
	assert.Equal(t, "Alice", *killed.LastKilledBy)
	require.NotNil(t, killed.LastKilledAt)

	rec = doJSON(t, router, http.MethodGet, "/api/activities", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var activities []domain.Activity
	decodeBody(t, rec, &activities)
	require.NotEmpty(t, activities)
	assert.Equal(t, domain.ActivityBossKilled, activities[0].Type)
	assert.Contains(t, activities[0].Description, "Alice")

	rec = doJSON(t, router, http.MethodPost, "/api/bosses/"+boss.ID.String()+"/revive", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var revived domain.Boss
	decodeBody(t, rec, &revived)
	assert.True(t, revived.IsAlive)
	assert.Nil(t, revived.LastKilledAt)
	assert.Nil(t, revived.LastKilledBy)

	rec = doJSON(t, router, http.MethodDelete, "/api/bosses/"+boss.ID.String(), token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/bosses", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var bosses []domain.Boss
	decodeBody(t, rec, &bosses)
	assert.Empty(t, bosses)
}

func TestKillUnknownBossReturns404(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, testAdmin)

	rec := doJSON(t, router, http.MethodPost, "/api/bosses/00000000-0000-0000-0000-000000000001/kill", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminHiddenFromMemberListing(t *testing.T) {
	router := newTestRouter(t)
	registerAndLogin(t, router, testAdmin)
	registerAndLogin(t, router, "Alice")

	rec := doJSON(t, router, http.MethodGet, "/api/members", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var members []domain.Member
	decodeBody(t, rec, &members)
	require.Len(t, members, 1)
	assert.Equal(t, "Alice", members[0].Name)
}

func TestNotificationFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, testAdmin)

	rec := doJSON(t, router, http.MethodGet, "/api/notifications/active", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null\n", rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/notifications", token, map[string]string{
		"title": "War tonight", "message": "21:00",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/notifications", token, map[string]string{
		"title": "War moved", "message": "22:00",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/notifications/active", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var active domain.Notification
	decodeBody(t, rec, &active)
	assert.Equal(t, "War moved", active.Title)
	assert.True(t, active.IsActive)

	rec = doJSON(t, router, http.MethodDelete, "/api/notifications", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/notifications/active", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null\n", rec.Body.String())
}

func TestDashboardOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, testAdmin)
	registerAndLogin(t, router, "Alice")

	rec := doJSON(t, router, http.MethodPost, "/api/bosses", token, domain.BossInput{
		Name: "GYES", Level: 68, Location: "MAPA 10", RespawnTimeHours: 4,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/dashboard", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats struct {
		TotalBosses  int `json:"totalBosses"`
		AliveBosses  int `json:"aliveBosses"`
		DeadBosses   int `json:"deadBosses"`
		TotalMembers int `json:"totalMembers"`
	}
	decodeBody(t, rec, &stats)
	assert.Equal(t, 1, stats.TotalBosses)
	assert.Equal(t, 1, stats.AliveBosses)
	assert.Equal(t, 0, stats.DeadBosses)
	assert.Equal(t, 1, stats.TotalMembers, "admin is not counted")
}
