package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lsandini/OnCall/pkg/auth"
	"github.com/lsandini/OnCall/pkg/database"
	"github.com/lsandini/OnCall/pkg/models"
)

// newTestRouter wires the real routes against a throwaway sqlite file
func newTestRouter(t *testing.T) (*Handler, *gin.Engine) {
	t.Setenv("DATA_PATH", filepath.Join(t.TempDir(), "test.db"))
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TIE_BREAK", "lexical")
	gin.SetMode(gin.TestMode)

	db := database.InitDB()
	h := &Handler{DB: db, Log: zap.NewNop()}

	r := gin.New()
	r.POST("/admin/login", h.Login)

	api := r.Group("/api")
	api.GET("/workers", h.ListWorkers)
	api.GET("/availability", h.GetAvailability)
	api.GET("/configurations/active", h.GetActiveConfiguration)
	api.GET("/schedules/:year/:month", h.GetSchedule)

	mutate := r.Group("/api")
	mutate.Use(h.AuthMiddleware())
	mutate.POST("/workers", h.CreateWorker)
	mutate.DELETE("/workers/:id", h.DeleteWorker)
	mutate.PUT("/availability", h.SetAvailability)
	mutate.POST("/configurations", h.CreateConfiguration)
	mutate.POST("/schedules/generate", h.GenerateSchedule)
	mutate.POST("/schedules/fill-gaps", h.FillScheduleGaps)

	return h, r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func adminToken(t *testing.T) string {
	token, err := auth.CreateToken("admin")
	require.NoError(t, err)
	return token
}

func TestMutatingRoutesRequireToken(t *testing.T) {
	_, r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/workers", "", gin.H{
		"name": "Test", "role": "resident", "type": "permanent",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/workers", "not-a-token", gin.H{
		"name": "Test", "role": "resident", "type": "permanent",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginFlow(t *testing.T) {
	h, r := newTestRouter(t)
	require.NoError(t, auth.EnsureAdminExists(h.DB))

	w := doJSON(t, r, http.MethodPost, "/admin/login", "", gin.H{
		"username": "admin", "password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)

	w = doJSON(t, r, http.MethodPost, "/api/workers", resp.AccessToken, gin.H{
		"name": "Dr. Virtanen", "role": "senior_specialist", "type": "permanent",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/admin/login", "", gin.H{
		"username": "admin", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWorkerValidation(t *testing.T) {
	_, r := newTestRouter(t)
	token := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/api/workers", token, gin.H{
		"name": "Bad Role", "role": "janitor", "type": "permanent",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/workers", token, gin.H{
		"role": "resident", "type": "permanent",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateAndFillGapsEndToEnd(t *testing.T) {
	h, r := newTestRouter(t)
	token := adminToken(t)

	// Roster: one of each role
	for _, body := range []gin.H{
		{"name": "Senior", "role": "senior_specialist", "type": "permanent"},
		{"name": "Resident", "role": "resident", "type": "permanent"},
		{"name": "Student", "role": "student", "type": "permanent"},
	} {
		w := doJSON(t, r, http.MethodPost, "/api/workers", token, body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	cfg := models.DefaultConfiguration("ignored")
	w := doJSON(t, r, http.MethodPost, "/api/configurations", token, gin.H{
		"name":               "Default",
		"shift_types":        cfg.ShiftTypes,
		"daily_requirements": cfg.DailyRequirements,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// First configuration becomes active automatically
	w = doJSON(t, r, http.MethodGet, "/api/configurations/active", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/schedules/generate", token, gin.H{
		"year": 2026, "month": 6,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var generated models.MonthlySchedule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &generated))
	require.NotEmpty(t, generated.Assignments)

	// The schedule is persisted and readable without a token
	w = doJSON(t, r, http.MethodGet, "/api/schedules/2026/6", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Find the resident and remove them from the roster
	var resident database.Worker
	require.NoError(t, h.DB.First(&resident, "role = ?", "resident").Error)
	w = doJSON(t, r, http.MethodDelete, "/api/workers/"+resident.ID, token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/schedules/fill-gaps", token, gin.H{
		"year": 2026, "month": 6,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var repaired models.MonthlySchedule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &repaired))
	for _, a := range repaired.Assignments {
		assert.NotEqual(t, resident.ID, a.WorkerID, "removed worker must not keep assignments")
	}
}

func TestFillGapsWithoutScheduleIs404(t *testing.T) {
	_, r := newTestRouter(t)
	token := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/api/schedules/fill-gaps", token, gin.H{
		"year": 2026, "month": 6,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetAvailabilityUpsertAndDelete(t *testing.T) {
	h, r := newTestRouter(t)
	token := adminToken(t)

	entry := gin.H{
		"worker_id": "w-1", "year": 2026, "week": 23, "day": 1,
		"shift_type_id": "evening", "status": "unavailable",
	}
	w := doJSON(t, r, http.MethodPut, "/api/availability", token, gin.H{"entries": []gin.H{entry}})
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	h.DB.Model(&database.AvailabilityEntry{}).Count(&count)
	assert.EqualValues(t, 1, count)

	// Same slot again with a new status replaces the row
	entry["status"] = "preferred"
	w = doJSON(t, r, http.MethodPut, "/api/availability", token, gin.H{"entries": []gin.H{entry}})
	require.Equal(t, http.StatusOK, w.Code)

	var row database.AvailabilityEntry
	require.NoError(t, h.DB.First(&row, "worker_id = ?", "w-1").Error)
	assert.Equal(t, "preferred", row.Status)

	// Setting a slot back to available removes its row
	entry["status"] = "available"
	w = doJSON(t, r, http.MethodPut, "/api/availability", token, gin.H{"entries": []gin.H{entry}})
	require.Equal(t, http.StatusOK, w.Code)

	h.DB.Model(&database.AvailabilityEntry{}).Count(&count)
	assert.EqualValues(t, 0, count)
}
