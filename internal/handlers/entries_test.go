package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodpath/backend/internal/apierror"
	"github.com/moodpath/backend/internal/models"
	"github.com/moodpath/backend/internal/repository"
	"github.com/moodpath/backend/internal/service"
)

func entryTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewEntryHandler(service.NewEntryService(repository.NewMemoryEntryRepository()))

	r := gin.New()
	r.POST("/entries", h.CreateEntry)
	r.GET("/entries", h.GetEntries)
	r.GET("/entries/:id", h.GetEntry)
	r.PUT("/entries/:id", h.UpdateEntry)
	r.DELETE("/entries/:id", h.DeleteEntry)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, user string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateEntry(t *testing.T) {
	r := entryTestRouter()

	w := doJSON(t, r, http.MethodPost, "/entries", "alice", gin.H{
		"timestamp":   "2025-06-16T09:00:00Z",
		"time_of_day": "morning",
		"mood":        "Good",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var entry models.MoodEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "alice", entry.UserID)
	assert.Equal(t, models.MoodGood, entry.Mood)
}

func TestCreateEntryValidation(t *testing.T) {
	r := entryTestRouter()

	w := doJSON(t, r, http.MethodPost, "/entries", "alice", gin.H{
		"time_of_day": "morning",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apierror.ContentTypeProblemJSON, w.Header().Get("Content-Type"))
}

func TestCreateEntryMissingMood(t *testing.T) {
	r := entryTestRouter()

	w := doJSON(t, r, http.MethodPost, "/entries", "alice", gin.H{
		"timestamp": "2025-06-16T09:00:00Z",
		"mood":      "",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var problem apierror.ProblemDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Equal(t, http.StatusBadRequest, problem.Status)
	assert.NotEmpty(t, problem.Title)
}

func TestGetEntryNotFound(t *testing.T) {
	r := entryTestRouter()

	w := doJSON(t, r, http.MethodGet, "/entries/nope", "alice", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apierror.ContentTypeProblemJSON, w.Header().Get("Content-Type"))
}

func TestEntryLifecycle(t *testing.T) {
	r := entryTestRouter()

	w := doJSON(t, r, http.MethodPost, "/entries", "alice", gin.H{
		"timestamp": "2025-06-16T09:00:00Z",
		"mood":      "Good",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.MoodEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPut, "/entries/"+created.ID, "alice", gin.H{"mood": "Bad"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.MoodEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.MoodBad, updated.Mood)

	// Another user cannot see or delete the entry.
	w = doJSON(t, r, http.MethodGet, "/entries/"+created.ID, "bob", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/entries/"+created.ID, "alice", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/entries/"+created.ID, "alice", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetEntriesDefaultsUser(t *testing.T) {
	r := entryTestRouter()

	w := doJSON(t, r, http.MethodPost, "/entries", "", gin.H{
		"timestamp": "2025-06-16T09:00:00Z",
		"mood":      "Okay",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/entries", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Entries []models.MoodEntry `json:"entries"`
		Count   int                `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "default", resp.Entries[0].UserID)
}
