package httpadapter

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokugame/internal/hint"
	"svw.info/sudokugame/internal/infrastructure/storage"
	"svw.info/sudokugame/internal/solver"
	"svw.info/sudokugame/internal/usecase"
	"svw.info/sudokugame/internal/validator"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	uc := usecase.NewService(
		solver.NewBacktrackingSolver(),
		validator.New(),
		hint.NewReveal(rand.New(rand.NewSource(1))),
		nil,
		storage.NewFS(t.TempDir()),
	)
	r := gin.New()
	New(uc).Register(r)
	return r
}

func post(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// badGrid holds a cell value outside 0..9.
func badGrid() [9][9]int {
	var g [9][9]int
	g[0][0] = 10
	return g
}

// TestRejectsOutOfRangeCells verifies every board-taking endpoint returns
// 400 for a cell value outside 0..9 instead of letting it reach the engine.
func TestRejectsOutOfRangeCells(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{
		"/api/solve", "/api/validate", "/api/complete",
		"/api/compare", "/api/stats", "/api/hint",
	} {
		w := post(t, r, path, map[string]any{"board": badGrid()})
		assert.Equal(t, http.StatusBadRequest, w.Code, "%s must reject cell value 10", path)
		assert.Contains(t, w.Body.String(), "want 0-9")
	}

	w := post(t, r, "/api/save", map[string]any{"name": "x", "board": map[string]any{"board": badGrid()}})
	assert.Equal(t, http.StatusBadRequest, w.Code, "save must reject cell value 10")
}

// TestRejectsOutOfRangeSolvedBoard verifies the reference board in pair
// requests is checked too.
func TestRejectsOutOfRangeSolvedBoard(t *testing.T) {
	r := newTestRouter(t)
	w := post(t, r, "/api/compare", map[string]any{"board": [9][9]int{}, "solved": badGrid()})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestValidateEndpointHappyPath verifies an in-range board still flows
// through to the engine.
func TestValidateEndpointHappyPath(t *testing.T) {
	r := newTestRouter(t)

	var dup [9][9]int
	dup[0][0] = 5
	dup[0][8] = 5
	w := post(t, r, "/api/validate", map[string]any{"board": dup})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK        bool `json:"ok"`
		Conflicts []struct {
			Row int `json:"row"`
			Col int `json:"col"`
		} `json:"conflicts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Len(t, resp.Conflicts, 2)
}
