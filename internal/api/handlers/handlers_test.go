package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blackjack-sim/internal/api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	simulateHandler := NewSimulateHandler(t.TempDir())
	router := gin.New()
	router.POST("/api/v1/simulate", simulateHandler.RunSimulate)
	router.POST("/api/v1/sweep", simulateHandler.RunSweep)
	router.GET("/api/v1/strategies", NewStrategyHandler().ListStrategies)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRunSimulate(t *testing.T) {
	router := testRouter(t)
	samples := 20
	rounds := 5
	rec := postJSON(t, router, "/api/v1/simulate", models.SimulateRequest{
		Samples: &samples,
		Rounds:  &rounds,
		Seed:    3,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, int64(20), resp.Summary.Count)
	assert.GreaterOrEqual(t, resp.Summary.Max, resp.Summary.Min)
}

func TestRunSimulateIncludeRows(t *testing.T) {
	router := testRouter(t)
	samples := 5
	rec := postJSON(t, router, "/api/v1/simulate", models.SimulateRequest{
		Samples:     &samples,
		Seed:        3,
		IncludeRows: true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Rows, 5)
	assert.Equal(t, 0, resp.Rows[0].Sample)
}

func TestRunSimulateUnknownStrategy(t *testing.T) {
	router := testRouter(t)
	rec := postJSON(t, router, "/api/v1/simulate", models.SimulateRequest{
		BettingRule: "DoesNotExist",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "UNKNOWN_STRATEGY", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "DoesNotExist")
}

func TestRunSimulateBadPayout(t *testing.T) {
	router := testRouter(t)
	rec := postJSON(t, router, "/api/v1/simulate", models.SimulateRequest{
		Payout: "(1,2,3)",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "PAYOUT_FORMAT_ERROR", resp.Error.Code)
}

func TestRunSweep(t *testing.T) {
	router := testRouter(t)
	samples := 10
	rounds := 5
	rec := postJSON(t, router, "/api/v1/sweep", models.SweepRequest{
		SimulateRequest: models.SimulateRequest{Samples: &samples, Rounds: &rounds, Seed: 3},
		Variants:        []string{"Flat", "Martingale", "OneThreeTwoSix"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.SweepResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Ranked, 3)
	for i := 1; i < len(resp.Ranked); i++ {
		assert.LessOrEqual(t, resp.Ranked[i-1].Summary.Edge, resp.Ranked[i].Summary.Edge,
			"ranked ascending by edge")
	}
}

func TestListStrategies(t *testing.T) {
	router := testRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/strategies", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Axes []models.AxisInfo `json:"axes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Axes, 4)
	assert.Equal(t, "dealer_rule", resp.Axes[0].Axis)
	assert.Contains(t, resp.Axes[3].Keys, "Martingale")
}
