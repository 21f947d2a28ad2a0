package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"sync/atomic"
	"time"

	"blackjack-sim/internal/api/models"
	"blackjack-sim/internal/config"
	"blackjack-sim/internal/record"
	"blackjack-sim/internal/run"

	"github.com/gin-gonic/gin"
)

// SimulateHandler runs simulate+analyze pipelines on behalf of API clients.
// Each request writes to its own file under ResultsDir, so concurrent
// requests never share an output target.
type SimulateHandler struct {
	ResultsDir string

	seq atomic.Int64
}

func NewSimulateHandler(resultsDir string) *SimulateHandler {
	return &SimulateHandler{ResultsDir: resultsDir}
}

// target returns a fresh per-request output path.
func (h *SimulateHandler) target(prefix string) string {
	name := fmt.Sprintf("%s_%d_%d.csv", prefix, time.Now().UnixNano(), h.seq.Add(1))
	return filepath.Join(h.ResultsDir, name)
}

// resolve layers the request overrides over the environment and the built-in
// defaults, with the server supplying the output target.
func (h *SimulateHandler) resolve(req models.SimulateRequest, target string) (config.Config, error) {
	envLayer, err := config.EnvLayer()
	if err != nil {
		return config.Config{}, err
	}
	serverLayer := config.NewMapLayer("server", map[string]string{"output_target": target})
	cfg, err := config.Resolve(req.Layer(), envLayer, serverLayer)
	if err != nil {
		return config.Config{}, err
	}
	if err := run.ValidateConfig(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// RunSimulate handles POST /api/v1/simulate.
func (h *SimulateHandler) RunSimulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	cfg, err := h.resolve(req, h.target("sim"))
	if err != nil {
		c.JSON(errorResponse(err))
		return
	}

	simulate := run.NewSimulate()
	simulate.Seed = req.Seed
	analyze := run.NewAnalyze()
	seq := run.NewSequence(simulate, analyze)
	seq.BindConfig(cfg)
	if err := seq.Run(); err != nil {
		c.JSON(errorResponse(err))
		return
	}

	report, err := analyze.Report()
	if err != nil {
		c.JSON(errorResponse(err))
		return
	}
	resp := models.SimulateResponse{Status: "ok", Summary: summaryReport(report)}

	if req.IncludeRows {
		rows, err := readRows(cfg.OutputTarget)
		if err != nil {
			c.JSON(errorResponse(err))
			return
		}
		resp.Rows = rows
	}
	c.JSON(http.StatusOK, resp)
}

func summaryReport(r run.Report) models.SummaryReport {
	return models.SummaryReport{
		Target: r.Target,
		Count:  r.Summary.Count,
		Mean:   r.Mean,
		Edge:   r.Edge,
		Min:    r.Summary.Min,
		Max:    r.Summary.Max,
	}
}

func readRows(target string) ([]models.RecordRow, error) {
	r, err := record.Open(target)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var out []models.RecordRow
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, models.RecordRow{
			Sample:       row.Sample,
			RoundsPlayed: row.RoundsPlayed,
			FinalBalance: row.FinalBalance,
		})
	}
}
