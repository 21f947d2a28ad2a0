package handlers

import (
	"net/http"

	"blackjack-sim/internal/api/models"
	"blackjack-sim/internal/run"
	"blackjack-sim/internal/stats"

	"github.com/gin-gonic/gin"
)

// RunSweep handles POST /api/v1/sweep: one simulation per betting variant,
// each analyzed and ranked by house edge.
func (h *SimulateHandler) RunSweep(c *gin.Context) {
	var req models.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	cfg, err := h.resolve(req.SimulateRequest, h.target("sweep"))
	if err != nil {
		c.JSON(errorResponse(err))
		return
	}

	sweep := run.NewSweep(req.Variants)
	sweep.HaltOnError = !req.KeepGoing
	sweep.Build = func() run.Step {
		s := run.NewSimulate()
		s.Seed = req.Seed
		return s
	}
	sweep.BindConfig(cfg)
	sweepErr := sweep.Run()
	if sweepErr != nil && sweep.HaltOnError {
		c.JSON(errorResponse(sweepErr))
		return
	}

	// Analyze whichever variant targets were produced.
	summaries := map[string]stats.Summary{}
	for _, variant := range sweep.Variants {
		derived := cfg
		derived.OutputTarget = run.VariantTarget(cfg.OutputTarget, variant)
		analyze := run.NewAnalyze()
		analyze.BindConfig(derived)
		if err := analyze.Run(); err != nil {
			if sweepErr == nil {
				c.JSON(errorResponse(err))
				return
			}
			continue
		}
		report, err := analyze.Report()
		if err != nil {
			c.JSON(errorResponse(err))
			return
		}
		summaries[variant] = report.Summary
	}

	ranked := stats.RankByEdge(summaries, float64(cfg.Stake))
	resp := models.SweepResponse{Status: "ok"}
	if sweepErr != nil {
		resp.Status = "partial"
		resp.Failure = sweepErr.Error()
	}
	for _, v := range ranked {
		resp.Ranked = append(resp.Ranked, models.VariantReport{
			Variant: v.Variant,
			Summary: models.SummaryReport{
				Target: run.VariantTarget(cfg.OutputTarget, v.Variant),
				Count:  v.Summary.Count,
				Mean:   v.Mean,
				Edge:   v.Edge,
				Min:    v.Summary.Min,
				Max:    v.Summary.Max,
			},
		})
	}
	c.JSON(http.StatusOK, resp)
}
