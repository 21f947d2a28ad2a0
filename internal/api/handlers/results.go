package handlers

import (
	"net/http"
	"os"
	"strings"

	"blackjack-sim/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ResultsHandler lists the output files the server has produced.
type ResultsHandler struct {
	ResultsDir string
}

func NewResultsHandler(resultsDir string) *ResultsHandler {
	return &ResultsHandler{ResultsDir: resultsDir}
}

// ListResults handles GET /api/v1/results.
func (h *ResultsHandler) ListResults(c *gin.Context) {
	entries, err := os.ReadDir(h.ResultsDir)
	if err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusOK, gin.H{"results": []models.ResultFile{}})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "SINK_ERROR", Message: err.Error()},
		})
		return
	}

	results := make([]models.ResultFile, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		results = append(results, models.ResultFile{Name: e.Name(), Size: info.Size()})
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
