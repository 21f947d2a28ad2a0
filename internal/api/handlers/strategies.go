package handlers

import (
	"net/http"

	"blackjack-sim/internal/api/models"
	"blackjack-sim/internal/strategy"

	"github.com/gin-gonic/gin"
)

// StrategyHandler serves the registry vocabulary.
type StrategyHandler struct{}

func NewStrategyHandler() *StrategyHandler { return &StrategyHandler{} }

// ListStrategies handles GET /api/v1/strategies.
func (h *StrategyHandler) ListStrategies(c *gin.Context) {
	axes := []models.AxisInfo{
		{
			Axis:        strategy.AxisDealer,
			Keys:        strategy.DealerKeys(),
			Description: "Dealer drawing rule: whether the house hits soft 17.",
		},
		{
			Axis:        strategy.AxisSplit,
			Keys:        strategy.SplitKeys(),
			Description: "Pair splitting rule: whether split hands may split again.",
		},
		{
			Axis:        strategy.AxisPlayer,
			Keys:        strategy.PlayerKeys(),
			Description: "Player drawing rule applied to every hand.",
		},
		{
			Axis:        strategy.AxisBetting,
			Keys:        strategy.BettingKeys(),
			Description: "Bet sizing progression across rounds within a session.",
		},
	}
	c.JSON(http.StatusOK, gin.H{"axes": axes})
}
