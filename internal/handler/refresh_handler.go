package handler

import (
	"errors"
	"log"
	"net/http"

	"speedrun-dashboard/internal/dataset"

	"github.com/gin-gonic/gin"
)

// RefreshResponse reports the outcome of a dataset refresh.
type RefreshResponse struct {
	Message string `json:"message" example:"Data refreshed - 3 new runs added."`
	Added   int    `json:"added"`
	Runs    int    `json:"runs"`
}

// Refresh godoc
// @Summary      Refresh the dataset
// @Description  Refetches runs from speedrun.com and rebuilds the dataset. Respects the refresh cooldown; when the cooldown is active the cached dataset keeps serving and 429 is returned.
// @Tags         Dashboard
// @Produce      json
// @Success      200 {object} handler.RefreshResponse
// @Failure      429 {object} handler.ErrorResponse "Cooldown active"
// @Failure      502 {object} handler.ErrorResponse "Upstream API unavailable"
// @Router       /api/refresh [post]
func Refresh(c *gin.Context) {
	refresh(c, false)
}

func refresh(c *gin.Context, force bool) {
	added, err := dataset.Refresh(force)
	if err != nil {
		if errors.Is(err, dataset.ErrCooldown) {
			remaining := int(dataset.CooldownRemaining().Seconds())
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":                      "Data was refreshed recently. Please wait before refreshing again.",
				"cooldown_remaining_seconds": remaining,
			})
			return
		}
		log.Printf("[ERROR] Refresh failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to refresh data from speedrun.com"})
		return
	}

	msg := "Data refreshed - no new runs were added."
	if added > 0 {
		msg = "Data updated successfully!"
	}
	NotifyRefresh(added, len(dataset.Snapshot()))
	c.JSON(http.StatusOK, RefreshResponse{
		Message: msg,
		Added:   added,
		Runs:    len(dataset.Snapshot()),
	})
}
