/**
* Name:         view_handler.go
* Description:  HTTP handlers for the filter options, leaderboard table and
*               dashboard status.
 */
package handler

import (
	"net/http"
	"time"

	"speedrun-dashboard/internal/dataset"
	"speedrun-dashboard/internal/models"
	"speedrun-dashboard/internal/view"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"error cause and description"`
}

// TableResponse wraps the filtered leaderboard rows.
type TableResponse struct {
	Rows  []view.TableRow `json:"rows"`
	Total int             `json:"total"`
}

// StatusResponse reports dataset health for the page header.
type StatusResponse struct {
	Runs              int    `json:"runs"`
	LastRefresh       string `json:"last_refresh,omitempty"`
	CooldownRemaining int    `json:"cooldown_remaining_seconds"`
}

// parseSelection builds a FilterSelection from query parameters. Invalid
// values are not rejected here; view.Sanitize clamps them to the widest
// permissive default so the render never fails on bad input.
func parseSelection(c *gin.Context) models.FilterSelection {
	sel := models.FilterSelection{
		Scope:        c.Query("scope"),
		LevelName:    c.Query("level"),
		CategoryName: c.Query("category"),
		Note:         c.Query("note"),
		Player:       c.Query("player"),
		ShowObsolete: c.Query("show_obsolete") == "true",
	}

	if chars, ok := c.GetQueryArray("character"); ok {
		sel.Characters = chars
	}

	if from := c.Query("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			sel.DateFrom = t
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			sel.DateTo = t
		}
	}
	return sel
}

// GetOptions godoc
// @Summary      Filter options
// @Description  Returns the selector contents (scopes, levels, categories, characters, notes, players) for the current scope/level/category.
// @Tags         Dashboard
// @Produce      json
// @Param        scope    query  string  false  "Scope (Individual Level, Boss or Full Game)"
// @Param        level    query  string  false  "Level or boss name"
// @Param        category query  string  false  "Category name"
// @Success      200 {object} view.Options
// @Router       /api/options [get]
func GetOptions(c *gin.Context) {
	runs := dataset.Snapshot()
	sel := view.Sanitize(parseSelection(c))
	c.JSON(http.StatusOK, view.BuildOptions(runs, sel.Scope, sel.LevelName, sel.CategoryName))
}

// GetRuns godoc
// @Summary      Filtered leaderboard table
// @Description  Returns the runs matching the current filter selection as display-ready rows, best time first. Obsolete runs are hidden unless show_obsolete=true.
// @Tags         Dashboard
// @Produce      json
// @Param        scope         query  string  false  "Scope (Individual Level, Boss or Full Game)"
// @Param        level         query  string  false  "Level or boss name"
// @Param        category      query  string  false  "Category name"
// @Param        character     query  []string false "Character names (repeatable)"
// @Param        note          query  string  false  "Note (All, SG or No SG)"
// @Param        show_obsolete query  bool    false  "Include obsolete runs"
// @Param        from          query  string  false  "Earliest run date (YYYY-MM-DD)"
// @Param        to            query  string  false  "Latest run date (YYYY-MM-DD)"
// @Success      200 {object} handler.TableResponse
// @Router       /api/runs [get]
func GetRuns(c *gin.Context) {
	filtered := view.Apply(dataset.Snapshot(), parseSelection(c))
	c.JSON(http.StatusOK, TableResponse{
		Rows:  view.BuildTable(filtered),
		Total: len(filtered),
	})
}

// GetStatus godoc
// @Summary      Dataset status
// @Description  Returns the run count, when the dataset was last refreshed and how long until the next public refresh is allowed.
// @Tags         Dashboard
// @Produce      json
// @Success      200 {object} handler.StatusResponse
// @Router       /api/status [get]
func GetStatus(c *gin.Context) {
	resp := StatusResponse{
		Runs:              len(dataset.Snapshot()),
		CooldownRemaining: int(dataset.CooldownRemaining().Seconds()),
	}
	if last := dataset.LastRefresh(); !last.IsZero() {
		resp.LastRefresh = last.Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, resp)
}
