package handler

import (
	"net/http"

	"speedrun-dashboard/internal/dataset"
	"speedrun-dashboard/internal/view"

	"github.com/gin-gonic/gin"
)

// Chart endpoints return plain aggregate payloads; the page draws them
// client-side. Every payload is computed from one snapshot, so a chart can
// never disagree with the table for the same selection.

// GetPBProgression godoc
// @Summary      Personal best progression
// @Description  Running personal best per player over the filtered subset. Selecting a single player splits the traces by character and note instead.
// @Tags         Charts
// @Produce      json
// @Param        scope     query  string  false  "Scope (Individual Level, Boss or Full Game)"
// @Param        level     query  string  false  "Level or boss name"
// @Param        category  query  string  false  "Category name"
// @Param        character query  []string false "Character names (repeatable)"
// @Param        note      query  string  false  "Note (All, SG or No SG)"
// @Param        player    query  string  false  "Player name or All Players"
// @Success      200 {object} view.PBProgression
// @Router       /api/charts/pb-progression [get]
func GetPBProgression(c *gin.Context) {
	sel := parseSelection(c)
	sel.ShowObsolete = true // progression needs the full run history
	filtered := view.Apply(dataset.Snapshot(), sel)
	c.JSON(http.StatusOK, view.BuildPBProgression(filtered, sel.Player))
}

// GetTimeImprovements godoc
// @Summary      Player time improvements
// @Description  Total and per-run time improvements per player over the filtered subset.
// @Tags         Charts
// @Produce      json
// @Param        scope     query  string  false  "Scope (Individual Level, Boss or Full Game)"
// @Param        level     query  string  false  "Level or boss name"
// @Param        category  query  string  false  "Category name"
// @Param        character query  []string false "Character names (repeatable)"
// @Param        note      query  string  false  "Note (All, SG or No SG)"
// @Success      200 {object} view.TimeImprovements
// @Router       /api/charts/time-improvements [get]
func GetTimeImprovements(c *gin.Context) {
	sel := parseSelection(c)
	sel.ShowObsolete = true
	filtered := view.Apply(dataset.Snapshot(), sel)
	c.JSON(http.StatusOK, view.BuildTimeImprovements(filtered))
}

// GetWRCounts godoc
// @Summary      Current world record counts
// @Description  How many current world records each player holds, across the whole dataset.
// @Tags         Charts
// @Produce      json
// @Success      200 {object} view.WRCounts
// @Router       /api/charts/wr-counts [get]
func GetWRCounts(c *gin.Context) {
	c.JSON(http.StatusOK, view.BuildWRCounts(dataset.Snapshot()))
}

// GetCommunityOverview godoc
// @Summary      Community overview
// @Description  Community-wide aggregates: runs per month (overall and per character), the most played level/category pairs and runs per category.
// @Tags         Charts
// @Produce      json
// @Success      200 {object} view.CommunityOverview
// @Router       /api/charts/community [get]
func GetCommunityOverview(c *gin.Context) {
	c.JSON(http.StatusOK, view.BuildCommunityOverview(dataset.Snapshot()))
}
