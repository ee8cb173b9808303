package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buffetops/buffet/internal/auth"
	"github.com/buffetops/buffet/internal/database/logs"
	"github.com/buffetops/buffet/internal/entities"
)

// DashboardController renders the aggregation landing page.
type DashboardController struct {
	logsRepo *logs.Repository
}

func NewDashboardController(logsRepo *logs.Repository) *DashboardController {
	return &DashboardController{logsRepo: logsRepo}
}

// Page shows total production/waste weight plus per-item totals.
func (controller *DashboardController) Page(c *gin.Context) {
	user := auth.CurrentUser(c)

	totalProduction, err := controller.logsRepo.TotalWeight(entities.LogTypeProduction)
	if err != nil {
		respondInternalError(c, "loading production total", err)
		return
	}

	totalWaste, err := controller.logsRepo.TotalWeight(entities.LogTypeWaste)
	if err != nil {
		respondInternalError(c, "loading waste total", err)
		return
	}

	itemStats, err := controller.logsRepo.GetItemStats()
	if err != nil {
		respondInternalError(c, "loading item stats", err)
		return
	}

	c.HTML(http.StatusOK, "dashboard", gin.H{
		"Title":           "Dashboard",
		"User":            user,
		"TotalProduction": totalProduction,
		"TotalWaste":      totalWaste,
		"ItemStats":       itemStats,
		"CSRFToken":       auth.GetCSRFToken(c),
	})
}
