package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buffetops/buffet/internal/auth"
	"github.com/buffetops/buffet/internal/database/items"
	"github.com/buffetops/buffet/internal/database/logs"
	"github.com/buffetops/buffet/internal/database/pots"
	"github.com/buffetops/buffet/internal/entities"
)

// LogsController handles production/waste entry. Any authenticated user may
// record entries against any item and pot.
type LogsController struct {
	logsRepo  *logs.Repository
	itemsRepo *items.Repository
	potsRepo  *pots.Repository
}

func NewLogsController(logsRepo *logs.Repository, itemsRepo *items.Repository, potsRepo *pots.Repository) *LogsController {
	return &LogsController{
		logsRepo:  logsRepo,
		itemsRepo: itemsRepo,
		potsRepo:  potsRepo,
	}
}

type logForm struct {
	Type   entities.LogType `form:"type" binding:"required,oneof=PRODUCTION WASTE"`
	Weight float64          `form:"weight" binding:"required,gt=0"`
	ItemID string           `form:"itemId" binding:"required"`
	PotID  string           `form:"potId" binding:"required"`
}

// NewPage renders the log entry form with item and pot choices.
func (controller *LogsController) NewPage(c *gin.Context) {
	user := auth.CurrentUser(c)

	allItems, err := controller.itemsRepo.GetAllItems()
	if err != nil {
		respondInternalError(c, "loading items", err)
		return
	}

	allPots, err := controller.potsRepo.GetAllPots()
	if err != nil {
		respondInternalError(c, "loading pots", err)
		return
	}

	c.HTML(http.StatusOK, "log_new", gin.H{
		"Title":     "Log Food Production/Waste",
		"User":      user,
		"Items":     allItems,
		"Pots":      allPots,
		"CSRFToken": auth.GetCSRFToken(c),
		"Error":     c.Query("error"),
		"Success":   c.Query("success") != "",
	})
}

// Create records a production or waste entry for the current user.
func (controller *LogsController) Create(c *gin.Context) {
	user := auth.CurrentUser(c)

	var form logForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, "/logs/new", "Invalid form data")
		return
	}

	_, err := controller.logsRepo.CreateLog(&entities.Log{
		UserID: user.ID,
		ItemID: form.ItemID,
		PotID:  form.PotID,
		Type:   form.Type,
		Weight: form.Weight,
	})
	if err != nil {
		respondInternalError(c, "creating log", err)
		return
	}

	c.Redirect(http.StatusFound, "/logs/new?success=1")
}
