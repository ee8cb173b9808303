package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buffetops/buffet/internal/auth"
	"github.com/buffetops/buffet/internal/database/pots"
	"github.com/buffetops/buffet/internal/entities"
)

// PotsController handles the manager-only pot CRUD pages.
type PotsController struct {
	repo *pots.Repository
}

func NewPotsController(repo *pots.Repository) *PotsController {
	return &PotsController{repo: repo}
}

type potForm struct {
	Name     string  `form:"name" binding:"required"`
	Capacity float64 `form:"capacity" binding:"required,gt=0"`
	Weight   float64 `form:"weight"`
	ImgURL   string  `form:"imgUrl"`
}

// Page lists the manager's pots.
func (controller *PotsController) Page(c *gin.Context) {
	manager := auth.CurrentUser(c)

	ownPots, err := controller.repo.GetPotsByOwner(manager.ID)
	if err != nil {
		respondInternalError(c, "loading pots", err)
		return
	}

	c.HTML(http.StatusOK, "pots", gin.H{
		"Title":     "Manage Pots",
		"User":      manager,
		"Pots":      ownPots,
		"CSRFToken": auth.GetCSRFToken(c),
		"Error":     c.Query("error"),
	})
}

// Create adds a new pot for the manager.
func (controller *PotsController) Create(c *gin.Context) {
	manager := auth.CurrentUser(c)

	var form potForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, "/pots", "Invalid form data")
		return
	}

	_, err := controller.repo.CreatePot(&entities.Pot{
		UserID:   manager.ID,
		Name:     form.Name,
		Capacity: form.Capacity,
		Weight:   form.Weight,
		ImgURL:   form.ImgURL,
	})
	if err != nil {
		respondInternalError(c, "creating pot", err)
		return
	}

	c.Redirect(http.StatusFound, "/pots")
}

// Update edits one of the manager's pots.
func (controller *PotsController) Update(c *gin.Context) {
	manager := auth.CurrentUser(c)
	potID := c.Param("id")

	var form potForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, "/pots", "Invalid form data")
		return
	}

	err := controller.repo.UpdatePot(manager.ID, potID, form.Name, form.Capacity, form.Weight, form.ImgURL)
	if err != nil {
		if errors.Is(err, pots.ErrNotFound) {
			redirectWithError(c, "/pots", "Pot not found")
			return
		}
		respondInternalError(c, "updating pot", err)
		return
	}

	c.Redirect(http.StatusFound, "/pots")
}

// Delete removes one of the manager's pots.
func (controller *PotsController) Delete(c *gin.Context) {
	manager := auth.CurrentUser(c)
	potID := c.Param("id")

	err := controller.repo.DeletePot(manager.ID, potID)
	if err != nil {
		if errors.Is(err, pots.ErrNotFound) {
			redirectWithError(c, "/pots", "Pot not found")
			return
		}
		respondInternalError(c, "deleting pot", err)
		return
	}

	c.Redirect(http.StatusFound, "/pots")
}
