package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buffetops/buffet/internal/auth"
	"github.com/buffetops/buffet/internal/database/items"
	"github.com/buffetops/buffet/internal/entities"
)

// ItemsController handles the manager-only item CRUD pages.
type ItemsController struct {
	repo *items.Repository
}

func NewItemsController(repo *items.Repository) *ItemsController {
	return &ItemsController{repo: repo}
}

type itemForm struct {
	Name        string  `form:"name" binding:"required"`
	Description string  `form:"description"`
	COGS        float64 `form:"cogs" binding:"min=0"`
}

// Page lists the manager's items.
func (controller *ItemsController) Page(c *gin.Context) {
	manager := auth.CurrentUser(c)

	ownItems, err := controller.repo.GetItemsByOwner(manager.ID)
	if err != nil {
		respondInternalError(c, "loading items", err)
		return
	}

	c.HTML(http.StatusOK, "items", gin.H{
		"Title":     "Manage Items",
		"User":      manager,
		"Items":     ownItems,
		"CSRFToken": auth.GetCSRFToken(c),
		"Error":     c.Query("error"),
	})
}

// Create adds a new item for the manager.
func (controller *ItemsController) Create(c *gin.Context) {
	manager := auth.CurrentUser(c)

	var form itemForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, "/items", "Invalid form data")
		return
	}

	_, err := controller.repo.CreateItem(&entities.Item{
		UserID:      manager.ID,
		Name:        form.Name,
		Description: form.Description,
		COGS:        form.COGS,
	})
	if err != nil {
		respondInternalError(c, "creating item", err)
		return
	}

	c.Redirect(http.StatusFound, "/items")
}

// Update edits one of the manager's items.
func (controller *ItemsController) Update(c *gin.Context) {
	manager := auth.CurrentUser(c)
	itemID := c.Param("id")

	var form itemForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, "/items", "Invalid form data")
		return
	}

	err := controller.repo.UpdateItem(manager.ID, itemID, form.Name, form.Description, form.COGS)
	if err != nil {
		if errors.Is(err, items.ErrNotFound) {
			redirectWithError(c, "/items", "Item not found")
			return
		}
		respondInternalError(c, "updating item", err)
		return
	}

	c.Redirect(http.StatusFound, "/items")
}

// Delete removes one of the manager's items.
func (controller *ItemsController) Delete(c *gin.Context) {
	manager := auth.CurrentUser(c)
	itemID := c.Param("id")

	err := controller.repo.DeleteItem(manager.ID, itemID)
	if err != nil {
		if errors.Is(err, items.ErrNotFound) {
			redirectWithError(c, "/items", "Item not found")
			return
		}
		respondInternalError(c, "deleting item", err)
		return
	}

	c.Redirect(http.StatusFound, "/items")
}
