package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buffetops/buffet/internal/auth"
	"github.com/buffetops/buffet/internal/database/users"
)

// EmployeesController handles the manager-only employee account pages.
type EmployeesController struct {
	authService *auth.Service
	usersRepo   *users.Repository
}

func NewEmployeesController(authService *auth.Service, usersRepo *users.Repository) *EmployeesController {
	return &EmployeesController{
		authService: authService,
		usersRepo:   usersRepo,
	}
}

// Page lists the manager's employees.
func (controller *EmployeesController) Page(c *gin.Context) {
	manager := auth.CurrentUser(c)

	employees, err := controller.usersRepo.GetEmployees(manager.ID)
	if err != nil {
		respondInternalError(c, "loading employees", err)
		return
	}

	c.HTML(http.StatusOK, "employees", gin.H{
		"Title":     "Manage Employees",
		"User":      manager,
		"Employees": employees,
		"CSRFToken": auth.GetCSRFToken(c),
		"Error":     c.Query("error"),
	})
}

// Create registers a new employee account under the manager.
func (controller *EmployeesController) Create(c *gin.Context) {
	manager := auth.CurrentUser(c)
	email := c.PostForm("email")
	password := c.PostForm("password")

	_, err := controller.authService.RegisterEmployee(manager.ID, email, password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailTaken):
			redirectWithError(c, "/employees", "User already exists")
		case errors.Is(err, auth.ErrEmailRequired), errors.Is(err, auth.ErrEmailInvalid):
			redirectWithError(c, "/employees", "Invalid email format")
		case errors.Is(err, auth.ErrPasswordTooShort):
			redirectWithError(c, "/employees", "Password must be at least 8 characters")
		case errors.Is(err, auth.ErrPasswordTooLong):
			redirectWithError(c, "/employees", "Password is too long")
		case errors.Is(err, auth.ErrNotManager):
			c.Redirect(http.StatusFound, auth.HomePath)
		default:
			respondInternalError(c, "creating employee", err)
		}
		return
	}

	c.Redirect(http.StatusFound, "/employees")
}

// Delete removes one of the manager's employees. Their session cookies stay
// cryptographically valid but stop resolving once the row is gone.
func (controller *EmployeesController) Delete(c *gin.Context) {
	manager := auth.CurrentUser(c)
	employeeID := c.Param("id")

	err := controller.authService.DeleteEmployee(manager.ID, employeeID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			redirectWithError(c, "/employees", "Employee not found")
			return
		}
		respondInternalError(c, "deleting employee", err)
		return
	}

	c.Redirect(http.StatusFound, "/employees")
}
