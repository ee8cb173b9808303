package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthController handles the login, registration and logout endpoints.
type AuthController struct {
	service *Service
	codec   *SessionCodec
	guard   *Guard
}

// NewAuthController creates a new authentication controller.
func NewAuthController(service *Service, codec *SessionCodec, guard *Guard) *AuthController {
	return &AuthController{
		service: service,
		codec:   codec,
		guard:   guard,
	}
}

// RegisterRoutes registers authentication routes on the router.
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	router.GET("/login", ac.LoginPage)
	router.POST("/login", ac.Login)
	router.GET("/register", ac.RegisterPage)
	router.POST("/register", ac.Register)
	// Logout mutates session state, so it only answers POST and sits behind
	// the CSRF check like every other form.
	router.POST("/logout", ac.Logout)
}

// LoginPage renders the login form.
func (ac *AuthController) LoginPage(c *gin.Context) {
	// Already signed in, nothing to do here
	if ac.guard.Authorize(c.Request, "").Status == StatusAuthorized {
		c.Redirect(http.StatusFound, HomePath)
		return
	}

	c.HTML(http.StatusOK, "login", gin.H{
		"Title":     "Login",
		"CSRFToken": GetCSRFToken(c),
		"Error":     c.Query("error"),
	})
}

// Login handles the login form submission.
func (ac *AuthController) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := ac.service.Login(email, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			ac.renderLoginError(c, email, "Invalid credentials")
			return
		}
		log.Printf("login failed: %v", err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	ac.createSession(c, user.ID, HomePath)
}

// RegisterPage renders the manager self-registration form.
func (ac *AuthController) RegisterPage(c *gin.Context) {
	if ac.guard.Authorize(c.Request, "").Status == StatusAuthorized {
		c.Redirect(http.StatusFound, HomePath)
		return
	}

	c.HTML(http.StatusOK, "register", gin.H{
		"Title":     "Create Account",
		"CSRFToken": GetCSRFToken(c),
	})
}

// Register handles manager self-registration.
func (ac *AuthController) Register(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	confirmPassword := c.PostForm("confirmPassword")

	if password != confirmPassword {
		ac.renderRegisterError(c, email, "Passwords don't match")
		return
	}

	user, err := ac.service.RegisterManager(email, password)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			ac.renderRegisterError(c, email, "User already exists")
		case errors.Is(err, ErrEmailRequired), errors.Is(err, ErrEmailInvalid):
			ac.renderRegisterError(c, email, "Invalid email format")
		case errors.Is(err, ErrPasswordTooShort):
			ac.renderRegisterError(c, email, "Password must be at least 8 characters")
		case errors.Is(err, ErrPasswordTooLong):
			ac.renderRegisterError(c, email, "Password is too long")
		default:
			log.Printf("registration failed: %v", err)
			c.String(http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	ac.createSession(c, user.ID, HomePath)
}

// Logout destroys the session cookie and redirects to login.
func (ac *AuthController) Logout(c *gin.Context) {
	ac.codec.ClearCookie(c.Writer)
	c.Redirect(http.StatusFound, LoginPath)
}

// createSession issues a session cookie for the user and redirects.
func (ac *AuthController) createSession(c *gin.Context, userID, redirectTo string) {
	value, err := ac.codec.Issue(map[string]string{
		SessionKeyUserID: userID,
	})
	if err != nil {
		// Failing to sign a session is a server fault, never a silent pass
		log.Printf("failed to issue session: %v", err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	ac.codec.SetCookie(c.Writer, value)
	c.Redirect(http.StatusFound, redirectTo)
}

func (ac *AuthController) renderLoginError(c *gin.Context, email, msg string) {
	c.HTML(http.StatusOK, "login", gin.H{
		"Title":     "Login",
		"Email":     email,
		"CSRFToken": GetCSRFToken(c),
		"Error":     msg,
	})
}

func (ac *AuthController) renderRegisterError(c *gin.Context, email, msg string) {
	c.HTML(http.StatusOK, "register", gin.H{
		"Title":     "Create Account",
		"Email":     email,
		"CSRFToken": GetCSRFToken(c),
		"Error":     msg,
	})
}
