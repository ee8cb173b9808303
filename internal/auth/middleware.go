package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buffetops/buffet/internal/entities"
)

// Redirect targets for failed authorization.
const (
	LoginPath = "/login"
	HomePath  = "/"
)

// ContextKeyUser is the gin context key holding the resolved user.
const ContextKeyUser = "auth_user"

// AuthStatus is the outcome of an authorization check.
type AuthStatus int

const (
	// StatusAuthorized means the session resolved to a live user with a
	// sufficient role.
	StatusAuthorized AuthStatus = iota
	// StatusUnauthenticated means no session, an invalid/expired cookie,
	// or a cookie referencing a user that no longer exists.
	StatusUnauthenticated
	// StatusForbidden means a live user with an insufficient role.
	StatusForbidden
)

// AuthResult is the typed outcome of resolving a request's session. The
// transport layer decides how each variant maps onto a response; this type
// never triggers redirects by itself.
type AuthResult struct {
	Status AuthStatus
	User   *entities.User
	Err    error // set only on infrastructure failure
}

// Guard resolves session cookies into users and enforces roles.
type Guard struct {
	service *Service
	codec   *SessionCodec
}

// NewGuard creates a request guard backed by the given service and codec.
func NewGuard(service *Service, codec *SessionCodec) *Guard {
	return &Guard{service: service, codec: codec}
}

// Authorize resolves the request's session cookie and checks the role.
// requiredRole may be empty to accept any authenticated user.
func (g *Guard) Authorize(r *http.Request, requiredRole entities.UserRole) AuthResult {
	payload := g.codec.ReadRequest(r)
	userID := payload[SessionKeyUserID]
	if userID == "" {
		return AuthResult{Status: StatusUnauthenticated}
	}

	user, err := g.service.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// Cryptographically valid cookie for a deleted user
			return AuthResult{Status: StatusUnauthenticated}
		}
		return AuthResult{Status: StatusUnauthenticated, Err: err}
	}

	if requiredRole != "" && user.Role != requiredRole {
		return AuthResult{Status: StatusForbidden, User: user}
	}

	return AuthResult{Status: StatusAuthorized, User: user}
}

// RequireUser returns middleware that admits any authenticated user and
// redirects everyone else to the login page.
func (g *Guard) RequireUser() gin.HandlerFunc {
	return g.require("")
}

// RequireManager returns middleware that admits managers only. An
// authenticated non-manager is sent to the landing page, everyone else to
// the login page.
func (g *Guard) RequireManager() gin.HandlerFunc {
	return g.require(entities.UserRoleManager)
}

func (g *Guard) require(role entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := g.Authorize(c.Request, role)
		if result.Err != nil {
			c.String(http.StatusInternalServerError, "Internal server error")
			c.Abort()
			return
		}

		switch result.Status {
		case StatusAuthorized:
			c.Set(ContextKeyUser, result.User)
			c.Next()
		case StatusForbidden:
			c.Redirect(http.StatusFound, HomePath)
			c.Abort()
		default:
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
		}
	}
}

// CurrentUser retrieves the user resolved by RequireUser/RequireManager.
// Returns nil on unguarded routes.
func CurrentUser(c *gin.Context) *entities.User {
	if v, exists := c.Get(ContextKeyUser); exists {
		if user, ok := v.(*entities.User); ok {
			return user
		}
	}
	return nil
}
