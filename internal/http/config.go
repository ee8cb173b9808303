package http

import (
	"github.com/buffetops/buffet/internal/auth"
	"github.com/buffetops/buffet/internal/database/items"
	"github.com/buffetops/buffet/internal/database/logs"
	"github.com/buffetops/buffet/internal/database/pots"
	"github.com/buffetops/buffet/internal/database/users"
)

// RouterConfig contains all dependencies and configuration needed to create
// the HTTP router. This replaces a long parameter list in NewRouter.
type RouterConfig struct {
	// Authentication
	AuthService   *auth.Service
	SessionCodec  *auth.SessionCodec
	Guard         *auth.Guard
	CSRFSecret    []byte
	SecureCookies bool

	// Stores
	UsersRepo *users.Repository
	ItemsRepo *items.Repository
	PotsRepo  *pots.Repository
	LogsRepo  *logs.Repository

	// UI paths
	TemplatesPath string
	StaticPath    string

	// Application info
	Version string
	Commit  string
}
