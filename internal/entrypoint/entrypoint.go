package entrypoint

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/buffetops/buffet/internal/auth"
	"github.com/buffetops/buffet/internal/config"
	"github.com/buffetops/buffet/internal/database"
	"github.com/buffetops/buffet/internal/database/items"
	"github.com/buffetops/buffet/internal/database/logs"
	"github.com/buffetops/buffet/internal/database/pots"
	"github.com/buffetops/buffet/internal/database/users"
	http_controllers "github.com/buffetops/buffet/internal/http"
)

// Serve runs the HTTP server until interrupted, then shuts down gracefully.
func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires the application together and serves it.
func Run(cfg *config.Config, version, commit string) {
	log.Printf("Starting Buffet Tracker v%s (commit %s)", version, commit)

	// Secrets must exist before the codec and CSRF middleware are built.
	// Auto-generated secrets invalidate sessions on restart, hence the
	// warnings.
	if cfg.Auth.SessionSecret == "" {
		secret, err := auth.GenerateSecret()
		if err != nil {
			log.Fatalf("Failed to generate session secret: %v", err)
		}
		cfg.Auth.SessionSecret = secret
		log.Printf("WARNING: SESSION_SECRET not set, generated an ephemeral one. Sessions will not survive restarts.")
	}
	if cfg.Auth.CSRFSecret == "" {
		secret, err := auth.GenerateSecret()
		if err != nil {
			log.Fatalf("Failed to generate CSRF secret: %v", err)
		}
		cfg.Auth.CSRFSecret = secret
		log.Printf("WARNING: CSRF_SECRET not set, generated an ephemeral one.")
	}

	csrfSecret, err := hex.DecodeString(cfg.Auth.CSRFSecret)
	if err != nil {
		log.Fatalf("CSRF_SECRET must be hex-encoded: %v", err)
	}

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	usersRepo := users.NewRepository(db.DB)
	authService := auth.NewService(usersRepo, cfg.Auth)
	sessionCodec, err := auth.NewSessionCodec(cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to create session codec: %v", err)
	}
	guard := auth.NewGuard(authService, sessionCodec)

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		AuthService:   authService,
		SessionCodec:  sessionCodec,
		Guard:         guard,
		CSRFSecret:    csrfSecret,
		SecureCookies: cfg.Auth.SecureCookies,
		UsersRepo:     usersRepo,
		ItemsRepo:     items.NewRepository(db.DB),
		PotsRepo:      pots.NewRepository(db.DB),
		LogsRepo:      logs.NewRepository(db.DB),
		TemplatesPath: cfg.UI.TemplatesPath,
		StaticPath:    cfg.UI.StaticPath,
		Version:       version,
		Commit:        commit,
	})

	Serve(router, cfg)
}
