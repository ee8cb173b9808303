// Package auth provides authentication and role authorization for the
// buffet tracker.
//
// Sessions are stateless: the session payload is signed (and encrypted) into
// the cookie value itself and nothing is persisted server-side. The trade-off
// is that a single cookie cannot be revoked on demand; deleting the user row
// invalidates every outstanding cookie for that user, because the guards
// re-resolve the user on each request.
//
// # Usage
//
// Initialize in the entrypoint:
//
//	svc := auth.NewService(db, cfg.Auth)
//	codec, _ := auth.NewSessionCodec(cfg.Auth)
//	guard := auth.NewGuard(svc, codec)
//	router.GET("/items", guard.RequireManager(), itemsController.Page)
//
// Extract the resolved user in handlers:
//
//	user := auth.CurrentUser(c)
package auth
