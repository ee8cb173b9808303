package auth

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func csrfRouter(handlerRan *bool) *gin.Engine {
	router := gin.New()
	router.Use(CSRFMiddleware([]byte(strings.Repeat("k", 32)), false))
	router.GET("/form", func(c *gin.Context) {
		c.String(http.StatusOK, GetCSRFToken(c))
	})
	router.POST("/items", func(c *gin.Context) {
		*handlerRan = true
		c.String(http.StatusOK, "created")
	})
	return router
}

func TestCSRFMiddleware_RejectsForgedPost(t *testing.T) {
	var handlerRan bool
	router := csrfRouter(&handlerRan)

	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader("name=Forged"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
	if handlerRan {
		t.Error("protected handler must not run when the token is missing")
	}
}

func TestCSRFMiddleware_RejectedPostBouncesToReferer(t *testing.T) {
	var handlerRan bool
	router := csrfRouter(&handlerRan)

	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader("name=Forged"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", "/items")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rr.Code)
	}
	if handlerRan {
		t.Error("protected handler must not run when the token is missing")
	}
}

func TestCSRFMiddleware_SafeMethodsExposeToken(t *testing.T) {
	var handlerRan bool
	router := csrfRouter(&handlerRan)

	req := httptest.NewRequest(http.MethodGet, "/form", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Body.String() == "" {
		t.Error("safe methods should make the token available to templates")
	}
}

func TestCSRFMiddleware_AcceptsTokenedPost(t *testing.T) {
	var handlerRan bool
	router := csrfRouter(&handlerRan)

	// Fetch a token and its paired cookie first, like a browser rendering
	// the form would.
	get := httptest.NewRequest(http.MethodGet, "/form", nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, get)
	token := getRec.Body.String()

	form := url.Values{"gorilla.csrf.Token": {token}}
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range getRec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !handlerRan {
		t.Error("a post carrying a valid token should reach the handler")
	}
}
