package http

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// redirectWithError bounces back to a page with a user-facing error message
// in the query string. Pages read it via c.Query("error").
func redirectWithError(c *gin.Context, path, msg string) {
	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}
	c.Redirect(http.StatusSeeOther, path+separator+"error="+url.QueryEscape(msg))
}

// respondInternalError logs the error and renders a plain 500.
func respondInternalError(c *gin.Context, context string, err error) {
	log.Printf("ERROR %s: %v", context, err)
	c.String(http.StatusInternalServerError, "Internal server error")
}
