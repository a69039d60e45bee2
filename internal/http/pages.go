package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The HTML pages are thin glue over the API; templates are loaded by the
// server entrypoint via LoadHTMLGlob.

func (h *Handler) homePage(c *gin.Context) {
	books, err := h.books.ListBooks(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load catalog")
		return
	}
	c.HTML(http.StatusOK, "home.html", gin.H{"Books": books})
}

func (h *Handler) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

func (h *Handler) registerPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", nil)
}
