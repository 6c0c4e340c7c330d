package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const flashCookie = "quiz_flash"

// setFlash stores a one-shot message shown by the next rendered page.
func setFlash(c *gin.Context, msg string) {
	c.SetCookie(flashCookie, msg, 60, "/", "", false, true)
}

// popFlash reads and clears the pending flash message, if any.
func popFlash(c *gin.Context) string {
	msg, err := c.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return msg
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// Index renders the landing page.
func Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Flash": popFlash(c)})
}
