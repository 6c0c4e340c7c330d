package middleware

import (
	"net/http"

	"github.com/shishant-cloud/quiz-portal-personal-project/internal/services"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie holding the signed session token.
const SessionCookie = "quiz_session"

// RequireRole guards a route group: the session cookie must hold a valid
// token whose role claim matches. Anything else redirects to that role's
// login page instead of erroring.
func RequireRole(authService *services.AuthService, role, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		userID, tokenRole, err := authService.ValidateToken(token)
		if err != nil || tokenRole != role {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
