package middlewares

import (
	"strings"

	"github.com/bipuldey19/hungrypanda-handler/pkg/resp"
	"github.com/bipuldey19/hungrypanda-handler/services"
	"github.com/bipuldey19/hungrypanda-handler/utils"

	"github.com/gin-gonic/gin"
)

const SessionCookie = "admin_session"

// AuthMiddleware gates every dashboard route. The token comes from
// the session cookie (so reloads skip the login form) or a Bearer
// header; either way it must reference a live, unexpired session.
func AuthMiddleware(secret string, sessions *services.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie)
		if err != nil || tokenStr == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				tokenStr = strings.TrimPrefix(h, "Bearer ")
			}
		}
		if tokenStr == "" {
			resp.Unauthorized(c, "login required")
			c.Abort()
			return
		}

		claims, err := utils.ParseSessionToken(tokenStr, secret)
		if err != nil {
			resp.Unauthorized(c, "invalid session token")
			c.Abort()
			return
		}

		sess, ok := sessions.Get(claims.SessionID)
		if !ok {
			resp.Unauthorized(c, "session expired, please log in again")
			c.Abort()
			return
		}

		c.Set("session", sess)
		c.Next()
	}
}
