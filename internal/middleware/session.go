package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the session identifier on requests and responses.
const SessionHeader = "X-Session-ID"

// sessionKey is the gin context key the resolved session id is stored under.
const sessionKey = "planner_session_id"

// Session resolves the caller's session id. A missing header gets a fresh
// uuid; either way the id is echoed back so clients can stick to it.
func (mw Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		c.Set(sessionKey, sessionID)
		c.Header(SessionHeader, sessionID)
		c.Next()
	}
}

// SessionID returns the session id resolved by the Session middleware.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
