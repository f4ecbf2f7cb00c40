package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionIDKey is the gin context key the session identifier is
	// stored under.
	SessionIDKey = "session_id"

	// SessionCookie is the cookie carrying the session identifier.
	SessionCookie = "quotedash_session"

	// sessionMaxAge keeps the cookie for a day; the server-side state
	// itself lives for the process lifetime.
	sessionMaxAge = 86400
)

// SessionID is a Gin middleware that assigns each browser session a
// stable identifier. Query results are keyed by this identifier, so
// concurrent users cannot overwrite each other's dashboard state.
//
// Behavior:
//   - Reads the session cookie when present.
//   - Issues a new UUID cookie when absent.
//   - Stores the identifier in the Gin context under "session_id".
func SessionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(SessionCookie, id, sessionMaxAge, "/", "", false, true)
		}
		c.Set(SessionIDKey, id)
		c.Next()
	}
}

// SessionIDFrom extracts the session identifier injected by
// SessionID(). Falls back to an empty string when the middleware is
// not mounted, which keys all state to one shared session.
func SessionIDFrom(c *gin.Context) string {
	v, _ := c.Get(SessionIDKey)
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
