package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"villadash/constants"
	"villadash/errors"
	"villadash/response"
	"villadash/services"
	"villadash/services/logger"
	"villadash/services/session"
)

// Context keys set by SessionAuth.
const (
	KeySessionID = "sessionId"
	KeyWorkspace = "workspace"
)

// SessionID reads the dashboard session id from the cookie, then the header.
func SessionID(c *gin.Context) string {
	if id, err := c.Cookie(constants.SessionCookie); err == nil && id != "" {
		return id
	}
	return c.GetHeader(constants.SessionHeader)
}

// SetSessionCookie hands the session id to the browser. maxAge < 0 removes it.
func SetSessionCookie(c *gin.Context, id string, maxAge int, secure bool) {
	c.SetCookie(constants.SessionCookie, id, maxAge, "/", "", secure, true)
	if maxAge >= 0 {
		c.Header(constants.SessionHeader, id)
	}
}

// SessionAuth loads the session and builds its workspace. After the handler
// runs, rotated tokens are written back and cleared sessions are dropped.
func SessionAuth(sessions session.Store, factory *services.WorkspaceFactory, log logger.Logger, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := SessionID(c)
		if id == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sess, err := sessions.Load(c.Request.Context(), id)
		if err != nil || !sess.Authenticated() {
			if err != nil && err != session.ErrNotFound {
				log.Error("load session %s: %v", id, err)
			}
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ws := factory.For(sess)
		c.Set(KeySessionID, sess.ID)
		c.Set(KeyWorkspace, ws)

		c.Next()

		ctx := c.Request.Context()
		switch {
		case sess.Cleared():
			if err := sessions.Delete(ctx, sess.ID); err != nil {
				log.Error("delete session %s: %v", sess.ID, err)
			}
			if err := ws.Store.Invalidate(ctx); err != nil {
				log.Error("drop cache of session %s: %v", sess.ID, err)
			}
		case sess.Dirty():
			if exp, ok := services.TokenExpiry(sess.RefreshToken()); ok {
				sess.SetExpiry(exp)
			}
			if err := sessions.Save(ctx, sess); err != nil {
				log.Error("save session %s: %v", sess.ID, err)
			}
		}
	}
}

// GetWorkspace returns the workspace stored by SessionAuth.
func GetWorkspace(c *gin.Context) *services.Workspace {
	v, ok := c.Get(KeyWorkspace)
	if !ok {
		return nil
	}
	ws, _ := v.(*services.Workspace)
	return ws
}

// ErrorHandler replies to errors attached with c.Error when the handler
// did not write a response itself.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		if errors.IsAppError(err) {
			response.FromError(c, err)
			return
		}
		response.ServerError(c)
	}
}

// RequestLogger logs method, path, status and latency of each request.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("%s %s %d %s request_id=%s", c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), time.Since(start), c.GetString(KeyRequestID))
	}
}
