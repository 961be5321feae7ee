package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"villadash/middleware"
	"villadash/response"
	"villadash/services/logger"
	"villadash/services/notification"
	"villadash/services/session"
)

type NotificationController struct {
	sessions session.Store
	melody   *melody.Melody
	logger   logger.Logger
}

func NewNotificationController(sessions session.Store, m *melody.Melody, log logger.Logger) *NotificationController {
	ctrl := &NotificationController{sessions: sessions, melody: m, logger: log}
	m.HandleConnect(func(s *melody.Session) {
		sid, _ := s.Get(notification.SessionKey)
		ctrl.logger.Debug("websocket connected, session %v", sid)
	})
	m.HandleDisconnect(func(s *melody.Session) {
		sid, _ := s.Get(notification.SessionKey)
		ctrl.logger.Debug("websocket closed, session %v", sid)
	})
	return ctrl
}

// Connect upgrades a signed-in dashboard to the toast socket. The browser
// cannot set headers on a websocket, so ?sid is accepted as well.
func (ctrl *NotificationController) Connect(c *gin.Context) {
	sid := middleware.SessionID(c)
	if sid == "" {
		sid = c.Query("sid")
	}
	sess, err := ctrl.sessions.Load(c.Request.Context(), sid)
	if err != nil || !sess.Authenticated() {
		response.Unauthorized(c)
		return
	}
	if err := ctrl.melody.HandleRequestWithKeys(c.Writer, c.Request, map[string]interface{}{
		notification.SessionKey: sess.ID,
	}); err != nil {
		ctrl.logger.Error("websocket upgrade: %v", err)
	}
}
