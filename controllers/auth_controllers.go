package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"villadash/dto"
	"villadash/middleware"
	"villadash/response"
	"villadash/services"
	"villadash/services/logger"
	"villadash/services/session"
)

type AuthControllerOptions struct {
	Sessions     session.Store
	Factory      *services.WorkspaceFactory
	SessionTTL   time.Duration
	SecureCookie bool
	Logger       logger.Logger
}

type AuthController struct {
	sessions session.Store
	factory  *services.WorkspaceFactory
	ttl      time.Duration
	secure   bool
	logger   logger.Logger
}

func NewAuthController(opts AuthControllerOptions) *AuthController {
	return &AuthController{
		sessions: opts.Sessions,
		factory:  opts.Factory,
		ttl:      opts.SessionTTL,
		secure:   opts.SecureCookie,
		logger:   opts.Logger,
	}
}

// Login signs in against the API and opens a new dashboard session.
func (ctrl *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, "Email and password are required")
		return
	}

	sess := session.New()
	ws := ctrl.factory.For(sess)
	res, err := ws.API.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}
	user := res.User
	sess.SetUser(&user)
	if exp, ok := services.TokenExpiry(sess.RefreshToken()); ok {
		sess.SetExpiry(exp)
	}
	if err := ctrl.sessions.Save(c.Request.Context(), sess); err != nil {
		ctrl.logger.Error("save session after login: %v", err)
		response.ServerError(c)
		return
	}

	middleware.SetSessionCookie(c, sess.ID, int(ctrl.ttl.Seconds()), ctrl.secure)
	ctrl.logger.Info("user %s signed in, session %s", user.Email, sess.ID)
	response.Success(c, dto.SessionResponse{SessionID: sess.ID, User: &user})
}

// Logout revokes the refresh token and clears the session. The middleware
// deletes the stored session once the session reports itself cleared.
func (ctrl *AuthController) Logout(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	ws.API.Logout(c.Request.Context())
	if err := services.ClearLastCalendarView(c.Request.Context(), ctrl.factory.Cache(), ws.Session.ID); err != nil {
		ctrl.logger.Error("clear calendar view: %v", err)
	}
	middleware.SetSessionCookie(c, "", -1, ctrl.secure)
	response.Success(c, nil)
}

// Me returns the signed-in user, asking the API when the session has none.
func (ctrl *AuthController) Me(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	if user := ws.Session.User(); user != nil {
		response.Success(c, user)
		return
	}
	user, err := ws.API.Me(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	ws.Session.SetUser(user)
	response.Success(c, user)
}

// Session reports how long the stored tokens remain valid.
func (ctrl *AuthController) Session(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	now := time.Now()
	info := dto.SessionInfo{
		SessionID:        ws.Session.ID,
		User:             ws.Session.User(),
		AccessExpiresIn:  "unknown",
		RefreshExpiresIn: "unknown",
	}
	if t, err := services.InspectToken(ws.Session.AccessToken()); err == nil {
		info.AccessExpiresIn = t.Remaining(now)
		info.AccessExpired = t.IsExpired(now)
	}
	if t, err := services.InspectToken(ws.Session.RefreshToken()); err == nil {
		info.RefreshExpiresIn = t.Remaining(now)
		info.RefreshExpired = t.IsExpired(now)
	}
	response.Success(c, info)
}
