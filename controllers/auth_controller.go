package controllers

import (
	"errors"

	"github.com/bipuldey19/hungrypanda-handler/configs"
	"github.com/bipuldey19/hungrypanda-handler/middlewares"
	"github.com/bipuldey19/hungrypanda-handler/pkg/resp"
	"github.com/bipuldey19/hungrypanda-handler/services"
	"github.com/bipuldey19/hungrypanda-handler/utils"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Auth *services.AuthService
	Cfg  *configs.Config
}

func NewAuthController(auth *services.AuthService, cfg *configs.Config) *AuthController {
	return &AuthController{Auth: auth, Cfg: cfg}
}

// POST /auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sess, err := ctl.Auth.Login(req.Password)
	if err != nil {
		if errors.Is(err, services.ErrBadPassword) {
			resp.Unauthorized(c, "incorrect password")
			return
		}
		resp.ServerError(c, err)
		return
	}

	token, err := utils.GenerateSessionToken(sess.ID, ctl.Cfg.SessionSecret, ctl.Cfg.SessionTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	// Cookie so reloads skip the login form until the session expires.
	c.SetCookie(middlewares.SessionCookie, token, int(ctl.Cfg.SessionTTL.Seconds()), "/", "", false, true)
	resp.OK(c, gin.H{"token": token, "loginAt": sess.LoginAt})
}

// POST /auth/logout
func (ctl *AuthController) Logout(c *gin.Context) {
	if sess := utils.CurrentSession(c); sess != nil {
		ctl.Auth.Logout(sess.ID)
	}
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
	resp.OK(c, gin.H{"message": "logged out"})
}

// GET /auth/me
func (ctl *AuthController) Me(c *gin.Context) {
	sess := utils.CurrentSession(c)
	resp.OK(c, gin.H{"loginAt": sess.LoginAt})
}
