package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pourpal-backoffice/pkg/response"
	"pourpal-backoffice/pkg/session"
)

// Login godoc
// @Summary     Sign in
// @Description Exchanges credentials for the session cookies.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} statusResp
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     401 {object} response.Resp "Invalid email or password"
// @Failure     429 {object} response.Resp "Too many attempts"
// @Failure     502 {object} response.Resp "Backend unavailable"
// @Router      /auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "auth.http.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	cookies, err := session.Cookies(out.Tokens, h.cookies)
	if err != nil {
		h.l.Errorf(ctx, "auth.http.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	for _, ck := range cookies {
		http.SetCookie(c.Writer, ck.HTTP())
	}

	c.JSON(http.StatusOK, statusResp{Status: http.StatusOK})
}

// Logout godoc
// @Summary     Sign out
// @Description Drops both session cookies. The backend is notified when a session exists.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	access, _ := session.FromRequest(c.Request)
	if err := h.uc.Logout(ctx, access); err != nil {
		h.l.Warnf(ctx, "auth.http.Logout: %v", err)
	}

	http.SetCookie(c.Writer, session.Expired(session.AccessTokenCookie, h.cookies))
	http.SetCookie(c.Writer, session.Expired(session.RefreshTokenCookie, h.cookies))

	c.JSON(http.StatusOK, statusResp{Status: http.StatusOK})
}

// Profile godoc
// @Summary     Current user
// @Tags        Auth
// @Produce     json
// @Success     200 {object} profileResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /v1/auth/profile [GET]
func (h *handler) Profile(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.uc.Profile(ctx)
	if err != nil {
		h.l.Errorf(ctx, "auth.http.Profile: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newProfileResp(p))
}

// RegisterAdmin godoc
// @Summary     Invite an admin
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerAdminReq true "Admin email"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     409 {object} response.Resp "Already registered"
// @Router      /v1/auth/register/admin [POST]
func (h *handler) RegisterAdmin(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterAdminReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.RegisterAdmin(ctx, req.Email); err != nil {
		h.l.Errorf(ctx, "auth.http.RegisterAdmin: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
