package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ifsi-gestion/ifsi-api/internal/middleware"
	"github.com/ifsi-gestion/ifsi-api/internal/models"
	"github.com/ifsi-gestion/ifsi-api/internal/service"
	appErrors "github.com/ifsi-gestion/ifsi-api/pkg/errors"
	"github.com/ifsi-gestion/ifsi-api/pkg/response"
)

// AuthCookie configures the session cookie written at login.
type AuthCookie struct {
	Name   string
	Secure bool
}

// AuthHandler exposes registration, login, logout and the current-user
// endpoint. The session token travels both in the response body and in
// an HTTP-only cookie so browser and API clients can share the flow.
type AuthHandler struct {
	auth   *service.AuthService
	cookie AuthCookie
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(auth *service.AuthService, cookie AuthCookie) *AuthHandler {
	return &AuthHandler{auth: auth, cookie: cookie}
}

type sessionResponse struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// Register godoc
// @Summary Register an account and log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body service.RegisterRequest true "Registration payload"
// @Success 201 {object} response.Envelope
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	user, sess, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.setCookie(c, sess)
	response.Created(c, sessionResponse{User: user, Token: sess.Token, ExpiresAt: sess.ExpiresAt})
}

// Login godoc
// @Summary Log in with username and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body service.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	user, sess, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.setCookie(c, sess)
	response.JSON(c, http.StatusOK, sessionResponse{User: user, Token: sess.Token, ExpiresAt: sess.ExpiresAt})
}

// Logout godoc
// @Summary Revoke the current session
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), middleware.SessionToken(c)); err != nil {
		response.Error(c, err)
		return
	}
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	response.JSON(c, http.StatusOK, gin.H{"message": "logged out"})
}

// Me godoc
// @Summary Return the authenticated user
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /user [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

func (h *AuthHandler) setCookie(c *gin.Context, sess *models.Session) {
	maxAge := int(time.Until(sess.ExpiresAt).Seconds())
	c.SetCookie(h.cookie.Name, sess.Token, maxAge, "/", "", h.cookie.Secure, true)
}
