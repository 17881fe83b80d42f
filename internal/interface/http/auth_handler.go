package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/andresmx/tasktrack/internal/application"
	"github.com/andresmx/tasktrack/internal/domain/entity"
	"github.com/andresmx/tasktrack/internal/domain/repository"
	"github.com/andresmx/tasktrack/internal/interface/middleware"
	"github.com/andresmx/tasktrack/pkg/helpers"
	"github.com/andresmx/tasktrack/pkg/response"
	"github.com/andresmx/tasktrack/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.UserService
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.UserService, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, JWT: jwt, Logger: logger}
}

// Field policy (shape and format) is validated by the service so the client
// gets every failed rule in one reason list; the binding here only rejects
// payloads that are not JSON objects at all.
type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func userJSON(u *entity.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"created_at": u.CreatedAt,
	}
}

func authJSON(res *application.AuthResult) gin.H {
	return gin.H{
		"user":  userJSON(res.User),
		"token": res.Token,
	}
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, authJSON(res), "user registered", gin.H{"expires_at": res.ExpiresAt})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, authJSON(res), "login successful", gin.H{"expires_at": res.ExpiresAt})
}

// Me GET /api/auth/me
// Returns the caller's stored profile rather than the token claims, so a
// renamed account shows the current name even on an older token.
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.Svc.Profile(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "user not found", nil)
			return
		}
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, userJSON(u), "profile", nil)
}

// Validate GET /api/auth/validate
// Lets a client check a stored token without hitting a protected resource.
// Same status split as the auth middleware: 401 when no token is presented,
// 403 when one is presented but does not validate.
func (h *AuthHandler) Validate(c *gin.Context) {
	token := middleware.BearerToken(c)
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "missing access token", gin.H{"valid": false})
		return
	}
	claims, err := h.JWT.Parse(token)
	if err != nil {
		response.Error(c, http.StatusForbidden, "invalid or expired token", gin.H{"valid": false})
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"valid": true,
		"user": gin.H{
			"userId": claims.UserID,
			"email":  claims.Email,
			"name":   claims.Name,
		},
	}, "token valid", nil)
}
