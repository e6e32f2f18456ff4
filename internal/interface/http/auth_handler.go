package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/imf-ops/gadget-api/internal/application"
	"github.com/imf-ops/gadget-api/pkg/response"
	"github.com/imf-ops/gadget-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup POST /auth/signup
// 201 on success, 400 when the username is taken. No sensitive data is
// echoed back.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.FirstError(err))
		return
	}

	if _, err := h.Svc.Signup(req.Username, req.Password); err != nil {
		if errors.Is(err, application.ErrUserExists) {
			response.Error(c, http.StatusBadRequest, "user already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	response.Message(c, http.StatusCreated, "User created successfully")
}

// Login POST /auth/login
// Unknown username and wrong password return the same 400 so accounts
// cannot be enumerated. Anything else from the service is a 500.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.FirstError(err))
		return
	}

	token, _, err := h.Svc.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error(c, http.StatusBadRequest, "Invalid credentials")
			return
		}
		response.Error(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"token": token})
}
