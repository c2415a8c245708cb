package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zepcart/marketplace/internal/domain/model"
	"github.com/zepcart/marketplace/internal/server/http/dto"
	"github.com/zepcart/marketplace/internal/server/http/middleware"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, err)
		return
	}

	usr, token, err := h.facade.Register(c.Request.Context(), req.Mobile, req.Password, req.OwnerName, model.Role(req.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusCreated, dto.OK("User registered successfully", dto.NewAuthResponse(usr, token)))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, err)
		return
	}

	usr, token, err := h.facade.Authenticate(c.Request.Context(), req.Mobile, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.OK("Login successful", dto.NewAuthResponse(usr, token)))
}
