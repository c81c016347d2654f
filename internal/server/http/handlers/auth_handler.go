package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
	"github.com/AlexisMGL/HappyCheese/internal/server/http/dto"
	"github.com/AlexisMGL/HappyCheese/internal/server/http/middleware"
)

// AuthHandler manages identity endpoints.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	usr, token, err := h.facade.SignUp(c.Request.Context(), req.Email, req.Password, req.Profile())
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.NewUserResponse(*usr))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	usr, token, err := h.facade.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.NewUserResponse(*usr))
}

// Profile handles GET /api/auth/profile.
func (h *AuthHandler) Profile(c *gin.Context) {
	usr, err := h.facade.User(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(*usr))
}

// UpdateProfile handles PUT /api/auth/profile.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req dto.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.UpdateProfile(c.Request.Context(), CurrentUserID(c), modelProfile(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// ChangePassword handles POST /api/auth/password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.PasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.ChangePassword(c.Request.Context(), CurrentUserID(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func modelProfile(req dto.ProfileRequest) model.Profile {
	return model.Profile{
		DisplayName:      req.DisplayName,
		Phone:            req.Phone,
		Company:          req.Company,
		DeliveryLocation: req.DeliveryLocation,
	}
}
