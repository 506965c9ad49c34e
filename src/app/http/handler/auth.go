package handler

import (
	"github.com/gin-gonic/gin"

	"squadrate/src/app/http/dto"
	"squadrate/src/app/http/response"
	"squadrate/src/app/middleware"
	"squadrate/src/core/usecase"
)

// AuthHandler handles the login endpoint.
type AuthHandler struct {
	authService *usecase.AuthService
}

func NewAuthHandler(authService *usecase.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login verifies credentials and returns the player's profile.
// POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	res, err := h.authService.Login(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, gin.H{
		"player": gin.H{
			"name":     res.Player.Name,
			"can_rate": res.Player.CanRate,
		},
		"is_admin": res.IsAdmin,
		"round": gin.H{
			"id":     res.Round.ID,
			"locked": res.Round.Locked,
		},
	})
}
