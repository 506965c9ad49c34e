package handler

import (
	"github.com/gin-gonic/gin"

	"squadrate/src/app/http/response"
	"squadrate/src/app/middleware"
	"squadrate/src/core/usecase"
)

// PlayerHandler handles roster read endpoints.
type PlayerHandler struct {
	playerService *usecase.PlayerService
}

func NewPlayerHandler(playerService *usecase.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// List returns the roster.
// GET /v1/players
func (h *PlayerHandler) List(c *gin.Context) {
	players, err := h.playerService.List(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	out := make([]gin.H, 0, len(players))
	for _, p := range players {
		out = append(out, gin.H{
			"name":     p.Name,
			"can_rate": p.CanRate,
		})
	}
	response.OK(c, gin.H{"players": out})
}
