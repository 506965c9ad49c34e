package handler

import (
	"github.com/gin-gonic/gin"

	"squadrate/src/app/http/response"
	"squadrate/src/app/middleware"
	"squadrate/src/core/usecase"
)

// RoundHandler handles round read endpoints.
type RoundHandler struct {
	roundService *usecase.RoundService
}

func NewRoundHandler(roundService *usecase.RoundService) *RoundHandler {
	return &RoundHandler{roundService: roundService}
}

// Current returns the current round.
// GET /v1/rounds/current
func (h *RoundHandler) Current(c *gin.Context) {
	round, err := h.roundService.Current(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, gin.H{"round": gin.H{
		"id":         round.ID,
		"locked":     round.Locked,
		"created_at": round.CreatedAt,
	}})
}
