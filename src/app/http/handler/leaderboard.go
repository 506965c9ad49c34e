package handler

import (
	"github.com/gin-gonic/gin"

	"squadrate/src/app/http/response"
	"squadrate/src/app/middleware"
	"squadrate/src/core/usecase"
)

// LeaderboardHandler handles leaderboard endpoints.
type LeaderboardHandler struct {
	leaderboardService *usecase.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *usecase.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// Current returns the current round's leaderboard, withheld until every
// eligible player has submitted.
// GET /v1/leaderboard
func (h *LeaderboardHandler) Current(c *gin.Context) {
	board, err := h.leaderboardService.Current(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	out := gin.H{
		"round_id":  board.RoundID,
		"ready":     board.Ready,
		"submitted": board.Submitted,
		"eligible":  board.Eligible,
	}
	if board.Ready {
		out["entries"] = board.Entries
	}
	response.OK(c, out)
}

// Overall returns historical averages across all locked rounds.
// GET /v1/leaderboard/overall
func (h *LeaderboardHandler) Overall(c *gin.Context) {
	entries, err := h.leaderboardService.Overall(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, gin.H{"entries": entries})
}
