package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"squadrate/src/app/http/dto"
	"squadrate/src/app/http/response"
	"squadrate/src/app/middleware"
	"squadrate/src/core/domain"
	"squadrate/src/core/usecase"
)

// AdminHandler handles admin endpoints: roster management, round lifecycle,
// and comment moderation. Routes using it sit behind AdminAuth.
type AdminHandler struct {
	playerService  *usecase.PlayerService
	roundService   *usecase.RoundService
	commentService *usecase.CommentService
}

func NewAdminHandler(playerService *usecase.PlayerService, roundService *usecase.RoundService, commentService *usecase.CommentService) *AdminHandler {
	return &AdminHandler{
		playerService:  playerService,
		roundService:   roundService,
		commentService: commentService,
	}
}

// AddPlayer adds a roster member.
// POST /v1/admin/players
func (h *AdminHandler) AddPlayer(c *gin.Context) {
	var req dto.AddPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	canRate := true
	if req.CanRate != nil {
		canRate = *req.CanRate
	}

	player, err := h.playerService.Add(c.Request.Context(), req.Name, req.Password, canRate)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, gin.H{"player": gin.H{
		"name":     player.Name,
		"can_rate": player.CanRate,
	}})
}

// RemovePlayer deletes a roster member and their ratings and votes.
// DELETE /v1/admin/players/:name
func (h *AdminHandler) RemovePlayer(c *gin.Context) {
	name := c.Param("name")
	if err := h.playerService.Remove(c.Request.Context(), name); err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}

// SetEligibility toggles whether a player may rate in the current round.
// PATCH /v1/admin/players/:name
func (h *AdminHandler) SetEligibility(c *gin.Context) {
	name := c.Param("name")

	var req dto.SetEligibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	player, err := h.playerService.SetEligibility(c.Request.Context(), name, *req.CanRate)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, gin.H{"player": gin.H{
		"name":     player.Name,
		"can_rate": player.CanRate,
	}})
}

// LockRound marks the current round read-only.
// POST /v1/admin/rounds/lock
func (h *AdminHandler) LockRound(c *gin.Context) {
	h.setRoundLocked(c, true)
}

// UnlockRound reopens the current round.
// POST /v1/admin/rounds/unlock
func (h *AdminHandler) UnlockRound(c *gin.Context) {
	h.setRoundLocked(c, false)
}

func (h *AdminHandler) setRoundLocked(c *gin.Context, locked bool) {
	var round *domain.Round
	var err error
	if locked {
		round, err = h.roundService.Lock(c.Request.Context())
	} else {
		round, err = h.roundService.Unlock(c.Request.Context())
	}
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, gin.H{"round": round})
}

// ResetRound locks the current round and opens a fresh one.
// POST /v1/admin/rounds/reset
func (h *AdminHandler) ResetRound(c *gin.Context) {
	round, err := h.roundService.Reset(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, gin.H{"round": round})
}

// DeleteComment removes a comment and its votes.
// DELETE /v1/admin/comments/:comment_id
func (h *AdminHandler) DeleteComment(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid comment id", middleware.GetRequestID(c))
		return
	}
	if err := h.commentService.Delete(c.Request.Context(), commentID); err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}
