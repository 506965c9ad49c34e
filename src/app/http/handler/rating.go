package handler

import (
	"github.com/gin-gonic/gin"

	"squadrate/src/app/http/dto"
	"squadrate/src/app/http/response"
	"squadrate/src/app/middleware"
	"squadrate/src/core/domain"
	"squadrate/src/core/usecase"
)

// RatingHandler handles rating submission, order, and status.
type RatingHandler struct {
	ratingService *usecase.RatingService
}

func NewRatingHandler(ratingService *usecase.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// Order returns the caller's deterministic rating order for today.
// GET /v1/ratings/order
func (h *RatingHandler) Order(c *gin.Context) {
	rater := middleware.GetPlayerName(c)

	order, err := h.ratingService.Order(c.Request.Context(), rater)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, gin.H{"order": order})
}

// Submit records the caller's full rating set for the current round.
// POST /v1/ratings
func (h *RatingHandler) Submit(c *gin.Context) {
	rater := middleware.GetPlayerName(c)

	var req dto.SubmitRatingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	entries := make([]domain.RatingEntry, 0, len(req.Ratings))
	for _, r := range req.Ratings {
		entries = append(entries, domain.RatingEntry{Ratee: r.Ratee, Score: r.Score})
	}

	if err := h.ratingService.Submit(c.Request.Context(), rater, entries); err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, gin.H{"submitted": len(entries)})
}

// Status reports submission progress for the current round.
// GET /v1/ratings/status
func (h *RatingHandler) Status(c *gin.Context) {
	rater := middleware.GetPlayerName(c)

	status, err := h.ratingService.Status(c.Request.Context(), rater)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, gin.H{
		"round_id":  status.RoundID,
		"locked":    status.Locked,
		"submitted": status.Submitted,
		"eligible":  status.Eligible,
		"done":      status.Done,
		"mine":      status.Mine,
	})
}
