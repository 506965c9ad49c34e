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

// CommentHandler handles anonymous comment endpoints.
type CommentHandler struct {
	commentService *usecase.CommentService
}

func NewCommentHandler(commentService *usecase.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Post adds an anonymous comment to the current round.
// POST /v1/comments
func (h *CommentHandler) Post(c *gin.Context) {
	var req dto.PostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	comment, err := h.commentService.Post(c.Request.Context(), req.Body)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, gin.H{"comment": gin.H{
		"id":         comment.ID,
		"body":       comment.Body,
		"created_at": comment.CreatedAt,
	}})
}

// List returns the current round's comments with vote counts and the
// caller's own vote.
// GET /v1/comments
func (h *CommentHandler) List(c *gin.Context) {
	viewer := middleware.GetPlayerName(c)

	views, err := h.commentService.List(c.Request.Context(), viewer)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	out := make([]gin.H, 0, len(views))
	for _, v := range views {
		out = append(out, gin.H{
			"id":         v.Comment.ID,
			"body":       v.Comment.Body,
			"created_at": v.Comment.CreatedAt,
			"likes":      v.Likes,
			"dislikes":   v.Dislikes,
			"my_vote":    v.MyVote,
		})
	}
	response.OK(c, gin.H{"comments": out})
}

// Vote applies the like/dislike toggle for the caller on a comment.
// POST /v1/comments/:comment_id/vote
func (h *CommentHandler) Vote(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid comment id", middleware.GetRequestID(c))
		return
	}

	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	voter := middleware.GetPlayerName(c)
	result, err := h.commentService.Vote(c.Request.Context(), commentID, voter, domain.VoteKind(req.Kind))
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, gin.H{
		"comment_id": result.CommentID,
		"likes":      result.Likes,
		"dislikes":   result.Dislikes,
		"my_vote":    result.MyVote,
	})
}
