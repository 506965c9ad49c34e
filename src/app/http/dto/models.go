package dto

// LoginRequest is the payload for /v1/auth/login.
type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SubmitRatingsRequest is the payload for submitting a round's ratings.
type SubmitRatingsRequest struct {
	Ratings []RatingEntry `json:"ratings" binding:"required"`
}

// RatingEntry holds a single peer rating.
type RatingEntry struct {
	Ratee string `json:"ratee" binding:"required"`
	Score int    `json:"score" binding:"required"`
}

// PostCommentRequest is the payload for posting an anonymous comment.
type PostCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// VoteRequest is the payload for the comment vote toggle.
type VoteRequest struct {
	Kind string `json:"kind" binding:"required"`
}

// AddPlayerRequest is the admin payload for adding a roster member.
type AddPlayerRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
	CanRate  *bool  `json:"can_rate"`
}

// SetEligibilityRequest toggles a player's can_rate flag.
type SetEligibilityRequest struct {
	CanRate *bool `json:"can_rate" binding:"required"`
}
