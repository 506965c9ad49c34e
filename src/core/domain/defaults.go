package domain

// MinScore and MaxScore bound a single peer rating.
const (
	MinScore = 1
	MaxScore = 10
)

// MaxCommentLength caps the body of a round comment.
const MaxCommentLength = 500
