package domain

type (
	ThreadTitle = string
	ThreadId    = int64

	CommentId   = int64
	CommentName = string
	CommentBody = string
)
