package domain

import "time"

type CommentCreationData struct {
	ThreadId  ThreadId
	Name      CommentName
	Body      CommentBody
	CreatedAt time.Time
}

type Comment struct {
	Id        CommentId   `json:"id"`
	ThreadId  ThreadId    `json:"thread_id"`
	Name      CommentName `json:"name"`
	Body      CommentBody `json:"body"`
	CreatedAt time.Time   `json:"created_at"`
}
