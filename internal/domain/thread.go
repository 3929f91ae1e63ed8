package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Title     ThreadTitle
	CreatedAt time.Time
	OpComment CommentCreationData
}

type ThreadMetadata struct {
	Id        ThreadId    `json:"id"`
	Title     ThreadTitle `json:"title"`
	CreatedAt time.Time   `json:"created_at"`
}

type Thread struct {
	ThreadMetadata
	Comments []*Comment `json:"comments"`
}

// LastModified is the time of the newest comment, or of the thread itself
// when it has none.
func (t *Thread) LastModified() time.Time {
	last := t.CreatedAt
	for _, c := range t.Comments {
		if c.CreatedAt.After(last) {
			last = c.CreatedAt
		}
	}
	return last
}
