package queue

import (
	"github.com/postcal/postcal/internal/store"
)

type Queue struct {
	st store.Store
}

func NewQueue(st store.Store) *Queue {
	return &Queue{st: st}
}

const TaskTypePublishPost = "publish:post"

type PublishPostPayload struct {
	PostID string `json:"post_id"`
}
