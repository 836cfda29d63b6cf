package queue

import (
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"
)

// EnqueuePost queues a post for publishing when its scheduled time
// arrives. A zero delay publishes on the next worker pass.
func EnqueuePost(asynqClient *asynq.Client, payload PublishPostPayload, delay time.Duration) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypePublishPost, taskPayload)

	_, err = asynqClient.Enqueue(task, asynq.ProcessIn(delay))
	if err != nil {
		return err
	}

	log.Printf("Task scheduled: %+v", payload)
	return nil
}
