package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/hibiken/asynq"
)

// TaskEnqueuer is the subset of *asynq.Client used here.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// refreshWindow ช่วงเวลาที่ payload เดียวกันจะไม่ถูก enqueue ซ้ำ
const refreshWindow = time.Minute

// Enqueuer schedules bill regeneration after a payment.
type Enqueuer struct {
	client TaskEnqueuer
}

func NewEnqueuer(client TaskEnqueuer) *Enqueuer {
	return &Enqueuer{client: client}
}

func (e *Enqueuer) EnqueueBillRefresh(ctx context.Context, regNo string) error {
	task, err := NewGenerateBillTask(regNo)
	if err != nil {
		return err
	}

	// one pending refresh per student is enough. The lock expires, so a task
	// left archived after failing does not block later refreshes.
	_, err = e.client.EnqueueContext(ctx, task, asynq.Unique(refreshWindow), asynq.MaxRetry(3))
	if errors.Is(err, asynq.ErrDuplicateTask) {
		return nil
	}
	return err
}
