package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeGenerateBill = "bill:generate"

type BillPayload struct {
	RegNo string `json:"reg_no"`
}

func NewGenerateBillTask(regNo string) (*asynq.Task, error) {
	payload, err := json.Marshal(BillPayload{RegNo: regNo})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeGenerateBill, payload), nil
}
