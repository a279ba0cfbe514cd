package core

import (
	"errors"
	"strings"
)

// JobType classifies how a piece of freelance work was billed.
type JobType string

const (
	JobContract  JobType = "contract"
	JobHourly    JobType = "hourly"
	JobTaskBased JobType = "task_based"
	JobRetainer  JobType = "retainer"
	JobOther     JobType = "other"
)

var (
	ErrEmptyClient    = errors.New("empty client")
	ErrUnknownJobType = errors.New("unknown job type")
)

// Income is a single incoming payment from a client. Amounts are whole yen.
type Income struct {
	ID      int64 // 0 until stored
	Amount  int64
	Date    Date
	Client  string
	JobType JobType
	Notes   string
}

func (in Income) Validate() error {
	if in.Amount < 0 {
		return ErrNegativeAmount
	}
	if err := in.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(in.Client) == "" {
		return ErrEmptyClient
	}
	if !in.JobType.Valid() {
		return ErrUnknownJobType
	}
	return nil
}

var jobTypeLabels = map[JobType]string{
	JobContract:  "Contract",
	JobHourly:    "Hourly",
	JobTaskBased: "Task-Based",
	JobRetainer:  "Retainer",
	JobOther:     "Other",
}

// Label returns the display label, e.g. "Task-Based".
func (j JobType) Label() string {
	if l, ok := jobTypeLabels[j]; ok {
		return l
	}
	return string(j)
}

func (j JobType) Valid() bool {
	_, ok := jobTypeLabels[j]
	return ok
}
