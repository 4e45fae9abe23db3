package entity

import "time"

// EventDlq holds audit events that exhausted their kafka write retries.
type EventDlq struct {
	Id            int64 `gorm:"primary_key"`
	Topic         string
	Key           string
	Payload       []byte
	AttemptCount  int
	LastAttemptAt time.Time
}

func (EventDlq) TableName() string {
	return "event_dlq"
}
