package entity

import (
	"time"

	"kairos/turn-engine/internal/domain"
)

type Ticket struct {
	Id        int64 `gorm:"primary_key"`
	ServiceId int64
	ClientId  int64
	Number    int
	State     string
	CreatedAt time.Time
	CalledAt  *time.Time
}

func (Ticket) TableName() string {
	return "tickets"
}

func (t Ticket) ToDomain() domain.Ticket {
	return domain.Ticket{
		Id:        t.Id,
		ServiceId: t.ServiceId,
		ClientId:  t.ClientId,
		Number:    t.Number,
		State:     domain.TicketState(t.State),
		CreatedAt: t.CreatedAt,
		CalledAt:  t.CalledAt,
	}
}
