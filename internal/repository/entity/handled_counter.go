package entity

import "kairos/turn-engine/internal/domain"

// HandledCounter tallies tickets called per staff member per service.
type HandledCounter struct {
	UserId    int64 `gorm:"primaryKey;autoIncrement:false"`
	ServiceId int64 `gorm:"primaryKey;autoIncrement:false"`
	Count     int
}

func (HandledCounter) TableName() string {
	return "handled_counters"
}

func (h HandledCounter) ToDomain() domain.HandledCount {
	return domain.HandledCount{
		UserId:    h.UserId,
		ServiceId: h.ServiceId,
		Count:     h.Count,
	}
}
