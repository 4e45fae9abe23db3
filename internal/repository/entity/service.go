package entity

import "kairos/turn-engine/internal/domain"

type Service struct {
	Id   int64 `gorm:"primary_key"`
	Name string
}

func (Service) TableName() string {
	return "services"
}

func (s Service) ToDomain() domain.Service {
	return domain.Service{
		Id:   s.Id,
		Name: s.Name,
	}
}
