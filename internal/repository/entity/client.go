package entity

import "kairos/turn-engine/internal/domain"

type Client struct {
	Id       int64 `gorm:"primary_key"`
	Document string
	Name     string
}

func (Client) TableName() string {
	return "clients"
}

func (c Client) ToDomain() domain.Client {
	return domain.Client{
		Id:       c.Id,
		Document: c.Document,
		Name:     c.Name,
	}
}
