package repository

import (
	"context"
	"time"

	"kairos/turn-engine/internal/domain"
	"kairos/turn-engine/internal/repository/entity"

	"gorm.io/gorm"
)

type dlqRepository struct {
	db *gorm.DB
}

func NewDlqRepository(db *gorm.DB) *dlqRepository {
	return &dlqRepository{
		db: db,
	}
}

func (dr *dlqRepository) InsertDLQ(ctx context.Context, jm domain.JournalMessage) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return gorm.G[entity.EventDlq](dr.db).Create(ctx, &entity.EventDlq{
		Topic:         jm.Topic,
		Key:           jm.Key,
		Payload:       jm.Payload,
		AttemptCount:  jm.Attempts,
		LastAttemptAt: time.Now(),
	})
}
