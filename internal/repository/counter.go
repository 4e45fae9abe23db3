package repository

import (
	"context"

	"kairos/turn-engine/internal/domain"
	"kairos/turn-engine/internal/repository/entity"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type counterRepository struct {
	db *gorm.DB
}

func NewCounterRepository(db *gorm.DB) *counterRepository {
	return &counterRepository{
		db: db,
	}
}

// Increment upserts the (user, service) tally. Best-effort from the engine's
// point of view: callers log failures and move on.
func (cr *counterRepository) Increment(ctx context.Context, userId, serviceId int64) error {
	err := cr.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "service_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("handled_counters.count + 1")}),
		}).
		Create(&entity.HandledCounter{
			UserId:    userId,
			ServiceId: serviceId,
			Count:     1,
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed to increment handled counter")
	}

	return nil
}

func (cr *counterRepository) Totals(ctx context.Context) ([]domain.HandledCount, error) {
	counters, err := gorm.G[entity.HandledCounter](cr.db).
		Order("user_id ASC, service_id ASC").
		Find(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list handled counters")
	}

	result := make([]domain.HandledCount, 0, len(counters))
	for _, c := range counters {
		result = append(result, c.ToDomain())
	}

	return result, nil
}
