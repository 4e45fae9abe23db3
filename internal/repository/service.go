package repository

import (
	"context"

	"kairos/turn-engine/internal/domain"
	"kairos/turn-engine/internal/repository/entity"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type serviceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *serviceRepository {
	return &serviceRepository{
		db: db,
	}
}

func (sr *serviceRepository) Exists(ctx context.Context, serviceId int64) (bool, error) {
	count, err := gorm.G[entity.Service](sr.db).
		Where("id = ?", serviceId).
		Count(ctx, "id")
	if err != nil {
		return false, errors.Wrap(err, "failed to check service existence")
	}

	return count > 0, nil
}

func (sr *serviceRepository) List(ctx context.Context) ([]domain.Service, error) {
	services, err := gorm.G[entity.Service](sr.db).
		Order("name ASC").
		Find(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	result := make([]domain.Service, 0, len(services))
	for _, s := range services {
		result = append(result, s.ToDomain())
	}

	return result, nil
}
