package repository

import (
	"context"

	"kairos/turn-engine/internal/domain"
	"kairos/turn-engine/internal/repository/entity"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type clientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *clientRepository {
	return &clientRepository{
		db: db,
	}
}

func (cr *clientRepository) FindByDocument(ctx context.Context, document string) (*domain.Client, error) {
	client, err := gorm.G[entity.Client](cr.db).
		Where("document = ?", document).
		First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find client by document")
	}

	d := client.ToDomain()
	return &d, nil
}

// CreateOrUpdate resolves a client by document, creating the record on first
// contact and refreshing the display name when it changed.
func (cr *clientRepository) CreateOrUpdate(ctx context.Context, document, name string) (domain.Client, error) {
	existing, err := cr.FindByDocument(ctx, document)
	if err != nil {
		return domain.Client{}, err
	}

	if existing == nil {
		created := entity.Client{
			Document: document,
			Name:     name,
		}
		if err := gorm.G[entity.Client](cr.db).Create(ctx, &created); err != nil {
			return domain.Client{}, errors.Wrap(err, "failed to create client")
		}
		return created.ToDomain(), nil
	}

	if existing.Name != name {
		_, err := gorm.G[entity.Client](cr.db).
			Where("id = ?", existing.Id).
			Update(ctx, "name", name)
		if err != nil {
			return domain.Client{}, errors.Wrap(err, "failed to update client name")
		}
		existing.Name = name
	}

	return *existing, nil
}
