package repository

import (
	"context"
	"time"

	"kairos/turn-engine/internal/constant"
	"kairos/turn-engine/internal/domain"
	"kairos/turn-engine/internal/repository/entity"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type ticketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *ticketRepository {
	return &ticketRepository{
		db: db,
	}
}

// InsertNext computes the next ticket number for the service and inserts the
// pending ticket in one transaction. The unique index on (service_id, number)
// turns a racing writer into gorm.ErrDuplicatedKey, which the caller retries;
// the partial unique index on (service_id, client_id) for pending rows
// backstops the single-pending-ticket rule the same way.
func (tr *ticketRepository) InsertNext(ctx context.Context, serviceId, clientId int64) (domain.Ticket, error) {
	ctx, cancel := context.WithTimeout(ctx, constant.DBTxTimeout)
	defer cancel()

	var created entity.Ticket
	err := tr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var max int
		err := tx.Model(&entity.Ticket{}).
			Where("service_id = ?", serviceId).
			Select("COALESCE(MAX(number), 0)").
			Scan(&max).Error
		if err != nil {
			return errors.Wrap(err, "failed to read max ticket number")
		}

		created = entity.Ticket{
			ServiceId: serviceId,
			ClientId:  clientId,
			Number:    max + 1,
			State:     string(domain.StatePending),
			CreatedAt: time.Now().UTC(),
		}
		return gorm.G[entity.Ticket](tx).Create(ctx, &created)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Ticket{}, errors.Wrap(constant.ConflictErr, "ticket insert lost a uniqueness race")
		}
		return domain.Ticket{}, err
	}

	return created.ToDomain(), nil
}

func (tr *ticketRepository) FindPendingByClient(ctx context.Context, serviceId, clientId int64) (*domain.Ticket, error) {
	ticket, err := gorm.G[entity.Ticket](tr.db).
		Where("service_id = ? AND client_id = ? AND state = ?", serviceId, clientId, string(domain.StatePending)).
		First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find pending ticket")
	}

	d := ticket.ToDomain()
	return &d, nil
}

func (tr *ticketRepository) FindOldestPending(ctx context.Context, serviceId int64) (*domain.Ticket, error) {
	ticket, err := gorm.G[entity.Ticket](tr.db).
		Where("service_id = ? AND state = ?", serviceId, string(domain.StatePending)).
		Order("number ASC").
		First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find oldest pending ticket")
	}

	d := ticket.ToDomain()
	return &d, nil
}

// UpdateStateFrom is a compare-and-swap transition: the row only changes if
// it is still in the expected state. False means another writer got there
// first (or the ticket is already terminal).
func (tr *ticketRepository) UpdateStateFrom(ctx context.Context, ticketId int64, from, to domain.TicketState) (bool, error) {
	values := map[string]interface{}{"state": string(to)}
	if to == domain.StateCalled {
		values["called_at"] = time.Now().UTC()
	}

	res := tr.db.WithContext(ctx).
		Model(&entity.Ticket{}).
		Where("id = ? AND state = ?", ticketId, string(from)).
		Updates(values)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "failed to update ticket state")
	}

	return res.RowsAffected > 0, nil
}

func (tr *ticketRepository) CountPending(ctx context.Context, serviceId int64) (int, error) {
	count, err := gorm.G[entity.Ticket](tr.db).
		Where("service_id = ? AND state = ?", serviceId, string(domain.StatePending)).
		Count(ctx, "id")
	if err != nil {
		return 0, errors.Wrap(err, "failed to count pending tickets")
	}

	return int(count), nil
}

func (tr *ticketRepository) FindMaxNumber(ctx context.Context, serviceId int64) (int, error) {
	var max int
	err := tr.db.WithContext(ctx).
		Model(&entity.Ticket{}).
		Where("service_id = ?", serviceId).
		Select("COALESCE(MAX(number), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to read max ticket number")
	}

	return max, nil
}

// FindLatestCalled returns the highest-numbered called ticket; numbers are
// monotonic per service, so this is also the most recently called one.
func (tr *ticketRepository) FindLatestCalled(ctx context.Context, serviceId int64) (*domain.Ticket, error) {
	ticket, err := gorm.G[entity.Ticket](tr.db).
		Where("service_id = ? AND state = ?", serviceId, string(domain.StateCalled)).
		Order("number DESC").
		First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find latest called ticket")
	}

	d := ticket.ToDomain()
	return &d, nil
}

func (tr *ticketRepository) FindRecentCalled(ctx context.Context, limit int) ([]domain.Ticket, error) {
	tickets, err := gorm.G[entity.Ticket](tr.db).
		Where("state = ?", string(domain.StateCalled)).
		Order("called_at DESC").
		Limit(limit).
		Find(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recent called tickets")
	}

	result := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, t.ToDomain())
	}

	return result, nil
}

func (tr *ticketRepository) List(ctx context.Context, limit, offset int) ([]domain.Ticket, int64, error) {
	total, err := gorm.G[entity.Ticket](tr.db).Count(ctx, "id")
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count tickets")
	}

	tickets, err := gorm.G[entity.Ticket](tr.db).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(ctx)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list tickets")
	}

	result := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, t.ToDomain())
	}

	return result, total, nil
}
