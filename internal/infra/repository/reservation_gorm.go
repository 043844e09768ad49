package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/slot-booker/internal/domain/reservation"
	"github.com/BruksfildServices01/slot-booker/internal/httperr"
	"github.com/BruksfildServices01/slot-booker/internal/models"
)

var _ domain.Store = (*ReservationGormRepository)(nil)

// ReservationGormRepository relies on the reservations_no_overlap exclusion
// constraint created by db.NewDB for exclusivity.
type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *ReservationGormRepository) InsertIfNonOverlapping(
	ctx context.Context,
	res *models.Reservation,
) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(res).Error)
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *ReservationGormRepository) FindByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&res).Error; err != nil {
		return nil, translate(err)
	}
	return &res, nil
}

func (r *ReservationGormRepository) ListOverlapping(
	ctx context.Context,
	window domain.TimeSlot,
) ([]models.Reservation, error) {

	var list []models.Reservation
	if err := r.db.WithContext(ctx).
		Where(
			"status = ? AND tstzrange(start_time, end_time, '[)') && tstzrange(?, ?, '[)')",
			string(domain.StatusConfirmed),
			window.Start,
			window.End,
		).
		Order("start_time ASC").
		Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (r *ReservationGormRepository) ListByClient(
	ctx context.Context,
	clientID uuid.UUID,
) ([]models.Reservation, error) {

	var list []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("start_time ASC").
		Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

// --------------------------------------------------
// Cancel
// --------------------------------------------------

func (r *ReservationGormRepository) SetCancelled(
	ctx context.Context,
	id uuid.UUID,
	at time.Time,
) (*models.Reservation, error) {

	var updated []models.Reservation
	tx := r.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{}).
		Where("id = ? AND status = ?", id, string(domain.StatusConfirmed)).
		Updates(map[string]any{
			"status":       string(domain.StatusCancelled),
			"cancelled_at": domain.Normalize(at),
		})
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}

	if tx.RowsAffected == 1 && len(updated) == 1 {
		return &updated[0], nil
	}

	// nothing updated: either missing or already cancelled
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.CanCancel(domain.Status(existing.Status)); err != nil {
		return nil, err
	}
	return nil, httperr.ErrBusiness(httperr.CodeAlreadyCancelled)
}
