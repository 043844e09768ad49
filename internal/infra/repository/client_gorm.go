package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/slot-booker/internal/domain/reservation"
	"github.com/BruksfildServices01/slot-booker/internal/models"
)

var _ domain.ClientRegistry = (*ClientGormRepository)(nil)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) CreateClient(
	ctx context.Context,
	c *models.Client,
) error {
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *ClientGormRepository) ListClients(
	ctx context.Context,
) ([]models.Client, error) {

	var list []models.Client
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (r *ClientGormRepository) GetClient(
	ctx context.Context,
	id uuid.UUID,
) (*models.Client, error) {

	var c models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *ClientGormRepository) ClientExists(
	ctx context.Context,
	id uuid.UUID,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}
