package consumption

import (
	"context"
	"time"

	"foodwise-backend/entities"

	"gorm.io/gorm"
)

type (
	ConsumptionRepository interface {
		AddLog(ctx context.Context, log *entities.ConsumptionLog) error
		GetLogByID(ctx context.Context, id string) (*entities.ConsumptionLog, error)
		DeleteLog(ctx context.Context, id string) error
		GetLogs(ctx context.Context, userID string, from, to *time.Time, page, limit int) ([]*entities.ConsumptionLog, int64, error)
		GetLogsSince(ctx context.Context, userID string, since time.Time) ([]*entities.ConsumptionLog, error)
	}

	consumptionRepository struct {
		db *gorm.DB
	}
)

func NewConsumptionRepository(db *gorm.DB) ConsumptionRepository {
	return &consumptionRepository{db: db}
}

func (r *consumptionRepository) AddLog(ctx context.Context, log *entities.ConsumptionLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *consumptionRepository) GetLogByID(ctx context.Context, id string) (*entities.ConsumptionLog, error) {
	var log entities.ConsumptionLog
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *consumptionRepository) DeleteLog(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ConsumptionLog{}).Error
}

func (r *consumptionRepository) GetLogs(ctx context.Context, userID string, from, to *time.Time, page, limit int) ([]*entities.ConsumptionLog, int64, error) {
	var logs []*entities.ConsumptionLog
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("date_consumed >= ?", from.Format("2006-01-02"))
	}
	if to != nil {
		query = query.Where("date_consumed <= ?", to.Format("2006-01-02"))
	}

	if err := query.Model(&entities.ConsumptionLog{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).
		Order("date_consumed desc").
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, count, nil
}

func (r *consumptionRepository) GetLogsSince(ctx context.Context, userID string, since time.Time) ([]*entities.ConsumptionLog, error) {
	var logs []*entities.ConsumptionLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date_consumed >= ?", userID, since.Format("2006-01-02")).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
