package consumption

import (
	"context"
	"errors"
	"time"

	"foodwise-backend/domain"
	"foodwise-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ConsumptionService interface {
		AddLog(ctx context.Context, req domain.AddConsumptionRequest, userID string) (domain.ConsumptionLogResponse, error)
		GetLogs(ctx context.Context, userID string, from, to *time.Time, page, limit int) ([]domain.ConsumptionLogResponse, int64, error)
		DeleteLog(ctx context.Context, id string, userID string) error
	}

	consumptionService struct {
		consumptionRepository ConsumptionRepository
	}
)

func NewConsumptionService(consumptionRepository ConsumptionRepository) ConsumptionService {
	return &consumptionService{consumptionRepository: consumptionRepository}
}

func (s *consumptionService) AddLog(ctx context.Context, req domain.AddConsumptionRequest, userID string) (domain.ConsumptionLogResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ConsumptionLogResponse{}, domain.ErrParseUUID
	}

	dateConsumed, err := time.Parse("2006-01-02", req.DateConsumed)
	if err != nil {
		return domain.ConsumptionLogResponse{}, domain.ErrInvalidConsumedDate
	}

	log := &entities.ConsumptionLog{
		ID:           uuid.New(),
		UserID:       userUUID,
		ItemName:     req.ItemName,
		Category:     req.Category,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		DateConsumed: dateConsumed,
		Notes:        req.Notes,
	}

	if err := s.consumptionRepository.AddLog(ctx, log); err != nil {
		return domain.ConsumptionLogResponse{}, err
	}

	return toLogResponse(log), nil
}

func (s *consumptionService) GetLogs(ctx context.Context, userID string, from, to *time.Time, page, limit int) ([]domain.ConsumptionLogResponse, int64, error) {
	logs, count, err := s.consumptionRepository.GetLogs(ctx, userID, from, to, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]domain.ConsumptionLogResponse, 0, len(logs))
	for _, log := range logs {
		responses = append(responses, toLogResponse(log))
	}
	return responses, count, nil
}

func (s *consumptionService) DeleteLog(ctx context.Context, id string, userID string) error {
	log, err := s.consumptionRepository.GetLogByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrConsumptionLogNotFound
		}
		return err
	}
	if log.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}
	return s.consumptionRepository.DeleteLog(ctx, id)
}

func toLogResponse(log *entities.ConsumptionLog) domain.ConsumptionLogResponse {
	return domain.ConsumptionLogResponse{
		ID:           log.ID.String(),
		ItemName:     log.ItemName,
		Category:     log.Category,
		Quantity:     log.Quantity,
		Unit:         log.Unit,
		DateConsumed: log.DateConsumed,
		Notes:        log.Notes,
	}
}
