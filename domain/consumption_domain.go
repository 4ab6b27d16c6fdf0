package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddConsumption    = "consumption logged successfully"
	MessageSuccessGetConsumption    = "consumption logs retrieved successfully"
	MessageSuccessDeleteConsumption = "consumption log deleted successfully"

	MessageFailedAddConsumption    = "failed to log consumption"
	MessageFailedGetConsumption    = "failed to retrieve consumption logs"
	MessageFailedDeleteConsumption = "failed to delete consumption log"

	ErrConsumptionLogNotFound = errors.New("consumption log not found")
	ErrInvalidConsumedDate    = errors.New("invalid consumption date")
)

type (
	AddConsumptionRequest struct {
		ItemName     string  `json:"item_name" validate:"required"`
		Category     string  `json:"category" validate:"required"`
		Quantity     float64 `json:"quantity" validate:"required,gt=0"`
		Unit         string  `json:"unit" validate:"required"`
		DateConsumed string  `json:"date_consumed" validate:"required"`
		Notes        string  `json:"notes"`
	}

	ConsumptionLogResponse struct {
		ID           string    `json:"id"`
		ItemName     string    `json:"item_name"`
		Category     string    `json:"category"`
		Quantity     float64   `json:"quantity"`
		Unit         string    `json:"unit"`
		DateConsumed time.Time `json:"date_consumed"`
		Notes        string    `json:"notes,omitempty"`
	}
)
