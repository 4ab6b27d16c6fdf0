package analytics

import (
	"context"
	"time"

	"foodwise-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	AnalyticsRepository interface {
		UpsertRiskPredictions(ctx context.Context, predictions []*entities.RiskPrediction) error
		UpsertWasteSnapshot(ctx context.Context, snapshot *entities.WasteSnapshot) error
		UpsertSDGScore(ctx context.Context, score *entities.SDGImpactScore) error
		GetSDGScore(ctx context.Context, userID string, weekStart time.Time) (*entities.SDGImpactScore, error)
		GetSDGScoreHistory(ctx context.Context, userID string, limit int) ([]*entities.SDGImpactScore, error)
	}

	analyticsRepository struct {
		db *gorm.DB
	}
)

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) UpsertRiskPredictions(ctx context.Context, predictions []*entities.RiskPrediction) error {
	if len(predictions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "inventory_item_id"}, {Name: "predicted_for"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"item_name", "category", "risk_score", "ai_ranking_score",
			"priority", "reasoning", "recommended_action", "updated_at",
		}),
	}).Create(predictions).Error
}

func (r *analyticsRepository) UpsertWasteSnapshot(ctx context.Context, snapshot *entities.WasteSnapshot) error {
	return r.db.WithContext(ctx).Clauses(wasteSnapshotConflict()).Create(snapshot).Error
}

// wasteSnapshotConflict makes repeated estimates for the same day overwrite
// the earlier row instead of accumulating duplicates.
func wasteSnapshotConflict() clause.OnConflict {
	return clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "period"}, {Name: "captured_on"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"waste_grams", "waste_cost", "trend_factor", "by_category", "updated_at",
		}),
	}
}

func (r *analyticsRepository) UpsertSDGScore(ctx context.Context, score *entities.SDGImpactScore) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "week_start_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"overall_score", "waste_score", "nutrition_score",
			"sustainability_score", "insights", "actionable_steps", "updated_at",
		}),
	}).Create(score).Error
}

func (r *analyticsRepository) GetSDGScore(ctx context.Context, userID string, weekStart time.Time) (*entities.SDGImpactScore, error) {
	var score entities.SDGImpactScore
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND week_start_date = ?", userID, weekStart).
		First(&score).Error; err != nil {
		return nil, err
	}
	return &score, nil
}

func (r *analyticsRepository) GetSDGScoreHistory(ctx context.Context, userID string, limit int) ([]*entities.SDGImpactScore, error) {
	var scores []*entities.SDGImpactScore
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("week_start_date desc").
		Limit(limit).
		Find(&scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}
