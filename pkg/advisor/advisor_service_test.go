package advisor

import (
	"context"
	"testing"
	"time"

	"foodwise-backend/domain"
	"foodwise-backend/entities"
	"foodwise-backend/pkg/analytics"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInventoryRepository struct {
	items []*entities.InventoryItem
}

func (s *stubInventoryRepository) AddItem(ctx context.Context, item *entities.InventoryItem) error {
	return nil
}

func (s *stubInventoryRepository) GetItemByID(ctx context.Context, id string) (*entities.InventoryItem, error) {
	return nil, nil
}

func (s *stubInventoryRepository) UpdateItem(ctx context.Context, item *entities.InventoryItem) error {
	return nil
}

func (s *stubInventoryRepository) DeleteItem(ctx context.Context, id string) error {
	return nil
}

func (s *stubInventoryRepository) GetItems(ctx context.Context, userID string, status string, page, limit int) ([]*entities.InventoryItem, int64, error) {
	return s.items, int64(len(s.items)), nil
}

func (s *stubInventoryRepository) GetAllItems(ctx context.Context, userID string) ([]*entities.InventoryItem, error) {
	return s.items, nil
}

func (s *stubInventoryRepository) GetActiveItems(ctx context.Context, userID string) ([]*entities.InventoryItem, error) {
	return s.items, nil
}

func (s *stubInventoryRepository) GetItemsExpiringOn(ctx context.Context, date time.Time) ([]*entities.InventoryItem, error) {
	return nil, nil
}

func (s *stubInventoryRepository) CountByStatus(ctx context.Context, userID string) (map[string]int64, error) {
	return nil, nil
}

func (s *stubInventoryRepository) GetUserIDs(ctx context.Context) ([]string, error) {
	return nil, nil
}

type stubConsumptionRepository struct {
	logs []*entities.ConsumptionLog
}

func (s *stubConsumptionRepository) AddLog(ctx context.Context, log *entities.ConsumptionLog) error {
	return nil
}

func (s *stubConsumptionRepository) GetLogByID(ctx context.Context, id string) (*entities.ConsumptionLog, error) {
	return nil, nil
}

func (s *stubConsumptionRepository) DeleteLog(ctx context.Context, id string) error {
	return nil
}

func (s *stubConsumptionRepository) GetLogs(ctx context.Context, userID string, from, to *time.Time, page, limit int) ([]*entities.ConsumptionLog, int64, error) {
	return s.logs, int64(len(s.logs)), nil
}

func (s *stubConsumptionRepository) GetLogsSince(ctx context.Context, userID string, since time.Time) ([]*entities.ConsumptionLog, error) {
	return s.logs, nil
}

func newTestService(inventory *stubInventoryRepository, consumption *stubConsumptionRepository) AdvisorService {
	return NewAdvisorService(
		NewGeminiClient("", ""),
		inventory,
		consumption,
		analytics.DefaultTables(),
	)
}

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"How do I stop throwing food in the trash?", IntentWasteReduction},
		{"My milk is expiring tomorrow, what do I do?", IntentWasteReduction},
		{"Is my diet balanced? I want more protein", IntentNutrition},
		{"Help me plan meals for the week with a shopping list", IntentMealPlanning},
		{"What to do with leftover rice from yesterday?", IntentLeftovers},
		{"Where can I donate surplus food in my community?", IntentSharing},
		{"What is the carbon footprint of my groceries?", IntentEnvironment},
		{"Hello there", IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, detectIntent(tt.message))
		})
	}
}

func TestAskRejectsEmptyQuestion(t *testing.T) {
	service := newTestService(&stubInventoryRepository{}, &stubConsumptionRepository{})

	_, err := service.Ask(context.Background(), domain.AskAdvisorRequest{Question: "   "}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrEmptyQuestion)
}

func TestAskFallsBackToRulesWithoutGemini(t *testing.T) {
	service := newTestService(&stubInventoryRepository{}, &stubConsumptionRepository{})

	resp, err := service.Ask(context.Background(), domain.AskAdvisorRequest{
		Question: "How can I reduce my food waste?",
	}, uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, domain.AdvisorSourceRuleBase, resp.Source)
	assert.Equal(t, IntentWasteReduction, resp.Intent)
	assert.NotEmpty(t, resp.Reply)
}

func TestAskMentionsExpiringItems(t *testing.T) {
	expiry := time.Now().AddDate(0, 0, 2)
	inventory := &stubInventoryRepository{
		items: []*entities.InventoryItem{
			{
				ID:             uuid.New(),
				ItemName:       "Milk",
				Category:       "dairy",
				Quantity:       1,
				Unit:           "l",
				ExpirationDate: &expiry,
				Status:         entities.StatusExpiringSoon,
			},
		},
	}
	service := newTestService(inventory, &stubConsumptionRepository{})

	resp, err := service.Ask(context.Background(), domain.AskAdvisorRequest{
		Question: "What should I do about food going bad?",
	}, uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, IntentWasteReduction, resp.Intent)
	assert.Contains(t, resp.Reply, "Milk")
}

func TestGenerateInsightsRequiresGemini(t *testing.T) {
	service := newTestService(&stubInventoryRepository{}, &stubConsumptionRepository{})

	_, err := service.GenerateInsights(context.Background(), 80, 70, 60)
	assert.ErrorIs(t, err, ErrGeminiNotConfigured)
	// callers key on this sentinel to skip logging the expected case
	assert.ErrorIs(t, err, analytics.ErrInsightsUnavailable)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain object",
			in:   `{"insights": []}`,
			want: `{"insights": []}`,
		},
		{
			name: "json code fence",
			in:   "```json\n{\"insights\": []}\n```",
			want: `{"insights": []}`,
		},
		{
			name: "bare code fence",
			in:   "```\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "surrounding prose",
			in:   "Here is the result:\n{\"a\": 1}\nHope that helps!",
			want: `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSON(tt.in))
		})
	}
}
