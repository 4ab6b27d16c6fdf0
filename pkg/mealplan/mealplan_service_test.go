package mealplan

import (
	"context"
	"testing"
	"time"

	"foodwise-backend/domain"
	"foodwise-backend/entities"
	"foodwise-backend/pkg/advisor"
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

type stubCatalogRepository struct {
	items               []*entities.FoodCatalogItem
	requestedCategories []string
}

func (s *stubCatalogRepository) GetItems(ctx context.Context, category string) ([]*entities.FoodCatalogItem, error) {
	return s.items, nil
}

func (s *stubCatalogRepository) SearchByName(ctx context.Context, prefix string, limit int) ([]*entities.FoodCatalogItem, error) {
	return s.items, nil
}

func (s *stubCatalogRepository) GetByCategories(ctx context.Context, categories []string) ([]*entities.FoodCatalogItem, error) {
	s.requestedCategories = categories
	return s.items, nil
}

type stubUserRepository struct {
	user *entities.User
}

func (s *stubUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	return s.user, nil
}

func (s *stubUserRepository) GetUsersWithEmailAlerts(ctx context.Context) ([]*entities.User, error) {
	return nil, nil
}

func (s *stubUserRepository) GetAllUsers(ctx context.Context) ([]*entities.User, error) {
	return nil, nil
}

func newTestMealPlanService(catalogItems []*entities.FoodCatalogItem, owner *entities.User) MealPlanService {
	return NewMealPlanService(
		&stubInventoryRepository{},
		&stubCatalogRepository{items: catalogItems},
		&stubUserRepository{user: owner},
		advisor.NewGeminiClient("", ""),
		analytics.DefaultTables(),
	)
}

func TestOptimizeRejectsInvalidDays(t *testing.T) {
	service := newTestMealPlanService(nil, &entities.User{HouseholdSize: 1})

	_, err := service.Optimize(context.Background(), domain.OptimizeMealPlanRequest{Days: 15}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrInvalidPlanDays)
}

func TestOptimizeUsesProfileBudgetRange(t *testing.T) {
	owner := &entities.User{HouseholdSize: 2, BudgetRange: "high"}
	service := newTestMealPlanService(nil, owner)

	plan, err := service.Optimize(context.Background(), domain.OptimizeMealPlanRequest{}, uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, "high", plan.BudgetRange)
	assert.Equal(t, analytics.DefaultTables().BudgetByRange["high"], plan.Budget)
}

func TestOptimizeBudgetLimitOverridesRange(t *testing.T) {
	owner := &entities.User{HouseholdSize: 1, BudgetRange: "low"}
	service := newTestMealPlanService(nil, owner)

	limit := 30.0
	plan, err := service.Optimize(context.Background(), domain.OptimizeMealPlanRequest{
		BudgetLimit: &limit,
	}, uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, 30.0, plan.Budget)
}

func TestOptimizeFetchesOnlyPlannableCategories(t *testing.T) {
	catalogRepo := &stubCatalogRepository{}
	service := NewMealPlanService(
		&stubInventoryRepository{},
		catalogRepo,
		&stubUserRepository{user: &entities.User{HouseholdSize: 1, BudgetRange: "medium"}},
		advisor.NewGeminiClient("", ""),
		analytics.DefaultTables(),
	)

	_, err := service.Optimize(context.Background(), domain.OptimizeMealPlanRequest{}, uuid.NewString())

	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"grain", "fruit", "dairy", "vegetable", "meat"},
		catalogRepo.requestedCategories)
}

func TestOptimizeStaysRuleBasedWithoutGemini(t *testing.T) {
	owner := &entities.User{HouseholdSize: 1, BudgetRange: "medium"}
	service := newTestMealPlanService(nil, owner)

	plan, err := service.Optimize(context.Background(), domain.OptimizeMealPlanRequest{
		UseLLM: true,
	}, uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, "rule_based", plan.OptimizationMethod)
	assert.Empty(t, plan.AISummary)
}
