package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"foodwise-backend/entities"
	"foodwise-backend/internal/utils/mailing"
	"foodwise-backend/internal/utils/storage"
	"foodwise-backend/pkg/analytics"
	"foodwise-backend/pkg/inventory"
	"foodwise-backend/pkg/user"

	"github.com/robfig/cron/v3"
)

const (
	dailyRefreshSpec  = "0 6 * * *"
	weeklyScoreSpec   = "0 7 * * 1"
	expiryAlertWindow = 2 // days before expiration to warn
)

type Scheduler struct {
	cron                *cron.Cron
	inventoryService    inventory.InventoryService
	inventoryRepository inventory.InventoryRepository
	userRepository      user.UserRepository
	analyticsService    analytics.AnalyticsService
	s3                  *storage.AwsS3
}

func NewScheduler(
	inventoryService inventory.InventoryService,
	inventoryRepository inventory.InventoryRepository,
	userRepository user.UserRepository,
	analyticsService analytics.AnalyticsService,
	s3 *storage.AwsS3,
) *Scheduler {
	return &Scheduler{
		cron:                cron.New(),
		inventoryService:    inventoryService,
		inventoryRepository: inventoryRepository,
		userRepository:      userRepository,
		analyticsService:    analyticsService,
		s3:                  s3,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(dailyRefreshSpec, s.runDaily); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(weeklyScoreSpec, s.runWeekly); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// runDaily refreshes expiry statuses for every user, then mails alerts
// for items that hit the warning window today.
func (s *Scheduler) runDaily() {
	ctx := context.Background()

	userIDs, err := s.inventoryRepository.GetUserIDs(ctx)
	if err != nil {
		log.Printf("daily refresh: listing users failed: %v", err)
		return
	}
	for _, userID := range userIDs {
		if _, err := s.inventoryService.RefreshStatuses(ctx, userID); err != nil {
			log.Printf("daily refresh failed for user %s: %v", userID, err)
		}
	}

	s.sendExpiryAlerts(ctx)
}

func (s *Scheduler) sendExpiryAlerts(ctx context.Context) {
	target := time.Now().AddDate(0, 0, expiryAlertWindow)
	items, err := s.inventoryRepository.GetItemsExpiringOn(ctx, target)
	if err != nil {
		log.Printf("expiry alerts: fetching items failed: %v", err)
		return
	}
	if len(items) == 0 {
		return
	}

	byUser := make(map[string][]*entities.InventoryItem)
	for _, item := range items {
		byUser[item.UserID.String()] = append(byUser[item.UserID.String()], item)
	}

	recipients, err := s.userRepository.GetUsersWithEmailAlerts(ctx)
	if err != nil {
		log.Printf("expiry alerts: fetching recipients failed: %v", err)
		return
	}

	for _, recipient := range recipients {
		userItems := byUser[recipient.ID.String()]
		if len(userItems) == 0 {
			continue
		}
		if err := mailing.SendMail(
			recipient.Email,
			"Items in your kitchen expire soon",
			expiryAlertBody(recipient.Name, userItems),
		); err != nil {
			log.Printf("expiry alert mail to %s failed: %v", recipient.Email, err)
		}
	}
}

// runWeekly persists the SDG score for every user and archives the report.
func (s *Scheduler) runWeekly() {
	ctx := context.Background()

	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		log.Printf("weekly score: listing users failed: %v", err)
		return
	}

	for _, owner := range users {
		userID := owner.ID.String()
		score, err := s.analyticsService.SaveWeeklyScore(ctx, userID, nil)
		if err != nil {
			log.Printf("weekly score save failed for user %s: %v", userID, err)
			continue
		}

		if s.s3 != nil {
			key := fmt.Sprintf("reports/%s/%s.json", userID, score.WeekStartDate.Format("2006-01-02"))
			if _, err := s.s3.UploadJSON(ctx, key, score); err != nil {
				log.Printf("weekly report archive failed for user %s: %v", userID, err)
			}
		}

		if owner.EmailAlerts {
			if err := mailing.SendMail(
				owner.Email,
				"Your weekly food impact summary",
				weeklySummaryBody(owner.Name, score.OverallScore, score.WasteScore, score.NutritionScore, score.SustainabilityScore),
			); err != nil {
				log.Printf("weekly summary mail to %s failed: %v", owner.Email, err)
			}
		}
	}
}

func expiryAlertBody(name string, items []*entities.InventoryItem) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<p>Hi %s,</p>", name))
	sb.WriteString(fmt.Sprintf("<p>The following items expire in %d days:</p><ul>", expiryAlertWindow))
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("<li>%s (%.1f %s)</li>", item.ItemName, item.Quantity, item.Unit))
	}
	sb.WriteString("</ul><p>Plan a meal around them before they go to waste.</p>")
	return sb.String()
}

func weeklySummaryBody(name string, overall, waste, nutrition, sustainability float64) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<p>Hi %s,</p>", name))
	sb.WriteString(fmt.Sprintf("<p>Your food impact score this week: <b>%.1f</b></p>", overall))
	sb.WriteString("<ul>")
	sb.WriteString(fmt.Sprintf("<li>Waste reduction: %.1f</li>", waste))
	sb.WriteString(fmt.Sprintf("<li>Nutrition balance: %.1f</li>", nutrition))
	sb.WriteString(fmt.Sprintf("<li>Sustainability: %.1f</li>", sustainability))
	sb.WriteString("</ul>")
	return sb.String()
}
