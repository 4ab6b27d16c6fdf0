package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysUntilExpiry(t *testing.T) {
	today := date(2025, time.June, 15)

	noDate := InventoryItem{}
	_, ok := noDate.DaysUntilExpiry(today)
	assert.False(t, ok)

	tests := []struct {
		name   string
		expiry time.Time
		want   int
	}{
		{"expired last week", date(2025, time.June, 8), -7},
		{"yesterday", date(2025, time.June, 14), -1},
		{"today", date(2025, time.June, 15), 0},
		{"tomorrow", date(2025, time.June, 16), 1},
		{"next month", date(2025, time.July, 15), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expiry := tt.expiry
			item := InventoryItem{ExpirationDate: &expiry}
			days, ok := item.DaysUntilExpiry(today)
			assert.True(t, ok)
			assert.Equal(t, tt.want, days)
		})
	}
}

func TestDaysUntilExpiryIgnoresTimeOfDay(t *testing.T) {
	// Late-evening timestamps on either side must not shift the day count.
	today := time.Date(2025, time.June, 15, 23, 30, 0, 0, time.UTC)
	expiry := time.Date(2025, time.June, 16, 1, 0, 0, 0, time.UTC)

	item := InventoryItem{ExpirationDate: &expiry}
	days, ok := item.DaysUntilExpiry(today)
	assert.True(t, ok)
	assert.Equal(t, 1, days)
}

func TestDeriveStatus(t *testing.T) {
	today := date(2025, time.June, 15)
	expired := date(2025, time.June, 14)
	expiresToday := date(2025, time.June, 15)
	threeDays := date(2025, time.June, 18)
	fourDays := date(2025, time.June, 19)

	tests := []struct {
		name    string
		current string
		expiry  *time.Time
		want    string
	}{
		{"consumed is terminal", StatusConsumed, &expired, StatusConsumed},
		{"no expiry stays fresh", StatusFresh, nil, StatusFresh},
		{"past expiry", StatusFresh, &expired, StatusExpired},
		{"expires today", StatusFresh, &expiresToday, StatusExpiringSoon},
		{"three days out", StatusFresh, &threeDays, StatusExpiringSoon},
		{"four days out", StatusExpiringSoon, &fourDays, StatusFresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.current, tt.expiry, today))
		})
	}
}
