package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyExpiry_Boundaries(t *testing.T) {
	today := Date{Year: 2026, Month: time.March, Day: 28}

	tests := []struct {
		name string
		diff int
		want ExpiryStatus
	}{
		{"yesterday", -1, StatusExpired},
		{"long ago", -40, StatusExpired},
		{"today", 0, StatusExpiringSoon},
		{"in three days", 3, StatusExpiringSoon},
		{"in seven days", 7, StatusExpiringSoon},
		{"in eight days", 8, StatusNormal},
		{"next year", 365, StatusNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := today.AddDays(tt.diff)
			assert.Equal(t, tt.want, ClassifyExpiry(&d, today))
		})
	}
}

func TestClassifyExpiry_NoDateIsNormal(t *testing.T) {
	today := DateOf(time.Now())
	assert.Equal(t, StatusNormal, ClassifyExpiry(nil, today))
	assert.Equal(t, StatusNormal, ClassifyExpiry(&Date{}, today))
}

func TestClassifyExpiry_AcrossMonthAndDST(t *testing.T) {
	today := Date{Year: 2026, Month: time.October, Day: 28}
	exp := Date{Year: 2026, Month: time.November, Day: 4}
	assert.Equal(t, 7, today.DaysUntil(exp))
	assert.Equal(t, StatusExpiringSoon, ClassifyExpiry(&exp, today))
}

func TestCountExpiringSoon_ExcludesExpiredAndUndated(t *testing.T) {
	today := Date{Year: 2026, Month: time.January, Day: 10}
	soon := today.AddDays(2)
	edge := today.AddDays(7)
	past := today.AddDays(-1)
	later := today.AddDays(30)

	items := []PantryItem{
		{ID: 1, ExpiresOn: &soon},
		{ID: 2, ExpiresOn: &edge},
		{ID: 3, ExpiresOn: &past},
		{ID: 4, ExpiresOn: &later},
		{ID: 5},
	}
	assert.Equal(t, 2, CountExpiringSoon(items, today))
}

func TestExpiryStatus_String(t *testing.T) {
	assert.Equal(t, "expired", StatusExpired.String())
	assert.Equal(t, "expiring-soon", StatusExpiringSoon.String())
	assert.Equal(t, "normal", StatusNormal.String())
}
