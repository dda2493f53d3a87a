//go:build unit

package holiday_test

import (
	"testing"
	"time"

	"postify/internal/domain/holiday"

	"github.com/stretchr/testify/assert"
)

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{name: "valid date", date: "15-08-2025"},
		{name: "leap day", date: "29-02-2024"},
		{name: "non-leap february 29", date: "29-02-2025", wantErr: true},
		{name: "month out of range", date: "15-13-2025", wantErr: true},
		{name: "day out of range", date: "32-01-2025", wantErr: true},
		{name: "wrong order (YYYY-MM-DD)", date: "2025-08-15", wantErr: true},
		{name: "too short", date: "5-8-2025", wantErr: true},
		{name: "empty", date: "", wantErr: true},
		{name: "garbage", date: "not-a-date", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := holiday.ValidateDate(tt.date)
			if tt.wantErr {
				assert.ErrorIs(t, err, holiday.ErrInvalidDate)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDateFor(t *testing.T) {
	ist := time.FixedZone("IST", 19800)
	assert.Equal(t, "05-01-2026", holiday.DateFor(time.Date(2026, 1, 5, 9, 0, 0, 0, ist)))
	assert.Equal(t, "15-08-2025", holiday.DateFor(time.Date(2025, 8, 15, 23, 59, 0, 0, ist)))
}
