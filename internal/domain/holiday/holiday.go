package holiday

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar key format (DD-MM-YYYY), kept as an opaque
// string key with uniqueness enforced by the store.
const DateLayout = "02-01-2006"

var ErrInvalidDate = errors.New("date must be in DD-MM-YYYY format")

type Holiday struct {
	ID          uuid.UUID
	Date        string
	Prompt      string
	Description *string
	CreatedAt   time.Time
}

func ValidateDate(date string) error {
	if len(date) != len(DateLayout) {
		return ErrInvalidDate
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// DateFor formats t as a calendar key.
func DateFor(t time.Time) string {
	return t.Format(DateLayout)
}
