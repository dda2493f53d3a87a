package response

import (
	"time"

	"postify/internal/domain/holiday"
	"postify/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type HolidayResponse struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	Prompt      string    `json:"prompt"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromHoliday(h holiday.Holiday) (HolidayResponse, error) {
	var resp HolidayResponse
	if err := copier.Copy(&resp, &h); err != nil {
		return HolidayResponse{}, errs.Wrap(err, "failed to map holiday response")
	}
	return resp, nil
}

func FromHolidays(hs []holiday.Holiday) ([]HolidayResponse, error) {
	resp := make([]HolidayResponse, len(hs))
	for i, h := range hs {
		if err := copier.Copy(&resp[i], &h); err != nil {
			return nil, errs.Wrap(err, "failed to map holiday response")
		}
	}
	return resp, nil
}
