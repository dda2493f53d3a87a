package request

// CreateHolidayRequest registers one calendar entry. Date uses the
// DD-MM-YYYY layout and must be unique.
type CreateHolidayRequest struct {
	Date        string  `json:"date" binding:"required"`
	Prompt      string  `json:"prompt" binding:"required"`
	Description *string `json:"description,omitempty"`
}

type UpdateHolidayRequest struct {
	Date        *string `json:"date,omitempty"`
	Prompt      *string `json:"prompt,omitempty"`
	Description *string `json:"description,omitempty"`
}
