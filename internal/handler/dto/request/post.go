package request

// GeneratePostRequest binds the query parameters of a one-off post. Every
// field is optional; blanks fall back to configured defaults and a missing
// holiday resolves to today's calendar entry.
type GeneratePostRequest struct {
	Holiday *string `form:"holiday"`
	Phone   string  `form:"phone"`
	Mail    string  `form:"mail"`
	Website string  `form:"website"`
}
