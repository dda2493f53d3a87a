package response

import (
	"fmt"
	"time"

	"postify/internal/domain/distribution"

	"github.com/google/uuid"
)

// DistributionStartedResponse acknowledges an accepted fan-out. Exactly one
// of the total fields is populated, matching the audience.
type DistributionStartedResponse struct {
	Status           string    `json:"status"`
	JobID            uuid.UUID `json:"job_id"`
	Holiday          string    `json:"holiday"`
	TotalUsers       int       `json:"total_users,omitempty"`
	TotalSubscribers int       `json:"total_subscribers,omitempty"`
	Message          string    `json:"message"`
	Error            string    `json:"error,omitempty"`
}

type OutcomeResponse struct {
	RecipientID uuid.UUID      `json:"recipient_id"`
	Phone       string         `json:"phone"`
	Success     bool           `json:"success"`
	APIResponse map[string]any `json:"api_response,omitempty"`
	Error       string         `json:"error,omitempty"`
}

type JobStatusResponse struct {
	Status           string            `json:"status"`
	Holiday          string            `json:"holiday"`
	TotalUsers       int               `json:"total_users,omitempty"`
	TotalSubscribers int               `json:"total_subscribers,omitempty"`
	Processed        int               `json:"processed"`
	Successful       int               `json:"successful"`
	Failed           int               `json:"failed"`
	StartedAt        time.Time         `json:"started_at"`
	CompletedAt      *time.Time        `json:"completed_at,omitempty"`
	Error            string            `json:"error,omitempty"`
	Results          []OutcomeResponse `json:"results"`
}

func NewDistributionStarted(jobID uuid.UUID, holidayLabel string, total int, audience distribution.Audience, statusPath string) DistributionStartedResponse {
	resp := DistributionStartedResponse{
		Status:  "started",
		JobID:   jobID,
		Holiday: holidayLabel,
		Message: fmt.Sprintf("Distribution started for %d %s. Check status at %s/%s", total, audience, statusPath, jobID),
	}
	setTotal(&resp.TotalUsers, &resp.TotalSubscribers, audience, total)
	return resp
}

func FromSnapshot(s distribution.Snapshot) JobStatusResponse {
	results := make([]OutcomeResponse, len(s.Results))
	for i, o := range s.Results {
		results[i] = OutcomeResponse{
			RecipientID: o.RecipientID,
			Phone:       o.Phone,
			Success:     o.Success,
			APIResponse: o.Response,
			Error:       o.Error,
		}
	}

	resp := JobStatusResponse{
		Status:      string(s.Status),
		Holiday:     s.Holiday,
		Processed:   s.Processed,
		Successful:  s.Successful,
		Failed:      s.Failed,
		StartedAt:   s.StartedAt,
		CompletedAt: s.CompletedAt,
		Error:       s.Error,
		Results:     results,
	}
	setTotal(&resp.TotalUsers, &resp.TotalSubscribers, s.Audience, s.Total)
	return resp
}

func setTotal(users, subscribers *int, audience distribution.Audience, total int) {
	if audience == distribution.AudienceSubscribers {
		*subscribers = total
		return
	}
	*users = total
}
