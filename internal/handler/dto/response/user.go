package response

import (
	"time"

	"postify/internal/domain/recipient"
	"postify/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Phone        string    `json:"phone"`
	Mail         string    `json:"mail"`
	Website      string    `json:"website"`
	LogoFilename string    `json:"logo_filename,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreatedResponse struct {
	Status  string    `json:"status"`
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

func FromUser(u recipient.User) (UserResponse, error) {
	var resp UserResponse
	if err := copier.Copy(&resp, &u); err != nil {
		return UserResponse{}, errs.Wrap(err, "failed to map user response")
	}
	return resp, nil
}

func FromUserSummaries(users []recipient.UserSummary) ([]UserResponse, error) {
	resp := make([]UserResponse, len(users))
	for i, u := range users {
		if err := copier.Copy(&resp[i], &u); err != nil {
			return nil, errs.Wrap(err, "failed to map user response")
		}
	}
	return resp, nil
}
