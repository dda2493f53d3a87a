package response

import (
	"time"

	"postify/internal/domain/recipient"
	"postify/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SubscriberResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func FromSubscriber(s recipient.Subscriber) (SubscriberResponse, error) {
	var resp SubscriberResponse
	if err := copier.Copy(&resp, &s); err != nil {
		return SubscriberResponse{}, errs.Wrap(err, "failed to map subscriber response")
	}
	return resp, nil
}

func FromSubscriberSummaries(subs []recipient.SubscriberSummary) ([]SubscriberResponse, error) {
	resp := make([]SubscriberResponse, len(subs))
	for i, s := range subs {
		if err := copier.Copy(&resp[i], &s); err != nil {
			return nil, errs.Wrap(err, "failed to map subscriber response")
		}
	}
	return resp, nil
}
