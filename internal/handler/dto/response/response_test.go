//go:build unit

package response_test

import (
	"testing"
	"time"

	"postify/internal/domain/holiday"
	"postify/internal/domain/recipient"
	resdto "postify/internal/handler/dto/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUser(t *testing.T) {
	u := recipient.User{
		ID:           uuid.New(),
		Phone:        "8299396255",
		Mail:         "hello@androcoders.in",
		Website:      "androcoders.in",
		Logo:         []byte{0x89, 0x50},
		LogoFilename: "logo.png",
		CreatedAt:    time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC),
	}

	resp, err := resdto.FromUser(u)

	require.NoError(t, err)
	assert.Equal(t, resdto.UserResponse{
		ID:           u.ID,
		Phone:        u.Phone,
		Mail:         u.Mail,
		Website:      u.Website,
		LogoFilename: u.LogoFilename,
		CreatedAt:    u.CreatedAt,
	}, resp)
}

func TestFromUserSummaries(t *testing.T) {
	users := []recipient.UserSummary{
		{ID: uuid.New(), Phone: "111", Mail: "a@b.c", Website: "a.b", CreatedAt: time.Now()},
		{ID: uuid.New(), Phone: "222", Mail: "d@e.f", Website: "d.e", CreatedAt: time.Now()},
	}

	resp, err := resdto.FromUserSummaries(users)

	require.NoError(t, err)
	require.Len(t, resp, 2)
	for i, u := range users {
		assert.Equal(t, u.ID, resp[i].ID)
		assert.Equal(t, u.Phone, resp[i].Phone)
		assert.Equal(t, u.Mail, resp[i].Mail)
		assert.Equal(t, u.Website, resp[i].Website)
		assert.Equal(t, u.CreatedAt, resp[i].CreatedAt)
	}
}

func TestFromSubscriber(t *testing.T) {
	s := recipient.Subscriber{
		ID:        uuid.New(),
		Name:      "Acme",
		Phone:     "333",
		Overlay:   []byte{0x89, 0x50},
		CreatedAt: time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC),
	}

	resp, err := resdto.FromSubscriber(s)

	require.NoError(t, err)
	assert.Equal(t, resdto.SubscriberResponse{
		ID:        s.ID,
		Name:      s.Name,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt,
	}, resp)
}

func TestFromHoliday(t *testing.T) {
	desc := "festival of lights"
	h := holiday.Holiday{
		ID:          uuid.New(),
		Date:        "20-10-2025",
		Prompt:      "Diwali",
		Description: &desc,
		CreatedAt:   time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC),
	}

	resp, err := resdto.FromHoliday(h)

	require.NoError(t, err)
	assert.Equal(t, resdto.HolidayResponse{
		ID:          h.ID,
		Date:        h.Date,
		Prompt:      h.Prompt,
		Description: h.Description,
		CreatedAt:   h.CreatedAt,
	}, resp)

	list, err := resdto.FromHolidays([]holiday.Holiday{h})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, resp, list[0])
}
