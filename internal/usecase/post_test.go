//go:build unit

package usecase

import (
	"context"
	"image"
	"io"
	"log/slog"
	"testing"
	"time"

	"postify/internal/domain/distribution"
	"postify/internal/domain/holiday"
	"postify/internal/domain/recipient"
	"postify/internal/pkg/clock"
	"postify/internal/pkg/config"
	"postify/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureCompositor remembers the branding it was asked to stamp.
type captureCompositor struct {
	cust recipient.Customization
}

func (c *captureCompositor) Compose(_ image.Image, cust recipient.Customization) (*image.NRGBA, error) {
	c.cust = cust
	return image.NewNRGBA(image.Rect(0, 0, 1, 1)), nil
}

type postFixture struct {
	uc         *postUseCaseImpl
	compositor *captureCompositor
	notifier   *stubNotifier
}

func newPostFixture(h *holiday.Holiday) *postFixture {
	now := time.Date(2025, 10, 20, 9, 0, 0, 0, time.FixedZone("IST", 19800))

	f := &postFixture{
		compositor: &captureCompositor{},
		notifier:   &stubNotifier{fail: map[string]string{}},
	}
	f.uc = &postUseCaseImpl{
		holidays:   &stubHolidayRepo{holiday: h},
		prompts:    &stubPromptWriter{pc: distribution.PostCopy{Prompt: "a diya at dusk", Caption: "Happy Diwali!"}},
		synth:      &stubSynth{},
		compositor: f.compositor,
		notifier:   f.notifier,
		defaults: config.WhatsAppConfig{
			DefaultPhone:   "8299396255",
			DefaultMail:    "ANDROCODERS21@GMAIL.COM",
			DefaultWebsite: "ANDROCODERS.IN",
		},
		clock:  clock.NewMockClock(now),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return f
}

func todaysEntry() *holiday.Holiday {
	now := time.Date(2025, 10, 20, 9, 0, 0, 0, time.FixedZone("IST", 19800))
	return &holiday.Holiday{ID: uuid.New(), Date: holiday.DateFor(now), Prompt: "Diwali"}
}

func TestGeneratePost(t *testing.T) {
	t.Run("empty input falls back to the configured contact", func(t *testing.T) {
		f := newPostFixture(todaysEntry())

		res, err := f.uc.Generate(context.Background(), GeneratePostInput{})
		require.NoError(t, err)

		assert.True(t, res.Success)
		assert.Equal(t, "Diwali", res.Holiday)
		assert.Equal(t, "Happy Diwali!", res.Caption)
		assert.Contains(t, res.Message, "sent to 8299396255")

		footer, ok := f.compositor.cust.(recipient.LogoAndFooter)
		require.True(t, ok)
		assert.Equal(t, "+91 8299396255", footer.Phone)
		assert.Equal(t, "ANDROCODERS21@GMAIL.COM", footer.Mail)
		assert.Equal(t, "ANDROCODERS.IN", footer.Website)
		assert.Nil(t, footer.Logo)

		assert.Equal(t, []string{"8299396255"}, f.notifier.sentPhones())
	})

	t.Run("holiday override skips the calendar", func(t *testing.T) {
		f := newPostFixture(nil)
		occasion := "New Year"

		res, err := f.uc.Generate(context.Background(), GeneratePostInput{Holiday: &occasion, Phone: "111"})
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, "New Year", res.Holiday)
		assert.Equal(t, []string{"111"}, f.notifier.sentPhones())
	})

	t.Run("no calendar entry and no override", func(t *testing.T) {
		f := newPostFixture(nil)

		_, err := f.uc.Generate(context.Background(), GeneratePostInput{})
		assert.ErrorIs(t, err, ErrNoHolidayToday)
	})

	t.Run("delivery failure still hands back the caption", func(t *testing.T) {
		f := newPostFixture(todaysEntry())
		f.notifier.fail["8299396255"] = "gateway unreachable"

		res, err := f.uc.Generate(context.Background(), GeneratePostInput{})
		require.NoError(t, err)

		assert.False(t, res.Success)
		assert.Equal(t, "Happy Diwali!", res.Caption)
		assert.Contains(t, res.Message, "failed to send")
	})

	t.Run("synthesis failure is an error", func(t *testing.T) {
		f := newPostFixture(todaysEntry())
		f.uc.synth = &stubSynth{err: errs.New("model overloaded")}

		_, err := f.uc.Generate(context.Background(), GeneratePostInput{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "image generation failed")
	})
}
