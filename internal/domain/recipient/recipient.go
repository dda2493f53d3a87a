package recipient

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyPhone = errors.New("phone must not be empty")

// User is a branded recipient: posts sent to a user carry the decorative
// overlay, the user's logo and a contact footer.
type User struct {
	ID           uuid.UUID
	Phone        string
	Mail         string
	Website      string
	Logo         []byte
	LogoFilename string
	CreatedAt    time.Time
}

// UserSummary is the list projection of a user, without the binary logo.
type UserSummary struct {
	ID           uuid.UUID
	Phone        string
	Mail         string
	Website      string
	LogoFilename string
	CreatedAt    time.Time
}

// Subscriber is a recipient that supplies its own full-canvas overlay; no
// footer or logo is drawn for subscribers.
type Subscriber struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Overlay   []byte
	CreatedAt time.Time
}

// SubscriberSummary is the list projection of a subscriber, without the
// binary overlay.
type SubscriberSummary struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	CreatedAt time.Time
}

// Customization is the per-recipient branding payload. Exactly two variants
// exist: LogoAndFooter (user posts) and FullCanvasOverlay (subscriber posts).
type Customization interface {
	customization()
}

type LogoAndFooter struct {
	Logo    []byte // nil falls back to the configured default mark
	Phone   string
	Mail    string
	Website string
}

func (LogoAndFooter) customization() {}

// FooterLine renders the contact footer: "<phone>   |   <MAIL>   |   <WEBSITE>".
func (c LogoAndFooter) FooterLine() string {
	return fmt.Sprintf("%s   |   %s   |   %s",
		c.Phone, strings.ToUpper(c.Mail), strings.ToUpper(c.Website))
}

type FullCanvasOverlay struct {
	Overlay []byte
}

func (FullCanvasOverlay) customization() {}

func (u User) Customization() Customization {
	return LogoAndFooter{
		Logo:    u.Logo,
		Phone:   u.Phone,
		Mail:    u.Mail,
		Website: u.Website,
	}
}

func (s Subscriber) Customization() Customization {
	return FullCanvasOverlay{Overlay: s.Overlay}
}
