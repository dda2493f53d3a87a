//go:build unit

package recipient_test

import (
	"testing"

	"postify/internal/domain/recipient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFooterLine(t *testing.T) {
	t.Run("uppercases mail and website but not phone", func(t *testing.T) {
		c := recipient.LogoAndFooter{
			Phone:   "8299396255",
			Mail:    "hello@example.com",
			Website: "example.in",
		}
		assert.Equal(t, "8299396255   |   HELLO@EXAMPLE.COM   |   EXAMPLE.IN", c.FooterLine())
	})

	t.Run("keeps already-uppercase fields intact", func(t *testing.T) {
		c := recipient.LogoAndFooter{
			Phone:   "+91 8299396255",
			Mail:    "ANDROCODERS21@GMAIL.COM",
			Website: "ANDROCODERS.IN",
		}
		assert.Equal(t, "+91 8299396255   |   ANDROCODERS21@GMAIL.COM   |   ANDROCODERS.IN", c.FooterLine())
	})
}

func TestCustomizationVariants(t *testing.T) {
	t.Run("user yields logo and footer", func(t *testing.T) {
		u := recipient.User{
			Phone:   "111",
			Mail:    "a@b.c",
			Website: "b.c",
			Logo:    []byte{1, 2, 3},
		}

		cust, ok := u.Customization().(recipient.LogoAndFooter)
		require.True(t, ok)
		assert.Equal(t, u.Phone, cust.Phone)
		assert.Equal(t, u.Logo, cust.Logo)
	})

	t.Run("subscriber yields full canvas overlay", func(t *testing.T) {
		s := recipient.Subscriber{
			Name:    "acme",
			Phone:   "222",
			Overlay: []byte{9, 8, 7},
		}

		cust, ok := s.Customization().(recipient.FullCanvasOverlay)
		require.True(t, ok)
		assert.Equal(t, s.Overlay, cust.Overlay)
	})
}
